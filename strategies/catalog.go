// Package strategies assembles the full tournament catalog.
package strategies

import (
	"fmt"

	"github.com/timpalpant/ipd"
	"github.com/timpalpant/ipd/strategies/classic"
	"github.com/timpalpant/ipd/strategies/continuous"
	"github.com/timpalpant/ipd/strategies/detente"
)

// All returns every known strategy: classic, then continuous, then detente.
func All() []ipd.Entry {
	var result []ipd.Entry
	result = append(result, classic.All()...)
	result = append(result, continuous.All()...)
	result = append(result, detente.All()...)
	return result
}

// Families returns the catalog of each strategy family by name.
func Families() map[string][]ipd.Entry {
	return map[string][]ipd.Entry{
		"classic":    classic.All(),
		"continuous": continuous.All(),
		"detente":    detente.All(),
	}
}

// Select returns the catalogs of the given families concatenated in order.
// An empty list selects everything.
func Select(families []string) ([]ipd.Entry, error) {
	if len(families) == 0 {
		return All(), nil
	}

	all := Families()
	var result []ipd.Entry
	for _, family := range families {
		entries, ok := all[family]
		if !ok {
			return nil, fmt.Errorf("unknown strategy family: %q", family)
		}
		result = append(result, entries...)
	}

	return result, nil
}
