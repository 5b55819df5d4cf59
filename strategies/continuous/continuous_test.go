package continuous

import (
	"math/rand"
	"testing"

	"github.com/timpalpant/ipd"
)

func history(moves ...ipd.GameMove) ipd.History {
	return ipd.NewHistory(moves)
}

func TestConstant(t *testing.T) {
	s := Constant(0.75)
	if m := s(nil, history()); m != 0.75 {
		t.Errorf("expected 0.75, got %v", m)
	}
}

func TestTitForTat(t *testing.T) {
	if m := TitForTat(nil, history()); m != ipd.Cooperate {
		t.Errorf("expected cooperation in the first round, got %v", m)
	}

	if m := TitForTat(nil, history(ipd.GameMove{Mine: 0, Opponent: 0.3})); m != 0.3 {
		t.Errorf("expected exact copy 0.3, got %v", m)
	}

	if m := SuspiciousTitForTat(nil, history()); m != ipd.Defect {
		t.Errorf("expected defection in the first round, got %v", m)
	}
}

func TestTitForTwoTats(t *testing.T) {
	h := history(
		ipd.GameMove{Mine: 0, Opponent: 0.1},
		ipd.GameMove{Mine: 0, Opponent: 0.9},
		ipd.GameMove{Mine: 0, Opponent: 0.4},
	)

	if m := TitForTwoTats(nil, h); m != 0.4 {
		t.Errorf("expected most cooperative of last two (0.4), got %v", m)
	}

	if m := TwoTitsForTat(nil, h); m != 0.9 {
		t.Errorf("expected most defective of last two (0.9), got %v", m)
	}

	if m := Grim(nil, h); m != 0.9 {
		t.Errorf("expected most defective overall (0.9), got %v", m)
	}

	if m := TitForTwoTats(nil, history()); m != ipd.Cooperate {
		t.Errorf("expected cooperation in the first round, got %v", m)
	}
}

func TestImpreciseTitForTat(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))
	h := history(ipd.GameMove{Mine: 0, Opponent: 0.8})
	for i := 0; i < 100; i++ {
		m := ImpreciseTitForTat(rng, h)
		if m < 1-Imprecision || m >= 1+Imprecision {
			t.Errorf("expected move within %v of 1, got %v", Imprecision, m)
		}
	}
}

func TestGenerousTitForTat(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))
	h := history(ipd.GameMove{Mine: 0, Opponent: 0.9})
	forgiven := 0
	for i := 0; i < 1000; i++ {
		switch m := GenerousTitForTat(rng, h); m {
		case ipd.Cooperate:
			forgiven++
		case 0.9:
		default:
			t.Fatalf("unexpected move %v", m)
		}
	}

	if forgiven < 400 || forgiven > 600 {
		t.Errorf("expected about half of defections to be forgiven, got %d/1000", forgiven)
	}

	if m := GenerousTitForTat(rng, history(ipd.GameMove{Mine: 0, Opponent: 0.2})); m != 0.2 {
		t.Errorf("expected cooperation to be copied, got %v", m)
	}
}

func TestNPavlov(t *testing.T) {
	s := NewNPavlov(2)
	if m := s.NextMove(nil, nil, history()); m != ipd.Cooperate {
		t.Errorf("expected full cooperation in the first round, got %v", m)
	}

	// S lowers the propensity to cooperate.
	if m := s.NextMove(nil, &ipd.GameMove{Mine: 0, Opponent: 1}, history()); m != 0.5 {
		t.Errorf("expected 0.5, got %v", m)
	}

	clone := s.Clone().(*NPavlov)
	s.NextMove(nil, &ipd.GameMove{Mine: 0, Opponent: 1}, history())
	if s.P() != 0 || clone.P() != 0.5 {
		t.Errorf("expected p = 0 and clone p = 0.5, got %v and %v", s.P(), clone.P())
	}
}

func TestAll(t *testing.T) {
	entries := All()
	if len(entries) != 14 {
		t.Errorf("expected 14 continuous strategies, got %d", len(entries))
	}

	if err := ipd.ValidateCatalog(entries); err != nil {
		t.Error(err)
	}
}
