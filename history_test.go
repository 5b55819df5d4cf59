package ipd

import (
	"reflect"
	"testing"
)

var testMoves = []GameMove{
	{Mine: 0, Opponent: 1},
	{Mine: 0.25, Opponent: 0.5},
	{Mine: 1, Opponent: 0.75},
}

func TestHistory_SwapRoundTrip(t *testing.T) {
	h := NewHistory(testMoves)
	result := h.Swap().Swap().AsSlice()
	if !reflect.DeepEqual(result, testMoves) {
		t.Errorf("expected %v, got %v", testMoves, result)
	}
}

func TestHistory_Swap(t *testing.T) {
	h := NewHistory(testMoves).Swap()
	if h.Len() != len(testMoves) {
		t.Errorf("expected %d moves, got %d", len(testMoves), h.Len())
	}

	for i, gm := range testMoves {
		if h.Get(i) != gm.Swap() {
			t.Errorf("move %d: expected %v, got %v", i, gm.Swap(), h.Get(i))
		}
	}

	// The canonical storage is never modified.
	if testMoves[0] != (GameMove{Mine: 0, Opponent: 1}) {
		t.Errorf("swapped view modified the underlying history: %v", testMoves)
	}
}

func TestHistory_ViewedBy(t *testing.T) {
	h := NewHistory(testMoves)
	if !reflect.DeepEqual(h.ViewedBy(Player0).AsSlice(), testMoves) {
		t.Errorf("expected Player0 view to be canonical, got %v", h.ViewedBy(Player0))
	}

	if !reflect.DeepEqual(h.ViewedBy(Player1).AsSlice(), h.Swap().AsSlice()) {
		t.Errorf("expected Player1 view to be swapped, got %v", h.ViewedBy(Player1))
	}
}

func TestHistory_Last(t *testing.T) {
	if _, ok := NewHistory(nil).Last(); ok {
		t.Error("expected empty history to have no last move")
	}

	last, ok := NewHistory(testMoves).Swap().Last()
	if !ok {
		t.Fatal("expected a last move")
	}

	expected := GameMove{Mine: 0.75, Opponent: 1}
	if last != expected {
		t.Errorf("expected %v, got %v", expected, last)
	}
}

func TestHistory_OpponentMoves(t *testing.T) {
	h := NewHistory(testMoves)
	testCases := []struct {
		n        int
		expected []Move
	}{
		{0, []Move{}},
		{2, []Move{0.75, 0.5}},
		{10, []Move{0.75, 0.5, 1}},
		{-1, []Move{0.75, 0.5, 1}},
	}

	for _, tc := range testCases {
		result := h.OpponentMoves(tc.n)
		if !reflect.DeepEqual(result, tc.expected) {
			t.Errorf("n = %d: expected %v, got %v", tc.n, tc.expected, result)
		}
	}

	swapped := h.Swap().OpponentMoves(1)
	if len(swapped) != 1 || swapped[0] != 1 {
		t.Errorf("expected [1], got %v", swapped)
	}
}

func TestHistory_Iter(t *testing.T) {
	var result []GameMove
	NewHistory(testMoves).Swap().Iter(func(i int, gm GameMove) {
		if i != len(result) {
			t.Errorf("expected index %d, got %d", len(result), i)
		}
		result = append(result, gm)
	})

	for i, gm := range testMoves {
		if result[i] != gm.Swap() {
			t.Errorf("move %d: expected %v, got %v", i, gm.Swap(), result[i])
		}
	}
}

func TestHistory_GetOutOfRange(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()

	NewHistory(testMoves).Get(len(testMoves))
}
