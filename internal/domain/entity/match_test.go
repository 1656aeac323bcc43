package entity

import "testing"

func TestSeatOpponent(t *testing.T) {
	if SeatA.Opponent() != SeatB {
		t.Error("A's opponent should be B")
	}
	if SeatB.Opponent() != SeatA {
		t.Error("B's opponent should be A")
	}
}

func TestSeatLabel(t *testing.T) {
	if got := SeatA.Label(); got != "Model A" {
		t.Errorf("Expected \"Model A\", got %q", got)
	}
	if got := SeatB.Label(); got != "Model B" {
		t.Errorf("Expected \"Model B\", got %q", got)
	}
}
