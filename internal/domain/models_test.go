package domain

import "testing"

func TestPocketColors(t *testing.T) {
	tests := []struct {
		pocket Pocket
		red    bool
		black  bool
	}{
		{0, false, false},
		{1, true, false},
		{2, false, true},
		{17, false, true},
		{18, true, false},
		{19, true, false},
		{36, true, false},
		{35, false, true},
	}

	for _, tt := range tests {
		if got := tt.pocket.IsRed(); got != tt.red {
			t.Errorf("Pocket(%d).IsRed() = %v, want %v", tt.pocket, got, tt.red)
		}
		if got := tt.pocket.IsBlack(); got != tt.black {
			t.Errorf("Pocket(%d).IsBlack() = %v, want %v", tt.pocket, got, tt.black)
		}
	}
}

func TestPocketDozen(t *testing.T) {
	tests := []struct {
		pocket Pocket
		dozen  int
	}{
		{0, 0}, {1, 1}, {12, 1}, {13, 2}, {24, 2}, {25, 3}, {36, 3},
	}
	for _, tt := range tests {
		if got := tt.pocket.Dozen(); got != tt.dozen {
			t.Errorf("Pocket(%d).Dozen() = %d, want %d", tt.pocket, got, tt.dozen)
		}
	}
}

func TestRouletteBetValid(t *testing.T) {
	valid := []RouletteBet{
		{Type: BetRed},
		{Type: BetBlack},
		{Type: BetOdd},
		{Type: BetEven},
		{Type: BetLow},
		{Type: BetHigh},
		{Type: BetDozen, Number: 1},
		{Type: BetDozen, Number: 3},
		{Type: BetSingle, Number: 0},
		{Type: BetSingle, Number: 36},
	}
	for _, b := range valid {
		if !b.Valid() {
			t.Errorf("expected %v to be valid", b)
		}
	}

	invalid := []RouletteBet{
		{Type: BetRed, Number: 5},
		{Type: BetDozen, Number: 0},
		{Type: BetDozen, Number: 4},
		{Type: BetSingle, Number: 37},
		{Type: BetSingle, Number: -1},
		{Type: "corner"},
	}
	for _, b := range invalid {
		if b.Valid() {
			t.Errorf("expected %v to be invalid", b)
		}
	}
}

func TestRouletteBetLabel(t *testing.T) {
	if got := (RouletteBet{Type: BetRed}).Label(); got != "red" {
		t.Errorf("expected 'red', got %q", got)
	}
	if got := (RouletteBet{Type: BetDozen, Number: 2}).Label(); got != "dozen-2" {
		t.Errorf("expected 'dozen-2', got %q", got)
	}
	if got := (RouletteBet{Type: BetSingle, Number: 17}).Label(); got != "single-17" {
		t.Errorf("expected 'single-17', got %q", got)
	}
}

func TestDiceRoll(t *testing.T) {
	roll := DiceRoll{Die1: 3, Die2: 4}
	if roll.Total() != 7 {
		t.Errorf("expected total 7, got %d", roll.Total())
	}
	if roll.Describe() != "7 (3 + 4)" {
		t.Errorf("unexpected description: %q", roll.Describe())
	}
}

func TestRoundResultSummary(t *testing.T) {
	win := &RoundResult{
		Game:        "roulette",
		Outcome:     "2 (black)",
		TotalStaked: 20,
		TotalWon:    40,
		NewBalance:  120,
	}
	if got := win.Summary(); got != "roulette round settled: outcome 2 (black), staked 20, won 40, balance now 120" {
		t.Errorf("unexpected win summary: %q", got)
	}

	loss := &RoundResult{
		Game:        "slots",
		Outcome:     "Bar-Seven-Cherry",
		TotalStaked: 10,
		TotalWon:    0,
		NewBalance:  90,
	}
	if got := loss.Summary(); got != "slots round settled: outcome Bar-Seven-Cherry, staked 10 and lost, balance now 90" {
		t.Errorf("unexpected loss summary: %q", got)
	}
}
