package rng

import (
	"testing"

	"casino-sim/internal/cards"
)

func TestIntRange(t *testing.T) {
	svc := New()

	t.Run("WithinBounds", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			n, err := svc.Int(37)
			if err != nil {
				t.Fatalf("Int failed: %v", err)
			}
			if n < 0 || n >= 37 {
				t.Fatalf("Int(37) out of range: %d", n)
			}
		}
	})

	t.Run("InvalidMax", func(t *testing.T) {
		if _, err := svc.Int(0); err == nil {
			t.Error("expected error for max 0")
		}
		if _, err := svc.Int(-1); err == nil {
			t.Error("expected error for negative max")
		}
	})

	t.Run("InclusiveRange", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			n, err := svc.IntRange(1, 6)
			if err != nil {
				t.Fatalf("IntRange failed: %v", err)
			}
			if n < 1 || n > 6 {
				t.Fatalf("IntRange(1,6) out of range: %d", n)
			}
		}
	})

	t.Run("InvertedRange", func(t *testing.T) {
		if _, err := svc.IntRange(6, 1); err == nil {
			t.Error("expected error for min > max")
		}
	})
}

func TestIntCoversRange(t *testing.T) {
	svc := New()
	seen := make(map[int64]bool)
	for i := 0; i < 5000; i++ {
		n, err := svc.Int(4)
		if err != nil {
			t.Fatalf("Int failed: %v", err)
		}
		seen[n] = true
	}
	for v := int64(0); v < 4; v++ {
		if !seen[v] {
			t.Errorf("value %d never drawn in 5000 samples", v)
		}
	}
}

func TestShuffle(t *testing.T) {
	svc := New()
	slice := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	if err := svc.Shuffle(slice); err != nil {
		t.Fatalf("Shuffle failed: %v", err)
	}

	seen := make(map[int]bool)
	for _, v := range slice {
		seen[v] = true
	}
	if len(seen) != 10 {
		t.Errorf("shuffle lost elements: %v", slice)
	}
}

func TestHealthCheck(t *testing.T) {
	svc := New()
	health, err := svc.HealthCheck()
	if err != nil {
		t.Fatalf("HealthCheck failed: %v", err)
	}
	if health["healthy"] != true {
		t.Error("expected healthy rng")
	}
}

func TestWheelSpin(t *testing.T) {
	wheel := NewWheel(New())
	for i := 0; i < 500; i++ {
		p, err := wheel.Spin()
		if err != nil {
			t.Fatalf("Spin failed: %v", err)
		}
		if p < 0 || p > 36 {
			t.Fatalf("pocket out of range: %d", p)
		}
	}
}

func TestReelsSpin(t *testing.T) {
	reels := NewReels(New())
	for i := 0; i < 200; i++ {
		r, err := reels.Spin()
		if err != nil {
			t.Fatalf("Spin failed: %v", err)
		}
		for _, sym := range r {
			if sym == "" {
				t.Fatal("empty symbol drawn")
			}
		}
	}
}

func TestShoeDraw(t *testing.T) {
	shoe := NewShoe(New())
	for i := 0; i < 500; i++ {
		c, err := shoe.Draw()
		if err != nil {
			t.Fatalf("Draw failed: %v", err)
		}
		if c.Rank < cards.Ace || c.Rank > cards.King {
			t.Fatalf("rank out of range: %d", c.Rank)
		}
	}
}

func TestDiceRoll(t *testing.T) {
	dice := NewDice(New())
	for i := 0; i < 500; i++ {
		roll, err := dice.Roll()
		if err != nil {
			t.Fatalf("Roll failed: %v", err)
		}
		if roll.Die1 < 1 || roll.Die1 > 6 || roll.Die2 < 1 || roll.Die2 > 6 {
			t.Fatalf("die out of range: %+v", roll)
		}
		if total := roll.Total(); total < 2 || total > 12 {
			t.Fatalf("total out of range: %d", total)
		}
	}
}
