package bloom

import "testing"

func TestOrdering(t *testing.T) {
	for i := 1; i < len(Levels); i++ {
		if Index(Levels[i]) != Index(Levels[i-1])+1 {
			t.Errorf("level %s out of order", Levels[i])
		}
	}
}

func TestNextPrev(t *testing.T) {
	tests := []struct {
		lvl  Level
		next Level
		prev Level
	}{
		{Remember, Understand, Remember},
		{Apply, Analyze, Understand},
		{Create, Create, Evaluate},
	}
	for _, tt := range tests {
		if got := Next(tt.lvl); got != tt.next {
			t.Errorf("Next(%s) = %s, want %s", tt.lvl, got, tt.next)
		}
		if got := Prev(tt.lvl); got != tt.prev {
			t.Errorf("Prev(%s) = %s, want %s", tt.lvl, got, tt.prev)
		}
	}
}

func TestWeights(t *testing.T) {
	want := []float64{1.0, 1.5, 2.0, 2.5, 3.0, 3.5}
	for i, lvl := range Levels {
		if Weight(lvl) != want[i] {
			t.Errorf("Weight(%s) = %v, want %v", lvl, Weight(lvl), want[i])
		}
	}
}

func TestParse(t *testing.T) {
	if Parse("analyze") != Analyze {
		t.Error("expected analyze")
	}
	if Parse("galaxy-brain") != Remember {
		t.Error("unknown level should fall back to remember")
	}
}
