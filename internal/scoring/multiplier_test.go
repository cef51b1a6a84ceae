package scoring

import "testing"

func TestMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		streak   int
		positive bool
		expected float64
	}{
		{"zero streak", 0, true, 1.0},
		{"below mid tier", 2, true, 1.0},
		{"exactly mid tier", 3, true, 1.5},
		{"between tiers", 6, true, 1.5},
		{"exactly top tier", 7, true, 2.0},
		{"far past top tier", 365, true, 2.0},
		{"negative habit never earns bonus", 10, false, 1.0},
		{"negative habit at mid tier", 3, false, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Multiplier(tt.streak, tt.positive)
			if got != tt.expected {
				t.Errorf("Multiplier(%d, %v) = %v, want %v", tt.streak, tt.positive, got, tt.expected)
			}
		})
	}
}

func TestPointsPerCompletion(t *testing.T) {
	tests := []struct {
		name       string
		basePoints int
		multiplier float64
		expected   int
	}{
		{"no bonus", 10, 1.0, 10},
		{"mid tier", 10, 1.5, 15},
		{"top tier", 10, 2.0, 20},
		{"fractional result floors", 5, 1.5, 7},
		{"odd base at mid tier", 7, 1.5, 10},
		{"zero base", 0, 2.0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointsPerCompletion(tt.basePoints, tt.multiplier)
			if got != tt.expected {
				t.Errorf("PointsPerCompletion(%d, %v) = %d, want %d", tt.basePoints, tt.multiplier, got, tt.expected)
			}
		})
	}
}
