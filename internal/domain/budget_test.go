package domain

import (
	"testing"
)

func TestBudgetPercentage(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		spent    int64
		expected float64
	}{
		{"nothing spent", 500, 0, 0},
		{"half spent", 500, 250, 50},
		{"fully spent", 500, 500, 100},
		{"overspent", 500, 750, 150},
		{"zero amount guards division", 0, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Budget{Amount: tt.amount, Spent: tt.spent}
			if got := b.Percentage(); got != tt.expected {
				t.Errorf("Percentage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestBudgetRemaining(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		spent    int64
		expected int64
	}{
		{"untouched", 500, 0, 500},
		{"partially spent", 500, 120, 380},
		{"overspent goes negative", 500, 600, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Budget{Amount: tt.amount, Spent: tt.spent}
			if got := b.Remaining(); got != tt.expected {
				t.Errorf("Remaining() = %d, want %d", got, tt.expected)
			}
		})
	}
}
