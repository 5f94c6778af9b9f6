package domain

import (
	"testing"
)

func TestTransactionFiltersNormalize(t *testing.T) {
	tests := []struct {
		name       string
		limit      int32
		offset     int32
		wantLimit  int32
		wantOffset int32
	}{
		{"zero limit takes default", 0, 0, DefaultListLimit, 0},
		{"negative limit takes default", -5, 0, DefaultListLimit, 0},
		{"limit within range kept", 25, 10, 25, 10},
		{"limit clamped to max", 500, 0, MaxListLimit, 0},
		{"negative offset floored", 10, -3, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := TransactionFilters{Limit: tt.limit, Offset: tt.offset}
			f.Normalize()
			if f.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, want %d", f.Limit, tt.wantLimit)
			}
			if f.Offset != tt.wantOffset {
				t.Errorf("Offset = %d, want %d", f.Offset, tt.wantOffset)
			}
		})
	}
}
