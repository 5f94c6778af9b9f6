package report

import "testing"

func TestPercentOf(t *testing.T) {
	tests := []struct {
		name  string
		part  int64
		total int64
		want  string
	}{
		{name: "quarter", part: 25000, total: 100000, want: "25.00"},
		{name: "rounds to two places", part: 1, total: 3, want: "33.33"},
		{name: "whole window", part: 100000, total: 100000, want: "100.00"},
		{name: "zero part", part: 0, total: 100000, want: "0.00"},
		{name: "zero total", part: 5000, total: 0, want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := percentOf(tt.part, tt.total)
			if got.StringFixed(2) != tt.want {
				t.Errorf("percentOf(%d, %d) = %s, want %s", tt.part, tt.total, got.StringFixed(2), tt.want)
			}
		})
	}
}

func TestDailyAverage(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		days  int
		want  string
	}{
		{name: "even split", total: 100000, days: 10, want: "10000.00"},
		{name: "rounds to two places", total: 100, days: 3, want: "33.33"},
		{name: "single day", total: 85000, days: 1, want: "85000.00"},
		{name: "zero days", total: 85000, days: 0, want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dailyAverage(tt.total, tt.days)
			if got.StringFixed(2) != tt.want {
				t.Errorf("dailyAverage(%d, %d) = %s, want %s", tt.total, tt.days, got.StringFixed(2), tt.want)
			}
		})
	}
}
