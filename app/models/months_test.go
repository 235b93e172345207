package models

import (
	"sort"
	"testing"
)

func TestMonthOrdinal(t *testing.T) {
	tests := []struct {
		month string
		want  int
	}{
		{"Baisakh", 1},
		{"Jestha", 2},
		{"Ashadh", 3},
		{"Shrawan", 4},
		{"Bhadra", 5},
		{"Ashwin", 6},
		{"Kartik", 7},
		{"Mangsir", 8},
		{"Poush", 9},
		{"Magh", 10},
		{"Falgun", 11},
		{"Chaitra", 12},
	}
	for _, tc := range tests {
		got, ok := MonthOrdinal(tc.month)
		if !ok || got != tc.want {
			t.Errorf("MonthOrdinal(%q) = %d, %v; want %d, true", tc.month, got, ok, tc.want)
		}
	}

	if _, ok := MonthOrdinal("January"); ok {
		t.Errorf("MonthOrdinal must reject non-calendar months")
	}
	if _, ok := MonthOrdinal("baisakh"); ok {
		t.Errorf("month names are case sensitive")
	}
}

// Month names must never be compared as strings: Ashadh sorts first
// alphabetically but is the third month of the year.
func TestCalendarOrderDisagreesWithLexicalOrder(t *testing.T) {
	lexical := append([]string(nil), Months...)
	sort.Strings(lexical)

	same := true
	for i := range Months {
		if Months[i] != lexical[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("calendar order unexpectedly matches lexical order; ordering tests are vacuous")
	}

	if ComparePeriods("Ashadh", 2081, "Baisakh", 2081) <= 0 {
		t.Errorf("Ashadh must come after Baisakh within a year")
	}
}

func TestComparePeriods(t *testing.T) {
	sign := func(n int) int {
		switch {
		case n < 0:
			return -1
		case n > 0:
			return 1
		}
		return 0
	}

	tests := []struct {
		name   string
		monthA string
		yearA  int
		monthB string
		yearB  int
		want   int
	}{
		{"same period", "Baisakh", 2081, "Baisakh", 2081, 0},
		{"later month same year", "Jestha", 2081, "Baisakh", 2081, 1},
		{"earlier month same year", "Baisakh", 2081, "Chaitra", 2081, -1},
		{"year dominates month", "Baisakh", 2081, "Chaitra", 2080, 1},
		{"earlier year", "Chaitra", 2080, "Baisakh", 2081, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComparePeriods(tc.monthA, tc.yearA, tc.monthB, tc.yearB)
			if sign(got) != tc.want {
				t.Errorf("ComparePeriods(%s %d, %s %d) = %d, want sign %d",
					tc.monthA, tc.yearA, tc.monthB, tc.yearB, got, tc.want)
			}
		})
	}
}
