package models

// The school bills by the Bikram Sambat calendar. Month names are not
// alphabetically ordered, so comparisons must go through this ordinal table
// rather than string comparison.
var monthOrdinals = map[string]int{
	"Baisakh": 1,
	"Jestha":  2,
	"Ashadh":  3,
	"Shrawan": 4,
	"Bhadra":  5,
	"Ashwin":  6,
	"Kartik":  7,
	"Mangsir": 8,
	"Poush":   9,
	"Magh":    10,
	"Falgun":  11,
	"Chaitra": 12,
}

// Months lists the Bikram Sambat months in calendar order.
var Months = []string{
	"Baisakh", "Jestha", "Ashadh", "Shrawan", "Bhadra", "Ashwin",
	"Kartik", "Mangsir", "Poush", "Magh", "Falgun", "Chaitra",
}

// MonthOrdinal returns the 1-based calendar position of a Bikram Sambat
// month name, and false if the name is not a known month.
func MonthOrdinal(month string) (int, bool) {
	ord, ok := monthOrdinals[month]
	return ord, ok
}

// IsValidMonth reports whether month is a known Bikram Sambat month name.
func IsValidMonth(month string) bool {
	_, ok := monthOrdinals[month]
	return ok
}

// ComparePeriods orders two billing periods chronologically. It returns a
// negative value if (monthA, yearA) is earlier than (monthB, yearB), zero if
// equal and positive if later. Unknown month names sort before known ones.
func ComparePeriods(monthA string, yearA int, monthB string, yearB int) int {
	if yearA != yearB {
		return yearA - yearB
	}
	ordA := monthOrdinals[monthA]
	ordB := monthOrdinals[monthB]
	return ordA - ordB
}
