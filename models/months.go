package models

import "strings"

// Months lists the canonical month names in calendar order.
var Months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// CanonicalMonth resolves a month name case-insensitively to its canonical
// form. Abbreviations such as "Aug" do not resolve.
func CanonicalMonth(name string) (string, bool) {
	for _, m := range Months {
		if strings.EqualFold(name, m) {
			return m, true
		}
	}
	return "", false
}

// MonthIndex returns the 1-based calendar index of a canonical month name.
func MonthIndex(name string) (int, bool) {
	for i, m := range Months {
		if strings.EqualFold(name, m) {
			return i + 1, true
		}
	}
	return 0, false
}
