package continuum

// Date is a calendar date token of the form "YYYY-MM-DD".
// The empty Date represents a time before all recorded dates.
type Date string

// Genesis is the Date before all recorded dates.
const Genesis Date = ""

// CompareDates totally orders dates by lexicographic comparison.
// Because the token format is fixed-width, lexicographic order is
// chronological order, and the empty token sorts before everything.
// Returns a negative number when a comes first, a positive number
// when b comes first, and 0 when they are equal.
func CompareDates(a, b Date) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
