package continuum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareDates(t *testing.T) {
	tests := []struct {
		name string
		a, b Date
		want int
	}{
		{"equal dates", "2020-01-01", "2020-01-01", 0},
		{"a before b", "2020-01-01", "2020-01-02", -1},
		{"b before a", "2021-06-30", "2020-12-31", 1},
		{"year boundary", "2019-12-31", "2020-01-01", -1},
		{"genesis equals genesis", Genesis, Genesis, 0},
		{"genesis before any date", Genesis, "0000-01-01", -1},
		{"any date after genesis", "9999-12-31", Genesis, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareDates(tt.a, tt.b))
		})
	}
}

func TestCompareDatesAntisymmetric(t *testing.T) {
	dates := []Date{Genesis, "2019-01-01", "2020-01-01", "2020-01-02", "2020-02-01"}
	for _, a := range dates {
		for _, b := range dates {
			assert.Equal(t, -CompareDates(b, a), CompareDates(a, b), "a=%q b=%q", a, b)
		}
	}
}
