package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLocationCode(t *testing.T) {
	valid := []string{"MAD", "JFK", "GRU", "ZZZ"}
	for _, code := range valid {
		lc, err := NewLocationCode(code)
		assert.NoError(t, err, code)
		assert.Equal(t, code, lc.String())
	}

	invalid := []string{"", "MA", "MADR", "mad", "M4D", "JF-", "new york"}
	for _, code := range invalid {
		_, err := NewLocationCode(code)
		assert.Error(t, err, code)
		assert.Equal(t, KindValidation, KindOf(err), code)
	}
}

func TestNewCoordinates(t *testing.T) {
	cases := []struct {
		lat, lng float64
		ok       bool
	}{
		{0, 0, true},
		{-90, -180, true},
		{90, 180, true},
		{48.85341, 2.3488, true},
		{-90.01, 0, false},
		{90.01, 0, false},
		{0, -180.01, false},
		{0, 180.01, false},
	}

	for _, tc := range cases {
		coords, err := NewCoordinates(tc.lat, tc.lng)
		if tc.ok {
			assert.NoError(t, err)
			assert.Equal(t, tc.lat, coords.Latitude)
			assert.Equal(t, tc.lng, coords.Longitude)
		} else {
			assert.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
		}
	}
}
