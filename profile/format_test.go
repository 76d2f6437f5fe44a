package profile_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/singlecross/tilecert/prefs"
	"github.com/singlecross/tilecert/profile"
)

// TestString_Format pins the exact external bytes: token plus trailing
// space, one line per row, "####" terminator.
func TestString_Format(t *testing.T) {
	g, err := profile.New(2, 2)
	require.NoError(t, err)
	g.Set(0, 0, prefs.Identity(3))
	g.Set(1, 1, prefs.Pref{2, 1, 0})

	require.Equal(t, "012 ? \n? 210 \n####\n", g.String())
}

// TestRoundTrip: Parse(String(g)) == g for complete and partial grids.
func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		grid string
	}{
		{"Isolated", isolatedGrid},
		{"Partial", "01 ? \n? 10 \n####\n"},
		{"SingleCell", "0123 \n####\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.grid)
			back, err := profile.Parse(g.String())
			require.NoError(t, err)
			require.True(t, g.Equal(back))
			require.Equal(t, g.String(), back.String())
		})
	}
}

// TestParse_Errors covers malformed tokens and empty input.
func TestParse_Errors(t *testing.T) {
	_, err := profile.Parse("01 x1 \n####\n")
	require.True(t, errors.Is(err, profile.ErrBadToken))

	_, err = profile.Parse("####\n")
	require.True(t, errors.Is(err, profile.ErrEmptyGrid))

	_, err = profile.Parse("01 01 \n01 \n####\n")
	require.True(t, errors.Is(err, profile.ErrNonRectangular))
}

// TestParse_LooseSpacing: Parse accepts free-form token spacing.
func TestParse_LooseSpacing(t *testing.T) {
	a := mustParse(t, "01  10\n####\n")
	b := mustParse(t, "01 10 \n####\n")
	require.True(t, a.Equal(b))
}
