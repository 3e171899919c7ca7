package rif_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rif/pkg/rif"
)

func TestParse(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"J-00019361-4",
		"J-07013380-5",
		"J-31286704-3",
		"G-20000044-9",
		"G-20000004-0",
		"G-20000002-3",
		"E-12312312-6",
		"V-12345678-1",
		"C-00000001-8",
	}

	for _, in := range inputs {
		in := in
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			r, err := rif.Parse(in)
			require.NoError(t, err)
			assert.Equal(t, in, r.String())
		})
	}
}

func TestParse_ShortIdentifier(t *testing.T) {
	t.Parallel()

	short, err := rif.Parse("J-7013380-5")
	require.NoError(t, err)

	padded, err := rif.Parse("J-07013380-5")
	require.NoError(t, err)

	assert.Equal(t, padded, short)
	assert.Equal(t, uint32(7013380), short.Identifier())
	assert.Equal(t, "J-07013380-5", short.String())
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		wantErr error
	}{
		{"J07013380-5", rif.ErrMalformedFormat},
		{"G200000040", rif.ErrMalformedFormat},
		{"J-07013380-5-1", rif.ErrMalformedFormat},
		{"", rif.ErrMalformedFormat},
		{"X-07013380-5", rif.ErrInvalidKind},
		{"M-00000001-3", rif.ErrInvalidKind},
		{"j-07013380-5", rif.ErrInvalidKind},
		{"JJ-07013380-5", rif.ErrInvalidKind},
		{"-07013380-5", rif.ErrInvalidKind},
		{"V-AA348932-1", rif.ErrInvalidIdentifier},
		{"G-X0000002-3", rif.ErrInvalidIdentifier},
		{"J--5", rif.ErrInvalidIdentifier},
		{"J-123456789-0", rif.ErrInvalidIdentifier},
		{"J-+7013380-5", rif.ErrInvalidIdentifier},
		{"J- 7013380-5", rif.ErrInvalidIdentifier},
		{"J-07013380-", rif.ErrInvalidChecksumDigit},
		{"J-07013380-55", rif.ErrInvalidChecksumDigit},
		{"J-07013380-A", rif.ErrInvalidChecksumDigit},
		{"J-00018461-4", rif.ErrChecksumMismatch},
		{"E-12312312-5", rif.ErrChecksumMismatch},
		{"J-07013380-9", rif.ErrChecksumMismatch},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			r, err := rif.Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, r.IsZero())

			var perr *rif.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.input, perr.Input)
		})
	}
}

func TestParse_ErrorMessage(t *testing.T) {
	t.Parallel()

	_, err := rif.Parse("E-12312312-5")
	require.Error(t, err)
	assert.Equal(t, `rif: parse "E-12312312-5": RIF checksum digit mismatch: expected 6, received 5`, err.Error())
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rif.MustNew(rif.KindLegal, 7013380, 5), rif.MustParse("J-07013380-5"))
	assert.Panics(t, func() { rif.MustParse("J07013380-5") })
}

func FuzzParseRoundTrip(f *testing.F) {
	for _, seed := range []string{"J-07013380-5", "G-20000004-0", "V-1-5", "J07013380-5", "X-1-1", ""} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		r, err := rif.Parse(s)
		if err != nil {
			return
		}
		again, err := rif.Parse(r.String())
		if err != nil {
			t.Fatalf("canonical form %q of %q does not parse: %v", r.String(), s, err)
		}
		if again != r {
			t.Fatalf("round trip changed value: %v != %v", again, r)
		}
	})
}
