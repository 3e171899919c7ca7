package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rif/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "  j-07013380-5  ",
			transforms: []func(string) string{sanitizer.Trim},
			expected:   "j-07013380-5",
		},
		{
			name:  "applies transforms in sequence",
			input: "  j 07013380 5 ",
			transforms: []func(string) string{
				sanitizer.Trim,
				sanitizer.ToUpper,
				sanitizer.RemoveChars(" "),
			},
			expected: "J070133805",
		},
		{
			name:       "handles empty transforms slice",
			input:      "J-07013380-5",
			transforms: []func(string) string{},
			expected:   "J-07013380-5",
		},
		{
			name:  "handles empty input",
			input: "",
			transforms: []func(string) string{
				sanitizer.Trim,
				sanitizer.ToUpper,
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Apply(tt.input, tt.transforms...))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(
		sanitizer.Trim,
		sanitizer.FoldWidth,
		sanitizer.ToUpper,
		sanitizer.RemoveChars(" ."),
	)

	assert.Equal(t, "J07013380", clean(" j 07.013.380 "))
	assert.Equal(t, "G-20000044-9", clean("g-20000044-9"))
	// Reusable across calls
	assert.Equal(t, "V", clean(" v "))
}

func TestComposeGeneric(t *testing.T) {
	t.Parallel()

	double := func(n int) int { return n * 2 }
	inc := func(n int) int { return n + 1 }

	assert.Equal(t, 7, sanitizer.Compose(double, inc)(3))
	assert.Equal(t, 8, sanitizer.Compose(inc, double)(3))
}
