package dataset

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComplex(t *testing.T) {
	tests := []struct {
		in   string
		want complex128
	}{
		{"1.5+-2.3", complex(1.5, -2.3)},
		{"2.0+3.0", complex(2.0, 3.0)},
		{"1.5-2.3", complex(1.5, -2.3)},
		{"1.5+-2.3j", complex(1.5, -2.3)},
		{"(1+2j)", complex(1, 2)},
		{"(1+-2i)", complex(1, -2)},
		{"  -4.25-0.5i ", complex(-4.25, -0.5)},
		{"1e-3+2E+2j", complex(0.001, 200)},
		{"-1.5e-1+-2.5e-2", complex(-0.15, -0.025)},
		{"3.5", complex(3.5, 0)},
		{"-7", complex(-7, 0)},
		{"2j", complex(0, 2)},
		{"-j", complex(0, -1)},
		{"1+j", complex(1, 1)},
		{"0+0j", 0},
	}

	for _, tt := range tests {
		got, err := ParseComplex(tt.in)
		require.NoError(t, err, tt.in)
		assert.InDelta(t, real(tt.want), real(got), 1e-12, "real part of %q", tt.in)
		assert.InDelta(t, imag(tt.want), imag(got), 1e-12, "imaginary part of %q", tt.in)
	}
}

func TestParseComplexInvalid(t *testing.T) {
	for _, in := range []string{
		"", "   ", "()", "abc", "1.5+x", "+", "-", "1.2.3", "1+2k",
		// dangling or doubled signs
		"1+", "1+-", "1-", "1.5+-", "1e5+", "++2", "--2", "-+3j", "1--2j",
	} {
		_, err := ParseComplex(in)
		assert.True(t, errors.Is(err, ErrSyntax), "expected syntax error for %q, got %v", in, err)
	}
}

func BenchmarkParseComplex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := ParseComplex("-1.234567e-01+-9.876543e+02j"); err != nil {
			b.Fatal(err)
		}
	}
}
