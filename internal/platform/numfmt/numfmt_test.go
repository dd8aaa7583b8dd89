package numfmt_test

import (
	"math"
	"testing"

	"stepcount/internal/platform/numfmt"
)

func TestCount(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0"},
		{in: -0.4, want: "0"},
		{in: 0.5, want: "1"},
		{in: 2.5, want: "3"},
		{in: 999.5, want: "1,000"},
		{in: 123, want: "123"},
		{in: 1234567.5, want: "1,234,568"},
		{in: math.Ldexp(1, 63), want: "9,223,372,036,854,775,808"},
		{in: 1e20, want: "100,000,000,000,000,000,000"},
		{in: -1500, want: "-1,500"},
	}
	for _, tc := range cases {
		if got := numfmt.Count(tc.in); got != tc.want {
			t.Fatalf("Count(%v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestTruncated(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   float64
		want string
	}{
		{in: 0.9, want: "0"},
		{in: 2999.9, want: "2,999"},
		{in: 7499.1, want: "7,499"},
		{in: 1e19, want: "10,000,000,000,000,000,000"},
	}
	for _, tc := range cases {
		if got := numfmt.Truncated(tc.in); got != tc.want {
			t.Fatalf("Truncated(%v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
