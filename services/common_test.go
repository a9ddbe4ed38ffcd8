package services

import "testing"

func TestParseNumber(t *testing.T) {
	for _, ok := range []string{"70", "0", "-3", "2.5", "1e2"} {
		if _, err := ParseNumber(ok); err != nil {
			t.Fatalf("ParseNumber(%q): %v", ok, err)
		}
	}
	for _, bad := range []string{"", "abc", "Inf", "+Inf", "-Inf", "infinity", "NaN", "nan"} {
		if v, err := ParseNumber(bad); err == nil {
			t.Fatalf("ParseNumber(%q): want error got=%v", bad, v)
		}
	}
}

func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]int{2641.8: 2642, 2641.5: 2642, 2642.5: 2643, 2641.4: 2641}
	for in, want := range cases {
		if got := Round(in); got != want {
			t.Fatalf("Round(%v): want=%d got=%d", in, want, got)
		}
	}
}
