package schedule

import "testing"

func TestClassColorDeterministic(t *testing.T) {
	labels := []string{"CS101", "MATH 221", "Intro to Philosophy", "", "Class"}
	for _, label := range labels {
		first := ClassColor(label)
		for i := 0; i < 10; i++ {
			if got := ClassColor(label); got != first {
				t.Fatalf("ClassColor(%q) unstable: %q then %q", label, first, got)
			}
		}
	}
}

func TestClassColorInPalette(t *testing.T) {
	inPalette := func(c string) bool {
		for _, p := range classPalette {
			if p == c {
				return true
			}
		}
		return false
	}
	for _, label := range []string{"CS101", "x", "", "a long class title with spaces"} {
		if c := ClassColor(label); !inPalette(c) {
			t.Fatalf("ClassColor(%q)=%q not in palette", label, c)
		}
	}
}

func TestDotColorTable(t *testing.T) {
	cases := []struct {
		eventType string
		want      string
	}{
		{eventType: "lecture", want: "#74C0FC"},
		{eventType: "meeting", want: "#74C0FC"},
		{eventType: "assignment", want: "#FFD43B"},
		{eventType: "exam", want: "#FF6B6B"},
		{eventType: "study", want: "#9CC5A1"},
		{eventType: "custom", want: "#49A078"},
		{eventType: "something else", want: "#49A078"},
	}
	for _, tc := range cases {
		if got := DotColor(tc.eventType); got != tc.want {
			t.Fatalf("DotColor(%q)=%q, want %q", tc.eventType, got, tc.want)
		}
	}
}
