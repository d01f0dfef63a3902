package strings

import (
	"slices"
	"testing"

	kit "ttt/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	if got := IfEmpty(nil, []string{"GET"}); !slices.Equal(got, []string{"GET"}) {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	if got := IfEmpty([]int{1}, []int{2}); !slices.Equal(got, []int{1}) {
		t.Fatalf("IfEmpty(non-empty) = %v", got)
	}
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{"tracking": "/tracking", " /meta/ ": "/meta", "/a/b/": "/a/b"}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	kit.MustPanic(t, func() { _ = MustPrefix(" / ") })
}

func TestMustString(t *testing.T) {
	if MustString("x", "name") != "x" {
		t.Fatalf("MustString changed value")
	}
	kit.MustPanic(t, func() { _ = MustString("  ", "name") })
}
