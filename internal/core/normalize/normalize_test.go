package normalize

import (
	"slices"
	"testing"
)

func TestName_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"identity", "client work", "client work"},
		{"empty", "", ""},
		{"blank", " \t\n ", ""},
		{"case kept", "Client", "Client"},
		{"trim and collapse", "  client \t  work \n", "client work"},
		{"fullwidth folds to ascii", "ｔｔｔ １", "ttt 1"},
		{"nfkc ligature", "ﬁnance", "finance"},
		{"zero width removed", "cli\u200bent", "client"},
		{"bom removed", "\ufeffclient", "client"},
		{"controls become spaces", "a\x00b\x7fc\u0085d", "a b c d"},
		{"invalid utf8 dropped", string([]byte{'a', 0xff, 'b'}), "ab"},
		{"combining kept after nfkc", "café", "café"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Name(tc.in); got != tc.out {
				t.Fatalf("Name(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestNames_DedupesAfterNormalizing(t *testing.T) {
	got := Names([]string{" alpha", "ａｌｐｈａ", "", "beta ", "alpha", "Beta"})
	want := []string{"alpha", "beta", "Beta"}
	if !slices.Equal(got, want) {
		t.Fatalf("Names = %q, want %q", got, want)
	}
}

func TestSanitize_CleanInputUnchanged(t *testing.T) {
	s := "plain ascii and ünïcode"
	if got := Sanitize(s); got != s {
		t.Fatalf("Sanitize changed clean input: %q", got)
	}
}
