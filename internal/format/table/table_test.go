package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"name", "qty"},
		{"apple", "3"},
		{"kiwi", "12"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"name   qty",
		"apple    3",
		"kiwi    12",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWidthsHandlesRaggedRows(t *testing.T) {
	got := Widths([][]string{{"a"}, {"bb", "ccc"}})
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Fatalf("unexpected widths %v", got)
	}
}

func TestPad(t *testing.T) {
	cases := []struct {
		cell  string
		width int
		align Alignment
		want  string
	}{
		{"ab", 4, AlignLeft, "ab  "},
		{"ab", 4, AlignRight, "  ab"},
		{"abcdef", 4, AlignLeft, "abc…"},
		{"ab", 0, AlignLeft, ""},
		{"日本", 4, AlignLeft, "日本"},
	}
	for _, tc := range cases {
		if got := Pad(tc.cell, tc.width, tc.align); got != tc.want {
			t.Errorf("Pad(%q, %d) = %q, want %q", tc.cell, tc.width, got, tc.want)
		}
	}
}
