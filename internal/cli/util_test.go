package cli

import (
	"testing"

	"github.com/tengjizhang/hnmd/internal/model"
)

func TestParseID(t *testing.T) {
	if id, err := parseID(" 42 "); err != nil || id != 42 {
		t.Fatalf("parseID: got %d, %v", id, err)
	}
	for _, bad := range []string{"", "abc", "0", "-3"} {
		if _, err := parseID(bad); err == nil {
			t.Fatalf("parseID(%q) should fail", bad)
		}
	}
}

func TestCompactText(t *testing.T) {
	if got := compactText("  a\n  b\tc  ", 0); got != "a b c" {
		t.Fatalf("whitespace collapse: %q", got)
	}
	if got := compactText("abcdefgh", 5); got != "abcd..." {
		t.Fatalf("truncation: %q", got)
	}
	if got := compactText("short", 10); got != "short" {
		t.Fatalf("no-op truncation: %q", got)
	}
}

func TestFallback(t *testing.T) {
	if got := fallback("  ", "fb"); got != "fb" {
		t.Fatalf("fallback blank: %q", got)
	}
	if got := fallback("v", "fb"); got != "v" {
		t.Fatalf("fallback set: %q", got)
	}
}

func TestParseOutputFormat(t *testing.T) {
	for raw, want := range map[string]model.OutputFormat{
		"table": model.OutputTable,
		"JSON":  model.OutputJSON,
		" wide ": model.OutputWide,
	} {
		got, err := parseOutputFormat(raw)
		if err != nil || got != want {
			t.Fatalf("parseOutputFormat(%q): got %q, %v", raw, got, err)
		}
	}
	if _, err := parseOutputFormat("yaml"); err == nil {
		t.Fatalf("unknown format should fail")
	}
}
