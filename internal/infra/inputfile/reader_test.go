package inputfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/aoc/internal/domain"
)

func TestReadLines(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "input.txt")
	if err := os.WriteFile(p, []byte("3   4\r\n4   3\n\n2 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := NewReader().ReadLines(p)
	if err != nil {
		t.Fatalf("ReadLines error: %v", err)
	}

	want := []string{"3   4", "4   3", "", "2 5"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d (%q)", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestReadLines_LongLine(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "input.txt")
	long := strings.Repeat("mul(1,1)", 200000)
	if err := os.WriteFile(p, []byte(long), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := NewReader().ReadLines(p)
	if err != nil {
		t.Fatalf("ReadLines error: %v", err)
	}
	if len(lines) != 1 || lines[0] != long {
		t.Fatalf("expected the single long line back")
	}
}

func TestReadLines_Missing(t *testing.T) {
	_, err := NewReader().ReadLines(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected underlying not-exist error, got %v", err)
	}
}


func TestReadLines_Directory(t *testing.T) {
	dir := t.TempDir()
	_, err := NewReader().ReadLines(dir)
	if err == nil {
		t.Fatalf("expected error reading a directory")
	}
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected KindExecution, got %v", err)
	}
	if !errors.Is(err, domain.ErrExecution) {
		t.Fatalf("expected ErrExecution, got %v", err)
	}
}

func TestSplitLines(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\n", []string{""}},
		{"a", []string{"a"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
	}
	for _, c := range cases {
		got := splitLines(c.in)
		if len(got) != len(c.want) {
			t.Fatalf("splitLines(%q) = %q, want %q", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("splitLines(%q) = %q, want %q", c.in, got, c.want)
			}
		}
	}
}
