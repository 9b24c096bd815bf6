package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/aoc/internal/domain"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func execDay(t *testing.T, day int, args ...string) (string, error) {
	t.Helper()
	s := &session{}
	cmd := newDayCmd(day, s)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	s.close()
	return out.String(), err
}

func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	s := &session{}
	cmd := newRootCmd(s)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	s.close()
	return out.String(), err
}

const (
	day1Sample = "3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n"
	day2Sample = "7 6 4 2 1\n1 2 7 8 9\n9 7 6 2 1\n1 3 2 4 5\n8 6 4 4 1\n1 3 6 7 9\n"
)

// --- standalone programs ---

func TestDayCmd_PrintsPartTwo(t *testing.T) {
	tmp := t.TempDir()
	cases := []struct {
		day     int
		content string
		want    string
	}{
		{1, day1Sample, "31"},
		{2, day2Sample, "4"},
		{3, "xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))\n", "48"},
	}
	for _, c := range cases {
		p := writeInput(t, tmp, filepath.Join(fmt.Sprintf("dec%d", c.day), "input.txt"), c.content)
		out, err := execDay(t, c.day, "--input", p)
		if err != nil {
			t.Fatalf("dec%d: unexpected error: %v", c.day, err)
		}
		if got := strings.TrimSpace(out); got != c.want {
			t.Fatalf("dec%d: got %q, want %q", c.day, got, c.want)
		}
	}
}

func TestDayCmd_ToggleCarriesAcrossLines(t *testing.T) {
	p := writeInput(t, t.TempDir(), "in.txt", "mul(1,1)don't()\nmul(5,5)do()mul(2,3)\n")
	out, err := execDay(t, 3, "-i", p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out); got != "7" {
		t.Fatalf("got %q, want 7", got)
	}
}

func TestDayCmd_MissingFile(t *testing.T) {
	_, err := execDay(t, 1, "-i", filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found kind, got %v", err)
	}
}

func TestDayCmd_ParseErrorNamesLine(t *testing.T) {
	p := writeInput(t, t.TempDir(), "in.txt", "1 2\n3 x\n")
	_, err := execDay(t, 1, "-i", p)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid_input kind, got %v", err)
	}
	if !strings.Contains(err.Error(), "line=2") {
		t.Fatalf("expected line number in error, got %v", err)
	}
}

func TestDayCmd_BlankLineIsFatalForDayOne(t *testing.T) {
	p := writeInput(t, t.TempDir(), "in.txt", "3   4\n   \n4   3\n")
	_, err := execDay(t, 1, "-i", p)
	if err == nil {
		t.Fatal("expected parse error for blank line")
	}
	if !domain.IsKind(err, domain.KindInvalidInput) || !strings.Contains(err.Error(), "line=2") {
		t.Fatalf("expected invalid_input on line 2, got %v", err)
	}
}

func TestDayCmd_RejectsArgs(t *testing.T) {
	if _, err := execDay(t, 1, "extra"); err == nil {
		t.Fatal("expected error for positional argument")
	}
}

// --- solve ---

func TestSolve_PartOne(t *testing.T) {
	p := writeInput(t, t.TempDir(), "in.txt", day1Sample)
	out, err := execRoot(t, "solve", "1", "--part", "1", "-i", p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out); got != "11" {
		t.Fatalf("got %q, want 11", got)
	}
}

func TestSolve_ExpectMismatchFails(t *testing.T) {
	p := writeInput(t, t.TempDir(), "in.txt", day2Sample)
	out, err := execRoot(t, "solve", "dec2", "-i", p, "--expect", "5")
	if err == nil {
		t.Fatal("expected check failure")
	}
	if !strings.Contains(err.Error(), "expected 5, got 4") {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "4" {
		t.Fatalf("answer should still be printed, got %q", out)
	}
}

func TestSolve_JSONFormat(t *testing.T) {
	p := writeInput(t, t.TempDir(), "in.txt", day1Sample)
	out, err := execRoot(t, "solve", "1", "-i", p, "--format", "json", "--expect", "31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{`"answer": 31`, `"passed": true`, `"title": "Historian Hysteria"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output:\n%s", want, out)
		}
	}
}

func TestSolve_RejectsBadArgs(t *testing.T) {
	cases := [][]string{
		{"solve", "26"},
		{"solve", "1", "--part", "3"},
		{"solve", "1", "--format", "yaml"},
		{"solve", "4", "-i", "whatever.txt"},
	}
	for _, args := range cases {
		if _, err := execRoot(t, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

// --- verify / days / version ---

func TestVerify_AllSamplesPass(t *testing.T) {
	out, err := execRoot(t, "verify")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "OK (6 sample(s))") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestDays_ListsPuzzles(t *testing.T) {
	out, err := execRoot(t, "days")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, title := range []string{"Historian Hysteria", "Red-Nosed Reports", "Mull It Over"} {
		if !strings.Contains(out, title) {
			t.Fatalf("expected %q in output:\n%s", title, out)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := execRoot(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "aoc ") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestVersion_ShowsLogFileInWorkspace(t *testing.T) {
	root := t.TempDir()
	if _, err := execRoot(t, "init", root); err != nil {
		t.Fatalf("init: %v", err)
	}

	out, err := execRoot(t, "-w", root, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "log: " + filepath.Join(root, ".aoc", "logs", "aoc.log")
	if !strings.Contains(out, want) {
		t.Fatalf("expected %q in output:\n%s", want, out)
	}
}

func TestExplicitWorkspaceWithoutConfigLeavesNoLogs(t *testing.T) {
	dir := t.TempDir()
	p := writeInput(t, t.TempDir(), "in.txt", day1Sample)

	_, err := execRoot(t, "-w", dir, "solve", "1", "-i", p)
	if err == nil {
		t.Fatal("expected error for a directory without aoc.yaml")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found kind, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, ".aoc")); !os.IsNotExist(statErr) {
		t.Fatalf("expected no .aoc directory under %s, stat err=%v", dir, statErr)
	}

	out, err := execRoot(t, "-w", dir, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.Contains(out, "log:") {
		t.Fatalf("expected no log file line, got %q", out)
	}
}

// --- workspace flow ---

func TestWorkspaceFlow_InitSolveSaveShow(t *testing.T) {
	root := t.TempDir()

	if _, err := execRoot(t, "init", root); err != nil {
		t.Fatalf("init: %v", err)
	}
	writeInput(t, root, filepath.Join("inputs", "dec1.txt"), day1Sample)

	out, err := execRoot(t, "-w", root, "solve", "1", "--save")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if strings.TrimSpace(out) != "31" {
		t.Fatalf("solve output %q", out)
	}

	out, err = execRoot(t, "-w", root, "runs", "list")
	if err != nil {
		t.Fatalf("runs list: %v", err)
	}
	fields := strings.Fields(out)
	if len(fields) < 5 || fields[1] != "dec1" || fields[4] != "31" {
		t.Fatalf("unexpected runs list output %q", out)
	}

	out, err = execRoot(t, "-w", root, "runs", "show", fields[0], "--field", "$.answer")
	if err != nil {
		t.Fatalf("runs show: %v", err)
	}
	if strings.TrimSpace(out) != "31" {
		t.Fatalf("runs show output %q", out)
	}

	if _, err := os.Stat(filepath.Join(root, ".aoc", "logs", "aoc.log")); err != nil {
		t.Fatalf("expected log file: %v", err)
	}
}

func TestWorkspaceFlow_ConfiguredAnswerIsChecked(t *testing.T) {
	root := t.TempDir()
	writeInput(t, root, "aoc.yaml", `aoc:
  days:
    2:
      input: data/two.txt
      answers:
        1: 3
`)
	writeInput(t, root, filepath.Join("data", "two.txt"), day2Sample)

	_, err := execRoot(t, "-w", root, "solve", "2", "-p", "1")
	if err == nil {
		t.Fatal("expected configured answer mismatch")
	}
	if !strings.Contains(err.Error(), "expected 3, got 2") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSolve_SaveWithoutWorkspace(t *testing.T) {
	tmp := t.TempDir()
	t.Chdir(tmp)

	p := writeInput(t, tmp, "in.txt", day1Sample)
	if _, err := execRoot(t, "solve", "1", "-i", p, "--save"); err == nil {
		t.Fatal("expected error: --save outside a workspace")
	}
}

// --- input resolution ---

func TestResolveInputPath(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "ws")
	cfg := domain.DefaultConfig()
	cfg.Days = map[int]domain.DayConfig{2: {Input: "custom/two.txt"}}
	ws := &workspaceCtx{root: root, cfg: cfg}

	cases := []struct {
		name     string
		ws       *workspaceCtx
		day      int
		explicit string
		want     string
	}{
		{"explicit wins", ws, 1, "mine.txt", "mine.txt"},
		{"no workspace", nil, 1, "", defaultInput},
		{"pattern", ws, 1, "", filepath.Join(root, "inputs", "dec1.txt")},
		{"day override", ws, 2, "", filepath.Join(root, "custom", "two.txt")},
	}
	for _, c := range cases {
		got, err := resolveInputPath(c.ws, c.day, c.explicit)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}
