package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/solverbench/sudoku/solver"
)

var solvedValues = []int{
	1, 2, 3, 4, 5, 6, 7, 8, 9,
	4, 5, 6, 7, 8, 9, 1, 2, 3,
	7, 8, 9, 1, 2, 3, 4, 5, 6,
	2, 3, 4, 5, 6, 7, 8, 9, 1,
	5, 6, 7, 8, 9, 1, 2, 3, 4,
	8, 9, 1, 2, 3, 4, 5, 6, 7,
	3, 4, 5, 6, 7, 8, 9, 1, 2,
	6, 7, 8, 9, 1, 2, 3, 4, 5,
	9, 1, 2, 3, 4, 5, 6, 7, 8,
}

func TestOutputName(t *testing.T) {
	cases := []struct {
		path, want string
	}{
		{"puzzle1.txt", "1.txt"},
		{"input/puzzle1.txt", "1.txt"},
		{"/data/puzzles/puzzleHard.txt", "Hard.txt"},
		{"board.txt", "board.txt"},
		{"puzzle", ""},
	}
	for _, tc := range cases {
		if got := OutputName(tc.path); got != tc.want {
			t.Errorf("OutputName(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestConsole(t *testing.T) {
	res := solver.Result{Values: solvedValues, Nodes: 42, Elapsed: 1500 * time.Microsecond}
	var b strings.Builder
	Console(&b, res, 3*time.Millisecond)
	out := b.String()
	if !strings.HasPrefix(out, "1 2 3 4 5 6 7 8 9\n") {
		t.Errorf("output does not start with the board:\n%s", out)
	}
	for _, want := range []string{
		"Total clock time: 3\n",
		"Search clock time: 1.5\n",
		"Number of nodes generated: 42\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNoSolution(t *testing.T) {
	res := solver.Result{Nodes: 82, Elapsed: 2 * time.Millisecond}
	var b strings.Builder
	NoSolution(&b, res, 5*time.Millisecond)
	out := b.String()
	if !strings.HasPrefix(out, "No solution exists.\n") {
		t.Errorf("output does not lead with the failure line:\n%s", out)
	}
	for _, want := range []string{
		"Total clock time: 5\n",
		"Search clock time: 2\n",
		"Number of nodes generated: 82\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	res := solver.Result{Values: solvedValues, Nodes: 9, Elapsed: time.Millisecond}
	if err := WriteFiles(dir, "1.txt", res, 2*time.Millisecond); err != nil {
		t.Fatalf("WriteFiles failed: %v", err)
	}

	solution, err := os.ReadFile(filepath.Join(dir, "solution1.txt"))
	if err != nil {
		t.Fatalf("solution file not written: %v", err)
	}
	if !strings.HasPrefix(string(solution), "1 2 3 4 5 6 7 8 9\n") {
		t.Errorf("solution file content:\n%s", solution)
	}
	if lines := strings.Count(string(solution), "\n"); lines != 9 {
		t.Errorf("solution file has %d lines, want 9", lines)
	}

	performance, err := os.ReadFile(filepath.Join(dir, "performance1.txt"))
	if err != nil {
		t.Fatalf("performance file not written: %v", err)
	}
	want := "Total clock time: 2\nSearch clock time: 1\nNumber of nodes generated: 9\n"
	if string(performance) != want {
		t.Errorf("performance file content %q, want %q", performance, want)
	}
}

func TestWriteFilesBadDir(t *testing.T) {
	res := solver.Result{Values: solvedValues}
	err := WriteFiles(filepath.Join(t.TempDir(), "missing"), "1.txt", res, 0)
	if err == nil {
		t.Fatal("WriteFiles succeeded in a nonexistent directory")
	}
}
