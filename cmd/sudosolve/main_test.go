package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/solverbench/sudoku/solver"
)

const onePuzzle = `4 0 0 0 0 3 5 0 2
0 0 9 5 0 6 3 4 0
0 0 0 0 0 0 0 0 8
0 0 0 0 3 4 8 6 0
0 0 4 6 0 5 2 0 0
0 2 8 7 9 0 0 0 0
9 0 0 0 0 0 0 0 0
0 8 7 3 0 2 9 0 0
5 0 2 9 0 0 0 0 6
`

// the same givens with the two top corners swapped, putting two
// 4s in the top-right block
const conflictPuzzle = `2 0 0 0 0 3 5 0 4
0 0 9 5 0 6 3 4 0
0 0 0 0 0 0 0 0 8
0 0 0 0 3 4 8 6 0
0 0 4 6 0 5 2 0 0
0 2 8 7 9 0 0 0 0
9 0 0 0 0 0 0 0 0
0 8 7 3 0 2 9 0 0
5 0 2 9 0 0 0 0 6
`

func writePuzzle(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing puzzle file: %v", err)
	}
	return path
}

func TestRunWritesOutputFiles(t *testing.T) {
	dir := t.TempDir()
	path := writePuzzle(t, dir, "puzzle1.txt", onePuzzle)
	if err := run(path, solver.ForwardChecking, dir, time.Now()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	solution, err := os.ReadFile(filepath.Join(dir, "solution1.txt"))
	if err != nil {
		t.Fatalf("solution file not written: %v", err)
	}
	if !strings.HasPrefix(string(solution), "4 6 1 8 7 3 5 9 2\n") {
		t.Errorf("solution file content:\n%s", solution)
	}

	performance, err := os.ReadFile(filepath.Join(dir, "performance1.txt"))
	if err != nil {
		t.Fatalf("performance file not written: %v", err)
	}
	for _, want := range []string{
		"Total clock time: ",
		"Search clock time: ",
		"Number of nodes generated: 49\n",
	} {
		if !strings.Contains(string(performance), want) {
			t.Errorf("performance file missing %q:\n%s", want, performance)
		}
	}
}

func TestRunMissingFile(t *testing.T) {
	err := run(filepath.Join(t.TempDir(), "nope.txt"), solver.Backtracking, ".", time.Now())
	if err == nil {
		t.Fatal("run succeeded on a missing puzzle file")
	}
}

func TestRunMalformedPuzzle(t *testing.T) {
	dir := t.TempDir()
	path := writePuzzle(t, dir, "puzzle2.txt", conflictPuzzle)
	err := run(path, solver.Backtracking, dir, time.Now())
	if err == nil {
		t.Fatal("run accepted conflicting givens")
	}
	if !strings.Contains(err.Error(), "malformed puzzle") {
		t.Errorf("error %q does not name the malformed puzzle", err)
	}
}

func TestRunUnknownStrategy(t *testing.T) {
	dir := t.TempDir()
	path := writePuzzle(t, dir, "puzzle3.txt", onePuzzle)
	err := run(path, "DFS", dir, time.Now())
	if !errors.Is(err, solver.ErrInvalidStrategy) {
		t.Errorf("run returned %v, want ErrInvalidStrategy", err)
	}
}

func TestRootCommandArgs(t *testing.T) {
	cmd := newRootCommand(time.Now())
	cmd.SetArgs([]string{"puzzle1.txt"})
	cmd.SetOut(new(strings.Builder))
	cmd.SetErr(new(strings.Builder))
	if err := cmd.Execute(); err == nil {
		t.Error("command accepted a single argument")
	}
}
