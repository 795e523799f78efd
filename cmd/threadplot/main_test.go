package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/weiihann/threadplot/dataset"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cmd := newRootCmd(logger, new(slog.LevelVar))

	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()

	return out.String(), err
}

func outputFiles(t *testing.T) []string {
	t.Helper()

	entries, err := os.ReadDir(".")
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	return names
}

func TestRunWritesChart(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := execute(t, "5 10 15 20 25 30\n", "0", "0", "100"); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	files := outputFiles(t)
	if len(files) != 1 || files[0] != "0_0_100.png" {
		t.Errorf("files = %v, want [0_0_100.png]", files)
	}
}

func TestRunIgnoresExtraArgs(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := execute(t, "1 2 3 4 5 6\n", "10", "20", "70", "extra"); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if _, err := os.Stat("10_20_70.png"); err != nil {
		t.Errorf("expected 10_20_70.png: %v", err)
	}
}

func TestRunArgCount(t *testing.T) {
	tests := [][]string{
		nil,
		{"10"},
		{"10", "20"},
	}

	for _, args := range tests {
		chdir(t, t.TempDir())

		_, err := execute(t, "1 2 3 4 5 6\n", args...)
		if !errors.Is(err, ErrArgCount) {
			t.Errorf("args %v: err = %v, want ErrArgCount", args, err)
		}

		if files := outputFiles(t); len(files) != 0 {
			t.Errorf("args %v: unexpected files %v", args, files)
		}
	}
}

func TestRunParseError(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "1 2 abc 4 5 6\n", "10", "20", "70")
	if !errors.Is(err, dataset.ErrParse) {
		t.Errorf("err = %v, want ErrParse", err)
	}

	if files := outputFiles(t); len(files) != 0 {
		t.Errorf("unexpected files %v", files)
	}
}

func TestRunInsufficientData(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "1 2 3\n", "10", "20", "70")
	if !errors.Is(err, dataset.ErrInsufficientData) {
		t.Errorf("err = %v, want ErrInsufficientData", err)
	}

	if files := outputFiles(t); len(files) != 0 {
		t.Errorf("unexpected files %v", files)
	}
}

func TestRunEmptyInput(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "", "10", "20", "70")
	if !errors.Is(err, dataset.ErrInsufficientData) {
		t.Errorf("err = %v, want ErrInsufficientData", err)
	}
}

func TestRunHTML(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := execute(t, "1 2 3 4 5 6\n", "10", "20", "70", "--html"); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	for _, name := range []string{"10_20_70.png", "10_20_70.html"} {
		if _, err := os.Stat(name); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}

func TestRunSummary(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "100 50 25 20 10 5\n", "10", "20", "70", "--summary")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if !strings.Contains(out, "| 2 | 50.00ms | 2.00x |") {
		t.Errorf("unexpected summary:\n%s", out)
	}
}

func TestRunJSON(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "100 50 25 20 10 5\n", "10", "20", "70", "--json")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if !strings.Contains(out, `"file": "10_20_70.png"`) {
		t.Errorf("unexpected JSON:\n%s", out)
	}
}

func TestRunNegativeRatioLabels(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-10", "20", "90"}, "-10_20_90.png"},
		{[]string{"10", "-5", "-1.5", "--summary"}, "10_-5_-1.5.png"},
		{[]string{"--html", "-10", "20", "90"}, "-10_20_90.png"},
		{[]string{"--", "-h", "0", "100"}, "-h_0_100.png"},
	}

	for _, tt := range tests {
		chdir(t, t.TempDir())

		if _, err := execute(t, "1 2 3 4 5 6\n", tt.args...); err != nil {
			t.Errorf("args %v: execute failed: %v", tt.args, err)

			continue
		}

		if _, err := os.Stat(tt.want); err != nil {
			t.Errorf("args %v: expected %s: %v", tt.args, tt.want, err)
		}
	}
}

func TestRunFlagsAnywhere(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "100 50 25 20 10 5\n", "--html=true", "10", "--summary", "20", "70")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if _, err := os.Stat("10_20_70.html"); err != nil {
		t.Errorf("expected 10_20_70.html: %v", err)
	}
	if !strings.Contains(out, "| 1 | 100.00ms | 1.00x |") {
		t.Errorf("unexpected summary:\n%s", out)
	}
}

func TestRunHelp(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "", "--help")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if !strings.Contains(out, "--summary") {
		t.Errorf("expected flag usage in help:\n%s", out)
	}
	if files := outputFiles(t); len(files) != 0 {
		t.Errorf("unexpected files %v", files)
	}
}

func TestSplitArgs(t *testing.T) {
	cmd := newRootCmd(slog.New(slog.NewTextHandler(io.Discard, nil)), new(slog.LevelVar))
	cmd.InitDefaultHelpFlag()

	args, flagArgs := splitArgs(cmd.Flags(),
		[]string{"-10", "--json", "-h", "20", "--unknown", "--", "--html"})

	wantArgs := []string{"-10", "20", "--unknown", "--html"}
	wantFlags := []string{"--json", "-h"}

	if strings.Join(args, " ") != strings.Join(wantArgs, " ") {
		t.Errorf("args = %v, want %v", args, wantArgs)
	}
	if strings.Join(flagArgs, " ") != strings.Join(wantFlags, " ") {
		t.Errorf("flagArgs = %v, want %v", flagArgs, wantFlags)
	}
}

// chdir changes the working directory to dir for the duration of the
// test, restoring the previous one on cleanup (stand-in for t.Chdir,
// which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}
