package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mitchellh/go-homedir"
	"github.com/relab/biotrees/newick"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// run executes the command line with a fresh configuration and an empty
// home directory, and returns what the command wrote to its output.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd)

	var out strings.Builder
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestCount(t *testing.T) {
	out, err := run(t, "", "count", "--to", "8", "--binary")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"leaves\tshapes\texpected",
		"1\t1\t1",
		"2\t1\t1",
		"3\t1\t1",
		"4\t2\t2",
		"5\t3\t3",
		"6\t6\t6",
		"7\t11\t11",
		"8\t23\t23",
	}
	if diff := cmp.Diff(want, lines(out)); diff != "" {
		t.Errorf("count mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumerate(t *testing.T) {
	out, err := run(t, "", "enumerate", "--from", "4", "--to", "4")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"newick\tsackin\tcophenetic\tqi\tcherries\tautomorphisms",
		"(*,(*,(*,*)));\t9\t4\t0\t1\t2",
		"(*,(*,*,*));\t7\t3\t2\t0\t6",
		"((*,*),(*,*));\t8\t2\t3\t2\t8",
		"(*,*,(*,*));\t6\t1\t1\t1\t4",
		"(*,*,*,*);\t4\t0\t4\t0\t24",
	}
	if diff := cmp.Diff(want, lines(out)); diff != "" {
		t.Errorf("enumerate mismatch (-want +got):\n%s", diff)
	}

	out, err = run(t, "", "enumerate", "--from", "3", "--to", "4", "--binary")
	if err != nil {
		t.Fatal(err)
	}
	want = []string{
		"newick\tcolless\tsackin\tcophenetic\tqi\tcherries\tautomorphisms",
		"(*,(*,*));\t1\t5\t1\t0\t1\t2",
		"(*,(*,(*,*)));\t3\t9\t4\t0\t1\t2",
		"((*,*),(*,*));\t0\t8\t2\t3\t2\t8",
	}
	if diff := cmp.Diff(want, lines(out)); diff != "" {
		t.Errorf("enumerate --binary mismatch (-want +got):\n%s", diff)
	}
}

func TestStats(t *testing.T) {
	out, err := run(t, "", "stats", "((a,b),(c,d));", "(x,y,z)")
	if err != nil {
		t.Fatal(err)
	}
	got := lines(out)
	if len(got) != 3 {
		t.Fatalf("stats printed %d lines; want 3:\n%s", len(got), out)
	}
	if want := "((*,*),(*,*));\t4\t2\t8\t2\t3\t2\t3\t8\t2\t0\t0\t1\t16"; got[1] != want {
		t.Errorf("stats row = %q; want %q", got[1], want)
	}
	if want := "(*,*,*);\t3\t1\t3\t0\t0\t0\t1\t6\t1\t0\t-\t-\t-"; got[2] != want {
		t.Errorf("stats row = %q; want %q", got[2], want)
	}

	out, err = run(t, "(a,(b,c));\n\n(a,b);\n", "stats")
	if err != nil {
		t.Fatal(err)
	}
	if got := len(lines(out)); got != 3 {
		t.Errorf("stats from stdin printed %d lines; want 3", got)
	}

	if _, err := run(t, "", "stats", "((a,b);"); !errors.Is(err, newick.ErrSyntax) {
		t.Errorf("stats with bad input error = %v; want ErrSyntax", err)
	}
}

func TestSample(t *testing.T) {
	args := []string{"sample", "-n", "6", "--count", "4", "--seed", "5"}
	out, err := run(t, "", args...)
	if err != nil {
		t.Fatal(err)
	}
	got := lines(out)
	if len(got) != 4 {
		t.Fatalf("sample printed %d lines; want 4", len(got))
	}
	for _, line := range got {
		s, err := newick.ParseShape(line)
		if err != nil {
			t.Fatalf("sampled %q does not parse: %v", line, err)
		}
		if s.Kappa() != 6 {
			t.Errorf("sampled %s has %d leaves; want 6", s, s.Kappa())
		}
	}
	again, err := run(t, "", args...)
	if err != nil {
		t.Fatal(err)
	}
	if again != out {
		t.Errorf("same seed gave different samples:\n%s\n%s", out, again)
	}
}

func TestPlot(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sackin.png")
	if _, err := run(t, "", "plot", "-n", "7", "--stat", "sackin", "--out", file); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(file); err != nil || fi.Size() == 0 {
		t.Errorf("plot did not write %s: %v", file, err)
	}
}

func TestUsageErrors(t *testing.T) {
	tests := [][]string{
		{"count", "--from", "5", "--to", "3"},
		{"enumerate", "--from", "-1"},
		{"sample", "-n", "0"},
		{"plot", "--stat", "colless"},
		{"plot", "--stat", "nonsense"},
		{"count", "--log-level", "chatty"},
		{"count", "--profile", "sideways"},
	}
	for _, args := range tests {
		if _, err := run(t, "", args...); !errors.Is(err, errUsage) {
			t.Errorf("%v error = %v; want usage error", args, err)
		}
	}
}

func TestConfigAndEnvironment(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "biotrees.yaml")
	if err := os.WriteFile(cfg, []byte("to: 3\nbinary: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "", "count", "--config", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(lines(out)); got != 4 {
		t.Errorf("count with config printed %d lines; want 4:\n%s", got, out)
	}

	// flags take precedence over the config file
	out, err = run(t, "", "count", "--config", cfg, "--to", "5")
	if err != nil {
		t.Fatal(err)
	}
	if got := lines(out); len(got) != 6 || got[5] != "5\t3\t3" {
		t.Errorf("count --to 5 with binary config printed:\n%s", out)
	}

	t.Setenv("BIOTREES_TO", "2")
	out, err = run(t, "", "count")
	if err != nil {
		t.Fatal(err)
	}
	if got := len(lines(out)); got != 3 {
		t.Errorf("count with BIOTREES_TO=2 printed %d lines; want 3:\n%s", got, out)
	}

	if _, err := run(t, "", "count", "--config", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("count with a missing config file succeeded")
	}
}
