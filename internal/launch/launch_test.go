package launch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/quarryhq/erun/internal/toolchain"
)

// Records toolchain invocations and fails the one whose first argument
// matches failOn.
type fakeRunner struct {
	calls  [][]string
	dirs   []string
	failOn string
}

func (f *fakeRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	f.dirs = append(f.dirs, dir)
	if f.failOn != "" && len(args) > 0 && args[0] == f.failOn {
		return fmt.Errorf("exit status 101")
	}
	return nil
}

// Records the composed daemon command instead of exec'ing it.
type fakeStarter struct {
	started bool
	cmd     *Command
}

func (f *fakeStarter) Start(cmd *Command) error {
	f.started = true
	f.cmd = cmd
	return nil
}

func TestRunStepOrder(t *testing.T) {
	root := t.TempDir()
	runner := &fakeRunner{}
	starter := &fakeStarter{}

	err := Run(context.Background(), Options{
		Network: "regtest",
		Root:    root,
		Runner:  runner,
		Starter: starter,
		Environ: []string{"HOME=/home/op"},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(runner.calls) != 2 {
		t.Fatalf("toolchain calls = %d, want 2", len(runner.calls))
	}
	if !slices.Equal(runner.calls[0], []string{"cargo", "fmt", "--all"}) {
		t.Fatalf("first call = %v, want cargo fmt --all", runner.calls[0])
	}
	want := []string{"cargo", "build", "--all", "--release", "--features", "metrics_process"}
	if !slices.Equal(runner.calls[1], want) {
		t.Fatalf("second call = %v, want %v", runner.calls[1], want)
	}
	for i, dir := range runner.dirs {
		if dir != root {
			t.Fatalf("call %d dir = %q, want %q", i, dir, root)
		}
	}

	if !starter.started {
		t.Fatal("daemon was never started")
	}
	if starter.cmd.Args[2] != "regtest" {
		t.Fatalf("network arg = %q, want regtest", starter.cmd.Args[2])
	}
}

func TestRunBuildFailureAbortsStart(t *testing.T) {
	runner := &fakeRunner{failOn: "build"}
	starter := &fakeStarter{}

	err := Run(context.Background(), Options{
		Network: "testnet",
		Root:    t.TempDir(),
		Runner:  runner,
		Starter: starter,
	})
	if !errors.Is(err, toolchain.ErrBuild) {
		t.Fatalf("err = %v, want ErrBuild", err)
	}
	if starter.started {
		t.Fatal("daemon started after failed build")
	}
}

func TestRunFmtFailureAbortsBuild(t *testing.T) {
	runner := &fakeRunner{failOn: "fmt"}
	starter := &fakeStarter{}

	err := Run(context.Background(), Options{
		Network: "testnet",
		Root:    t.TempDir(),
		Runner:  runner,
		Starter: starter,
	})
	if !errors.Is(err, toolchain.ErrFormat) {
		t.Fatalf("err = %v, want ErrFormat", err)
	}
	if len(runner.calls) != 1 {
		t.Fatalf("toolchain calls = %d, want 1 (fmt only)", len(runner.calls))
	}
	if starter.started {
		t.Fatal("daemon started after failed format")
	}
}

func TestRunConfigOverride(t *testing.T) {
	root := t.TempDir()
	cfg := "cargo = \"cross\"\nfeatures = [\"metrics\"]\ndaemon_bin = \"out/electrs\"\n"
	if err := os.WriteFile(filepath.Join(root, "erun.toml"), []byte(cfg), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	runner := &fakeRunner{}
	starter := &fakeStarter{}

	err := Run(context.Background(), Options{
		Network: "mainnet",
		Root:    root,
		Runner:  runner,
		Starter: starter,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if runner.calls[0][0] != "cross" {
		t.Fatalf("toolchain bin = %q, want cross", runner.calls[0][0])
	}
	want := []string{"cross", "build", "--all", "--release", "--features", "metrics"}
	if !slices.Equal(runner.calls[1], want) {
		t.Fatalf("build call = %v, want %v", runner.calls[1], want)
	}
	if starter.cmd.Path != "out/electrs" {
		t.Fatalf("daemon path = %q, want out/electrs", starter.cmd.Path)
	}
}

func TestRunForwardsExtraArgs(t *testing.T) {
	runner := &fakeRunner{}
	starter := &fakeStarter{}
	extra := []string{"--electrum-rpc-addr", "127.0.0.1:60001"}

	err := Run(context.Background(), Options{
		Network: "testnet",
		Extra:   extra,
		Root:    t.TempDir(),
		Runner:  runner,
		Starter: starter,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := starter.cmd.Args[len(starter.cmd.Args)-2:]
	if !slices.Equal(got, extra) {
		t.Fatalf("forwarded args = %v, want %v", got, extra)
	}
}
