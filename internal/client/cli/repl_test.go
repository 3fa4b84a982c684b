package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeExec struct {
	calls []string
	args  [][]string
	err   error
}

func (f *fakeExec) SignUp(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
	return f.err
}
func (f *fakeExec) SignIn(ctx context.Context) error {
	f.calls = append(f.calls, "signin")
	return f.err
}
func (f *fakeExec) Find(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "find")
	f.args = append(f.args, args)
	return f.err
}
func (f *fakeExec) Delete(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "delete")
	f.args = append(f.args, args)
	return f.err
}
func (f *fakeExec) Ping(ctx context.Context) error {
	f.calls = append(f.calls, "ping")
	return f.err
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"",
		"signup",
		"signin",
		"find a@x.com",
		"delete 42",
		"ping",
		"foobar",
		"exit",
		"signup",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)), &out)

	want := []string{"signup", "signin", "find", "delete", "ping"}
	if strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	if exec.args[0][0] != "a@x.com" || exec.args[1][0] != "42" {
		t.Fatalf("unexpected args: %v", exec.args)
	}
	if !strings.Contains(out.String(), "Unknown command: foobar") {
		t.Fatalf("unknown command not reported: %q", out.String())
	}
	if !strings.Contains(out.String(), "accounts status> ") {
		t.Fatalf("prompt missing: %q", out.String())
	}
}

func TestRunREPL_ErrorsDoNotStopLoop(t *testing.T) {
	exec := &fakeExec{err: errors.New("server unavailable")}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("ping\nping\n")), &out)

	if len(exec.calls) != 2 {
		t.Fatalf("expected two calls, got %v", exec.calls)
	}
	if strings.Count(out.String(), "Error: server unavailable") != 2 {
		t.Fatalf("errors not printed: %q", out.String())
	}
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("ping\n")), &out)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
