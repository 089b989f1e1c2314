package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	date  string
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) Stats(ctx context.Context, date string) error {
	f.calls = append(f.calls, "stats")
	f.date = date
	return nil
}
func (f *fakeExec) AddMeal(ctx context.Context) error {
	f.calls = append(f.calls, "addmeal")
	return nil
}
func (f *fakeExec) AddWorkout(ctx context.Context) error {
	f.calls = append(f.calls, "addworkout")
	return nil
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	out := captureOutput(t)

	input := bufio.NewReader(strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"profile",
		"stats 2024-06-01",
		"addmeal",
		"addworkout",
		"",
		"foobar",
		"logout",
		"exit",
		"register",
	}, "\n")))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func(context.Context) string { return "status" }, input)

	want := []string{"login", "profile", "stats", "addmeal", "addworkout", "logout"}
	if strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	if exec.date != "2024-06-01" {
		t.Fatalf("stats date = %q", exec.date)
	}

	joined := strings.Join(*out, "\n")
	for _, s := range []string{
		"Available commands: register, login, exit",
		"Available commands: profile, stats [YYYY-MM-DD], addmeal, addworkout, logout, exit",
		"Unknown command: foobar",
		"Bye!",
		"nt status>",
	} {
		if !strings.Contains(joined, s) {
			t.Fatalf("output misses %q:\n%s", s, joined)
		}
	}
}

func TestRunREPL_StatsWithoutDateAndEOF(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{loggedIn: true, date: "unset"}
	runREPL(context.Background(), exec, func(context.Context) string { return "" }, bufio.NewReader(strings.NewReader("stats\n")))

	if len(exec.calls) != 1 || exec.date != "" {
		t.Fatalf("calls = %v, date = %q", exec.calls, exec.date)
	}
}
