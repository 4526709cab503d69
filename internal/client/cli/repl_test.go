package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls   []string
	renders int
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Go(ctx context.Context, path string) error {
	f.calls = append(f.calls, "go "+path)
	return nil
}
func (f *fakeExec) SignUp(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
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
func (f *fakeExec) Next(ctx context.Context) error { f.calls = append(f.calls, "next"); return nil }
func (f *fakeExec) Prev(ctx context.Context) error { f.calls = append(f.calls, "prev"); return nil }
func (f *fakeExec) Open(ctx context.Context, n int) error {
	f.calls = append(f.calls, "open "+strings.Repeat("*", n))
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) Lang(ctx context.Context, lang string) error {
	f.calls = append(f.calls, "lang "+lang)
	return nil
}
func (f *fakeExec) Back(ctx context.Context) error { f.calls = append(f.calls, "back"); return nil }
func (f *fakeExec) Render(ctx context.Context)     { f.renders++ }

func silence(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		printed = append(printed, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &printed
}

func TestRunREPL_Dispatch(t *testing.T) {
	silence(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"home",
		"go /activate/1234",
		"signup",
		"login",
		"next",
		"prev",
		"open 2",
		"profile",
		"lang tr",
		"back",
		"logout",
		"foobar",
		"exit",
		"home",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(input))

	assert.Equal(t, []string{
		"go /",
		"go /activate/1234",
		"signup",
		"login",
		"next",
		"prev",
		"open **",
		"profile",
		"lang tr",
		"back",
		"logout",
	}, exec.calls)
	assert.Equal(t, len(exec.calls), exec.renders)
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	printed := silence(t)

	input := strings.NewReader("go\nopen\nopen x\nopen 0\nlang\nquit\n")
	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(input))

	assert.Empty(t, exec.calls)
	assert.Zero(t, exec.renders)
	assert.Contains(t, *printed, "Usage: go <path>")
	assert.Contains(t, *printed, "Usage: open <n>")
	assert.Contains(t, *printed, "Usage: lang <en|tr>")
	assert.Contains(t, *printed, "Bye!")
}

func TestRunREPL_HelpDependsOnLogin(t *testing.T) {
	printed := silence(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("help\nlogin\nhelp\n")))

	var help []string
	for _, p := range *printed {
		if strings.HasPrefix(p, "Available commands") {
			help = append(help, p)
		}
	}
	if assert.Len(t, help, 2) {
		assert.Contains(t, help[0], "signup")
		assert.NotContains(t, help[0], "logout")
		assert.Contains(t, help[1], "logout")
	}
}
