package commands_test

import (
	"bytes"
	"context"
	"flag"
	"io"
	"strings"
	"testing"

	"tasktable/internal/app"
	"tasktable/internal/commands"
	"tasktable/internal/config"
	"tasktable/internal/exitcode"
	"tasktable/internal/output"
	"tasktable/internal/task"
	"tasktable/internal/testutil"
)

// env bundles a session whose toasts go to the same buffer as command output.
type env struct {
	svc *app.Session
	out bytes.Buffer
	cfg *config.Config
}

func newEnv(t *testing.T, quiet bool) *env {
	t.Helper()
	e := &env{cfg: &config.Config{Dir: t.TempDir(), Quiet: quiet}}
	e.svc = app.New(app.WithToast(output.NewToaster(&e.out, quiet)))
	return e
}

// run parses argv with the command's flags and runs it.
func (e *env) run(t *testing.T, cmd commands.Command, argv ...string) (stdout, stderr string, code int) {
	t.Helper()

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.RegisterFlags(fs)
	if err := fs.Parse(argv); err != nil {
		t.Fatalf("flag parse failed: %v", err)
	}

	e.out.Reset()
	var errBuf bytes.Buffer
	code = cmd.Run(context.Background(), e.cfg, e.svc, fs.Args(), &e.out, &errBuf)
	return e.out.String(), errBuf.String(), code
}

func (e *env) seed(t *testing.T, titles ...string) {
	t.Helper()
	for _, title := range titles {
		if _, err := e.svc.Add(context.Background(), testutil.Candidate(title)); err != nil {
			t.Fatalf("seed %q: %v", title, err)
		}
	}
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	e := newEnv(t, false)

	stdout, stderr, code := e.run(t, &commands.VersionCmd{})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "tasktable 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	e := newEnv(t, false)

	stdout, _, code := e.run(t, &commands.HelpCmd{})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	for _, want := range []string{"Usage:", "add (create)", "Global flags:", "quote arguments that contain #"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help output should contain %q", want)
		}
	}
}

// Tests for add command
func TestAddCommand_Success(t *testing.T) {
	e := newEnv(t, false)

	stdout, stderr, code := e.run(t, &commands.AddCmd{},
		"--desc", "2 liters", "--deadline", "2024-05-01", "-p", "high", "Buy", "milk")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "Task successfully added!\n" {
		t.Errorf("expected add toast, got %q", stdout)
	}

	tasks := e.svc.Tasks(context.Background())
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	got := tasks[0]
	if got.ID != 1 || got.Title != "Buy milk" || got.Description != "2 liters" {
		t.Errorf("unexpected task %+v", got)
	}
	if got.Priority != task.PriorityHigh {
		t.Errorf("expected High priority, got %s", got.Priority)
	}
	if got.Deadline != testutil.Date(2024, 5, 1) {
		t.Errorf("unexpected deadline %s", got.Deadline)
	}
}

func TestAddCommand_DefaultsToLowPriority(t *testing.T) {
	e := newEnv(t, true)

	_, _, code := e.run(t, &commands.AddCmd{}, "-d", "x", "--deadline", "2024-05-01", "T")

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	if p := e.svc.Tasks(context.Background())[0].Priority; p != task.PriorityLow {
		t.Errorf("expected Low, got %s", p)
	}
}

func TestAddCommand_AllFieldsMissing(t *testing.T) {
	e := newEnv(t, false)

	stdout, stderr, code := e.run(t, &commands.AddCmd{})

	if code != exitcode.ValidationError {
		t.Errorf("expected exit code %d, got %d", exitcode.ValidationError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	expected := "error: deadline: Deadline is required\n" +
		"error: description: Description is required\n" +
		"error: title: Title is required\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestAddCommand_MalformedDeadlineIsMissing(t *testing.T) {
	e := newEnv(t, false)

	_, stderr, code := e.run(t, &commands.AddCmd{}, "-d", "x", "--deadline", "31/12/2024", "T")

	if code != exitcode.ValidationError {
		t.Errorf("expected exit code %d, got %d", exitcode.ValidationError, code)
	}
	expected := "warning: invalid deadline \"31/12/2024\" (want YYYY-MM-DD)\n" +
		"error: deadline: Deadline is required\n"
	if stderr != expected {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestAddCommand_DuplicateTitle(t *testing.T) {
	e := newEnv(t, false)
	e.seed(t, "Buy milk")

	_, stderr, code := e.run(t, &commands.AddCmd{}, "-d", "x", "--deadline", "2024-05-01", "Buy milk")

	if code != exitcode.ValidationError {
		t.Errorf("expected exit code %d, got %d", exitcode.ValidationError, code)
	}
	if stderr != "error: title: Title must be unique\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if n := len(e.svc.Tasks(context.Background())); n != 1 {
		t.Errorf("expected store size 1, got %d", n)
	}
}

// Tests for update command
func TestUpdateCommand_KeepsUnsetFields(t *testing.T) {
	e := newEnv(t, false)
	e.seed(t, "A", "B")

	stdout, stderr, code := e.run(t, &commands.UpdateCmd{}, "--priority", "Medium", "2")

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d (stderr %q)", code, stderr)
	}
	if stdout != "Task successfully updated!\n" {
		t.Errorf("expected update toast, got %q", stdout)
	}
	got, _ := e.svc.Task(context.Background(), 2)
	if got.Title != "B" || got.Description != "B details" || got.Priority != task.PriorityMedium {
		t.Errorf("unexpected task %+v", got)
	}
}

func TestUpdateCommand_PositionalTitle(t *testing.T) {
	e := newEnv(t, true)
	e.seed(t, "A")

	_, _, code := e.run(t, &commands.UpdateCmd{}, "1", "New", "name")

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	got, _ := e.svc.Task(context.Background(), 1)
	if got.Title != "New name" {
		t.Errorf("expected retitled task, got %q", got.Title)
	}
}

func TestUpdateCommand_TitleOfOtherTask(t *testing.T) {
	e := newEnv(t, false)
	e.seed(t, "A", "B")

	_, stderr, code := e.run(t, &commands.UpdateCmd{}, "--title", "A", "2")

	if code != exitcode.ValidationError {
		t.Errorf("expected exit code %d, got %d", exitcode.ValidationError, code)
	}
	if stderr != "error: title: Title must be unique\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestUpdateCommand_OutOfRangeDeadlineWarns(t *testing.T) {
	e := newEnv(t, false)
	e.seed(t, "A")

	_, stderr, code := e.run(t, &commands.UpdateCmd{}, "--deadline", "2024-13-01", "1")

	if code != exitcode.ValidationError {
		t.Errorf("expected exit code %d, got %d", exitcode.ValidationError, code)
	}
	expected := "warning: invalid deadline \"2024-13-01\" (want YYYY-MM-DD)\n" +
		"error: deadline: Deadline is required\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestUpdateCommand_ClearDeadline(t *testing.T) {
	e := newEnv(t, false)
	e.seed(t, "A")

	_, stderr, code := e.run(t, &commands.UpdateCmd{}, "--deadline", "", "1")

	if code != exitcode.ValidationError {
		t.Errorf("expected exit code %d, got %d", exitcode.ValidationError, code)
	}
	if stderr != "error: deadline: Deadline is required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestUpdateCommand_BothTitles(t *testing.T) {
	e := newEnv(t, false)
	e.seed(t, "A")

	_, stderr, code := e.run(t, &commands.UpdateCmd{}, "--title", "X", "1", "Y")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: cannot use both --title and a positional title\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestUpdateCommand_NotFound(t *testing.T) {
	e := newEnv(t, false)

	_, stderr, code := e.run(t, &commands.UpdateCmd{}, "7")

	if code != exitcode.NotFound {
		t.Errorf("expected exit code %d, got %d", exitcode.NotFound, code)
	}
	if stderr != "error: task not found: 7\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestUpdateCommand_CompletedTask(t *testing.T) {
	e := newEnv(t, false)
	e.seed(t, "A")
	e.svc.Toggle(context.Background(), 1)

	_, stderr, code := e.run(t, &commands.UpdateCmd{}, "-d", "new", "1")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: completed tasks cannot be updated\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for done command
func TestDoneCommand_Toggles(t *testing.T) {
	e := newEnv(t, false)
	e.seed(t, "A")

	stdout, stderr, code := e.run(t, &commands.DoneCmd{}, "1")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "Task marked as complete!\n" {
		t.Errorf("expected toggle toast, got %q", stdout)
	}
	if got, _ := e.svc.Task(context.Background(), 1); !got.IsComplete {
		t.Error("expected task to be complete")
	}

	e.run(t, &commands.DoneCmd{}, "1")
	if got, _ := e.svc.Task(context.Background(), 1); got.IsComplete {
		t.Error("expected second toggle to reopen the task")
	}
}

func TestDoneCommand_NoRef(t *testing.T) {
	e := newEnv(t, false)

	stdout, stderr, code := e.run(t, &commands.DoneCmd{})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: task reference required\n" {
		t.Errorf("expected task reference required error, got %q", stderr)
	}
}

func TestDoneCommand_InvalidRef(t *testing.T) {
	e := newEnv(t, false)

	_, stderr, code := e.run(t, &commands.DoneCmd{}, "abc")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid task reference: abc\n" {
		t.Errorf("expected invalid task reference error, got %q", stderr)
	}
}

func TestDoneCommand_NotFound(t *testing.T) {
	e := newEnv(t, false)
	e.seed(t, "Only task")

	stdout, stderr, code := e.run(t, &commands.DoneCmd{}, "5")

	if code != exitcode.NotFound {
		t.Errorf("expected exit code %d, got %d", exitcode.NotFound, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: task not found: 5\n" {
		t.Errorf("expected not found error, got %q", stderr)
	}
}

// Tests for rm command
func TestRmCommand_Success(t *testing.T) {
	e := newEnv(t, false)
	e.seed(t, "A", "B", "C")

	stdout, stderr, code := e.run(t, &commands.RmCmd{}, "2")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "Task successfully deleted!\n" {
		t.Errorf("expected delete toast, got %q", stdout)
	}
	tasks := e.svc.Tasks(context.Background())
	if len(tasks) != 2 || tasks[0].Title != "A" || tasks[1].Title != "C" {
		t.Errorf("unexpected remaining tasks %+v", tasks)
	}
}

func TestRmCommand_MissingIDSucceeds(t *testing.T) {
	e := newEnv(t, false)
	e.seed(t, "A")

	_, stderr, code := e.run(t, &commands.RmCmd{}, "9")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if n := len(e.svc.Tasks(context.Background())); n != 1 {
		t.Errorf("expected 1 task, got %d", n)
	}
}

func TestRmCommand_NoRef(t *testing.T) {
	e := newEnv(t, false)

	_, stderr, code := e.run(t, &commands.RmCmd{})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task reference required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for list command
func TestListCommand_Empty(t *testing.T) {
	e := newEnv(t, false)

	stdout, _, code := e.run(t, &commands.ListCmd{})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "no tasks found\n" {
		t.Errorf("expected %q, got %q", "no tasks found\n", stdout)
	}
}

func TestListCommand_EmptyQuiet(t *testing.T) {
	e := newEnv(t, true)

	stdout, _, code := e.run(t, &commands.ListCmd{})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected no output, got %q", stdout)
	}
}

func TestListCommand_Mixed(t *testing.T) {
	e := newEnv(t, true)
	e.seed(t, "Buy milk", "Write report", "Call mom")
	e.svc.Toggle(context.Background(), 2)
	e.svc.Delete(context.Background(), 1)

	stdout, _, code := e.run(t, &commands.ListCmd{})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	testutil.GoldenString(t, "list_mixed", stdout)
}

func TestListCommand_OpenOnly(t *testing.T) {
	e := newEnv(t, true)
	e.seed(t, "A", "B")
	e.svc.Toggle(context.Background(), 1)

	stdout, _, _ := e.run(t, &commands.ListCmd{}, "--open")

	if strings.Contains(stdout, " A\n") || !strings.Contains(stdout, " B\n") {
		t.Errorf("unexpected open listing %q", stdout)
	}
}

func TestListCommand_UnexpectedArg(t *testing.T) {
	e := newEnv(t, false)

	_, stderr, code := e.run(t, &commands.ListCmd{}, "extra")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unexpected argument: extra\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}
