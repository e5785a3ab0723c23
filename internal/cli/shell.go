package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"

	"tasktable/internal/exitcode"
)

// Shell reads command lines from in and dispatches each one in order.
// Blank lines and lines starting with # are skipped; "quit" or "exit"
// ends the session. Returns the exit code of the last command run.
func (d *Dispatcher) Shell(ctx context.Context, in io.Reader, out, errOut io.Writer, prompt string) int {
	code := exitcode.Success
	scanner := bufio.NewScanner(in)

	for ctx.Err() == nil {
		if prompt != "" {
			fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			if prompt != "" {
				fmt.Fprintln(out)
			}
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		args, err := splitLine(line)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			code = exitcode.UserError
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			return code
		}

		code = d.Run(ctx, args, out, errOut)
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "error: reading input: %v\n", err)
		return exitcode.UserError
	}
	return code
}

// errComment is returned for a line whose unquoted # would silently drop the
// rest of the command.
var errComment = errors.New(`unquoted # starts a comment; quote the argument, e.g. "Fix bug #3"`)

// lineEnd is appended to a line to detect a trailing comment.
const lineEnd = "\x00end"

// splitLine splits line with shell quoting. Lines with a comment after the
// first word are rejected.
func splitLine(line string) ([]string, error) {
	args, err := shlex.Split(line + " " + lineEnd)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 || args[len(args)-1] != lineEnd {
		return nil, errComment
	}
	return args[:len(args)-1], nil
}
