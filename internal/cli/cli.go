// Package cli implements the lineinfile command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jwodder/lineinfile"
	"github.com/jwodder/lineinfile/internal/diffview"
)

// In/Out/Err override standard I/O. If nil, defaults are used. Overriding is
// useful for testing.
type RunOptions struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run runs the CLI with args (typically you'd use os.Args).
//
// It returns a recommended exit code (0, 1, or 2) and an error, if any:
//   - 0 -> err == nil
//   - 1 -> err != nil, but the structure of args is sound (flags are correct, etc).
//   - 2 -> err != nil, args parse error or misuse of flags, etc.
//
// Note that in cases of errors, Run has already displayed an error message to
// opts.Err || Stderr. Callers may use os.Exit with the exit code.
func Run(args []string, opts *RunOptions) (int, error) {
	argv := args
	if len(argv) > 0 {
		argv = argv[1:]
	}

	var in io.Reader = os.Stdin
	var out io.Writer = os.Stdout
	var errW io.Writer = os.Stderr
	if opts != nil {
		if opts.In != nil {
			in = opts.In
		}
		if opts.Out != nil {
			out = opts.Out
		}
		if opts.Err != nil {
			errW = opts.Err
		}
	}

	state := &runState{}
	root := newRootCommand(state)
	root.SetArgs(argv)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errW)

	err := root.Execute()
	if err == nil {
		return 0, nil
	}

	// Errors raised before a command body started running are argv problems
	// (unknown flags, unknown subcommands, wrong argument counts) even when
	// cobra doesn't route them through the flag-error hook.
	code := 1
	var usage usageError
	if errors.As(err, &usage) || !state.ranBody {
		code = 2
	}
	fmt.Fprintf(errW, "lineinfile: %v\n", err)
	return code, err
}

// runState records whether a command body was reached, so Run can tell
// usage errors apart from operational ones.
type runState struct {
	ranBody bool
}

func newRootCommand(state *runState) *cobra.Command {
	root := &cobra.Command{
		Use:   "lineinfile",
		Short: "Add & remove lines in files",
		Long: `Ensure that a given line is or is not present in a file.

The add subcommand inserts a line into a file if not already present, either
appending it, placing it relative to a line matching a regular expression, or
replacing a matching line outright. The remove subcommand deletes all lines
matching a regular expression.`,
		Version:       lineinfile.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetVersionTemplate("lineinfile {{.Version}}\n")
	root.Flags().BoolP("version", "V", false, "Show the program version and exit")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(newAddCommand(state), newRemoveCommand(state))
	return root
}

// usageError indicates a user-facing mistake (exit code 2).
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) usageError {
	return usageError{fmt.Errorf(format, args...)}
}

// usageArgs wraps a positional-argument validator so that violations count
// as misuse rather than operational failures.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// fileArg resolves the optional FILE positional; absent or "-" means
// standard input.
func fileArg(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	return "-"
}

func readAll(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// writeResult delivers an edit result to outfile, with "-" (or "", for
// standard-input runs without --outfile) meaning standard output. The
// destination is written even when the edit changed nothing.
func writeResult(cmd *cobra.Command, outfile, content string) error {
	if outfile == "" || outfile == "-" {
		_, err := io.WriteString(cmd.OutOrStdout(), content)
		return err
	}
	return os.WriteFile(outfile, []byte(content), 0o644)
}

// printDiff renders a unified diff of the edit on standard error, colored
// when stderr is a terminal. Equal inputs render nothing.
func printDiff(cmd *cobra.Command, name, before, after string) {
	errW := cmd.ErrOrStderr()
	d := diffview.Unified(name, name, before, after, isTerminal(errW))
	if d != "" {
		fmt.Fprintln(errW, d)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
