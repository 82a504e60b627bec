package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwodder/lineinfile"
	"github.com/jwodder/lineinfile/internal/debuglog"
)

type addFlags struct {
	locator  locatorFlags
	match    matchFlags
	backup   backupFlags
	regexp   string
	backrefs bool
	create   bool
	outfile  string
	diff     bool
}

// fileOnlyOption names the first supplied option that only makes sense when
// editing a file in place.
func (af *addFlags) fileOnlyOption() (string, bool) {
	if name, ok := af.backup.firstSet(); ok {
		return name, true
	}
	if af.create {
		return "--create", true
	}
	return "", false
}

func newAddCommand(state *runState) *cobra.Command {
	af := &addFlags{}
	cmd := &cobra.Command{
		Use:   "add [options] LINE [FILE]",
		Short: "Ensure the given line is in the file",
		Long: `Add the given LINE to the file if it is not already present.

By default the line is appended to the end of the file; the locator options
insert it elsewhere instead. If --regexp is given and a line matches it, that
line is replaced rather than a new line inserted. If FILE is omitted or "-",
the input is read from standard input and the result is printed to standard
output.`,
		Args: usageArgs(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			state.ranBody = true
			return runAdd(cmd, af, args)
		},
	}
	flags := cmd.Flags()
	af.locator.register(flags)
	af.match.register(flags)
	af.backup.register(flags)
	flags.StringVarP(&af.regexp, "regexp", "e", "",
		"Replace the last line matching `REGEXP` with LINE")
	flags.BoolVar(&af.backrefs, "backrefs", false,
		"Expand group references in LINE against the --regexp match")
	flags.BoolVarP(&af.create, "create", "c", false,
		"Treat a nonexistent FILE as empty")
	flags.StringVarP(&af.outfile, "outfile", "o", "",
		"Write the result to `FILE` instead of editing in place")
	flags.BoolVarP(&af.diff, "diff", "d", false,
		"Show a unified diff of the edit on standard error")
	return cmd
}

func runAdd(cmd *cobra.Command, af *addFlags, args []string) error {
	if err := af.backup.finish(cmd.Flags()); err != nil {
		return err
	}
	if af.backrefs && !cmd.Flags().Changed("regexp") {
		return usageErrorf("--backrefs cannot be specified without --regexp")
	}

	line := args[0]
	file := fileArg(args)
	if name, ok := af.fileOnlyOption(); ok {
		if file == "-" {
			return usageErrorf("%s cannot be set when reading from standard input.", name)
		}
		if af.outfile != "" {
			return usageErrorf("%s is incompatible with --outfile.", name)
		}
	}

	opts := &lineinfile.AddOptions{
		Backrefs:   af.backrefs,
		MatchFirst: af.match.first,
		Locator:    af.locator.locator,
	}
	if cmd.Flags().Changed("regexp") {
		p, err := lineinfile.NewPattern(af.regexp)
		if err != nil {
			return err
		}
		opts.Regexp = p
	}
	debuglog.Logf("add: file=%s locator=%s match_first=%v", file, opts.Locator, opts.MatchFirst)

	if file == "-" || af.outfile != "" {
		var before string
		var err error
		if file == "-" {
			before, err = readAll(cmd.InOrStdin())
		} else {
			before, err = readInputFile(file)
		}
		if err != nil {
			return err
		}
		after, err := lineinfile.AddLineToString(before, line, opts)
		if err != nil {
			return err
		}
		if err := writeResult(cmd, af.outfile, after); err != nil {
			return err
		}
		if af.diff {
			printDiff(cmd, file, before, after)
		}
		return nil
	}

	var before string
	haveBefore := false
	if af.diff {
		before, haveBefore = peekFile(file, af.create)
	}
	changed, err := lineinfile.AddLineToFile(file, line, &lineinfile.AddFileOptions{
		AddOptions: *opts,
		Backup:     af.backup.when,
		BackupExt:  af.backup.ext,
		Create:     af.create,
	})
	if err != nil {
		return err
	}
	if af.diff && haveBefore {
		after := before
		if changed {
			if after, err = readInputFile(file); err != nil {
				return err
			}
		}
		printDiff(cmd, file, before, after)
	}
	return nil
}

func readInputFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// peekFile reads a file's current contents for diff rendering. A missing
// file counts as empty when the edit is allowed to create it; any other
// failure just suppresses the diff and is left for the edit to report.
func peekFile(path string, missingOK bool) (string, bool) {
	b, err := os.ReadFile(path)
	if err == nil {
		return string(b), true
	}
	if missingOK && errors.Is(err, os.ErrNotExist) {
		return "", true
	}
	return "", false
}
