package cli

import (
	"github.com/spf13/cobra"

	"github.com/jwodder/lineinfile"
	"github.com/jwodder/lineinfile/internal/debuglog"
)

type removeFlags struct {
	backup  backupFlags
	outfile string
	diff    bool
}

func newRemoveCommand(state *runState) *cobra.Command {
	rf := &removeFlags{}
	cmd := &cobra.Command{
		Use:   "remove [options] REGEXP [FILE]",
		Short: "Delete all lines matching a regular expression",
		Long: `Delete all lines from the file that match the regular expression REGEXP.

If FILE is omitted or "-", the input is read from standard input and the
result is printed to standard output.`,
		Args: usageArgs(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			state.ranBody = true
			return runRemove(cmd, rf, args)
		},
	}
	flags := cmd.Flags()
	rf.backup.register(flags)
	flags.StringVarP(&rf.outfile, "outfile", "o", "",
		"Write the result to `FILE` instead of editing in place")
	flags.BoolVarP(&rf.diff, "diff", "d", false,
		"Show a unified diff of the edit on standard error")
	return cmd
}

func runRemove(cmd *cobra.Command, rf *removeFlags, args []string) error {
	if err := rf.backup.finish(cmd.Flags()); err != nil {
		return err
	}

	file := fileArg(args)
	if name, ok := rf.backup.firstSet(); ok {
		if file == "-" {
			return usageErrorf("%s cannot be set when reading from standard input.", name)
		}
		if rf.outfile != "" {
			return usageErrorf("%s is incompatible with --outfile.", name)
		}
	}

	pattern, err := lineinfile.NewPattern(args[0])
	if err != nil {
		return err
	}
	debuglog.Logf("remove: file=%s pattern=%s", file, pattern)

	if file == "-" || rf.outfile != "" {
		var before string
		if file == "-" {
			before, err = readAll(cmd.InOrStdin())
		} else {
			before, err = readInputFile(file)
		}
		if err != nil {
			return err
		}
		after, err := lineinfile.RemoveLinesFromString(before, pattern)
		if err != nil {
			return err
		}
		if err := writeResult(cmd, rf.outfile, after); err != nil {
			return err
		}
		if rf.diff {
			printDiff(cmd, file, before, after)
		}
		return nil
	}

	var before string
	haveBefore := false
	if rf.diff {
		before, haveBefore = peekFile(file, false)
	}
	changed, err := lineinfile.RemoveLinesFromFile(file, pattern, &lineinfile.RemoveFileOptions{
		Backup:    rf.backup.when,
		BackupExt: rf.backup.ext,
	})
	if err != nil {
		return err
	}
	if rf.diff && haveBefore {
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
