package cli

import (
	"regexp"

	"github.com/spf13/pflag"

	"github.com/jwodder/lineinfile"
)

// The option groups below hold shared state behind custom pflag.Values:
// pflag applies values in command-line order, so of the options in a group,
// the one appearing last on the command line wins.

// ---------- Locator options ----------

type locatorFlags struct {
	locator lineinfile.Locator
}

func (lf *locatorFlags) register(flags *pflag.FlagSet) {
	flags.VarP(&patternLocatorValue{lf, lineinfile.AfterFirst}, "after-first", "a",
		"Insert LINE after the first line matching `REGEX`")
	flags.VarP(&patternLocatorValue{lf, lineinfile.AfterLast}, "after-last", "A",
		"Insert LINE after the last line matching `REGEX`")
	flags.VarP(&patternLocatorValue{lf, lineinfile.BeforeFirst}, "before-first", "b",
		"Insert LINE before the first line matching `REGEX`")
	flags.VarP(&patternLocatorValue{lf, lineinfile.BeforeLast}, "before-last", "B",
		"Insert LINE before the last line matching `REGEX`")
	flags.Var(&fixedLocatorValue{lf, lineinfile.AtBOF()}, "bof",
		"Insert LINE at the beginning of the file")
	flags.Var(&fixedLocatorValue{lf, lineinfile.AtEOF()}, "eof",
		"Insert LINE at the end of the file (default)")
	flags.Lookup("bof").NoOptDefVal = "true"
	flags.Lookup("eof").NoOptDefVal = "true"
}

type patternLocatorValue struct {
	group *locatorFlags
	wrap  func(lineinfile.Pattern) lineinfile.Locator
}

func (v *patternLocatorValue) Set(s string) error {
	re, err := regexp.Compile(s)
	if err != nil {
		return err
	}
	v.group.locator = v.wrap(lineinfile.PatternFromRegexp(re))
	return nil
}

func (v *patternLocatorValue) String() string { return "" }
func (v *patternLocatorValue) Type() string   { return "regexp" }

type fixedLocatorValue struct {
	group *locatorFlags
	loc   lineinfile.Locator
}

func (v *fixedLocatorValue) Set(string) error {
	v.group.locator = v.loc
	return nil
}

func (v *fixedLocatorValue) String() string { return "false" }
func (v *fixedLocatorValue) Type() string   { return "bool" }

// ---------- Match-mode options ----------

type matchFlags struct {
	first bool
}

func (mf *matchFlags) register(flags *pflag.FlagSet) {
	flags.VarP(&matchModeValue{mf, true}, "match-first", "m",
		"Replace the first matching line")
	flags.VarP(&matchModeValue{mf, false}, "match-last", "M",
		"Replace the last matching line (default)")
	flags.Lookup("match-first").NoOptDefVal = "true"
	flags.Lookup("match-last").NoOptDefVal = "true"
}

type matchModeValue struct {
	group *matchFlags
	first bool
}

func (v *matchModeValue) Set(string) error {
	v.group.first = v.first
	return nil
}

func (v *matchModeValue) String() string { return "false" }
func (v *matchModeValue) Type() string   { return "bool" }

// ---------- Backup options ----------

type backupFlags struct {
	when     lineinfile.BackupWhen
	whenName string // canonical option name, for incompatibility errors
	ext      string
	extSet   bool
}

func (bf *backupFlags) register(flags *pflag.FlagSet) {
	flags.Var(&backupWhenValue{bf, lineinfile.BackupChanged, "--backup-changed"}, "backup",
		"Back up FILE if it is modified (same as --backup-changed)")
	flags.Var(&backupWhenValue{bf, lineinfile.BackupChanged, "--backup-changed"}, "backup-changed",
		"Back up FILE if it is modified")
	flags.Var(&backupWhenValue{bf, lineinfile.BackupAlways, "--backup-always"}, "backup-always",
		"Back up FILE whether or not it is modified")
	for _, name := range []string{"backup", "backup-changed", "backup-always"} {
		flags.Lookup(name).NoOptDefVal = "true"
	}
	flags.StringVarP(&bf.ext, "backup-ext", "i", "",
		"Extension for the backup file (implies --backup-changed) [default: ~]")
}

// finish applies cross-option rules once parsing is done: an explicitly
// empty extension is rejected, and --backup-ext on its own turns backups on.
func (bf *backupFlags) finish(flags *pflag.FlagSet) error {
	bf.extSet = flags.Changed("backup-ext")
	if bf.extSet {
		if bf.ext == "" {
			return usageErrorf("--backup-ext cannot be empty")
		}
		if bf.when == lineinfile.NoBackup {
			bf.when = lineinfile.BackupChanged
			bf.whenName = "--backup-ext"
		}
	}
	return nil
}

// firstSet names the backup option the user supplied, if any. Call after
// finish.
func (bf *backupFlags) firstSet() (string, bool) {
	if bf.whenName != "" {
		return bf.whenName, true
	}
	if bf.extSet {
		return "--backup-ext", true
	}
	return "", false
}

type backupWhenValue struct {
	group *backupFlags
	when  lineinfile.BackupWhen
	name  string
}

func (v *backupWhenValue) Set(string) error {
	v.group.when = v.when
	v.group.whenName = v.name
	return nil
}

func (v *backupWhenValue) String() string { return "false" }
func (v *backupWhenValue) Type() string   { return "bool" }
