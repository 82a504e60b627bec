// Package lineinfile ensures that a given line is or is not present in a
// text file, in the manner of Ansible's lineinfile module.
//
// AddLine and its string/file wrappers insert a line if absent, optionally
// replacing a line matched by a regular expression (with backreference
// expansion) and optionally placing new lines relative to other lines via a
// Locator. RemoveLines and its wrappers delete every line matching a
// pattern.
//
// Documents are split into lines on LF, CR, and CRLF terminators only; other
// Unicode line separators are ordinary content. Untouched lines keep their
// original terminators byte-for-byte. Patterns are matched against each line
// with its terminator attached; see Pattern for the effect on `$` anchors.
//
// File operations edit in place with optional backups of the original
// contents; see AddLineToFile and RemoveLinesFromFile.
package lineinfile

import (
	"github.com/jwodder/lineinfile/internal/fileedit"
)

// Version is the lineinfile release version.
const Version = "0.1.0"

// DefaultBackupExt is appended to a file's name to form its backup's name
// when no other extension is given.
const DefaultBackupExt = "~"

// BackupWhen controls whether editing a file leaves a backup of its original
// contents.
type BackupWhen uint8

const (
	// NoBackup never writes a backup.
	NoBackup BackupWhen = iota
	// BackupChanged writes a backup only when the edit modifies the file.
	BackupChanged
	// BackupAlways writes a backup whenever the file exists, even if the
	// edit leaves it untouched.
	BackupAlways
)

// AddOptions configure AddLine. The zero value (and a nil *AddOptions)
// replaces the last line equal to the given one, or appends at end of
// document.
type AddOptions struct {
	// Regexp, when set, selects the line to replace instead of searching for
	// a line equal to the given one.
	Regexp Pattern
	// Backrefs treats the line as a replacement template expanded against
	// the Regexp match. Requires Regexp.
	Backrefs bool
	// MatchFirst replaces the first matching line rather than the last.
	MatchFirst bool
	// Locator names the insertion point used when no line is replaced.
	Locator Locator
}

// AddFileOptions configure AddLineToFile.
type AddFileOptions struct {
	AddOptions

	// Backup controls whether the original file contents are kept next to
	// the edited file.
	Backup BackupWhen
	// BackupExt is the extension appended to the file's name to form the
	// backup's name; empty means DefaultBackupExt.
	BackupExt string
	// Create treats a missing file as empty instead of failing. The file is
	// only created if the edit produces content, and is never backed up.
	Create bool
}

// RemoveFileOptions configure RemoveLinesFromFile.
type RemoveFileOptions struct {
	// Backup controls whether the original file contents are kept next to
	// the edited file.
	Backup BackupWhen
	// BackupExt is the extension appended to the file's name to form the
	// backup's name; empty means DefaultBackupExt.
	BackupExt string
}

// AddLineToString returns s with line ensured present, per AddLine.
func AddLineToString(s, line string, opts *AddOptions) (string, error) {
	doc := ParseDocument(s)
	if _, err := doc.AddLine(line, opts); err != nil {
		return "", err
	}
	return doc.String(), nil
}

// RemoveLinesFromString returns s with every line matching p deleted, per
// RemoveLines.
func RemoveLinesFromString(s string, p Pattern) (string, error) {
	doc := ParseDocument(s)
	if _, err := doc.RemoveLines(p); err != nil {
		return "", err
	}
	return doc.String(), nil
}

// AddLineToFile ensures line is present in the file at path, per AddLine,
// and reports whether the file was modified. The file is rewritten only when
// its content changes.
func AddLineToFile(path, line string, opts *AddFileOptions) (bool, error) {
	if opts == nil {
		opts = &AddFileOptions{}
	}
	return fileedit.Apply(path, fileedit.Options{
		Backup:              backupMode(opts.Backup),
		BackupExt:           backupExt(opts.BackupExt),
		TreatMissingAsEmpty: opts.Create,
	}, func(before string) (string, error) {
		return AddLineToString(before, line, &opts.AddOptions)
	})
}

// RemoveLinesFromFile deletes every line of the file at path matching p, per
// RemoveLines, and reports whether the file was modified. The file is
// rewritten only when its content changes.
func RemoveLinesFromFile(path string, p Pattern, opts *RemoveFileOptions) (bool, error) {
	if opts == nil {
		opts = &RemoveFileOptions{}
	}
	return fileedit.Apply(path, fileedit.Options{
		Backup:    backupMode(opts.Backup),
		BackupExt: backupExt(opts.BackupExt),
	}, func(before string) (string, error) {
		return RemoveLinesFromString(before, p)
	})
}

func backupExt(ext string) string {
	if ext == "" {
		return DefaultBackupExt
	}
	return ext
}

func backupMode(w BackupWhen) fileedit.BackupMode {
	switch w {
	case BackupChanged:
		return fileedit.BackupOnChange
	case BackupAlways:
		return fileedit.BackupAlways
	default:
		return fileedit.BackupNever
	}
}
