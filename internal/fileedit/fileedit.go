// Package fileedit applies a string transformation to a file in place:
// read, transform, optionally back up the original, atomically replace.
package fileedit

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/jwodder/lineinfile/internal/debuglog"
)

// BackupMode selects when Apply writes a backup of the original contents.
type BackupMode uint8

const (
	// BackupNever writes no backup.
	BackupNever BackupMode = iota
	// BackupOnChange writes a backup only when the transform changes the
	// contents.
	BackupOnChange
	// BackupAlways writes a backup whenever the file exists, changed or not.
	BackupAlways
)

// Options configure Apply.
type Options struct {
	// Backup selects when the original contents are written to a sibling
	// backup file before the edit lands.
	Backup BackupMode
	// BackupExt is the suffix appended to the file's name to form the
	// backup's name. Required when Backup is not BackupNever.
	BackupExt string
	// TreatMissingAsEmpty makes a nonexistent file read as empty instead of
	// failing. A missing file is never backed up and is only created when
	// the transform returns something other than empty.
	TreatMissingAsEmpty bool
}

// Apply reads the file at path, runs transform on its contents, and writes
// the result back, reporting whether the contents changed. The write is
// skipped entirely when the transform returns its input unchanged.
func Apply(path string, opts Options, transform func(string) (string, error)) (bool, error) {
	if opts.Backup != BackupNever && opts.BackupExt == "" {
		return false, errors.New("backup extension not set")
	}
	raw, err := os.ReadFile(path)
	missing := false
	if err != nil {
		if !opts.TreatMissingAsEmpty || !errors.Is(err, os.ErrNotExist) {
			return false, err
		}
		missing = true
		raw = nil
	}
	before := string(raw)
	after, err := transform(before)
	if err != nil {
		return false, err
	}
	changed := after != before
	debuglog.Logf("fileedit: %s missing=%v changed=%v", path, missing, changed)
	if !missing && opts.Backup != BackupNever && (changed || opts.Backup == BackupAlways) {
		if err := writeBackup(path, opts.BackupExt, before); err != nil {
			return false, err
		}
	}
	if changed {
		if err := replace(path, after); err != nil {
			return false, err
		}
	}
	return changed, nil
}

// writeBackup copies content to path+ext, overwriting any previous backup.
// The backup sits next to path itself, even when path is a symlink, but
// mirrors the mode and modification time of the file path resolves to.
func writeBackup(path, ext, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	bak := path + ext
	debuglog.Logf("fileedit: backing up %s to %s", path, bak)
	if err := os.WriteFile(bak, []byte(content), 0o644); err != nil {
		return err
	}
	if err := os.Chmod(bak, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(bak, info.ModTime(), info.ModTime())
}

// replace atomically rewrites the file at path by writing a temp file in the
// same directory and renaming it into place. A symlinked path is resolved
// first so the rename lands on the target and the link survives. The
// original file mode is preserved; new files get 0644.
func replace(path, content string) error {
	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+"-tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if err := tmp.Chmod(mode); err != nil {
		return err
	}
	if _, err := tmp.WriteString(content); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, target)
}
