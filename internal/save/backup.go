package save

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
)

// ErrNoBackup is returned when a save directory holds no backups.
var ErrNoBackup = errors.New("no backups")

const (
	backupDirName = "backups"
	backupPrefix  = "data-"
	backupSuffix  = ".json.zst"
	backupStamp   = "20060102T150405.000000000Z"
)

// backupData compresses the current data.json of dir into the backup
// directory and trims old backups down to keep. A missing data.json is
// not an error.
func backupData(dir string, keep int, now time.Time) (string, error) {
	if keep <= 0 {
		return "", nil
	}
	src, err := os.ReadFile(filepath.Join(dir, dataFile))
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", dataFile, err)
	}

	bdir := filepath.Join(dir, backupDirName)
	if err := os.MkdirAll(bdir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}
	path := filepath.Join(bdir, backupPrefix+now.UTC().Format(backupStamp)+backupSuffix)

	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return "", fmt.Errorf("zstd writer: %w", err)
	}
	if _, err := enc.Write(src); err != nil {
		enc.Close()
		return "", fmt.Errorf("compress backup: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("compress backup: %w", err)
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, pruneBackups(dir, keep)
}

// ListBackups returns the backup files of a save directory, newest first.
func ListBackups(dir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(dir, backupDirName))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.Type().IsRegular() && strings.HasPrefix(name, backupPrefix) && strings.HasSuffix(name, backupSuffix) {
			out = append(out, filepath.Join(dir, backupDirName, name))
		}
	}
	// Stamps sort lexically.
	slices.Sort(out)
	slices.Reverse(out)
	return out, nil
}

func pruneBackups(dir string, keep int) error {
	all, err := ListBackups(dir)
	if err != nil {
		return err
	}
	var errs []error
	for _, p := range all[min(keep, len(all)):] {
		if err := os.Remove(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ReadBackup decompresses one backup file.
func ReadBackup(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", filepath.Base(path), err)
	}
	return data, nil
}

// RestoreLatestBackup replaces data.json with the newest backup and
// returns the backup's path.
func RestoreLatestBackup(dir string) (string, error) {
	all, err := ListBackups(dir)
	if err != nil {
		return "", err
	}
	if len(all) == 0 {
		return "", ErrNoBackup
	}
	data, err := ReadBackup(all[0])
	if err != nil {
		return "", err
	}
	if err := writeFileAtomic(filepath.Join(dir, dataFile), data); err != nil {
		return "", err
	}
	return all[0], nil
}

// writeFileAtomic writes data to a temp file beside path and renames it
// into place.
func writeFileAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", filepath.Base(path), err)
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", filepath.Base(path), err)
	}
	return nil
}
