// Package storage persists generated identicon images to the file system.
//
// The generation pipeline only hands over bytes and the original input
// string; naming and placement of the persisted file live here. Failures are
// reported upward unchanged, with no retries.
package storage

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dir persists identicon images under a single output directory.
type Dir struct {
	path string
}

// NewDir returns a Dir rooted at path. The directory is created lazily on
// the first Save.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// Save writes the PNG bytes for the given input string and returns the full
// path of the written file. The file name is derived from the input via
// FileName; an existing file for the same input is overwritten, which is
// harmless because generation is deterministic.
func (d *Dir) Save(input string, data []byte) (string, error) {
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	target := filepath.Join(d.path, FileName(input))
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write identicon: %w", err)
	}
	return target, nil
}

// FileName derives a safe file name from an input string.
//
// Letters, digits, '-', '_' and '.' pass through; every other rune becomes
// '-'. Leading and trailing '-' and '.' are trimmed so the name can never
// escape the directory or hide the file. If nothing printable survives, the
// hex MD5 digest of the input is used instead, keeping the name deterministic.
func FileName(input string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-', r == '_', r == '.':
			return r
		default:
			return '-'
		}
	}, input)
	name = strings.Trim(name, "-.")

	if name == "" {
		name = fmt.Sprintf("%x", md5.Sum([]byte(input)))
	}
	return name + ".png"
}
