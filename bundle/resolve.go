package bundle

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/zeebo/blake3"
)

// Resolve expands glob patterns (with ** support) to a sorted, deduplicated
// list of files. A pattern without glob metacharacters names a file
// directly. Every pattern must match at least one file.
func Resolve(patterns ...string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(filepath.Clean(pattern), doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bundle: glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoMatches, pattern)
		}
		for _, m := range matches {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	sort.Strings(out)

	return out, nil
}

// Load resolves patterns, loads every file and merges them into one
// document. It also returns the resolved paths.
func Load(patterns ...string) (*Document, []string, error) {
	paths, err := Resolve(patterns...)
	if err != nil {
		return nil, nil, err
	}
	docs := make([]*Document, 0, len(paths))
	for _, p := range paths {
		d, err := LoadFile(p)
		if err != nil {
			return nil, nil, err
		}
		docs = append(docs, d)
	}

	return Merge(docs...), paths, nil
}

// Fingerprint returns a BLAKE3 digest (hex) over the given files' paths and
// contents, in order. It changes whenever any file is edited, added or
// renamed.
func Fingerprint(paths []string) (string, error) {
	h := blake3.New()
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return "", fmt.Errorf("bundle: fingerprint: %w", err)
		}
		fmt.Fprintf(h, "%s\x00%d\x00", p, len(data))
		h.Write(data)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
