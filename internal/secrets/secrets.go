// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API credentials from a directory of plain-text
// files: the filename is the key name and the trimmed file contents are the
// value. research-hub reads one key, semantic-scholar-api-key, which raises
// the Semantic Scholar rate limit when present.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SemanticScholarKey is the filename holding the Semantic Scholar API key.
const SemanticScholarKey = "semantic-scholar-api-key"

// Store holds the credentials loaded at startup. It is read-only after Load.
type Store map[string]string

// Get returns the named secret, or fallback when fallback is non-empty.
// An explicit value (config file, environment) always wins over the file.
func (s Store) Get(name, fallback string) string {
	if fallback != "" {
		return fallback
	}
	return s[name]
}

// Load reads every regular file in dir into a Store. A missing directory is
// not an error and yields an empty Store; dotfiles, subdirectories, and
// empty files are skipped. Unreadable files warn on stderr but do not abort.
func Load(dir string) (Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Store{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	store := make(Store)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", entry.Name(), err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			store[entry.Name()] = value
		}
	}

	return store, nil
}
