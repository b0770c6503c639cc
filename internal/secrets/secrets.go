// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads service credentials from a directory of
// plain-text files. Each file is one secret: the filename is the key
// name and the trimmed contents are the value.
//
// Supported key files: gemini-api-key. Environment variables act as a
// fallback so a .env-only setup also works.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory or missing files are not errors; Load
// returns an empty map. Unreadable files produce a warning on stderr
// but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Resolve returns the value for key from the loaded secrets, falling
// back to the environment variable spelled from the key (gemini-api-key
// becomes GEMINI_API_KEY). An unset credential resolves to "".
func Resolve(secrets map[string]string, key string) string {
	if v, ok := secrets[key]; ok {
		return v
	}
	envName := strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
	return os.Getenv(envName)
}
