package successione

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindLedger returns the unique ledger matching the query in path.
// A ledger name is its relative path from the directory, without the .json
// extension. An empty query matches a single existing ledger, and errors if
// there are several.
func FindLedger(path, query string) (*Ledger, error) {
	ledgerPaths, err := findLedgerPaths(path, query)
	if err != nil {
		return nil, err
	}
	switch len(ledgerPaths) {
	case 0:
		return nil, fmt.Errorf("could not find ledger %q in %q", query, path)
	case 1:
		return loadLedgerFile(path, ledgerPaths[0])
	default:
		return nil, fmt.Errorf("multiple ledgers found for %q", query)
	}
}

// LoadLedger opens and decodes a ledger from a single file path.
func LoadLedger(filename string) (*Ledger, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", filename, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", filename, err)
	}
	ledger.name = strings.TrimSuffix(filepath.Base(filename), ".json")
	return ledger, nil
}

// SaveLedger writes the ledger in canonical form to filename, creating
// parent directories as needed. The content is fully encoded in memory
// first, so a failed encode never truncates an existing file.
func SaveLedger(filename string, l *Ledger) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", filename, err)
	}

	var buf strings.Builder
	if err := EncodeLedger(&buf, l); err != nil {
		return err
	}
	if err := os.WriteFile(filename, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("error writing ledger file %q: %w", filename, err)
	}
	return nil
}

func loadLedgerFile(root, fullPath string) (*Ledger, error) {
	ledger, err := LoadLedger(fullPath)
	if err != nil {
		return nil, err
	}
	if relPath, err := filepath.Rel(root, fullPath); err == nil {
		ledger.name = strings.TrimSuffix(relPath, ".json")
	}
	return ledger, nil
}

// findLedgerPaths scans a directory for .json ledger files matching the query.
func findLedgerPaths(path, query string) ([]string, error) {
	var ledgers []string

	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".json") {
			return nil
		}
		relPath, err := filepath.Rel(path, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(relPath, ".json")
		if query == "" || name == query {
			ledgers = append(ledgers, p)
		}
		return nil
	})

	return ledgers, err
}
