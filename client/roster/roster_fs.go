package roster

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

// SaveRoster writes the pin list as JSON, creating parent directories
// as needed.
func SaveRoster(filePath string, store *Store) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return err
	}

	rosterFile, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer rosterFile.Close()

	rosterJson, err := json.Marshal(store.List())
	if err != nil {
		return err
	}

	if _, err := rosterFile.Write(rosterJson); err != nil {
		return err
	}

	return nil
}

// LoadRoster reads a saved pin list. A missing or unreadable file
// yields an empty store so a fresh install starts clean.
func LoadRoster(filePath string) (*Store, error) {
	store := NewStore()

	rosterFile, err := os.Open(filePath)
	if err != nil {
		if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
			return store, err
		}

		return store, nil
	}
	defer rosterFile.Close()

	rosterBytes, err := io.ReadAll(rosterFile)
	if err != nil {
		return store, err
	}

	entries := make([]string, 0)
	if err := json.Unmarshal(rosterBytes, &entries); err != nil {
		// Treat a corrupt roster file as empty rather than blocking startup
		return store, nil
	}

	for _, entry := range entries {
		store.Add(entry)
	}

	return store, nil
}
