// Package roster holds the user's pinned species list. A Store is
// session-scoped mutable state: create one per session and pass it
// explicitly, never share one process-wide.
package roster

import (
	"slices"
	"strings"
)

// Store is an insertion-ordered set of species names. Pins are
// free-text: a name is never validated against any generation's
// species index, since a user may track a species across generations
// where validity differs.
type Store struct {
	entries []string
	present map[string]bool
}

func NewStore() *Store {
	return &Store{
		entries: make([]string, 0),
		present: make(map[string]bool),
	}
}

// Add pins a species. Adding an existing pin is a no-op, not an error.
// Returns whether the pin was actually new.
func (s *Store) Add(species string) bool {
	species = strings.TrimSpace(species)
	if species == "" {
		return false
	}

	key := strings.ToLower(species)
	if s.present[key] {
		return false
	}

	s.present[key] = true
	s.entries = append(s.entries, species)

	return true
}

// Remove unpins a species. Removing an absent pin is a no-op.
// Returns whether a pin was actually removed.
func (s *Store) Remove(species string) bool {
	key := strings.ToLower(strings.TrimSpace(species))
	if !s.present[key] {
		return false
	}

	delete(s.present, key)
	s.entries = slices.DeleteFunc(s.entries, func(entry string) bool {
		return strings.ToLower(entry) == key
	})

	return true
}

func (s *Store) Contains(species string) bool {
	return s.present[strings.ToLower(strings.TrimSpace(species))]
}

// List returns the pins in stable insertion order. A pin removed and
// re-added moves to the end.
func (s *Store) List() []string {
	return slices.Clone(s.entries)
}

func (s *Store) Len() int {
	return len(s.entries)
}
