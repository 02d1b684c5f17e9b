package dex

import (
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 10

// Species is one national dex entry. IntroGen decides which
// generations the species exists in.
type Species struct {
	DexNumber uint       `json:"dex"`
	Name      string     `json:"name"`
	Type1     string     `json:"type1"`
	Type2     string     `json:"type2,omitempty"`
	IntroGen  Generation `json:"intro_gen"`
}

func (s Species) ExistsIn(gen Generation) bool {
	return gen.Valid() && s.IntroGen <= gen
}

// HasType reports whether typeName is one of the species' (up to two)
// types. Used for STAB flagging.
func (s Species) HasType(typeName string) bool {
	return typeName != "" && (s.Type1 == typeName || s.Type2 == typeName)
}

// SpeciesIndex backs existence checks and name autocompletion.
// Per-generation name lists are precomputed at load since the index is
// immutable afterwards.
type SpeciesIndex struct {
	byName     map[string]Species
	namesByGen map[Generation][]string
}

func NewSpeciesIndex(species []Species) *SpeciesIndex {
	index := &SpeciesIndex{
		byName:     make(map[string]Species, len(species)),
		namesByGen: make(map[Generation][]string),
	}

	for _, s := range species {
		if s.IntroGen == 0 {
			s.IntroGen = IntroGeneration(s.DexNumber)
		}

		key := strings.ToLower(s.Name)
		if _, ok := index.byName[key]; ok {
			continue
		}

		index.byName[key] = s
		for gen := s.IntroGen; gen <= GEN_MAX; gen++ {
			index.namesByGen[gen] = append(index.namesByGen[gen], s.Name)
		}
	}

	for gen := range index.namesByGen {
		slices.SortFunc(index.namesByGen[gen], func(a, b string) int {
			return strings.Compare(strings.ToLower(a), strings.ToLower(b))
		})
	}

	return index
}

// List returns every species name valid in the generation,
// lexicographically sorted.
func (i *SpeciesIndex) List(gen Generation) []string {
	return i.namesByGen[gen]
}

func (i *SpeciesIndex) Get(name string) (Species, bool) {
	s, ok := i.byName[strings.ToLower(name)]
	return s, ok
}

func (i *SpeciesIndex) Exists(name string, gen Generation) bool {
	s, ok := i.Get(name)
	return ok && s.ExistsIn(gen)
}

// Suggest returns up to maxSuggestions completions for a partial name.
// Prefix matches rank first, then substring matches, both groups
// lexicographic. Remaining slots are filled with fuzzy subsequence
// matches (e.g. "pkchu" finds Pikachu), best score first.
func (i *SpeciesIndex) Suggest(partial string, gen Generation) []string {
	partial = strings.ToLower(strings.TrimSpace(partial))
	names := i.namesByGen[gen]

	if partial == "" {
		if len(names) > maxSuggestions {
			return names[:maxSuggestions]
		}
		return names
	}

	prefixed := make([]string, 0)
	substrings := make([]string, 0)
	rest := make([]string, 0)

	for _, name := range names {
		lower := strings.ToLower(name)

		switch {
		case strings.HasPrefix(lower, partial):
			prefixed = append(prefixed, name)
		case strings.Contains(lower, partial):
			substrings = append(substrings, name)
		default:
			rest = append(rest, name)
		}
	}

	suggestions := append(prefixed, substrings...)

	if len(suggestions) < maxSuggestions {
		for _, match := range fuzzy.Find(partial, rest) {
			suggestions = append(suggestions, match.Str)
			if len(suggestions) >= maxSuggestions {
				break
			}
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	return suggestions
}
