package dex

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/samber/lo"
)

// ResolvedMove joins one learnset row with the move attribute table.
// Incomplete marks rows whose move is missing from the table; the row
// is kept with the record's data so one bad reference never fails a
// whole lookup.
type ResolvedMove struct {
	Record     AcquisitionRecord `json:"record"`
	Move       Move              `json:"move"`
	Category   MoveCategory      `json:"category"`
	Stab       bool              `json:"stab"`
	Incomplete bool              `json:"incomplete,omitempty"`
}

// MovesetResult is a full lookup answer. Known=false means the species
// does not exist in the requested generation; Suggestions then carries
// recovery candidates. Note repeats the generation's data-gap warning,
// if any, so "no data" renders distinctly from "not supported".
type MovesetResult struct {
	Species     string     `json:"species"`
	Generation  Generation `json:"generation"`
	GameGroup   string     `json:"game_group"`
	Known       bool       `json:"known"`
	Note        string     `json:"note,omitempty"`
	Suggestions []string   `json:"suggestions,omitempty"`

	LevelUp  []ResolvedMove `json:"level_up"`
	Machine  []ResolvedMove `json:"machine"`
	Breeding []ResolvedMove `json:"breeding"`
	Tutor    []ResolvedMove `json:"tutor"`
}

func (r MovesetResult) Total() int {
	return len(r.LevelUp) + len(r.Machine) + len(r.Breeding) + len(r.Tutor)
}

func (r MovesetResult) Empty() bool {
	return r.Total() == 0
}

// Lookup joins the three read-only tables. Safe for concurrent use
// since none of them change after load.
type Lookup struct {
	Moves    *MoveRegistry
	Movesets MovesetTable
	Species  *SpeciesIndex
}

func NewLookup(moves *MoveRegistry, movesets MovesetTable, species *SpeciesIndex) *Lookup {
	return &Lookup{
		Moves:    moves,
		Movesets: movesets,
		Species:  species,
	}
}

// Moveset looks up every way a species learns moves in a generation,
// partitioned by acquisition method. It never fails: unknown species
// come back with Known=false and suggestions, dangling move references
// come back as Incomplete rows.
func (l *Lookup) Moveset(speciesName string, gen Generation) MovesetResult {
	result := MovesetResult{
		Species:    speciesName,
		Generation: gen,
		GameGroup:  gen.GroupName(),
		Note:       gen.SupportNote(),
		LevelUp:    []ResolvedMove{},
		Machine:    []ResolvedMove{},
		Breeding:   []ResolvedMove{},
		Tutor:      []ResolvedMove{},
	}

	species, ok := l.Species.Get(speciesName)
	if !ok || !species.ExistsIn(gen) {
		result.Suggestions = l.closestSpecies(speciesName, gen)
		return result
	}

	result.Species = species.Name
	result.Known = true

	for _, record := range l.Movesets.Acquisitions(species.Name, gen) {
		resolved := ResolvedMove{Record: record}

		move, found := l.Moves.GetMove(record.Move)
		if found {
			resolved.Move = move
			resolved.Category = move.EffectiveCategory(gen)
			resolved.Stab = move.Category != CATEGORY_STATUS && species.HasType(move.Type)
		} else {
			resolved.Incomplete = true
		}

		switch record.Method {
		case METHOD_LEVEL_UP:
			result.LevelUp = append(result.LevelUp, resolved)
		case METHOD_MACHINE:
			result.Machine = append(result.Machine, resolved)
		case METHOD_BREEDING:
			result.Breeding = append(result.Breeding, resolved)
		case METHOD_TUTOR:
			result.Tutor = append(result.Tutor, resolved)
		}
	}

	return result
}

// closestSpecies names recovery candidates for a species unknown in the
// generation: edit-distance neighbors first, then autocomplete matches,
// then the head of the index so the list is never empty while the
// generation has any species at all.
func (l *Lookup) closestSpecies(name string, gen Generation) []string {
	name = strings.ToLower(strings.TrimSpace(name))

	type scored struct {
		name string
		dist int
	}

	candidates := make([]scored, 0)
	for _, candidate := range l.Species.List(gen) {
		dist := levenshtein.ComputeDistance(name, strings.ToLower(candidate))
		if dist <= levenshteinLimit(len(candidate)) {
			candidates = append(candidates, scored{candidate, dist})
		}
	}

	slices.SortFunc(candidates, func(a, b scored) int {
		if c := cmp.Compare(a.dist, b.dist); c != 0 {
			return c
		}
		return strings.Compare(strings.ToLower(a.name), strings.ToLower(b.name))
	})

	suggestions := lo.Map(candidates, func(s scored, _ int) string {
		return s.name
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	if len(suggestions) == 0 {
		suggestions = l.Suggest(name, gen)
	}

	if len(suggestions) == 0 {
		names := l.Species.List(gen)
		if len(names) > maxSuggestions {
			names = names[:maxSuggestions]
		}
		suggestions = names
	}

	return suggestions
}

// Suggest proxies the species index so callers with a Lookup in hand
// don't need the index separately.
func (l *Lookup) Suggest(partial string, gen Generation) []string {
	return l.Species.Suggest(partial, gen)
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
