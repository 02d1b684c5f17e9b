package dex

import (
	"cmp"
	"slices"
	"strings"
)

// Method is how a species learns a move.
type Method int

const (
	METHOD_LEVEL_UP Method = iota
	METHOD_MACHINE
	METHOD_BREEDING
	METHOD_TUTOR
)

var methodNames = map[Method]string{
	METHOD_LEVEL_UP: "level-up",
	METHOD_MACHINE:  "machine",
	METHOD_BREEDING: "breeding",
	METHOD_TUTOR:    "tutor",
}

func (m Method) String() string {
	return methodNames[m]
}

func ParseMethod(s string) (Method, bool) {
	for method, name := range methodNames {
		if strings.EqualFold(name, s) {
			return method, true
		}
	}

	return 0, false
}

// AcquisitionRecord is one row of a species' learnset for a generation.
// The detail fields are method-specific: Level for level-up, MachineID
// for machine, Parents for breeding, TutorInfo for tutor.
type AcquisitionRecord struct {
	Species   string   `json:"species"`
	Move      string   `json:"move"`
	Method    Method   `json:"-"`
	Level     int      `json:"level,omitempty"`
	MachineID string   `json:"machine,omitempty"`
	Parents   []string `json:"parents,omitempty"`
	TutorInfo string   `json:"tutor,omitempty"`
}

// MovesetTable holds every generation's learnset rows, keyed by
// generation and then case-normalized species name. Rows are deduped
// and sorted once at load; the table is never mutated afterwards.
type MovesetTable map[Generation]map[string][]AcquisitionRecord

func NewMovesetTable(recordsByGen map[Generation][]AcquisitionRecord) MovesetTable {
	table := make(MovesetTable, len(recordsByGen))

	for gen, records := range recordsByGen {
		bySpecies := make(map[string][]AcquisitionRecord)
		seen := make(map[string]bool)

		for _, record := range records {
			// (species, gen, move, method) is unique
			key := strings.ToLower(record.Species) + "|" + strings.ToLower(record.Move) + "|" + record.Method.String()
			if seen[key] {
				continue
			}
			seen[key] = true

			speciesKey := strings.ToLower(record.Species)
			bySpecies[speciesKey] = append(bySpecies[speciesKey], record)
		}

		for _, rows := range bySpecies {
			sortAcquisitions(rows)
		}

		table[gen] = bySpecies
	}

	return table
}

// Acquisitions returns the species' learnset rows for a generation.
// An empty slice means either "valid species, no rows" or "species not
// in this generation"; use SpeciesIndex.Exists to tell them apart.
func (t MovesetTable) Acquisitions(species string, gen Generation) []AcquisitionRecord {
	bySpecies, ok := t[gen]
	if !ok {
		return []AcquisitionRecord{}
	}

	rows, ok := bySpecies[strings.ToLower(species)]
	if !ok {
		return []AcquisitionRecord{}
	}

	return rows
}

func (t MovesetTable) Generations() []Generation {
	gens := make([]Generation, 0, len(t))
	for gen := range t {
		gens = append(gens, gen)
	}

	slices.Sort(gens)

	return gens
}

// Fixed display order: level-up rows by level, machine rows by machine
// id, breeding and tutor rows by move name. Move name breaks any tie
// for determinism.
func sortAcquisitions(rows []AcquisitionRecord) {
	slices.SortFunc(rows, func(a, b AcquisitionRecord) int {
		if c := cmp.Compare(a.Method, b.Method); c != 0 {
			return c
		}

		switch a.Method {
		case METHOD_LEVEL_UP:
			if c := cmp.Compare(a.Level, b.Level); c != 0 {
				return c
			}
		case METHOD_MACHINE:
			if c := cmp.Compare(a.MachineID, b.MachineID); c != 0 {
				return c
			}
		}

		return cmp.Compare(strings.ToLower(a.Move), strings.ToLower(b.Move))
	})
}
