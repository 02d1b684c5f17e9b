package dex

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"slices"
	"strings"
)

const (
	movesPath        = "moves.json"
	speciesPath      = "species.json"
	learnsetPathTmpl = "learnsets-gen%d.json"
)

// learnsetRow is the on-disk shape of one acquisition record. Method
// travels as a string so the data files stay hand-editable.
type learnsetRow struct {
	Move      string   `json:"move"`
	Method    string   `json:"method"`
	Level     int      `json:"level,omitempty"`
	MachineID string   `json:"machine,omitempty"`
	Parents   []string `json:"parents,omitempty"`
	TutorInfo string   `json:"tutor,omitempty"`
}

func LoadMoves(files fs.FS, path string) ([]Move, error) {
	data, err := readFile(files, path)
	if err != nil {
		return nil, err
	}

	moves := make([]Move, 0, 1000)
	if err := json.Unmarshal(data, &moves); err != nil {
		return nil, fmt.Errorf("couldn't unmarshal move data %s: %w", path, err)
	}

	return moves, nil
}

func LoadSpecies(files fs.FS, path string) ([]Species, error) {
	data, err := readFile(files, path)
	if err != nil {
		return nil, err
	}

	species := make([]Species, 0, 1000)
	if err := json.Unmarshal(data, &species); err != nil {
		return nil, fmt.Errorf("couldn't unmarshal species data %s: %w", path, err)
	}

	return species, nil
}

// LoadLearnsets parses one generation's learnset file into acquisition
// records. A row with an unknown method is a load fault, not a silently
// dropped row.
func LoadLearnsets(files fs.FS, path string) ([]AcquisitionRecord, error) {
	data, err := readFile(files, path)
	if err != nil {
		return nil, err
	}

	rowsBySpecies := make(map[string][]learnsetRow)
	if err := json.Unmarshal(data, &rowsBySpecies); err != nil {
		return nil, fmt.Errorf("couldn't unmarshal learnset data %s: %w", path, err)
	}

	records := make([]AcquisitionRecord, 0)
	for species, rows := range rowsBySpecies {
		for _, row := range rows {
			method, ok := ParseMethod(row.Method)
			if !ok {
				return nil, fmt.Errorf("learnset %s: species %q move %q has unknown method %q", path, species, row.Move, row.Method)
			}

			records = append(records, AcquisitionRecord{
				Species:   species,
				Move:      row.Move,
				Method:    method,
				Level:     row.Level,
				MachineID: row.MachineID,
				Parents:   row.Parents,
				TutorInfo: row.TutorInfo,
			})
		}
	}

	return records, nil
}

// NewDex loads every table from a data filesystem and wires them into a
// Lookup. Generations without a learnset file are simply absent from
// the moveset table; a present but corrupt file aborts the load.
func NewDex(files fs.FS) (*Lookup, error) {
	moves, err := LoadMoves(files, movesPath)
	if err != nil {
		return nil, err
	}

	species, err := LoadSpecies(files, speciesPath)
	if err != nil {
		return nil, err
	}

	recordsByGen := make(map[Generation][]AcquisitionRecord)
	for gen := GEN_MIN; gen <= GEN_MAX; gen++ {
		path := fmt.Sprintf(learnsetPathTmpl, gen)

		records, err := LoadLearnsets(files, path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}

		recordsByGen[gen] = records
	}

	return NewLookup(
		NewMoveRegistry(moves),
		NewMovesetTable(recordsByGen),
		NewSpeciesIndex(species),
	), nil
}

// MoveNames is a convenience for autocomplete over moves themselves.
func (l *Lookup) MoveNames() []string {
	names := slices.Clone(l.Moves.names)
	slices.SortFunc(names, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	return names
}

func readFile(files fs.FS, path string) ([]byte, error) {
	file, err := files.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open data file %s: %w", path, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("couldn't read data file %s: %w", path, err)
	}

	return data, nil
}
