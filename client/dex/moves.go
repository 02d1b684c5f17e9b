package dex

import "strings"

const (
	TYPENAME_NORMAL   = "Normal"
	TYPENAME_FIRE     = "Fire"
	TYPENAME_WATER    = "Water"
	TYPENAME_ELECTRIC = "Electric"
	TYPENAME_GRASS    = "Grass"
	TYPENAME_ICE      = "Ice"
	TYPENAME_FIGHTING = "Fighting"
	TYPENAME_POISON   = "Poison"
	TYPENAME_GROUND   = "Ground"
	TYPENAME_FLYING   = "Flying"
	TYPENAME_PSYCHIC  = "Psychic"
	TYPENAME_BUG      = "Bug"
	TYPENAME_ROCK     = "Rock"
	TYPENAME_GHOST    = "Ghost"
	TYPENAME_DRAGON   = "Dragon"
	TYPENAME_DARK     = "Dark"
	TYPENAME_STEEL    = "Steel"
	TYPENAME_FAIRY    = "Fairy"
)

type MoveCategory string

const (
	CATEGORY_PHYSICAL MoveCategory = "physical"
	CATEGORY_SPECIAL  MoveCategory = "special"
	CATEGORY_STATUS   MoveCategory = "status"
)

// Types whose damaging moves were physical before the gen IV
// physical/special split.
var physicalSplitTypes = map[string]bool{
	TYPENAME_NORMAL:   true,
	TYPENAME_FIGHTING: true,
	TYPENAME_FLYING:   true,
	TYPENAME_GROUND:   true,
	TYPENAME_ROCK:     true,
	TYPENAME_BUG:      true,
	TYPENAME_GHOST:    true,
	TYPENAME_POISON:   true,
	TYPENAME_STEEL:    true,
}

type Move struct {
	Name     string       `json:"name"`
	Type     string       `json:"type"`
	Category MoveCategory `json:"category"`
	// 0 means the move has no base power
	Power int `json:"power"`
	// 0 means the move always hits
	Accuracy int `json:"accuracy"`
	PP       int `json:"pp"`
}

func (m Move) IsNil() bool {
	return m.Name == ""
}

// EffectiveCategory is the category as the given generation's games show
// it. Before gen IV, physical vs special was a property of the move's
// type, not the move.
func (m Move) EffectiveCategory(gen Generation) MoveCategory {
	if m.Category == CATEGORY_STATUS || gen >= GEN_DIAMOND_PEARL {
		return m.Category
	}

	if physicalSplitTypes[m.Type] {
		return CATEGORY_PHYSICAL
	}

	return CATEGORY_SPECIAL
}

// MoveRegistry is the read-only move attribute table, keyed by
// case-normalized move name.
type MoveRegistry struct {
	moves map[string]Move
	names []string
}

func NewMoveRegistry(moves []Move) *MoveRegistry {
	reg := &MoveRegistry{
		moves: make(map[string]Move, len(moves)),
		names: make([]string, 0, len(moves)),
	}

	for _, move := range moves {
		key := strings.ToLower(move.Name)
		if _, ok := reg.moves[key]; ok {
			continue
		}

		reg.moves[key] = move
		reg.names = append(reg.names, move.Name)
	}

	return reg
}

// GetMove reports explicitly whether the move exists so callers can
// tell "no such move" apart from a zero-valued row.
func (m *MoveRegistry) GetMove(name string) (Move, bool) {
	move, ok := m.moves[strings.ToLower(name)]
	return move, ok
}

func (m *MoveRegistry) Len() int {
	return len(m.moves)
}
