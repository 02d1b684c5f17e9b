package data

import (
	"testing"

	"movedex/client/dex"
)

func TestEmbeddedDataLoads(t *testing.T) {
	lookup, err := dex.NewDex(Files)
	if err != nil {
		t.Fatalf("%s", err)
	}

	if lookup.Moves.Len() == 0 {
		t.Fatal("move table is empty")
	}
	if len(lookup.Movesets.Generations()) == 0 {
		t.Fatal("no learnset files loaded")
	}
}

func TestPikachuRedBlue(t *testing.T) {
	lookup, err := dex.NewDex(Files)
	if err != nil {
		t.Fatalf("%s", err)
	}

	result := lookup.Moveset("Pikachu", dex.GEN_RED_BLUE)
	if !result.Known {
		t.Fatal("Pikachu should be known in gen 1")
	}
	if result.GameGroup != "RedBlue" {
		t.Fatalf("game group = %q", result.GameGroup)
	}

	var hasThunderbolt bool
	for _, resolved := range result.Machine {
		if resolved.Record.Move == "Thunderbolt" {
			hasThunderbolt = true
			if resolved.Incomplete {
				t.Fatal("Thunderbolt should resolve against the move table")
			}
			if !resolved.Stab {
				t.Fatal("Thunderbolt on Pikachu should be STAB")
			}
			if resolved.Category != dex.CATEGORY_SPECIAL {
				t.Fatalf("gen 1 Thunderbolt category = %v", resolved.Category)
			}
		}
	}
	if !hasThunderbolt {
		t.Fatal("Pikachu gen 1 should learn Thunderbolt by machine")
	}
}

func TestEmbeddedRowsAllResolve(t *testing.T) {
	lookup, err := dex.NewDex(Files)
	if err != nil {
		t.Fatalf("%s", err)
	}

	for _, gen := range lookup.Movesets.Generations() {
		for _, name := range lookup.Species.List(gen) {
			result := lookup.Moveset(name, gen)
			for _, bucket := range [][]dex.ResolvedMove{result.LevelUp, result.Machine, result.Breeding, result.Tutor} {
				for _, resolved := range bucket {
					if resolved.Incomplete {
						t.Errorf("%s gen %d: row %q references a move missing from the table", name, gen, resolved.Record.Move)
					}
				}
			}
		}
	}
}

func TestSwordShieldCarriesNote(t *testing.T) {
	lookup, err := dex.NewDex(Files)
	if err != nil {
		t.Fatalf("%s", err)
	}

	result := lookup.Moveset("Grookey", dex.GEN_SWORD_SHIELD)
	if !result.Known {
		t.Fatal("Grookey should be known in gen 8")
	}
	if result.Note == "" {
		t.Fatal("gen 8 results should carry the data gap note")
	}
}
