package dex

import (
	"strings"
	"testing"
	"testing/fstest"
)

func testDataFS() fstest.MapFS {
	return fstest.MapFS{
		"moves.json": {Data: []byte(`[
			{"name": "Thunder Shock", "type": "Electric", "category": "special", "power": 40, "accuracy": 100, "pp": 30},
			{"name": "Thunderbolt", "type": "Electric", "category": "special", "power": 90, "accuracy": 100, "pp": 15}
		]`)},
		"species.json": {Data: []byte(`[
			{"dex": 25, "name": "Pikachu", "type1": "Electric"}
		]`)},
		"learnsets-gen1.json": {Data: []byte(`{
			"pikachu": [
				{"move": "Thunder Shock", "method": "level-up", "level": 1},
				{"move": "Thunderbolt", "method": "machine", "machine": "TM24"}
			]
		}`)},
	}
}

func TestNewDex(t *testing.T) {
	lookup, err := NewDex(testDataFS())
	if err != nil {
		t.Fatalf("%s", err)
	}

	if lookup.Moves.Len() != 2 {
		t.Fatalf("move count = %d", lookup.Moves.Len())
	}

	// Only gen 1 has a learnset file; the rest are skipped, not errors
	gens := lookup.Movesets.Generations()
	if len(gens) != 1 || gens[0] != GEN_RED_BLUE {
		t.Fatalf("loaded generations = %v", gens)
	}

	result := lookup.Moveset("Pikachu", GEN_RED_BLUE)
	if !result.Known || result.Total() != 2 {
		t.Fatalf("Pikachu gen 1 lookup: known=%v total=%d", result.Known, result.Total())
	}
}

func TestLoadLearnsets(t *testing.T) {
	records, err := LoadLearnsets(testDataFS(), "learnsets-gen1.json")
	if err != nil {
		t.Fatalf("%s", err)
	}

	if len(records) != 2 {
		t.Fatalf("record count = %d", len(records))
	}
	for _, record := range records {
		if record.Species != "pikachu" {
			t.Fatalf("record species = %q", record.Species)
		}
		if record.Method == METHOD_MACHINE && record.MachineID != "TM24" {
			t.Fatalf("machine row = %+v", record)
		}
	}
}

func TestLoadLearnsetsUnknownMethod(t *testing.T) {
	files := testDataFS()
	files["learnsets-gen1.json"] = &fstest.MapFile{Data: []byte(`{
		"pikachu": [{"move": "Thunder Shock", "method": "osmosis"}]
	}`)}

	_, err := NewDex(files)
	if err == nil {
		t.Fatal("unknown method should fail the load")
	}
	if !strings.Contains(err.Error(), "osmosis") {
		t.Fatalf("error should name the bad method: %s", err)
	}
}

func TestNewDexMissingMoves(t *testing.T) {
	files := testDataFS()
	delete(files, "moves.json")

	if _, err := NewDex(files); err == nil {
		t.Fatal("missing move table should fail the load")
	}
}

func TestMoveNamesSorted(t *testing.T) {
	lookup, err := NewDex(testDataFS())
	if err != nil {
		t.Fatalf("%s", err)
	}

	names := lookup.MoveNames()
	if len(names) != 2 || names[0] != "Thunder Shock" || names[1] != "Thunderbolt" {
		t.Fatalf("MoveNames() = %v", names)
	}
}
