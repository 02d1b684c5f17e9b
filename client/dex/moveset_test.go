package dex

import (
	"reflect"
	"testing"
)

func TestParseMethod(t *testing.T) {
	for _, method := range []Method{METHOD_LEVEL_UP, METHOD_MACHINE, METHOD_BREEDING, METHOD_TUTOR} {
		parsed, ok := ParseMethod(method.String())
		if !ok || parsed != method {
			t.Fatalf("ParseMethod(%q) = %v, %v", method.String(), parsed, ok)
		}
	}

	if _, ok := ParseMethod("osmosis"); ok {
		t.Fatal("unknown method should not parse")
	}
}

func TestMovesetTableDedupe(t *testing.T) {
	table := NewMovesetTable(map[Generation][]AcquisitionRecord{
		GEN_RED_BLUE: {
			{Species: "Pikachu", Move: "Thunderbolt", Method: METHOD_MACHINE, MachineID: "TM24"},
			{Species: "pikachu", Move: "thunderbolt", Method: METHOD_MACHINE, MachineID: "TM99"},
			{Species: "Pikachu", Move: "Thunderbolt", Method: METHOD_LEVEL_UP, Level: 43},
		},
	})

	rows := table.Acquisitions("Pikachu", GEN_RED_BLUE)
	if len(rows) != 2 {
		t.Fatalf("expected duplicate (species, move, method) row to collapse, got %d rows", len(rows))
	}

	// First row loaded wins
	for _, row := range rows {
		if row.Method == METHOD_MACHINE && row.MachineID != "TM24" {
			t.Fatalf("dedupe kept the wrong row: %+v", row)
		}
	}
}

func TestMovesetTableOrdering(t *testing.T) {
	table := NewMovesetTable(map[Generation][]AcquisitionRecord{
		GEN_GOLD_SILVER: {
			{Species: "Pikachu", Move: "Headbutt", Method: METHOD_TUTOR, TutorInfo: "Ilex Forest"},
			{Species: "Pikachu", Move: "Thunder", Method: METHOD_MACHINE, MachineID: "TM25"},
			{Species: "Pikachu", Move: "Thunder", Method: METHOD_LEVEL_UP, Level: 41},
			{Species: "Pikachu", Move: "Iron Tail", Method: METHOD_MACHINE, MachineID: "TM23"},
			{Species: "Pikachu", Move: "Thunder Shock", Method: METHOD_LEVEL_UP, Level: 1},
			{Species: "Pikachu", Move: "Present", Method: METHOD_BREEDING, Parents: []string{"Delibird"}},
		},
	})

	rows := table.Acquisitions("Pikachu", GEN_GOLD_SILVER)

	got := make([]string, 0, len(rows))
	for _, row := range rows {
		got = append(got, row.Move)
	}

	want := []string{"Thunder Shock", "Thunder", "Iron Tail", "Thunder", "Present", "Headbutt"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("row order = %v, want %v", got, want)
	}
}

func TestAcquisitionsMissing(t *testing.T) {
	table := NewMovesetTable(map[Generation][]AcquisitionRecord{
		GEN_RED_BLUE: {
			{Species: "Pikachu", Move: "Thunder Shock", Method: METHOD_LEVEL_UP, Level: 1},
		},
	})

	if rows := table.Acquisitions("Mewtwo", GEN_RED_BLUE); rows == nil || len(rows) != 0 {
		t.Fatalf("unknown species should yield an empty slice, got %v", rows)
	}
	if rows := table.Acquisitions("Pikachu", GEN_SWORD_SHIELD); rows == nil || len(rows) != 0 {
		t.Fatalf("missing generation should yield an empty slice, got %v", rows)
	}
}

func TestGenerationsSorted(t *testing.T) {
	table := NewMovesetTable(map[Generation][]AcquisitionRecord{
		GEN_SWORD_SHIELD: {},
		GEN_RED_BLUE:     {},
		GEN_GOLD_SILVER:  {},
	})

	want := []Generation{GEN_RED_BLUE, GEN_GOLD_SILVER, GEN_SWORD_SHIELD}
	if got := table.Generations(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Generations() = %v, want %v", got, want)
	}
}
