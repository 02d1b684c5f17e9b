package dex

import "testing"

func TestMoveRegistryLookup(t *testing.T) {
	reg := NewMoveRegistry([]Move{
		{Name: "Thunderbolt", Type: TYPENAME_ELECTRIC, Category: CATEGORY_SPECIAL, Power: 90, Accuracy: 100, PP: 15},
		{Name: "Growl", Type: TYPENAME_NORMAL, Category: CATEGORY_STATUS, Accuracy: 100, PP: 40},
	})

	move, ok := reg.GetMove("thunderbolt")
	if !ok {
		t.Fatal("case-insensitive lookup should find Thunderbolt")
	}
	if move.Power != 90 {
		t.Fatalf("Thunderbolt power = %d", move.Power)
	}

	if _, ok := reg.GetMove("Splash"); ok {
		t.Fatal("unknown move should report not found")
	}
	if reg.Len() != 2 {
		t.Fatalf("registry length = %d", reg.Len())
	}
}

func TestMoveRegistryDedupe(t *testing.T) {
	reg := NewMoveRegistry([]Move{
		{Name: "Tackle", Power: 40},
		{Name: "tackle", Power: 999},
	})

	move, _ := reg.GetMove("Tackle")
	if move.Power != 40 {
		t.Fatalf("first row should win on duplicate names, got power %d", move.Power)
	}
	if reg.Len() != 1 {
		t.Fatalf("registry length = %d", reg.Len())
	}
}

func TestEffectiveCategory(t *testing.T) {
	bite := Move{Name: "Bite", Type: TYPENAME_DARK, Category: CATEGORY_PHYSICAL}
	swift := Move{Name: "Swift", Type: TYPENAME_NORMAL, Category: CATEGORY_SPECIAL}
	growl := Move{Name: "Growl", Type: TYPENAME_NORMAL, Category: CATEGORY_STATUS}

	// Before the gen IV split, category follows the move's type
	if got := bite.EffectiveCategory(GEN_GOLD_SILVER); got != CATEGORY_SPECIAL {
		t.Fatalf("gen 2 Bite category = %v, want special (dark was special)", got)
	}
	if got := swift.EffectiveCategory(GEN_RED_BLUE); got != CATEGORY_PHYSICAL {
		t.Fatalf("gen 1 Swift category = %v, want physical (normal was physical)", got)
	}

	// From gen IV the move's own category applies
	if got := bite.EffectiveCategory(GEN_DIAMOND_PEARL); got != CATEGORY_PHYSICAL {
		t.Fatalf("gen 4 Bite category = %v, want physical", got)
	}

	// Status is status everywhere
	if got := growl.EffectiveCategory(GEN_RED_BLUE); got != CATEGORY_STATUS {
		t.Fatalf("gen 1 Growl category = %v, want status", got)
	}
}
