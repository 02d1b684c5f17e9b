package dex

import (
	"reflect"
	"testing"
)

func testIndex() *SpeciesIndex {
	return NewSpeciesIndex([]Species{
		{DexNumber: 4, Name: "Charmander", Type1: TYPENAME_FIRE},
		{DexNumber: 6, Name: "Charizard", Type1: TYPENAME_FIRE, Type2: TYPENAME_FLYING},
		{DexNumber: 25, Name: "Pikachu", Type1: TYPENAME_ELECTRIC},
		{DexNumber: 68, Name: "Machamp", Type1: TYPENAME_FIGHTING},
		{DexNumber: 133, Name: "Eevee", Type1: TYPENAME_NORMAL},
		{DexNumber: 172, Name: "Pichu", Type1: TYPENAME_ELECTRIC},
	})
}

func TestSpeciesIntroGenFromDex(t *testing.T) {
	index := testIndex()

	pichu, ok := index.Get("pichu")
	if !ok {
		t.Fatal("Pichu should be indexed")
	}
	if pichu.IntroGen != GEN_GOLD_SILVER {
		t.Fatalf("Pichu intro gen = %v, want %v", pichu.IntroGen, GEN_GOLD_SILVER)
	}

	if index.Exists("Pichu", GEN_RED_BLUE) {
		t.Fatal("Pichu should not exist in gen 1")
	}
	if !index.Exists("Pichu", GEN_GOLD_SILVER) {
		t.Fatal("Pichu should exist in gen 2")
	}
}

func TestSpeciesListPerGeneration(t *testing.T) {
	index := testIndex()

	gen1 := index.List(GEN_RED_BLUE)
	want := []string{"Charizard", "Charmander", "Eevee", "Machamp", "Pikachu"}
	if !reflect.DeepEqual(gen1, want) {
		t.Fatalf("gen 1 list = %v, want %v", gen1, want)
	}

	gen2 := index.List(GEN_GOLD_SILVER)
	if len(gen2) != 6 {
		t.Fatalf("gen 2 should list all 6 species, got %v", gen2)
	}
}

func TestSuggestPrefixBeforeSubstring(t *testing.T) {
	index := testIndex()

	// "cha" prefixes Charizard and Charmander; Machamp only contains it
	got := index.Suggest("cha", GEN_RED_BLUE)
	want := []string{"Charizard", "Charmander", "Machamp"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Suggest(cha) = %v, want %v", got, want)
	}
}

func TestSuggestFuzzyFallback(t *testing.T) {
	index := testIndex()

	got := index.Suggest("pkchu", GEN_GOLD_SILVER)
	if len(got) == 0 {
		t.Fatal("subsequence match should find something")
	}
	if got[0] != "Pikachu" && got[0] != "Pichu" {
		t.Fatalf("Suggest(pkchu) = %v, expected an electric mouse first", got)
	}
}

func TestSuggestEmptyPartial(t *testing.T) {
	index := testIndex()

	got := index.Suggest("", GEN_RED_BLUE)
	if !reflect.DeepEqual(got, index.List(GEN_RED_BLUE)) {
		t.Fatalf("empty partial should return the full (small) list, got %v", got)
	}
}

func TestSuggestDeterministic(t *testing.T) {
	index := testIndex()

	first := index.Suggest("ch", GEN_GOLD_SILVER)
	for i := 0; i < 10; i++ {
		if again := index.Suggest("ch", GEN_GOLD_SILVER); !reflect.DeepEqual(first, again) {
			t.Fatalf("suggestions changed between calls: %v then %v", first, again)
		}
	}
}

func TestHasType(t *testing.T) {
	charizard := Species{Name: "Charizard", Type1: TYPENAME_FIRE, Type2: TYPENAME_FLYING}

	if !charizard.HasType(TYPENAME_FIRE) || !charizard.HasType(TYPENAME_FLYING) {
		t.Fatal("Charizard should have both its types")
	}
	if charizard.HasType(TYPENAME_WATER) {
		t.Fatal("Charizard is not a water type")
	}
	if (Species{Name: "Charmander", Type1: TYPENAME_FIRE}).HasType("") {
		t.Fatal("empty type name should never match")
	}
}
