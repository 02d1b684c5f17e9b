package dex

import "testing"

func TestParseGeneration(t *testing.T) {
	cases := []struct {
		input string
		want  Generation
		ok    bool
	}{
		{"1", GEN_RED_BLUE, true},
		{"8", GEN_SWORD_SHIELD, true},
		{" 3 ", GEN_RUBY_SAPPHIRE, true},
		{"VIII", GEN_SWORD_SHIELD, true},
		{"iv", GEN_DIAMOND_PEARL, true},
		{"SwordShield", GEN_SWORD_SHIELD, true},
		{"redblue", GEN_RED_BLUE, true},
		{"0", 0, false},
		{"9", 0, false},
		{"IX", 0, false},
		{"ScarletViolet", 0, false},
		{"", 0, false},
	}

	for _, c := range cases {
		got, ok := ParseGeneration(c.input)
		if ok != c.ok {
			t.Fatalf("ParseGeneration(%q) ok = %v, want %v", c.input, ok, c.ok)
		}
		if ok && got != c.want {
			t.Fatalf("ParseGeneration(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestGenerationNames(t *testing.T) {
	if got := GEN_RED_BLUE.GroupName(); got != "RedBlue" {
		t.Fatalf("gen 1 group name = %q", got)
	}
	if got := GEN_SWORD_SHIELD.Roman(); got != "VIII" {
		t.Fatalf("gen 8 roman = %q", got)
	}
	if got := Generation(42).String(); got != "Unknown" {
		t.Fatalf("out of range String() = %q", got)
	}
}

func TestSupportNotes(t *testing.T) {
	if note := GEN_RED_BLUE.SupportNote(); note != "" {
		t.Fatalf("gen 1 should have no support note, got %q", note)
	}
	if note := GEN_SUN_MOON.SupportNote(); note == "" {
		t.Fatal("gen 7 should carry a data gap note")
	}
	if note := GEN_SWORD_SHIELD.SupportNote(); note == "" {
		t.Fatal("gen 8 should carry a data gap note")
	}
}

func TestIntroGeneration(t *testing.T) {
	cases := []struct {
		dex  uint
		want Generation
	}{
		{1, GEN_RED_BLUE},
		{151, GEN_RED_BLUE},
		{152, GEN_GOLD_SILVER},
		{251, GEN_GOLD_SILVER},
		{386, GEN_RUBY_SAPPHIRE},
		{649, GEN_BLACK_WHITE},
		{810, GEN_SWORD_SHIELD},
		{905, GEN_SWORD_SHIELD},
	}

	for _, c := range cases {
		if got := IntroGeneration(c.dex); got != c.want {
			t.Fatalf("IntroGeneration(%d) = %v, want %v", c.dex, got, c.want)
		}
	}
}
