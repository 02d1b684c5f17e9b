package dex

import (
	"strconv"
	"strings"
)

// Generation identifies a game group sharing one learnset schema.
type Generation int

const (
	GEN_RED_BLUE Generation = iota + 1
	GEN_GOLD_SILVER
	GEN_RUBY_SAPPHIRE
	GEN_DIAMOND_PEARL
	GEN_BLACK_WHITE
	GEN_XY
	GEN_SUN_MOON
	GEN_SWORD_SHIELD
)

const (
	GEN_MIN = GEN_RED_BLUE
	// Gen 9 data is not tracked
	GEN_MAX = GEN_SWORD_SHIELD
)

var genGroupNames = map[Generation]string{
	GEN_RED_BLUE:      "RedBlue",
	GEN_GOLD_SILVER:   "GoldSilver",
	GEN_RUBY_SAPPHIRE: "RubySapphire",
	GEN_DIAMOND_PEARL: "DiamondPearl",
	GEN_BLACK_WHITE:   "BlackWhite",
	GEN_XY:            "XY",
	GEN_SUN_MOON:      "SunMoon",
	GEN_SWORD_SHIELD:  "SwordShield",
}

var genRomanNames = map[Generation]string{
	GEN_RED_BLUE:      "I",
	GEN_GOLD_SILVER:   "II",
	GEN_RUBY_SAPPHIRE: "III",
	GEN_DIAMOND_PEARL: "IV",
	GEN_BLACK_WHITE:   "V",
	GEN_XY:            "VI",
	GEN_SUN_MOON:      "VII",
	GEN_SWORD_SHIELD:  "VIII",
}

// Known data gaps per generation. Full generations have no entry.
var genSupportNotes = map[Generation]string{
	GEN_SUN_MOON:     "Generation VII data is incomplete: Ultra Sun/Ultra Moon exclusives are not tracked",
	GEN_SWORD_SHIELD: "Generation VIII data excludes Let's Go variants and special, event, and transfer-only moves",
}

func (g Generation) Valid() bool {
	return g >= GEN_MIN && g <= GEN_MAX
}

// GroupName returns the game-group name, i.e. "RedBlue" for gen 1.
func (g Generation) GroupName() string {
	return genGroupNames[g]
}

func (g Generation) Roman() string {
	return genRomanNames[g]
}

func (g Generation) String() string {
	if !g.Valid() {
		return "Unknown"
	}

	return genGroupNames[g]
}

// SupportNote returns a description of this generation's known data gaps,
// or "" when the generation is fully covered.
func (g Generation) SupportNote() string {
	return genSupportNotes[g]
}

// ParseGeneration accepts a game-group name ("SwordShield"), a roman
// numeral ("VIII") or a plain number ("8"). The bool is false for
// anything outside the supported set, including gen 9.
func ParseGeneration(s string) (Generation, bool) {
	s = strings.TrimSpace(s)

	if n, err := strconv.Atoi(s); err == nil {
		gen := Generation(n)
		return gen, gen.Valid()
	}

	for gen, name := range genGroupNames {
		if strings.EqualFold(name, s) {
			return gen, true
		}
	}

	for gen, roman := range genRomanNames {
		if strings.EqualFold(roman, s) {
			return gen, true
		}
	}

	return 0, false
}

// Dex number cutoffs for each generation, taken from the national dex.
var genRanges = [...]struct {
	lo, hi uint
	gen    Generation
}{
	{1, 151, GEN_RED_BLUE},
	{152, 251, GEN_GOLD_SILVER},
	{252, 386, GEN_RUBY_SAPPHIRE},
	{387, 493, GEN_DIAMOND_PEARL},
	{494, 649, GEN_BLACK_WHITE},
	{650, 721, GEN_XY},
	{722, 809, GEN_SUN_MOON},
	{810, 905, GEN_SWORD_SHIELD},
}

// IntroGeneration maps a national dex number to the generation the
// species first appeared in.
func IntroGeneration(dexNumber uint) Generation {
	for _, r := range genRanges {
		if dexNumber >= r.lo && dexNumber <= r.hi {
			return r.gen
		}
	}

	return GEN_MAX
}
