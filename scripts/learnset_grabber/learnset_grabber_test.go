package main

import (
	"testing"

	"movedex/client/dex"
	"movedex/scripts"
)

func detail(method, versionGroup string, level int) versionGroupDetail {
	return versionGroupDetail{
		LevelLearnedAt:  level,
		MoveLearnMethod: scripts.NamedApiResource{Name: method},
		VersionGroup:    scripts.NamedApiResource{Name: versionGroup},
	}
}

func TestLearnsetRowForLevelUp(t *testing.T) {
	row, gen, ok := learnsetRowFor("thunder-shock", detail("level-up", "red-blue", 9))
	if !ok {
		t.Fatal("red-blue level-up should map")
	}
	if gen != dex.GEN_RED_BLUE {
		t.Fatalf("gen = %v", gen)
	}
	if row.Move != "Thunder Shock" || row.Method != "level-up" || row.Level != 9 {
		t.Fatalf("row = %+v", row)
	}
}

func TestLearnsetRowForTutor(t *testing.T) {
	row, gen, ok := learnsetRowFor("ice-beam", detail("tutor", "crystal", 0))
	if !ok {
		t.Fatal("crystal tutor should map")
	}
	if gen != dex.GEN_GOLD_SILVER {
		t.Fatalf("gen = %v", gen)
	}
	if row.TutorInfo != "Crystal" {
		t.Fatalf("tutor info = %q", row.TutorInfo)
	}
	if row.Level != 0 {
		t.Fatalf("tutor rows carry no level, got %d", row.Level)
	}
}

func TestLearnsetRowForBreeding(t *testing.T) {
	row, _, ok := learnsetRowFor("volt-tackle", detail("egg", "sword-shield", 0))
	if !ok {
		t.Fatal("sword-shield egg should map")
	}
	if row.Method != "breeding" {
		t.Fatalf("method = %q", row.Method)
	}
	// The learnset endpoints carry no parent chains
	if len(row.Parents) != 0 {
		t.Fatalf("parents = %v", row.Parents)
	}
}

func TestLearnsetRowForSkipsUntracked(t *testing.T) {
	if _, _, ok := learnsetRowFor("thunderbolt", detail("level-up", "legends-arceus", 1)); ok {
		t.Fatal("untracked version group should be skipped")
	}
	if _, _, ok := learnsetRowFor("volt-tackle", detail("light-ball-egg", "ruby-sapphire", 0)); ok {
		t.Fatal("untracked learn method should be skipped")
	}
}
