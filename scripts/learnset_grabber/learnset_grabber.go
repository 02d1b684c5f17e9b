package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"movedex/client/dex"
	"movedex/client/errorutils"
	"movedex/scripts"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxDexNumber caps the grab at the last generation the lookup tables
// cover. Later dex entries have no generation to file under.
const maxDexNumber = 905

// versionGroupGens maps pokeapi version group names to generation
// numbers. Groups absent here (lets-go, legends-arceus, gen 9) are
// skipped.
var versionGroupGens = map[string]dex.Generation{
	"red-blue":                  dex.GEN_RED_BLUE,
	"yellow":                    dex.GEN_RED_BLUE,
	"gold-silver":               dex.GEN_GOLD_SILVER,
	"crystal":                   dex.GEN_GOLD_SILVER,
	"ruby-sapphire":             dex.GEN_RUBY_SAPPHIRE,
	"emerald":                   dex.GEN_RUBY_SAPPHIRE,
	"firered-leafgreen":         dex.GEN_RUBY_SAPPHIRE,
	"diamond-pearl":             dex.GEN_DIAMOND_PEARL,
	"platinum":                  dex.GEN_DIAMOND_PEARL,
	"heartgold-soulsilver":      dex.GEN_DIAMOND_PEARL,
	"black-white":               dex.GEN_BLACK_WHITE,
	"black-2-white-2":           dex.GEN_BLACK_WHITE,
	"x-y":                       dex.GEN_XY,
	"omega-ruby-alpha-sapphire": dex.GEN_XY,
	"sun-moon":                  dex.GEN_SUN_MOON,
	"ultra-sun-ultra-moon":      dex.GEN_SUN_MOON,
	"sword-shield":              dex.GEN_SWORD_SHIELD,
}

// learnMethods maps pokeapi learn method names to the method strings
// the data files carry. Oddball methods (light-ball-egg, stadium
// transfers) are skipped.
var learnMethods = map[string]string{
	"level-up": "level-up",
	"machine":  "machine",
	"egg":      "breeding",
	"tutor":    "tutor",
}

type moveRow struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Power    int    `json:"power"`
	Accuracy int    `json:"accuracy"`
	PP       int    `json:"pp"`
}

type speciesRow struct {
	DexNumber int    `json:"dex"`
	Name      string `json:"name"`
	Type1     string `json:"type1"`
	Type2     string `json:"type2,omitempty"`
	IntroGen  int    `json:"intro_gen"`
}

type learnsetRow struct {
	Move      string   `json:"move"`
	Method    string   `json:"method"`
	Level     int      `json:"level,omitempty"`
	MachineID string   `json:"machine,omitempty"`
	Parents   []string `json:"parents,omitempty"`
	TutorInfo string   `json:"tutor,omitempty"`
}

type versionGroupDetail struct {
	LevelLearnedAt  int                      `json:"level_learned_at"`
	MoveLearnMethod scripts.NamedApiResource `json:"move_learn_method"`
	VersionGroup    scripts.NamedApiResource `json:"version_group"`
}

type pokemonPre struct {
	Id    int
	Name  string
	Types []struct {
		Slot int
		Type scripts.NamedApiResource
	}
	Moves []struct {
		Move                scripts.NamedApiResource
		VersionGroupDetails []versionGroupDetail `json:"version_group_details"`
	}
}

type movePre struct {
	Name        string
	Power       int
	Accuracy    int
	PP          int
	Type        scripts.NamedApiResource
	DamageClass scripts.NamedApiResource `json:"damage_class"`
	Machines    []struct {
		Machine      scripts.NamedApiResource
		VersionGroup scripts.NamedApiResource `json:"version_group"`
	}
}

type listResponse struct {
	Count    int
	Next     *string
	Previous *string
	Results  []scripts.NamedApiResource
}

var titleCaser = cases.Title(language.English)

// displayName turns pokeapi's kebab-case names into the display form
// the data files carry ("thunder-shock" -> "Thunder Shock").
func displayName(apiName string) string {
	return titleCaser.String(strings.ReplaceAll(apiName, "-", " "))
}

// learnsetRowFor maps one pokeapi learn detail to a data file row. The
// bool is false for version groups and learn methods outside the
// tracked set. Tutor rows carry the game group as their tutor info
// since pokeapi has no tutor location data; breeding parents are not
// exposed by the learnset endpoints at all, so Parents stays empty in
// grabbed data and is only filled in hand-curated rows.
func learnsetRowFor(moveName string, detail versionGroupDetail) (learnsetRow, dex.Generation, bool) {
	gen, ok := versionGroupGens[detail.VersionGroup.Name]
	if !ok {
		return learnsetRow{}, 0, false
	}
	method, ok := learnMethods[detail.MoveLearnMethod.Name]
	if !ok {
		return learnsetRow{}, 0, false
	}

	row := learnsetRow{
		Move:   displayName(moveName),
		Method: method,
	}

	switch method {
	case "level-up":
		row.Level = detail.LevelLearnedAt
	case "tutor":
		row.TutorInfo = displayName(detail.VersionGroup.Name)
	}

	return row, gen, true
}

// machineIDs follows a move's machine links and returns version group
// name -> TM/HM/TR item name.
func machineIDs(move movePre) map[string]string {
	ids := make(map[string]string)
	for _, machine := range move.Machines {
		if _, ok := versionGroupGens[machine.VersionGroup.Name]; !ok {
			continue
		}

		item, err := scripts.FollowNamedResource[struct {
			Item scripts.NamedApiResource
		}](machine.Machine)
		if err != nil {
			log.Printf("Skipping machine lookup for %s in %s: %s", move.Name, machine.VersionGroup.Name, err)
			continue
		}

		ids[machine.VersionGroup.Name] = strings.ToUpper(item.Item.Name)
	}
	return ids
}

// Fetches species, move and learnset data from pokeapi and writes the
// data files the lookup tables load at startup.
func main() {
	pokemonUrl := "https://pokeapi.co/api/v2/pokemon/?offset=0&limit=1200"

	log.Println("Grabbing pokemon from pokeapi")

	allStubs := make([]scripts.NamedApiResource, 0)
	for {
		page := errorutils.Must(scripts.GetJson[listResponse](pokemonUrl))

		allStubs = append(allStubs, page.Results...)

		if page.Next == nil {
			break
		}
		pokemonUrl = *page.Next
	}

	log.Printf("Got %d pokemon\n", len(allStubs))

	allSpecies := make([]speciesRow, 0, len(allStubs))
	learnsets := make(map[dex.Generation]map[string][]learnsetRow)
	neededMoves := make(map[string]scripts.NamedApiResource)

	for _, stub := range allStubs {
		log.Printf("Querying Pokemon: %s @ %s\n", stub.Name, stub.Url)

		pokemon := errorutils.Must(scripts.FollowNamedResource[pokemonPre](stub))

		if pokemon.Id > maxDexNumber {
			continue
		}

		row := speciesRow{
			DexNumber: pokemon.Id,
			Name:      displayName(pokemon.Name),
			IntroGen:  int(dex.IntroGeneration(uint(pokemon.Id))),
		}
		for _, pokemonType := range pokemon.Types {
			if pokemonType.Slot == 1 {
				row.Type1 = titleCaser.String(pokemonType.Type.Name)
			} else {
				row.Type2 = titleCaser.String(pokemonType.Type.Name)
			}
		}
		allSpecies = append(allSpecies, row)

		speciesKey := strings.ToLower(pokemon.Name)

		for _, learnedMove := range pokemon.Moves {
			neededMoves[learnedMove.Move.Name] = learnedMove.Move

			for _, detail := range learnedMove.VersionGroupDetails {
				row, gen, ok := learnsetRowFor(learnedMove.Move.Name, detail)
				if !ok {
					continue
				}

				if learnsets[gen] == nil {
					learnsets[gen] = make(map[string][]learnsetRow)
				}

				learnsets[gen][speciesKey] = append(learnsets[gen][speciesKey], row)
			}
		}
	}

	log.Printf("Querying %d moves\n", len(neededMoves))

	allMoves := make([]moveRow, 0, len(neededMoves))
	moveMachines := make(map[string]map[string]string)

	for _, stub := range lo.Values(neededMoves) {
		log.Printf("Querying Move: %s @ %s\n", stub.Name, stub.Url)

		move := errorutils.Must(scripts.FollowNamedResource[movePre](stub))

		allMoves = append(allMoves, moveRow{
			Name:     displayName(move.Name),
			Type:     titleCaser.String(move.Type.Name),
			Category: move.DamageClass.Name,
			Power:    move.Power,
			Accuracy: move.Accuracy,
			PP:       move.PP,
		})

		if len(move.Machines) > 0 {
			moveMachines[displayName(move.Name)] = machineIDs(move)
		}
	}

	// Machine ids arrive per version group; stamp the first one seen
	// for the row's generation onto each machine row.
	for gen, byName := range learnsets {
		for speciesKey, rows := range byName {
			for i, row := range rows {
				if row.Method != "machine" {
					continue
				}
				for groupName, machineID := range moveMachines[row.Move] {
					if versionGroupGens[groupName] == gen {
						rows[i].MachineID = machineID
						break
					}
				}
			}
			byName[speciesKey] = rows
		}
	}

	log.Println("Writing data files")

	writeJson("./data/species.json", allSpecies)
	writeJson("./data/moves.json", allMoves)
	for gen, byName := range learnsets {
		writeJson(fmt.Sprintf("./data/learnsets-gen%d.json", gen), byName)
	}
}

func writeJson(fileName string, value any) {
	os.Remove(fileName)

	bytes := errorutils.Must(json.Marshal(value))

	log.Printf("Writing %s\n", fileName)

	f := errorutils.Must(os.Create(fileName))
	defer f.Close()

	f.Write(bytes)
}
