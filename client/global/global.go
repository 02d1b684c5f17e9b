package global

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"movedex/client/dex"
)

type GlobalConfig struct {
	RosterSaveLocation string
	DefaultGeneration  string
	Debug              bool
}

var (
	TERM_WIDTH, TERM_HEIGHT, _ = term.GetSize(int(os.Stdout.Fd()))

	// Read-only after GlobalInit; safe for unsynchronized reads.
	DEX *dex.Lookup

	SelectKey = key.NewBinding(
		key.WithKeys("enter"),
	)
	MoveLeftKey = key.NewBinding(
		key.WithKeys("left", "h"),
	)
	MoveRightKey = key.NewBinding(
		key.WithKeys("right", "l"),
	)
	MoveDownKey = key.NewBinding(
		key.WithKeys("down", "j"),
	)
	MoveUpKey = key.NewBinding(
		key.WithKeys("up", "k"),
	)
	PinKey = key.NewBinding(
		key.WithKeys("p"),
	)
	RemovePinKey = key.NewBinding(
		key.WithKeys("d", tea.KeyDelete.String()),
	)

	DownTabKey = key.NewBinding(key.WithKeys(tea.KeyTab.String()))
	UpTabKey   = key.NewBinding(key.WithKeys(tea.KeyShiftTab.String()))

	BackKey = key.NewBinding(key.WithKeys(tea.KeyEsc.String()))

	Opt = GlobalConfig{
		RosterSaveLocation: "",
		DefaultGeneration:  dex.GEN_MAX.GroupName(),
	}

	initLogger zerolog.Logger
)

// GlobalInit reads the config file, sets up logging and loads the
// static tables from the data filesystem. A data load failure is fatal:
// the lookup tool is useless without its tables.
func GlobalInit(files fs.FS, shouldLog bool) {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout}

	configDir := DefaultConfigDir()
	configFilepath := DefaultConfigLocation()

	// Basic logging for config debugging
	initLogger = zerolog.New(consoleWriter).With().Timestamp().Logger()

	if err := os.MkdirAll(configDir, 0750); err != nil {
		initLogger.Err(err).Msg("error occurred trying to create config dir")
	}

	configContents, err := os.ReadFile(configFilepath)
	if err != nil {
		_, err := os.Create(configFilepath)
		if err != nil {
			initLogger.Err(err).Msg("error occurred while trying to create config file")
		}
	}

	if len(configContents) > 0 {
		newOpts := GlobalConfig{}
		if err := json.Unmarshal(configContents, &newOpts); err != nil {
			initLogger.Err(err).Msg("error occurred while trying to parse config file")
		} else {
			Opt = populateConfig(newOpts)
		}
	} else {
		config := populateConfig(GlobalConfig{})
		if err := SaveConfig(config); err != nil {
			initLogger.Err(err).Msg("error occurred while trying to write default config values")
		}

		Opt = config
	}

	level := zerolog.InfoLevel
	if Opt.Debug {
		level = zerolog.DebugLevel
	}

	rollingWriter := NewRollingFileWriter(filepath.Join(configDir, "logs/"), "movedex")
	fileWriter := zerolog.ConsoleWriter{Out: rollingWriter}
	multiLogger := zerolog.New(zerolog.MultiLevelWriter(consoleWriter, fileWriter)).With().Timestamp().Logger().Level(level)

	initLogger = multiLogger
	if !shouldLog {
		initLogger = zerolog.Nop()
	}

	// Main global logger
	log.Logger = zerolog.New(fileWriter).With().Timestamp().Caller().Logger().Level(level)

	// The three tables are independent; load them concurrently
	var (
		wg         sync.WaitGroup
		moves      []dex.Move
		species    []dex.Species
		movesetTbl dex.MovesetTable
		loadedGens []dex.Generation
	)

	wg.Add(3)

	go func() {
		defer wg.Done()

		initLogger.Info().Msg("Loading move data")
		loaded, err := dex.LoadMoves(files, "moves.json")
		if err != nil {
			initLogger.Fatal().Err(err).Msg("Couldn't load move data")
		}
		moves = loaded
		initLogger.Info().Msgf("Loaded %d moves", len(moves))
	}()
	go func() {
		defer wg.Done()

		initLogger.Info().Msg("Loading species data")
		loaded, err := dex.LoadSpecies(files, "species.json")
		if err != nil {
			initLogger.Fatal().Err(err).Msg("Couldn't load species data")
		}
		species = loaded
		initLogger.Info().Msgf("Loaded %d species", len(species))
	}()
	go func() {
		defer wg.Done()

		initLogger.Info().Msg("Loading learnset data")
		tbl, gens, err := loadLearnsets(files)
		if err != nil {
			initLogger.Fatal().Err(err).Msg("Couldn't load learnset data")
		}
		movesetTbl = tbl
		loadedGens = gens
	}()

	wg.Wait()

	DEX = dex.NewLookup(dex.NewMoveRegistry(moves), movesetTbl, dex.NewSpeciesIndex(species))

	for _, gen := range loadedGens {
		if note := gen.SupportNote(); note != "" {
			initLogger.Warn().Msgf("Gen %s: %s", gen.Roman(), note)
		}
	}
}

func loadLearnsets(files fs.FS) (dex.MovesetTable, []dex.Generation, error) {
	recordsByGen := make(map[dex.Generation][]dex.AcquisitionRecord)
	gens := make([]dex.Generation, 0)

	for gen := dex.GEN_MIN; gen <= dex.GEN_MAX; gen++ {
		path := learnsetPath(gen)

		records, err := dex.LoadLearnsets(files, path)
		if err != nil {
			if isNotExist(err) {
				continue
			}
			return nil, nil, err
		}

		initLogger.Info().Msgf("Loaded %d learnset rows for gen %s", len(records), gen.Roman())
		recordsByGen[gen] = records
		gens = append(gens, gen)
	}

	return dex.NewMovesetTable(recordsByGen), gens, nil
}

func learnsetPath(gen dex.Generation) string {
	return fmt.Sprintf("learnsets-gen%d.json", gen)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func populateConfig(config GlobalConfig) GlobalConfig {
	configDir := DefaultConfigDir()

	if config.RosterSaveLocation == "" {
		config.RosterSaveLocation = filepath.Join(configDir, "saves/", "roster.json")
	}
	if _, ok := dex.ParseGeneration(config.DefaultGeneration); !ok {
		config.DefaultGeneration = dex.GEN_MAX.GroupName()
	}

	return config
}
