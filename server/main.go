package main

import (
	"errors"
	"os"
	"time"

	"movedex/client/dex"
	"movedex/data"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	port := envOr("PORT", "8080")
	dbPath := envOr("MOVEDEX_DB", "movedex.db")

	lookup, err := dex.NewDex(data.Files)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load move data")
	}
	log.Info().
		Int("moves", lookup.Moves.Len()).
		Int("generations", len(lookup.Movesets.Generations())).
		Msg("move data loaded")

	store, err := NewStore(dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", dbPath).Msg("could not open roster database")
	}
	defer store.Close()

	if err := store.InitDB(); err != nil {
		log.Fatal().Err(err).Msg("could not initialize roster schema")
	}

	app := fiber.New(fiber.Config{
		AppName:      "movedex",
		ErrorHandler: errorHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${status} ${method} ${path} ${latency}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	NewHandler(lookup, store).Register(app)

	log.Info().Str("port", port).Msg("listening")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(errorResponse{Error: fiberErr.Message})
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
		Error: "internal server error",
	})
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
