package main

import (
	"fmt"
	"net/url"
	"strings"

	"movedex/client/dex"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type pinRequest struct {
	Species string `json:"species" validate:"required,min=1,max=64"`
}

type generationInfo struct {
	Number    int    `json:"number"`
	GameGroup string `json:"game_group"`
	Roman     string `json:"roman"`
	Note      string `json:"note,omitempty"`
}

// Handler serves moveset lookups out of the in-memory tables and
// rosters out of the sqlite store.
type Handler struct {
	dex   *dex.Lookup
	store *Store
}

func NewHandler(lookup *dex.Lookup, store *Store) *Handler {
	return &Handler{dex: lookup, store: store}
}

func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/sessions", h.CreateSession)
	api.Get("/generations", h.Generations)
	api.Get("/species", h.SpeciesList)
	api.Get("/lookup/:gen/:species", h.Moveset)

	roster := api.Group("/sessions/:session/roster", h.requireSession)
	roster.Get("/", h.ListRoster)
	roster.Post("/", h.AddRosterPin)
	roster.Delete("/:species", h.RemoveRosterPin)
}

func (h *Handler) CreateSession(c *fiber.Ctx) error {
	session, err := h.store.CreateSession()
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *Handler) Generations(c *fiber.Ctx) error {
	gens := make([]generationInfo, 0, dex.GEN_MAX-dex.GEN_MIN+1)
	for gen := dex.GEN_MIN; gen <= dex.GEN_MAX; gen++ {
		gens = append(gens, generationInfo{
			Number:    int(gen),
			GameGroup: gen.GroupName(),
			Roman:     gen.Roman(),
			Note:      gen.SupportNote(),
		})
	}
	return c.JSON(gens)
}

func (h *Handler) SpeciesList(c *fiber.Ctx) error {
	gen, ok := parseGenParam(c.Query("gen", "1"))
	if !ok {
		return badGeneration(c, c.Query("gen"))
	}

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		return c.JSON(h.dex.Suggest(q, gen))
	}
	return c.JSON(h.dex.Species.List(gen))
}

func (h *Handler) Moveset(c *fiber.Ctx) error {
	gen, ok := parseGenParam(c.Params("gen"))
	if !ok {
		return badGeneration(c, c.Params("gen"))
	}

	species, ok := unescapeParam(c, "species")
	if !ok {
		return badParam(c)
	}

	result := h.dex.Moveset(species, gen)
	if !result.Known {
		return c.Status(fiber.StatusNotFound).JSON(result)
	}
	return c.JSON(result)
}

func (h *Handler) ListRoster(c *fiber.Ctx) error {
	pins, err := h.store.ListPins(c.Params("session"))
	if err != nil {
		return fmt.Errorf("list roster: %w", err)
	}
	return c.JSON(pins)
}

func (h *Handler) AddRosterPin(c *fiber.Ctx) error {
	var req pinRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
			Error:   "invalid request body",
			Details: err.Error(),
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
			Error:   "validation failed",
			Details: err.Error(),
		})
	}

	// Pins are free text: a user may track a species across generations
	// where validity differs, so the species index is never consulted
	added, err := h.store.AddPin(c.Params("session"), req.Species)
	if err != nil {
		return fmt.Errorf("add pin: %w", err)
	}
	if !added {
		return c.SendStatus(fiber.StatusOK)
	}
	return c.SendStatus(fiber.StatusCreated)
}

func (h *Handler) RemoveRosterPin(c *fiber.Ctx) error {
	species, ok := unescapeParam(c, "species")
	if !ok {
		return badParam(c)
	}

	if err := h.store.RemovePin(c.Params("session"), species); err != nil {
		return fmt.Errorf("remove pin: %w", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// requireSession rejects roster calls against unknown or malformed
// session ids before any handler runs.
func (h *Handler) requireSession(c *fiber.Ctx) error {
	sessionID := c.Params("session")
	if _, err := uuid.Parse(sessionID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
			Error: "malformed session id",
		})
	}

	exists, err := h.store.SessionExists(sessionID)
	if err != nil {
		return fmt.Errorf("check session: %w", err)
	}
	if !exists {
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{
			Error: "unknown session",
		})
	}

	return c.Next()
}

func parseGenParam(raw string) (dex.Generation, bool) {
	return dex.ParseGeneration(strings.TrimSpace(raw))
}

func badGeneration(c *fiber.Ctx, raw string) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
		Error:   "unknown generation",
		Details: fmt.Sprintf("%q is not a generation number, roman numeral or game group", raw),
	})
}

func unescapeParam(c *fiber.Ctx, name string) (string, bool) {
	raw, err := url.PathUnescape(c.Params(name))
	return raw, err == nil
}

func badParam(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
		Error: "malformed path parameter",
	})
}
