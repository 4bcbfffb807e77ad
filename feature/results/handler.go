package results

import (
	"errors"

	"repcomp/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for archived results.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the results routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/runs")
	group.Get("/", h.HandleListRuns)
	group.Get("/:id", h.HandleRun)
	group.Get("/:id/:artifact", h.HandleArtifact)
}

// HandleListRuns returns the most recent comparison runs.
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	limit := c.QueryInt("limit", 20)
	runs, err := h.service.Runs(c.Context(), limit)
	if err != nil {
		l.Error("Listing runs failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"runs": runs})
}

// HandleRun returns one run's recorded details and its archived artifacts.
// Without a history database only the artifact listing is returned.
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	runID := c.Params("id")

	run, err := h.service.Run(c.Context(), runID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "unknown run",
			})
		}
		l.Error("Loading run failed", zap.String("run_id", runID), zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "run history unavailable",
		})
	}

	names, err := h.service.ArtifactNames(c.Context(), runID)
	if err != nil {
		l.Error("Listing artifacts failed", zap.String("run_id", runID), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "artifact listing unavailable",
		})
	}

	payload := fiber.Map{
		"run_id":    runID,
		"artifacts": names,
	}
	if run != nil {
		payload["run"] = run
	}
	return c.JSON(payload)
}

// HandleArtifact streams one archived report artifact.
func (h *Handler) HandleArtifact(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	runID := c.Params("id")
	name := c.Params("artifact")

	rc, err := h.service.Artifact(c.Context(), runID, name)
	if err != nil {
		if errors.Is(err, ErrUnknownArtifact) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "unknown artifact",
			})
		}
		l.Error("Fetching artifact failed",
			zap.String("run_id", runID),
			zap.String("artifact", name),
			zap.Error(err),
		)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "artifact unavailable",
		})
	}

	return c.SendStream(rc)
}
