package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Reshma22M/Flexa-ChatBot/internal/ml"
	"github.com/Reshma22M/Flexa-ChatBot/internal/models"
	"github.com/Reshma22M/Flexa-ChatBot/internal/normalize"
	"github.com/Reshma22M/Flexa-ChatBot/internal/services"
)

const safetyNote = "General guidance only. Consult a professional for medical concerns."

type recommendationService interface {
	Recommend(profile models.Profile, wantsVideos bool) (*models.Recommendation, error)
}

// RecommendHandler serves the direct entry point: a fully specified, trusted
// profile skips the chat flow and drift detection entirely.
type RecommendHandler struct {
	service recommendationService
}

func NewRecommendHandler(service recommendationService) *RecommendHandler {
	return &RecommendHandler{service: service}
}

func (h *RecommendHandler) Recommend(c *fiber.Ctx) error {
	var req models.RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	wantsVideos := true
	if req.WantsVideos != nil {
		wantsVideos = *req.WantsVideos
	}

	profile := models.Profile{
		Name:         &req.Name,
		Sex:          &req.Sex,
		Age:          &req.Age,
		HeightM:      &req.HeightM,
		WeightKG:     &req.WeightKG,
		Hypertension: &req.Hypertension,
		Diabetes:     &req.Diabetes,
	}

	rec, err := h.service.Recommend(profile, wantsVideos)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrIncompleteProfile), errors.Is(err, normalize.ErrInvalidHeight):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid profile"})
		case errors.Is(err, ml.ErrModelUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Recommendation engine is unavailable"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
		}
	}

	return c.JSON(models.RecommendationResponse{
		Name:       req.Name,
		BMI:        rec.BMI,
		Level:      rec.Level,
		Plan:       rec.Plan,
		Workouts:   rec.Workouts,
		SafetyNote: safetyNote,
	})
}
