package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/Reshma22M/Flexa-ChatBot/internal/ml"
	"github.com/Reshma22M/Flexa-ChatBot/internal/models"
)

type stubRecommendService struct {
	result          *models.Recommendation
	err             error
	lastProfile     models.Profile
	lastWantsVideos bool
}

func (s *stubRecommendService) Recommend(profile models.Profile, wantsVideos bool) (*models.Recommendation, error) {
	s.lastProfile = profile
	s.lastWantsVideos = wantsVideos
	return s.result, s.err
}

func buildRecommendApp(service *stubRecommendService) *fiber.App {
	handler := NewRecommendHandler(service)
	app := fiber.New()
	app.Post("/recommend", handler.Recommend)
	return app
}

func TestRecommendReturnsPlanAndSafetyNote(t *testing.T) {
	service := &stubRecommendService{
		result: &models.Recommendation{
			BMI:   20.2,
			Level: "Normal",
			Plan:  models.PlanRecord{ID: 3, FitnessGoal: "Weight Loss", FitnessType: "Cardio"},
			Workouts: []models.WorkoutItem{
				{ID: 1, Title: "Fat Burn Cardio"},
			},
		},
	}
	app := buildRecommendApp(service)

	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(`{
		"name": "Ana",
		"sex": "Female",
		"age": 25,
		"height_m": 1.65,
		"weight_kg": 55,
		"hypertension": "No",
		"diabetes": "No",
		"wants_videos": true
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body models.RecommendationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Name != "Ana" || body.BMI != 20.2 || body.Level != "Normal" {
		t.Errorf("unexpected body: %+v", body)
	}
	if body.Plan.ID != 3 {
		t.Errorf("expected plan 3, got %d", body.Plan.ID)
	}
	if len(body.Workouts) != 1 {
		t.Errorf("expected 1 workout, got %d", len(body.Workouts))
	}
	if body.SafetyNote == "" {
		t.Error("expected a safety note")
	}
	if !service.lastWantsVideos {
		t.Error("expected wants_videos to be forwarded")
	}
	if service.lastProfile.Sex == nil || *service.lastProfile.Sex != "Female" {
		t.Errorf("profile not forwarded: %+v", service.lastProfile)
	}
}

func TestRecommendDefaultsToWantingVideos(t *testing.T) {
	service := &stubRecommendService{result: &models.Recommendation{}}
	app := buildRecommendApp(service)

	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(`{
		"name": "Ana",
		"sex": "Female",
		"age": 25,
		"height_m": 1.65,
		"weight_kg": 55,
		"hypertension": "No",
		"diabetes": "No"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if !service.lastWantsVideos {
		t.Error("wants_videos should default to true when omitted")
	}
}

func TestRecommendMapsModelUnavailable(t *testing.T) {
	app := buildRecommendApp(&stubRecommendService{err: ml.ErrModelUnavailable})

	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(`{
		"name": "Ana",
		"sex": "Female",
		"age": 25,
		"height_m": 1.65,
		"weight_kg": 55,
		"hypertension": "No",
		"diabetes": "No"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
}

func TestRecommendRejectsInvalidBody(t *testing.T) {
	app := buildRecommendApp(&stubRecommendService{})

	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader("nope"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
