package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Reshma22M/Flexa-ChatBot/internal/models"
	"github.com/Reshma22M/Flexa-ChatBot/internal/normalize"
	"github.com/Reshma22M/Flexa-ChatBot/pkg/utils"
)

var ErrIncompleteProfile = errors.New("profile is incomplete")

type planPredictor interface {
	Predict(profile models.Profile) (models.PlanRecord, error)
}

type workoutSelector interface {
	Select(planGoal, planType string) []models.WorkoutItem
}

// RecommenderService turns a complete profile into a plan recommendation and
// checks the user's stated goal against the model's prediction.
type RecommenderService struct {
	predictor planPredictor
	catalog   workoutSelector
}

func NewRecommenderService(predictor planPredictor, catalog workoutSelector) *RecommenderService {
	return &RecommenderService{predictor: predictor, catalog: catalog}
}

// Recommend predicts the closest reference plan for the profile and, when
// wantsVideos is set, attaches up to three matching workout videos.
func (s *RecommenderService) Recommend(profile models.Profile, wantsVideos bool) (*models.Recommendation, error) {
	if !profile.Complete() {
		return nil, ErrIncompleteProfile
	}

	bmi, err := normalize.BMI(*profile.HeightM, *profile.WeightKG)
	if err != nil {
		return nil, err
	}

	plan, err := s.predictor.Predict(profile)
	if err != nil {
		return nil, err
	}

	workouts := []models.WorkoutItem{}
	if wantsVideos {
		workouts = s.catalog.Select(plan.FitnessGoal, plan.FitnessType)
	}

	return &models.Recommendation{
		BMI:      utils.Round(bmi, 2),
		Level:    normalize.BMILevel(bmi),
		Plan:     plan,
		Workouts: workouts,
	}, nil
}

// goalPhrases maps phrases found in a stated problem to the plan goals that
// statement is compatible with. Loss phrases also accept Toning: a toning
// plan is a legitimate answer to "slim down".
var goalPhrases = []struct {
	phrase string
	goals  []string
}{
	{"weight loss", []string{"Weight Loss", "Toning"}},
	{"lose weight", []string{"Weight Loss", "Toning"}},
	{"fat loss", []string{"Weight Loss", "Toning"}},
	{"slim down", []string{"Weight Loss", "Toning"}},
	{"weight gain", []string{"Weight Gain"}},
	{"gain weight", []string{"Weight Gain"}},
	{"build muscle", []string{"Weight Gain"}},
	{"muscle gain", []string{"Weight Gain"}},
	{"bulk up", []string{"Weight Gain"}},
	{"tone up", []string{"Toning"}},
	{"toning", []string{"Toning"}},
	{"flexibility", []string{"Flexibility"}},
	{"stretching", []string{"Flexibility"}},
	{"yoga", []string{"Flexibility"}},
}

// DetectGoalDrift predicts the plan for the profile and flags a conflict when
// the stated problem names a recognizable goal the prediction does not serve.
// Statements with no recognized phrase never drift: ambiguity is trusted.
func (s *RecommenderService) DetectGoalDrift(profile models.Profile, statedProblem string) (*models.DriftResult, error) {
	if !profile.Complete() {
		return nil, ErrIncompleteProfile
	}

	bmi, err := normalize.BMI(*profile.HeightM, *profile.WeightKG)
	if err != nil {
		return nil, err
	}
	level := normalize.BMILevel(bmi)

	plan, err := s.predictor.Predict(profile)
	if err != nil {
		return nil, err
	}

	expected := expectedGoals(statedProblem)
	result := &models.DriftResult{
		PredictedGoal: plan.FitnessGoal,
		StatedProblem: statedProblem,
		BMI:           utils.Round(bmi, 1),
		BMILevel:      level,
	}

	if len(expected) == 0 || expected[plan.FitnessGoal] {
		return result, nil
	}

	result.HasDrift = true
	result.DriftMessage = driftMessage(expected, plan.FitnessGoal, result.BMI, level)
	return result, nil
}

func expectedGoals(statedProblem string) map[string]bool {
	stated := strings.ToLower(statedProblem)
	expected := make(map[string]bool)
	for _, entry := range goalPhrases {
		if strings.Contains(stated, entry.phrase) {
			for _, goal := range entry.goals {
				expected[goal] = true
			}
		}
	}
	return expected
}

// driftMessage picks the explanation by mismatch direction and embeds the
// BMI context so the user can see why the model disagrees.
func driftMessage(expected map[string]bool, predictedGoal string, bmi float64, level string) string {
	switch {
	case expected["Weight Loss"] && predictedGoal == "Weight Gain":
		return fmt.Sprintf(
			"🤔 I noticed something important: you mentioned wanting to lose weight, "+
				"but your BMI is %.1f (%s). Based on your stats, my analysis suggests a "+
				"Weight Gain plan would actually be healthier for you right now.",
			bmi, level)
	case expected["Weight Gain"] && predictedGoal == "Weight Loss":
		return fmt.Sprintf(
			"🤔 I noticed something important: you mentioned wanting to gain weight, "+
				"but your BMI is %.1f (%s). Based on your stats, my analysis suggests a "+
				"Weight Loss plan would actually be healthier for you right now.",
			bmi, level)
	default:
		return fmt.Sprintf(
			"🤔 I noticed a mismatch: your stated goal doesn't line up with the %s "+
				"plan my analysis recommends for your BMI of %.1f (%s).",
			predictedGoal, bmi, level)
	}
}
