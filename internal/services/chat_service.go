package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Reshma22M/Flexa-ChatBot/internal/models"
	"github.com/Reshma22M/Flexa-ChatBot/internal/normalize"
	"github.com/Reshma22M/Flexa-ChatBot/internal/session"
	"github.com/Reshma22M/Flexa-ChatBot/pkg/utils"
)

const (
	greetingMessage = "Hi! I'm Flexa 👋 What's your name?"
	videosQuestion  = "Would you like me to suggest some YouTube workout videos as well? (Yes/No)"
	goodbyeMessage  = "Good luck with your fitness journey! 💪"
	doctorWarning   = "⚠️ IMPORTANT: Please consult your doctor before starting any new workout plan.\n\n"
)

type recommendationEngine interface {
	Recommend(profile models.Profile, wantsVideos bool) (*models.Recommendation, error)
	DetectGoalDrift(profile models.Profile, statedProblem string) (*models.DriftResult, error)
}

// ChatService is the conversation state machine: it advances a session
// through the fixed intake sequence, triggers drift detection once the
// profile is complete, and assembles the final recommendation message.
type ChatService struct {
	store  session.Store
	engine recommendationEngine
}

func NewChatService(store session.Store, engine recommendationEngine) *ChatService {
	return &ChatService{store: store, engine: engine}
}

// Start opens a fresh session and returns the greeting.
func (s *ChatService) Start(ctx context.Context) (*models.ChatStartResponse, error) {
	created, err := s.store.Create(ctx)
	if err != nil {
		return nil, err
	}
	return &models.ChatStartResponse{
		SessionID: created.ID,
		Message:   greetingMessage,
	}, nil
}

// HandleMessage runs one turn. An unknown or empty session id silently gets a
// fresh session. Transitions run on a working copy that is only stored once
// the turn succeeds, so a failed turn cannot corrupt the session.
func (s *ChatService) HandleMessage(ctx context.Context, sessionID, userMessage string) (*models.ChatMessageResponse, error) {
	current, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			return nil, err
		}
		current, err = s.store.Create(ctx)
		if err != nil {
			return nil, err
		}
	}

	working := current.Clone()
	reply, err := s.transition(working, strings.TrimSpace(userMessage))
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, working); err != nil {
		return nil, err
	}

	reply.SessionID = working.ID
	reply.State = working.State
	reply.DataCollected = working.Profile
	return reply, nil
}

func (s *ChatService) transition(sess *models.ChatSession, text string) (*models.ChatMessageResponse, error) {
	profile := &sess.Profile

	switch sess.State {
	case models.StateAskName:
		profile.Name = &text
		sess.State = models.StateAskProblem
		return reply("Nice to meet you, %s! What do you need help with? (e.g., weight loss, weight gain, flexibility, toning)", text), nil

	case models.StateAskProblem:
		profile.Problem = &text
		sess.State = models.StateAskSex
		return reply("Got it. What is your sex? (Male/Female)"), nil

	case models.StateAskSex:
		sex := normalize.Sex(text)
		profile.Sex = &sex
		sess.State = models.StateAskAge
		return reply("What is your age?"), nil

	case models.StateAskAge:
		age, err := normalize.Age(text)
		if err != nil {
			return reply("Please type your age as a number (example: 21)."), nil
		}
		profile.Age = &age
		sess.State = models.StateAskHeight
		return reply("What is your height in meters? (example: 1.65)"), nil

	case models.StateAskHeight:
		height, err := normalize.Height(text)
		if err != nil {
			return reply("Please type height in meters (example: 1.65)."), nil
		}
		profile.HeightM = &height
		sess.State = models.StateAskWeight
		return reply("What is your weight in kg? (example: 55)"), nil

	case models.StateAskWeight:
		weight, err := normalize.Weight(text)
		if err != nil {
			return reply("Please type weight in kg (example: 55)."), nil
		}
		profile.WeightKG = &weight
		return s.captureWeight(sess, weight)

	case models.StateAskHypertension:
		answer := normalize.YesNo(text)
		profile.Hypertension = &answer
		sess.State = models.StateAskDiabetes
		return reply("Do you have diabetes? (Yes/No)"), nil

	case models.StateAskDiabetes:
		answer := normalize.YesNo(text)
		profile.Diabetes = &answer
		return s.captureDiabetes(sess)

	case models.StateAskGoalClarification:
		return s.captureClarification(sess, text)

	case models.StateAskVideos:
		return s.captureVideosChoice(sess, text)

	default: // DONE
		return reply("If you want, type 'restart' to begin again."), nil
	}
}

// captureWeight derives BMI once height and weight are both known and emits
// the structured side channel for dashboard consumers.
func (s *ChatService) captureWeight(sess *models.ChatSession, weight float64) (*models.ChatMessageResponse, error) {
	profile := &sess.Profile

	bmi, err := normalize.BMI(*profile.HeightM, weight)
	if err != nil {
		// Gated by the height parse above; if it still happens the turn
		// fails without touching stored state.
		return nil, err
	}
	rounded := utils.Round(bmi, 1)
	level := normalize.BMILevel(bmi)
	profile.BMI = &rounded
	profile.BMILevel = &level

	sess.State = models.StateAskHypertension
	response := reply("Great! Your BMI is %.1f (%s).\n\nDo you have hypertension (high blood pressure)? (Yes/No)", rounded, level)
	response.UserData = &models.UserStats{
		Name:     profile.Name,
		HeightCM: int(math.Round(*profile.HeightM * 100)),
		WeightKG: weight,
		BMI:      rounded,
		BMILevel: level,
	}
	return response, nil
}

// captureDiabetes completes the profile: run drift detection and either
// branch to clarification or render the recommendation directly.
func (s *ChatService) captureDiabetes(sess *models.ChatSession) (*models.ChatMessageResponse, error) {
	drift, err := s.engine.DetectGoalDrift(sess.Profile, strValue(sess.Profile.Problem))
	if err != nil {
		return nil, err
	}
	sess.Drift = drift

	if drift.HasDrift {
		sess.State = models.StateAskGoalClarification
		return reply("%s\n\nPlease reply: 'Follow AI recommendation' or 'Keep my original goal'", drift.DriftMessage), nil
	}

	rec, err := s.engine.Recommend(sess.Profile, false)
	if err != nil {
		return nil, err
	}
	sess.Recommendation = rec
	sess.State = models.StateAskVideos
	return reply("%s%s", renderRecommendation(sess.Profile, rec), videosQuestion), nil
}

// captureClarification records the user's choice. The choice changes the
// acknowledgment text only: both branches proceed with the same predicted
// plan.
func (s *ChatService) captureClarification(sess *models.ChatSession, text string) (*models.ChatMessageResponse, error) {
	answer := strings.ToLower(text)
	followAI := strings.Contains(answer, "ai") ||
		strings.Contains(answer, "recommendation") ||
		strings.Contains(answer, "follow")

	profile := &sess.Profile
	profile.ChoseAIGoal = &followAI
	var ack, clarification string
	if followAI {
		clarification = "Followed AI recommendation"
		ack = "✅ Great choice! Following the AI recommendation based on your stats.\n\n"
	} else {
		clarification = "Kept original goal"
		ack = "✅ Understood! We'll respect your goal preference.\n\n"
	}
	profile.Clarification = &clarification

	rec, err := s.engine.Recommend(sess.Profile, false)
	if err != nil {
		return nil, err
	}
	sess.Recommendation = rec
	sess.State = models.StateAskVideos
	return reply("%s%s%s", ack, renderRecommendation(sess.Profile, rec), videosQuestion), nil
}

func (s *ChatService) captureVideosChoice(sess *models.ChatSession, text string) (*models.ChatMessageResponse, error) {
	wantsVideos := normalize.YesNo(text) == "Yes"
	sess.Profile.WantsVideos = &wantsVideos
	sess.State = models.StateDone

	if !wantsVideos {
		return reply("No problem! %s", goodbyeMessage), nil
	}
	if sess.Recommendation == nil {
		return reply(goodbyeMessage), nil
	}

	rec, err := s.engine.Recommend(sess.Profile, true)
	if err != nil {
		return nil, err
	}
	if len(rec.Workouts) == 0 {
		return reply("I couldn't find specific videos at the moment, but good luck with your fitness journey! 💪"), nil
	}

	var b strings.Builder
	b.WriteString("▶️ RECOMMENDED WORKOUT VIDEOS\n\n")
	for i, w := range rec.Workouts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, w.Title)
		fmt.Fprintf(&b, "   ⏱ Duration: %d min\n", w.Duration)
		fmt.Fprintf(&b, "   🔗 Watch: %s\n\n", w.YoutubeLink)
	}
	b.WriteString(goodbyeMessage)
	return reply("%s", b.String()), nil
}

// renderRecommendation assembles the multi-section plan message in its fixed
// order: doctor warning, stats, exercises, equipment, diet, expert note.
func renderRecommendation(profile models.Profile, rec *models.Recommendation) string {
	var b strings.Builder

	if profile.HasConditions() {
		b.WriteString(doctorWarning)
	}

	fmt.Fprintf(&b, "✅ %s, here's your personalized plan (ML-based):\n\n", strValue(profile.Name))

	b.WriteString("📊 YOUR STATS\n")
	fmt.Fprintf(&b, "• BMI: %s (%s)\n", formatBMI(rec.BMI), rec.Level)
	fmt.Fprintf(&b, "• Fitness Goal: %s\n", rec.Plan.FitnessGoal)
	fmt.Fprintf(&b, "• Plan Type: %s\n\n", rec.Plan.FitnessType)

	b.WriteString("🏋️ RECOMMENDED EXERCISES\n")
	for _, item := range strings.Split(rec.Plan.Exercises, ",") {
		fmt.Fprintf(&b, "• %s\n", strings.TrimSpace(item))
	}
	b.WriteString("\n")

	b.WriteString("🧰 EQUIPMENT NEEDED\n")
	for _, item := range strings.Split(rec.Plan.Equipment, ",") {
		fmt.Fprintf(&b, "• %s\n", strings.TrimSpace(item))
	}
	b.WriteString("\n")

	b.WriteString("🥗 DIET RECOMMENDATIONS\n")
	for _, item := range splitDiet(rec.Plan.Diet) {
		fmt.Fprintf(&b, "• %s\n", item)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "📌 EXPERT RECOMMENDATION\n%s\n\n", rec.Plan.Recommendation)
	return b.String()
}

// splitDiet handles the mixed separators in diet text: semicolons, the word
// "and", and commas all delimit items; empty fragments are dropped.
func splitDiet(diet string) []string {
	diet = strings.ReplaceAll(diet, ";", ",")
	diet = strings.ReplaceAll(diet, " and ", ",")

	items := make([]string, 0, 4)
	for _, fragment := range strings.Split(diet, ",") {
		if trimmed := strings.TrimSpace(fragment); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// formatBMI prints a whole-number BMI with one decimal ("20.0") and otherwise
// drops trailing zeros ("24.54", "20.2").
func formatBMI(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func reply(format string, args ...any) *models.ChatMessageResponse {
	return &models.ChatMessageResponse{Message: fmt.Sprintf(format, args...)}
}

func strValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
