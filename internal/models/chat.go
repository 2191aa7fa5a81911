package models

type ChatStartResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type ChatMessageRequest struct {
	SessionID   string `json:"session_id"`
	UserMessage string `json:"user_message"`
}

// UserStats is the structured side channel emitted once height and weight are
// both known, for dashboard-style UI consumers.
type UserStats struct {
	Name     *string `json:"name"`
	HeightCM int     `json:"height"`
	WeightKG float64 `json:"weight"`
	BMI      float64 `json:"bmi"`
	BMILevel string  `json:"bmi_category"`
}

type ChatMessageResponse struct {
	SessionID     string        `json:"session_id"`
	Message       string        `json:"message"`
	State         DialogueState `json:"state"`
	DataCollected Profile       `json:"data_collected"`
	UserData      *UserStats    `json:"user_data,omitempty"`
}

// RecommendationRequest is the direct, non-conversational entry point: the
// caller already has a complete trusted profile and skips the chat flow.
type RecommendationRequest struct {
	Name         string  `json:"name"`
	Sex          string  `json:"sex"`
	Age          int     `json:"age"`
	HeightM      float64 `json:"height_m"`
	WeightKG     float64 `json:"weight_kg"`
	Hypertension string  `json:"hypertension"`
	Diabetes     string  `json:"diabetes"`
	WantsVideos  *bool   `json:"wants_videos"`
}

type RecommendationResponse struct {
	Name       string        `json:"name"`
	BMI        float64       `json:"bmi"`
	Level      string        `json:"level"`
	Plan       PlanRecord    `json:"plan"`
	Workouts   []WorkoutItem `json:"workouts"`
	SafetyNote string        `json:"safety_note"`
}
