package models

// PlanRecord is one row of the reference plan table the model predicts
// against. Rows are loaded once at startup and never mutated.
type PlanRecord struct {
	ID             int    `json:"id"`
	FitnessGoal    string `json:"fitness_goal"`
	FitnessType    string `json:"fitness_type"`
	Exercises      string `json:"exercises"`
	Equipment      string `json:"equipment"`
	Diet           string `json:"diet"`
	Recommendation string `json:"recommendation"`
}

// Recommendation bundles everything the engine produces for one profile.
type Recommendation struct {
	BMI      float64       `json:"bmi"`
	Level    string        `json:"level"`
	Plan     PlanRecord    `json:"plan"`
	Workouts []WorkoutItem `json:"workouts"`
}

// DriftResult captures one goal-drift evaluation: whether the user's stated
// problem conflicts with the model's predicted goal, and the contextual
// message to show when it does.
type DriftResult struct {
	HasDrift      bool    `json:"has_drift"`
	PredictedGoal string  `json:"predicted_goal"`
	StatedProblem string  `json:"stated_problem"`
	DriftMessage  string  `json:"drift_message"`
	BMI           float64 `json:"bmi"`
	BMILevel      string  `json:"bmi_level"`
}
