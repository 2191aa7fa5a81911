package models

// Profile is the incrementally collected set of user attributes that drives
// plan prediction. Optional fields are pointers: presence tracks how far the
// intake dialogue has progressed. BMI and BMILevel are always derived from the
// latest height/weight pair, never set directly.
type Profile struct {
	Name          *string  `json:"name,omitempty"`
	Problem       *string  `json:"problem,omitempty"`
	Sex           *string  `json:"sex,omitempty"`
	Age           *int     `json:"age,omitempty"`
	HeightM       *float64 `json:"height_m,omitempty"`
	WeightKG      *float64 `json:"weight_kg,omitempty"`
	BMI           *float64 `json:"bmi,omitempty"`
	BMILevel      *string  `json:"bmi_category,omitempty"`
	Hypertension  *string  `json:"hypertension,omitempty"`
	Diabetes      *string  `json:"diabetes,omitempty"`
	ChoseAIGoal   *bool    `json:"user_chose_ai_goal,omitempty"`
	Clarification *string  `json:"clarification,omitempty"`
	WantsVideos   *bool    `json:"wants_videos,omitempty"`
}

// Complete reports whether every field the predictor needs has been collected.
func (p *Profile) Complete() bool {
	return p.Sex != nil &&
		p.Age != nil &&
		p.HeightM != nil &&
		p.WeightKG != nil &&
		p.Hypertension != nil &&
		p.Diabetes != nil
}

// HasConditions reports whether the user declared hypertension or diabetes.
func (p *Profile) HasConditions() bool {
	return (p.Hypertension != nil && *p.Hypertension == "Yes") ||
		(p.Diabetes != nil && *p.Diabetes == "Yes")
}
