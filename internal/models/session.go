package models

// DialogueState is the current position in the fixed intake sequence. The
// wire values double as the state names shown to API consumers.
type DialogueState string

const (
	StateAskName              DialogueState = "ASK_NAME"
	StateAskProblem           DialogueState = "ASK_PROBLEM"
	StateAskSex               DialogueState = "ASK_SEX"
	StateAskAge               DialogueState = "ASK_AGE"
	StateAskHeight            DialogueState = "ASK_HEIGHT"
	StateAskWeight            DialogueState = "ASK_WEIGHT"
	StateAskHypertension      DialogueState = "ASK_HYPERTENSION"
	StateAskDiabetes          DialogueState = "ASK_DIABETES"
	StateAskGoalClarification DialogueState = "ASK_GOAL_CLARIFICATION"
	StateAskVideos            DialogueState = "ASK_VIDEOS"
	StateDone                 DialogueState = "DONE"
)

// ChatSession is one conversation: its dialogue position, the profile
// accumulated so far, and the cached drift/recommendation results produced
// once the profile is complete.
type ChatSession struct {
	ID             string          `json:"id"`
	State          DialogueState   `json:"state"`
	Profile        Profile         `json:"profile"`
	Drift          *DriftResult    `json:"drift,omitempty"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
}

// Clone returns a deep enough copy for copy-on-write turn handling: the
// transition mutates the clone and the store is only updated once the turn
// succeeds, so a failed turn leaves the stored session untouched.
func (s *ChatSession) Clone() *ChatSession {
	clone := *s
	if s.Drift != nil {
		drift := *s.Drift
		clone.Drift = &drift
	}
	if s.Recommendation != nil {
		rec := *s.Recommendation
		clone.Recommendation = &rec
	}
	clone.Profile = cloneProfile(s.Profile)
	return &clone
}

func cloneProfile(p Profile) Profile {
	out := p
	out.Name = clonePtr(p.Name)
	out.Problem = clonePtr(p.Problem)
	out.Sex = clonePtr(p.Sex)
	out.Age = clonePtr(p.Age)
	out.HeightM = clonePtr(p.HeightM)
	out.WeightKG = clonePtr(p.WeightKG)
	out.BMI = clonePtr(p.BMI)
	out.BMILevel = clonePtr(p.BMILevel)
	out.Hypertension = clonePtr(p.Hypertension)
	out.Diabetes = clonePtr(p.Diabetes)
	out.ChoseAIGoal = clonePtr(p.ChoseAIGoal)
	out.Clarification = clonePtr(p.Clarification)
	out.WantsVideos = clonePtr(p.WantsVideos)
	return out
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	copied := *v
	return &copied
}
