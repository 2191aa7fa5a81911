package models

// WorkoutItem is one entry of the static workout video catalog.
type WorkoutItem struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	YoutubeLink    string   `json:"youtube_link"`
	Channel        string   `json:"channel"`
	Duration       int      `json:"duration"`
	Difficulty     string   `json:"difficulty"`
	Category       string   `json:"category"`
	Equipment      []string `json:"equipment"`
	CaloriesBurned int      `json:"calories_burned"`
	Goal           string   `json:"goal"`
	MuscleGroups   []string `json:"muscle_groups"`
	Description    string   `json:"description"`
}
