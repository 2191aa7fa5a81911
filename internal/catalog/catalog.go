// Package catalog holds the static workout video catalog and the deterministic
// filter that picks videos for a predicted plan.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Reshma22M/Flexa-ChatBot/internal/models"
)

// maxWorkouts bounds every selection result.
const maxWorkouts = 3

// goalTags maps plan goals to the catalog's goal tags. Unmapped goals skip
// goal filtering entirely.
var goalTags = map[string]string{
	"Weight Loss": "weight_loss",
	"Weight Gain": "muscle_gain",
	"Toning":      "toning",
	"Flexibility": "flexibility",
}

// categoryTags maps plan fitness types to catalog categories.
var categoryTags = map[string]string{
	"Muscular Fitness": "Strength",
	"Cardio":           "Cardio",
	"HIIT":             "HIIT",
	"Yoga":             "Yoga",
}

// Catalog is the read-only workout collection, loaded once at startup.
type Catalog struct {
	workouts []models.WorkoutItem
}

type workoutFile struct {
	Workouts []models.WorkoutItem `json:"workouts"`
}

// Load reads the workout catalog JSON from disk.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workout catalog: %w", err)
	}

	var file workoutFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse workout catalog: %w", err)
	}
	return New(file.Workouts), nil
}

// New builds a catalog from in-memory items.
func New(workouts []models.WorkoutItem) *Catalog {
	return &Catalog{workouts: workouts}
}

// Select filters the catalog by the plan's goal, then narrows by fitness-type
// category only when that leaves a non-empty pool, and returns the first
// three remaining items in catalog order.
func (c *Catalog) Select(planGoal, planType string) []models.WorkoutItem {
	pool := c.workouts

	if tag, ok := goalTags[strings.TrimSpace(planGoal)]; ok {
		filtered := make([]models.WorkoutItem, 0, len(pool))
		for _, w := range pool {
			if strings.TrimSpace(w.Goal) == tag {
				filtered = append(filtered, w)
			}
		}
		pool = filtered
	}

	if category, ok := categoryTags[strings.TrimSpace(planType)]; ok {
		narrowed := make([]models.WorkoutItem, 0, len(pool))
		for _, w := range pool {
			if strings.EqualFold(strings.TrimSpace(w.Category), category) {
				narrowed = append(narrowed, w)
			}
		}
		if len(narrowed) > 0 {
			pool = narrowed
		}
	}

	if len(pool) > maxWorkouts {
		pool = pool[:maxWorkouts]
	}
	return pool
}
