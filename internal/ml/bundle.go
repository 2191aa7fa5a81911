package ml

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Reshma22M/Flexa-ChatBot/internal/models"
)

// Bundle is the trained model artifact: the fitted feature transform, the
// training samples the neighbor search runs against, and the reference plan
// table. It is produced by the offline training step and read-only here.
type Bundle struct {
	Features Features            `json:"features"`
	Samples  []Sample            `json:"samples"`
	Plans    []models.PlanRecord `json:"plans"`
}

// Features carries the fitted transform parameters. Numeric features are
// median-imputed and standard-scaled; categorical features are
// most-frequent-imputed and one-hot encoded with unknown values dropping to
// all zeros. Slice order is the encoding order and must match training.
type Features struct {
	Numeric     []NumericFeature     `json:"numeric"`
	Categorical []CategoricalFeature `json:"categorical"`
}

type NumericFeature struct {
	Name   string  `json:"name"`
	Median float64 `json:"median"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
}

type CategoricalFeature struct {
	Name         string   `json:"name"`
	MostFrequent string   `json:"most_frequent"`
	Categories   []string `json:"categories"`
}

// Sample is one training row in raw (pre-encoding) form, labeled with the
// plan it maps to.
type Sample struct {
	Sex          string  `json:"sex"`
	Age          float64 `json:"age"`
	Height       float64 `json:"height"`
	Weight       float64 `json:"weight"`
	Hypertension string  `json:"hypertension"`
	Diabetes     string  `json:"diabetes"`
	BMI          float64 `json:"bmi"`
	Level        string  `json:"level"`
	PlanID       int     `json:"plan_id"`
}

// LoadBundle reads and validates a model artifact from disk.
func LoadBundle(path string) (*Bundle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model bundle: %w", err)
	}

	var bundle Bundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return nil, fmt.Errorf("parse model bundle: %w", err)
	}
	if err := bundle.validate(); err != nil {
		return nil, fmt.Errorf("invalid model bundle: %w", err)
	}
	return &bundle, nil
}

func (b *Bundle) validate() error {
	if len(b.Features.Numeric) == 0 && len(b.Features.Categorical) == 0 {
		return fmt.Errorf("no features defined")
	}
	if len(b.Samples) == 0 {
		return fmt.Errorf("no training samples")
	}
	if len(b.Plans) == 0 {
		return fmt.Errorf("no plan records")
	}

	planIDs := make(map[int]struct{}, len(b.Plans))
	for _, plan := range b.Plans {
		planIDs[plan.ID] = struct{}{}
	}
	for i, sample := range b.Samples {
		if _, ok := planIDs[sample.PlanID]; !ok {
			return fmt.Errorf("sample %d references unknown plan %d", i, sample.PlanID)
		}
	}
	return nil
}

// featureInput is one row in raw form, ready to encode.
type featureInput struct {
	Sex          string
	Age          float64
	Height       float64
	Weight       float64
	Hypertension string
	Diabetes     string
	BMI          float64
	Level        string
}

func (s Sample) input() featureInput {
	return featureInput{
		Sex:          s.Sex,
		Age:          s.Age,
		Height:       s.Height,
		Weight:       s.Weight,
		Hypertension: s.Hypertension,
		Diabetes:     s.Diabetes,
		BMI:          s.BMI,
		Level:        s.Level,
	}
}

// encode builds the feature vector in training order: the standardized
// numeric block followed by the one-hot categorical block.
func (b *Bundle) encode(in featureInput) []float64 {
	vec := make([]float64, 0, len(b.Features.Numeric)+totalCategories(b.Features.Categorical))

	for _, f := range b.Features.Numeric {
		v := numericValue(in, f.Name)
		if f.Std > 0 {
			vec = append(vec, (v-f.Mean)/f.Std)
		} else {
			vec = append(vec, 0)
		}
	}
	for _, f := range b.Features.Categorical {
		v := categoricalValue(in, f.Name)
		if v == "" {
			v = f.MostFrequent
		}
		for _, category := range f.Categories {
			if v == category {
				vec = append(vec, 1)
			} else {
				vec = append(vec, 0)
			}
		}
	}
	return vec
}

func totalCategories(features []CategoricalFeature) int {
	total := 0
	for _, f := range features {
		total += len(f.Categories)
	}
	return total
}

func numericValue(in featureInput, name string) float64 {
	switch name {
	case "Age":
		return in.Age
	case "Height":
		return in.Height
	case "Weight":
		return in.Weight
	case "BMI":
		return in.BMI
	default:
		return 0
	}
}

func categoricalValue(in featureInput, name string) string {
	switch name {
	case "Sex":
		return in.Sex
	case "Hypertension":
		return in.Hypertension
	case "Diabetes":
		return in.Diabetes
	case "Level":
		return in.Level
	default:
		return ""
	}
}
