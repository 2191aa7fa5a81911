// Package ml wraps the trained nearest-neighbor plan model: it loads the
// artifact produced by the offline training step and answers "which reference
// plan is closest to this profile".
package ml

import (
	"errors"
	"math"
	"sort"

	"github.com/Reshma22M/Flexa-ChatBot/internal/models"
	"github.com/Reshma22M/Flexa-ChatBot/internal/normalize"
)

var (
	// ErrModelUnavailable means the trained model or plan table failed to
	// load. Fatal for the whole engine, never retried per request.
	ErrModelUnavailable = errors.New("plan model is not available")

	// ErrIncompleteProfile means the profile is missing fields the feature
	// vector needs.
	ErrIncompleteProfile = errors.New("profile is incomplete")
)

// neighborCount matches the k the model was trained with.
const neighborCount = 5

// Predictor runs distance-weighted kNN inference over the bundle's training
// samples. Immutable after construction, safe for concurrent use.
type Predictor struct {
	bundle  *Bundle
	encoded [][]float64
	plans   map[int]models.PlanRecord
}

// Load reads the model artifact at path and builds a ready predictor.
func Load(path string) (*Predictor, error) {
	bundle, err := LoadBundle(path)
	if err != nil {
		return nil, err
	}
	return NewPredictor(bundle)
}

// NewPredictor precomputes the encoded sample matrix for a validated bundle.
func NewPredictor(bundle *Bundle) (*Predictor, error) {
	if bundle == nil {
		return nil, ErrModelUnavailable
	}
	if err := bundle.validate(); err != nil {
		return nil, err
	}

	encoded := make([][]float64, len(bundle.Samples))
	for i, sample := range bundle.Samples {
		encoded[i] = bundle.encode(sample.input())
	}

	plans := make(map[int]models.PlanRecord, len(bundle.Plans))
	for _, plan := range bundle.Plans {
		plans[plan.ID] = plan
	}

	return &Predictor{bundle: bundle, encoded: encoded, plans: plans}, nil
}

// Predict returns the reference plan closest to the profile. The profile's
// raw fields are re-normalized and BMI is recomputed so the feature vector
// always mirrors the training-time columns.
func (p *Predictor) Predict(profile models.Profile) (models.PlanRecord, error) {
	if p == nil || p.bundle == nil {
		return models.PlanRecord{}, ErrModelUnavailable
	}
	if !profile.Complete() {
		return models.PlanRecord{}, ErrIncompleteProfile
	}

	bmi, err := normalize.BMI(*profile.HeightM, *profile.WeightKG)
	if err != nil {
		return models.PlanRecord{}, err
	}

	query := p.bundle.encode(featureInput{
		Sex:          normalize.Sex(*profile.Sex),
		Age:          float64(*profile.Age),
		Height:       *profile.HeightM,
		Weight:       *profile.WeightKG,
		Hypertension: normalize.YesNo(*profile.Hypertension),
		Diabetes:     normalize.YesNo(*profile.Diabetes),
		BMI:          bmi,
		Level:        normalize.BMILevel(bmi),
	})

	planID := p.nearestPlanID(query)
	plan, ok := p.plans[planID]
	if !ok {
		return models.PlanRecord{}, ErrModelUnavailable
	}
	return plan, nil
}

type neighbor struct {
	index    int
	distance float64
}

// nearestPlanID votes among the k nearest samples, weighting each vote by
// inverse distance. Exact matches (distance zero) vote alone, matching the
// trained classifier's behavior.
func (p *Predictor) nearestPlanID(query []float64) int {
	neighbors := make([]neighbor, len(p.encoded))
	for i, sample := range p.encoded {
		neighbors[i] = neighbor{index: i, distance: euclidean(query, sample)}
	}
	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].distance == neighbors[j].distance {
			return neighbors[i].index < neighbors[j].index
		}
		return neighbors[i].distance < neighbors[j].distance
	})

	k := neighborCount
	if k > len(neighbors) {
		k = len(neighbors)
	}
	nearest := neighbors[:k]

	votes := make(map[int]float64, k)
	if nearest[0].distance == 0 {
		for _, n := range nearest {
			if n.distance == 0 {
				votes[p.bundle.Samples[n.index].PlanID]++
			}
		}
	} else {
		for _, n := range nearest {
			votes[p.bundle.Samples[n.index].PlanID] += 1 / n.distance
		}
	}

	best, bestWeight := 0, math.Inf(-1)
	for planID, weight := range votes {
		if weight > bestWeight || (weight == bestWeight && planID < best) {
			best, bestWeight = planID, weight
		}
	}
	return best
}

func euclidean(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
