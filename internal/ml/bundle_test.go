package ml

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBundleFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.json")
	content := `{
		"features": {
			"numeric": [{"name": "Age", "median": 30, "mean": 30, "std": 10}],
			"categorical": [{"name": "Sex", "most_frequent": "Female", "categories": ["Female", "Male"]}]
		},
		"samples": [
			{"sex": "Female", "age": 25, "height": 1.7, "weight": 48, "hypertension": "No", "diabetes": "No", "bmi": 16.6, "level": "Underweight", "plan_id": 1}
		],
		"plans": [
			{"id": 1, "fitness_goal": "Weight Gain", "fitness_type": "Muscular Fitness"}
		]
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	bundle, err := LoadBundle(path)
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}
	if len(bundle.Samples) != 1 || bundle.Samples[0].PlanID != 1 {
		t.Errorf("unexpected samples: %+v", bundle.Samples)
	}
	if bundle.Plans[0].FitnessGoal != "Weight Gain" {
		t.Errorf("unexpected plan: %+v", bundle.Plans[0])
	}
}

func TestLoadBundleMissingFile(t *testing.T) {
	if _, err := LoadBundle(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadBundleMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadBundle(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestShippedArtifactLoads(t *testing.T) {
	predictor, err := Load(filepath.Join("..", "..", "models", "plan_model.json"))
	if err != nil {
		t.Fatalf("shipped model artifact does not load: %v", err)
	}
	if predictor == nil {
		t.Fatal("expected a predictor")
	}
}
