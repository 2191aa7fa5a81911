package normalize

import (
	"errors"
	"math"
	"testing"
)

func TestYesNo(t *testing.T) {
	cases := map[string]string{
		"yes":    "Yes",
		"Yes":    "Yes",
		" Y ":    "Yes",
		"TRUE":   "Yes",
		"1":      "Yes",
		"no":     "No",
		"nope":   "No",
		"maybe":  "No",
		"":       "No",
		"0":      "No",
		"yes!!!": "No",
	}
	for input, want := range cases {
		if got := YesNo(input); got != want {
			t.Errorf("YesNo(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestYesNoIdempotent(t *testing.T) {
	for _, input := range []string{"yes", "y", "whatever", "", "No"} {
		once := YesNo(input)
		if twice := YesNo(once); twice != once {
			t.Errorf("YesNo not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestSex(t *testing.T) {
	cases := map[string]string{
		"male":       "Male",
		"M":          "Male",
		" man ":      "Male",
		"female":     "Female",
		"f":          "Female",
		"Femme":      "Female",
		"other":      "Other",
		"NON-BINARY": "Non-binary",
	}
	for input, want := range cases {
		if got := Sex(input); got != want {
			t.Errorf("Sex(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestAge(t *testing.T) {
	age, err := Age(" 25 ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if age != 25 {
		t.Errorf("Expected 25, got %d", age)
	}

	for _, bad := range []string{"twenty", "25.5", "", "25 years"} {
		if _, err := Age(bad); !errors.Is(err, ErrParse) {
			t.Errorf("Age(%q): expected ErrParse, got %v", bad, err)
		}
	}
}

func TestHeightWeight(t *testing.T) {
	h, err := Height("1.65")
	if err != nil || h != 1.65 {
		t.Fatalf("Height(1.65) = %v, %v", h, err)
	}
	w, err := Weight(" 55 ")
	if err != nil || w != 55 {
		t.Fatalf("Weight(55) = %v, %v", w, err)
	}
	if _, err := Height("tall"); !errors.Is(err, ErrParse) {
		t.Errorf("Expected ErrParse, got %v", err)
	}
	if _, err := Weight("55kg"); !errors.Is(err, ErrParse) {
		t.Errorf("Expected ErrParse, got %v", err)
	}
}

func TestBMI(t *testing.T) {
	bmi, err := BMI(1.70, 48)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if math.Abs(bmi-16.61) > 0.01 {
		t.Errorf("Expected BMI ~16.61, got %v", bmi)
	}

	bmi, err = BMI(1.65, 55)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if math.Abs(bmi-20.20) > 0.01 {
		t.Errorf("Expected BMI ~20.20, got %v", bmi)
	}

	if _, err := BMI(0, 55); !errors.Is(err, ErrInvalidHeight) {
		t.Errorf("Expected ErrInvalidHeight, got %v", err)
	}
	if _, err := BMI(-1.7, 55); !errors.Is(err, ErrInvalidHeight) {
		t.Errorf("Expected ErrInvalidHeight, got %v", err)
	}
}

func TestBMILevelBoundaries(t *testing.T) {
	cases := map[float64]string{
		10.0:  "Underweight",
		18.49: "Underweight",
		18.5:  "Normal",
		24.99: "Normal",
		25.0:  "Overweight",
		29.99: "Overweight",
		30.0:  "Obese",
		45.0:  "Obese",
	}
	for bmi, want := range cases {
		if got := BMILevel(bmi); got != want {
			t.Errorf("BMILevel(%v) = %q, want %q", bmi, got, want)
		}
	}
}

func TestBMILevelIsAlwaysOneOfFour(t *testing.T) {
	valid := map[string]bool{
		"Underweight": true,
		"Normal":      true,
		"Overweight":  true,
		"Obese":       true,
	}
	for h := 1.4; h <= 2.1; h += 0.1 {
		for w := 35.0; w <= 140.0; w += 15.0 {
			bmi, err := BMI(h, w)
			if err != nil {
				t.Fatalf("BMI(%v, %v): %v", h, w, err)
			}
			if !valid[BMILevel(bmi)] {
				t.Fatalf("BMILevel(%v) outside the four categories", bmi)
			}
		}
	}
}
