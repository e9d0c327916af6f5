// ABOUTME: Tests for building snapshots from raw tokens.
// ABOUTME: Covers scenario inputs, BMI derivation, workouts and invalid-token reporting.
package intake

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 5, 4, 7, 30, 0, 0, time.UTC)

func TestBuildProfileScenario(t *testing.T) {
	s := Build(Raw{
		KeyAge:    "28",
		KeyGender: "skip",
		KeyWeight: "65",
		KeyHeight: "168",
	}, fixedNow)

	require.NotNil(t, s.UserProfile.Age)
	assert.Equal(t, 28, *s.UserProfile.Age)
	assert.Nil(t, s.UserProfile.Gender)
	require.NotNil(t, s.BodyComposition.BMI)
	assert.InDelta(t, 23.03, *s.BodyComposition.BMI, 0.005)
	assert.InDelta(t, 65/(1.68*1.68), *s.BodyComposition.BMI, 1e-9)
	assert.True(t, s.Timestamp.Equal(fixedNow))
}

func TestBuildCardioScenario(t *testing.T) {
	s := Build(Raw{KeyRestingHR: "sixty", KeyHRV: "45.2"}, fixedNow)

	assert.Nil(t, s.Cardiovascular.RestingHeartRate)
	require.NotNil(t, s.Cardiovascular.HeartRateVariability)
	assert.Equal(t, 45.2, *s.Cardiovascular.HeartRateVariability)
}

func TestBMIProperty(t *testing.T) {
	for _, w := range []float64{40, 65, 82.5, 120} {
		for _, h := range []float64{150, 168, 181.5, 200} {
			got := BMI(&w, &h)
			require.NotNil(t, got)
			want := w / math.Pow(h/100, 2)
			assert.InDelta(t, want, *got, 1e-9, "w=%v h=%v", w, h)
		}
	}
}

func TestBMIAbsent(t *testing.T) {
	tests := []struct {
		name   string
		weight string
		height string
	}{
		{"missing weight", "", "168"},
		{"missing height", "65", ""},
		{"skipped height", "65", "SKIP"},
		{"invalid weight", "heavy", "168"},
		{"invalid height", "65", "tall"},
		{"zero height", "65", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Build(Raw{KeyWeight: tt.weight, KeyHeight: tt.height}, fixedNow)
			assert.Nil(t, s.BodyComposition.BMI)
		})
	}
}

func TestBuildEmptyRaw(t *testing.T) {
	s := Build(Raw{}, fixedNow)

	assert.Nil(t, s.UserProfile.Age)
	assert.Nil(t, s.UserProfile.FitnessGoals)
	assert.Nil(t, s.Cardiovascular.VO2Max)
	assert.Nil(t, s.BodyComposition.BMI)
	assert.Empty(t, s.RecentWorkouts)
}

func TestBuildLowercasesProfileStrings(t *testing.T) {
	s := Build(Raw{KeyGender: " Female ", KeyFitnessLevel: "ADVANCED"}, fixedNow)

	require.NotNil(t, s.UserProfile.Gender)
	assert.Equal(t, "female", *s.UserProfile.Gender)
	assert.Equal(t, "advanced", *s.UserProfile.FitnessLevel)
}

func TestBuildLists(t *testing.T) {
	s := Build(Raw{
		KeyGoals:               "weight_loss, endurance",
		KeyMedications:         "skip",
		KeyActivityPreferences: "yoga",
	}, fixedNow)

	assert.Equal(t, []string{"weight_loss", "endurance"}, s.UserProfile.FitnessGoals)
	assert.Nil(t, s.UserProfile.Medications)
	assert.Equal(t, []string{"yoga"}, s.UserProfile.ActivityPreferences)
}

func TestBuildWorkout(t *testing.T) {
	s := Build(Raw{
		KeyWorkoutType:      "running",
		KeyWorkoutDuration:  "thirty",
		KeyWorkoutIntensity: "high",
		KeyWorkoutPace:      "5:10",
	}, fixedNow)

	require.Len(t, s.RecentWorkouts, 1)
	w := s.RecentWorkouts[0]
	assert.Equal(t, "running", *w.WorkoutType)
	assert.Nil(t, w.Duration)
	assert.Equal(t, "high", *w.Intensity)
	assert.Equal(t, "5:10", *w.Pace)
}

func TestBuildNoWorkoutWhenTypeSkipped(t *testing.T) {
	for _, workoutType := range []string{"", "skip", "Skip"} {
		s := Build(Raw{KeyWorkoutType: workoutType, KeyWorkoutDuration: "30"}, fixedNow)
		assert.Empty(t, s.RecentWorkouts, "workout type %q", workoutType)
	}
}

func TestBuilderReportsInvalidTokens(t *testing.T) {
	var got []string
	b := &Builder{OnInvalid: func(key, raw string) {
		got = append(got, key+"="+raw)
	}}

	s := b.Build(Raw{
		KeyRestingHR: "sixty",
		KeyHRV:       "45.2",
		KeyAge:       "skip",
		KeySteps:     "lots",
	}, fixedNow)

	assert.Nil(t, s.Cardiovascular.RestingHeartRate)
	assert.ElementsMatch(t, []string{"resting_hr=sixty", "steps=lots"}, got)
}

func TestGrouped(t *testing.T) {
	raw := Grouped(map[string]map[string]string{
		"profile": {KeyAge: "40"},
		"cardio":  {KeyHRV: "51"},
	})

	assert.Equal(t, Raw{KeyAge: "40", KeyHRV: "51"}, raw)

	s := Build(raw, fixedNow)
	assert.Equal(t, 40, *s.UserProfile.Age)
	assert.Equal(t, 51.0, *s.Cardiovascular.HeartRateVariability)
}

func TestCatalogKeysUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range Catalog {
		assert.False(t, seen[f.Key], "duplicate key %s", f.Key)
		seen[f.Key] = true
		assert.NotEmpty(t, f.Prompt, "key %s has no prompt", f.Key)
		_, ok := GroupTitles[f.Group]
		assert.True(t, ok, "key %s has unknown group %s", f.Key, f.Group)
	}
	for _, k := range InteractiveKeys {
		assert.True(t, IsValidKey(k), "interactive key %s not in catalog", k)
	}
}
