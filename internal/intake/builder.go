// ABOUTME: Builds a Snapshot from raw text tokens using the catalog's conversion rules.
// ABOUTME: Derives BMI and the single collected workout; never returns an error.
package intake

import (
	"strings"
	"time"

	"github.com/harperreed/fitcoach/internal/models"
)

// Raw maps catalog keys to raw text tokens.
type Raw map[string]string

// Grouped flattens group -> key -> token input into Raw.
// Group names are not checked; keys are matched against the catalog by the builder.
func Grouped(in map[string]map[string]string) Raw {
	raw := Raw{}
	for _, fields := range in {
		for k, v := range fields {
			raw[k] = v
		}
	}
	return raw
}

// Builder converts Raw input into snapshots.
type Builder struct {
	// OnInvalid, if set, is called for each token that failed to parse.
	// The field is still treated as absent.
	OnInvalid func(key, raw string)
}

// Build converts raw into a snapshot stamped with now using a default Builder.
func Build(raw Raw, now time.Time) *models.Snapshot {
	return (&Builder{}).Build(raw, now)
}

// Build converts raw into a snapshot stamped with now.
func (b *Builder) Build(raw Raw, now time.Time) *models.Snapshot {
	r := reader{raw: raw, onInvalid: b.OnInvalid}

	body := models.BodyComposition{
		Weight:            r.number(KeyWeight),
		Height:            r.number(KeyHeight),
		BodyFatPercentage: r.number(KeyBodyFat),
		MuscleMass:        r.number(KeyMuscleMass),
		BoneDensity:       r.number(KeyBoneDensity),
		WaterPercentage:   r.number(KeyWaterPercentage),
		MetabolicAge:      r.integer(KeyMetabolicAge),
	}
	body.BMI = BMI(body.Weight, body.Height)

	return models.NewSnapshot(now, models.SnapshotParts{
		UserProfile: models.UserProfile{
			Age:                 r.integer(KeyAge),
			Gender:              lower(r.text(KeyGender)),
			FitnessLevel:        lower(r.text(KeyFitnessLevel)),
			FitnessGoals:        r.items(KeyGoals),
			MedicalConditions:   r.items(KeyMedicalConditions),
			Medications:         r.items(KeyMedications),
			ActivityPreferences: r.items(KeyActivityPreferences),
		},
		Cardiovascular: models.CardiovascularMetrics{
			RestingHeartRate:       r.integer(KeyRestingHR),
			MaxHeartRate:           r.integer(KeyMaxHR),
			HeartRateVariability:   r.number(KeyHRV),
			BloodPressureSystolic:  r.integer(KeyBPSystolic),
			BloodPressureDiastolic: r.integer(KeyBPDiastolic),
			VO2Max:                 r.number(KeyVO2Max),
			CardioFitnessScore:     r.integer(KeyCardioFitnessScore),
		},
		Activity: models.ActivityMetrics{
			Steps:           r.integer(KeySteps),
			Distance:        r.number(KeyDistance),
			CaloriesBurned:  r.integer(KeyCaloriesBurned),
			ActiveMinutes:   r.integer(KeyActiveMinutes),
			FloorsClimbed:   r.integer(KeyFloorsClimbed),
			StandingHours:   r.integer(KeyStandingHours),
			MoveMinutes:     r.integer(KeyMoveMinutes),
			ExerciseMinutes: r.integer(KeyExerciseMinutes),
		},
		Sleep: models.SleepMetrics{
			TotalSleepDuration: r.number(KeyTotalSleep),
			DeepSleepDuration:  r.number(KeyDeepSleep),
			REMSleepDuration:   r.number(KeyREMSleep),
			LightSleepDuration: r.number(KeyLightSleep),
			SleepEfficiency:    r.number(KeySleepEfficiency),
			TimeToFallAsleep:   r.integer(KeyTimeToFallAsleep),
			TimesAwake:         r.integer(KeyTimesAwake),
			SleepScore:         r.integer(KeySleepScore),
		},
		BodyComposition: body,
		Recovery: models.RecoveryMetrics{
			StressLevel:    r.integer(KeyStressLevel),
			RecoveryScore:  r.integer(KeyRecoveryScore),
			ReadinessScore: r.integer(KeyReadinessScore),
			TrainingLoad:   r.integer(KeyTrainingLoad),
			FatigueLevel:   r.integer(KeyFatigueLevel),
		},
		Environmental: models.EnvironmentalMetrics{
			BloodOxygenSaturation: r.number(KeyBloodOxygen),
			SkinTemperature:       r.number(KeySkinTemperature),
			AmbientTemperature:    r.number(KeyAmbientTemperature),
			UVExposure:            r.integer(KeyUVExposure),
			NoiseExposure:         r.integer(KeyNoiseExposure),
		},
		Workouts: r.workouts(),
		Nutrition: models.NutritionMetrics{
			WaterIntake:      r.number(KeyWaterIntake),
			CaloriesConsumed: r.integer(KeyCaloriesConsumed),
			ProteinIntake:    r.number(KeyProtein),
			CarbsIntake:      r.number(KeyCarbs),
			FatIntake:        r.number(KeyFat),
			CaffeineIntake:   r.integer(KeyCaffeine),
		},
	})
}

// BMI returns weight / (height/100)^2 for weight in kg and height in cm.
// It is absent when either input is absent or height is not positive.
func BMI(weightKg, heightCm *float64) *float64 {
	if weightKg == nil || heightCm == nil || *heightCm <= 0 {
		return nil
	}
	m := *heightCm / 100
	bmi := *weightKg / (m * m)
	return &bmi
}

type reader struct {
	raw       Raw
	onInvalid func(key, raw string)
}

func (r reader) report(key string, outcome Outcome) {
	if outcome == Invalid && r.onInvalid != nil {
		r.onInvalid(key, r.raw[key])
	}
}

func (r reader) integer(key string) *int {
	v, outcome := ParseInt(r.raw[key])
	r.report(key, outcome)
	return v
}

func (r reader) number(key string) *float64 {
	v, outcome := ParseFloat(r.raw[key])
	r.report(key, outcome)
	return v
}

func (r reader) text(key string) *string {
	v, _ := ParseString(r.raw[key])
	return v
}

func (r reader) items(key string) []string {
	return ParseList(r.raw[key])
}

// workouts returns one entry when a workout type was given, none otherwise.
func (r reader) workouts() []models.WorkoutMetrics {
	workoutType := r.text(KeyWorkoutType)
	if workoutType == nil {
		return nil
	}
	return []models.WorkoutMetrics{{
		WorkoutType:         workoutType,
		Duration:            r.integer(KeyWorkoutDuration),
		Intensity:           r.text(KeyWorkoutIntensity),
		AverageHeartRate:    r.integer(KeyWorkoutAvgHR),
		MaxHeartRateReached: r.integer(KeyWorkoutMaxHR),
		CaloriesBurned:      r.integer(KeyWorkoutCalories),
		Distance:            r.number(KeyWorkoutDistance),
		PowerOutput:         r.number(KeyWorkoutPower),
		Pace:                r.text(KeyWorkoutPace),
		ElevationGain:       r.number(KeyWorkoutElevation),
	}}
}

func lower(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(*s)
	return &v
}
