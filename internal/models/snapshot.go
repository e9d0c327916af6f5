// ABOUTME: HealthSnapshot model and its ten metric groups.
// ABOUTME: Every field is optional; a snapshot is never mutated after construction.
package models

import (
	"time"
)

// UserProfile holds demographics and goals.
type UserProfile struct {
	Age                 *int     `json:"age" yaml:"age"`
	Gender              *string  `json:"gender" yaml:"gender"`
	FitnessLevel        *string  `json:"fitness_level" yaml:"fitness_level"`
	FitnessGoals        []string `json:"fitness_goals" yaml:"fitness_goals"`
	MedicalConditions   []string `json:"medical_conditions" yaml:"medical_conditions"`
	Medications         []string `json:"current_medications" yaml:"current_medications"`
	ActivityPreferences []string `json:"activity_preferences" yaml:"activity_preferences"`
}

// CardiovascularMetrics holds heart rate and blood pressure readings.
type CardiovascularMetrics struct {
	RestingHeartRate       *int     `json:"resting_heart_rate" yaml:"resting_heart_rate"`
	MaxHeartRate           *int     `json:"max_heart_rate" yaml:"max_heart_rate"`
	HeartRateVariability   *float64 `json:"heart_rate_variability" yaml:"heart_rate_variability"`
	BloodPressureSystolic  *int     `json:"blood_pressure_systolic" yaml:"blood_pressure_systolic"`
	BloodPressureDiastolic *int     `json:"blood_pressure_diastolic" yaml:"blood_pressure_diastolic"`
	VO2Max                 *float64 `json:"vo2_max" yaml:"vo2_max"`
	CardioFitnessScore     *int     `json:"cardio_fitness_score" yaml:"cardio_fitness_score"`
}

// ActivityMetrics holds daily movement totals.
type ActivityMetrics struct {
	Steps           *int     `json:"steps" yaml:"steps"`
	Distance        *float64 `json:"distance" yaml:"distance"`
	CaloriesBurned  *int     `json:"calories_burned" yaml:"calories_burned"`
	ActiveMinutes   *int     `json:"active_minutes" yaml:"active_minutes"`
	FloorsClimbed   *int     `json:"floors_climbed" yaml:"floors_climbed"`
	StandingHours   *int     `json:"standing_hours" yaml:"standing_hours"`
	MoveMinutes     *int     `json:"move_minutes" yaml:"move_minutes"`
	ExerciseMinutes *int     `json:"exercise_minutes" yaml:"exercise_minutes"`
}

// SleepMetrics holds last night's sleep breakdown. Durations are hours.
type SleepMetrics struct {
	TotalSleepDuration *float64 `json:"total_sleep_duration" yaml:"total_sleep_duration"`
	DeepSleepDuration  *float64 `json:"deep_sleep_duration" yaml:"deep_sleep_duration"`
	REMSleepDuration   *float64 `json:"rem_sleep_duration" yaml:"rem_sleep_duration"`
	LightSleepDuration *float64 `json:"light_sleep_duration" yaml:"light_sleep_duration"`
	SleepEfficiency    *float64 `json:"sleep_efficiency" yaml:"sleep_efficiency"`
	TimeToFallAsleep   *int     `json:"time_to_fall_asleep" yaml:"time_to_fall_asleep"`
	TimesAwake         *int     `json:"times_awake" yaml:"times_awake"`
	SleepScore         *int     `json:"sleep_score" yaml:"sleep_score"`
}

// BodyComposition holds body measurements. BMI is derived from weight and height.
type BodyComposition struct {
	Weight            *float64 `json:"weight" yaml:"weight"`
	Height            *float64 `json:"height" yaml:"height"`
	BMI               *float64 `json:"bmi" yaml:"bmi"`
	BodyFatPercentage *float64 `json:"body_fat_percentage" yaml:"body_fat_percentage"`
	MuscleMass        *float64 `json:"muscle_mass" yaml:"muscle_mass"`
	BoneDensity       *float64 `json:"bone_density" yaml:"bone_density"`
	WaterPercentage   *float64 `json:"water_percentage" yaml:"water_percentage"`
	MetabolicAge      *int     `json:"metabolic_age" yaml:"metabolic_age"`
}

// RecoveryMetrics holds stress and readiness indicators.
type RecoveryMetrics struct {
	StressLevel    *int `json:"stress_level" yaml:"stress_level"`
	RecoveryScore  *int `json:"recovery_score" yaml:"recovery_score"`
	ReadinessScore *int `json:"readiness_score" yaml:"readiness_score"`
	TrainingLoad   *int `json:"training_load" yaml:"training_load"`
	FatigueLevel   *int `json:"fatigue_level" yaml:"fatigue_level"`
}

// EnvironmentalMetrics holds sensor readings about the body and its surroundings.
type EnvironmentalMetrics struct {
	BloodOxygenSaturation *float64 `json:"blood_oxygen_saturation" yaml:"blood_oxygen_saturation"`
	SkinTemperature       *float64 `json:"skin_temperature" yaml:"skin_temperature"`
	AmbientTemperature    *float64 `json:"ambient_temperature" yaml:"ambient_temperature"`
	UVExposure            *int     `json:"uv_exposure" yaml:"uv_exposure"`
	NoiseExposure         *int     `json:"noise_exposure" yaml:"noise_exposure"`
}

// NutritionMetrics holds intake totals for the day.
type NutritionMetrics struct {
	WaterIntake      *float64 `json:"water_intake" yaml:"water_intake"`
	CaloriesConsumed *int     `json:"calories_consumed" yaml:"calories_consumed"`
	ProteinIntake    *float64 `json:"protein_intake" yaml:"protein_intake"`
	CarbsIntake      *float64 `json:"carbs_intake" yaml:"carbs_intake"`
	FatIntake        *float64 `json:"fat_intake" yaml:"fat_intake"`
	CaffeineIntake   *int     `json:"caffeine_intake" yaml:"caffeine_intake"`
}

// Snapshot is one capture of all health metrics at a point in time.
// Build one with NewSnapshot; the value is treated as read-only afterwards.
type Snapshot struct {
	Timestamp       time.Time             `json:"timestamp" yaml:"timestamp"`
	UserProfile     UserProfile           `json:"user_profile" yaml:"user_profile"`
	Cardiovascular  CardiovascularMetrics `json:"cardiovascular" yaml:"cardiovascular"`
	Activity        ActivityMetrics       `json:"activity" yaml:"activity"`
	Sleep           SleepMetrics          `json:"sleep" yaml:"sleep"`
	BodyComposition BodyComposition       `json:"body_composition" yaml:"body_composition"`
	Recovery        RecoveryMetrics       `json:"recovery" yaml:"recovery"`
	Environmental   EnvironmentalMetrics  `json:"environmental" yaml:"environmental"`
	RecentWorkouts  []WorkoutMetrics      `json:"recent_workouts" yaml:"recent_workouts"`
	Nutrition       NutritionMetrics      `json:"nutrition" yaml:"nutrition"`
}

// SnapshotParts groups the inputs of NewSnapshot.
type SnapshotParts struct {
	UserProfile     UserProfile
	Cardiovascular  CardiovascularMetrics
	Activity        ActivityMetrics
	Sleep           SleepMetrics
	BodyComposition BodyComposition
	Recovery        RecoveryMetrics
	Environmental   EnvironmentalMetrics
	Workouts        []WorkoutMetrics
	Nutrition       NutritionMetrics
}

// NewSnapshot creates a Snapshot stamped with the given time.
// Slices are copied so later changes to parts do not leak into the snapshot.
func NewSnapshot(at time.Time, parts SnapshotParts) *Snapshot {
	profile := parts.UserProfile
	profile.FitnessGoals = cloneStrings(profile.FitnessGoals)
	profile.MedicalConditions = cloneStrings(profile.MedicalConditions)
	profile.Medications = cloneStrings(profile.Medications)
	profile.ActivityPreferences = cloneStrings(profile.ActivityPreferences)

	workouts := make([]WorkoutMetrics, len(parts.Workouts))
	copy(workouts, parts.Workouts)

	return &Snapshot{
		Timestamp:       at,
		UserProfile:     profile,
		Cardiovascular:  parts.Cardiovascular,
		Activity:        parts.Activity,
		Sleep:           parts.Sleep,
		BodyComposition: parts.BodyComposition,
		Recovery:        parts.Recovery,
		Environmental:   parts.Environmental,
		RecentWorkouts:  workouts,
		Nutrition:       parts.Nutrition,
	}
}

// Workouts returns a copy of all workouts in insertion order.
func (s *Snapshot) Workouts() []WorkoutMetrics {
	out := make([]WorkoutMetrics, len(s.RecentWorkouts))
	copy(out, s.RecentWorkouts)
	return out
}

// LatestWorkouts returns the last n workouts in insertion order.
func (s *Snapshot) LatestWorkouts(n int) []WorkoutMetrics {
	if n <= 0 {
		return nil
	}
	start := len(s.RecentWorkouts) - n
	if start < 0 {
		start = 0
	}
	out := make([]WorkoutMetrics, len(s.RecentWorkouts)-start)
	copy(out, s.RecentWorkouts[start:])
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }
