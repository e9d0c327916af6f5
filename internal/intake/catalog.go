// ABOUTME: Catalog of raw input keys, grouped by metric group, with kinds and prompts.
// ABOUTME: Drives both the snapshot builder and the interactive collector.
package intake

// Kind is the target type of a raw field.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindList
)

// Group names one of the snapshot's metric groups.
type Group string

const (
	GroupProfile     Group = "profile"
	GroupCardio      Group = "cardio"
	GroupActivity    Group = "activity"
	GroupSleep       Group = "sleep"
	GroupBody        Group = "body"
	GroupRecovery    Group = "recovery"
	GroupEnvironment Group = "environment"
	GroupWorkout     Group = "workout"
	GroupNutrition   Group = "nutrition"
)

// Groups lists every group in collection order.
var Groups = []Group{
	GroupProfile, GroupCardio, GroupActivity, GroupSleep, GroupBody,
	GroupRecovery, GroupEnvironment, GroupWorkout, GroupNutrition,
}

// GroupTitles maps groups to the headings shown while collecting.
var GroupTitles = map[Group]string{
	GroupProfile:     "USER PROFILE",
	GroupCardio:      "CARDIOVASCULAR METRICS",
	GroupActivity:    "ACTIVITY METRICS",
	GroupSleep:       "SLEEP METRICS",
	GroupBody:        "BODY COMPOSITION",
	GroupRecovery:    "RECOVERY METRICS",
	GroupEnvironment: "ENVIRONMENTAL METRICS",
	GroupWorkout:     "RECENT WORKOUT",
	GroupNutrition:   "NUTRITION",
}

// Raw input keys.
const (
	KeyAge                 = "age"
	KeyGender              = "gender"
	KeyFitnessLevel        = "fitness_level"
	KeyGoals               = "goals"
	KeyMedicalConditions   = "medical_conditions"
	KeyMedications         = "medications"
	KeyActivityPreferences = "activity_preferences"

	KeyRestingHR          = "resting_hr"
	KeyMaxHR              = "max_hr"
	KeyHRV                = "hrv"
	KeyBPSystolic         = "bp_systolic"
	KeyBPDiastolic        = "bp_diastolic"
	KeyVO2Max             = "vo2_max"
	KeyCardioFitnessScore = "cardio_fitness_score"

	KeySteps           = "steps"
	KeyDistance        = "distance"
	KeyCaloriesBurned  = "calories_burned"
	KeyActiveMinutes   = "active_minutes"
	KeyFloorsClimbed   = "floors_climbed"
	KeyStandingHours   = "standing_hours"
	KeyMoveMinutes     = "move_minutes"
	KeyExerciseMinutes = "exercise_minutes"

	KeyTotalSleep       = "total_sleep"
	KeyDeepSleep        = "deep_sleep"
	KeyREMSleep         = "rem_sleep"
	KeyLightSleep       = "light_sleep"
	KeySleepEfficiency  = "sleep_efficiency"
	KeyTimeToFallAsleep = "time_to_fall_asleep"
	KeyTimesAwake       = "times_awake"
	KeySleepScore       = "sleep_score"

	KeyWeight          = "weight"
	KeyHeight          = "height"
	KeyBodyFat         = "body_fat"
	KeyMuscleMass      = "muscle_mass"
	KeyBoneDensity     = "bone_density"
	KeyWaterPercentage = "water_percentage"
	KeyMetabolicAge    = "metabolic_age"

	KeyStressLevel    = "stress_level"
	KeyRecoveryScore  = "recovery_score"
	KeyReadinessScore = "readiness_score"
	KeyTrainingLoad   = "training_load"
	KeyFatigueLevel   = "fatigue_level"

	KeyBloodOxygen        = "blood_oxygen"
	KeySkinTemperature    = "skin_temperature"
	KeyAmbientTemperature = "ambient_temperature"
	KeyUVExposure         = "uv_exposure"
	KeyNoiseExposure      = "noise_exposure"

	KeyWorkoutType      = "workout_type"
	KeyWorkoutDuration  = "workout_duration"
	KeyWorkoutIntensity = "workout_intensity"
	KeyWorkoutAvgHR     = "workout_avg_hr"
	KeyWorkoutMaxHR     = "workout_max_hr"
	KeyWorkoutCalories  = "workout_calories"
	KeyWorkoutDistance  = "workout_distance"
	KeyWorkoutPower     = "workout_power"
	KeyWorkoutPace      = "workout_pace"
	KeyWorkoutElevation = "workout_elevation"

	KeyWaterIntake      = "water_intake"
	KeyCaloriesConsumed = "calories_consumed"
	KeyProtein          = "protein"
	KeyCarbs            = "carbs"
	KeyFat              = "fat"
	KeyCaffeine         = "caffeine"
)

// Field describes one raw input.
type Field struct {
	Key    string
	Group  Group
	Kind   Kind
	Prompt string
}

// Catalog lists every raw field in collection order.
var Catalog = []Field{
	{KeyAge, GroupProfile, KindInt, "Age"},
	{KeyGender, GroupProfile, KindString, "Gender (male/female/other)"},
	{KeyFitnessLevel, GroupProfile, KindString, "Fitness level (beginner/intermediate/advanced)"},
	{KeyGoals, GroupProfile, KindList, "Fitness goals (comma-separated, e.g., weight_loss,muscle_gain,endurance)"},
	{KeyMedicalConditions, GroupProfile, KindList, "Medical conditions (comma-separated)"},
	{KeyMedications, GroupProfile, KindList, "Current medications (comma-separated)"},
	{KeyActivityPreferences, GroupProfile, KindList, "Activity preferences (comma-separated, e.g., running,cycling,strength)"},

	{KeyRestingHR, GroupCardio, KindInt, "Resting heart rate (bpm)"},
	{KeyMaxHR, GroupCardio, KindInt, "Max heart rate (bpm)"},
	{KeyHRV, GroupCardio, KindFloat, "Heart rate variability (ms)"},
	{KeyBPSystolic, GroupCardio, KindInt, "Blood pressure systolic (mmHg)"},
	{KeyBPDiastolic, GroupCardio, KindInt, "Blood pressure diastolic (mmHg)"},
	{KeyVO2Max, GroupCardio, KindFloat, "VO2 Max (ml/kg/min)"},
	{KeyCardioFitnessScore, GroupCardio, KindInt, "Cardio fitness score (1-100)"},

	{KeySteps, GroupActivity, KindInt, "Daily steps"},
	{KeyDistance, GroupActivity, KindFloat, "Distance walked/run today (km)"},
	{KeyCaloriesBurned, GroupActivity, KindInt, "Calories burned"},
	{KeyActiveMinutes, GroupActivity, KindInt, "Active minutes"},
	{KeyFloorsClimbed, GroupActivity, KindInt, "Floors climbed"},
	{KeyStandingHours, GroupActivity, KindInt, "Standing hours"},
	{KeyMoveMinutes, GroupActivity, KindInt, "Move minutes"},
	{KeyExerciseMinutes, GroupActivity, KindInt, "Exercise minutes"},

	{KeyTotalSleep, GroupSleep, KindFloat, "Total sleep last night (hours)"},
	{KeyDeepSleep, GroupSleep, KindFloat, "Deep sleep (hours)"},
	{KeyREMSleep, GroupSleep, KindFloat, "REM sleep (hours)"},
	{KeyLightSleep, GroupSleep, KindFloat, "Light sleep (hours)"},
	{KeySleepEfficiency, GroupSleep, KindFloat, "Sleep efficiency (%)"},
	{KeyTimeToFallAsleep, GroupSleep, KindInt, "Time to fall asleep (minutes)"},
	{KeyTimesAwake, GroupSleep, KindInt, "Times awake"},
	{KeySleepScore, GroupSleep, KindInt, "Sleep score (1-100)"},

	{KeyWeight, GroupBody, KindFloat, "Weight (kg)"},
	{KeyHeight, GroupBody, KindFloat, "Height (cm)"},
	{KeyBodyFat, GroupBody, KindFloat, "Body fat percentage"},
	{KeyMuscleMass, GroupBody, KindFloat, "Muscle mass (kg)"},
	{KeyBoneDensity, GroupBody, KindFloat, "Bone density (g/cm²)"},
	{KeyWaterPercentage, GroupBody, KindFloat, "Water percentage"},
	{KeyMetabolicAge, GroupBody, KindInt, "Metabolic age (years)"},

	{KeyStressLevel, GroupRecovery, KindInt, "Stress level (1-100)"},
	{KeyRecoveryScore, GroupRecovery, KindInt, "Recovery score (1-100)"},
	{KeyReadinessScore, GroupRecovery, KindInt, "Readiness score (1-100)"},
	{KeyTrainingLoad, GroupRecovery, KindInt, "Training load (1-10)"},
	{KeyFatigueLevel, GroupRecovery, KindInt, "Fatigue level (1-10)"},

	{KeyBloodOxygen, GroupEnvironment, KindFloat, "Blood oxygen saturation (%)"},
	{KeySkinTemperature, GroupEnvironment, KindFloat, "Skin temperature (°C)"},
	{KeyAmbientTemperature, GroupEnvironment, KindFloat, "Ambient temperature (°C)"},
	{KeyUVExposure, GroupEnvironment, KindInt, "UV index"},
	{KeyNoiseExposure, GroupEnvironment, KindInt, "Noise exposure (dB)"},

	{KeyWorkoutType, GroupWorkout, KindString, "Last workout type (e.g., strength_training, running, yoga)"},
	{KeyWorkoutDuration, GroupWorkout, KindInt, "Workout duration (minutes)"},
	{KeyWorkoutIntensity, GroupWorkout, KindString, "Workout intensity (low/moderate/high)"},
	{KeyWorkoutAvgHR, GroupWorkout, KindInt, "Average heart rate during workout (bpm)"},
	{KeyWorkoutMaxHR, GroupWorkout, KindInt, "Max heart rate reached (bpm)"},
	{KeyWorkoutCalories, GroupWorkout, KindInt, "Workout calories burned"},
	{KeyWorkoutDistance, GroupWorkout, KindFloat, "Workout distance (km)"},
	{KeyWorkoutPower, GroupWorkout, KindFloat, "Power output (watts)"},
	{KeyWorkoutPace, GroupWorkout, KindString, "Pace (min/km, e.g., 5:30)"},
	{KeyWorkoutElevation, GroupWorkout, KindFloat, "Elevation gain (m)"},

	{KeyWaterIntake, GroupNutrition, KindFloat, "Water intake (liters)"},
	{KeyCaloriesConsumed, GroupNutrition, KindInt, "Calories consumed"},
	{KeyProtein, GroupNutrition, KindFloat, "Protein (g)"},
	{KeyCarbs, GroupNutrition, KindFloat, "Carbs (g)"},
	{KeyFat, GroupNutrition, KindFloat, "Fat (g)"},
	{KeyCaffeine, GroupNutrition, KindInt, "Caffeine (mg)"},
}

// InteractiveKeys is the short questionnaire asked by default.
var InteractiveKeys = []string{
	KeyAge, KeyGender, KeyFitnessLevel, KeyGoals,
	KeyRestingHR, KeyHRV, KeyBPSystolic, KeyBPDiastolic, KeyVO2Max,
	KeySteps, KeyDistance, KeyCaloriesBurned, KeyActiveMinutes,
	KeyTotalSleep, KeyDeepSleep, KeyREMSleep, KeySleepScore,
	KeyWeight, KeyHeight, KeyBodyFat,
	KeyStressLevel, KeyRecoveryScore,
	KeyWorkoutType, KeyWorkoutDuration, KeyWorkoutIntensity,
}

// LookupField returns the catalog entry for key.
func LookupField(key string) (Field, bool) {
	for _, f := range Catalog {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// IsValidKey reports whether key names a catalog field.
func IsValidKey(key string) bool {
	_, ok := LookupField(key)
	return ok
}
