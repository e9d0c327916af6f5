// ABOUTME: WorkoutMetrics model for a single exercise session inside a snapshot.
// ABOUTME: Optional fields are pointers; builder methods fill them in.
package models

// WorkoutMetrics describes one workout. Duration is minutes, distance km,
// power watts, pace min/km and elevation meters.
type WorkoutMetrics struct {
	WorkoutType         *string  `json:"workout_type" yaml:"workout_type"`
	Duration            *int     `json:"duration" yaml:"duration"`
	Intensity           *string  `json:"intensity" yaml:"intensity"`
	AverageHeartRate    *int     `json:"average_heart_rate" yaml:"average_heart_rate"`
	MaxHeartRateReached *int     `json:"max_heart_rate_reached" yaml:"max_heart_rate_reached"`
	CaloriesBurned      *int     `json:"calories_burned" yaml:"calories_burned"`
	Distance            *float64 `json:"distance" yaml:"distance"`
	PowerOutput         *float64 `json:"power_output" yaml:"power_output"`
	Pace                *string  `json:"pace" yaml:"pace"`
	ElevationGain       *float64 `json:"elevation_gain" yaml:"elevation_gain"`
}

// NewWorkout creates a WorkoutMetrics with the given type.
func NewWorkout(workoutType string) WorkoutMetrics {
	return WorkoutMetrics{WorkoutType: &workoutType}
}

// WithDuration sets the duration in minutes.
func (w WorkoutMetrics) WithDuration(minutes int) WorkoutMetrics {
	w.Duration = &minutes
	return w
}

// WithIntensity sets the intensity label (low, moderate, high, peak).
func (w WorkoutMetrics) WithIntensity(intensity string) WorkoutMetrics {
	w.Intensity = &intensity
	return w
}

// WithHeartRate sets average and peak heart rate.
func (w WorkoutMetrics) WithHeartRate(avg, peak int) WorkoutMetrics {
	w.AverageHeartRate = &avg
	w.MaxHeartRateReached = &peak
	return w
}

// WithCalories sets calories burned during the workout.
func (w WorkoutMetrics) WithCalories(kcal int) WorkoutMetrics {
	w.CaloriesBurned = &kcal
	return w
}

// WithPace sets the running pace, e.g. "5:30".
func (w WorkoutMetrics) WithPace(pace string) WorkoutMetrics {
	w.Pace = &pace
	return w
}
