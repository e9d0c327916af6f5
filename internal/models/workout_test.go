// ABOUTME: Tests for the WorkoutMetrics model.
// ABOUTME: Validates constructor and value-receiver builder methods.
package models

import (
	"testing"
)

func TestNewWorkout(t *testing.T) {
	w := NewWorkout("running")

	if w.WorkoutType == nil || *w.WorkoutType != "running" {
		t.Errorf("WorkoutType = %v, want running", w.WorkoutType)
	}
	if w.Duration != nil {
		t.Error("expected Duration to be absent")
	}
}

func TestWorkoutBuilders(t *testing.T) {
	w := NewWorkout("running").
		WithDuration(30).
		WithIntensity("moderate").
		WithHeartRate(145, 170).
		WithCalories(320).
		WithPace("5:30")

	if *w.Duration != 30 {
		t.Errorf("Duration = %d, want 30", *w.Duration)
	}
	if *w.Intensity != "moderate" {
		t.Errorf("Intensity = %s, want moderate", *w.Intensity)
	}
	if *w.AverageHeartRate != 145 || *w.MaxHeartRateReached != 170 {
		t.Errorf("heart rate = %d/%d, want 145/170", *w.AverageHeartRate, *w.MaxHeartRateReached)
	}
	if *w.CaloriesBurned != 320 {
		t.Errorf("CaloriesBurned = %d, want 320", *w.CaloriesBurned)
	}
	if *w.Pace != "5:30" {
		t.Errorf("Pace = %s, want 5:30", *w.Pace)
	}
}

func TestWorkoutBuildersDoNotAlias(t *testing.T) {
	base := NewWorkout("yoga")
	longer := base.WithDuration(60)

	if base.Duration != nil {
		t.Error("expected base workout to stay without duration")
	}
	if longer.Duration == nil || *longer.Duration != 60 {
		t.Error("expected derived workout to carry duration 60")
	}
}
