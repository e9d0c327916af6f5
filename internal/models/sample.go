// ABOUTME: Fixed sample snapshot for demos without interactive input.
// ABOUTME: Every field is populated; only the timestamp varies between calls.
package models

import "time"

// Sample returns the sample snapshot stamped with the current time.
func Sample() *Snapshot {
	return SampleSnapshot(time.Now())
}

// SampleSnapshot returns the fixed sample snapshot stamped with at.
func SampleSnapshot(at time.Time) *Snapshot {
	return NewSnapshot(at, SnapshotParts{
		UserProfile: UserProfile{
			Age:                 Int(28),
			Gender:              String("female"),
			FitnessLevel:        String("intermediate"),
			FitnessGoals:        []string{"weight_loss", "muscle_gain", "endurance"},
			MedicalConditions:   []string{},
			Medications:         []string{},
			ActivityPreferences: []string{"running", "strength_training", "yoga"},
		},
		Cardiovascular: CardiovascularMetrics{
			RestingHeartRate:       Int(65),
			MaxHeartRate:           Int(185),
			HeartRateVariability:   Float(45.2),
			BloodPressureSystolic:  Int(120),
			BloodPressureDiastolic: Int(80),
			VO2Max:                 Float(38.5),
			CardioFitnessScore:     Int(78),
		},
		Activity: ActivityMetrics{
			Steps:           Int(8500),
			Distance:        Float(6.2),
			CaloriesBurned:  Int(420),
			ActiveMinutes:   Int(65),
			FloorsClimbed:   Int(12),
			StandingHours:   Int(8),
			MoveMinutes:     Int(240),
			ExerciseMinutes: Int(45),
		},
		Sleep: SleepMetrics{
			TotalSleepDuration: Float(7.5),
			DeepSleepDuration:  Float(1.8),
			REMSleepDuration:   Float(1.2),
			LightSleepDuration: Float(4.5),
			SleepEfficiency:    Float(85.0),
			TimeToFallAsleep:   Int(12),
			TimesAwake:         Int(2),
			SleepScore:         Int(82),
		},
		BodyComposition: BodyComposition{
			Weight:            Float(65.0),
			Height:            Float(168.0),
			BMI:               Float(23.0),
			BodyFatPercentage: Float(22.5),
			MuscleMass:        Float(28.2),
			BoneDensity:       Float(1.2),
			WaterPercentage:   Float(58.0),
			MetabolicAge:      Int(25),
		},
		Recovery: RecoveryMetrics{
			StressLevel:    Int(35),
			RecoveryScore:  Int(75),
			ReadinessScore: Int(80),
			TrainingLoad:   Int(6),
			FatigueLevel:   Int(4),
		},
		Environmental: EnvironmentalMetrics{
			BloodOxygenSaturation: Float(98.5),
			SkinTemperature:       Float(36.2),
			AmbientTemperature:    Float(22.0),
			UVExposure:            Int(3),
			NoiseExposure:         Int(45),
		},
		Workouts: []WorkoutMetrics{
			NewWorkout("strength_training").
				WithDuration(45).
				WithIntensity("moderate").
				WithHeartRate(135, 165).
				WithCalories(280),
			NewWorkout("running").
				WithDuration(30).
				WithIntensity("moderate").
				WithHeartRate(145, 170).
				WithCalories(320).
				WithPace("5:30"),
		},
		Nutrition: NutritionMetrics{
			WaterIntake:      Float(2.1),
			CaloriesConsumed: Int(1850),
			ProteinIntake:    Float(95.0),
			CarbsIntake:      Float(210.0),
			FatIntake:        Float(65.0),
			CaffeineIntake:   Int(120),
		},
	})
}
