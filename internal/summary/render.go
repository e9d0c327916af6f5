// ABOUTME: Renders a Snapshot into the fixed-order text summary handed to the coaching agents.
// ABOUTME: Sections are declarative tables of labels, units and placeholders.
package summary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harperreed/fitcoach/internal/models"
)

// Header is the first line of every summary.
const Header = "=== COMPREHENSIVE HEALTH DATA SUMMARY ==="

// DateLayout formats the snapshot timestamp on the Date line.
const DateLayout = "2006-01-02 15:04"

// MaxWorkouts is how many of the most recent workouts are listed.
const MaxWorkouts = 3

// Placeholders for absent values.
const (
	NotAvailable = "N/A"
	NotProvided  = "Not provided"
	NotSpecified = "Not specified"
	UnknownType  = "Unknown"
)

// Section is one titled block of rendered lines.
type Section struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

type line struct {
	label       string
	value       func(*models.Snapshot) (string, bool)
	suffix      string
	placeholder string
}

func (l line) render(s *models.Snapshot) string {
	v, ok := l.value(s)
	if !ok {
		v = l.placeholder
	}
	return fmt.Sprintf("- %s: %s%s", l.label, v, l.suffix)
}

type table struct {
	title string
	lines []line
}

var tables = []table{
	{"USER PROFILE", []line{
		{"Age", func(s *models.Snapshot) (string, bool) { return intv(s.UserProfile.Age) }, "", NotProvided},
		{"Gender", func(s *models.Snapshot) (string, bool) { return strv(s.UserProfile.Gender) }, "", NotProvided},
		{"Fitness Level", func(s *models.Snapshot) (string, bool) { return strv(s.UserProfile.FitnessLevel) }, "", NotProvided},
		{"Goals", func(s *models.Snapshot) (string, bool) { return listv(s.UserProfile.FitnessGoals) }, "", NotSpecified},
		{"Medical Conditions", func(s *models.Snapshot) (string, bool) { return listv(s.UserProfile.MedicalConditions) }, "", NotSpecified},
		{"Medications", func(s *models.Snapshot) (string, bool) { return listv(s.UserProfile.Medications) }, "", NotSpecified},
		{"Activity Preferences", func(s *models.Snapshot) (string, bool) { return listv(s.UserProfile.ActivityPreferences) }, "", NotSpecified},
	}},
	{"CARDIOVASCULAR HEALTH", []line{
		{"Resting HR", func(s *models.Snapshot) (string, bool) { return intv(s.Cardiovascular.RestingHeartRate) }, " bpm", NotAvailable},
		{"Max HR", func(s *models.Snapshot) (string, bool) { return intv(s.Cardiovascular.MaxHeartRate) }, " bpm", NotAvailable},
		{"HRV", func(s *models.Snapshot) (string, bool) { return floatv(s.Cardiovascular.HeartRateVariability) }, " ms", NotAvailable},
		{"Blood Pressure", bloodPressure, " mmHg", NotAvailable},
		{"VO2 Max", func(s *models.Snapshot) (string, bool) { return floatv(s.Cardiovascular.VO2Max) }, " ml/kg/min", NotAvailable},
		{"Cardio Fitness Score", func(s *models.Snapshot) (string, bool) { return intv(s.Cardiovascular.CardioFitnessScore) }, "/100", NotAvailable},
	}},
	{"ACTIVITY METRICS", []line{
		{"Steps", func(s *models.Snapshot) (string, bool) { return intv(s.Activity.Steps) }, "", NotAvailable},
		{"Distance", func(s *models.Snapshot) (string, bool) { return floatv(s.Activity.Distance) }, " km", NotAvailable},
		{"Calories Burned", func(s *models.Snapshot) (string, bool) { return intv(s.Activity.CaloriesBurned) }, "", NotAvailable},
		{"Active Minutes", func(s *models.Snapshot) (string, bool) { return intv(s.Activity.ActiveMinutes) }, "", NotAvailable},
		{"Floors Climbed", func(s *models.Snapshot) (string, bool) { return intv(s.Activity.FloorsClimbed) }, "", NotAvailable},
		{"Standing Hours", func(s *models.Snapshot) (string, bool) { return intv(s.Activity.StandingHours) }, "", NotAvailable},
		{"Move Minutes", func(s *models.Snapshot) (string, bool) { return intv(s.Activity.MoveMinutes) }, "", NotAvailable},
		{"Exercise Minutes", func(s *models.Snapshot) (string, bool) { return intv(s.Activity.ExerciseMinutes) }, "", NotAvailable},
	}},
	{"SLEEP QUALITY", []line{
		{"Total Sleep", func(s *models.Snapshot) (string, bool) { return floatv(s.Sleep.TotalSleepDuration) }, " hours", NotAvailable},
		{"Deep Sleep", func(s *models.Snapshot) (string, bool) { return floatv(s.Sleep.DeepSleepDuration) }, " hours", NotAvailable},
		{"REM Sleep", func(s *models.Snapshot) (string, bool) { return floatv(s.Sleep.REMSleepDuration) }, " hours", NotAvailable},
		{"Light Sleep", func(s *models.Snapshot) (string, bool) { return floatv(s.Sleep.LightSleepDuration) }, " hours", NotAvailable},
		{"Sleep Efficiency", func(s *models.Snapshot) (string, bool) { return floatv(s.Sleep.SleepEfficiency) }, "%", NotAvailable},
		{"Time to Fall Asleep", func(s *models.Snapshot) (string, bool) { return intv(s.Sleep.TimeToFallAsleep) }, " min", NotAvailable},
		{"Times Awake", func(s *models.Snapshot) (string, bool) { return intv(s.Sleep.TimesAwake) }, "", NotAvailable},
		{"Sleep Score", func(s *models.Snapshot) (string, bool) { return intv(s.Sleep.SleepScore) }, "/100", NotAvailable},
	}},
	{"BODY COMPOSITION", []line{
		{"Weight", func(s *models.Snapshot) (string, bool) { return floatv(s.BodyComposition.Weight) }, " kg", NotAvailable},
		{"Height", func(s *models.Snapshot) (string, bool) { return floatv(s.BodyComposition.Height) }, " cm", NotAvailable},
		{"BMI", bmi, "", NotAvailable},
		{"Body Fat", func(s *models.Snapshot) (string, bool) { return floatv(s.BodyComposition.BodyFatPercentage) }, "%", NotAvailable},
		{"Muscle Mass", func(s *models.Snapshot) (string, bool) { return floatv(s.BodyComposition.MuscleMass) }, " kg", NotAvailable},
		{"Bone Density", func(s *models.Snapshot) (string, bool) { return floatv(s.BodyComposition.BoneDensity) }, " g/cm²", NotAvailable},
		{"Water Percentage", func(s *models.Snapshot) (string, bool) { return floatv(s.BodyComposition.WaterPercentage) }, "%", NotAvailable},
		{"Metabolic Age", func(s *models.Snapshot) (string, bool) { return intv(s.BodyComposition.MetabolicAge) }, " years", NotAvailable},
	}},
	{"RECOVERY STATUS", []line{
		{"Stress Level", func(s *models.Snapshot) (string, bool) { return intv(s.Recovery.StressLevel) }, "/100", NotAvailable},
		{"Recovery Score", func(s *models.Snapshot) (string, bool) { return intv(s.Recovery.RecoveryScore) }, "/100", NotAvailable},
		{"Readiness Score", func(s *models.Snapshot) (string, bool) { return intv(s.Recovery.ReadinessScore) }, "/100", NotAvailable},
		{"Training Load", func(s *models.Snapshot) (string, bool) { return intv(s.Recovery.TrainingLoad) }, "/10", NotAvailable},
		{"Fatigue Level", func(s *models.Snapshot) (string, bool) { return intv(s.Recovery.FatigueLevel) }, "/10", NotAvailable},
	}},
	{"ENVIRONMENTAL", []line{
		{"Blood Oxygen", func(s *models.Snapshot) (string, bool) { return floatv(s.Environmental.BloodOxygenSaturation) }, "%", NotAvailable},
		{"Skin Temperature", func(s *models.Snapshot) (string, bool) { return floatv(s.Environmental.SkinTemperature) }, "°C", NotAvailable},
		{"Ambient Temperature", func(s *models.Snapshot) (string, bool) { return floatv(s.Environmental.AmbientTemperature) }, "°C", NotAvailable},
		{"UV Index", func(s *models.Snapshot) (string, bool) { return intv(s.Environmental.UVExposure) }, "", NotAvailable},
		{"Noise Exposure", func(s *models.Snapshot) (string, bool) { return intv(s.Environmental.NoiseExposure) }, " dB", NotAvailable},
	}},
	{"RECENT WORKOUTS", nil},
	{"NUTRITION", []line{
		{"Water Intake", func(s *models.Snapshot) (string, bool) { return floatv(s.Nutrition.WaterIntake) }, " L", NotAvailable},
		{"Calories Consumed", func(s *models.Snapshot) (string, bool) { return intv(s.Nutrition.CaloriesConsumed) }, "", NotAvailable},
		{"Protein", func(s *models.Snapshot) (string, bool) { return floatv(s.Nutrition.ProteinIntake) }, "g", NotAvailable},
		{"Carbs", func(s *models.Snapshot) (string, bool) { return floatv(s.Nutrition.CarbsIntake) }, "g", NotAvailable},
		{"Fat", func(s *models.Snapshot) (string, bool) { return floatv(s.Nutrition.FatIntake) }, "g", NotAvailable},
		{"Caffeine", func(s *models.Snapshot) (string, bool) { return intv(s.Nutrition.CaffeineIntake) }, " mg", NotAvailable},
	}},
}

// Sections returns the rendered summary body as titled sections in fixed order.
func Sections(s *models.Snapshot) []Section {
	out := make([]Section, 0, len(tables))
	for _, t := range tables {
		sec := Section{Title: t.title, Lines: []string{}}
		if t.lines == nil {
			sec.Lines = workoutLines(s)
		} else {
			for _, l := range t.lines {
				sec.Lines = append(sec.Lines, l.render(s))
			}
		}
		out = append(out, sec)
	}
	return out
}

// Render returns the full text summary for s.
func Render(s *models.Snapshot) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Date: %s\n", s.Timestamp.Format(DateLayout))

	for _, sec := range Sections(s) {
		fmt.Fprintf(&b, "\n%s:\n", sec.Title)
		for _, l := range sec.Lines {
			b.WriteString(l)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func workoutLines(s *models.Snapshot) []string {
	lines := []string{}
	for i, w := range s.LatestWorkouts(MaxWorkouts) {
		kind, ok := strv(w.WorkoutType)
		if !ok {
			kind = UnknownType
		}
		duration, ok := intv(w.Duration)
		if !ok {
			duration = NotAvailable
		}
		intensity, ok := strv(w.Intensity)
		if !ok {
			intensity = NotAvailable
		}
		lines = append(lines, fmt.Sprintf("- Workout %d: %s (%s min, %s intensity)", i+1, kind, duration, intensity))
	}
	return lines
}

func bloodPressure(s *models.Snapshot) (string, bool) {
	sys, ok := intv(s.Cardiovascular.BloodPressureSystolic)
	if !ok {
		sys = NotAvailable
	}
	dia, ok := intv(s.Cardiovascular.BloodPressureDiastolic)
	if !ok {
		dia = NotAvailable
	}
	return sys + "/" + dia, true
}

func bmi(s *models.Snapshot) (string, bool) {
	if s.BodyComposition.BMI == nil {
		return "", false
	}
	return strconv.FormatFloat(*s.BodyComposition.BMI, 'f', 1, 64), true
}

func intv(v *int) (string, bool) {
	if v == nil {
		return "", false
	}
	return strconv.Itoa(*v), true
}

func floatv(v *float64) (string, bool) {
	if v == nil {
		return "", false
	}
	return strconv.FormatFloat(*v, 'f', -1, 64), true
}

func strv(v *string) (string, bool) {
	if v == nil {
		return "", false
	}
	return *v, true
}

func listv(v []string) (string, bool) {
	if len(v) == 0 {
		return "", false
	}
	return strings.Join(v, ", "), true
}
