// ABOUTME: Tests for the text summary renderer.
// ABOUTME: Covers placeholders, workout windowing, section order and determinism.
package summary

import (
	"strings"
	"testing"
	"time"

	"github.com/harperreed/fitcoach/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var at = time.Date(2025, 3, 14, 9, 5, 0, 0, time.UTC)

func sectionBody(t *testing.T, out, title string) []string {
	t.Helper()
	start := strings.Index(out, "\n"+title+":\n")
	require.NotEqual(t, -1, start, "missing section %s", title)
	rest := out[start+len(title)+3:]
	if strings.HasPrefix(rest, "\n") {
		return nil
	}
	if end := strings.Index(rest, "\n\n"); end >= 0 {
		rest = rest[:end]
	}
	rest = strings.TrimRight(rest, "\n")
	if rest == "" {
		return nil
	}
	return strings.Split(rest, "\n")
}

func TestRenderHeader(t *testing.T) {
	out := Render(models.NewSnapshot(at, models.SnapshotParts{}))

	assert.True(t, strings.HasPrefix(out, Header+"\nDate: 2025-03-14 09:05\n"), "got %q", out[:60])
}

func TestRenderSectionOrder(t *testing.T) {
	out := Render(models.SampleSnapshot(at))

	titles := []string{
		"USER PROFILE:", "CARDIOVASCULAR HEALTH:", "ACTIVITY METRICS:", "SLEEP QUALITY:",
		"BODY COMPOSITION:", "RECOVERY STATUS:", "ENVIRONMENTAL:", "RECENT WORKOUTS:", "NUTRITION:",
	}
	last := -1
	for _, title := range titles {
		idx := strings.Index(out, "\n"+title+"\n")
		require.Greater(t, idx, last, "section %s out of order", title)
		last = idx
	}
}

func TestRenderAllAbsentSkeleton(t *testing.T) {
	s := models.NewSnapshot(at, models.SnapshotParts{})
	out := Render(s)

	profile := sectionBody(t, out, "USER PROFILE")
	assert.Equal(t, []string{
		"- Age: Not provided",
		"- Gender: Not provided",
		"- Fitness Level: Not provided",
		"- Goals: Not specified",
		"- Medical Conditions: Not specified",
		"- Medications: Not specified",
		"- Activity Preferences: Not specified",
	}, profile)

	cardio := sectionBody(t, out, "CARDIOVASCULAR HEALTH")
	assert.Contains(t, cardio, "- Resting HR: N/A bpm")
	assert.Contains(t, cardio, "- Blood Pressure: N/A/N/A mmHg")
	assert.Contains(t, cardio, "- VO2 Max: N/A ml/kg/min")

	assert.Contains(t, sectionBody(t, out, "SLEEP QUALITY"), "- Sleep Score: N/A/100")
	assert.Contains(t, sectionBody(t, out, "BODY COMPOSITION"), "- BMI: N/A")
	assert.Contains(t, sectionBody(t, out, "ENVIRONMENTAL"), "- Skin Temperature: N/A°C")
	assert.Contains(t, sectionBody(t, out, "NUTRITION"), "- Protein: N/Ag")

	total := 0
	for _, sec := range Sections(s) {
		for _, l := range sec.Lines {
			assert.True(t, strings.HasPrefix(l, "- "), "line %q", l)
			total++
		}
	}
	assert.Equal(t, 53, total)
}

func TestRenderZeroWorkouts(t *testing.T) {
	out := Render(models.NewSnapshot(at, models.SnapshotParts{}))

	assert.Contains(t, out, "\nRECENT WORKOUTS:\n\nNUTRITION:\n")
	assert.NotContains(t, out, "Workout 1")
}

func TestRenderKeepsLastThreeWorkouts(t *testing.T) {
	s := models.NewSnapshot(at, models.SnapshotParts{
		Workouts: []models.WorkoutMetrics{
			models.NewWorkout("yoga").WithDuration(60).WithIntensity("low"),
			models.NewWorkout("cycling").WithDuration(90).WithIntensity("high"),
			models.NewWorkout("swimming").WithDuration(40),
			{Duration: models.Int(20), Intensity: models.String("moderate")},
			models.NewWorkout("running"),
		},
	})

	assert.Equal(t, []string{
		"- Workout 1: swimming (40 min, N/A intensity)",
		"- Workout 2: Unknown (20 min, moderate intensity)",
		"- Workout 3: running (N/A min, N/A intensity)",
	}, sectionBody(t, Render(s), "RECENT WORKOUTS"))
}

func TestRenderZeroValuesArePresent(t *testing.T) {
	s := models.NewSnapshot(at, models.SnapshotParts{
		Activity: models.ActivityMetrics{Steps: models.Int(0), Distance: models.Float(0)},
	})
	activity := sectionBody(t, Render(s), "ACTIVITY METRICS")

	assert.Contains(t, activity, "- Steps: 0")
	assert.Contains(t, activity, "- Distance: 0 km")
}

func TestRenderBloodPressurePartial(t *testing.T) {
	s := models.NewSnapshot(at, models.SnapshotParts{
		Cardiovascular: models.CardiovascularMetrics{BloodPressureSystolic: models.Int(118)},
	})

	assert.Contains(t, Render(s), "- Blood Pressure: 118/N/A mmHg\n")
}

func TestRenderSample(t *testing.T) {
	out := Render(models.SampleSnapshot(at))

	for _, want := range []string{
		"- Age: 28\n",
		"- Gender: female\n",
		"- Goals: weight_loss, muscle_gain, endurance\n",
		"- Medical Conditions: Not specified\n",
		"- Resting HR: 65 bpm\n",
		"- HRV: 45.2 ms\n",
		"- Blood Pressure: 120/80 mmHg\n",
		"- VO2 Max: 38.5 ml/kg/min\n",
		"- Distance: 6.2 km\n",
		"- Total Sleep: 7.5 hours\n",
		"- Sleep Efficiency: 85%\n",
		"- Sleep Score: 82/100\n",
		"- Weight: 65 kg\n",
		"- BMI: 23.0\n",
		"- Body Fat: 22.5%\n",
		"- Stress Level: 35/100\n",
		"- Blood Oxygen: 98.5%\n",
		"- Skin Temperature: 36.2°C\n",
		"- Workout 1: strength_training (45 min, moderate intensity)\n",
		"- Workout 2: running (30 min, moderate intensity)\n",
		"- Water Intake: 2.1 L\n",
		"- Protein: 95g\n",
		"- Caffeine: 120 mg\n",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderDeterministic(t *testing.T) {
	s := models.SampleSnapshot(at)
	assert.Equal(t, Render(s), Render(s))
	assert.Equal(t, Render(s), Render(models.SampleSnapshot(at)))
}

func TestSectionsMatchesRender(t *testing.T) {
	s := models.SampleSnapshot(at)
	out := Render(s)

	secs := Sections(s)
	require.Len(t, secs, 9)
	for _, sec := range secs {
		body := sectionBody(t, out, sec.Title)
		if len(sec.Lines) == 0 {
			assert.Nil(t, body)
			continue
		}
		assert.Equal(t, sec.Lines, body, sec.Title)
	}
}
