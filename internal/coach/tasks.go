// ABOUTME: The fixed task list: health analysis, then workout and nutrition plans.
// ABOUTME: Both plan tasks take the analysis output as context and name the file they produce.
package coach

import (
	"fmt"
	"strings"
)

// Task names.
const (
	TaskAnalysis      = "analysis"
	TaskWorkoutPlan   = "workout_plan"
	TaskNutritionPlan = "nutrition_plan"
)

// Plan file names.
const (
	WorkoutPlanFile   = "personalized_workout_plan.md"
	NutritionPlanFile = "personalized_nutrition_plan.md"
)

// Task is one unit of work for an agent.
type Task struct {
	Name           string
	Agent          Agent
	Description    string
	ExpectedOutput string
	// Artifact is the file the output is saved to. Empty means not saved.
	Artifact string
	// DependsOn names earlier tasks whose output is passed as context.
	DependsOn []string
}

// UserPrompt builds the user message from the description, expected output and context.
func (t Task) UserPrompt(context map[string]string) string {
	var b strings.Builder
	b.WriteString(t.Description)
	b.WriteString("\n\nEXPECTED OUTPUT:\n")
	b.WriteString(t.ExpectedOutput)

	for _, dep := range t.DependsOn {
		fmt.Fprintf(&b, "\n\nCONTEXT FROM %s:\n", strings.ToUpper(dep))
		b.WriteString(context[dep])
	}
	return b.String()
}

// Tasks returns the three tasks for a rendered summary, in execution order.
func Tasks(summary string) []Task {
	return []Task{analysisTask(summary), workoutTask(), nutritionTask()}
}

func analysisTask(summary string) Task {
	return Task{
		Name:  TaskAnalysis,
		Agent: ResearchAssistant,
		Description: "Analyze the following comprehensive health data and provide detailed insights:\n\n" +
			summary + "\n" +
			`Your analysis should include:
1. Current fitness and health status assessment
2. Recovery status and readiness for exercise
3. Identification of strengths and areas for improvement
4. Risk factors or concerns that should be addressed
5. Recommendations for workout intensity and type based on current metrics
6. Sleep and stress impact on training readiness
7. Cardiovascular fitness assessment and trends

Focus on actionable insights that can guide personalized fitness and nutrition planning.`,
		ExpectedOutput: `A comprehensive health analysis report containing:
- Overall health and fitness status assessment (1-10 scale)
- Current recovery status and exercise readiness
- Cardiovascular health evaluation
- Sleep quality impact on performance
- Stress and recovery recommendations
- Suggested workout intensity levels
- Key health metrics trends and concerns
- Actionable recommendations for improvement`,
	}
}

func workoutTask() Task {
	return Task{
		Name:  TaskWorkoutPlan,
		Agent: FitnessWriter,
		Description: `Based on the comprehensive health analysis provided by the Research Assistant, create a personalized workout plan.

IMPORTANT: Review the health analysis below and use its specific findings and recommendations to create your workout plan.

Create a comprehensive workout plan that includes:
1. Weekly workout schedule (7 days) with specific exercises
2. Intensity recommendations based on heart rate zones from the analysis
3. Progressive difficulty adjustments
4. Recovery and rest day recommendations based on the user's recovery metrics
5. Specific exercises targeting weaknesses identified in the analysis
6. Warm-up and cool-down routines
7. Injury prevention strategies
8. Performance tracking metrics to monitor

The plan should directly address the findings from the health analysis and be aligned with the user's fitness level and goals.
Reply with the plan as Markdown only; it is saved as '` + WorkoutPlanFile + `'.`,
		ExpectedOutput: `A detailed workout plan containing:
- 7-day weekly schedule with specific workouts
- Exercise descriptions and proper form instructions
- Heart rate zone recommendations for each workout
- Progressive difficulty adjustments week by week
- Recovery strategies and rest day activities
- Injury prevention exercises and mobility work
- Performance tracking metrics and milestones
- Modifications for different fitness levels`,
		Artifact:  WorkoutPlanFile,
		DependsOn: []string{TaskAnalysis},
	}
}

func nutritionTask() Task {
	return Task{
		Name:  TaskNutritionPlan,
		Agent: NutritionWriter,
		Description: `Based on the comprehensive health analysis provided by the Research Assistant, create a personalized nutrition plan.

IMPORTANT: Review the health analysis below and use its specific findings and recommendations to create your nutrition plan.

Develop a comprehensive nutrition strategy that includes:
1. Daily caloric and macronutrient targets based on the user's body composition and goals
2. Pre and post-workout nutrition timing recommendations
3. Hydration recommendations based on activity levels
4. Meal timing for optimal recovery based on sleep and recovery metrics
5. Supplements that may benefit performance based on the analysis
6. Weekly meal planning with specific foods
7. Strategies for different training phases
8. Body composition optimization recommendations

The plan should directly address the findings from the health analysis and support the user's specific fitness goals.
Reply with the plan as Markdown only; it is saved as '` + NutritionPlanFile + `'.`,
		ExpectedOutput: `A detailed nutrition plan containing:
- Daily caloric and macronutrient breakdown
- Pre/post workout nutrition strategies
- Optimal meal timing and frequency
- Hydration guidelines and recommendations
- Sample weekly meal plans with recipes
- Supplement recommendations with timing
- Strategies for different training phases
- Progress tracking and adjustment guidelines`,
		Artifact:  NutritionPlanFile,
		DependsOn: []string{TaskAnalysis},
	}
}
