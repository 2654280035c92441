package plan

import "github.com/claude/fit365/internal/models"

// Hand-authored exercise templates, one list per split day. Immutable:
// the generator copies slices before handing them out, and sessions only
// ever write into their own ExerciseProgress.

var pushTemplates = []models.Exercise{
	{
		Order:            1,
		Name:             "Barbell Bench Press",
		Sets:             4,
		Reps:             "8-10",
		Rest:             "90s",
		Intensity:        "RPE 7-8",
		Equipment:        []string{"barbell", "bench"},
		PrimaryMuscle:    "Chest",
		SecondaryMuscles: []string{"Triceps", "Shoulders"},
		Instructions: []string{
			"Lie on bench, feet flat on floor",
			"Grip bar slightly wider than shoulders",
			"Lower to mid-chest with control",
			"Press explosively back to start",
		},
		FormTips: []string{
			"Keep shoulder blades retracted",
			"Maintain slight arch in lower back",
			"Drive through heels",
		},
		CommonMistakes: []string{
			"Bouncing bar off chest",
			"Flaring elbows too wide",
			"Lifting hips off bench",
		},
		Alternatives: map[string]models.Alternative{
			"beginner": {Name: "Dumbbell Bench Press", Reason: "Easier to control"},
			"home":     {Name: "Push-ups", Equipment: []string{"none"}, Reason: "No equipment needed"},
		},
	},
	{
		Order:            2,
		Name:             "Incline Dumbbell Press",
		Sets:             4,
		Reps:             "8-10",
		Rest:             "75s",
		Intensity:        "RPE 7",
		Equipment:        []string{"dumbbells", "incline_bench"},
		PrimaryMuscle:    "Upper Chest",
		SecondaryMuscles: []string{"Shoulders", "Triceps"},
		Instructions: []string{
			"Set bench to 30-45 degree incline",
			"Press dumbbells up and together",
			"Lower with control to chest level",
		},
		FormTips:       []string{"Keep core tight", "Don't let dumbbells drift forward"},
		CommonMistakes: []string{"Setting incline too high", "Rushing the movement"},
		Alternatives: map[string]models.Alternative{
			"home": {Name: "Decline Push-ups", Equipment: []string{"none"}, Reason: "Targets upper chest"},
		},
	},
	{
		Order:         3,
		Name:          "Dumbbell Chest Flyes",
		Sets:          3,
		Reps:          "12-15",
		Rest:          "60s",
		Intensity:     "RPE 6-7",
		Equipment:     []string{"dumbbells", "bench"},
		PrimaryMuscle: "Chest",
		Instructions: []string{
			"Lie flat with dumbbells above chest",
			"Lower in arc motion with slight elbow bend",
			"Squeeze chest to return",
		},
		FormTips:       []string{"Keep elbow angle constant", "Focus on the stretch"},
		CommonMistakes: []string{"Bending elbows too much", "Going too heavy"},
		Alternatives: map[string]models.Alternative{
			"home": {Name: "Floor Flyes", Equipment: []string{"dumbbells"}, Reason: "Limited range"},
		},
	},
	{
		Order:            4,
		Name:             "Overhead Press",
		Sets:             4,
		Reps:             "8-10",
		Rest:             "90s",
		Intensity:        "RPE 7-8",
		Equipment:        []string{"barbell"},
		PrimaryMuscle:    "Shoulders",
		SecondaryMuscles: []string{"Triceps", "Core"},
		Instructions: []string{
			"Stand with bar at shoulder height",
			"Press overhead in straight line",
			"Lower with control",
		},
		FormTips:       []string{"Brace core throughout", "Keep bar path vertical"},
		CommonMistakes: []string{"Excessive back arch", "Pressing forward"},
		Alternatives: map[string]models.Alternative{
			"beginner":        {Name: "Seated Dumbbell Press", Reason: "More stable"},
			"injury_shoulder": {Name: "Landmine Press", Reason: "Less shoulder stress"},
		},
	},
	{
		Order:         5,
		Name:          "Lateral Raises",
		Sets:          3,
		Reps:          "12-15",
		Rest:          "60s",
		Intensity:     "RPE 6-7",
		Equipment:     []string{"dumbbells"},
		PrimaryMuscle: "Side Delts",
		Instructions: []string{
			"Stand with dumbbells at sides",
			"Raise to shoulder height",
			"Lower with control",
		},
		FormTips:       []string{"Lead with elbows", "Slight forward lean"},
		CommonMistakes: []string{"Using momentum", "Going too heavy"},
	},
	{
		Order:         6,
		Name:          "Tricep Pushdowns",
		Sets:          3,
		Reps:          "12-15",
		Rest:          "60s",
		Intensity:     "RPE 7",
		Equipment:     []string{"cable_machine"},
		PrimaryMuscle: "Triceps",
		Instructions: []string{
			"Stand at cable machine",
			"Push rope down until arms straight",
			"Squeeze at bottom",
		},
		FormTips:       []string{"Keep elbows pinned to sides", "Full extension at bottom"},
		CommonMistakes: []string{"Moving elbows", "Leaning too far forward"},
		Alternatives: map[string]models.Alternative{
			"home": {Name: "Diamond Push-ups", Equipment: []string{"none"}, Reason: "Targets triceps"},
		},
	},
	{
		Order:         7,
		Name:          "Overhead Tricep Extension",
		Sets:          3,
		Reps:          "10-12",
		Rest:          "60s",
		Intensity:     "RPE 7",
		Equipment:     []string{"dumbbell"},
		PrimaryMuscle: "Triceps",
		Instructions: []string{
			"Hold dumbbell overhead with both hands",
			"Lower behind head with control",
			"Extend back to start",
		},
		FormTips:       []string{"Keep elbows close to head", "Full range of motion"},
		CommonMistakes: []string{"Flaring elbows", "Moving upper arms"},
	},
}

var pullTemplates = []models.Exercise{
	{
		Order:            1,
		Name:             "Barbell Rows",
		Sets:             4,
		Reps:             "8-10",
		Rest:             "90s",
		Intensity:        "RPE 7-8",
		Equipment:        []string{"barbell"},
		PrimaryMuscle:    "Back",
		SecondaryMuscles: []string{"Biceps", "Rear Delts"},
		Instructions: []string{
			"Hinge at hips, back flat",
			"Pull bar to lower chest",
			"Squeeze shoulder blades",
			"Lower with control",
		},
		FormTips:       []string{"Keep core braced", "Don't round lower back"},
		CommonMistakes: []string{"Using momentum", "Standing too upright"},
		Alternatives: map[string]models.Alternative{
			"beginner": {Name: "Dumbbell Rows", Reason: "Easier to learn"},
			"home":     {Name: "Inverted Rows", Equipment: []string{"none"}, Reason: "Bodyweight option"},
		},
	},
	{
		Order:            2,
		Name:             "Lat Pulldowns",
		Sets:             4,
		Reps:             "10-12",
		Rest:             "75s",
		Intensity:        "RPE 7",
		Equipment:        []string{"cable_machine"},
		PrimaryMuscle:    "Lats",
		SecondaryMuscles: []string{"Biceps"},
		Instructions: []string{
			"Grip bar wider than shoulders",
			"Pull to upper chest",
			"Control the negative",
		},
		FormTips:       []string{"Lean slightly back", "Drive elbows down"},
		CommonMistakes: []string{"Pulling behind neck", "Using too much momentum"},
		Alternatives: map[string]models.Alternative{
			"home": {Name: "Pull-ups", Equipment: []string{"pull_up_bar"}, Reason: "Bodyweight equivalent"},
		},
	},
	{
		Order:            3,
		Name:             "Seated Cable Rows",
		Sets:             3,
		Reps:             "10-12",
		Rest:             "60s",
		Intensity:        "RPE 7",
		Equipment:        []string{"cable_machine"},
		PrimaryMuscle:    "Mid Back",
		SecondaryMuscles: []string{"Biceps", "Rear Delts"},
		Instructions: []string{
			"Sit with feet on platform",
			"Pull handle to torso",
			"Squeeze shoulder blades together",
		},
		FormTips:       []string{"Keep chest up", "Don't lean too far back"},
		CommonMistakes: []string{"Rounding back", "Using momentum"},
		Alternatives: map[string]models.Alternative{
			"home": {Name: "Resistance Band Rows", Equipment: []string{"resistance_bands"}, Reason: "Home alternative"},
		},
	},
	{
		Order:            4,
		Name:             "Face Pulls",
		Sets:             3,
		Reps:             "15-20",
		Rest:             "60s",
		Intensity:        "RPE 6",
		Equipment:        []string{"cable_machine"},
		PrimaryMuscle:    "Rear Delts",
		SecondaryMuscles: []string{"Upper Back"},
		Instructions: []string{
			"Set cable at face height",
			"Pull rope to face, elbows high",
			"Externally rotate at end",
		},
		FormTips:       []string{"Lead with elbows", "Squeeze at contraction"},
		CommonMistakes: []string{"Going too heavy", "Not rotating"},
		Alternatives: map[string]models.Alternative{
			"home": {Name: "Band Pull-Aparts", Equipment: []string{"resistance_bands"}, Reason: "Similar movement"},
		},
	},
	{
		Order:         5,
		Name:          "Barbell Curls",
		Sets:          3,
		Reps:          "10-12",
		Rest:          "60s",
		Intensity:     "RPE 7",
		Equipment:     []string{"barbell"},
		PrimaryMuscle: "Biceps",
		Instructions: []string{
			"Stand with bar at thighs",
			"Curl to shoulders",
			"Lower with control",
		},
		FormTips:       []string{"Keep elbows pinned", "Don't swing"},
		CommonMistakes: []string{"Using momentum", "Moving elbows"},
		Alternatives: map[string]models.Alternative{
			"home": {Name: "Dumbbell Curls", Equipment: []string{"dumbbells"}, Reason: "More accessible"},
		},
	},
	{
		Order:            6,
		Name:             "Hammer Curls",
		Sets:             3,
		Reps:             "10-12",
		Rest:             "60s",
		Intensity:        "RPE 7",
		Equipment:        []string{"dumbbells"},
		PrimaryMuscle:    "Biceps",
		SecondaryMuscles: []string{"Forearms"},
		Instructions: []string{
			"Hold dumbbells with neutral grip",
			"Curl while keeping palms facing in",
			"Lower with control",
		},
		FormTips:       []string{"Keep elbows stable", "Full range of motion"},
		CommonMistakes: []string{"Swinging weights", "Rotating wrists"},
	},
}

var legTemplates = []models.Exercise{
	{
		Order:            1,
		Name:             "Barbell Squats",
		Sets:             4,
		Reps:             "6-8",
		Rest:             "120s",
		Intensity:        "RPE 8",
		Equipment:        []string{"barbell", "squat_rack"},
		PrimaryMuscle:    "Quads",
		SecondaryMuscles: []string{"Glutes", "Hamstrings", "Core"},
		Instructions: []string{
			"Bar on upper back, feet shoulder width",
			"Descend until thighs parallel",
			"Drive through heels to stand",
		},
		FormTips:       []string{"Knees track over toes", "Keep chest up"},
		CommonMistakes: []string{"Knees caving in", "Rounding back"},
		Alternatives: map[string]models.Alternative{
			"beginner":    {Name: "Goblet Squats", Reason: "Easier to learn"},
			"home":        {Name: "Bulgarian Split Squats", Equipment: []string{"dumbbells"}, Reason: "Single leg work"},
			"injury_knee": {Name: "Leg Press", Reason: "Less knee stress"},
		},
	},
	{
		Order:            2,
		Name:             "Romanian Deadlifts",
		Sets:             4,
		Reps:             "8-10",
		Rest:             "90s",
		Intensity:        "RPE 7-8",
		Equipment:        []string{"barbell"},
		PrimaryMuscle:    "Hamstrings",
		SecondaryMuscles: []string{"Glutes", "Lower Back"},
		Instructions: []string{
			"Hold bar at hips, slight knee bend",
			"Hinge at hips, lowering bar",
			"Feel hamstring stretch",
			"Drive hips forward to stand",
		},
		FormTips:       []string{"Keep bar close to body", "Flat back throughout"},
		CommonMistakes: []string{"Rounding back", "Bending knees too much"},
		Alternatives: map[string]models.Alternative{
			"home": {Name: "Single Leg RDL", Equipment: []string{"dumbbells"}, Reason: "Balance challenge"},
		},
	},
	{
		Order:            3,
		Name:             "Leg Press",
		Sets:             4,
		Reps:             "10-12",
		Rest:             "90s",
		Intensity:        "RPE 7",
		Equipment:        []string{"leg_press"},
		PrimaryMuscle:    "Quads",
		SecondaryMuscles: []string{"Glutes"},
		Instructions: []string{
			"Feet shoulder width on platform",
			"Lower until knees at 90 degrees",
			"Press back to start",
		},
		FormTips:       []string{"Don't lock knees", "Keep lower back on pad"},
		CommonMistakes: []string{"Going too deep", "Lifting hips"},
		Alternatives: map[string]models.Alternative{
			"home": {Name: "Lunges", Equipment: []string{"dumbbells"}, Reason: "No machine needed"},
		},
	},
	{
		Order:         4,
		Name:          "Leg Curls",
		Sets:          3,
		Reps:          "12-15",
		Rest:          "60s",
		Intensity:     "RPE 7",
		Equipment:     []string{"leg_curl_machine"},
		PrimaryMuscle: "Hamstrings",
		Instructions: []string{
			"Lie face down on machine",
			"Curl heels toward glutes",
			"Lower with control",
		},
		FormTips:       []string{"Don't lift hips", "Full range of motion"},
		CommonMistakes: []string{"Using momentum", "Partial reps"},
		Alternatives: map[string]models.Alternative{
			"home": {Name: "Nordic Curls", Equipment: []string{"none"}, Reason: "Advanced bodyweight"},
		},
	},
	{
		Order:         5,
		Name:          "Leg Extensions",
		Sets:          3,
		Reps:          "12-15",
		Rest:          "60s",
		Intensity:     "RPE 7",
		Equipment:     []string{"leg_extension"},
		PrimaryMuscle: "Quads",
		Instructions: []string{
			"Sit with back against pad",
			"Extend legs until straight",
			"Lower with control",
		},
		FormTips:       []string{"Don't hyperextend", "Squeeze at top"},
		CommonMistakes: []string{"Using too much weight", "Swinging"},
		Alternatives: map[string]models.Alternative{
			"home":        {Name: "Wall Sits", Equipment: []string{"none"}, Reason: "Isometric quad work"},
			"injury_knee": {Name: "Terminal Knee Extensions", Reason: "Gentle on knees"},
		},
	},
	{
		Order:         6,
		Name:          "Standing Calf Raises",
		Sets:          4,
		Reps:          "12-15",
		Rest:          "60s",
		Intensity:     "RPE 7",
		Equipment:     []string{"calf_raise_machine"},
		PrimaryMuscle: "Calves",
		Instructions: []string{
			"Stand on platform, heels hanging",
			"Rise onto toes",
			"Lower until stretch felt",
		},
		FormTips:       []string{"Full range of motion", "Pause at top"},
		CommonMistakes: []string{"Bouncing", "Partial reps"},
		Alternatives: map[string]models.Alternative{
			"home": {Name: "Single Leg Calf Raises", Equipment: []string{"none"}, Reason: "No equipment"},
		},
	},
}

// warmupItems is attached to every day regardless of split.
var warmupItems = []models.WarmupExercise{
	{Name: "Arm Circles", Duration: "30s each direction", Instructions: "Stand tall, extend arms, make large circles"},
	{Name: "Jumping Jacks", Sets: 1, Reps: 20, Instructions: "Full range of motion, land softly"},
	{Name: "Bodyweight Squats", Sets: 1, Reps: 15, Instructions: "Slow and controlled, focus on depth"},
	{Name: "Light Cardio", Duration: "2 min", Instructions: "Jogging in place or high knees"},
}

// cooldownItems is attached to every day regardless of split.
var cooldownItems = []models.CooldownExercise{
	{Name: "Static Stretching", Duration: "30s per muscle", Instructions: "Hold each stretch without bouncing"},
	{Name: "Deep Breathing", Duration: "2 min", Instructions: "Slow inhales and exhales"},
	{Name: "Light Walking", Duration: "2 min", Instructions: "Cool down your heart rate gradually"},
}

func pushExercises() []models.Exercise {
	return append([]models.Exercise(nil), pushTemplates...)
}

func pullExercises() []models.Exercise {
	return append([]models.Exercise(nil), pullTemplates...)
}

func legExercises() []models.Exercise {
	return append([]models.Exercise(nil), legTemplates...)
}

// upperExercises is the first three push plus the first three pull templates.
func upperExercises() []models.Exercise {
	out := append([]models.Exercise(nil), pushTemplates[:3]...)
	return append(out, pullTemplates[:3]...)
}

// fullBodyExercises is a fixed six-exercise composite drawn from all three
// template lists.
func fullBodyExercises() []models.Exercise {
	return []models.Exercise{
		pushTemplates[0],
		pullTemplates[0],
		legTemplates[0],
		pushTemplates[3],
		pullTemplates[4],
		legTemplates[5],
	}
}
