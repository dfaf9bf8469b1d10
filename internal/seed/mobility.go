package seed

import "github.com/maroofsyyed/dominion1/internal/domain"

// scoring0to3 builds the four-step rubric used by every assessment.
func scoring0to3(perfect, good, fair, poor string) map[string]string {
	return map[string]string{"3": perfect, "2": good, "1": fair, "0": poor}
}

// MobilityExercises returns assessments, routines and single stretches.
func MobilityExercises() []domain.MobilityExercise {
	return []domain.MobilityExercise{
		// Assessments
		{
			Name:        "Overhead Squat Assessment",
			Area:        "Full Body",
			Type:        domain.MobilityTypeAssessment,
			Description: "Comprehensive movement screen to evaluate whole-body mobility and stability",
			Instructions: []string{
				"Stand with feet shoulder-width apart",
				"Raise arms overhead with thumbs pointing back",
				"Squat down as deep as possible while keeping arms overhead",
				"Hold for 3 seconds and observe any compensations",
			},
			Benefits: []string{"Identifies mobility restrictions", "Evaluates movement patterns", "Guides exercise selection"},
			WhatToLookFor: []string{
				"Arms falling forward - thoracic/shoulder mobility",
				"Knees caving in - hip/ankle mobility",
				"Heels lifting - ankle dorsiflexion restriction",
				"Forward lean - hip flexor tightness",
			},
			Scoring: scoring0to3("Perfect squat with arms overhead", "Minor compensation in one area",
				"Multiple compensations present", "Unable to perform movement"),
			HoldTime: "3 seconds",
		},
		{
			Name:        "Shoulder Reach Test",
			Area:        "Shoulders",
			Type:        domain.MobilityTypeAssessment,
			Description: "Assess shoulder flexibility and internal/external rotation",
			Instructions: []string{
				"Reach one arm overhead and down your back",
				"Reach other arm behind back and up",
				"Try to touch fingers behind your back",
				"Measure gap between fingertips",
			},
			Benefits: []string{"Evaluates shoulder mobility", "Identifies rotation restrictions", "Tracks improvement"},
			WhatToLookFor: []string{
				"Gap between fingers indicates tightness",
				"Compare both sides for asymmetry",
				"Note any pain or discomfort",
			},
			Scoring: scoring0to3("Fingers overlap behind back", "Fingertips touch",
				"Gap less than 2 inches", "Gap greater than 2 inches"),
			HoldTime: "5 seconds",
		},
		{
			Name:        "Ankle Dorsiflexion Test",
			Area:        "Ankles",
			Type:        domain.MobilityTypeAssessment,
			Description: "Evaluate ankle mobility for proper squat depth and balance",
			Instructions: []string{
				"Stand facing a wall in lunge position",
				"Place front foot 4 inches from wall",
				"Keep heel down and knee straight",
				"Try to touch knee to wall without lifting heel",
			},
			Benefits:      []string{"Tests ankle flexibility", "Predicts squat performance", "Identifies restrictions"},
			WhatToLookFor: []string{"Heel lifting off ground", "Knee unable to reach wall", "Arch collapsing inward"},
			Scoring: scoring0to3("Knee easily touches wall", "Knee barely touches wall",
				"Knee 1 inch from wall", "Knee more than 1 inch from wall"),
			HoldTime: "3 seconds",
		},

		// Routines
		{
			Name:         "Morning Mobility Flow",
			Area:         "Full Body",
			Type:         domain.MobilityTypeRoutine,
			Difficulty:   domain.LevelBeginner,
			Description:  "Energizing 10-minute routine to start your day with improved mobility",
			Duration:     "10 minutes",
			Exercises:    []string{"Cat-Cow Stretch", "World's Greatest Stretch", "Leg Swings", "Arm Circles", "Hip Circles", "Spinal Waves"},
			Instructions: []string{"Perform each exercise for 30-60 seconds", "Move slowly and controlled", "Focus on breath"},
			Benefits:     []string{"Increases circulation", "Prepares body for activity", "Reduces stiffness"},
			BestTime:     "Morning or pre-workout",
		},
		{
			Name:         "Desk Worker Relief",
			Area:         "Neck, Shoulders, Hips",
			Type:         domain.MobilityTypeRoutine,
			Difficulty:   domain.LevelBeginner,
			Description:  "Combat the effects of prolonged sitting with targeted stretches",
			Duration:     "8 minutes",
			Exercises:    []string{"Neck Rolls", "Shoulder Blade Squeezes", "Hip Flexor Stretch", "Thoracic Extension", "Seated Spinal Twist"},
			Instructions: []string{"Can be done at desk or standing", "Hold stretches for 30 seconds", "Repeat 2-3 times daily"},
			Benefits:     []string{"Reduces neck tension", "Opens tight hips", "Improves posture"},
			BestTime:     "During work breaks",
		},
		{
			Name:         "Pre-Workout Dynamic Warmup",
			Area:         "Full Body",
			Type:         domain.MobilityTypeRoutine,
			Difficulty:   domain.LevelIntermediate,
			Description:  "Dynamic movements to prepare your body for intense training",
			Duration:     "12 minutes",
			Exercises:    []string{"Walking High Knees", "Butt Kicks", "Leg Swings", "Arm Swings", "Walking Lunges", "Inchworms", "Dynamic Pigeon"},
			Instructions: []string{"Keep movements controlled", "Gradually increase range of motion", "Focus on activation"},
			Benefits:     []string{"Increases body temperature", "Activates muscles", "Prevents injury"},
			BestTime:     "Before workouts",
		},

		// Single stretches
		{
			Name:        "World's Greatest Stretch",
			Area:        "Hips, Ankles, Thoracic",
			Type:        domain.MobilityTypeExercise,
			Description: "The most comprehensive single stretch for lower body mobility",
			Instructions: []string{
				"Start in lunge position with hands on ground",
				"Drop back knee to ground",
				"Place inside elbow to front ankle",
				"Rotate opposite arm toward ceiling",
				"Hold and breathe deeply",
			},
			Benefits:          []string{"Opens hip flexors", "Stretches IT band", "Improves thoracic rotation", "Enhances ankle mobility"},
			Targets:           []string{"Hip flexors", "IT band", "Thoracic spine", "Ankle dorsiflexion"},
			CommonMistakes:    []string{"Dropping into stretch too quickly", "Not maintaining front knee alignment", "Holding breath"},
			Progressions:      []string{"Beginner: Hold static position", "Intermediate: Add gentle rocking", "Advanced: Add posterior reach"},
			Contraindications: []string{"Recent hip surgery", "Acute lower back pain"},
			HoldTime:          "30-60 seconds each side",
			VideoURL:          "placeholder_for_worlds_greatest_stretch",
		},
		{
			Name:        "Thoracic Spine Cat-Cow",
			Area:        "Thoracic Spine",
			Type:        domain.MobilityTypeExercise,
			Description: "Improve upper back mobility and posture with controlled spinal movement",
			Instructions: []string{
				"Start on hands and knees",
				"Arch your back and look up (cow)",
				"Round your spine and tuck chin (cat)",
				"Move slowly between positions",
				"Focus on mid-back movement",
			},
			Benefits:          []string{"Increases spinal mobility", "Reduces upper back tension", "Improves posture", "Relieves stiffness"},
			Targets:           []string{"Thoracic vertebrae", "Spinal erectors", "Deep core muscles"},
			CommonMistakes:    []string{"Moving too fast", "Using only lower back", "Not breathing with movement"},
			Progressions:      []string{"Beginner: Gentle range of motion", "Intermediate: Hold end positions", "Advanced: Add side bending"},
			Contraindications: []string{"Acute spinal injury", "Recent back surgery"},
			HoldTime:          "10-15 slow repetitions",
			VideoURL:          "placeholder_for_cat_cow",
		},
		{
			Name:        "90/90 Hip Stretch",
			Area:        "Hips",
			Type:        domain.MobilityTypeExercise,
			Description: "Target both internal and external hip rotation simultaneously",
			Instructions: []string{
				"Sit with both legs bent at 90 degrees",
				"Front leg in external rotation",
				"Back leg in internal rotation",
				"Lean forward over front leg",
				"Switch sides after hold",
			},
			Benefits:          []string{"Improves hip internal rotation", "Increases external rotation", "Balances hip mobility", "Reduces hip tightness"},
			Targets:           []string{"Hip internal rotators", "Hip external rotators", "Hip capsule"},
			CommonMistakes:    []string{"Sitting on one hip", "Forcing the stretch", "Not maintaining spine alignment"},
			Progressions:      []string{"Beginner: Sit upright", "Intermediate: Gentle forward lean", "Advanced: Deep forward fold"},
			Contraindications: []string{"Hip replacement", "Acute hip pain"},
			HoldTime:          "45-90 seconds each side",
			VideoURL:          "placeholder_for_90_90_hip",
		},
		{
			Name:        "Ankle ABC's",
			Area:        "Ankles",
			Type:        domain.MobilityTypeExercise,
			Description: "Improve ankle mobility in all directions through alphabet tracing",
			Instructions: []string{
				"Sit or lie down comfortably",
				"Lift one foot off ground",
				"Trace the alphabet with your big toe",
				"Make large, controlled movements",
				"Complete full alphabet each foot",
			},
			Benefits:          []string{"Increases ankle range of motion", "Improves circulation", "Strengthens small muscles", "Prevents stiffness"},
			Targets:           []string{"Ankle dorsiflexors", "Ankle plantarflexors", "Ankle invertors", "Ankle evertors"},
			CommonMistakes:    []string{"Moving too quickly", "Making letters too small", "Using whole leg instead of ankle"},
			Progressions:      []string{"Beginner: Capital letters only", "Intermediate: Upper and lowercase", "Advanced: Cursive or backwards"},
			Contraindications: []string{"Recent ankle injury", "Acute ankle sprain"},
			HoldTime:          "2-3 minutes each foot",
			VideoURL:          "placeholder_for_ankle_abcs",
		},
	}
}
