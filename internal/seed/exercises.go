package seed

import "github.com/maroofsyyed/dominion1/internal/domain"

// Exercises returns the bodyweight progression catalog across six pillars.
func Exercises() []domain.Exercise {
	return []domain.Exercise{
		// Horizontal Pull - Beginner
		{Name: "German Hang", Pillar: "Horizontal Pull", SkillLevel: "Beginner", ProgressionOrder: 1,
			Description:    "A static hanging position that builds shoulder flexibility and strength.",
			Instructions:   []string{"Hang from a bar with arms fully extended", "Keep shoulders engaged", "Hold for specified time"},
			CommonMistakes: []string{"Letting shoulders sag", "Not maintaining grip strength"}},
		{Name: "Skin the Cat", Pillar: "Horizontal Pull", SkillLevel: "Beginner", ProgressionOrder: 2,
			Description:    "A dynamic movement that improves shoulder mobility and core strength.",
			Instructions:   []string{"Start in dead hang", "Lift knees to chest", "Continue rotating backwards"},
			CommonMistakes: []string{"Moving too fast", "Not controlling the movement"}},
		{Name: "Tuck Back Lever", Pillar: "Horizontal Pull", SkillLevel: "Beginner", ProgressionOrder: 3,
			Description:    "Beginning static hold for back lever progression.",
			Instructions:   []string{"Start in inverted position", "Tuck knees to chest", "Hold horizontal position"},
			CommonMistakes: []string{"Not keeping body tight", "Dropping hips"}},
		// Horizontal Pull - Intermediate
		{Name: "Tuck Front Lever", Pillar: "Horizontal Pull", SkillLevel: "Intermediate", ProgressionOrder: 4,
			Description:    "Core static hold building towards front lever.",
			Instructions:   []string{"Dead hang from bar", "Lift legs into tuck position", "Keep body horizontal"},
			CommonMistakes: []string{"Piking at hips", "Not engaging lats"}},
		{Name: "Advanced Tuck Front Lever", Pillar: "Horizontal Pull", SkillLevel: "Intermediate", ProgressionOrder: 5,
			Description:    "Extended tuck position for front lever progression.",
			Instructions:   []string{"From tuck front lever", "Extend knees slightly", "Maintain horizontal body"},
			CommonMistakes: []string{"Extending too far too fast", "Losing shoulder engagement"}},
		{Name: "Front Lever", Pillar: "Horizontal Pull", SkillLevel: "Intermediate", ProgressionOrder: 6,
			Description:    "Full front lever - advanced static hold.",
			Instructions:   []string{"Dead hang position", "Lift body to horizontal", "Keep legs straight"},
			CommonMistakes: []string{"Sagging hips", "Not pulling with lats"}},
		// Horizontal Push - Beginner
		{Name: "Incline Push Up", Pillar: "Horizontal Push", SkillLevel: "Beginner", ProgressionOrder: 1,
			Description:    "Easier variation of push up with hands elevated.",
			Instructions:   []string{"Hands on elevated surface", "Lower chest to edge", "Push back up"},
			CommonMistakes: []string{"Sagging hips", "Not keeping elbows in"}},
		{Name: "Push Up", Pillar: "Horizontal Push", SkillLevel: "Beginner", ProgressionOrder: 2,
			Description:    "Standard push up on floor.",
			Instructions:   []string{"Hands shoulder width", "Lower chest to floor", "Push back up"},
			CommonMistakes: []string{"Flaring elbows", "Not full range of motion"}},
		{Name: "Diamond Push Up", Pillar: "Horizontal Push", SkillLevel: "Beginner", ProgressionOrder: 3,
			Description:    "Push up with hands close together.",
			Instructions:   []string{"Hands forming diamond", "Elbows close to body", "Lower chest to hands"},
			CommonMistakes: []string{"Hands too far forward", "Shoulders rising"}},
		// Horizontal Push - Advanced
		{Name: "One Arm Push Up Progression", Pillar: "Horizontal Push", SkillLevel: "Advanced", ProgressionOrder: 6,
			Description:    "Single arm push up progression building unilateral strength.",
			Instructions:   []string{"Start in staggered position", "Shift weight to working arm", "Lower chest to ground", "Push up with one arm"},
			CommonMistakes: []string{"Not shifting enough weight", "Rotating torso", "Using momentum"}},
		{Name: "Handstand Push Up", Pillar: "Horizontal Push", SkillLevel: "Advanced", ProgressionOrder: 7,
			Description:    "Push up performed in handstand position.",
			Instructions:   []string{"Hold handstand against wall", "Lower head to ground", "Press back to start"},
			CommonMistakes: []string{"Not going deep enough", "Losing balance", "Arching back"}},
		// Horizontal Push - Elite
		{Name: "One Arm Handstand Push Up", Pillar: "Horizontal Push", SkillLevel: "Elite", ProgressionOrder: 8,
			Description:    "Ultimate pushing exercise combining handstand and one arm strength.",
			Instructions:   []string{"One arm handstand hold", "Lower head to ground", "Press back up"},
			CommonMistakes: []string{"Insufficient strength base", "Poor handstand balance", "Rushing progression"}},
		{Name: "Planche Push Up", Pillar: "Horizontal Push", SkillLevel: "Elite", ProgressionOrder: 9,
			Description:    "Push up performed in planche position.",
			Instructions:   []string{"Hold planche position", "Lower body as unit", "Press back to planche"},
			CommonMistakes: []string{"Breaking planche form", "Not maintaining lean", "Insufficient strength"}},
		// Vertical Pull - Beginner
		{Name: "Vertical Row", Pillar: "Vertical Pull", SkillLevel: "Beginner", ProgressionOrder: 1,
			Description:    "Basic rowing movement for building pulling strength.",
			Instructions:   []string{"Set bar at chest height", "Lean back at angle", "Pull chest to bar"},
			CommonMistakes: []string{"Not keeping body straight", "Using momentum"}},
		{Name: "Incline Row", Pillar: "Vertical Pull", SkillLevel: "Beginner", ProgressionOrder: 2,
			Description:    "Angled rowing for progression to horizontal row.",
			Instructions:   []string{"Bar at waist height", "Body at 45-degree angle", "Pull with control"},
			CommonMistakes: []string{"Sagging hips", "Not squeezing shoulder blades"}},
		{Name: "Pull Up", Pillar: "Vertical Pull", SkillLevel: "Beginner", ProgressionOrder: 3,
			Description:    "Classic vertical pulling exercise.",
			Instructions:   []string{"Dead hang from bar", "Pull until chin over bar", "Lower with control"},
			CommonMistakes: []string{"Kipping unnecessarily", "Not full range of motion"}},
		// Vertical Pull - Advanced
		{Name: "Wide Grip Pull Up", Pillar: "Vertical Pull", SkillLevel: "Advanced", ProgressionOrder: 6,
			Description:    "Pull up with hands wider than shoulders.",
			Instructions:   []string{"Hands 1.5x shoulder width", "Pull chest to bar", "Focus on lat engagement"},
			CommonMistakes: []string{"Not going full range", "Using momentum", "Insufficient lat activation"}},
		{Name: "Archer Pull Up", Pillar: "Vertical Pull", SkillLevel: "Advanced", ProgressionOrder: 7,
			Description:    "Unilateral pull up variation.",
			Instructions:   []string{"Pull to one side", "Straighten opposite arm", "Alternate sides"},
			CommonMistakes: []string{"Not shifting weight enough", "Using both arms equally", "Poor control"}},
		// Vertical Pull - Elite
		{Name: "One Arm Pull Up", Pillar: "Vertical Pull", SkillLevel: "Elite", ProgressionOrder: 8,
			Description:    "Ultimate pulling exercise using single arm.",
			Instructions:   []string{"Hang from one arm", "Pull chin over bar", "Lower with control"},
			CommonMistakes: []string{"Insufficient strength base", "Body swinging", "Not full range"}},
		{Name: "Weighted Pull Up", Pillar: "Vertical Pull", SkillLevel: "Elite", ProgressionOrder: 9,
			Description:    "Pull up with additional weight.",
			Instructions:   []string{"Add weight to body", "Maintain perfect form", "Full range of motion"},
			CommonMistakes: []string{"Too much weight too soon", "Compromising form", "Incomplete range"}},
		// Vertical Push - Beginner
		{Name: "Push Up", Pillar: "Vertical Push", SkillLevel: "Beginner", ProgressionOrder: 1,
			Description:    "Basic pushing exercise for chest and arms.",
			Instructions:   []string{"Plank position", "Lower chest to ground", "Push back up"},
			CommonMistakes: []string{"Sagging hips", "Not full range of motion"}},
		{Name: "Pike Push Up", Pillar: "Vertical Push", SkillLevel: "Beginner", ProgressionOrder: 2,
			Description:    "Inverted push up targeting shoulders.",
			Instructions:   []string{"Pike position", "Lower head towards ground", "Push back up"},
			CommonMistakes: []string{"Not keeping legs straight", "Going too low"}},
		{Name: "Wall Handstand", Pillar: "Vertical Push", SkillLevel: "Beginner", ProgressionOrder: 3,
			Description:    "Static handstand hold against wall.",
			Instructions:   []string{"Kick up to wall", "Hold handstand position", "Keep body straight"},
			CommonMistakes: []string{"Arching back", "Not engaging core"}},
		// Vertical Push - Advanced
		{Name: "Freestanding Handstand", Pillar: "Vertical Push", SkillLevel: "Advanced", ProgressionOrder: 6,
			Description:    "Handstand without wall support.",
			Instructions:   []string{"Kick up to handstand", "Balance without support", "Hold for time"},
			CommonMistakes: []string{"Over-balancing", "Under-balancing", "Tense shoulders"}},
		{Name: "90 Degree Push Up", Pillar: "Vertical Push", SkillLevel: "Advanced", ProgressionOrder: 7,
			Description:    "Push up with feet elevated to 90 degrees.",
			Instructions:   []string{"Feet at chest height", "Lower head to ground", "Press back up"},
			CommonMistakes: []string{"Not going deep enough", "Losing form", "Too much elevation"}},
		// Vertical Push - Elite
		{Name: "One Arm Handstand", Pillar: "Vertical Push", SkillLevel: "Elite", ProgressionOrder: 8,
			Description:    "Ultimate balance skill on one arm.",
			Instructions:   []string{"Shift weight to one arm", "Lift other arm", "Hold balance"},
			CommonMistakes: []string{"Insufficient two-arm base", "Poor weight distribution", "Rushing progression"}},
		{Name: "Planche", Pillar: "Vertical Push", SkillLevel: "Elite", ProgressionOrder: 9,
			Description:    "Horizontal body hold supported by arms.",
			Instructions:   []string{"Lean forward from plank", "Lift feet off ground", "Hold horizontal position"},
			CommonMistakes: []string{"Insufficient lean", "Not engaging properly", "Poor progression"}},
		// Core - Beginner
		{Name: "Plank", Pillar: "Core", SkillLevel: "Beginner", ProgressionOrder: 1,
			Description:    "Basic core strengthening hold.",
			Instructions:   []string{"Forearm position", "Keep body straight", "Hold for time"},
			CommonMistakes: []string{"Sagging hips", "Holding breath"}},
		{Name: "Foot Supported L-Sit", Pillar: "Core", SkillLevel: "Beginner", ProgressionOrder: 2,
			Description:    "L-sit with foot support for progression.",
			Instructions:   []string{"Sit with legs extended", "Support weight on hands", "Lift hips slightly"},
			CommonMistakes: []string{"Not engaging arms", "Leaning back"}},
		{Name: "Tuck L-Sit", Pillar: "Core", SkillLevel: "Beginner", ProgressionOrder: 3,
			Description:    "L-sit with knees tucked to chest.",
			Instructions:   []string{"Support on hands", "Tuck knees to chest", "Hold position"},
			CommonMistakes: []string{"Not lifting hips", "Rounding shoulders"}},
		// Core - Advanced
		{Name: "Human Flag", Pillar: "Core", SkillLevel: "Advanced", ProgressionOrder: 6,
			Description:    "Horizontal body hold using vertical pole.",
			Instructions:   []string{"Grip vertical pole", "Lift body horizontal", "Hold flag position"},
			CommonMistakes: []string{"Not engaging enough", "Poor grip position", "Insufficient strength"}},
		{Name: "Dragon Flag", Pillar: "Core", SkillLevel: "Advanced", ProgressionOrder: 7,
			Description:    "Full body lever on bench or bar.",
			Instructions:   []string{"Lie on bench", "Grip behind head", "Lift entire body straight"},
			CommonMistakes: []string{"Piking at hips", "Not keeping rigid", "Poor control"}},
		// Core - Elite
		{Name: "Front Lever", Pillar: "Core", SkillLevel: "Elite", ProgressionOrder: 8,
			Description:    "Horizontal body hold facing down.",
			Instructions:   []string{"Dead hang position", "Lift body horizontal", "Keep perfectly straight"},
			CommonMistakes: []string{"Sagging hips", "Bent knees", "Insufficient lat strength"}},
		{Name: "Back Lever", Pillar: "Core", SkillLevel: "Elite", ProgressionOrder: 9,
			Description:    "Horizontal body hold facing up.",
			Instructions:   []string{"Start in support", "Lower to horizontal", "Keep body straight"},
			CommonMistakes: []string{"Poor shoulder mobility", "Bent body", "Rushed progression"}},
		// Legs - Beginner
		{Name: "Assisted Squat", Pillar: "Legs", SkillLevel: "Beginner", ProgressionOrder: 1,
			Description:    "Squat with assistance for learning movement.",
			Instructions:   []string{"Hold onto support", "Lower into squat", "Stand back up"},
			CommonMistakes: []string{"Knees caving in", "Not going deep enough"}},
		{Name: "Bodyweight Squat", Pillar: "Legs", SkillLevel: "Beginner", ProgressionOrder: 2,
			Description:    "Basic unassisted squat movement.",
			Instructions:   []string{"Feet shoulder width", "Lower until thighs parallel", "Stand back up"},
			CommonMistakes: []string{"Forward lean", "Shallow depth"}},
		{Name: "Split Squat", Pillar: "Legs", SkillLevel: "Beginner", ProgressionOrder: 3,
			Description:    "Single leg squat variation.",
			Instructions:   []string{"One foot forward", "Lower rear knee", "Push back up"},
			CommonMistakes: []string{"Forward lean", "Not dropping knee"}},
		// Legs - Advanced
		{Name: "Shrimp Squat", Pillar: "Legs", SkillLevel: "Advanced", ProgressionOrder: 6,
			Description:    "Advanced single leg squat with rear foot hold.",
			Instructions:   []string{"Stand on one leg", "Grab rear foot behind", "Lower into deep squat"},
			CommonMistakes: []string{"Losing balance", "Not maintaining rear foot grip", "Insufficient flexibility"}},
		{Name: "Matrix Squat", Pillar: "Legs", SkillLevel: "Advanced", ProgressionOrder: 7,
			Description:    "Deep squat transitioning to matrix position.",
			Instructions:   []string{"Deep squat position", "Lean back dramatically", "Touch ground with hands"},
			CommonMistakes: []string{"Poor ankle mobility", "Losing balance", "Not going deep enough"}},
		// Legs - Elite
		{Name: "Jump Squat to Pistol", Pillar: "Legs", SkillLevel: "Elite", ProgressionOrder: 8,
			Description:    "Explosive jump followed by pistol squat.",
			Instructions:   []string{"Jump from deep squat", "Land in pistol position", "Control the descent"},
			CommonMistakes: []string{"Poor landing control", "Losing balance", "Insufficient power"}},
		{Name: "Weighted Pistol Squat", Pillar: "Legs", SkillLevel: "Elite", ProgressionOrder: 9,
			Description:    "Pistol squat with additional weight.",
			Instructions:   []string{"Hold weight while performing pistol", "Maintain perfect form", "Full range of motion"},
			CommonMistakes: []string{"Too much weight too soon", "Compromising form", "Poor balance"}},
	}
}
