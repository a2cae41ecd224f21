package seed

import "github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/domain"

var audioFixtures = []domain.AudioContent{
	{
		Title:       "Ocean Waves Meditation",
		Description: "Calming ocean sounds to help you relax and find inner peace",
		Category:    domain.AudioCategoryNatureSounds,
		AudioURL:    "/sample-audio/ocean-waves.mp3",
		Duration:    1800,
		Artist:      "Nature Sounds",
		Tags:        []string{"relaxation", "meditation", "ocean", "calm"},
	},
	{
		Title:       "Daily Affirmations for Success",
		Description: "Positive affirmations to start your day with confidence",
		Category:    domain.AudioCategoryAffirmations,
		AudioURL:    "/sample-audio/daily-affirmations.mp3",
		Duration:    900,
		Artist:      "CalmNest Team",
		Tags:        []string{"motivation", "success", "confidence", "morning"},
	},
	{
		Title:       "Stress Relief Classical Music",
		Description: "Beautiful classical compositions for stress relief",
		Category:    domain.AudioCategoryMusic,
		AudioURL:    "/sample-audio/classical-stress-relief.mp3",
		Duration:    2700,
		Artist:      "Various Artists",
		Tags:        []string{"classical", "stress-relief", "peaceful"},
	},
	{
		Title:       "Mindfulness Meditation Podcast",
		Description: "Learn the basics of mindfulness meditation",
		Category:    domain.AudioCategoryPodcast,
		AudioURL:    "/sample-audio/mindfulness-podcast.mp3",
		Duration:    1200,
		Artist:      "Dr. Sarah Johnson",
		Tags:        []string{"mindfulness", "meditation", "education"},
	},
	{
		Title:       "Rain Forest Sounds",
		Description: "Natural rainforest ambiance for deep relaxation",
		Category:    domain.AudioCategoryNatureSounds,
		AudioURL:    "/sample-audio/rainforest.mp3",
		Duration:    3600,
		Artist:      "Nature Sounds",
		Tags:        []string{"nature", "rain", "forest", "ambient"},
	},
}

var readingFixtures = []domain.ReadingContent{
	{
		Title:    "Daily Motivation Quote",
		Content:  "The only way to do great work is to love what you do. - Steve Jobs",
		Category: domain.ReadingCategoryQuotes,
		Author:   "Steve Jobs",
		Tags:     []string{"motivation", "work", "success"},
	},
	{
		Title: "5 Ways to Reduce Stress",
		Content: "Stress is a common part of life, but it doesn't have to control you. " +
			"Practice deep breathing, exercise regularly, practice mindfulness, get quality sleep, " +
			"and connect with others. Managing stress is a skill that improves with practice.",
		Category: domain.ReadingCategoryArticles,
		Author:   "CalmNest Team",
		Tags:     []string{"stress-management", "wellness", "mental-health"},
	},
	{
		Title:    "The Power of Positive Thinking",
		Content:  "Keep your face always toward the sunshine—and shadows will fall behind you. - Walt Whitman",
		Category: domain.ReadingCategoryQuotes,
		Author:   "Walt Whitman",
		Tags:     []string{"positivity", "optimism", "inspiration"},
	},
	{
		Title: "Self-Love Affirmations",
		Content: "I am worthy of love and respect. I accept myself completely as I am. " +
			"I treat myself with kindness and compassion. I deserve happiness and peace.",
		Category: domain.ReadingCategoryAffirmations,
		Author:   "CalmNest Team",
		Tags:     []string{"self-love", "affirmations", "confidence"},
	},
	{
		Title: "The Peaceful Garden",
		Content: "In a quiet corner of the world, there lived an old gardener named Maya. " +
			"Every morning, she would tend to her garden with gentle hands and a peaceful heart. " +
			"\"The secret is not in fighting the storms, but in learning to dance in the rain.\"",
		Category: domain.ReadingCategoryStories,
		Author:   "CalmNest Team",
		Tags:     []string{"peace", "mindfulness", "inspiration", "story"},
	},
}

var yogaFixtures = []domain.YogaContent{
	{
		Title:       "Morning Sun Salutation",
		Description: "Start your day with this energizing sequence of yoga poses",
		VideoURL:    "/sample-videos/sun-salutation.mp4",
		ImageURL:    "/sample-images/sun-salutation.jpg",
		Instructions: []string{
			"Start in Mountain Pose (Tadasana)",
			"Inhale and sweep arms overhead",
			"Exhale and fold forward into Uttanasana",
			"Step back into Plank and lower to Chaturanga",
			"Inhale into Upward Facing Dog",
			"Exhale into Downward Facing Dog",
			"Hold for 5 breaths, step forward and repeat",
		},
		Duration:   15,
		Difficulty: domain.DifficultyBeginner,
		Category:   domain.YogaCategoryFullRoutine,
		Benefits: []string{
			"Increases energy and focus",
			"Improves flexibility",
			"Reduces stress and anxiety",
		},
	},
	{
		Title:       "Deep Breathing Exercise",
		Description: "Simple breathing technique to calm your mind and reduce stress",
		ImageURL:    "/sample-images/breathing-exercise.jpg",
		Instructions: []string{
			"Sit comfortably with your back straight",
			"Breathe in slowly through your nose for 4 counts",
			"Hold your breath for 4 counts",
			"Exhale slowly through your mouth for 6 counts",
			"Repeat for 10-15 cycles",
		},
		Duration:   10,
		Difficulty: domain.DifficultyBeginner,
		Category:   domain.YogaCategoryBreathing,
		Benefits: []string{
			"Reduces stress and anxiety",
			"Improves focus and concentration",
			"Promotes better sleep",
		},
	},
	{
		Title:       "Gentle Neck and Shoulder Stretches",
		Description: "Release tension from your neck and shoulders with these gentle stretches",
		ImageURL:    "/sample-images/neck-stretches.jpg",
		Instructions: []string{
			"Sit tall with shoulders relaxed",
			"Slowly tilt your head to each side, holding 15 seconds",
			"Roll your shoulders backward and forward 5 times",
			"Breathe deeply throughout",
		},
		Duration:   8,
		Difficulty: domain.DifficultyBeginner,
		Category:   domain.YogaCategoryStretching,
		Benefits: []string{
			"Relieves neck and shoulder tension",
			"Improves posture",
			"Perfect for desk workers",
		},
	},
	{
		Title:       "Evening Relaxation Sequence",
		Description: "Wind down with this calming yoga sequence perfect for bedtime",
		VideoURL:    "/sample-videos/evening-yoga.mp4",
		ImageURL:    "/sample-images/evening-yoga.jpg",
		Instructions: []string{
			"Begin in Child's Pose, breathe deeply",
			"Move into gentle Cat-Cow stretches",
			"Transition to Seated Forward Fold",
			"End in Savasana for 5-10 minutes",
		},
		Duration:   20,
		Difficulty: domain.DifficultyBeginner,
		Category:   domain.YogaCategoryFullRoutine,
		Benefits: []string{
			"Promotes better sleep",
			"Releases physical tension",
			"Calms the nervous system",
		},
	},
	{
		Title:       "Mindful Meditation Sitting",
		Description: "Learn proper posture and technique for mindfulness meditation",
		ImageURL:    "/sample-images/meditation-pose.jpg",
		Instructions: []string{
			"Choose a quiet, comfortable space",
			"Sit with your spine straight but not rigid",
			"Close your eyes and notice your natural breath",
			"When thoughts arise, gently return to breath",
			"Start with 5 minutes, gradually increase",
		},
		Duration:   25,
		Difficulty: domain.DifficultyIntermediate,
		Category:   domain.YogaCategoryMeditation,
		Benefits: []string{
			"Enhances emotional regulation",
			"Increases self-awareness",
			"Promotes inner peace",
		},
	},
}
