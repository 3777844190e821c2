package catalog

// Foundation is the non-negotiable positive-lens habit that opens every
// day of every week.
type Foundation struct {
	Task   string
	Why    string
	Expert string
}

// DayOrder fixes the plan's day iteration order.
var DayOrder = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Foundations is the per-day positive-lens table. Every day starts with
// seeing the good; the repetition is the point.
var Foundations = map[string]Foundation{
	"monday":    {Task: "Write down 3 specific things your partner did right this weekend — be detailed, not generic", Why: "Training your brain to scan for positives instead of negatives. The more you look for good, the more you find.", Expert: "gottman"},
	"tuesday":   {Task: "Send your partner a text right now appreciating something specific they did recently", Why: "Gottman research: couples who express 5 positive interactions for every 1 negative have lasting relationships.", Expert: "gottman"},
	"wednesday": {Task: "Catch yourself in one negative thought about your partner today — pause and find what's true AND good about them in that moment", Why: "You can't control your first thought, but you can control your second. This is the reframe muscle.", Expert: "brown"},
	"thursday":  {Task: "At dinner, share one thing your partner does that makes your life easier — something you usually take for granted", Why: "Gratitude spoken out loud is 10x more powerful than gratitude kept inside. Let them hear it.", Expert: "gottman"},
	"friday":    {Task: "Look back at your week and write down your partner's best moment — the time they showed up, even in a small way", Why: "Your memory is biased toward negatives. This exercise corrects the record.", Expert: "gottman"},
	"saturday":  {Task: "Give one genuine, unexpected compliment before noon — not about appearance, about character", Why: "Character compliments build deeper connection than surface ones.", Expert: "chapman"},
	"sunday":    {Task: "Write a 3-sentence \"gratitude snapshot\" of your partner this week and share it with them", Why: "Weekly reflection cements the positive lens habit. Sharing it creates a virtuous cycle.", Expert: "gottman"},
}

// WeekTheme carries the curriculum framing for one of the six weeks.
type WeekTheme struct {
	Week      int
	Title     string
	Stage     string
	Theme     string
	Narrative string
	GoalText  string
	GoalWhy   string
}

// WeekThemes defines the six-week arc. Stage names line up with the
// technique library's stage tags.
var WeekThemes = map[int]WeekTheme{
	1: {
		Week:      1,
		Title:     "Self-Awareness",
		Stage:     "assess",
		Theme:     "Know YOUR patterns",
		Narrative: "Before you can improve your relationship, you must understand one truth: you can only change yourself. This week is about seeing your own patterns clearly — triggers, reactions, and the needs hiding underneath them.",
		GoalText:  "Write down 3 moments this week where you felt triggered — name the emotion underneath the reaction (anger usually hides hurt or fear)",
		GoalWhy:   "Self-awareness is step 1. You can't change a pattern you can't see.",
	},
	2: {
		Week:      2,
		Title:     "Communication",
		Stage:     "learn",
		Theme:     "Say what you mean without blame",
		Narrative: "This week you replace blame-based language with needs-based expression. The words change first; the conversations change next.",
		GoalText:  "Replace 5 \"You always/never...\" statements with \"I feel ___ when ___ because I need ___\"",
		GoalWhy:   "\"You\" statements trigger defensiveness. \"I\" statements invite understanding. Same message, completely different reception.",
	},
	3: {
		Week:      3,
		Title:     "Emotional Regulation",
		Stage:     "practice",
		Theme:     "Control YOUR reaction",
		Narrative: "This week is about the space between trigger and response. You'll build the physiological skills to stay present when your body wants to fight or flee.",
		GoalText:  "Use the 6-second pause technique 3 times this week: feel the trigger, breathe for 6 seconds, THEN respond",
		GoalWhy:   "It takes 6 seconds for stress hormones to pass through your brain. Those 6 seconds are where you choose who you want to be.",
	},
	4: {
		Week:      4,
		Title:     "Understanding Patterns",
		Stage:     "practice",
		Theme:     "See the cycle",
		Narrative: "Most couples have the same 3-5 fights on repeat. This week you map the cycle — and once you can see it, you can interrupt it.",
		GoalText:  "Map one recurring argument: what triggers it, what you each do, how it ends, and what you both actually needed",
		GoalWhy:   "Once you see the cycle, you can interrupt it.",
	},
	5: {
		Week:      5,
		Title:     "Personal Growth",
		Stage:     "practice",
		Theme:     "Become the partner you want to be",
		Narrative: "This week shifts from fixing problems to building the relationship you want. Rituals, language fluency, and a clear picture of who you're becoming.",
		GoalText:  "Write a 1-paragraph description of the partner you want to be in 1 year — specific behaviors, not vague aspirations",
		GoalWhy:   "Vision precedes change. If you can't describe it clearly, you can't build toward it.",
	},
	6: {
		Week:      6,
		Title:     "Integration",
		Stage:     "transform",
		Theme:     "Lock in the habits",
		Narrative: "The final week makes the new patterns identity. You'll write your commitments down, retake your assessments, and see the growth in numbers.",
		GoalText:  "Write a \"relationship contract with yourself\" — 3 commitments YOU will keep regardless of what your partner does",
		GoalWhy:   "You work on YOU. Not as leverage, not to earn something — because you decided who you want to be.",
	},
}
