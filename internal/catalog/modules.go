package catalog

// Milestone is a measurable marker inside a module. Target stays a
// string; structured targets are encoded as "assessment:minDelta" style
// keys by the authoring pipeline.
type Milestone struct {
	Name   string
	Metric string
	Target string
}

// ModuleDuration describes the expected cadence of a module.
type ModuleDuration struct {
	Days             int
	ActivitiesPerDay int
	WeeklyActivities int
}

// Module is one assignable treatment unit.
type Module struct {
	ID                string
	Name              string
	Description       string
	Category          string
	CurriculumWeek    int
	Stage             string
	ExpertFrameworks  []string
	PrimaryExpert     string
	TargetAssessments []string
	Duration          ModuleDuration
	Difficulty        int
	Skills            []string
	Prerequisites     []string
	Milestones        []Milestone
}

// ModuleByID resolves a module id against the library.
func ModuleByID(id string) (Module, bool) {
	m, ok := Modules[id]
	return m, ok
}

// ModulesOfCategory lists modules in a category, in library order.
func ModulesOfCategory(category string) []Module {
	var out []Module
	for _, id := range ModuleOrder {
		if m := Modules[id]; m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// ModuleOrder fixes iteration order over the Modules map.
var ModuleOrder = []string{
	"week-1-self-awareness",
	"week-2-communication",
	"week-3-emotional-regulation",
	"week-4-cycle-mapping",
	"week-5-connection-growth",
	"week-6-integration",
	"crisis-affair-discovery",
	"crisis-separation-threat",
	"crisis-escalated-conflict",
	"crisis-emotional-flooding",
	"maintenance-morning-evening",
	"maintenance-weekly-state-of-us",
	"maintenance-progressive-deepening",
	"skill-four-horsemen",
	"skill-attachment-security",
	"skill-love-language-fluency",
	"skill-cognitive-restructuring",
	"skill-desire-maintenance",
	"skill-repair-mastery",
	"skill-shared-meaning",
}

// Modules is the assignable module library.
var Modules = map[string]Module{

	"week-1-self-awareness": {
		ID:                "week-1-self-awareness",
		Name:              "Self-Awareness & Pattern Recognition",
		Description:       "Clients identify their attachment style, emotional triggers, and default reaction patterns. Builds the foundation of self-observation without judgment.",
		Category:          "curriculum",
		CurriculumWeek:    1,
		Stage:             "assess",
		ExpertFrameworks:  []string{"levine", "johnson", "brown"},
		PrimaryExpert:     "levine",
		TargetAssessments: []string{"attachment", "eft"},
		Duration:          ModuleDuration{Days: 7, ActivitiesPerDay: 2},
		Difficulty:        1,
		Skills:            []string{"emotional-awareness", "trigger-identification", "attachment-recognition"},
		Milestones: []Milestone{
			{Name: "Attachment Style Identified", Metric: "assessment_completed", Target: "attachment"},
			{Name: "Trigger Journal Started", Metric: "activities_completed", Target: "3"},
			{Name: "Pattern Named", Metric: "reflection_submitted", Target: "1"},
		},
	},

	"week-2-communication": {
		ID:                "week-2-communication",
		Name:              "Communication Foundations",
		Description:       "Replace blame-based language with needs-based expression. Learn gentle startup, tactical empathy, and the art of listening without fixing.",
		Category:          "curriculum",
		CurriculumWeek:    2,
		Stage:             "learn",
		ExpertFrameworks:  []string{"gottman", "voss", "johnson"},
		PrimaryExpert:     "gottman",
		TargetAssessments: []string{"prep", "gottman"},
		Duration:          ModuleDuration{Days: 7, ActivitiesPerDay: 2},
		Difficulty:        2,
		Skills:            []string{"gentle-startup", "tactical-empathy", "i-statements", "active-listening"},
		Prerequisites:     []string{"week-1-self-awareness"},
		Milestones: []Milestone{
			{Name: "5 \"You\" to \"I\" Conversions", Metric: "activities_completed", Target: "5"},
			{Name: "Communication Score Improved", Metric: "assessment_delta", Target: "prep:5"},
			{Name: "Gentle Startup Practiced", Metric: "technique_used", Target: "gottman-gentle-startup"},
		},
	},

	"week-3-emotional-regulation": {
		ID:                "week-3-emotional-regulation",
		Name:              "Emotional Regulation & Horsemen Antidotes",
		Description:       "Master the 6-second pause, identify your dominant horseman, and learn its specific antidote. Build the muscle between trigger and response.",
		Category:          "curriculum",
		CurriculumWeek:    3,
		Stage:             "practice",
		ExpertFrameworks:  []string{"gottman", "johnson", "brown"},
		PrimaryExpert:     "gottman",
		TargetAssessments: []string{"gottman"},
		Duration:          ModuleDuration{Days: 7, ActivitiesPerDay: 3},
		Difficulty:        3,
		Skills:            []string{"six-second-pause", "horseman-antidotes", "self-soothing", "flooding-protocol"},
		Prerequisites:     []string{"week-2-communication"},
		Milestones: []Milestone{
			{Name: "6-Second Pause Used 3x", Metric: "technique_used_count", Target: "six-second-pause:3"},
			{Name: "Dominant Horseman Antidote Practiced", Metric: "activities_completed", Target: "3"},
			{Name: "Conflict Score Improved", Metric: "assessment_delta", Target: "gottman.conflict:5"},
		},
	},

	"week-4-cycle-mapping": {
		ID:                "week-4-cycle-mapping",
		Name:              "Understanding Your Cycle",
		Description:       "Map the pursue-withdraw pattern in your relationship. Name each step without blame. Once you see the cycle, you can interrupt it.",
		Category:          "curriculum",
		CurriculumWeek:    4,
		Stage:             "practice",
		ExpertFrameworks:  []string{"johnson", "gottman", "levine"},
		PrimaryExpert:     "johnson",
		TargetAssessments: []string{"eft", "attachment"},
		Duration:          ModuleDuration{Days: 7, ActivitiesPerDay: 2},
		Difficulty:        3,
		Skills:            []string{"cycle-identification", "de-escalation", "softening", "emotional-accessibility"},
		Prerequisites:     []string{"week-3-emotional-regulation"},
		Milestones: []Milestone{
			{Name: "Cycle Mapped on Paper", Metric: "reflection_submitted", Target: "1"},
			{Name: "One Cycle Interrupted", Metric: "technique_used", Target: "cycle-interruption"},
			{Name: "Attachment Needs Expressed", Metric: "activities_completed", Target: "3"},
		},
	},

	"week-5-connection-growth": {
		ID:                "week-5-connection-growth",
		Name:              "Connection Rituals & Personal Growth",
		Description:       "Build daily rituals that speak your love language. Reclaim individual identity and desire. Bridge Gottman's connection science with Perel's aliveness.",
		Category:          "curriculum",
		CurriculumWeek:    5,
		Stage:             "practice",
		ExpertFrameworks:  []string{"gottman", "perel", "chapman", "robbins"},
		PrimaryExpert:     "chapman",
		TargetAssessments: []string{"love_language", "gottman"},
		Duration:          ModuleDuration{Days: 7, ActivitiesPerDay: 3},
		Difficulty:        3,
		Skills:            []string{"ritual-building", "love-language-translation", "desire-maintenance", "identity-growth"},
		Prerequisites:     []string{"week-4-cycle-mapping"},
		Milestones: []Milestone{
			{Name: "Connection Ritual Established", Metric: "ritual_created", Target: "1"},
			{Name: "Partner Love Language Practiced", Metric: "activities_completed", Target: "5"},
			{Name: "Friendship Score Improved", Metric: "assessment_delta", Target: "gottman.friendship:5"},
		},
	},

	"week-6-integration": {
		ID:                "week-6-integration",
		Name:              "Integration & Identity Transformation",
		Description:       "Lock in new patterns as identity. Write your relationship manifesto. Retake assessments and celebrate measurable growth.",
		Category:          "curriculum",
		CurriculumWeek:    6,
		Stage:             "transform",
		ExpertFrameworks:  []string{"robbins", "gottman", "perel", "johnson"},
		PrimaryExpert:     "robbins",
		TargetAssessments: []string{"attachment", "gottman", "eft", "prep", "love_language"},
		Duration:          ModuleDuration{Days: 7, ActivitiesPerDay: 2},
		Difficulty:        4,
		Skills:            []string{"identity-shift", "manifesto-writing", "shared-meaning", "progress-measurement"},
		Prerequisites:     []string{"week-5-connection-growth"},
		Milestones: []Milestone{
			{Name: "Identity Manifesto Written", Metric: "reflection_submitted", Target: "1"},
			{Name: "Assessments Retaken", Metric: "assessment_completed", Target: "all"},
			{Name: "Overall Score Improvement", Metric: "assessment_delta", Target: "gottman:10"},
		},
	},

	"crisis-affair-discovery": {
		ID:                "crisis-affair-discovery",
		Name:              "Affair Discovery Protocol",
		Description:       "Immediate stabilization after discovery of infidelity. Self-regulation first, then structured processing. No decisions in acute distress.",
		Category:          "crisis",
		Stage:             "assess",
		ExpertFrameworks:  []string{"johnson", "brown", "gottman"},
		PrimaryExpert:     "johnson",
		TargetAssessments: []string{"eft", "attachment"},
		Duration:          ModuleDuration{Days: 14, ActivitiesPerDay: 2},
		Difficulty:        5,
		Skills:            []string{"crisis-stabilization", "shame-resilience", "trauma-processing", "boundary-setting"},
		Milestones: []Milestone{
			{Name: "Nervous System Stabilized", Metric: "mood_stability", Target: "three_consecutive_stable_days"},
			{Name: "Story Named Without Blame", Metric: "reflection_submitted", Target: "1"},
			{Name: "Support System Activated", Metric: "activities_completed", Target: "3"},
		},
	},

	"crisis-separation-threat": {
		ID:                "crisis-separation-threat",
		Name:              "Separation Threat Response",
		Description:       "When divorce or separation is on the table. De-escalation, creating safety, making space for the fear underneath the threat.",
		Category:          "crisis",
		Stage:             "assess",
		ExpertFrameworks:  []string{"johnson", "gottman", "voss"},
		PrimaryExpert:     "johnson",
		TargetAssessments: []string{"eft", "gottman"},
		Duration:          ModuleDuration{Days: 14, ActivitiesPerDay: 2},
		Difficulty:        5,
		Skills:            []string{"de-escalation", "needs-expression", "safety-building", "tactical-empathy"},
		Milestones: []Milestone{
			{Name: "Immediate Crisis De-escalated", Metric: "crisis_level_decreased", Target: "true"},
			{Name: "Underlying Fear Named", Metric: "reflection_submitted", Target: "1"},
			{Name: "Temporary Agreement Reached", Metric: "activities_completed", Target: "3"},
		},
	},

	"crisis-escalated-conflict": {
		ID:                "crisis-escalated-conflict",
		Name:              "Conflict Escalation Protocol",
		Description:       "After a fight spirals out of control. Flooding recovery, repair attempts, and rebuilding safety after rupture.",
		Category:          "crisis",
		Stage:             "assess",
		ExpertFrameworks:  []string{"gottman", "voss", "johnson"},
		PrimaryExpert:     "gottman",
		TargetAssessments: []string{"gottman"},
		Duration:          ModuleDuration{Days: 7, ActivitiesPerDay: 2},
		Difficulty:        4,
		Skills:            []string{"flooding-recovery", "repair-attempts", "self-soothing", "announced-breaks"},
		Milestones: []Milestone{
			{Name: "Self-Soothing Practiced", Metric: "technique_used", Target: "self-soothing"},
			{Name: "Repair Attempted", Metric: "technique_used", Target: "repair-attempt"},
			{Name: "Safety Restored", Metric: "mood_stability", Target: "two_consecutive_stable_days"},
		},
	},

	"crisis-emotional-flooding": {
		ID:                "crisis-emotional-flooding",
		Name:              "Emotional Flooding Recovery",
		Description:       "When the nervous system is overwhelmed and rational thinking goes offline. Body-first regulation, then gradual re-engagement.",
		Category:          "crisis",
		Stage:             "assess",
		ExpertFrameworks:  []string{"gottman", "johnson", "brown"},
		PrimaryExpert:     "gottman",
		TargetAssessments: []string{"gottman", "eft"},
		Duration:          ModuleDuration{Days: 5, ActivitiesPerDay: 2},
		Difficulty:        3,
		Skills:            []string{"physiological-soothing", "grounding", "announced-breaks", "co-regulation"},
		Milestones: []Milestone{
			{Name: "Flooding Protocol Used", Metric: "technique_used", Target: "flooding-protocol"},
			{Name: "Announced Break Script Practiced", Metric: "activities_completed", Target: "2"},
			{Name: "Re-engagement Successful", Metric: "activities_completed", Target: "3"},
		},
	},

	"maintenance-morning-evening": {
		ID:                "maintenance-morning-evening",
		Name:              "Daily Connection Rituals",
		Description:       "Morning check-in plus evening gratitude. The daily scaffolding that maintains gains after the curriculum ends.",
		Category:          "maintenance",
		Stage:             "transform",
		ExpertFrameworks:  []string{"gottman", "chapman", "johnson"},
		PrimaryExpert:     "gottman",
		TargetAssessments: []string{"gottman"},
		Duration:          ModuleDuration{Days: 84, ActivitiesPerDay: 2},
		Difficulty:        1,
		Skills:            []string{"love-maps", "fondness-admiration", "gratitude-practice"},
		Prerequisites:     []string{"week-6-integration"},
		Milestones: []Milestone{
			{Name: "7-Day Streak", Metric: "streak", Target: "7"},
			{Name: "30-Day Streak", Metric: "streak", Target: "30"},
			{Name: "Ritual Feels Natural", Metric: "self_report", Target: "habitual"},
		},
	},

	"maintenance-weekly-state-of-us": {
		ID:                "maintenance-weekly-state-of-us",
		Name:              "Weekly State of Us",
		Description:       "15-minute weekly check-in: what went well, what to own, what to request. Prevents erosion by keeping the conversation alive.",
		Category:          "maintenance",
		Stage:             "transform",
		ExpertFrameworks:  []string{"perel", "gottman", "brown"},
		PrimaryExpert:     "perel",
		TargetAssessments: []string{"gottman"},
		Duration:          ModuleDuration{Days: 84, WeeklyActivities: 1},
		Difficulty:        2,
		Skills:            []string{"structured-check-in", "ownership", "request-making", "repair"},
		Prerequisites:     []string{"week-6-integration"},
		Milestones: []Milestone{
			{Name: "4 Consecutive Weeks", Metric: "weekly_completion_streak", Target: "4"},
			{Name: "Both Partners Participating", Metric: "couple_participation", Target: "true"},
			{Name: "Proactive Repair Happening", Metric: "self_report", Target: "proactive"},
		},
	},

	"maintenance-progressive-deepening": {
		ID:                "maintenance-progressive-deepening",
		Name:              "12-Week Progressive Deepening",
		Description:       "The full 12-week maintenance program: building habits, then vulnerability, then stretching comfort zones. Rituals evolve each week.",
		Category:          "maintenance",
		Stage:             "transform",
		ExpertFrameworks:  []string{"gottman", "perel", "johnson", "brown", "chapman"},
		PrimaryExpert:     "gottman",
		TargetAssessments: []string{"gottman", "eft", "attachment"},
		Duration:          ModuleDuration{Days: 84, ActivitiesPerDay: 2, WeeklyActivities: 1},
		Difficulty:        3,
		Skills:            []string{"vulnerability", "repair", "novelty", "curiosity", "earned-security"},
		Prerequisites:     []string{"week-6-integration"},
		Milestones: []Milestone{
			{Name: "Vulnerability Introduced (Week 4)", Metric: "week_reached", Target: "4"},
			{Name: "Repair Mastered (Week 6)", Metric: "week_reached", Target: "6"},
			{Name: "Self-Designed Ritual (Week 12)", Metric: "ritual_created", Target: "1"},
		},
	},

	"skill-four-horsemen": {
		ID:                "skill-four-horsemen",
		Name:              "Four Horsemen Detox",
		Description:       "Intensive focus on identifying and replacing criticism, contempt, defensiveness, and stonewalling with their research-backed antidotes.",
		Category:          "skill",
		Stage:             "practice",
		ExpertFrameworks:  []string{"gottman"},
		PrimaryExpert:     "gottman",
		TargetAssessments: []string{"gottman"},
		Duration:          ModuleDuration{Days: 14, ActivitiesPerDay: 2},
		Difficulty:        3,
		Skills:            []string{"horseman-identification", "complaint-vs-criticism", "appreciation-culture", "responsibility-taking", "self-soothing"},
		Prerequisites:     []string{"week-1-self-awareness"},
		Milestones: []Milestone{
			{Name: "All Four Horsemen Identified", Metric: "activities_completed", Target: "4"},
			{Name: "Dominant Horseman Antidote Score Improved", Metric: "assessment_delta", Target: "gottman.horsemen:10"},
			{Name: "5:1 Ratio Achieved for 3 Days", Metric: "ratio_tracked", Target: "5:3"},
		},
	},

	"skill-attachment-security": {
		ID:                "skill-attachment-security",
		Name:              "Earned Security Building",
		Description:       "For insecure attachment styles: build earned security through structured vulnerability, consistent responsiveness, and A.R.E. practice.",
		Category:          "skill",
		Stage:             "practice",
		ExpertFrameworks:  []string{"johnson", "levine", "brown"},
		PrimaryExpert:     "johnson",
		TargetAssessments: []string{"attachment", "eft"},
		Duration:          ModuleDuration{Days: 21, ActivitiesPerDay: 2},
		Difficulty:        4,
		Skills:            []string{"accessibility", "responsiveness", "engagement", "protest-behavior-recognition", "vulnerability"},
		Prerequisites:     []string{"week-1-self-awareness"},
		Milestones: []Milestone{
			{Name: "Attachment Needs Articulated", Metric: "reflection_submitted", Target: "1"},
			{Name: "A.R.E. Conversation Completed", Metric: "technique_used", Target: "are-conversation"},
			{Name: "Attachment Security Increased", Metric: "assessment_delta", Target: "attachment:toward_secure"},
		},
	},

	"skill-love-language-fluency": {
		ID:                "skill-love-language-fluency",
		Name:              "Love Language Fluency",
		Description:       "Learn to express love in your partner's primary language, not just your own. Daily practice translating intention into their felt experience.",
		Category:          "skill",
		Stage:             "practice",
		ExpertFrameworks:  []string{"chapman", "gottman"},
		PrimaryExpert:     "chapman",
		TargetAssessments: []string{"love_language", "gottman"},
		Duration:          ModuleDuration{Days: 14, ActivitiesPerDay: 2},
		Difficulty:        2,
		Skills:            []string{"language-identification", "cross-language-expression", "partner-attunement"},
		Milestones: []Milestone{
			{Name: "Partner Language Identified", Metric: "assessment_completed", Target: "love_language"},
			{Name: "7 Days of Partner-Language Expression", Metric: "streak", Target: "7"},
			{Name: "Partner Reports Feeling Loved", Metric: "self_report", Target: "felt_loved"},
		},
	},

	"skill-cognitive-restructuring": {
		ID:                "skill-cognitive-restructuring",
		Name:              "Cognitive Restructuring for Couples",
		Description:       "Identify and challenge negative thought patterns about your partner and relationship. Replace cognitive distortions with evidence-based reframes.",
		Category:          "skill",
		Stage:             "learn",
		ExpertFrameworks:  []string{"gottman", "robbins", "brown"},
		PrimaryExpert:     "gottman",
		TargetAssessments: []string{"gottman", "prep"},
		Duration:          ModuleDuration{Days: 14, ActivitiesPerDay: 2},
		Difficulty:        3,
		Skills:            []string{"thought-record", "cognitive-distortion-identification", "reframing", "positive-sentiment-override"},
		Prerequisites:     []string{"week-1-self-awareness"},
		Milestones: []Milestone{
			{Name: "Thought Record Completed 5x", Metric: "activities_completed", Target: "5"},
			{Name: "Top 3 Distortions Identified", Metric: "reflection_submitted", Target: "1"},
			{Name: "Positive Sentiment Override Active", Metric: "assessment_delta", Target: "gottman.friendship:5"},
		},
	},

	"skill-desire-maintenance": {
		ID:                "skill-desire-maintenance",
		Name:              "Desire & Erotic Intelligence",
		Description:       "Perel's framework for maintaining desire in committed relationships. Balance security and novelty. Rediscover your partner as a separate, fascinating person.",
		Category:          "skill",
		Stage:             "practice",
		ExpertFrameworks:  []string{"perel", "robbins"},
		PrimaryExpert:     "perel",
		TargetAssessments: []string{"gottman"},
		Duration:          ModuleDuration{Days: 14, ActivitiesPerDay: 1},
		Difficulty:        4,
		Skills:            []string{"curiosity", "novelty-creation", "mystery-maintenance", "individual-identity"},
		Prerequisites:     []string{"week-4-cycle-mapping"},
		Milestones: []Milestone{
			{Name: "Curiosity Conversation Held", Metric: "technique_used", Target: "curiosity-question"},
			{Name: "Novel Experience Shared", Metric: "activities_completed", Target: "2"},
			{Name: "Desire Check-In Practiced", Metric: "activities_completed", Target: "3"},
		},
	},

	"skill-repair-mastery": {
		ID:                "skill-repair-mastery",
		Name:              "Repair Attempt Mastery",
		Description:       "The speed and success of repair predicts relationship health better than the absence of conflict. Master 12 repair moves and learn to accept your partner's.",
		Category:          "skill",
		Stage:             "practice",
		ExpertFrameworks:  []string{"gottman", "voss", "johnson"},
		PrimaryExpert:     "gottman",
		TargetAssessments: []string{"gottman"},
		Duration:          ModuleDuration{Days: 14, ActivitiesPerDay: 2},
		Difficulty:        3,
		Skills:            []string{"repair-initiation", "repair-acceptance", "humor", "de-escalation", "ownership"},
		Prerequisites:     []string{"week-3-emotional-regulation"},
		Milestones: []Milestone{
			{Name: "Repair Inventory Completed", Metric: "activities_completed", Target: "1"},
			{Name: "Same-Day Repair 5x", Metric: "technique_used_count", Target: "repair-attempt:5"},
			{Name: "Repair Acceptance Rate >70%", Metric: "self_report", Target: "repair_accepted_70pct"},
		},
	},

	"skill-shared-meaning": {
		ID:                "skill-shared-meaning",
		Name:              "Shared Meaning & Legacy",
		Description:       "Build a shared narrative: rituals, roles, goals, and symbols that define who you are as a couple. The top of Gottman's Sound Relationship House.",
		Category:          "skill",
		Stage:             "transform",
		ExpertFrameworks:  []string{"gottman", "robbins", "perel"},
		PrimaryExpert:     "gottman",
		TargetAssessments: []string{"gottman"},
		Duration:          ModuleDuration{Days: 14, ActivitiesPerDay: 1},
		Difficulty:        4,
		Skills:            []string{"ritual-creation", "role-negotiation", "goal-alignment", "legacy-building"},
		Prerequisites:     []string{"week-5-connection-growth"},
		Milestones: []Milestone{
			{Name: "Shared Rituals Defined", Metric: "activities_completed", Target: "3"},
			{Name: "Mission Statement Written", Metric: "reflection_submitted", Target: "1"},
			{Name: "Meaning Score Improved", Metric: "assessment_delta", Target: "gottman.meaning:5"},
		},
	},
}
