package planner

import (
	"fmt"
	"math/rand"

	"github.com/Gull-Stack/love-rescue-sub003/internal/catalog"
	"github.com/Gull-Stack/love-rescue-sub003/internal/logger"
	"github.com/Gull-Stack/love-rescue-sub003/internal/profile"
)

const skillsPerWeek = 7

// skillDays are the days skill work lands on. Sunday stays light: the
// foundation habit plus the weekly reflection only.
var skillDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// ritualDays are the days the connection ritual repeats on.
var ritualDays = []string{"wednesday", "saturday"}

// ComposeSolo builds one user's 7-day schedule for the given week. rng
// drives only the connection-ritual pick among equally applicable
// candidates; pass a seeded source for reproducible output.
func ComposeSolo(p profile.Profile, week int, rng *rand.Rand, log *logger.Logger) WeekPlan {
	if log == nil {
		log = logger.NewNop()
	}
	log = log.With("step", "ComposeSolo", "week", week)

	plan := WeekPlan{
		Week:         week,
		Mode:         "solo",
		Days:         map[string][]Activity{},
		Introduction: BuildIntroduction(p, week),
	}

	for _, day := range catalog.DayOrder {
		f := catalog.Foundations[day]
		plan.Days[day] = append(plan.Days[day], Activity{
			ID:     fmt.Sprintf("foundation-%s", day),
			Text:   f.Task,
			Why:    f.Why,
			Expert: f.Expert,
			Type:   "foundation",
		})
	}

	var required []string
	if cat := catalog.AntidoteCategory(p.DominantHorseman); cat != "" {
		required = append(required, cat)
	}
	skills := Select(SelectOptions{
		Candidates:         skillCandidates(),
		Profile:            p,
		Week:               week,
		Count:              skillsPerWeek,
		RequiredCategories: required,
		PreferredStage:     catalog.WeekThemes[week].Stage,
		Log:                log,
	})
	for i, t := range skills {
		day := skillDays[i%len(skillDays)]
		plan.Days[day] = append(plan.Days[day], activityFrom(t))
	}

	if contains(p.FocusAreas, "communication") {
		plan.Days["thursday"] = append(plan.Days["thursday"], Activity{
			ID:     "focus-communication-curiosity",
			Text:   "In one conversation today, only ask questions for 5 minutes straight. No statements, no advice, just curious questions.",
			Why:    "Most people listen to respond, not to understand. Pure curiosity is the most powerful communication tool.",
			Expert: "voss",
			Type:   "communication",
		})
	}

	if ritual, ok := pickRitual(p, rng, log); ok {
		for _, day := range ritualDays {
			plan.Days[day] = append(plan.Days[day], activityFrom(ritual))
		}
	}

	if reflection, ok := catalog.TechniqueByID("super-weekly-review"); ok {
		plan.Days["sunday"] = append(plan.Days["sunday"], activityFrom(reflection))
	}

	plan.Goals = weeklyGoals(p, week)
	return plan
}

func skillCandidates() []catalog.Technique {
	var out []catalog.Technique
	for _, t := range catalog.Techniques {
		if t.Type == "connection_ritual" || t.Type == "reflection" {
			continue
		}
		out = append(out, t)
	}
	return out
}

// pickRitual chooses the connection ritual: a love-language match when
// one exists, otherwise a universal ritual. The pick among applicable
// candidates is uniform over rng.
func pickRitual(p profile.Profile, rng *rand.Rand, log *logger.Logger) (catalog.Technique, bool) {
	rituals := catalog.TechniquesOfType("connection_ritual")

	var matched []catalog.Technique
	if p.LoveLanguage != "" {
		for _, t := range rituals {
			if contains(t.Targets.LoveLanguages, p.LoveLanguage) {
				matched = append(matched, t)
			}
		}
	}
	if len(matched) == 0 {
		for _, t := range rituals {
			if t.Targets.AnyProfile {
				matched = append(matched, t)
			}
		}
		if p.LoveLanguage != "" {
			log.Info("No ritual for love language, using universal fallback", "love_language", p.LoveLanguage)
		}
	}
	if len(matched) == 0 {
		return catalog.Technique{}, false
	}

	idx := 0
	if rng != nil && len(matched) > 1 {
		idx = rng.Intn(len(matched))
	}
	return matched[idx], true
}

func weeklyGoals(p profile.Profile, week int) []Goal {
	goals := []Goal{
		{
			Text: "Complete every daily foundation task, even on hard days",
			Why:  "The positive-lens habit only works with repetition. Missed days reset the rewiring.",
		},
		{
			Text: "Keep your positive-to-negative interaction ratio at 5:1 or better",
			Why:  "Gottman's research found this ratio separates relationships that last from those that don't.",
		},
	}

	if theme, ok := catalog.WeekThemes[week]; ok {
		goals = append(goals, Goal{Text: theme.GoalText, Why: theme.GoalWhy})
	}

	if g, ok := horsemanGoals[p.DominantHorseman]; ok {
		goals = append(goals, g)
	}
	if profile.Insecure(p.AttachmentStyle) {
		if g, ok := attachmentGoals[p.AttachmentStyle]; ok {
			goals = append(goals, g)
		}
	}
	if contains(p.FocusAreas, "communication") {
		goals = append(goals, communicationGoal)
	}
	return goals
}

var communicationGoal = Goal{
	Text: "Go 3 conversations this week without interrupting, letting your partner finish completely before you speak",
	Why:  "Interrupting says your thoughts matter more. Waiting says you respect their voice. Small shift, massive impact.",
}

var horsemanGoals = map[string]Goal{
	"criticism": {
		Text: "Catch 3 criticisms before they leave your mouth and restate them as complaints about the situation",
		Why:  "Criticism attacks character. A complaint names a behavior and a need. Your partner can respond to one of those.",
	},
	"contempt": {
		Text: "Every time you notice an eye-roll or a sarcastic thought, immediately name one thing you respect about your partner",
		Why:  "Contempt is the strongest predictor of relationship failure. Its antidote is a culture of appreciation.",
	},
	"defensiveness": {
		Text: "In 3 disagreements this week, find the 2% of your partner's complaint that is true and say it out loud",
		Why:  "Accepting even a sliver of responsibility disarms the attack-defend spiral.",
	},
	"stonewalling": {
		Text: "When you feel yourself shutting down, say \"I need 20 minutes\" instead of going silent, and come back when you said you would",
		Why:  "An announced break is self-regulation. An unannounced one reads as abandonment.",
	},
}

var attachmentGoals = map[string]Goal{
	profile.StyleAnxious: {
		Text: "Before sending a reassurance-seeking text, wait 10 minutes and self-soothe first",
		Why:  "The pause builds the internal security that protest behavior never delivers.",
	},
	profile.StyleAvoidant: {
		Text: "Share one feeling you would normally keep to yourself, once this week",
		Why:  "Avoidant distance is a habit, not a preference. Small disclosures retrain it.",
	},
	profile.StyleFearfulAvoidant: {
		Text: "When you feel the push-pull urge, name it to yourself before acting on it",
		Why:  "Naming the pattern creates the gap where a different choice can happen.",
	},
}

func activityFrom(t catalog.Technique) Activity {
	return Activity{
		ID:       t.ID,
		Text:     t.Text,
		Why:      t.Why,
		Expert:   t.Expert,
		Type:     t.Type,
		Duration: t.Duration,
	}
}
