package planner

import (
	"math/rand"

	"github.com/Gull-Stack/love-rescue-sub003/internal/catalog"
	"github.com/Gull-Stack/love-rescue-sub003/internal/logger"
	"github.com/Gull-Stack/love-rescue-sub003/internal/profile"
)

// extraActivityDay is where pairwise-dynamic activities land.
const extraActivityDay = "thursday"

// ComposePaired builds a shared weekly plan for two partners. Their
// profiles are merged (enum fields take a's value when present,
// subscales take the minimum) and fed through the same scoring and
// selection path as solo planning. Pairwise dynamic rules then append
// insights, and in some cases one extra activity or goal, on top of
// the scored selection.
func ComposePaired(a, b profile.Profile, week int, rng *rand.Rand, log *logger.Logger) WeekPlan {
	if log == nil {
		log = logger.NewNop()
	}
	log = log.With("step", "ComposePaired", "week", week)

	merged := profile.Merge(a, b)
	plan := ComposeSolo(merged, week, rng, log)
	plan.Mode = "paired"

	applyPairDynamics(&plan, a, b, log)
	return plan
}

func applyPairDynamics(plan *WeekPlan, a, b profile.Profile, log *logger.Logger) {
	if anxiousAvoidantPair(a, b) {
		log.Info("Pairwise dynamic fired", "dynamic", "anxious_avoidant")
		plan.Insights = append(plan.Insights, Insight{
			Dynamic: "anxious_avoidant",
			Text:    "You two form the most common difficult pairing: one of you pursues connection when stressed, the other withdraws to self-regulate. Neither instinct is wrong, but they feed each other. The pursuer's reach triggers the withdrawer's retreat, which triggers harder pursuit. Your plan includes work for each side of that loop.",
		})
		appendTechnique(plan, "matchup-anxious-avoidant-for-anxious")
		plan.Goals = append(plan.Goals, Goal{
			Text: "Agree on a pause signal: when either of you feels the pursue-withdraw loop starting, name it and take 20 minutes apart with a promised return time",
			Why:  "The loop only breaks when the pursuer tolerates the pause and the withdrawer honors the return.",
		})
	}

	if sameInsecurePair(a, b) {
		log.Info("Pairwise dynamic fired", "dynamic", "same_style", "style", a.AttachmentStyle)
		plan.Insights = append(plan.Insights, Insight{
			Dynamic: "same_style",
			Text:    sameStyleInsight(a.AttachmentStyle),
		})
	}

	switch {
	case a.LoveLanguage != "" && a.LoveLanguage == b.LoveLanguage:
		plan.Insights = append(plan.Insights, Insight{
			Dynamic: "matched_love_language",
			Text:    "You share the same primary love language, which means the way you naturally give love is also the way your partner best receives it. Your risk is taking that ease for granted; keep the volume up.",
		})
	case a.LoveLanguage != "" && b.LoveLanguage != "" && a.LoveLanguage != b.LoveLanguage:
		log.Info("Pairwise dynamic fired", "dynamic", "mismatched_love_language")
		plan.Insights = append(plan.Insights, Insight{
			Dynamic: "mismatched_love_language",
			Text:    "Your primary love languages differ, so each of you has likely been giving love in your own dialect and wondering why it lands flat. This week includes deliberate practice in speaking your partner's language, not your own.",
		})
		appendTechnique(plan, "chapman-bilingual-love")
	}

	if pursuerWithdrawerPair(a, b) && !anxiousAvoidantPair(a, b) {
		plan.Insights = append(plan.Insights, Insight{
			Dynamic: "pursuer_withdrawer",
			Text:    "Your conflict pattern is a classic pursue-withdraw cycle. The content of any given argument matters less than interrupting the cycle itself, which is what the pattern work this week targets.",
		})
		appendTechnique(plan, "matchup-pursuer-withdrawer-cycle-break")
	}

	if a.DominantHorseman != "" && b.DominantHorseman != "" {
		plan.Insights = append(plan.Insights, Insight{
			Dynamic: "dual_horseman",
			Text:    "Both of you show an active destructive communication pattern, so conflicts escalate from both sides at once. The antidote work in this plan matters doubly: each of you interrupting your own pattern gives the other room to interrupt theirs.",
		})
	}
}

func anxiousAvoidantPair(a, b profile.Profile) bool {
	return (a.AttachmentStyle == profile.StyleAnxious && b.AttachmentStyle == profile.StyleAvoidant) ||
		(a.AttachmentStyle == profile.StyleAvoidant && b.AttachmentStyle == profile.StyleAnxious)
}

func sameInsecurePair(a, b profile.Profile) bool {
	return profile.Insecure(a.AttachmentStyle) && a.AttachmentStyle == b.AttachmentStyle
}

func pursuerWithdrawerPair(a, b profile.Profile) bool {
	return (a.CyclePosition == profile.PositionPursuer && b.CyclePosition == profile.PositionWithdrawer) ||
		(a.CyclePosition == profile.PositionWithdrawer && b.CyclePosition == profile.PositionPursuer)
}

func sameStyleInsight(style string) string {
	switch style {
	case profile.StyleAnxious:
		return "You are both anxious-leaning, which means you both read distance as danger. The upside: you both value closeness. The risk: reassurance-seeking from both sides can spiral into mutual protest. Practice self-soothing before seeking."
	case profile.StyleAvoidant:
		return "You are both avoidant-leaning, which can look peaceful from the outside: few fights, lots of space. The risk is parallel lives. Your plan deliberately schedules connection so distance never becomes the default."
	default:
		return "You share the same attachment pattern, so you trigger and soothe each other in mirrored ways. Use that symmetry: what calms you will usually calm your partner too."
	}
}

// appendTechnique adds a catalog item to the extra-activity day if the
// plan does not already schedule it.
func appendTechnique(plan *WeekPlan, id string) {
	for _, acts := range plan.Days {
		for _, a := range acts {
			if a.ID == id {
				return
			}
		}
	}
	if t, ok := catalog.TechniqueByID(id); ok {
		plan.Days[extraActivityDay] = append(plan.Days[extraActivityDay], activityFrom(t))
	}
}
