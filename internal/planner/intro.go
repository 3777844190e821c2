package planner

import (
	"github.com/Gull-Stack/love-rescue-sub003/internal/catalog"
	"github.com/Gull-Stack/love-rescue-sub003/internal/profile"
)

// BuildIntroduction assembles the week's framing text from fixed
// templates keyed by week and profile fields. Deterministic: same
// profile and week, same text.
func BuildIntroduction(p profile.Profile, week int) Introduction {
	theme := catalog.WeekThemes[week]
	intro := Introduction{
		Week:  week,
		Title: theme.Title,
		Stage: theme.Stage,
		Theme: theme.Theme,
	}
	if theme.Narrative != "" {
		intro.Paragraphs = append(intro.Paragraphs, theme.Narrative)
	}
	if para, ok := attachmentIntros[p.AttachmentStyle]; ok {
		intro.Paragraphs = append(intro.Paragraphs, para)
	}
	if para, ok := horsemanIntros[p.DominantHorseman]; ok {
		intro.Paragraphs = append(intro.Paragraphs, para)
	}
	return intro
}

var attachmentIntros = map[string]string{
	profile.StyleSecure:          "Your assessments show a secure attachment base. This week's work builds on that stability: use it to lead the harder conversations rather than waiting for them.",
	profile.StyleAnxious:         "Your assessments show an anxious attachment pattern. When closeness feels uncertain, your system sounds an alarm and pushes you to pursue. This week's activities include specific tools for calming that alarm yourself, so connection comes from choice rather than fear.",
	profile.StyleAvoidant:        "Your assessments show an avoidant attachment pattern. Under stress, your instinct is to create distance and handle things alone. This week's activities practice staying present a little longer than feels comfortable. Distance protected you once; it costs you now.",
	profile.StyleFearfulAvoidant: "Your assessments show a mixed attachment pattern: you crave closeness and fear it at the same time. That push-pull is exhausting and confusing for both of you. This week's activities work on noticing which side is driving before you act.",
}

var horsemanIntros = map[string]string{
	"criticism":     "Your conflict assessment flags criticism as your most active destructive pattern. Several of this week's activities target the shift from attacking character to naming a behavior and the need behind it.",
	"contempt":      "Your conflict assessment flags contempt as your most active destructive pattern. It is the single strongest predictor of relationship failure, which is why this week leans hard on rebuilding a culture of appreciation.",
	"defensiveness": "Your conflict assessment flags defensiveness as your most active destructive pattern. This week you practice the counterintuitive move: finding the part of the complaint that is true before explaining your side.",
	"stonewalling":  "Your conflict assessment flags stonewalling as your most active destructive pattern. Shutting down is usually flooding, not indifference, so this week's activities focus on announced breaks and physiological self-soothing.",
}
