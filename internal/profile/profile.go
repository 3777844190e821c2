package profile

// Profile is the canonical extracted relationship profile. Enum fields
// hold a validated domain value or "" when unknown. Subscales holds only
// the scores that were actually present (0-100).
type Profile struct {
	AttachmentStyle       string         `json:"attachmentStyle,omitempty"`
	LoveLanguage          string         `json:"loveLanguage,omitempty"`
	LoveLanguageSecondary string         `json:"loveLanguageSecondary,omitempty"`
	CyclePosition         string         `json:"cyclePosition,omitempty"`
	DominantHorseman      string         `json:"dominantHorseman,omitempty"`
	Subscales             map[string]int `json:"subscales,omitempty"`
	FocusAreas            []string       `json:"focusAreas,omitempty"`
	Strengths             []string       `json:"strengths,omitempty"`
}

const (
	StyleSecure          = "secure"
	StyleAnxious         = "anxious"
	StyleAvoidant        = "avoidant"
	StyleFearfulAvoidant = "fearful_avoidant"

	PositionPursuer    = "pursuer"
	PositionWithdrawer = "withdrawer"
	PositionBalanced   = "balanced"
)

var attachmentStyles = map[string]bool{
	StyleSecure:          true,
	StyleAnxious:         true,
	StyleAvoidant:        true,
	StyleFearfulAvoidant: true,
}

var loveLanguages = map[string]bool{
	"words_of_affirmation": true,
	"acts_of_service":      true,
	"quality_time":         true,
	"physical_touch":       true,
	"receiving_gifts":      true,
}

var cyclePositions = map[string]bool{
	PositionPursuer:    true,
	PositionWithdrawer: true,
	PositionBalanced:   true,
}

var horsemen = map[string]bool{
	"criticism":     true,
	"contempt":      true,
	"defensiveness": true,
	"stonewalling":  true,
}

// Alias maps absorb the label drift across client versions. Keys are
// already normalized (lowercase, underscores).
var attachmentAliases = map[string]string{
	"anxious_preoccupied": StyleAnxious,
	"preoccupied":         StyleAnxious,
	"dismissive_avoidant": StyleAvoidant,
	"dismissive":          StyleAvoidant,
	"disorganized":        StyleFearfulAvoidant,
	"fearful":             StyleFearfulAvoidant,
}

var loveLanguageAliases = map[string]string{
	"words":       "words_of_affirmation",
	"affirmation": "words_of_affirmation",
	"acts":        "acts_of_service",
	"service":     "acts_of_service",
	"time":        "quality_time",
	"touch":       "physical_touch",
	"gifts":       "receiving_gifts",
}

var cycleAliases = map[string]string{
	"pursue":   PositionPursuer,
	"pursuing": PositionPursuer,
	"withdraw": PositionWithdrawer,
	"distance": PositionWithdrawer,
}

var horsemanAliases = map[string]string{
	"stonewall":    "stonewalling",
	"defensive":    "defensiveness",
	"critical":     "criticism",
	"contemptuous": "contempt",
}

// Insecure reports whether a validated attachment style is insecure.
func Insecure(style string) bool {
	return style != "" && style != StyleSecure
}

// Merge combines two profiles for paired planning. Enum fields take a's
// value when present, else b's. Subscales take the minimum where both
// partners scored (the weaker score drives urgency). Focus areas and
// strengths are set-unioned preserving a-first order.
func Merge(a, b Profile) Profile {
	out := Profile{
		AttachmentStyle:       firstNonEmpty(a.AttachmentStyle, b.AttachmentStyle),
		LoveLanguage:          firstNonEmpty(a.LoveLanguage, b.LoveLanguage),
		LoveLanguageSecondary: firstNonEmpty(a.LoveLanguageSecondary, b.LoveLanguageSecondary),
		CyclePosition:         firstNonEmpty(a.CyclePosition, b.CyclePosition),
		DominantHorseman:      firstNonEmpty(a.DominantHorseman, b.DominantHorseman),
	}
	for _, key := range subscaleOrder {
		av, aok := a.Subscales[key]
		bv, bok := b.Subscales[key]
		switch {
		case aok && bok:
			if bv < av {
				av = bv
			}
			out.setSubscale(key, av)
		case aok:
			out.setSubscale(key, av)
		case bok:
			out.setSubscale(key, bv)
		}
	}
	out.FocusAreas = unionOrdered(a.FocusAreas, b.FocusAreas)
	out.Strengths = unionOrdered(a.Strengths, b.Strengths)
	return out
}

func (p *Profile) setSubscale(key string, val int) {
	if p.Subscales == nil {
		p.Subscales = map[string]int{}
	}
	p.Subscales[key] = val
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func unionOrdered(a, b []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, lst := range [][]string{a, b} {
		for _, v := range lst {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}
