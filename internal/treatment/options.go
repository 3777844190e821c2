package treatment

import (
	"sort"
	"strings"

	"github.com/Gull-Stack/love-rescue-sub003/internal/catalog"
	"github.com/Gull-Stack/love-rescue-sub003/internal/logger"
	"github.com/Gull-Stack/love-rescue-sub003/internal/profile"
)

// approachMapping encodes one therapeutic orientation's module
// affinities.
type approachMapping struct {
	Name                 string
	Description          string
	PrimaryExperts       []string
	SecondaryExperts     []string
	PriorityModules      []string
	DeprioritizedModules []string
	AssessmentFocus      []string
}

var approachMappings = map[string]approachMapping{
	"eft": {
		Name:             "Emotionally Focused Therapy (EFT)",
		Description:      "Attachment-based approach focused on identifying and transforming negative interaction cycles by accessing underlying emotions and attachment needs.",
		PrimaryExperts:   []string{"johnson", "levine"},
		SecondaryExperts: []string{"brown", "gottman"},
		PriorityModules: []string{
			"week-1-self-awareness",
			"week-4-cycle-mapping",
			"skill-attachment-security",
			"week-3-emotional-regulation",
			"skill-repair-mastery",
		},
		DeprioritizedModules: []string{"skill-cognitive-restructuring", "skill-desire-maintenance"},
		AssessmentFocus:      []string{"attachment", "eft"},
	},
	"gottman": {
		Name:             "Gottman Method Couples Therapy",
		Description:      "Research-based approach built on the Sound Relationship House theory. Focuses on friendship, conflict management, and shared meaning.",
		PrimaryExperts:   []string{"gottman"},
		SecondaryExperts: []string{"chapman", "voss", "johnson"},
		PriorityModules: []string{
			"skill-four-horsemen",
			"week-2-communication",
			"week-5-connection-growth",
			"skill-repair-mastery",
			"skill-shared-meaning",
		},
		DeprioritizedModules: []string{"skill-desire-maintenance"},
		AssessmentFocus:      []string{"gottman", "love_language"},
	},
	"cbt": {
		Name:             "Cognitive Behavioral Therapy for Couples",
		Description:      "Focuses on identifying and modifying cognitive distortions, maladaptive behavioral patterns, and communication deficits that maintain relationship distress.",
		PrimaryExperts:   []string{"gottman", "robbins"},
		SecondaryExperts: []string{"voss", "brown"},
		PriorityModules: []string{
			"skill-cognitive-restructuring",
			"week-2-communication",
			"week-1-self-awareness",
			"week-3-emotional-regulation",
			"skill-four-horsemen",
		},
		DeprioritizedModules: []string{"skill-desire-maintenance", "skill-attachment-security"},
		AssessmentFocus:      []string{"gottman", "prep"},
	},
	"psychodynamic": {
		Name:             "Psychodynamic Couples Therapy",
		Description:      "Explores how unconscious patterns from early relationships shape current couple dynamics. Focuses on transference, attachment history, and making the unconscious conscious.",
		PrimaryExperts:   []string{"johnson", "levine"},
		SecondaryExperts: []string{"brown", "perel"},
		PriorityModules: []string{
			"week-1-self-awareness",
			"skill-attachment-security",
			"week-4-cycle-mapping",
			"skill-desire-maintenance",
			"week-3-emotional-regulation",
		},
		DeprioritizedModules: []string{"skill-cognitive-restructuring", "skill-four-horsemen"},
		AssessmentFocus:      []string{"attachment", "eft"},
	},
	"integrative": {
		Name:             "Integrative Approach",
		Description:      "Draws from multiple therapeutic orientations based on the couple's unique presentation. Flexibility to blend techniques as clinically indicated.",
		PrimaryExperts:   []string{"gottman", "johnson", "levine"},
		SecondaryExperts: []string{"perel", "brown", "chapman", "voss", "robbins"},
		PriorityModules: []string{
			"week-1-self-awareness",
			"week-2-communication",
			"week-3-emotional-regulation",
			"week-4-cycle-mapping",
			"week-5-connection-growth",
		},
		AssessmentFocus: []string{"attachment", "gottman", "eft", "prep", "love_language"},
	},
}

// ModuleOption is one scored module recommendation.
type ModuleOption struct {
	ModuleID       string `json:"moduleId"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	Difficulty     int    `json:"difficulty"`
	RelevanceScore int    `json:"relevanceScore"`
	Alignment      string `json:"approachAlignment"`
}

// Options categorizes the module library for one couple and approach.
type Options struct {
	Approach        string         `json:"therapistApproach"`
	Description     string         `json:"approachDescription"`
	AssessmentFocus []string       `json:"assessmentFocus"`
	Recommended     []ModuleOption `json:"recommended"`
	Suggested       []ModuleOption `json:"suggested"`
	Available       []ModuleOption `json:"available"`
	CrisisModules   []ModuleOption `json:"crisisModules"`
}

// focusToSkill maps a profile focus area to the module skills that
// address it.
var focusToSkill = map[string][]string{
	"attachment":    {"attachment-recognition", "earned-security", "accessibility"},
	"conflict":      {"horseman-antidotes", "de-escalation", "repair-initiation", "self-soothing"},
	"friendship":    {"love-maps", "fondness-admiration", "ritual-building"},
	"communication": {"gentle-startup", "i-statements", "active-listening", "tactical-empathy"},
	"meaning":       {"shared-meaning", "ritual-creation", "legacy-building"},
}

// RecommendModules scores every library module for a couple profile
// and therapist orientation, splitting the result into recommended
// (score >= 70), suggested (>= 40), and available tiers. Crisis
// modules are always listed separately, never scored.
func RecommendModules(p profile.Profile, approach string, log *logger.Logger) Options {
	if log == nil {
		log = logger.NewNop()
	}
	key := strings.ToLower(approach)
	mapping, ok := approachMappings[key]
	if !ok {
		mapping = approachMappings["integrative"]
	}

	opts := Options{
		Approach:        mapping.Name,
		Description:     mapping.Description,
		AssessmentFocus: mapping.AssessmentFocus,
	}

	for _, id := range catalog.ModuleOrder {
		m := catalog.Modules[id]
		entry := ModuleOption{
			ModuleID:    m.ID,
			Name:        m.Name,
			Category:    m.Category,
			Description: m.Description,
			Difficulty:  m.Difficulty,
		}
		if m.Category == "crisis" {
			opts.CrisisModules = append(opts.CrisisModules, entry)
			continue
		}
		entry.RelevanceScore = scoreModule(m, p, mapping)
		entry.Alignment = alignment(m, mapping)
		switch {
		case entry.RelevanceScore >= 70:
			opts.Recommended = append(opts.Recommended, entry)
		case entry.RelevanceScore >= 40:
			opts.Suggested = append(opts.Suggested, entry)
		default:
			opts.Available = append(opts.Available, entry)
		}
	}

	byScore := func(list []ModuleOption) {
		sort.SliceStable(list, func(i, j int) bool { return list[i].RelevanceScore > list[j].RelevanceScore })
	}
	byScore(opts.Recommended)
	byScore(opts.Suggested)
	byScore(opts.Available)

	log.Info("Treatment plan options generated",
		"approach", key,
		"recommended", len(opts.Recommended),
		"suggested", len(opts.Suggested),
		"available", len(opts.Available),
		"crisis", len(opts.CrisisModules),
	)
	return opts
}

func scoreModule(m catalog.Module, p profile.Profile, mapping approachMapping) int {
	score := 30

	if containsStr(mapping.PriorityModules, m.ID) {
		score += 40
	}
	if containsStr(mapping.DeprioritizedModules, m.ID) {
		score -= 25
	}

	if containsStr(mapping.PrimaryExperts, m.PrimaryExpert) {
		score += 15
	}
	for _, e := range m.ExpertFrameworks {
		if containsStr(mapping.PrimaryExperts, e) {
			score += 5
			break
		}
	}

	if profile.Insecure(p.AttachmentStyle) && hasAnySkill(m, "attachment-recognition", "earned-security", "accessibility") {
		score += 10
	}
	if p.DominantHorseman != "" && hasAnySkill(m, "horseman-antidotes") {
		score += 15
	}
	for _, area := range p.FocusAreas {
		if hasAnySkill(m, focusToSkill[area]...) {
			score += 10
		}
	}

	if v, ok := p.Subscales["conflict"]; ok && v < 50 && containsStr(m.TargetAssessments, "gottman") {
		score += 5
	}
	if v, ok := p.Subscales["friendship"]; ok && v < 50 && hasAnySkill(m, "love-maps") {
		score += 5
	}
	if v, ok := p.Subscales["communication"]; ok && v < 50 && containsStr(m.TargetAssessments, "prep") {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

func alignment(m catalog.Module, mapping approachMapping) string {
	if containsStr(mapping.PriorityModules, m.ID) {
		return "core"
	}
	if containsStr(mapping.DeprioritizedModules, m.ID) {
		return "supplementary"
	}
	for _, e := range m.ExpertFrameworks {
		if containsStr(mapping.PrimaryExperts, e) {
			return "aligned"
		}
	}
	return "complementary"
}

func hasAnySkill(m catalog.Module, skills ...string) bool {
	for _, s := range m.Skills {
		if containsStr(skills, s) {
			return true
		}
	}
	return false
}

func containsStr(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
