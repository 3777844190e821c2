package treatment

import (
	"testing"

	"github.com/Gull-Stack/love-rescue-sub003/internal/profile"
)

func findOption(list []ModuleOption, id string) *ModuleOption {
	for i := range list {
		if list[i].ModuleID == id {
			return &list[i]
		}
	}
	return nil
}

func allOptions(o Options) []ModuleOption {
	var all []ModuleOption
	all = append(all, o.Recommended...)
	all = append(all, o.Suggested...)
	all = append(all, o.Available...)
	return all
}

func TestRecommendModules_CrisisModulesNeverScored(t *testing.T) {
	o := RecommendModules(profile.Profile{}, "integrative", nil)
	if len(o.CrisisModules) != 4 {
		t.Fatalf("expected 4 crisis modules, got %d", len(o.CrisisModules))
	}
	for _, m := range o.CrisisModules {
		if m.RelevanceScore != 0 || m.Alignment != "" {
			t.Fatalf("crisis module %s was scored", m.ModuleID)
		}
	}
	for _, m := range allOptions(o) {
		if m.Category == "crisis" {
			t.Fatalf("crisis module %s leaked into scored tiers", m.ModuleID)
		}
	}
}

func TestRecommendModules_UnknownApproachFallsBackToIntegrative(t *testing.T) {
	o := RecommendModules(profile.Profile{}, "hypnotherapy", nil)
	if o.Approach != "Integrative Approach" {
		t.Fatalf("expected integrative fallback, got %q", o.Approach)
	}
}

func TestRecommendModules_PriorityModulesAreCoreAndRecommended(t *testing.T) {
	o := RecommendModules(profile.Profile{}, "eft", nil)
	opt := findOption(o.Recommended, "skill-attachment-security")
	if opt == nil {
		t.Fatalf("priority module not in recommended tier")
	}
	if opt.Alignment != "core" {
		t.Fatalf("expected core alignment, got %q", opt.Alignment)
	}
	depri := findOption(allOptions(o), "skill-cognitive-restructuring")
	if depri == nil {
		t.Fatalf("deprioritized module missing from output")
	}
	if depri.Alignment != "supplementary" {
		t.Fatalf("expected supplementary alignment, got %q", depri.Alignment)
	}
}

func TestRecommendModules_InsecureAttachmentBoostsSecurityWork(t *testing.T) {
	base := RecommendModules(profile.Profile{}, "gottman", nil)
	anxious := RecommendModules(profile.Profile{AttachmentStyle: profile.StyleAnxious}, "gottman", nil)

	baseOpt := findOption(allOptions(base), "skill-attachment-security")
	anxOpt := findOption(allOptions(anxious), "skill-attachment-security")
	if baseOpt == nil || anxOpt == nil {
		t.Fatalf("attachment security module missing from output")
	}
	if anxOpt.RelevanceScore <= baseOpt.RelevanceScore {
		t.Fatalf("expected insecure attachment to raise score: %d vs %d", anxOpt.RelevanceScore, baseOpt.RelevanceScore)
	}
}

func TestRecommendModules_HorsemanBoostsAntidoteWork(t *testing.T) {
	p := profile.Profile{DominantHorseman: "criticism"}
	o := RecommendModules(p, "gottman", nil)
	opt := findOption(o.Recommended, "skill-four-horsemen")
	if opt == nil {
		t.Fatalf("horseman antidote module not recommended for couple with active horseman")
	}
}

func TestRecommendModules_TiersSortedByScore(t *testing.T) {
	p := profile.Profile{
		AttachmentStyle:  profile.StyleAvoidant,
		DominantHorseman: "stonewalling",
		FocusAreas:       []string{"attachment", "conflict"},
		Subscales:        map[string]int{"conflict": 30, "friendship": 40},
	}
	o := RecommendModules(p, "integrative", nil)
	for _, tier := range [][]ModuleOption{o.Recommended, o.Suggested, o.Available} {
		for i := 1; i < len(tier); i++ {
			if tier[i].RelevanceScore > tier[i-1].RelevanceScore {
				t.Fatalf("tier not sorted descending at index %d", i)
			}
		}
	}
	for _, m := range o.Recommended {
		if m.RelevanceScore < 70 {
			t.Fatalf("recommended tier holds score %d below threshold", m.RelevanceScore)
		}
	}
	for _, m := range o.Suggested {
		if m.RelevanceScore >= 70 || m.RelevanceScore < 40 {
			t.Fatalf("suggested tier holds out-of-band score %d", m.RelevanceScore)
		}
	}
}
