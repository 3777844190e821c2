package planner

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/Gull-Stack/love-rescue-sub003/internal/catalog"
	"github.com/Gull-Stack/love-rescue-sub003/internal/profile"
)

func TestComposeSolo_EveryDayOpensWithFoundation(t *testing.T) {
	plan := ComposeSolo(profile.Profile{}, 1, rand.New(rand.NewSource(1)), nil)
	if len(plan.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(plan.Days))
	}
	for _, day := range catalog.DayOrder {
		acts := plan.Days[day]
		if len(acts) == 0 {
			t.Fatalf("%s has no activities", day)
		}
		if acts[0].Type != "foundation" {
			t.Fatalf("%s does not open with a foundation item, got %q", day, acts[0].Type)
		}
	}
}

func TestComposeSolo_SundayEndsWithReflection(t *testing.T) {
	plan := ComposeSolo(profile.Profile{}, 2, rand.New(rand.NewSource(1)), nil)
	sunday := plan.Days["sunday"]
	last := sunday[len(sunday)-1]
	if last.Type != "reflection" {
		t.Fatalf("expected reflection as sunday's last activity, got %q", last.Type)
	}
}

func TestComposeSolo_RitualMatchesLoveLanguage(t *testing.T) {
	p := profile.Profile{LoveLanguage: "acts_of_service"}
	plan := ComposeSolo(p, 2, rand.New(rand.NewSource(7)), nil)
	for _, day := range ritualDays {
		found := false
		for _, a := range plan.Days[day] {
			if a.Type == "connection_ritual" {
				found = true
				item, ok := catalog.TechniqueByID(a.ID)
				if !ok {
					t.Fatalf("ritual %s not in catalog", a.ID)
				}
				if !item.Targets.AnyProfile && !containsString(item.Targets.LoveLanguages, p.LoveLanguage) {
					t.Fatalf("ritual %s does not match love language %s", a.ID, p.LoveLanguage)
				}
			}
		}
		if !found {
			t.Fatalf("no connection ritual on %s", day)
		}
	}
}

func TestComposeSolo_UniversalRitualFallback(t *testing.T) {
	// No love language set: the pick must come from universal rituals.
	plan := ComposeSolo(profile.Profile{}, 1, rand.New(rand.NewSource(3)), nil)
	for _, a := range plan.Days["wednesday"] {
		if a.Type == "connection_ritual" {
			item, _ := catalog.TechniqueByID(a.ID)
			if !item.Targets.AnyProfile {
				t.Fatalf("expected universal ritual, got %s", a.ID)
			}
			return
		}
	}
	t.Fatalf("no ritual scheduled")
}

func TestComposeSolo_SeededRandomIsReproducible(t *testing.T) {
	p := profile.Profile{AttachmentStyle: "anxious", LoveLanguage: "physical_touch"}
	a := ComposeSolo(p, 3, rand.New(rand.NewSource(42)), nil)
	b := ComposeSolo(p, 3, rand.New(rand.NewSource(42)), nil)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different plans")
	}
}

func TestComposeSolo_HorsemanGoalOnlyWhenSet(t *testing.T) {
	with := ComposeSolo(profile.Profile{DominantHorseman: "stonewalling"}, 2, rand.New(rand.NewSource(1)), nil)
	without := ComposeSolo(profile.Profile{}, 2, rand.New(rand.NewSource(1)), nil)
	if len(with.Goals) != len(without.Goals)+1 {
		t.Fatalf("expected exactly one extra goal for dominant horseman: %d vs %d", len(with.Goals), len(without.Goals))
	}
}

func TestComposeSolo_CommunicationFocusAddsThursdayWorkAndGoal(t *testing.T) {
	with := ComposeSolo(profile.Profile{FocusAreas: []string{"communication"}}, 2, rand.New(rand.NewSource(1)), nil)
	without := ComposeSolo(profile.Profile{}, 2, rand.New(rand.NewSource(1)), nil)

	found := false
	for _, a := range with.Days["thursday"] {
		if a.ID == "focus-communication-curiosity" {
			found = true
		}
	}
	if !found {
		t.Fatalf("communication focus area did not add the thursday listening exercise")
	}
	for _, a := range without.Days["thursday"] {
		if a.ID == "focus-communication-curiosity" {
			t.Fatalf("listening exercise present without communication focus")
		}
	}

	if len(with.Goals) != len(without.Goals)+1 {
		t.Fatalf("expected exactly one extra goal for communication focus: %d vs %d", len(with.Goals), len(without.Goals))
	}
	last := with.Goals[len(with.Goals)-1]
	if last.Text != communicationGoal.Text {
		t.Fatalf("expected communication goal appended last, got %q", last.Text)
	}
}

func TestComposeSolo_InvariantGoalsAlwaysPresent(t *testing.T) {
	for week := 1; week <= 6; week++ {
		plan := ComposeSolo(profile.Profile{}, week, rand.New(rand.NewSource(1)), nil)
		if len(plan.Goals) < 3 {
			t.Fatalf("week %d: expected at least the two invariant goals plus the week goal, got %d", week, len(plan.Goals))
		}
	}
}

func TestComposePaired_AnxiousAvoidantAppendsExactlyOneGoal(t *testing.T) {
	a := profile.Profile{AttachmentStyle: profile.StyleAnxious, CyclePosition: profile.PositionPursuer}
	b := profile.Profile{AttachmentStyle: profile.StyleAvoidant, CyclePosition: profile.PositionWithdrawer}

	merged := profile.Merge(a, b)
	baseline := ComposeSolo(merged, 2, rand.New(rand.NewSource(9)), nil)
	paired := ComposePaired(a, b, 2, rand.New(rand.NewSource(9)), nil)

	if paired.Mode != "paired" {
		t.Fatalf("expected paired mode, got %q", paired.Mode)
	}
	if len(paired.Goals) != len(baseline.Goals)+1 {
		t.Fatalf("expected exactly one extra weekly goal, baseline %d paired %d", len(baseline.Goals), len(paired.Goals))
	}
	found := false
	for _, in := range paired.Insights {
		if in.Dynamic == "anxious_avoidant" {
			found = true
		}
	}
	if !found {
		t.Fatalf("anxious_avoidant dynamic did not fire")
	}
}

func TestComposePaired_MergedCycleResolvesFromAnxious(t *testing.T) {
	a := profile.Profile{AttachmentStyle: profile.StyleAnxious, CyclePosition: profile.PositionPursuer}
	b := profile.Profile{AttachmentStyle: profile.StyleAvoidant, CyclePosition: profile.PositionWithdrawer}
	merged := profile.Merge(a, b)
	if merged.CyclePosition != profile.PositionPursuer {
		t.Fatalf("expected merged cycle pursuer, got %q", merged.CyclePosition)
	}
}

func TestComposePaired_MismatchedLoveLanguageAddsInsight(t *testing.T) {
	a := profile.Profile{LoveLanguage: "words_of_affirmation"}
	b := profile.Profile{LoveLanguage: "physical_touch"}
	plan := ComposePaired(a, b, 2, rand.New(rand.NewSource(1)), nil)
	found := false
	for _, in := range plan.Insights {
		if in.Dynamic == "mismatched_love_language" {
			found = true
		}
	}
	if !found {
		t.Fatalf("mismatched_love_language dynamic did not fire")
	}
}

func TestBuildIntroduction_IsDeterministicAndProfileConditioned(t *testing.T) {
	p := profile.Profile{AttachmentStyle: profile.StyleAvoidant, DominantHorseman: "defensiveness"}
	a := BuildIntroduction(p, 4)
	b := BuildIntroduction(p, 4)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("introduction not deterministic")
	}
	if len(a.Paragraphs) != 3 {
		t.Fatalf("expected narrative + attachment + horseman paragraphs, got %d", len(a.Paragraphs))
	}
	if a.Stage != catalog.WeekThemes[4].Stage {
		t.Fatalf("stage mismatch: %q", a.Stage)
	}
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
