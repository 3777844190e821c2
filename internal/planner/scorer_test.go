package planner

import (
	"testing"

	"github.com/Gull-Stack/love-rescue-sub003/internal/catalog"
	"github.com/Gull-Stack/love-rescue-sub003/internal/profile"
)

func TestScoreTechnique_FullMatchSumsContributionsWithinCap(t *testing.T) {
	item := catalog.Technique{
		Difficulty: idealDifficulty(3),
		Weeks:      []int{3},
		Targets: catalog.TargetProfiles{
			AttachmentStyles: []string{"anxious"},
			LoveLanguages:    []string{"quality_time"},
			CyclePositions:   []string{"pursuer"},
			Horsemen:         []string{"criticism"},
			FocusAreas:       []string{"conflict", "communication", "meaning"},
			AnyProfile:       true,
		},
	}
	p := profile.Profile{
		AttachmentStyle:  "anxious",
		LoveLanguage:     "quality_time",
		CyclePosition:    "pursuer",
		DominantHorseman: "criticism",
		FocusAreas:       []string{"conflict", "communication", "meaning"},
	}
	want := weekExactBonus + 6 + attachmentBonus + loveLangPrimary + cycleBonus + horsemanBonus + focusAreaCap*focusAreaBonus + anyProfileBonus
	got := ScoreTechnique(item, p, 3)
	if got != want {
		t.Fatalf("expected additive score %d, got %d", want, got)
	}
	if got > scoreCap {
		t.Fatalf("score %d exceeds cap %d", got, scoreCap)
	}
}

func TestScoreTechnique_NeverExceedsCapAcrossCatalog(t *testing.T) {
	p := profile.Profile{
		AttachmentStyle:  "anxious",
		LoveLanguage:     "quality_time",
		CyclePosition:    "pursuer",
		DominantHorseman: "criticism",
		FocusAreas:       []string{"attachment", "conflict", "communication", "meaning", "friendship"},
	}
	for _, item := range catalog.Techniques {
		for week := 1; week <= 6; week++ {
			if s := ScoreTechnique(item, p, week); s < 0 || s > scoreCap {
				t.Fatalf("%s week %d: score %d out of [0,%d]", item.ID, week, s, scoreCap)
			}
		}
	}
}

func TestScoreTechnique_ExactWeekOutranksAnyWeek(t *testing.T) {
	exact := catalog.Technique{Weeks: []int{2}, Difficulty: 3}
	anyWeek := catalog.Technique{Difficulty: 3}
	p := profile.Profile{}
	if ScoreTechnique(exact, p, 2) <= ScoreTechnique(anyWeek, p, 2) {
		t.Fatalf("expected exact-week item to outrank any-week item")
	}
}

func TestScoreTechnique_HorsemanIsHeaviestProfileDimension(t *testing.T) {
	p := profile.Profile{DominantHorseman: "contempt", AttachmentStyle: "anxious"}
	horseman := catalog.Technique{Difficulty: 3, Targets: catalog.TargetProfiles{Horsemen: []string{"contempt"}}}
	attach := catalog.Technique{Difficulty: 3, Targets: catalog.TargetProfiles{AttachmentStyles: []string{"anxious"}}}
	if ScoreTechnique(horseman, p, 3) <= ScoreTechnique(attach, p, 3) {
		t.Fatalf("expected horseman match to outweigh attachment match")
	}
}

func TestScoreTechnique_FocusAreaOverlapCapped(t *testing.T) {
	p := profile.Profile{FocusAreas: []string{"conflict", "communication", "meaning", "friendship"}}
	twoAreas := catalog.Technique{Difficulty: 3, Targets: catalog.TargetProfiles{FocusAreas: []string{"conflict", "communication"}}}
	fourAreas := catalog.Technique{Difficulty: 3, Targets: catalog.TargetProfiles{FocusAreas: []string{"conflict", "communication", "meaning", "friendship"}}}
	if ScoreTechnique(twoAreas, p, 3) != ScoreTechnique(fourAreas, p, 3) {
		t.Fatalf("expected overlap beyond two matches to add nothing")
	}
}

func TestScoreTechnique_DifficultyProximity(t *testing.T) {
	p := profile.Profile{}
	ideal := catalog.Technique{Difficulty: idealDifficulty(4)}
	far := catalog.Technique{Difficulty: idealDifficulty(4) - 3}
	if ScoreTechnique(ideal, p, 4) <= ScoreTechnique(far, p, 4) {
		t.Fatalf("expected proximity to ideal difficulty to score higher")
	}
}

func TestIdealDifficulty_GrowsWithWeekAndCapsAtFive(t *testing.T) {
	prev := 0
	for week := 1; week <= 10; week++ {
		d := idealDifficulty(week)
		if d < prev {
			t.Fatalf("week %d: ideal difficulty decreased from %d to %d", week, prev, d)
		}
		if d > 5 {
			t.Fatalf("week %d: ideal difficulty %d above scale", week, d)
		}
		prev = d
	}
}
