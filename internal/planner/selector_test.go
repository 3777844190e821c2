package planner

import (
	"testing"

	"github.com/Gull-Stack/love-rescue-sub003/internal/catalog"
	"github.com/Gull-Stack/love-rescue-sub003/internal/profile"
)

func TestSelect_RespectsDifficultyCeilingEveryWeek(t *testing.T) {
	p := profile.Profile{AttachmentStyle: "anxious"}
	for week := 1; week <= 6; week++ {
		got := Select(SelectOptions{
			Candidates: skillCandidates(),
			Profile:    p,
			Week:       week,
			Count:      7,
		})
		ceiling := maxDifficulty(week)
		for _, item := range got {
			if item.Difficulty > ceiling {
				t.Fatalf("week %d: %s has difficulty %d above ceiling %d", week, item.ID, item.Difficulty, ceiling)
			}
		}
	}
}

func TestSelect_NeverReturnsMoreThanRequested(t *testing.T) {
	got := Select(SelectOptions{
		Candidates: catalog.Techniques,
		Week:       3,
		Count:      5,
	})
	if len(got) > 5 {
		t.Fatalf("requested 5, got %d", len(got))
	}
	if len(got) != 5 {
		t.Fatalf("pool has plenty of eligible items, expected exactly 5, got %d", len(got))
	}
}

func TestSelect_AtMostTwoItemsPerPrimaryExpert(t *testing.T) {
	for week := 1; week <= 6; week++ {
		got := Select(SelectOptions{
			Candidates: skillCandidates(),
			Profile:    profile.Profile{DominantHorseman: "criticism"},
			Week:       week,
			Count:      7,
		})
		counts := map[string]int{}
		for _, item := range got {
			counts[item.PrimaryExpert()]++
		}
		for expert, n := range counts {
			if n > 2 {
				t.Fatalf("week %d: expert %q appears %d times", week, expert, n)
			}
		}
	}
}

func TestSelect_RequiredCategorySatisfied(t *testing.T) {
	// Anxious profile with quality_time love language and criticism as
	// dominant horseman, week 3.
	p := profile.Profile{
		AttachmentStyle:  "anxious",
		LoveLanguage:     "quality_time",
		DominantHorseman: "criticism",
	}
	got := Select(SelectOptions{
		Candidates:         skillCandidates(),
		Profile:            p,
		Week:               3,
		Count:              7,
		RequiredCategories: []string{"horseman_antidote"},
	})
	found := false
	for _, item := range got {
		if item.Type == "horseman_antidote" {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected at least one horseman_antidote item in selection")
	}
}

func TestSelect_ExclusionsSurviveAllRelaxations(t *testing.T) {
	var ids []string
	for _, item := range catalog.Techniques {
		ids = append(ids, item.ID)
	}
	// Exclude everything except two items: even full relaxation must not
	// bring excluded items back.
	keep := map[string]bool{ids[0]: true, ids[1]: true}
	var exclude []string
	for _, id := range ids {
		if !keep[id] {
			exclude = append(exclude, id)
		}
	}
	got := Select(SelectOptions{
		Candidates: catalog.Techniques,
		Week:       1,
		Count:      7,
		ExcludeIDs: exclude,
	})
	if len(got) > 2 {
		t.Fatalf("expected at most 2 items, got %d", len(got))
	}
	for _, item := range got {
		if !keep[item.ID] {
			t.Fatalf("excluded item %s returned", item.ID)
		}
	}
}

func TestSelect_UnderSupplyReturnsShortListNotError(t *testing.T) {
	got := Select(SelectOptions{
		Candidates: catalog.TechniquesOfType("shared_meaning"),
		Week:       6,
		Count:      7,
	})
	if len(got) == 0 || len(got) > 7 {
		t.Fatalf("expected short non-empty result, got %d items", len(got))
	}
}

func TestSelect_StableOrderIsDeterministic(t *testing.T) {
	opts := SelectOptions{
		Candidates: skillCandidates(),
		Profile:    profile.Profile{AttachmentStyle: "avoidant"},
		Week:       4,
		Count:      7,
	}
	first := Select(opts)
	for i := 0; i < 5; i++ {
		again := Select(opts)
		if len(again) != len(first) {
			t.Fatalf("run %d: length changed", i)
		}
		for j := range first {
			if first[j].ID != again[j].ID {
				t.Fatalf("run %d: order changed at %d: %s vs %s", i, j, first[j].ID, again[j].ID)
			}
		}
	}
}

func TestSelect_RequiredCategoriesHonorExpertCap(t *testing.T) {
	pool := []catalog.Technique{
		{ID: "a-1", Type: "cat_a", Expert: "gottman", Difficulty: 1},
		{ID: "b-1", Type: "cat_b", Expert: "gottman", Difficulty: 1},
		{ID: "c-1", Type: "cat_c", Expert: "gottman", Difficulty: 1},
		{ID: "c-2", Type: "cat_c", Expert: "johnson", Difficulty: 1},
	}
	got := Select(SelectOptions{
		Candidates:         pool,
		Week:               1,
		Count:              3,
		RequiredCategories: []string{"cat_a", "cat_b", "cat_c"},
	})
	counts := map[string]int{}
	categories := map[string]bool{}
	for _, item := range got {
		counts[item.PrimaryExpert()]++
		categories[item.Type] = true
	}
	if counts["gottman"] > 2 {
		t.Fatalf("expert gottman appears %d times, cap is 2", counts["gottman"])
	}
	if !categories["cat_c"] {
		t.Fatalf("third required category should fall through to the next expert's item")
	}
	if got[len(got)-1].ID != "c-2" {
		t.Fatalf("expected c-2 to satisfy cat_c, got %s", got[len(got)-1].ID)
	}
}
