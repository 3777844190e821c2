package treatment

import (
	"strings"
	"testing"
	"time"
)

func testPlan(t *testing.T) Plan {
	t.Helper()
	plan := BuildPlan(PlanRequest{
		ModuleIDs: []string{"week-1-self-awareness", "week-2-communication"},
		PlanName:  "Progress Fixture",
	}, nil)
	plan.ID = "plan-fixture"
	return plan
}

func activities(moduleID string, n int) []CompletedActivity {
	out := make([]CompletedActivity, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, CompletedActivity{
			ModuleID:    moduleID,
			ActivityID:  "a",
			CompletedAt: time.Date(2025, 1, 1+i, 0, 0, 0, 0, time.UTC),
		})
	}
	return out
}

func TestProgress_StatusMachine(t *testing.T) {
	plan := testPlan(t)
	// Module 1: days 1-7. Module 2: days 8-14.
	rep := Progress(plan, Evidence{CurrentDay: 3}, nil)
	if rep.ModuleProgress[0].Status != "in_progress" {
		t.Fatalf("day 3: module 1 should be in_progress, got %s", rep.ModuleProgress[0].Status)
	}
	if rep.ModuleProgress[1].Status != "pending" {
		t.Fatalf("day 3: module 2 should be pending, got %s", rep.ModuleProgress[1].Status)
	}
}

func TestProgress_NeverCompletedBeforeEndDay(t *testing.T) {
	plan := testPlan(t)
	// Full completion evidence, but the module window is still open.
	ev := Evidence{
		CompletedActivities: activities("week-1-self-awareness", 14),
		CurrentDay:          6,
	}
	rep := Progress(plan, ev, nil)
	if rep.ModuleProgress[0].Status == "completed" {
		t.Fatalf("module resolved completed before its end day")
	}
}

func TestProgress_CompletionThreshold(t *testing.T) {
	plan := testPlan(t)
	// 14 expected for module 1 (2/day x 7 days). 12/14 = 86% >= 80.
	rep := Progress(plan, Evidence{
		CompletedActivities: activities("week-1-self-awareness", 12),
		CurrentDay:          7,
	}, nil)
	if rep.ModuleProgress[0].Status != "completed" {
		t.Fatalf("86%% past end day should be completed, got %s", rep.ModuleProgress[0].Status)
	}

	rep = Progress(plan, Evidence{
		CompletedActivities: activities("week-1-self-awareness", 5),
		CurrentDay:          7,
	}, nil)
	if rep.ModuleProgress[0].Status != "incomplete" {
		t.Fatalf("36%% past end day should be incomplete, got %s", rep.ModuleProgress[0].Status)
	}
}

func TestProgress_FarBeyondPlanResolvesEverything(t *testing.T) {
	plan := testPlan(t)
	rep := Progress(plan, Evidence{CurrentDay: 500}, nil)
	if rep.PercentComplete < 100 {
		t.Fatalf("expected percentComplete >= 100 past plan end, got %d", rep.PercentComplete)
	}
	for _, m := range rep.ModuleProgress {
		if m.Status != "completed" && m.Status != "incomplete" {
			t.Fatalf("module %s unresolved past plan end: %s", m.ModuleID, m.Status)
		}
	}
	for _, m := range rep.MilestoneStatus {
		if m.Status == "pending" {
			t.Fatalf("milestone %s still pending past plan end", m.Name)
		}
	}
}

func TestProgress_PercentCompleteNonDecreasing(t *testing.T) {
	plan := testPlan(t)
	ev := Evidence{CompletedActivities: activities("week-1-self-awareness", 4)}
	prev := -1
	for day := 0; day <= plan.TotalDays+5; day++ {
		ev.CurrentDay = day
		rep := Progress(plan, ev, nil)
		if rep.PercentComplete < prev {
			t.Fatalf("day %d: percentComplete decreased from %d to %d", day, prev, rep.PercentComplete)
		}
		prev = rep.PercentComplete
	}
}

func TestProgress_AdherenceZeroNotNaN(t *testing.T) {
	rep := Progress(BuildPlan(PlanRequest{}, nil), Evidence{CurrentDay: 10}, nil)
	if rep.AdherenceRate != 0 {
		t.Fatalf("expected adherence 0 for empty plan, got %d", rep.AdherenceRate)
	}
}

func TestProgress_EmptyPlanPercentComplete(t *testing.T) {
	plan := BuildPlan(PlanRequest{}, nil)

	rep := Progress(plan, Evidence{CurrentDay: 0}, nil)
	if rep.PercentComplete != 0 {
		t.Fatalf("expected 0 before day 1 of a zero-day plan, got %d", rep.PercentComplete)
	}

	rep = Progress(plan, Evidence{CurrentDay: 10}, nil)
	if rep.PercentComplete != 100 {
		t.Fatalf("expected a zero-day plan to read complete once underway, got %d", rep.PercentComplete)
	}
}

func TestProgress_ScoreChangesTrend(t *testing.T) {
	plan := testPlan(t)
	ev := Evidence{
		CurrentDay: 7,
		AssessmentScores: []AssessmentScore{
			{Type: "gottman", Score: float64(40), CompletedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
			{Type: "gottman", Score: float64(55), CompletedAt: time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)},
			{Type: "prep", Score: "qualitative", CompletedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
		},
	}
	rep := Progress(plan, ev, nil)
	if len(rep.ScoreChanges) != 2 {
		t.Fatalf("expected 2 score changes, got %d", len(rep.ScoreChanges))
	}
	g := rep.ScoreChanges[0]
	if g.Type != "gottman" || g.Trend != "improving" || g.Delta == nil || *g.Delta != 15 {
		t.Fatalf("unexpected gottman change: %+v", g)
	}
	p := rep.ScoreChanges[1]
	if p.Trend != "stable" || p.Delta != nil {
		t.Fatalf("non-numeric score should be stable with nil delta: %+v", p)
	}
}

func TestProgress_MilestoneMatching(t *testing.T) {
	plan := testPlan(t)
	ev := Evidence{
		CurrentDay: 10,
		MilestoneAchievements: []MilestoneAchievement{
			{ModuleID: "week-1-self-awareness", Name: "Pattern Named", AchievedAt: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)},
		},
	}
	rep := Progress(plan, ev, nil)
	if rep.MilestonesAchieved != 1 {
		t.Fatalf("expected 1 achieved milestone, got %d", rep.MilestonesAchieved)
	}
	for _, m := range rep.MilestoneStatus {
		switch {
		case m.ModuleID == "week-1-self-awareness" && m.Name == "Pattern Named":
			if m.Status != "achieved" {
				t.Fatalf("matched milestone not achieved: %s", m.Status)
			}
		case m.ModuleID == "week-1-self-awareness":
			if m.Status != "missed" {
				t.Fatalf("unmatched milestone of ended module should be missed: %s", m.Status)
			}
		default:
			if m.Status != "pending" {
				t.Fatalf("milestone of open module should be pending: %s", m.Status)
			}
		}
	}
}

func TestProgress_NoteIsDeterministicAndDateFree(t *testing.T) {
	plan := testPlan(t)
	ev := Evidence{
		CurrentDay:          9,
		CompletedActivities: activities("week-1-self-awareness", 12),
	}
	a := Progress(plan, ev, nil)
	b := Progress(plan, ev, nil)
	if a.ProgressNote != b.ProgressNote {
		t.Fatalf("note not deterministic")
	}
	if !strings.HasPrefix(a.ProgressNote, "TREATMENT PLAN PROGRESS NOTE") {
		t.Fatalf("unexpected note header: %q", a.ProgressNote[:40])
	}
	for _, section := range []string{"CURRENT STATUS:", "MODULE PROGRESS:", "CLINICAL OBSERVATIONS", "NEXT STEPS:"} {
		if !strings.Contains(a.ProgressNote, section) {
			t.Fatalf("note missing section %q", section)
		}
	}
	if strings.Contains(a.ProgressNote, "2025") {
		t.Fatalf("note should not contain calendar dates")
	}
}

func TestProgress_EvidenceForUnknownModulesIsIgnored(t *testing.T) {
	plan := testPlan(t)
	ev := Evidence{
		CurrentDay:          3,
		CompletedActivities: activities("module-not-in-plan", 50),
	}
	rep := Progress(plan, ev, nil)
	for _, m := range rep.ModuleProgress {
		if m.ActivitiesCompleted != 0 {
			t.Fatalf("mismatched evidence credited to %s", m.ModuleID)
		}
	}
}
