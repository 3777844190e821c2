package treatment

import (
	"testing"
)

func intPtr(v int) *int { return &v }

func TestBuildPlan_EmptyRequestYieldsValidEmptyPlan(t *testing.T) {
	plan := BuildPlan(PlanRequest{}, nil)
	if plan.TotalDays != 0 {
		t.Fatalf("expected totalDays 0, got %d", plan.TotalDays)
	}
	if len(plan.WeeklyPlan) != 0 {
		t.Fatalf("expected empty weekly plan, got %d entries", len(plan.WeeklyPlan))
	}
}

func TestBuildPlan_UnknownIDsDroppedSilently(t *testing.T) {
	plan := BuildPlan(PlanRequest{
		ModuleIDs: []string{"week-1-self-awareness", "no-such-module", "week-2-communication"},
	}, nil)
	if len(plan.WeeklyPlan) != 2 {
		t.Fatalf("expected 2 modules after dropping unknown id, got %d", len(plan.WeeklyPlan))
	}
}

func TestBuildPlan_SkipOverrideRemovesModule(t *testing.T) {
	plan := BuildPlan(PlanRequest{
		ModuleIDs: []string{"week-1-self-awareness", "week-2-communication"},
		ModuleOverrides: map[string]ModuleOverride{
			"week-1-self-awareness": {Skip: true},
		},
	}, nil)
	for _, pm := range plan.WeeklyPlan {
		if pm.ModuleID == "week-1-self-awareness" {
			t.Fatalf("skipped module present in weekly plan")
		}
	}
	if len(plan.WeeklyPlan) != 1 {
		t.Fatalf("expected 1 module, got %d", len(plan.WeeklyPlan))
	}
}

func TestBuildPlan_ReorderIsStableInterleave(t *testing.T) {
	plan := BuildPlan(PlanRequest{
		ModuleIDs: []string{"week-1-self-awareness", "week-2-communication", "week-3-emotional-regulation"},
		ModuleOverrides: map[string]ModuleOverride{
			"week-3-emotional-regulation": {Reorder: intPtr(0)},
		},
	}, nil)
	want := []string{"week-3-emotional-regulation", "week-1-self-awareness", "week-2-communication"}
	for i, pm := range plan.WeeklyPlan {
		if pm.ModuleID != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], pm.ModuleID)
		}
	}
}

func TestBuildPlan_ModulesLaidEndToEnd(t *testing.T) {
	plan := BuildPlan(PlanRequest{
		ModuleIDs: []string{"week-1-self-awareness", "week-2-communication"},
	}, nil)
	first, second := plan.WeeklyPlan[0], plan.WeeklyPlan[1]
	if first.StartDay != 1 {
		t.Fatalf("first module should start day 1, got %d", first.StartDay)
	}
	if second.StartDay != first.EndDay+1 {
		t.Fatalf("modules not contiguous: %d then %d", first.EndDay, second.StartDay)
	}
	if plan.TotalDays != second.EndDay {
		t.Fatalf("totalDays %d != last endDay %d", plan.TotalDays, second.EndDay)
	}
}

func TestBuildPlan_HalfPaceDoublesTotalDays(t *testing.T) {
	ids := []string{"week-1-self-awareness", "week-2-communication", "week-3-emotional-regulation"}
	normal := BuildPlan(PlanRequest{ModuleIDs: ids, PaceMultiplier: 1}, nil)
	slow := BuildPlan(PlanRequest{ModuleIDs: ids, PaceMultiplier: 0.5}, nil)
	if slow.TotalDays != normal.TotalDays*2 {
		t.Fatalf("expected doubled totalDays: normal %d slow %d", normal.TotalDays, slow.TotalDays)
	}
}

func TestBuildPlan_FasterPaceNeverIncreasesTotalDays(t *testing.T) {
	ids := []string{"week-1-self-awareness", "week-2-communication", "skill-four-horsemen"}
	prev := BuildPlan(PlanRequest{ModuleIDs: ids, PaceMultiplier: 0.5}, nil).TotalDays
	for _, pace := range []float64{0.75, 1, 1.25, 1.5, 2} {
		got := BuildPlan(PlanRequest{ModuleIDs: ids, PaceMultiplier: pace}, nil).TotalDays
		if got > prev {
			t.Fatalf("pace %v increased totalDays from %d to %d", pace, prev, got)
		}
		prev = got
	}
}

func TestBuildPlan_CheckpointsBracketThePlan(t *testing.T) {
	plan := BuildPlan(PlanRequest{
		ModuleIDs:             []string{"week-1-self-awareness", "week-2-communication", "week-3-emotional-regulation"},
		AdditionalAssessments: []string{"prep"},
	}, nil)
	if plan.Checkpoints[0].Kind != "baseline" || plan.Checkpoints[0].Week != 0 {
		t.Fatalf("first checkpoint not a week-0 baseline: %+v", plan.Checkpoints[0])
	}
	last := plan.Checkpoints[len(plan.Checkpoints)-1]
	if last.Kind != "completion" || last.Week != plan.TotalWeeks {
		t.Fatalf("last checkpoint not completion at final week: %+v", last)
	}
	for _, cp := range plan.Checkpoints {
		if !containsStr(cp.Assessments, "prep") {
			t.Fatalf("additional assessment missing from checkpoint week %d", cp.Week)
		}
	}
}

func TestBuildPlan_MilestoneLedgerStartsPending(t *testing.T) {
	plan := BuildPlan(PlanRequest{ModuleIDs: []string{"week-1-self-awareness", "week-2-communication"}}, nil)
	if len(plan.Milestones) == 0 {
		t.Fatalf("expected flattened milestone ledger")
	}
	for _, m := range plan.Milestones {
		if m.Status != "pending" {
			t.Fatalf("milestone %s/%s not pending: %q", m.ModuleID, m.Name, m.Status)
		}
	}
}

func TestPrerequisiteViolations_AdvisoryOnly(t *testing.T) {
	// week-2 requires week-1; out of order still builds, but flags.
	plan := BuildPlan(PlanRequest{ModuleIDs: []string{"week-2-communication", "week-1-self-awareness"}}, nil)
	if len(plan.WeeklyPlan) != 2 {
		t.Fatalf("sequencer must not enforce prerequisites")
	}
	violations := PrerequisiteViolations(plan)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %v", violations)
	}

	ordered := BuildPlan(PlanRequest{ModuleIDs: []string{"week-1-self-awareness", "week-2-communication"}}, nil)
	if v := PrerequisiteViolations(ordered); len(v) != 0 {
		t.Fatalf("expected no violations for honored order, got %v", v)
	}
}

func TestBuildPlan_SummaryAggregates(t *testing.T) {
	plan := BuildPlan(PlanRequest{ModuleIDs: []string{"week-1-self-awareness", "week-2-communication"}}, nil)
	if len(plan.Summary.Stages) == 0 || len(plan.Summary.ExpertsCovered) == 0 || len(plan.Summary.SkillsCovered) == 0 {
		t.Fatalf("summary not aggregated: %+v", plan.Summary)
	}
	if !containsStr(plan.Summary.AssessmentsTracked, "attachment") {
		t.Fatalf("expected attachment tracked, got %v", plan.Summary.AssessmentsTracked)
	}
	if len(plan.DifficultyProgression) != 2 {
		t.Fatalf("expected difficulty progression per module")
	}
}
