package treatment

import (
	"fmt"
	"strings"
)

// renderNote produces the structured progress note. Fully derived from
// the computed report: same plan and evidence, same text. No clock
// reads, no calendar dates.
func renderNote(plan Plan, r Report) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line("TREATMENT PLAN PROGRESS NOTE")
	line("Plan: %s", plan.Name)
	line("Week %d of %d (Day %d/%d)", r.CurrentWeek, plan.TotalWeeks, r.CurrentDay, plan.TotalDays)
	line("")

	line("CURRENT STATUS:")
	if cur := activeModule(plan, r.CurrentDay); cur != nil {
		line("- Active module: %s (Day %d/%d)", cur.ModuleName, r.CurrentDay-cur.StartDay+1, cur.DurationDays)
	}
	line("- Overall plan completion: %d%%", r.OverallCompletion)
	line("- Activity adherence rate: %d%%", r.AdherenceRate)
	line("- Milestones achieved: %d/%d", r.MilestonesAchieved, r.MilestonesTotal)
	line("")

	line("MODULE PROGRESS:")
	for _, m := range r.ModuleProgress {
		line("[%s] %s: %d%% (%d/%d activities) - %s",
			statusMark(m.Status), m.ModuleName, m.CompletionPct,
			m.ActivitiesCompleted, m.ActivitiesExpected, m.Status)
		if m.HomeworkNotes != "" {
			line("    Note: %s", m.HomeworkNotes)
		}
	}
	line("")

	if len(r.ScoreChanges) > 0 {
		line("ASSESSMENT CHANGES (since baseline):")
		for _, sc := range r.ScoreChanges {
			delta := ""
			if sc.Delta != nil {
				delta = fmt.Sprintf(" (%+g)", *sc.Delta)
			}
			line("- %s: %v -> %v%s, %s", sc.Type, sc.Baseline, sc.Latest, delta, sc.Trend)
		}
		line("")
	}

	achieved := filterMilestones(r.MilestoneStatus, "achieved")
	missed := filterMilestones(r.MilestoneStatus, "missed")
	if len(achieved) > 0 {
		line("MILESTONES ACHIEVED:")
		for _, m := range achieved {
			line("- %s (%s)", m.Name, m.ModuleName)
		}
		line("")
	}
	if len(missed) > 0 {
		line("MILESTONES NOT MET:")
		for _, m := range missed {
			line("- %s (%s): may need additional support or a module revisit", m.Name, m.ModuleName)
		}
		line("")
	}

	line("CLINICAL OBSERVATIONS (auto-generated):")
	switch {
	case r.AdherenceRate >= 80:
		line("- Client demonstrating strong engagement with between-session activities.")
	case r.AdherenceRate >= 50:
		line("- Moderate engagement with activities. Consider exploring barriers to completion in session.")
	default:
		line("- Low activity adherence. Recommend discussing treatment plan fit, motivation, or practical barriers.")
	}
	if improving := trendTypes(r.ScoreChanges, "improving"); len(improving) > 0 {
		line("- Positive trends in: %s.", strings.Join(improving, ", "))
	}
	if declining := trendTypes(r.ScoreChanges, "declining"); len(declining) > 0 {
		line("- Declining scores in: %s. Consider treatment plan adjustment.", strings.Join(declining, ", "))
	}
	line("")

	line("NEXT STEPS:")
	if r.NextCheckpoint != nil {
		line("- Next assessment checkpoint: week %d (%d weeks away)", r.NextCheckpoint.Week, r.NextCheckpoint.Week-r.CurrentWeek)
		line("  Assessments due: %s", strings.Join(r.NextCheckpoint.Assessments, ", "))
	}
	pending := filterMilestones(r.MilestoneStatus, "pending")
	if len(pending) > 3 {
		pending = pending[:3]
	}
	if len(pending) > 0 {
		line("- Upcoming milestones:")
		for _, m := range pending {
			line("  - %s (%s)", m.Name, m.ModuleName)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func activeModule(plan Plan, currentDay int) *PlanModule {
	for i := range plan.WeeklyPlan {
		pm := &plan.WeeklyPlan[i]
		if currentDay >= pm.StartDay && currentDay <= pm.EndDay {
			return pm
		}
	}
	return nil
}

func statusMark(status string) string {
	switch status {
	case "completed":
		return "x"
	case "in_progress":
		return ">"
	case "incomplete":
		return "!"
	default:
		return " "
	}
}

func filterMilestones(all []MilestoneState, status string) []MilestoneState {
	var out []MilestoneState
	for _, m := range all {
		if m.Status == status {
			out = append(out, m)
		}
	}
	return out
}

func trendTypes(changes []ScoreChange, trend string) []string {
	var out []string
	for _, sc := range changes {
		if sc.Trend == trend {
			out = append(out, sc.Type)
		}
	}
	return out
}
