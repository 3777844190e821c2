package treatment

import (
	"math"
	"sort"
	"time"

	"github.com/Gull-Stack/love-rescue-sub003/internal/logger"
)

// CompletedActivity is one logged activity completion.
type CompletedActivity struct {
	ModuleID    string    `json:"moduleId"`
	ActivityID  string    `json:"activityId"`
	CompletedAt time.Time `json:"completedAt"`
}

// AssessmentScore is one recorded assessment result. Score may be
// non-numeric for qualitative assessment types.
type AssessmentScore struct {
	Type        string    `json:"type"`
	Score       any       `json:"score"`
	CompletedAt time.Time `json:"completedAt"`
}

// MilestoneAchievement matches a ledger entry by (moduleId, name).
type MilestoneAchievement struct {
	ModuleID   string    `json:"moduleId"`
	Name       string    `json:"name"`
	AchievedAt time.Time `json:"achievedAt"`
}

// Evidence is everything the reporter consumes besides the plan.
type Evidence struct {
	CompletedActivities   []CompletedActivity    `json:"completedActivities"`
	AssessmentScores      []AssessmentScore      `json:"assessmentScores"`
	MilestoneAchievements []MilestoneAchievement `json:"milestoneAchievements"`
	CurrentDay            int                    `json:"currentDay"`
}

// ModuleProgress is one module's computed completion state.
type ModuleProgress struct {
	ModuleID            string `json:"moduleId"`
	ModuleName          string `json:"moduleName"`
	Status              string `json:"status"`
	CompletionPct       int    `json:"completionPercentage"`
	ActivitiesCompleted int    `json:"activitiesCompleted"`
	ActivitiesExpected  int    `json:"activitiesExpected"`
	HomeworkNotes       string `json:"homeworkNotes,omitempty"`
}

// ScoreChange compares the earliest and latest recorded score of one
// assessment type. Delta is nil for non-numeric scores.
type ScoreChange struct {
	Type     string   `json:"assessmentType"`
	Baseline any      `json:"baselineScore"`
	Latest   any      `json:"latestScore"`
	Delta    *float64 `json:"delta"`
	Trend    string   `json:"trend"`
	Count    int      `json:"measurementCount"`
}

// MilestoneState is one ledger row resolved against the evidence.
type MilestoneState struct {
	ModuleID   string `json:"moduleId"`
	ModuleName string `json:"moduleName"`
	Name       string `json:"name"`
	Status     string `json:"status"`
}

// Report is the full computed progress picture for one plan.
type Report struct {
	PlanID              string           `json:"planId"`
	CurrentDay          int              `json:"currentDay"`
	CurrentWeek         int              `json:"currentWeek"`
	TotalWeeks          int              `json:"totalWeeks"`
	PercentComplete     int              `json:"percentComplete"`
	ModuleProgress      []ModuleProgress `json:"moduleProgress"`
	OverallCompletion   int              `json:"overallModuleCompletion"`
	ScoreChanges        []ScoreChange    `json:"scoreChanges"`
	AdherenceRate       int              `json:"adherenceRate"`
	ActivitiesCompleted int              `json:"activitiesCompleted"`
	ActivitiesExpected  int              `json:"activitiesExpected"`
	MilestonesAchieved  int              `json:"milestonesAchieved"`
	MilestonesTotal     int              `json:"milestonesTotal"`
	MilestoneStatus     []MilestoneState `json:"milestoneStatus"`
	NextCheckpoint      *Checkpoint      `json:"nextCheckpoint,omitempty"`
	ProgressNote        string           `json:"progressNote"`
}

const completionThresholdPct = 80

// Progress computes completion metrics for a plan against evidence and
// renders the structured progress note. Pure: no clock reads, the time
// cursor comes in as Evidence.CurrentDay.
func Progress(plan Plan, ev Evidence, log *logger.Logger) Report {
	if log == nil {
		log = logger.NewNop()
	}
	log = log.With("step", "Progress", "plan_id", plan.ID)

	currentWeek := weekOf(ev.CurrentDay)
	if currentWeek < 1 {
		currentWeek = 1
	}

	report := Report{
		PlanID:      plan.ID,
		CurrentDay:  ev.CurrentDay,
		CurrentWeek: currentWeek,
		TotalWeeks:  plan.TotalWeeks,
	}

	completedByModule := map[string]int{}
	for _, a := range ev.CompletedActivities {
		completedByModule[a.ModuleID]++
	}

	completionSum := 0
	for _, pm := range plan.WeeklyPlan {
		expected := pm.ActivitiesPerDay*pm.DurationDays + pm.WeeklyActivities*weekOf(pm.DurationDays)
		completed := completedByModule[pm.ModuleID]
		pct := 0
		if expected > 0 {
			pct = int(math.Round(float64(completed) / float64(expected) * 100))
		}
		if pct > 100 {
			pct = 100
		}

		status := "pending"
		switch {
		case ev.CurrentDay >= pm.EndDay:
			if pct >= completionThresholdPct {
				status = "completed"
			} else {
				status = "incomplete"
			}
		case ev.CurrentDay >= pm.StartDay:
			status = "in_progress"
		}

		completionSum += pct
		report.ModuleProgress = append(report.ModuleProgress, ModuleProgress{
			ModuleID:            pm.ModuleID,
			ModuleName:          pm.ModuleName,
			Status:              status,
			CompletionPct:       pct,
			ActivitiesCompleted: completed,
			ActivitiesExpected:  expected,
			HomeworkNotes:       pm.HomeworkNotes,
		})
	}
	if len(report.ModuleProgress) > 0 {
		report.OverallCompletion = int(math.Round(float64(completionSum) / float64(len(report.ModuleProgress))))
	}

	if plan.TotalDays > 0 {
		report.PercentComplete = int(math.Round(float64(ev.CurrentDay) / float64(plan.TotalDays) * 100))
	} else if ev.CurrentDay > 0 {
		report.PercentComplete = 100
	}

	report.ScoreChanges = computeScoreChanges(ev.AssessmentScores)

	// Adherence counts only modules that have started; partial windows
	// prorate by days elapsed inside the module.
	expectedTotal := 0
	for _, pm := range plan.WeeklyPlan {
		if pm.StartDay > ev.CurrentDay {
			continue
		}
		activeDays := min(ev.CurrentDay, pm.EndDay) - pm.StartDay + 1
		expectedTotal += pm.ActivitiesPerDay*activeDays + pm.WeeklyActivities*weekOf(activeDays)
	}
	report.ActivitiesExpected = expectedTotal
	report.ActivitiesCompleted = len(ev.CompletedActivities)
	if expectedTotal > 0 {
		report.AdherenceRate = int(math.Round(float64(len(ev.CompletedActivities)) / float64(expectedTotal) * 100))
	}

	achievedKeys := map[[2]string]bool{}
	for _, a := range ev.MilestoneAchievements {
		achievedKeys[[2]string{a.ModuleID, a.Name}] = true
	}
	endDayByModule := map[string]int{}
	for _, pm := range plan.WeeklyPlan {
		endDayByModule[pm.ModuleID] = pm.EndDay
	}
	for _, m := range plan.Milestones {
		status := "pending"
		if achievedKeys[[2]string{m.ModuleID, m.Name}] {
			status = "achieved"
			report.MilestonesAchieved++
		} else if end, ok := endDayByModule[m.ModuleID]; ok && ev.CurrentDay >= end {
			status = "missed"
		}
		report.MilestoneStatus = append(report.MilestoneStatus, MilestoneState{
			ModuleID:   m.ModuleID,
			ModuleName: m.ModuleName,
			Name:       m.Name,
			Status:     status,
		})
	}
	report.MilestonesTotal = len(report.MilestoneStatus)

	for i := range plan.Checkpoints {
		if plan.Checkpoints[i].Week > currentWeek {
			cp := plan.Checkpoints[i]
			report.NextCheckpoint = &cp
			break
		}
	}

	report.ProgressNote = renderNote(plan, report)

	log.Info("Progress computed",
		"current_week", currentWeek,
		"overall_completion", report.OverallCompletion,
		"adherence_rate", report.AdherenceRate,
		"milestones_achieved", report.MilestonesAchieved,
	)
	return report
}

func computeScoreChanges(scores []AssessmentScore) []ScoreChange {
	if len(scores) == 0 {
		return nil
	}
	byType := map[string][]AssessmentScore{}
	var order []string
	for _, s := range scores {
		if _, ok := byType[s.Type]; !ok {
			order = append(order, s.Type)
		}
		byType[s.Type] = append(byType[s.Type], s)
	}

	var out []ScoreChange
	for _, typ := range order {
		group := byType[typ]
		sort.SliceStable(group, func(i, j int) bool { return group[i].CompletedAt.Before(group[j].CompletedAt) })
		baseline := group[0]
		latest := group[len(group)-1]

		change := ScoreChange{
			Type:     typ,
			Baseline: baseline.Score,
			Latest:   latest.Score,
			Trend:    "stable",
			Count:    len(group),
		}
		if bf, bok := numericScore(baseline.Score); bok {
			if lf, lok := numericScore(latest.Score); lok {
				d := lf - bf
				change.Delta = &d
				if d > 0 {
					change.Trend = "improving"
				} else if d < 0 {
					change.Trend = "declining"
				}
			}
		}
		out = append(out, change)
	}
	return out
}

func numericScore(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	default:
		return 0, false
	}
}
