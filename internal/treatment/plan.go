package treatment

import (
	"math"
	"sort"

	"github.com/Gull-Stack/love-rescue-sub003/internal/catalog"
	"github.com/Gull-Stack/love-rescue-sub003/internal/logger"
)

// ModuleOverride carries per-module customization. Reorder is a
// zero-based target position; nil means keep relative order.
type ModuleOverride struct {
	Skip           bool    `json:"skip,omitempty"`
	Reorder        *int    `json:"reorder,omitempty"`
	HomeworkNotes  string  `json:"homeworkNotes,omitempty"`
	CustomHomework string  `json:"customHomework,omitempty"`
}

// PlanRequest is one plan-generation request.
type PlanRequest struct {
	ModuleIDs               []string                  `json:"moduleIds"`
	PaceMultiplier          float64                   `json:"paceMultiplier,omitempty"`
	ModuleOverrides         map[string]ModuleOverride `json:"moduleOverrides,omitempty"`
	PlanName                string                    `json:"planName,omitempty"`
	PlanNotes               string                    `json:"planNotes,omitempty"`
	CheckpointIntervalWeeks int                       `json:"checkpointIntervalWeeks,omitempty"`
	AdditionalAssessments   []string                  `json:"additionalAssessments,omitempty"`
}

// PlanModule is one laid-out module on the plan's day timeline. Days
// and weeks are 1-based and inclusive.
type PlanModule struct {
	ModuleID         string              `json:"moduleId"`
	ModuleName       string              `json:"moduleName"`
	Category         string              `json:"category"`
	Stage            string              `json:"stage"`
	Difficulty       int                 `json:"difficulty"`
	StartDay         int                 `json:"startDay"`
	EndDay           int                 `json:"endDay"`
	DurationDays     int                 `json:"durationDays"`
	StartWeek        int                 `json:"startWeek"`
	EndWeek          int                 `json:"endWeek"`
	ActivitiesPerDay int                 `json:"activitiesPerDay"`
	WeeklyActivities int                 `json:"weeklyActivities"`
	Skills           []string            `json:"skills"`
	ExpertFrameworks []string            `json:"expertFrameworks"`
	Milestones       []catalog.Milestone `json:"-"`
	HomeworkNotes    string              `json:"homeworkNotes,omitempty"`
	CustomHomework   string              `json:"customHomework,omitempty"`
}

// Checkpoint is a scheduled assessment point.
type Checkpoint struct {
	Week        int      `json:"week"`
	Kind        string   `json:"kind"`
	Label       string   `json:"label"`
	Assessments []string `json:"assessments"`
}

// MilestoneEntry is one ledger row, pending until evidenced.
type MilestoneEntry struct {
	ModuleID   string `json:"moduleId"`
	ModuleName string `json:"moduleName"`
	Name       string `json:"name"`
	Metric     string `json:"metric"`
	Target     string `json:"target"`
	Status     string `json:"status"`
}

// DifficultyStep is one entry in the plan's difficulty progression.
type DifficultyStep struct {
	ModuleID   string `json:"moduleId"`
	Difficulty int    `json:"difficulty"`
	StartWeek  int    `json:"startWeek"`
	EndWeek    int    `json:"endWeek"`
}

// Summary aggregates what the plan covers.
type Summary struct {
	Stages             []string `json:"stages"`
	ExpertsCovered     []string `json:"expertsCovered"`
	SkillsCovered      []string `json:"skillsCovered"`
	AssessmentsTracked []string `json:"assessmentsTracked"`
}

// Plan is the sequenced output. Immutable once built: progress is
// computed against it, never into it.
type Plan struct {
	ID                    string           `json:"id"`
	Name                  string           `json:"name"`
	Notes                 string           `json:"notes,omitempty"`
	PaceMultiplier        float64          `json:"paceMultiplier"`
	TotalDays             int              `json:"totalDays"`
	TotalWeeks            int              `json:"totalWeeks"`
	WeeklyPlan            []PlanModule     `json:"weeklyPlan"`
	Checkpoints           []Checkpoint     `json:"checkpoints"`
	Milestones            []MilestoneEntry `json:"milestones"`
	DifficultyProgression []DifficultyStep `json:"difficultyProgression"`
	Summary               Summary          `json:"summary"`
}

// BuildPlan sequences the requested modules onto a day timeline.
// Unknown module ids are dropped with a log entry. An empty request
// yields a valid zero-day plan, never an error. The caller assigns ID
// and persists the result.
func BuildPlan(req PlanRequest, log *logger.Logger) Plan {
	if log == nil {
		log = logger.NewNop()
	}
	log = log.With("step", "BuildPlan")

	pace := req.PaceMultiplier
	if pace <= 0 {
		pace = 1
	}
	interval := req.CheckpointIntervalWeeks
	if interval <= 0 {
		interval = 2
	}

	var modules []catalog.Module
	for _, id := range req.ModuleIDs {
		m, ok := catalog.ModuleByID(id)
		if !ok {
			log.Warn("Unknown module id in plan request, dropping", "module_id", id)
			continue
		}
		if req.ModuleOverrides[id].Skip {
			continue
		}
		modules = append(modules, m)
	}
	modules = applyReordering(modules, req.ModuleOverrides)

	plan := Plan{
		Name:           req.PlanName,
		Notes:          req.PlanNotes,
		PaceMultiplier: pace,
	}
	if plan.Name == "" {
		plan.Name = "Treatment Plan"
	}

	currentDay := 0
	for _, m := range modules {
		days := int(math.Round(float64(m.Duration.Days) / pace))
		if days < 1 {
			days = 1
		}
		startDay := currentDay + 1
		endDay := currentDay + days
		ov := req.ModuleOverrides[m.ID]
		plan.WeeklyPlan = append(plan.WeeklyPlan, PlanModule{
			ModuleID:         m.ID,
			ModuleName:       m.Name,
			Category:         m.Category,
			Stage:            m.Stage,
			Difficulty:       m.Difficulty,
			StartDay:         startDay,
			EndDay:           endDay,
			DurationDays:     days,
			StartWeek:        weekOf(startDay),
			EndWeek:          weekOf(endDay),
			ActivitiesPerDay: m.Duration.ActivitiesPerDay,
			WeeklyActivities: m.Duration.WeeklyActivities,
			Skills:           m.Skills,
			ExpertFrameworks: m.ExpertFrameworks,
			Milestones:       m.Milestones,
			HomeworkNotes:    ov.HomeworkNotes,
			CustomHomework:   ov.CustomHomework,
		})
		currentDay = endDay
	}
	plan.TotalDays = currentDay
	plan.TotalWeeks = weekOf(currentDay)

	plan.Checkpoints = buildCheckpoints(modules, plan.TotalWeeks, interval, req.AdditionalAssessments)

	for _, m := range modules {
		for _, ms := range m.Milestones {
			plan.Milestones = append(plan.Milestones, MilestoneEntry{
				ModuleID:   m.ID,
				ModuleName: m.Name,
				Name:       ms.Name,
				Metric:     ms.Metric,
				Target:     ms.Target,
				Status:     "pending",
			})
		}
	}

	for _, pm := range plan.WeeklyPlan {
		plan.DifficultyProgression = append(plan.DifficultyProgression, DifficultyStep{
			ModuleID:   pm.ModuleID,
			Difficulty: pm.Difficulty,
			StartWeek:  pm.StartWeek,
			EndWeek:    pm.EndWeek,
		})
	}

	plan.Summary = Summary{
		Stages:             uniqueStrings(modules, func(m catalog.Module) []string { return []string{m.Stage} }),
		ExpertsCovered:     uniqueStrings(modules, func(m catalog.Module) []string { return m.ExpertFrameworks }),
		SkillsCovered:      uniqueStrings(modules, func(m catalog.Module) []string { return m.Skills }),
		AssessmentsTracked: trackedAssessments(modules, req.AdditionalAssessments),
	}

	log.Info("Treatment plan built",
		"modules", len(plan.WeeklyPlan),
		"total_days", plan.TotalDays,
		"total_weeks", plan.TotalWeeks,
		"pace", pace,
	)
	return plan
}

// PrerequisiteViolations checks a built plan against the catalog's
// declared module prerequisites. Advisory only: the sequencer never
// enforces order, this lets a caller warn about it. A nil result means
// the order honors every declared prerequisite.
func PrerequisiteViolations(plan Plan) []string {
	seen := map[string]bool{}
	inPlan := map[string]bool{}
	for _, pm := range plan.WeeklyPlan {
		inPlan[pm.ModuleID] = true
	}
	var out []string
	for _, pm := range plan.WeeklyPlan {
		m, ok := catalog.ModuleByID(pm.ModuleID)
		if ok {
			for _, pre := range m.Prerequisites {
				if inPlan[pre] && !seen[pre] {
					out = append(out, pm.ModuleID+" is scheduled before its prerequisite "+pre)
				}
			}
		}
		seen[pm.ModuleID] = true
	}
	return out
}

// applyReordering places explicitly positioned modules at their target
// index and fills remaining slots with the rest in original order.
func applyReordering(modules []catalog.Module, overrides map[string]ModuleOverride) []catalog.Module {
	type positioned struct {
		module catalog.Module
		order  int
	}
	var ordered []positioned
	var unordered []catalog.Module
	for _, m := range modules {
		if ov, ok := overrides[m.ID]; ok && ov.Reorder != nil {
			ordered = append(ordered, positioned{m, *ov.Reorder})
		} else {
			unordered = append(unordered, m)
		}
	}
	if len(ordered) == 0 {
		return modules
	}
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].order < ordered[j].order })

	result := make([]catalog.Module, 0, len(modules))
	oi, ui := 0, 0
	for i := 0; i < len(modules); i++ {
		if oi < len(ordered) && ordered[oi].order == i {
			result = append(result, ordered[oi].module)
			oi++
		} else if ui < len(unordered) {
			result = append(result, unordered[ui])
			ui++
		}
	}
	for ; oi < len(ordered); oi++ {
		result = append(result, ordered[oi].module)
	}
	for ; ui < len(unordered); ui++ {
		result = append(result, unordered[ui])
	}
	return result
}

func buildCheckpoints(modules []catalog.Module, totalWeeks, intervalWeeks int, additional []string) []Checkpoint {
	assessments := trackedAssessments(modules, additional)
	checkpoints := []Checkpoint{{
		Week:        0,
		Kind:        "baseline",
		Label:       "Baseline Assessment",
		Assessments: assessments,
	}}
	for week := intervalWeeks; week < totalWeeks; week += intervalWeeks {
		checkpoints = append(checkpoints, Checkpoint{
			Week:        week,
			Kind:        "progress",
			Label:       "Progress Check",
			Assessments: assessments,
		})
	}
	checkpoints = append(checkpoints, Checkpoint{
		Week:        totalWeeks,
		Kind:        "completion",
		Label:       "Completion Assessment",
		Assessments: assessments,
	})
	return checkpoints
}

func trackedAssessments(modules []catalog.Module, additional []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, m := range modules {
		for _, a := range m.TargetAssessments {
			if !seen[a] {
				seen[a] = true
				out = append(out, a)
			}
		}
	}
	for _, a := range additional {
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	return out
}

func uniqueStrings(modules []catalog.Module, get func(catalog.Module) []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, m := range modules {
		for _, s := range get(m) {
			if s != "" && !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

func weekOf(day int) int {
	if day <= 0 {
		return 0
	}
	return (day + 6) / 7
}
