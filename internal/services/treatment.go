package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Gull-Stack/love-rescue-sub003/internal/logger"
	"github.com/Gull-Stack/love-rescue-sub003/internal/repos"
	"github.com/Gull-Stack/love-rescue-sub003/internal/treatment"
	"github.com/Gull-Stack/love-rescue-sub003/internal/types"
)

type TreatmentService interface {
	Options(ctx context.Context, userID uuid.UUID, approach string) (treatment.Options, error)
	CreatePlan(ctx context.Context, therapistID, coupleID uuid.UUID, req treatment.PlanRequest) (*types.TreatmentPlan, treatment.Plan, error)
	GetPlan(ctx context.Context, planID uuid.UUID) (*types.TreatmentPlan, treatment.Plan, error)
	ListPlans(ctx context.Context, coupleID uuid.UUID) ([]*types.TreatmentPlan, error)
	RecordEvent(ctx context.Context, event *types.ActivityEvent) error
	Progress(ctx context.Context, planID uuid.UUID) (treatment.Report, error)
}

type treatmentService struct {
	db                *gorm.DB
	log               *logger.Logger
	planRepo          repos.TreatmentPlanRepo
	eventRepo         repos.ActivityEventRepo
	assessmentService AssessmentService
}

func NewTreatmentService(
	db *gorm.DB,
	log *logger.Logger,
	planRepo repos.TreatmentPlanRepo,
	eventRepo repos.ActivityEventRepo,
	assessmentService AssessmentService,
) TreatmentService {
	serviceLog := log.With("service", "TreatmentService")
	return &treatmentService{
		db:                db,
		log:               serviceLog,
		planRepo:          planRepo,
		eventRepo:         eventRepo,
		assessmentService: assessmentService,
	}
}

// Options recommends modules for the user's extracted profile under the
// given therapeutic approach.
func (ts *treatmentService) Options(ctx context.Context, userID uuid.UUID, approach string) (treatment.Options, error) {
	p, err := ts.assessmentService.LoadProfile(ctx, userID)
	if err != nil {
		return treatment.Options{}, fmt.Errorf("failed to load profile: %w", err)
	}
	return treatment.RecommendModules(p, approach, ts.log), nil
}

// CreatePlan sequences the requested modules and persists the full plan
// document. The engine plan id keeps the tp_<unix>_<fragment> shape the
// mobile clients already parse.
func (ts *treatmentService) CreatePlan(ctx context.Context, therapistID, coupleID uuid.UUID, req treatment.PlanRequest) (*types.TreatmentPlan, treatment.Plan, error) {
	plan := treatment.BuildPlan(req, ts.log)
	rowID := uuid.New()
	plan.ID = fmt.Sprintf("tp_%d_%s", time.Now().Unix(), rowID.String()[:8])

	if violations := treatment.PrerequisiteViolations(plan); len(violations) > 0 {
		ts.log.Warn("Plan created with prerequisite violations", "plan_id", plan.ID, "violations", violations)
	}

	planJSON, mErr := json.Marshal(plan)
	if mErr != nil {
		return nil, treatment.Plan{}, fmt.Errorf("failed to encode plan: %w", mErr)
	}
	name := plan.Name
	if name == "" {
		name = "Treatment Plan"
	}
	row := &types.TreatmentPlan{
		ID:          rowID,
		TherapistID: therapistID,
		CoupleID:    coupleID,
		Name:        name,
		Status:      "active",
		Plan:        datatypes.JSON(planJSON),
	}
	if _, cErr := ts.planRepo.Create(ctx, nil, []*types.TreatmentPlan{row}); cErr != nil {
		return nil, treatment.Plan{}, fmt.Errorf("failed to persist plan: %w", cErr)
	}
	ts.log.Info("Treatment plan created", "plan_id", plan.ID, "modules", len(plan.WeeklyPlan), "total_days", plan.TotalDays)
	return row, plan, nil
}

func (ts *treatmentService) GetPlan(ctx context.Context, planID uuid.UUID) (*types.TreatmentPlan, treatment.Plan, error) {
	row, err := ts.planRepo.GetByID(ctx, nil, planID)
	if err != nil {
		return nil, treatment.Plan{}, fmt.Errorf("failed to load plan: %w", err)
	}
	if row == nil {
		return nil, treatment.Plan{}, fmt.Errorf("plan not found")
	}
	var plan treatment.Plan
	if err := json.Unmarshal(row.Plan, &plan); err != nil {
		return nil, treatment.Plan{}, fmt.Errorf("failed to decode stored plan: %w", err)
	}
	return row, plan, nil
}

func (ts *treatmentService) ListPlans(ctx context.Context, coupleID uuid.UUID) ([]*types.TreatmentPlan, error) {
	return ts.planRepo.GetByCoupleID(ctx, nil, coupleID)
}

func (ts *treatmentService) RecordEvent(ctx context.Context, event *types.ActivityEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CompletedAt.IsZero() {
		event.CompletedAt = time.Now()
	}
	if _, err := ts.eventRepo.Create(ctx, nil, []*types.ActivityEvent{event}); err != nil {
		return fmt.Errorf("failed to record activity event: %w", err)
	}
	return nil
}

// Progress replays the plan's recorded activity events into completion
// evidence and computes the progress report. The current day is derived
// from the plan's creation time.
func (ts *treatmentService) Progress(ctx context.Context, planID uuid.UUID) (treatment.Report, error) {
	row, plan, err := ts.GetPlan(ctx, planID)
	if err != nil {
		return treatment.Report{}, err
	}

	events, evErr := ts.eventRepo.GetByPlanID(ctx, nil, planID)
	if evErr != nil {
		return treatment.Report{}, fmt.Errorf("failed to load activity events: %w", evErr)
	}

	ev := evidenceFromEvents(events, ts.log)
	ev.CurrentDay = int(time.Since(row.CreatedAt).Hours()/24) + 1

	return treatment.Progress(plan, ev, ts.log), nil
}

func evidenceFromEvents(events []*types.ActivityEvent, log *logger.Logger) treatment.Evidence {
	var ev treatment.Evidence
	for _, e := range events {
		switch e.Kind {
		case "activity":
			ev.CompletedActivities = append(ev.CompletedActivities, treatment.CompletedActivity{
				ModuleID:    e.ModuleID,
				ActivityID:  e.ActivityID,
				CompletedAt: e.CompletedAt,
			})
		case "assessment":
			var payload struct {
				Type  string `json:"type"`
				Score any    `json:"score"`
			}
			if err := json.Unmarshal(e.Payload, &payload); err != nil || payload.Type == "" {
				log.Warn("Skipping malformed assessment event", "event_id", e.ID, "error", err)
				continue
			}
			ev.AssessmentScores = append(ev.AssessmentScores, treatment.AssessmentScore{
				Type:        payload.Type,
				Score:       payload.Score,
				CompletedAt: e.CompletedAt,
			})
		case "milestone":
			var payload struct {
				Name string `json:"name"`
			}
			if err := json.Unmarshal(e.Payload, &payload); err != nil || payload.Name == "" {
				log.Warn("Skipping malformed milestone event", "event_id", e.ID, "error", err)
				continue
			}
			ev.MilestoneAchievements = append(ev.MilestoneAchievements, treatment.MilestoneAchievement{
				ModuleID:   e.ModuleID,
				Name:       payload.Name,
				AchievedAt: e.CompletedAt,
			})
		default:
			log.Warn("Skipping activity event with unknown kind", "event_id", e.ID, "kind", e.Kind)
		}
	}
	return ev
}
