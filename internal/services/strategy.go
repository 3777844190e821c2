package services

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Gull-Stack/love-rescue-sub003/internal/logger"
	"github.com/Gull-Stack/love-rescue-sub003/internal/planner"
	"github.com/Gull-Stack/love-rescue-sub003/internal/profile"
	"github.com/Gull-Stack/love-rescue-sub003/internal/repos"
	"github.com/Gull-Stack/love-rescue-sub003/internal/types"
)

const (
	cycleWeeks           = 6
	generateRateLimit    = 3
	generateRateWindow   = time.Hour
	activeCycleCacheTTL  = 24 * time.Hour
	activeCycleCacheKeyF = "strategy:active:%s"
)

var strategyTracer trace.Tracer = otel.Tracer("love-rescue/strategy")

// CycleHistory groups one generation run's weekly strategies.
type CycleHistory struct {
	Cycle int               `json:"cycle"`
	Weeks []*types.Strategy `json:"weeks"`
}

type StrategyService interface {
	GenerateCycle(ctx context.Context, relationshipID uuid.UUID) ([]*types.Strategy, error)
	GetActiveCycle(ctx context.Context, relationshipID uuid.UUID) ([]*types.Strategy, error)
	UpdateProgress(ctx context.Context, strategyID uuid.UUID, progress int) error
	History(ctx context.Context, relationshipID uuid.UUID) ([]CycleHistory, error)
}

type strategyService struct {
	db                *gorm.DB
	log               *logger.Logger
	relationshipRepo  repos.RelationshipRepo
	strategyRepo      repos.StrategyRepo
	assessmentService AssessmentService
	cache             CacheService
}

func NewStrategyService(
	db *gorm.DB,
	log *logger.Logger,
	relationshipRepo repos.RelationshipRepo,
	strategyRepo repos.StrategyRepo,
	assessmentService AssessmentService,
	cache CacheService,
) StrategyService {
	serviceLog := log.With("service", "StrategyService")
	return &strategyService{
		db:                db,
		log:               serviceLog,
		relationshipRepo:  relationshipRepo,
		strategyRepo:      strategyRepo,
		assessmentService: assessmentService,
		cache:             cache,
	}
}

// GenerateCycle composes six weekly plans for the relationship and
// replaces the active cycle. Paired composition is used once both
// partners have joined; before that each week is built from the
// initiating partner's profile alone.
func (ss *strategyService) GenerateCycle(ctx context.Context, relationshipID uuid.UUID) ([]*types.Strategy, error) {
	ctx, span := strategyTracer.Start(ctx, "strategy.GenerateCycle")
	defer span.End()

	if ss.cache != nil {
		allowed, rlErr := ss.cache.RateAllow(ctx, "strategy:gen:"+relationshipID.String(), generateRateLimit, generateRateWindow)
		if rlErr != nil {
			ss.log.Warn("Rate limit check failed, allowing request", "error", rlErr)
		} else if !allowed {
			return nil, fmt.Errorf("plan generation limit reached, try again later")
		}
	}

	relationships, relErr := ss.relationshipRepo.GetByIDs(ctx, nil, []uuid.UUID{relationshipID})
	if relErr != nil {
		return nil, fmt.Errorf("failed to load relationship: %w", relErr)
	}
	if len(relationships) == 0 {
		return nil, fmt.Errorf("relationship not found")
	}
	rel := relationships[0]

	profileA, paErr := ss.assessmentService.LoadProfile(ctx, rel.User1ID)
	if paErr != nil {
		return nil, fmt.Errorf("failed to load partner profile: %w", paErr)
	}

	mode := "solo"
	var profileB profile.Profile
	if rel.User2ID != nil {
		pb, pbErr := ss.assessmentService.LoadProfile(ctx, *rel.User2ID)
		if pbErr != nil {
			return nil, fmt.Errorf("failed to load partner profile: %w", pbErr)
		}
		profileB = pb
		mode = "paired"
	}

	cycleID := uuid.New()
	baseSeed := int64(binary.BigEndian.Uint64(cycleID[:8]))

	plans := make([]planner.WeekPlan, cycleWeeks)
	g, gctx := errgroup.WithContext(ctx)
	for week := 1; week <= cycleWeeks; week++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(baseSeed + int64(week)))
			if mode == "paired" {
				plans[week-1] = planner.ComposePaired(profileA, profileB, week, rng, ss.log)
			} else {
				plans[week-1] = planner.ComposeSolo(profileA, week, rng, ss.log)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compose weekly plans: %w", err)
	}

	maxCycle, mcErr := ss.strategyRepo.MaxCycleNumber(ctx, nil, relationshipID)
	if mcErr != nil {
		return nil, fmt.Errorf("failed to determine cycle number: %w", mcErr)
	}
	cycleNumber := maxCycle + 1
	startDate := time.Now().Truncate(24 * time.Hour)

	rows := make([]*types.Strategy, 0, cycleWeeks)
	for i, wp := range plans {
		row, rowErr := strategyRow(relationshipID, cycleNumber, wp, startDate.AddDate(0, 0, i*7))
		if rowErr != nil {
			return nil, rowErr
		}
		rows = append(rows, row)
	}

	if err := ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if dErr := ss.strategyRepo.DeactivateByRelationshipID(ctx, tx, relationshipID); dErr != nil {
			return fmt.Errorf("failed to deactivate previous cycle: %w", dErr)
		}
		if _, cErr := ss.strategyRepo.Create(ctx, tx, rows); cErr != nil {
			return fmt.Errorf("failed to persist cycle: %w", cErr)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf(activeCycleCacheKeyF, relationshipID)
	if ss.cache != nil {
		if cErr := ss.cache.SetJSON(ctx, cacheKey, rows, activeCycleCacheTTL); cErr != nil {
			ss.log.Warn("Failed to cache active cycle", "error", cErr)
		}
	}
	ss.log.Info("Generated strategy cycle", "relationship_id", relationshipID, "cycle", cycleNumber, "mode", mode)
	return rows, nil
}

func (ss *strategyService) GetActiveCycle(ctx context.Context, relationshipID uuid.UUID) ([]*types.Strategy, error) {
	cacheKey := fmt.Sprintf(activeCycleCacheKeyF, relationshipID)
	if ss.cache != nil {
		var cached []*types.Strategy
		if hit, err := ss.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit && len(cached) > 0 {
			return cached, nil
		}
	}
	rows, err := ss.strategyRepo.GetActiveByRelationshipID(ctx, nil, relationshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active cycle: %w", err)
	}
	if ss.cache != nil && len(rows) > 0 {
		if cErr := ss.cache.SetJSON(ctx, cacheKey, rows, activeCycleCacheTTL); cErr != nil {
			ss.log.Warn("Failed to cache active cycle", "error", cErr)
		}
	}
	return rows, nil
}

func (ss *strategyService) UpdateProgress(ctx context.Context, strategyID uuid.UUID, progress int) error {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	if err := ss.strategyRepo.UpdateProgress(ctx, nil, strategyID, progress); err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}
	return nil
}

func (ss *strategyService) History(ctx context.Context, relationshipID uuid.UUID) ([]CycleHistory, error) {
	rows, err := ss.strategyRepo.GetByRelationshipID(ctx, nil, relationshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to load strategy history: %w", err)
	}
	var out []CycleHistory
	for _, row := range rows {
		if len(out) == 0 || out[len(out)-1].Cycle != row.CycleNumber {
			out = append(out, CycleHistory{Cycle: row.CycleNumber})
		}
		last := &out[len(out)-1]
		last.Weeks = append(last.Weeks, row)
	}
	return out, nil
}

func strategyRow(relationshipID uuid.UUID, cycleNumber int, wp planner.WeekPlan, startDate time.Time) (*types.Strategy, error) {
	introJSON, err := json.Marshal(wp.Introduction)
	if err != nil {
		return nil, fmt.Errorf("failed to encode introduction: %w", err)
	}
	daysJSON, err := json.Marshal(wp.Days)
	if err != nil {
		return nil, fmt.Errorf("failed to encode daily activities: %w", err)
	}
	goalsJSON, err := json.Marshal(wp.Goals)
	if err != nil {
		return nil, fmt.Errorf("failed to encode weekly goals: %w", err)
	}
	insightsJSON, err := json.Marshal(wp.Insights)
	if err != nil {
		return nil, fmt.Errorf("failed to encode insights: %w", err)
	}
	return &types.Strategy{
		ID:              uuid.New(),
		RelationshipID:  relationshipID,
		CycleNumber:     cycleNumber,
		Week:            wp.Week,
		Mode:            wp.Mode,
		Introduction:    datatypes.JSON(introJSON),
		DailyActivities: datatypes.JSON(daysJSON),
		WeeklyGoals:     datatypes.JSON(goalsJSON),
		Insights:        datatypes.JSON(insightsJSON),
		IsActive:        true,
		StartDate:       startDate,
		EndDate:         startDate.AddDate(0, 0, 6),
	}, nil
}
