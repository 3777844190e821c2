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
	"github.com/Gull-Stack/love-rescue-sub003/internal/scoring"
	"github.com/Gull-Stack/love-rescue-sub003/internal/types"
)

type MatchupService interface {
	Generate(ctx context.Context, relationshipID uuid.UUID) (*types.Matchup, error)
	GetLatest(ctx context.Context, relationshipID uuid.UUID) (*types.Matchup, error)
}

type matchupService struct {
	db                *gorm.DB
	log               *logger.Logger
	relationshipRepo  repos.RelationshipRepo
	matchupRepo       repos.MatchupRepo
	assessmentService AssessmentService
}

func NewMatchupService(
	db *gorm.DB,
	log *logger.Logger,
	relationshipRepo repos.RelationshipRepo,
	matchupRepo repos.MatchupRepo,
	assessmentService AssessmentService,
) MatchupService {
	serviceLog := log.With("service", "MatchupService")
	return &matchupService{
		db:                db,
		log:               serviceLog,
		relationshipRepo:  relationshipRepo,
		matchupRepo:       matchupRepo,
		assessmentService: assessmentService,
	}
}

// Generate scores couple compatibility from both partners' latest
// assessment results. Both partners must have joined the relationship.
func (ms *matchupService) Generate(ctx context.Context, relationshipID uuid.UUID) (*types.Matchup, error) {
	relationships, relErr := ms.relationshipRepo.GetByIDs(ctx, nil, []uuid.UUID{relationshipID})
	if relErr != nil {
		return nil, fmt.Errorf("failed to load relationship: %w", relErr)
	}
	if len(relationships) == 0 {
		return nil, fmt.Errorf("relationship not found")
	}
	rel := relationships[0]
	if rel.User2ID == nil {
		return nil, fmt.Errorf("partner has not joined yet")
	}

	input1, e1 := ms.assessmentService.LatestResults(ctx, rel.User1ID)
	if e1 != nil {
		return nil, fmt.Errorf("failed to load partner results: %w", e1)
	}
	input2, e2 := ms.assessmentService.LatestResults(ctx, *rel.User2ID)
	if e2 != nil {
		return nil, fmt.Errorf("failed to load partner results: %w", e2)
	}

	result := scoring.MatchupScore(input1, input2)
	if result.AssessmentsCovered == 0 {
		return nil, fmt.Errorf("no shared completed assessments")
	}

	alignmentsJSON, aErr := json.Marshal(result.Alignments)
	if aErr != nil {
		return nil, fmt.Errorf("failed to encode alignments: %w", aErr)
	}
	detailsJSON, dErr := json.Marshal(result)
	if dErr != nil {
		return nil, fmt.Errorf("failed to encode matchup details: %w", dErr)
	}

	row := &types.Matchup{
		ID:             uuid.New(),
		RelationshipID: relationshipID,
		Score:          result.Score,
		Alignments:     datatypes.JSON(alignmentsJSON),
		Details:        datatypes.JSON(detailsJSON),
		GeneratedAt:    time.Now(),
	}
	if _, cErr := ms.matchupRepo.Create(ctx, nil, []*types.Matchup{row}); cErr != nil {
		return nil, fmt.Errorf("failed to persist matchup: %w", cErr)
	}
	ms.log.Info("Matchup generated", "relationship_id", relationshipID, "score", result.Score, "assessments", result.AssessmentsCovered)
	return row, nil
}

func (ms *matchupService) GetLatest(ctx context.Context, relationshipID uuid.UUID) (*types.Matchup, error) {
	return ms.matchupRepo.GetLatestByRelationshipID(ctx, nil, relationshipID)
}
