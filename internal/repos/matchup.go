package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gull-Stack/love-rescue-sub003/internal/logger"
	"github.com/Gull-Stack/love-rescue-sub003/internal/types"
)

type MatchupRepo interface {
	Create(ctx context.Context, tx *gorm.DB, matchups []*types.Matchup) ([]*types.Matchup, error)
	GetLatestByRelationshipID(ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID) (*types.Matchup, error)
}

type matchupRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMatchupRepo(db *gorm.DB, baseLog *logger.Logger) MatchupRepo {
	repoLog := baseLog.With("repo", "MatchupRepo")
	return &matchupRepo{db: db, log: repoLog}
}

func (mr *matchupRepo) Create(ctx context.Context, tx *gorm.DB, matchups []*types.Matchup) ([]*types.Matchup, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	if len(matchups) == 0 {
		return []*types.Matchup{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&matchups).Error; err != nil {
		return nil, err
	}

	return matchups, nil
}

func (mr *matchupRepo) GetLatestByRelationshipID(ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID) (*types.Matchup, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	var result types.Matchup
	err := transaction.WithContext(ctx).
		Where("relationship_id = ?", relationshipID).
		Order("generated_at DESC").
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &result, nil
}
