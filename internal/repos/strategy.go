package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gull-Stack/love-rescue-sub003/internal/logger"
	"github.com/Gull-Stack/love-rescue-sub003/internal/types"
)

type StrategyRepo interface {
	Create(ctx context.Context, tx *gorm.DB, strategies []*types.Strategy) ([]*types.Strategy, error)
	GetActiveByRelationshipID(ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID) ([]*types.Strategy, error)
	GetByRelationshipID(ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID) ([]*types.Strategy, error)
	MaxCycleNumber(ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID) (int, error)
	DeactivateByRelationshipID(ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID) error
	UpdateProgress(ctx context.Context, tx *gorm.DB, strategyID uuid.UUID, progress int) error
}

type strategyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStrategyRepo(db *gorm.DB, baseLog *logger.Logger) StrategyRepo {
	repoLog := baseLog.With("repo", "StrategyRepo")
	return &strategyRepo{db: db, log: repoLog}
}

func (sr *strategyRepo) Create(ctx context.Context, tx *gorm.DB, strategies []*types.Strategy) ([]*types.Strategy, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if len(strategies) == 0 {
		return []*types.Strategy{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&strategies).Error; err != nil {
		return nil, err
	}

	return strategies, nil
}

func (sr *strategyRepo) GetActiveByRelationshipID(ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID) ([]*types.Strategy, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.Strategy
	if err := transaction.WithContext(ctx).
		Where("relationship_id = ? AND is_active = ?", relationshipID, true).
		Order("week ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (sr *strategyRepo) GetByRelationshipID(ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID) ([]*types.Strategy, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.Strategy
	if err := transaction.WithContext(ctx).
		Where("relationship_id = ?", relationshipID).
		Order("cycle_number ASC, week ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (sr *strategyRepo) MaxCycleNumber(ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID) (int, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var maxCycle int
	if err := transaction.WithContext(ctx).
		Model(&types.Strategy{}).
		Where("relationship_id = ?", relationshipID).
		Select("COALESCE(MAX(cycle_number), 0)").
		Scan(&maxCycle).Error; err != nil {
		return 0, err
	}

	return maxCycle, nil
}

func (sr *strategyRepo) DeactivateByRelationshipID(ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	return transaction.WithContext(ctx).
		Model(&types.Strategy{}).
		Where("relationship_id = ? AND is_active = ?", relationshipID, true).
		Update("is_active", false).Error
}

func (sr *strategyRepo) UpdateProgress(ctx context.Context, tx *gorm.DB, strategyID uuid.UUID, progress int) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	return transaction.WithContext(ctx).
		Model(&types.Strategy{}).
		Where("id = ?", strategyID).
		Update("progress", progress).Error
}
