package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gull-Stack/love-rescue-sub003/internal/logger"
	"github.com/Gull-Stack/love-rescue-sub003/internal/types"
)

type ActivityEventRepo interface {
	Create(ctx context.Context, tx *gorm.DB, events []*types.ActivityEvent) ([]*types.ActivityEvent, error)
	GetByPlanID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) ([]*types.ActivityEvent, error)
}

type activityEventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewActivityEventRepo(db *gorm.DB, baseLog *logger.Logger) ActivityEventRepo {
	repoLog := baseLog.With("repo", "ActivityEventRepo")
	return &activityEventRepo{db: db, log: repoLog}
}

func (aer *activityEventRepo) Create(ctx context.Context, tx *gorm.DB, events []*types.ActivityEvent) ([]*types.ActivityEvent, error) {
	transaction := tx
	if transaction == nil {
		transaction = aer.db
	}

	if len(events) == 0 {
		return []*types.ActivityEvent{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (aer *activityEventRepo) GetByPlanID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) ([]*types.ActivityEvent, error) {
	transaction := tx
	if transaction == nil {
		transaction = aer.db
	}

	var results []*types.ActivityEvent
	if err := transaction.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("completed_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}
