package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gull-Stack/love-rescue-sub003/internal/logger"
	"github.com/Gull-Stack/love-rescue-sub003/internal/types"
)

type TreatmentPlanRepo interface {
	Create(ctx context.Context, tx *gorm.DB, plans []*types.TreatmentPlan) ([]*types.TreatmentPlan, error)
	GetByID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) (*types.TreatmentPlan, error)
	GetByCoupleID(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID) ([]*types.TreatmentPlan, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, planID uuid.UUID, status string) error
}

type treatmentPlanRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTreatmentPlanRepo(db *gorm.DB, baseLog *logger.Logger) TreatmentPlanRepo {
	repoLog := baseLog.With("repo", "TreatmentPlanRepo")
	return &treatmentPlanRepo{db: db, log: repoLog}
}

func (tr *treatmentPlanRepo) Create(ctx context.Context, tx *gorm.DB, plans []*types.TreatmentPlan) ([]*types.TreatmentPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if len(plans) == 0 {
		return []*types.TreatmentPlan{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&plans).Error; err != nil {
		return nil, err
	}

	return plans, nil
}

func (tr *treatmentPlanRepo) GetByID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) (*types.TreatmentPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var result types.TreatmentPlan
	err := transaction.WithContext(ctx).
		Where("id = ?", planID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (tr *treatmentPlanRepo) GetByCoupleID(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID) ([]*types.TreatmentPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.TreatmentPlan
	if err := transaction.WithContext(ctx).
		Where("couple_id = ?", coupleID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (tr *treatmentPlanRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, planID uuid.UUID, status string) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	return transaction.WithContext(ctx).
		Model(&types.TreatmentPlan{}).
		Where("id = ?", planID).
		Update("status", status).Error
}
