package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gull-Stack/love-rescue-sub003/internal/logger"
	"github.com/Gull-Stack/love-rescue-sub003/internal/types"
)

type RelationshipRepo interface {
	Create(ctx context.Context, tx *gorm.DB, relationships []*types.Relationship) ([]*types.Relationship, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, relationshipIDs []uuid.UUID) ([]*types.Relationship, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Relationship, error)
	GetByInviteCode(ctx context.Context, tx *gorm.DB, inviteCode string) (*types.Relationship, error)
	SetPartner(ctx context.Context, tx *gorm.DB, relationshipID, partnerID uuid.UUID) error
}

type relationshipRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRelationshipRepo(db *gorm.DB, baseLog *logger.Logger) RelationshipRepo {
	repoLog := baseLog.With("repo", "RelationshipRepo")
	return &relationshipRepo{db: db, log: repoLog}
}

func (rr *relationshipRepo) Create(ctx context.Context, tx *gorm.DB, relationships []*types.Relationship) ([]*types.Relationship, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	if len(relationships) == 0 {
		return []*types.Relationship{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&relationships).Error; err != nil {
		return nil, err
	}

	return relationships, nil
}

func (rr *relationshipRepo) GetByIDs(ctx context.Context, tx *gorm.DB, relationshipIDs []uuid.UUID) ([]*types.Relationship, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var results []*types.Relationship

	if len(relationshipIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", relationshipIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (rr *relationshipRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Relationship, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var result types.Relationship
	err := transaction.WithContext(ctx).
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (rr *relationshipRepo) GetByInviteCode(ctx context.Context, tx *gorm.DB, inviteCode string) (*types.Relationship, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var result types.Relationship
	err := transaction.WithContext(ctx).
		Where("invite_code = ?", inviteCode).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (rr *relationshipRepo) SetPartner(ctx context.Context, tx *gorm.DB, relationshipID, partnerID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	return transaction.WithContext(ctx).
		Model(&types.Relationship{}).
		Where("id = ?", relationshipID).
		Update("user2_id", partnerID).Error
}
