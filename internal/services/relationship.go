package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gull-Stack/love-rescue-sub003/internal/logger"
	"github.com/Gull-Stack/love-rescue-sub003/internal/repos"
	"github.com/Gull-Stack/love-rescue-sub003/internal/types"
)

const inviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type RelationshipService interface {
	CreateInvite(ctx context.Context, userID uuid.UUID) (*types.Relationship, error)
	JoinByCode(ctx context.Context, userID uuid.UUID, inviteCode string) (*types.Relationship, error)
	GetForUser(ctx context.Context, userID uuid.UUID) (*types.Relationship, error)
}

type relationshipService struct {
	db               *gorm.DB
	log              *logger.Logger
	relationshipRepo repos.RelationshipRepo
}

func NewRelationshipService(db *gorm.DB, log *logger.Logger, relationshipRepo repos.RelationshipRepo) RelationshipService {
	serviceLog := log.With("service", "RelationshipService")
	return &relationshipService{db: db, log: serviceLog, relationshipRepo: relationshipRepo}
}

func (rs *relationshipService) CreateInvite(ctx context.Context, userID uuid.UUID) (*types.Relationship, error) {
	existing, exErr := rs.relationshipRepo.GetByUserID(ctx, nil, userID)
	if exErr != nil {
		return nil, fmt.Errorf("failed to check existing relationship: %w", exErr)
	}
	if existing != nil {
		return existing, nil
	}

	code, codeErr := inviteCode(8)
	if codeErr != nil {
		return nil, fmt.Errorf("failed to generate invite code: %w", codeErr)
	}
	rel := &types.Relationship{
		ID:         uuid.New(),
		User1ID:    userID,
		InviteCode: code,
	}
	if _, cErr := rs.relationshipRepo.Create(ctx, nil, []*types.Relationship{rel}); cErr != nil {
		return nil, fmt.Errorf("failed to create relationship: %w", cErr)
	}
	rs.log.Info("Relationship invite created", "relationship_id", rel.ID)
	return rel, nil
}

func (rs *relationshipService) JoinByCode(ctx context.Context, userID uuid.UUID, inviteCode string) (*types.Relationship, error) {
	inviteCode = strings.ToUpper(strings.TrimSpace(inviteCode))
	rel, err := rs.relationshipRepo.GetByInviteCode(ctx, nil, inviteCode)
	if err != nil {
		return nil, fmt.Errorf("failed to look up invite code: %w", err)
	}
	if rel == nil {
		return nil, fmt.Errorf("invalid invite code")
	}
	if rel.User1ID == userID {
		return nil, fmt.Errorf("cannot join your own invite")
	}
	if rel.User2ID != nil {
		return nil, fmt.Errorf("invite already redeemed")
	}
	if err := rs.relationshipRepo.SetPartner(ctx, nil, rel.ID, userID); err != nil {
		return nil, fmt.Errorf("failed to join relationship: %w", err)
	}
	rel.User2ID = &userID
	rs.log.Info("Partner joined relationship", "relationship_id", rel.ID)
	return rel, nil
}

func (rs *relationshipService) GetForUser(ctx context.Context, userID uuid.UUID) (*types.Relationship, error) {
	return rs.relationshipRepo.GetByUserID(ctx, nil, userID)
}

func inviteCode(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = inviteCodeAlphabet[int(b)%len(inviteCodeAlphabet)]
	}
	return string(out), nil
}
