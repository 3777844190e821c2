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
	"github.com/Gull-Stack/love-rescue-sub003/internal/profile"
	"github.com/Gull-Stack/love-rescue-sub003/internal/repos"
	"github.com/Gull-Stack/love-rescue-sub003/internal/scoring"
	"github.com/Gull-Stack/love-rescue-sub003/internal/types"
)

type AssessmentService interface {
	Submit(ctx context.Context, userID uuid.UUID, assessmentType string, responses scoring.Responses) (*types.Assessment, error)
	ListLatest(ctx context.Context, userID uuid.UUID) ([]*types.Assessment, error)
	LoadProfile(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	LatestResults(ctx context.Context, userID uuid.UUID) (scoring.MatchupInput, error)
}

type assessmentService struct {
	db             *gorm.DB
	log            *logger.Logger
	assessmentRepo repos.AssessmentRepo
}

func NewAssessmentService(db *gorm.DB, log *logger.Logger, assessmentRepo repos.AssessmentRepo) AssessmentService {
	serviceLog := log.With("service", "AssessmentService")
	return &assessmentService{db: db, log: serviceLog, assessmentRepo: assessmentRepo}
}

// Submit scores the raw responses and persists both the responses and
// the computed result.
func (s *assessmentService) Submit(ctx context.Context, userID uuid.UUID, assessmentType string, responses scoring.Responses) (*types.Assessment, error) {
	result, err := scoring.ScoreAssessment(assessmentType, responses)
	if err != nil {
		return nil, fmt.Errorf("failed to score %s assessment: %w", assessmentType, err)
	}

	scoreJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s score: %w", assessmentType, err)
	}
	responsesJSON, err := json.Marshal(responses)
	if err != nil {
		return nil, fmt.Errorf("failed to encode responses: %w", err)
	}

	record := &types.Assessment{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        assessmentType,
		Score:       datatypes.JSON(scoreJSON),
		Result:      datatypes.JSON(responsesJSON),
		CompletedAt: time.Now(),
	}
	if _, err := s.assessmentRepo.Create(ctx, nil, []*types.Assessment{record}); err != nil {
		return nil, fmt.Errorf("failed to persist assessment: %w", err)
	}
	s.log.Info("Assessment submitted", "user_id", userID, "type", assessmentType)
	return record, nil
}

func (s *assessmentService) ListLatest(ctx context.Context, userID uuid.UUID) ([]*types.Assessment, error) {
	return s.assessmentRepo.GetLatestByUserID(ctx, nil, userID)
}

// LoadProfile extracts the canonical profile from the user's latest
// assessment of each type.
func (s *assessmentService) LoadProfile(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	rows, err := s.assessmentRepo.GetLatestByUserID(ctx, nil, userID)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("failed to load assessments: %w", err)
	}
	records := make([]profile.AssessmentRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, profile.AssessmentRecord{
			Type:        row.Type,
			Score:       []byte(row.Score),
			Result:      []byte(row.Result),
			CompletedAt: row.CompletedAt,
		})
	}
	return profile.Extract(records, s.log), nil
}

// LatestResults decodes the user's stored score payloads into typed
// results for matchup scoring. Types with no stored row stay nil.
func (s *assessmentService) LatestResults(ctx context.Context, userID uuid.UUID) (scoring.MatchupInput, error) {
	var input scoring.MatchupInput
	rows, err := s.assessmentRepo.GetLatestByUserID(ctx, nil, userID)
	if err != nil {
		return input, fmt.Errorf("failed to load assessments: %w", err)
	}
	for _, row := range rows {
		switch row.Type {
		case "attachment":
			var r scoring.AttachmentResult
			if decodeErr := json.Unmarshal(row.Score, &r); decodeErr == nil {
				input.Attachment = &r
			} else {
				s.log.Warn("Skipping undecodable attachment score", "user_id", userID, "error", decodeErr)
			}
		case "love_language":
			var r scoring.LoveLanguageResult
			if decodeErr := json.Unmarshal(row.Score, &r); decodeErr == nil {
				input.LoveLanguage = &r
			} else {
				s.log.Warn("Skipping undecodable love language score", "user_id", userID, "error", decodeErr)
			}
		case "gottman":
			var r scoring.GottmanResult
			if decodeErr := json.Unmarshal(row.Score, &r); decodeErr == nil {
				input.Gottman = &r
			} else {
				s.log.Warn("Skipping undecodable gottman score", "user_id", userID, "error", decodeErr)
			}
		case "eft":
			var r scoring.EFTResult
			if decodeErr := json.Unmarshal(row.Score, &r); decodeErr == nil {
				input.EFT = &r
			} else {
				s.log.Warn("Skipping undecodable eft score", "user_id", userID, "error", decodeErr)
			}
		}
	}
	return input, nil
}
