package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gull-Stack/love-rescue-sub003/internal/services"
)

type MatchupHandler struct {
	matchupService      services.MatchupService
	relationshipService services.RelationshipService
}

func NewMatchupHandler(matchupService services.MatchupService, relationshipService services.RelationshipService) *MatchupHandler {
	return &MatchupHandler{matchupService: matchupService, relationshipService: relationshipService}
}

func (mh *MatchupHandler) Generate(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	rel, err := mh.relationshipService.GetForUser(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "relationship_lookup_failed", err)
		return
	}
	if rel == nil {
		RespondError(c, http.StatusBadRequest, "no_relationship", fmt.Errorf("create or join a relationship first"))
		return
	}
	matchup, err := mh.matchupService.Generate(c.Request.Context(), rel.ID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "matchup_failed", err)
		return
	}
	RespondOK(c, gin.H{"matchup": matchup})
}

func (mh *MatchupHandler) GetLatest(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	rel, err := mh.relationshipService.GetForUser(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "relationship_lookup_failed", err)
		return
	}
	if rel == nil {
		RespondError(c, http.StatusBadRequest, "no_relationship", fmt.Errorf("create or join a relationship first"))
		return
	}
	matchup, err := mh.matchupService.GetLatest(c.Request.Context(), rel.ID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "matchup_lookup_failed", err)
		return
	}
	RespondOK(c, gin.H{"matchup": matchup})
}
