package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gull-Stack/love-rescue-sub003/internal/services"
)

type RelationshipHandler struct {
	relationshipService services.RelationshipService
}

func NewRelationshipHandler(relationshipService services.RelationshipService) *RelationshipHandler {
	return &RelationshipHandler{relationshipService: relationshipService}
}

func (rh *RelationshipHandler) CreateInvite(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	rel, err := rh.relationshipService.CreateInvite(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invite_failed", err)
		return
	}
	RespondOK(c, gin.H{"relationship": rel})
}

func (rh *RelationshipHandler) Join(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	var req struct {
		InviteCode string `json:"invite_code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	rel, err := rh.relationshipService.JoinByCode(c.Request.Context(), userID, req.InviteCode)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "join_failed", err)
		return
	}
	RespondOK(c, gin.H{"relationship": rel})
}

func (rh *RelationshipHandler) Get(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	rel, err := rh.relationshipService.GetForUser(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "relationship_lookup_failed", err)
		return
	}
	RespondOK(c, gin.H{"relationship": rel})
}
