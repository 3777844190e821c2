package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Gull-Stack/love-rescue-sub003/internal/services"
)

type StrategyHandler struct {
	strategyService     services.StrategyService
	relationshipService services.RelationshipService
}

func NewStrategyHandler(strategyService services.StrategyService, relationshipService services.RelationshipService) *StrategyHandler {
	return &StrategyHandler{strategyService: strategyService, relationshipService: relationshipService}
}

func (sh *StrategyHandler) Generate(c *gin.Context) {
	relationshipID, ok := sh.resolveRelationship(c)
	if !ok {
		return
	}
	rows, err := sh.strategyService.GenerateCycle(c.Request.Context(), relationshipID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "strategy_generation_failed", err)
		return
	}
	RespondOK(c, gin.H{"strategies": rows})
}

func (sh *StrategyHandler) GetActive(c *gin.Context) {
	relationshipID, ok := sh.resolveRelationship(c)
	if !ok {
		return
	}
	rows, err := sh.strategyService.GetActiveCycle(c.Request.Context(), relationshipID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "strategy_lookup_failed", err)
		return
	}
	RespondOK(c, gin.H{"strategies": rows})
}

func (sh *StrategyHandler) UpdateProgress(c *gin.Context) {
	strategyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		Progress int `json:"progress"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := sh.strategyService.UpdateProgress(c.Request.Context(), strategyID, req.Progress); err != nil {
		RespondError(c, http.StatusBadRequest, "progress_update_failed", err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}

func (sh *StrategyHandler) History(c *gin.Context) {
	relationshipID, ok := sh.resolveRelationship(c)
	if !ok {
		return
	}
	history, err := sh.strategyService.History(c.Request.Context(), relationshipID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "history_lookup_failed", err)
		return
	}
	RespondOK(c, gin.H{"history": history})
}

func (sh *StrategyHandler) resolveRelationship(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := authedUserID(c)
	if !ok {
		return uuid.Nil, false
	}
	rel, err := sh.relationshipService.GetForUser(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "relationship_lookup_failed", err)
		return uuid.Nil, false
	}
	if rel == nil {
		RespondError(c, http.StatusBadRequest, "no_relationship", fmt.Errorf("create or join a relationship first"))
		return uuid.Nil, false
	}
	return rel.ID, true
}
