package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Gull-Stack/love-rescue-sub003/internal/requestdata"
	"github.com/Gull-Stack/love-rescue-sub003/internal/scoring"
	"github.com/Gull-Stack/love-rescue-sub003/internal/services"
)

type AssessmentHandler struct {
	assessmentService services.AssessmentService
}

func NewAssessmentHandler(assessmentService services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

func (ah *AssessmentHandler) Submit(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	var req struct {
		Type      string            `json:"type"`
		Responses scoring.Responses `json:"responses"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	record, err := ah.assessmentService.Submit(c.Request.Context(), userID, req.Type, req.Responses)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "assessment_failed", err)
		return
	}
	RespondOK(c, gin.H{"assessment": record})
}

func (ah *AssessmentHandler) ListLatest(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	records, err := ah.assessmentService.ListLatest(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "assessment_list_failed", err)
		return
	}
	RespondOK(c, gin.H{"assessments": records})
}

func (ah *AssessmentHandler) GetProfile(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	p, err := ah.assessmentService.LoadProfile(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "profile_failed", err)
		return
	}
	RespondOK(c, gin.H{"profile": p})
}

func authedUserID(c *gin.Context) (uuid.UUID, bool) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return uuid.Nil, false
	}
	return rd.UserID, true
}
