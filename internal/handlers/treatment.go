package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Gull-Stack/love-rescue-sub003/internal/services"
	"github.com/Gull-Stack/love-rescue-sub003/internal/treatment"
	"github.com/Gull-Stack/love-rescue-sub003/internal/types"
)

type TreatmentHandler struct {
	treatmentService services.TreatmentService
}

func NewTreatmentHandler(treatmentService services.TreatmentService) *TreatmentHandler {
	return &TreatmentHandler{treatmentService: treatmentService}
}

func (th *TreatmentHandler) Options(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	approach := c.DefaultQuery("approach", "integrative")
	options, err := th.treatmentService.Options(c.Request.Context(), userID, approach)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "options_failed", err)
		return
	}
	RespondOK(c, gin.H{"options": options})
}

func (th *TreatmentHandler) CreatePlan(c *gin.Context) {
	therapistID, ok := authedUserID(c)
	if !ok {
		return
	}
	var req struct {
		CoupleID uuid.UUID `json:"couple_id"`
		treatment.PlanRequest
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	row, plan, err := th.treatmentService.CreatePlan(c.Request.Context(), therapistID, req.CoupleID, req.PlanRequest)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "plan_creation_failed", err)
		return
	}
	RespondOK(c, gin.H{"id": row.ID, "plan": plan})
}

func (th *TreatmentHandler) GetPlan(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	row, plan, err := th.treatmentService.GetPlan(c.Request.Context(), planID)
	if err != nil {
		RespondError(c, http.StatusNotFound, "plan_not_found", err)
		return
	}
	RespondOK(c, gin.H{"id": row.ID, "status": row.Status, "plan": plan})
}

func (th *TreatmentHandler) ListPlans(c *gin.Context) {
	coupleID, err := uuid.Parse(c.Query("couple_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_couple_id", err)
		return
	}
	rows, err := th.treatmentService.ListPlans(c.Request.Context(), coupleID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "plan_list_failed", err)
		return
	}
	RespondOK(c, gin.H{"plans": rows})
}

func (th *TreatmentHandler) RecordEvent(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		ModuleID   string         `json:"module_id"`
		ActivityID string         `json:"activity_id"`
		Kind       string         `json:"kind"`
		Payload    map[string]any `json:"payload"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	event := &types.ActivityEvent{
		UserID:     userID,
		PlanID:     planID,
		ModuleID:   req.ModuleID,
		ActivityID: req.ActivityID,
		Kind:       req.Kind,
	}
	if req.Payload != nil {
		payloadJSON, mErr := json.Marshal(req.Payload)
		if mErr != nil {
			RespondError(c, http.StatusBadRequest, "invalid_payload", mErr)
			return
		}
		event.Payload = datatypes.JSON(payloadJSON)
	}
	if err := th.treatmentService.RecordEvent(c.Request.Context(), event); err != nil {
		RespondError(c, http.StatusBadRequest, "event_record_failed", err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}

func (th *TreatmentHandler) Progress(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	report, err := th.treatmentService.Progress(c.Request.Context(), planID)
	if err != nil {
		RespondError(c, http.StatusNotFound, "progress_failed", err)
		return
	}
	RespondOK(c, gin.H{"progress": report})
}
