package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fiscalia/fiscal_tracker_app/internal/apperrors"
	"github.com/fiscalia/fiscal_tracker_app/internal/core/domain"
	portssvc "github.com/fiscalia/fiscal_tracker_app/internal/core/ports/services"
	"github.com/fiscalia/fiscal_tracker_app/internal/dto"
	"github.com/fiscalia/fiscal_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// obligationHandler handles HTTP requests that mutate a single obligation's
// workflow state.
type obligationHandler struct {
	obligationService portssvc.ObligationSvcFacade
}

// newObligationHandler creates a new obligationHandler.
func newObligationHandler(os portssvc.ObligationSvcFacade) *obligationHandler {
	return &obligationHandler{
		obligationService: os,
	}
}

// registerObligationRoutes registers routes addressed by obligation ID.
func registerObligationRoutes(rg *gin.RouterGroup, obligationService portssvc.ObligationSvcFacade) {
	h := newObligationHandler(obligationService)

	obligations := rg.Group("/obligations")
	{
		obligations.GET("/:obligationID", h.getObligation)
		obligations.PATCH("/:obligationID/status", h.setStatus)
		obligations.POST("/:obligationID/priority/cycle", h.cyclePriority)
		obligations.POST("/:obligationID/completion/toggle", h.toggleCompletion)
	}
}

// getObligation godoc
// @Summary Get an obligation by ID
// @Description Retrieves a single obligation with its temporal status evaluated at request time
// @Tags obligations
// @Produce  json
// @Param   obligationID path string true "Obligation ID"
// @Success 200 {object} dto.ObligationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Obligation not found"
// @Failure 500 {object} map[string]string "Failed to retrieve obligation"
// @Security BearerAuth
// @Router /obligations/{obligationID} [get]
func (h *obligationHandler) getObligation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	obligationID := c.Param("obligationID")

	obligation, err := h.obligationService.GetObligationByID(c.Request.Context(), obligationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Obligation not found", slog.String("obligation_id", obligationID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Obligation not found"})
		} else {
			logger.Error("Failed to get obligation", slog.String("obligation_id", obligationID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve obligation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToObligationResponse(obligation, time.Now()))
}

// setStatus godoc
// @Summary Set an obligation's workflow status
// @Description Overwrites the workflow status with any valid value, independent of the current one
// @Tags obligations
// @Accept  json
// @Produce  json
// @Param   obligationID path string true "Obligation ID"
// @Param   status body dto.SetStatusRequest true "Target workflow status"
// @Success 200 {object} dto.ObligationResponse
// @Failure 400 {object} map[string]string "Unknown workflow status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Obligation not found"
// @Failure 500 {object} map[string]string "Failed to update obligation"
// @Security BearerAuth
// @Router /obligations/{obligationID}/status [patch]
func (h *obligationHandler) setStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	obligationID := c.Param("obligationID")

	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.obligationService.SetStatus(c.Request.Context(), obligationID, domain.WorkflowStatus(req.Status), updaterUserID)
	if err != nil {
		h.respondWorkflowError(c, logger, obligationID, "set status on", err)
		return
	}

	logger.Info("Obligation status updated", slog.String("obligation_id", obligationID), slog.String("status", req.Status))
	c.JSON(http.StatusOK, dto.ToObligationResponse(updated, time.Now()))
}

// cyclePriority godoc
// @Summary Cycle an obligation's priority
// @Description Advances the priority one step in the fixed order LOW, MEDIUM, HIGH, URGENT, wrapping back to LOW
// @Tags obligations
// @Produce  json
// @Param   obligationID path string true "Obligation ID"
// @Success 200 {object} dto.ObligationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Obligation not found"
// @Failure 500 {object} map[string]string "Failed to update obligation"
// @Security BearerAuth
// @Router /obligations/{obligationID}/priority/cycle [post]
func (h *obligationHandler) cyclePriority(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	obligationID := c.Param("obligationID")

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.obligationService.CyclePriority(c.Request.Context(), obligationID, updaterUserID)
	if err != nil {
		h.respondWorkflowError(c, logger, obligationID, "cycle priority of", err)
		return
	}

	logger.Info("Obligation priority cycled", slog.String("obligation_id", obligationID), slog.String("priority", string(updated.Priority)))
	c.JSON(http.StatusOK, dto.ToObligationResponse(updated, time.Now()))
}

// toggleCompletion godoc
// @Summary Toggle an obligation's completion
// @Description Flips between pending and completed; overdue and cancelled obligations normalize to completed on the first toggle
// @Tags obligations
// @Produce  json
// @Param   obligationID path string true "Obligation ID"
// @Success 200 {object} dto.ObligationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Obligation not found"
// @Failure 500 {object} map[string]string "Failed to update obligation"
// @Security BearerAuth
// @Router /obligations/{obligationID}/completion/toggle [post]
func (h *obligationHandler) toggleCompletion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	obligationID := c.Param("obligationID")

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.obligationService.ToggleCompletion(c.Request.Context(), obligationID, updaterUserID)
	if err != nil {
		h.respondWorkflowError(c, logger, obligationID, "toggle completion of", err)
		return
	}

	logger.Info("Obligation completion toggled", slog.String("obligation_id", obligationID), slog.String("status", string(updated.WorkflowStatus)))
	c.JSON(http.StatusOK, dto.ToObligationResponse(updated, time.Now()))
}

// respondWorkflowError maps service errors from workflow mutations onto
// HTTP responses.
func (h *obligationHandler) respondWorkflowError(c *gin.Context, logger *slog.Logger, obligationID, action string, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn("Obligation not found", slog.String("obligation_id", obligationID))
		c.JSON(http.StatusNotFound, gin.H{"error": "Obligation not found"})
	} else if errors.Is(err, apperrors.ErrValidation) {
		logger.Warn("Validation error mutating obligation", slog.String("obligation_id", obligationID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else {
		logger.Error("Failed to "+action+" obligation", slog.String("obligation_id", obligationID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update obligation"})
	}
}
