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

// companyHandler handles HTTP requests for company profiles and their
// obligation calendars.
type companyHandler struct {
	companyService    portssvc.CompanySvcFacade
	obligationService portssvc.ObligationSvcFacade
}

// newCompanyHandler creates a new companyHandler.
func newCompanyHandler(cs portssvc.CompanySvcFacade, os portssvc.ObligationSvcFacade) *companyHandler {
	return &companyHandler{
		companyService:    cs,
		obligationService: os,
	}
}

// registerCompanyRoutes registers routes related to companies and the
// company-scoped obligation views.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade, obligationService portssvc.ObligationSvcFacade) {
	h := newCompanyHandler(companyService, obligationService)

	companies := rg.Group("/companies")
	{
		companies.POST("", h.createCompany)
		companies.GET("", h.listCompanies)
		companies.GET("/:companyID", h.getCompany)
		companies.PUT("/:companyID", h.updateCompany)

		obligations := companies.Group("/:companyID/obligations")
		{
			obligations.POST("/materialize", h.materializeYear)
			obligations.GET("", h.listObligations)
			obligations.GET("/statistics", h.getStatistics)
			obligations.GET("/period", h.getPeriodView)
		}
	}
}

// createCompany godoc
// @Summary Register a company
// @Description Creates a new company profile
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create company"
// @Security BearerAuth
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCompany", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to create company", slog.String("company_name", req.Name))

	newCompany, err := h.companyService.CreateCompany(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating company", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create company in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create company"})
		}
		return
	}

	logger.Info("Company created successfully", slog.String("company_id", newCompany.CompanyID))
	c.JSON(http.StatusCreated, dto.ToCompanyResponse(newCompany))
}

// listCompanies godoc
// @Summary List companies
// @Description Retrieves all company profiles, optionally only active ones
// @Tags companies
// @Produce  json
// @Param   activeOnly query bool false "Return only active companies"
// @Success 200 {array} dto.CompanyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list companies"
// @Security BearerAuth
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	activeOnly := c.Query("activeOnly") == "true"

	companies, err := h.companyService.ListCompanies(c.Request.Context(), activeOnly)
	if err != nil {
		logger.Error("Failed to list companies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list companies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCompanyResponse(companies))
}

// getCompany godoc
// @Summary Get a company by ID
// @Description Retrieves a single company profile
// @Tags companies
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to retrieve company"
// @Security BearerAuth
// @Router /companies/{companyID} [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	company, err := h.companyService.GetCompanyByID(c.Request.Context(), companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Company not found", slog.String("company_id", companyID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		} else {
			logger.Error("Failed to get company", slog.String("company_id", companyID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve company"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// updateCompany godoc
// @Summary Update a company
// @Description Overwrites a company's profile attributes
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   company body dto.UpdateCompanyRequest true "Updated company details"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to update company"
// @Security BearerAuth
// @Router /companies/{companyID} [put]
func (h *companyHandler) updateCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCompany", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.companyService.UpdateCompany(c.Request.Context(), companyID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Company not found for update", slog.String("company_id", companyID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating company", slog.String("company_id", companyID), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update company", slog.String("company_id", companyID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update company"})
		}
		return
	}

	logger.Info("Company updated successfully", slog.String("company_id", companyID))
	c.JSON(http.StatusOK, dto.ToCompanyResponse(updated))
}

// materializeYear godoc
// @Summary Materialize a company's fiscal calendar
// @Description Expands the active rule catalog into dated obligations for the given year. Re-running is safe: obligations already on the calendar keep their workflow state.
// @Tags obligations
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   year query int true "Target calendar year"
// @Success 200 {object} dto.MaterializationResponse
// @Failure 400 {object} map[string]string "Invalid or missing year"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to materialize obligations"
// @Security BearerAuth
// @Router /companies/{companyID}/obligations/materialize [post]
func (h *companyHandler) materializeYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var q dto.MaterializeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query for MaterializeYear", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requesterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requester user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.Int("year", q.Year))
	logger.Info("Received request to materialize fiscal calendar")

	result, err := h.obligationService.MaterializeYear(c.Request.Context(), companyID, q.Year, requesterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Company not found for materialization")
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error materializing obligations", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to materialize obligations", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to materialize obligations"})
		}
		return
	}

	logger.Info("Fiscal calendar materialized", slog.Int("obligation_count", len(result.Obligations)), slog.Int("inserted", result.Inserted), slog.Int("warning_count", len(result.Warnings)))
	c.JSON(http.StatusOK, dto.ToMaterializationResponse(result.Obligations, result.Warnings, result.Inserted, time.Now()))
}

// listObligations godoc
// @Summary List a company's obligations
// @Description Retrieves obligations narrowed by the given filter criteria; unset criteria match everything and set criteria combine with AND
// @Tags obligations
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   workflowStatus query string false "Workflow status filter" Enums(PENDING, COMPLETED, OVERDUE, CANCELLED)
// @Param   temporalStatus query string false "Temporal status filter" Enums(UPCOMING, DUE, OVERDUE)
// @Param   obligationType query string false "Obligation type filter"
// @Param   priority query string false "Priority filter" Enums(LOW, MEDIUM, HIGH, URGENT)
// @Success 200 {array} dto.ObligationResponse
// @Failure 400 {object} map[string]string "Invalid filter criteria"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list obligations"
// @Security BearerAuth
// @Router /companies/{companyID}/obligations [get]
func (h *companyHandler) listObligations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var q dto.ListObligationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query for ListObligations", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	criteria := domain.FilterCriteria{
		WorkflowStatus: domain.WorkflowStatus(q.WorkflowStatus),
		TemporalStatus: domain.TemporalStatus(q.TemporalStatus),
		ObligationType: q.ObligationType,
		Priority:       domain.Priority(q.Priority),
	}

	// Temporal status is evaluated against a single instant for the
	// whole request, so filtering and the response stay consistent.
	now := time.Now()

	obligations, err := h.obligationService.ListObligations(c.Request.Context(), companyID, criteria, now)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid filter criteria listing obligations", slog.String("company_id", companyID), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list obligations", slog.String("company_id", companyID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list obligations"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListObligationResponse(obligations, now))
}

// getStatistics godoc
// @Summary Get obligation statistics
// @Description Returns the temporal partition counts of a company's calendar; upcoming, due and overdue always sum to total
// @Tags obligations
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Success 200 {object} dto.StatisticsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute statistics"
// @Security BearerAuth
// @Router /companies/{companyID}/obligations/statistics [get]
func (h *companyHandler) getStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	stats, err := h.obligationService.GetStatistics(c.Request.Context(), companyID, time.Now())
	if err != nil {
		logger.Error("Failed to compute obligation statistics", slog.String("company_id", companyID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStatisticsResponse(stats))
}

// getPeriodView godoc
// @Summary Get obligations for a period
// @Description Retrieves obligations due in the given year, optionally drilled down to a month, ISO week-of-year, or day-of-month
// @Tags obligations
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   year query int true "Calendar year"
// @Param   month query int false "Month (1-12)"
// @Param   week query int false "ISO week-of-year (1-53), mutually exclusive with month"
// @Param   day query int false "Day-of-month (1-31), requires month"
// @Success 200 {array} dto.ObligationResponse
// @Failure 400 {object} map[string]string "Invalid period selectors"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve period view"
// @Security BearerAuth
// @Router /companies/{companyID}/obligations/period [get]
func (h *companyHandler) getPeriodView(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var q dto.PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query for GetPeriodView", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	obligations, err := h.obligationService.GetPeriodView(c.Request.Context(), companyID, q.Year, q.Month, q.Week, q.Day)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid period selectors", slog.String("company_id", companyID), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to retrieve period view", slog.String("company_id", companyID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve period view"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListObligationResponse(obligations, time.Now()))
}
