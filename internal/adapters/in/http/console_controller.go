package http

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/reseahub/case-console/internal/config"
	"github.com/reseahub/case-console/internal/core/domain"
	"github.com/reseahub/case-console/internal/core/ports/in"
	"github.com/reseahub/case-console/internal/core/ports/out"
)

// updateAccessHeader carries the caller's update permission. The gateway
// resolves it from the caseworker's role; this service only honors it.
const updateAccessHeader = "X-Update-Access"

type ConsoleController struct {
	scheduling in.SchedulingUseCase
	details    in.AppointmentDetailsUseCase
	lookup     in.LookupUseCase
	reassign   in.ReassignmentUseCase
	options    in.OptionsUseCase
	cfg        *config.Config
	logger     out.LoggerPort
}

func NewConsoleController(
	scheduling in.SchedulingUseCase,
	details in.AppointmentDetailsUseCase,
	lookup in.LookupUseCase,
	reassign in.ReassignmentUseCase,
	options in.OptionsUseCase,
	cfg *config.Config,
	logger out.LoggerPort,
) *ConsoleController {
	return &ConsoleController{
		scheduling: scheduling,
		details:    details,
		lookup:     lookup,
		reassign:   reassign,
		options:    options,
		cfg:        cfg,
		logger:     logger.WithModule("ConsoleController"),
	}
}

func (c *ConsoleController) RegisterRoutes(router *gin.Engine) {
	router.Use(c.requestID())

	api := router.Group("/api/v1")
	api.Use(c.basicAuth())
	{
		api.POST("/events/classify", c.classifyEvent)
		api.POST("/events/stage-config", c.stageConfig)

		api.GET("/case-header", c.caseHeader)

		api.POST("/appointment-details/view", c.viewAppointmentDetails)
		api.POST("/appointment-details", c.submitAppointmentDetails)

		api.POST("/availability", c.scheduleAvailability)

		api.POST("/lookup/cases", c.lookupCases)
		api.POST("/lookup/appointments", c.lookupAppointments)

		api.POST("/reassign", c.reassignCase)
		api.POST("/reassign-all", c.reassignAll)

		api.GET("/options/:kind", c.optionCatalog)
	}
}

type SlotRequest struct {
	Slot        domain.CalendarSlot `json:"slot" binding:"required"`
	CaseDetails *domain.CaseDetails `json:"caseDetails"`
}

type DetailsSubmitRequest struct {
	Slot domain.CalendarSlot           `json:"slot" binding:"required"`
	Form domain.AppointmentDetailsForm `json:"form" binding:"required"`
}

type AvailabilityRequest struct {
	Slot domain.CalendarSlot     `json:"slot" binding:"required"`
	Form domain.AvailabilityForm `json:"form" binding:"required"`
}

type CaseLookupRequest struct {
	Form   domain.CaseLookupForm `json:"form"`
	SortBy *domain.SortBy        `json:"sortBy"`
}

type AppointmentLookupRequest struct {
	Form   domain.AppointmentLookupForm `json:"form"`
	SortBy *domain.SortBy               `json:"sortBy"`
}

type ReassignAllRequest struct {
	Form      domain.BulkReassignmentForm `json:"form" binding:"required"`
	Confirmed bool                        `json:"confirmed"`
}

func (c *ConsoleController) classifyEvent(ctx *gin.Context) {
	var req SlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	classification := c.scheduling.ClassifySlot(ctx.Request.Context(), req.Slot, req.CaseDetails)
	windows := c.scheduling.SlotWindows(req.Slot)

	ctx.JSON(http.StatusOK, gin.H{
		"state":   classification.State,
		"actions": classification.Actions,
		"windows": windows,
	})
}

func (c *ConsoleController) stageConfig(ctx *gin.Context) {
	var req SlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, c.scheduling.StageConfig(ctx.Request.Context(), req.Slot, req.CaseDetails))
}

func (c *ConsoleController) caseHeader(ctx *gin.Context) {
	eventID, err := strconv.ParseInt(ctx.Query("eventId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID format"})
		return
	}

	details, err := c.scheduling.CaseHeader(ctx.Request.Context(), eventID)
	if err != nil {
		c.renderError(ctx, err)
		return
	}
	if details == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
		return
	}

	ctx.JSON(http.StatusOK, details)
}

func (c *ConsoleController) viewAppointmentDetails(ctx *gin.Context) {
	var req SlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := c.details.LoadDetails(ctx.Request.Context(), req.Slot)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, view)
}

func (c *ConsoleController) submitAppointmentDetails(ctx *gin.Context) {
	var req DetailsSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload, err := c.details.SubmitDetails(ctx.Request.Context(), req.Slot, req.Form, c.updateAccess(ctx))
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"submitted": payload})
}

func (c *ConsoleController) scheduleAvailability(ctx *gin.Context) {
	var req AvailabilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.scheduling.ScheduleAvailability(ctx.Request.Context(), req.Slot, req.Form, c.updateAccess(ctx)); err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *ConsoleController) lookupCases(ctx *gin.Context) {
	var req CaseLookupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := c.lookup.LookupCases(ctx.Request.Context(), req.Form, req.SortBy)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "application/json", rows)
}

func (c *ConsoleController) lookupAppointments(ctx *gin.Context) {
	var req AppointmentLookupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := c.lookup.LookupAppointments(ctx.Request.Context(), req.Form, req.SortBy)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "application/json", rows)
}

func (c *ConsoleController) reassignCase(ctx *gin.Context) {
	var req domain.SingleReassignment
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.reassign.ReassignCase(ctx.Request.Context(), req, c.updateAccess(ctx)); err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *ConsoleController) reassignAll(ctx *gin.Context) {
	var req ReassignAllRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := c.reassign.ReassignAll(ctx.Request.Context(), req.Form, req.Confirmed, c.updateAccess(ctx))
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, outcome)
}

func (c *ConsoleController) optionCatalog(ctx *gin.Context) {
	kind := domain.OptionKind(ctx.Param("kind"))

	options, err := c.options.Options(ctx.Request.Context(), kind)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"options": options})
}

func (c *ConsoleController) updateAccess(ctx *gin.Context) bool {
	return ctx.GetHeader(updateAccessHeader) == "Y"
}

// renderError maps the typed error surface onto HTTP statuses. Validation
// failures are 422 so the client can tell them apart from malformed requests.
func (c *ConsoleController) renderError(ctx *gin.Context, err error) {
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{
			"fieldErrors": validation.Fields,
			"messages":    validation.Messages,
		})
		return
	}

	var rejection *domain.BusinessRejection
	if errors.As(err, &rejection) {
		ctx.JSON(http.StatusBadRequest, gin.H{"codes": rejection.Codes()})
		return
	}

	c.logger.Error("http.request.failed", out.LogFields{
		"path":  ctx.FullPath(),
		"error": err.Error(),
	})
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (c *ConsoleController) requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Header("X-Request-Id", requestID)
		ctx.Next()
	}
}

func (c *ConsoleController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
