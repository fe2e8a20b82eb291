package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymkeep/internal/application/schedule"
	"gymkeep/internal/interfaces/http/middleware"
	"gymkeep/internal/shared/authorization"
	apperrors "gymkeep/internal/shared/errors"
	"gymkeep/internal/shared/logger"
	"gymkeep/internal/shared/utils"
)

type ClassHandler struct {
	scheduleService *schedule.Service
	logger          logger.Interface
}

func NewClassHandler(scheduleService *schedule.Service, logger logger.Interface) *ClassHandler {
	return &ClassHandler{
		scheduleService: scheduleService,
		logger:          logger,
	}
}

type ClassSlotRequest struct {
	Name            string `json:"name" binding:"required,max=256"`
	Weekday         int    `json:"weekday" binding:"min=0,max=6"`
	StartTime       string `json:"start_time" binding:"required,clocktime"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
	TrainerID       uint   `json:"trainer_id" binding:"required"`
}

// List returns the weekly schedule ordered by weekday and start time.
// ?trainer_id= narrows to one trainer's classes, ?client_id= to classes
// the client is enrolled in.
func (h *ClassHandler) List(c *gin.Context) {
	trainerID, err := utils.ParseOptionalUintQuery(c, "trainer_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	clientID, err := utils.ParseOptionalUintQuery(c, "client_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	slots, err := h.scheduleService.ListSlots(c.Request.Context(), schedule.SlotListQuery{
		TrainerID: trainerID,
		ClientID:  clientID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"classes": slots})
}

func (h *ClassHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "class slot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.scheduleService.GetSlot(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto)
}

func (h *ClassHandler) Create(c *gin.Context) {
	var req ClassSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := h.scheduleService.CreateSlot(c.Request.Context(), schedule.SlotCommand{
		Name:            req.Name,
		Weekday:         req.Weekday,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		TrainerID:       req.TrainerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "class slot created")
}

func (h *ClassHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "class slot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ClassSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := h.scheduleService.UpdateSlot(c.Request.Context(), id, schedule.SlotCommand{
		Name:            req.Name,
		Weekday:         req.Weekday,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		TrainerID:       req.TrainerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto, "class slot updated")
}

func (h *ClassHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "class slot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.scheduleService.DeleteSlot(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "class slot deleted")
}

// Enroll joins the calling client to a class slot.
func (h *ClassHandler) Enroll(c *gin.Context) {
	clientID, ok := h.callerClientID(c)
	if !ok {
		return
	}

	slotID, err := utils.ParseIDParam(c, "id", "class slot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.scheduleService.Enroll(c.Request.Context(), clientID, slotID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "enrolled")
}

// Unenroll removes the calling client from a class slot.
func (h *ClassHandler) Unenroll(c *gin.Context) {
	clientID, ok := h.callerClientID(c)
	if !ok {
		return
	}

	slotID, err := utils.ParseIDParam(c, "id", "class slot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.scheduleService.Unenroll(c.Request.Context(), clientID, slotID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "left class")
}

// callerClientID resolves the calling client's person ID. Staff roles are
// refused: enrollment is personal to the client.
func (h *ClassHandler) callerClientID(c *gin.Context) (uint, bool) {
	role, ok := middleware.CallerRole(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return 0, false
	}
	if role != authorization.RoleClient {
		utils.ErrorResponseWithError(c, apperrors.NewForbiddenError("only clients can manage their enrollments"))
		return 0, false
	}

	personID, ok := middleware.CallerPersonID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return 0, false
	}

	return personID, true
}
