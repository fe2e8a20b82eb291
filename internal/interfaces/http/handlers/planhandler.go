package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymkeep/internal/application/membership"
	"gymkeep/internal/shared/constants"
	"gymkeep/internal/shared/logger"
	"gymkeep/internal/shared/utils"
)

type PlanHandler struct {
	membershipService *membership.Service
	logger            logger.Interface
}

func NewPlanHandler(membershipService *membership.Service, logger logger.Interface) *PlanHandler {
	return &PlanHandler{
		membershipService: membershipService,
		logger:            logger,
	}
}

type PlanRequest struct {
	Name         string `json:"name" binding:"required,max=50"`
	PriceCents   uint64 `json:"price_cents"`
	DurationDays int    `json:"duration_days" binding:"required,min=1"`
}

func (h *PlanHandler) List(c *gin.Context) {
	var page utils.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.membershipService.ListPlans(c.Request.Context(), membership.PlanListQuery{
		Search:     c.Query(constants.QueryParamSearch),
		ActiveOnly: c.Query("active_only") == "true",
		SortBy:     c.Query(constants.QueryParamSortBy),
		SortOrder:  c.Query(constants.QueryParamSortOrder),
		Page:       page.Page,
		PageSize:   page.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *PlanHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "membership plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.membershipService.GetPlan(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto)
}

func (h *PlanHandler) Create(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := h.membershipService.CreatePlan(c.Request.Context(), membership.PlanCommand{
		Name:         req.Name,
		PriceCents:   req.PriceCents,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "membership plan created")
}

func (h *PlanHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "membership plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := h.membershipService.UpdatePlan(c.Request.Context(), id, membership.PlanCommand{
		Name:         req.Name,
		PriceCents:   req.PriceCents,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto, "membership plan updated")
}

func (h *PlanHandler) Deactivate(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "membership plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.membershipService.DeactivatePlan(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "membership plan deactivated")
}
