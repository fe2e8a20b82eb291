package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymkeep/internal/application/membership"
	"gymkeep/internal/application/people"
	"gymkeep/internal/domain/person"
	"gymkeep/internal/shared/constants"
	"gymkeep/internal/shared/logger"
	"gymkeep/internal/shared/utils"
)

type ClientHandler struct {
	peopleService     *people.Service
	membershipService *membership.Service
	logger            logger.Interface
}

func NewClientHandler(
	peopleService *people.Service,
	membershipService *membership.Service,
	logger logger.Interface,
) *ClientHandler {
	return &ClientHandler{
		peopleService:     peopleService,
		membershipService: membershipService,
		logger:            logger,
	}
}

// UpdateContactRequest edits the mutable person fields. The national ID
// is immutable and deliberately absent.
type UpdateContactRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=100"`
	LastName    string `json:"last_name" binding:"required,max=100"`
	PhoneNumber string `json:"phone_number" binding:"required,max=15"`
}

type AssignSubscriptionRequest struct {
	PlanID    uint   `json:"plan_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
}

// List returns the client roster, active records first. ?q= narrows by a
// multi-term phrase over name, national ID and phone number.
func (h *ClientHandler) List(c *gin.Context) {
	var page utils.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.peopleService.List(c.Request.Context(), person.KindClient, people.ListQuery{
		Search:   c.Query(constants.QueryParamSearch),
		Page:     page.Page,
		PageSize: page.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.peopleService.Get(c.Request.Context(), person.KindClient, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := h.peopleService.UpdateContact(c.Request.Context(), person.KindClient, id, people.UpdateContactCommand{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto, "client updated")
}

// Deactivate soft-deletes a client record; history stays intact.
func (h *ClientHandler) Deactivate(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.peopleService.Deactivate(c.Request.Context(), person.KindClient, id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "client deactivated")
}

// AssignSubscription sells a membership plan to a client.
func (h *ClientHandler) AssignSubscription(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := h.membershipService.Assign(c.Request.Context(), membership.AssignCommand{
		ClientID:  id,
		PlanID:    req.PlanID,
		StartDate: req.StartDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "membership assigned")
}

// ListSubscriptions returns a client's membership history with activity
// derived from the plans' current durations.
func (h *ClientHandler) ListSubscriptions(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.peopleService.Get(c.Request.Context(), person.KindClient, id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	subs, err := h.membershipService.ListForClient(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"subscriptions": subs})
}
