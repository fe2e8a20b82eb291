package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymkeep/internal/application/account"
	"gymkeep/internal/application/people"
	"gymkeep/internal/domain/person"
	"gymkeep/internal/shared/constants"
	"gymkeep/internal/shared/logger"
	"gymkeep/internal/shared/utils"
)

// StaffHandler serves the trainer and employee rosters. Both kinds share
// the same request shapes; the kind is fixed per route group.
type StaffHandler struct {
	accountService *account.Service
	peopleService  *people.Service
	logger         logger.Interface
}

func NewStaffHandler(
	accountService *account.Service,
	peopleService *people.Service,
	logger logger.Interface,
) *StaffHandler {
	return &StaffHandler{
		accountService: accountService,
		peopleService:  peopleService,
		logger:         logger,
	}
}

// ProvisionRequest onboards a staff member with a working login.
type ProvisionRequest struct {
	Login       string `json:"login" binding:"required,min=3,max=25"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"first_name" binding:"required,max=100"`
	LastName    string `json:"last_name" binding:"required,max=100"`
	NationalID  string `json:"national_id" binding:"required,nationalid"`
	PhoneNumber string `json:"phone_number" binding:"required,max=15"`
}

func (h *StaffHandler) List(kind person.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var page utils.PageQuery
		if err := c.ShouldBindQuery(&page); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}

		result, err := h.peopleService.List(c.Request.Context(), kind, people.ListQuery{
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
}

func (h *StaffHandler) Get(kind person.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseIDParam(c, "id", string(kind))
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		dto, err := h.peopleService.Get(c.Request.Context(), kind, id)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.OKResponse(c, dto)
	}
}

// Provision onboards a staff member, creating their login and person
// record atomically.
func (h *StaffHandler) Provision(kind person.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProvisionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}

		dto, err := h.accountService.Provision(c.Request.Context(), account.ProvisionCommand{
			RegisterCommand: account.RegisterCommand{
				Login:       req.Login,
				Email:       req.Email,
				Password:    req.Password,
				FirstName:   req.FirstName,
				LastName:    req.LastName,
				NationalID:  req.NationalID,
				PhoneNumber: req.PhoneNumber,
			},
			Role: string(kind),
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.CreatedResponse(c, dto, string(kind)+" account created")
	}
}

func (h *StaffHandler) Update(kind person.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseIDParam(c, "id", string(kind))
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		var req UpdateContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}

		dto, err := h.peopleService.UpdateContact(c.Request.Context(), kind, id, people.UpdateContactCommand{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			PhoneNumber: req.PhoneNumber,
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.OKResponse(c, dto, string(kind)+" updated")
	}
}

// Deactivate soft-deletes a staff record. Trainers still owning class
// slots are refused with a dependency conflict.
func (h *StaffHandler) Deactivate(kind person.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseIDParam(c, "id", string(kind))
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		if err := h.peopleService.Deactivate(c.Request.Context(), kind, id); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.OKResponse(c, nil, string(kind)+" deactivated")
	}
}
