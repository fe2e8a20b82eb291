package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymkeep/internal/application/account"
	"gymkeep/internal/application/membership"
	"gymkeep/internal/interfaces/http/middleware"
	"gymkeep/internal/shared/authorization"
	"gymkeep/internal/shared/config"
	"gymkeep/internal/shared/constants"
	"gymkeep/internal/shared/logger"
	"gymkeep/internal/shared/utils"
)

type AuthHandler struct {
	accountService    *account.Service
	membershipService *membership.Service
	cookieConfig      config.CookieConfig
	logger            logger.Interface
}

func NewAuthHandler(
	accountService *account.Service,
	membershipService *membership.Service,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		accountService:    accountService,
		membershipService: membershipService,
		cookieConfig:      cookieConfig,
		logger:            logger,
	}
}

type RegisterRequest struct {
	Login       string `json:"login" binding:"required,min=3,max=25"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"first_name" binding:"required,max=100"`
	LastName    string `json:"last_name" binding:"required,max=100"`
	NationalID  string `json:"national_id" binding:"required,nationalid"`
	PhoneNumber string `json:"phone_number" binding:"required,max=15"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

// Register opens a self-service client account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := h.accountService.Register(c.Request.Context(), account.RegisterCommand{
		Login:       req.Login,
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		NationalID:  req.NationalID,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "account created")
}

// Login authenticates and sets the access token cookie. A ?next= query
// parameter is validated and echoed back so the client can resume where
// it was; unsafe targets collapse to the landing page.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.accountService.Login(c.Request.Context(), account.LoginCommand{
		Login:    req.Login,
		Password: req.Password,
		Remember: req.Remember,
		Next:     c.Query(constants.QueryParamNext),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetAccessTokenCookie(c, h.cookieConfig, result.Token, int(result.ExpiresIn))
	utils.OKResponse(c, result, "logged in")
}

// Logout clears the access token cookie. The token itself stays valid
// until expiry; there is no server-side session store.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAccessTokenCookie(c, h.cookieConfig)
	utils.OKResponse(c, nil, "logged out")
}

// Profile returns the caller's own account. Clients additionally get
// their membership history with derived activity.
func (h *AuthHandler) Profile(c *gin.Context) {
	identityID, ok := middleware.CallerIdentityID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	dto, err := h.accountService.Profile(c.Request.Context(), identityID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	response := gin.H{"account": dto}

	if role, ok := middleware.CallerRole(c); ok && role == authorization.RoleClient {
		subs, err := h.membershipService.ListForClient(c.Request.Context(), dto.PersonID)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		response["memberships"] = subs
	}

	utils.OKResponse(c, response)
}
