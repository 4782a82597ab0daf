package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gestiondeo/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.GET("/google", h.GoogleAuth)
		authGroup.GET("/google/callback", h.GoogleCallback)
		authGroup.GET("/status", h.Status)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Login(req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid username or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to log in")
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) GoogleAuth(c *gin.Context) {
	url, err := h.service.GoogleAuthURL()
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "OAUTH_NOT_CONFIGURED", "Google OAuth is not configured")
		return
	}
	response.Success(c, http.StatusOK, GoogleAuthResponse{URL: url})
}

func (h *Handler) GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if code == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing authorization code")
		return
	}

	if err := h.service.HandleCallback(c.Request.Context(), state, code); err != nil {
		switch {
		case errors.Is(err, ErrInvalidState):
			response.Error(c, http.StatusBadRequest, "OAUTH_STATE_MISMATCH", "OAuth state mismatch")
		case errors.Is(err, ErrOAuthNotConfigured):
			response.Error(c, http.StatusServiceUnavailable, "OAUTH_NOT_CONFIGURED", "Google OAuth is not configured")
		default:
			response.Error(c, http.StatusBadGateway, "OAUTH_EXCHANGE_FAILED", "Failed to exchange authorization code")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"connected": true})
}

// Status tells the SPA whether the backing spreadsheet is reachable without
// another consent round.
func (h *Handler) Status(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"sheetTokenPresent": h.service.HasSheetToken()})
}
