package dashboard

import (
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

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard/resumen", h.Resumen)
}

func (h *Handler) Resumen(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Resumen())
}
