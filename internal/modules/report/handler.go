package report

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

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	grp := r.Group("/reports")
	{
		grp.GET("", h.List)
		grp.GET("/:slug", h.Get)
	}
}

func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.List())
}

func (h *Handler) Get(c *gin.Context) {
	r, err := h.service.Get(c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrReporteNoEncontrado) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "no se pudo completar la operación")
		return
	}
	response.Success(c, http.StatusOK, r)
}
