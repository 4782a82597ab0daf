package person

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gestiondeo/internal/pkg/response"
	"gestiondeo/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	grp := r.Group("/personas")
	{
		grp.GET("", h.List)
		grp.GET("/roles-disponibles", h.AvailableRoles)
		grp.POST("", h.Create)
		grp.PUT("/:id", h.Update)
		grp.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	personas := h.service.List(c.Query("q"))
	out := make([]Response, 0, len(personas))
	for _, p := range personas {
		out = append(out, toResponse(p))
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) AvailableRoles(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.AvailableRoles(c.Query("actual")))
}

func (h *Handler) Create(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toResponse(p))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "id inválido")
		return
	}
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	p, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, toResponse(p))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "id inválido")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrUnauthorized):
		response.Unauthorized(c, "sesión de Google expirada, vuelva a conectar la hoja")
	case errors.Is(err, ErrPersonaNoEncontrada):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "no se pudo completar la operación")
	}
}
