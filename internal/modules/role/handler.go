package role

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gestiondeo/internal/pkg/response"
	"gestiondeo/internal/repository"
)

type saveRequest struct {
	Nombre string `json:"nombre" binding:"required"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	grp := r.Group("/roles")
	{
		grp.GET("", h.List)
		grp.POST("", h.Create)
		grp.PUT("/:rowIndex", h.Update)
		grp.DELETE("/:rowIndex", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.List())
}

func (h *Handler) Create(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	r, err := h.service.Create(c.Request.Context(), req.Nombre)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, r)
}

func (h *Handler) Update(c *gin.Context) {
	rowIdx, err := strconv.ParseInt(c.Param("rowIndex"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "fila inválida")
		return
	}
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	r, err := h.service.Update(c.Request.Context(), rowIdx, req.Nombre)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, r)
}

func (h *Handler) Delete(c *gin.Context) {
	rowIdx, err := strconv.ParseInt(c.Param("rowIndex"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "fila inválida")
		return
	}
	if err := h.service.Delete(c.Request.Context(), rowIdx); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrUnauthorized):
		response.Unauthorized(c, "sesión de Google expirada, vuelva a conectar la hoja")
	case errors.Is(err, ErrRolNoEncontrado):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrNombreVacio), errors.Is(err, ErrRolDuplicado):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "no se pudo completar la operación")
	}
}
