package order

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gestiondeo/internal/pkg/response"
	"gestiondeo/internal/repository"
	"gestiondeo/internal/schedule"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	grp := r.Group("/os")
	{
		grp.GET("", h.List)
		grp.GET("/:id", h.Get)
		grp.POST("", h.Create)
		grp.POST("/preview", h.Preview)
		grp.PUT("/:id", h.Update)
		grp.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	f := Filter{
		Q:      c.Query("q"),
		Tipo:   c.Query("tipo"),
		Estado: c.Query("estado"),
		Sort:   c.Query("sort"),
		Dir:    c.Query("dir"),
	}
	f.ProyectoID, _ = strconv.ParseInt(c.Query("proyecto_id"), 10, 64)
	f.PersonaID, _ = strconv.ParseInt(c.Query("persona_id"), 10, 64)

	response.Success(c, http.StatusOK, h.service.List(f))
}

func (h *Handler) Get(c *gin.Context) {
	e, err := h.service.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) Create(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	e, warnings, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"orden": e, "advertencias": warnings})
}

func (h *Handler) Update(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	e, warnings, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"orden": e, "advertencias": warnings})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Preview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	preview, err := h.service.Preview(req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, preview)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrUnauthorized):
		response.Unauthorized(c, "sesión de Google expirada, vuelva a conectar la hoja")
	case errors.Is(err, ErrOrdenNoEncontrada):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrPersonaInvalida),
		errors.Is(err, ErrProyectoInvalido),
		errors.Is(err, ErrTipoInvalido),
		errors.Is(err, ErrModoInvalido),
		errors.Is(err, schedule.ErrFechaInicio),
		errors.Is(err, schedule.ErrDuracion),
		errors.Is(err, schedule.ErrEntregables),
		errors.Is(err, schedule.ErrFrecuencia):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "no se pudo completar la operación")
	}
}
