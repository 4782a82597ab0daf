package order

import (
	"gestiondeo/internal/domain"
	"gestiondeo/internal/schedule"
)

// Modo de programación de entregables.
const (
	ModoCantidad   = "cantidad"
	ModoFrecuencia = "frecuencia"
	ModoAuto       = "auto"
)

type SaveRequest struct {
	PersonaID  int64  `json:"personaId" binding:"required"`
	ProyectoID int64  `json:"proyectoId" binding:"required"`
	Tipo       string `json:"tipoContrato" binding:"required"`

	// Solo contratos OS. Para CAS todo el bloque se ignora y la orden
	// queda con fin Indeterminado y sin entregables.
	FechaInicio string `json:"fechaInicio"`
	Duracion    int    `json:"duracion"`
	Modo        string `json:"modoEntregables"`
	Cantidad    int    `json:"cantidadEntregables"`
	Frecuencia  int    `json:"frecuenciaDias"`

	Activa         bool   `json:"activa"`
	AreaCargo      string `json:"areaCargo"`
	Condicion      string `json:"condicion"`
	CondicionOtros string `json:"condicionOtros"`
	Valor          string `json:"valor"`
}

// PreviewRequest deriva fin y entregables sin tocar la hoja, para que el
// formulario recalcule en vivo mientras el usuario edita.
type PreviewRequest struct {
	FechaInicio string `json:"fechaInicio" binding:"required"`
	Duracion    int    `json:"duracion" binding:"required"`
	Modo        string `json:"modoEntregables"`
	Cantidad    int    `json:"cantidadEntregables"`
	Frecuencia  int    `json:"frecuenciaDias"`
}

type PreviewResponse struct {
	FechaFin     string             `json:"fechaFin"`
	Entregables  domain.Entregables `json:"entregables"`
	Advertencias []string           `json:"advertencias,omitempty"`
}

// Entrega es un slot de entregable ya clasificado para la vista.
type Entrega struct {
	Fecha  string          `json:"fecha"`
	Dias   *int            `json:"dias"`
	Estado schedule.Estado `json:"estado"`
}

// Enriched es la fila de la tabla de OS: la orden cruda más los nombres
// cruzados y el estado calculado a hoy.
type Enriched struct {
	domain.ServiceOrder
	PersonaNombre  string          `json:"personaNombre"`
	ProyectoNombre string          `json:"proyectoNombre"`
	DiasRestantes  *int            `json:"diasRestantes"`
	Estado         schedule.Estado `json:"estado"`
	Entregas       []Entrega       `json:"entregas"`
}

// Filter agrupa los parámetros de consulta de la lista.
type Filter struct {
	Q          string
	ProyectoID int64
	PersonaID  int64
	Tipo       string
	Estado     string
	Sort       string
	Dir        string
}
