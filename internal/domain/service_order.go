package domain

type ContractType string

const (
	ContractOS  ContractType = "OS"
	ContractCAS ContractType = "CAS"
)

// Indeterminado is the sheet sentinel for "no date / no duration" on
// open-ended CAS contracts.
const Indeterminado = "Indeterminado"

// MaxEntregables is the fixed number of deliverable slots per order.
const MaxEntregables = 4

// Entregables holds the due-date slots of an order, always all four.
// Slots beyond the computed schedule are empty strings, never stale values.
type Entregables [MaxEntregables]string

func (e Entregables) Count() int {
	n := 0
	for _, d := range e {
		if d != "" && d != Indeterminado {
			n++
		}
	}
	return n
}

// ServiceOrder mirrors one row of the "OS" sheet (columns A:O).
//
// For OS contracts FechaFin and Entregables are derived from FechaInicio,
// Duracion and the deliverable mode; they are never edited independently.
// For CAS contracts Duracion is zero and FechaFin carries the Indeterminado
// sentinel, with every deliverable slot empty.
type ServiceOrder struct {
	ID          string       `json:"id"`
	PersonaID   int64        `json:"personaId" validate:"required"`
	ProyectoID  int64        `json:"proyectoId" validate:"required"`
	Tipo        ContractType `json:"tipoContrato" validate:"required"`
	Duracion    int          `json:"duracion,omitempty"`
	FechaInicio string       `json:"fechaInicio"`
	FechaFin    string       `json:"fechaFin,omitempty"`
	Entregables Entregables  `json:"entregables"`
	Activa      bool         `json:"activa"`
	AreaCargo   string       `json:"areaCargo"`
	Condicion   string       `json:"condicion"`
	Valor       string       `json:"valor,omitempty"`

	RowIndex int64 `json:"rowIndex,omitempty"`
}

func (o ServiceOrder) EsIndeterminada() bool {
	return o.Tipo == ContractCAS
}

// ClearSchedule resets every derived field to the CAS sentinel shape.
func (o *ServiceOrder) ClearSchedule() {
	o.Duracion = 0
	o.FechaFin = Indeterminado
	o.Entregables = Entregables{}
}
