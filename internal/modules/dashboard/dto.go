package dashboard

import "gestiondeo/internal/modules/order"

// EntregaProxima es una fila del panel de próximos entregables.
type EntregaProxima struct {
	OrdenID  string `json:"ordenId"`
	Persona  string `json:"persona"`
	Proyecto string `json:"proyecto"`
	Fecha    string `json:"fecha"`
	Dias     int    `json:"dias"`
}

// ContratosProyecto cuenta órdenes activas por tipo dentro de un proyecto.
type ContratosProyecto struct {
	Proyecto string `json:"proyecto"`
	OS       int    `json:"os"`
	CAS      int    `json:"cas"`
}

// PuntoSerie es un mes de la serie acumulada de contrataciones.
type PuntoSerie struct {
	Mes     string         `json:"mes"`
	Totales map[string]int `json:"totales"`
}

type Resumen struct {
	OSVigentes          int                 `json:"osVigentes"`
	PersonasAlocadas    int                 `json:"personasAlocadas"`
	EntregablesSemana   int                 `json:"entregablesSemana"`
	OSPorVencer         []order.Enriched    `json:"osPorVencer"`
	ProximosEntregables []EntregaProxima    `json:"proximosEntregables"`
	ContratosPorTipo    []ContratosProyecto `json:"contratosPorTipo"`
	RolesDistribucion   map[string]int      `json:"rolesDistribucion"`
	SerieAcumulada      []PuntoSerie        `json:"serieAcumulada"`
}
