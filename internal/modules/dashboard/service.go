package dashboard

import (
	"sort"
	"time"

	"gestiondeo/internal/domain"
	"gestiondeo/internal/modules/order"
	"gestiondeo/internal/repository"
	"gestiondeo/internal/schedule"
)

// maxProximos acota la lista de próximos entregables del panel.
const maxProximos = 10

// ventanaPorVencer es el corte en días de la tabla de OS por vencer.
const ventanaPorVencer = 15

type OrderLister interface {
	List(f order.Filter) []order.Enriched
}

type Store interface {
	Current() repository.Snapshot
}

type Service struct {
	orders OrderLister
	store  Store
	now    func() time.Time
}

func NewService(orders OrderLister, store Store) *Service {
	return &Service{orders: orders, store: store, now: time.Now}
}

// Resumen arma todos los agregados del tablero en una sola pasada sobre las
// órdenes activas.
func (s *Service) Resumen() Resumen {
	snap := s.store.Current()
	hoy := s.now()

	activas := make([]order.Enriched, 0)
	for _, e := range s.orders.List(order.Filter{}) {
		if e.Activa {
			activas = append(activas, e)
		}
	}

	res := Resumen{
		RolesDistribucion: map[string]int{},
	}

	personas := map[int64]bool{}
	porProyecto := map[string]*ContratosProyecto{}
	var proyectosOrden []string

	for _, e := range activas {
		if e.Estado.Categoria != schedule.EstadoFinalizada {
			res.OSVigentes++
		}
		personas[e.PersonaID] = true

		cp, ok := porProyecto[e.ProyectoNombre]
		if !ok {
			cp = &ContratosProyecto{Proyecto: e.ProyectoNombre}
			porProyecto[e.ProyectoNombre] = cp
			proyectosOrden = append(proyectosOrden, e.ProyectoNombre)
		}
		if e.Tipo == domain.ContractCAS {
			cp.CAS++
		} else {
			cp.OS++
		}

		if e.DiasRestantes != nil && *e.DiasRestantes >= 0 && *e.DiasRestantes <= ventanaPorVencer {
			res.OSPorVencer = append(res.OSPorVencer, e)
		}

		for _, entrega := range e.Entregas {
			if entrega.Dias == nil || *entrega.Dias < 0 {
				continue
			}
			if *entrega.Dias <= schedule.WarningWindowDays {
				res.EntregablesSemana++
			}
			res.ProximosEntregables = append(res.ProximosEntregables, EntregaProxima{
				OrdenID:  e.ID,
				Persona:  e.PersonaNombre,
				Proyecto: e.ProyectoNombre,
				Fecha:    entrega.Fecha,
				Dias:     *entrega.Dias,
			})
		}
	}

	res.PersonasAlocadas = len(personas)

	sort.SliceStable(res.OSPorVencer, func(i, j int) bool {
		return *res.OSPorVencer[i].DiasRestantes < *res.OSPorVencer[j].DiasRestantes
	})
	sort.SliceStable(res.ProximosEntregables, func(i, j int) bool {
		return res.ProximosEntregables[i].Dias < res.ProximosEntregables[j].Dias
	})
	if len(res.ProximosEntregables) > maxProximos {
		res.ProximosEntregables = res.ProximosEntregables[:maxProximos]
	}

	sort.Strings(proyectosOrden)
	for _, nombre := range proyectosOrden {
		res.ContratosPorTipo = append(res.ContratosPorTipo, *porProyecto[nombre])
	}

	res.RolesDistribucion = rolesAlocados(snap, personas)
	res.SerieAcumulada = serieAcumulada(activas, hoy)
	return res
}

// rolesAlocados cuenta los roles de las personas con al menos una orden activa.
func rolesAlocados(snap repository.Snapshot, alocadas map[int64]bool) map[string]int {
	out := map[string]int{}
	for _, p := range snap.Personas {
		if alocadas[p.ID] && p.Rol != "" {
			out[p.Rol]++
		}
	}
	return out
}

// serieAcumulada cuenta, por proyecto, cuántas órdenes ya habían iniciado al
// cierre de cada uno de los últimos seis meses.
func serieAcumulada(activas []order.Enriched, hoy time.Time) []PuntoSerie {
	out := make([]PuntoSerie, 0, 6)
	for i := 5; i >= 0; i-- {
		mes := hoy.AddDate(0, -i, 0)
		corte := time.Date(mes.Year(), mes.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, 0)

		punto := PuntoSerie{Mes: mes.Format("2006-01"), Totales: map[string]int{}}
		for _, e := range activas {
			inicio := schedule.ParseDate(e.FechaInicio)
			if inicio != nil && inicio.Before(corte) {
				punto.Totales[e.ProyectoNombre]++
			}
		}
		out = append(out, punto)
	}
	return out
}
