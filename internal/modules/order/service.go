package order

import (
	"context"
	"sort"
	"strings"
	"time"

	"gestiondeo/internal/domain"
	"gestiondeo/internal/repository"
	"gestiondeo/internal/schedule"
)

type Store interface {
	Current() repository.Snapshot
	CreateOrder(ctx context.Context, o domain.ServiceOrder) (domain.ServiceOrder, error)
	UpdateOrder(ctx context.Context, o domain.ServiceOrder) error
	DeleteOrder(ctx context.Context, rowIdx int64) error
}

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// List arma la vista de la tabla de OS: cada orden enriquecida con nombres,
// días restantes y estado, ya filtrada y ordenada.
func (s *Service) List(f Filter) []Enriched {
	snap := s.store.Current()
	hoy := s.now()

	out := make([]Enriched, 0, len(snap.Ordenes))
	for _, o := range snap.Ordenes {
		e := s.enrich(o, snap, hoy)
		if s.matches(e, f) {
			out = append(out, e)
		}
	}
	sortEnriched(out, f.Sort, f.Dir)
	return out
}

func (s *Service) Get(id string) (Enriched, error) {
	snap := s.store.Current()
	for _, o := range snap.Ordenes {
		if strings.EqualFold(o.ID, id) {
			return s.enrich(o, snap, s.now()), nil
		}
	}
	return Enriched{}, ErrOrdenNoEncontrada
}

func (s *Service) Create(ctx context.Context, req SaveRequest) (Enriched, []string, error) {
	o, warnings, err := s.fromRequest(domain.ServiceOrder{}, req)
	if err != nil {
		return Enriched{}, nil, err
	}
	created, err := s.store.CreateOrder(ctx, o)
	if err != nil {
		return Enriched{}, nil, err
	}
	snap := s.store.Current()
	return s.enrich(created, snap, s.now()), warnings, nil
}

func (s *Service) Update(ctx context.Context, id string, req SaveRequest) (Enriched, []string, error) {
	actual, err := s.raw(id)
	if err != nil {
		return Enriched{}, nil, err
	}
	o, warnings, err := s.fromRequest(actual, req)
	if err != nil {
		return Enriched{}, nil, err
	}
	if err := s.store.UpdateOrder(ctx, o); err != nil {
		return Enriched{}, nil, err
	}
	snap := s.store.Current()
	return s.enrich(o, snap, s.now()), warnings, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	actual, err := s.raw(id)
	if err != nil {
		return err
	}
	return s.store.DeleteOrder(ctx, actual.RowIndex)
}

// Preview deriva fecha fin y entregables sin persistir nada.
func (s *Service) Preview(req PreviewRequest) (PreviewResponse, error) {
	inicio := schedule.ParseDate(req.FechaInicio)
	if inicio == nil {
		return PreviewResponse{}, schedule.ErrFechaInicio
	}
	fin, entregables, warnings, err := derive(*inicio, req.Duracion, req.Modo, req.Cantidad, req.Frecuencia)
	if err != nil {
		return PreviewResponse{}, err
	}
	return PreviewResponse{
		FechaFin:     schedule.FormatDate(fin),
		Entregables:  entregables,
		Advertencias: warnings,
	}, nil
}

func (s *Service) raw(id string) (domain.ServiceOrder, error) {
	for _, o := range s.store.Current().Ordenes {
		if strings.EqualFold(o.ID, id) {
			return o, nil
		}
	}
	return domain.ServiceOrder{}, ErrOrdenNoEncontrada
}

// fromRequest vuelca la solicitud sobre la orden. Para OS el fin y los
// entregables se recalculan siempre desde inicio, duración y modo; para CAS
// el cronograma completo se borra al centinela.
func (s *Service) fromRequest(base domain.ServiceOrder, req SaveRequest) (domain.ServiceOrder, []string, error) {
	snap := s.store.Current()

	tipo := domain.ContractType(strings.ToUpper(strings.TrimSpace(req.Tipo)))
	if tipo != domain.ContractOS && tipo != domain.ContractCAS {
		return domain.ServiceOrder{}, nil, ErrTipoInvalido
	}
	if !personaExiste(snap, req.PersonaID) {
		return domain.ServiceOrder{}, nil, ErrPersonaInvalida
	}
	if !proyectoExiste(snap, req.ProyectoID) {
		return domain.ServiceOrder{}, nil, ErrProyectoInvalido
	}

	base.PersonaID = req.PersonaID
	base.ProyectoID = req.ProyectoID
	base.Tipo = tipo
	base.Activa = req.Activa
	base.AreaCargo = strings.TrimSpace(req.AreaCargo)
	base.Condicion = condicion(req)
	base.Valor = strings.TrimSpace(req.Valor)

	if tipo == domain.ContractCAS {
		base.FechaInicio = normalizeStart(req.FechaInicio)
		base.ClearSchedule()
		return base, nil, nil
	}

	inicio := schedule.ParseDate(req.FechaInicio)
	if inicio == nil {
		return domain.ServiceOrder{}, nil, schedule.ErrFechaInicio
	}
	fin, entregables, warnings, err := derive(*inicio, req.Duracion, req.Modo, req.Cantidad, req.Frecuencia)
	if err != nil {
		return domain.ServiceOrder{}, nil, err
	}
	base.FechaInicio = schedule.FormatDate(*inicio)
	base.Duracion = req.Duracion
	base.FechaFin = schedule.FormatDate(fin)
	base.Entregables = entregables
	return base, warnings, nil
}

func derive(inicio time.Time, duracion int, modo string, cantidad, frecuencia int) (time.Time, domain.Entregables, []string, error) {
	if duracion <= 0 {
		return time.Time{}, domain.Entregables{}, nil, schedule.ErrDuracion
	}
	fin := schedule.EndDate(inicio, duracion)

	switch modo {
	case ModoCantidad:
		e, err := schedule.ByCount(inicio, duracion, cantidad)
		return fin, e, nil, err
	case ModoFrecuencia:
		e, err := schedule.ByFrequency(inicio, duracion, frecuencia)
		return fin, e, nil, err
	case ModoAuto, "":
		e, warnings, err := schedule.Auto(inicio, duracion)
		return fin, e, warnings, err
	default:
		return time.Time{}, domain.Entregables{}, nil, ErrModoInvalido
	}
}

func condicion(req SaveRequest) string {
	c := strings.TrimSpace(req.Condicion)
	if strings.EqualFold(c, "Otros") {
		if otros := strings.TrimSpace(req.CondicionOtros); otros != "" {
			return otros
		}
	}
	return c
}

// normalizeStart tolera fechas de inicio libres en contratos CAS.
func normalizeStart(raw string) string {
	if t := schedule.ParseDate(raw); t != nil {
		return schedule.FormatDate(*t)
	}
	return strings.TrimSpace(raw)
}

func (s *Service) enrich(o domain.ServiceOrder, snap repository.Snapshot, hoy time.Time) Enriched {
	e := Enriched{
		ServiceOrder:   o,
		PersonaNombre:  "N/A",
		ProyectoNombre: "N/A",
	}
	for _, p := range snap.Personas {
		if p.ID == o.PersonaID {
			e.PersonaNombre = p.NombreCompleto()
			break
		}
	}
	for _, p := range snap.Proyectos {
		if p.ID == o.ProyectoID {
			e.ProyectoNombre = p.Nombre
			break
		}
	}

	e.DiasRestantes = schedule.DaysRemaining(hoy, schedule.ParseDate(o.FechaFin))
	e.Estado = schedule.Classify(e.DiasRestantes, o.Tipo)

	for _, fecha := range o.Entregables {
		if fecha == "" {
			continue
		}
		dias := schedule.DaysRemaining(hoy, schedule.ParseDate(fecha))
		e.Entregas = append(e.Entregas, Entrega{
			Fecha:  fecha,
			Dias:   dias,
			Estado: schedule.Classify(dias, domain.ContractOS),
		})
	}
	return e
}

func (s *Service) matches(e Enriched, f Filter) bool {
	if f.ProyectoID != 0 && e.ProyectoID != f.ProyectoID {
		return false
	}
	if f.PersonaID != 0 && e.PersonaID != f.PersonaID {
		return false
	}
	if f.Tipo != "" && !strings.EqualFold(string(e.Tipo), f.Tipo) {
		return false
	}
	if f.Estado != "" && !strings.EqualFold(string(e.Estado.Categoria), f.Estado) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Q)); q != "" {
		if !strings.Contains(strings.ToLower(e.ID), q) &&
			!strings.Contains(strings.ToLower(e.PersonaNombre), q) &&
			!strings.Contains(strings.ToLower(e.ProyectoNombre), q) &&
			!strings.Contains(strings.ToLower(string(e.Tipo)), q) &&
			!strings.Contains(strings.ToLower(e.AreaCargo), q) {
			return false
		}
	}
	return true
}

// sortEnriched ordena de forma estable. Las órdenes sin fecha fin van siempre
// al final, en ambas direcciones. Sin clave de orden la lista conserva el
// orden de la hoja.
func sortEnriched(list []Enriched, key, dir string) {
	if key == "" {
		return
	}
	desc := strings.EqualFold(dir, "desc")

	less := func(a, b Enriched) bool {
		switch key {
		case "persona":
			return cmpString(a.PersonaNombre, b.PersonaNombre, desc)
		case "proyecto":
			return cmpString(a.ProyectoNombre, b.ProyectoNombre, desc)
		case "id":
			return cmpString(a.ID, b.ID, desc)
		case "fechaInicio":
			return cmpDate(schedule.ParseDate(a.FechaInicio), schedule.ParseDate(b.FechaInicio), desc)
		default: // fechaFin / diasRestantes
			return cmpDias(a.DiasRestantes, b.DiasRestantes, desc)
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return less(list[i], list[j]) })
}

func cmpString(a, b string, desc bool) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if desc {
		return a > b
	}
	return a < b
}

func cmpDias(a, b *int, desc bool) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	if desc {
		return *a > *b
	}
	return *a < *b
}

func cmpDate(a, b *time.Time, desc bool) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	if desc {
		return a.After(*b)
	}
	return a.Before(*b)
}

func personaExiste(snap repository.Snapshot, id int64) bool {
	for _, p := range snap.Personas {
		if p.ID == id {
			return true
		}
	}
	return false
}

func proyectoExiste(snap repository.Snapshot, id int64) bool {
	for _, p := range snap.Proyectos {
		if p.ID == id {
			return true
		}
	}
	return false
}
