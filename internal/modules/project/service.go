package project

import (
	"context"
	"strings"

	"gestiondeo/internal/domain"
	"gestiondeo/internal/schedule"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(q string) []domain.Project {
	proyectos := s.store.Current().Proyectos
	if q == "" {
		return proyectos
	}
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]domain.Project, 0, len(proyectos))
	for _, p := range proyectos {
		if strings.Contains(strings.ToLower(p.Nombre), q) ||
			strings.Contains(strings.ToLower(p.Descripcion), q) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Service) Get(id int64) (domain.Project, error) {
	for _, p := range s.store.Current().Proyectos {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Project{}, ErrProyectoNoEncontrado
}

func (s *Service) Create(ctx context.Context, req SaveRequest) (domain.Project, error) {
	return s.store.CreateProject(ctx, s.fromRequest(domain.Project{}, req))
}

func (s *Service) Update(ctx context.Context, id int64, req SaveRequest) (domain.Project, error) {
	actual, err := s.Get(id)
	if err != nil {
		return domain.Project{}, err
	}
	actual = s.fromRequest(actual, req)
	if err := s.store.UpdateProject(ctx, actual); err != nil {
		return domain.Project{}, err
	}
	return actual, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	actual, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.store.DeleteProject(ctx, actual.RowIndex)
}

// fromRequest vuelca la solicitud sobre el proyecto conservando id y fila.
// Las fechas reconocibles se normalizan a dd/mm/yyyy, el resto queda tal cual.
func (s *Service) fromRequest(base domain.Project, req SaveRequest) domain.Project {
	base.Nombre = strings.TrimSpace(req.Nombre)
	base.Activo = req.Activo
	base.Inicio = normalizeDate(req.Inicio)
	base.Fin = normalizeDate(req.Fin)
	base.Descripcion = strings.TrimSpace(req.Descripcion)
	return base
}

func normalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if t := schedule.ParseDate(raw); t != nil {
		return schedule.FormatDate(*t)
	}
	return raw
}
