package person

import (
	"context"
	"sort"
	"strings"

	"gestiondeo/internal/domain"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// List devuelve las personas de la hoja, opcionalmente filtradas por texto libre.
func (s *Service) List(q string) []domain.Person {
	personas := s.store.Current().Personas
	if q == "" {
		return personas
	}
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]domain.Person, 0, len(personas))
	for _, p := range personas {
		if strings.Contains(strings.ToLower(p.NombreCompleto()), q) ||
			strings.Contains(strings.ToLower(p.Email), q) ||
			strings.Contains(strings.ToLower(p.Rol), q) ||
			strings.Contains(p.Celular, q) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Service) Get(id int64) (domain.Person, error) {
	for _, p := range s.store.Current().Personas {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Person{}, ErrPersonaNoEncontrada
}

func (s *Service) Create(ctx context.Context, req SaveRequest) (domain.Person, error) {
	return s.store.CreatePerson(ctx, fromRequest(domain.Person{}, req))
}

func (s *Service) Update(ctx context.Context, id int64, req SaveRequest) (domain.Person, error) {
	actual, err := s.Get(id)
	if err != nil {
		return domain.Person{}, err
	}
	actual = fromRequest(actual, req)
	if err := s.store.UpdatePerson(ctx, actual); err != nil {
		return domain.Person{}, err
	}
	return actual, nil
}

func fromRequest(base domain.Person, req SaveRequest) domain.Person {
	base.Nombre = strings.TrimSpace(req.Nombre)
	base.Apellido = strings.TrimSpace(req.Apellido)
	base.Email = strings.TrimSpace(req.Email)
	base.Activo = req.Activo
	base.Rol = strings.TrimSpace(req.Rol)
	base.Celular = strings.TrimSpace(req.Celular)
	base.Valor = strings.TrimSpace(req.Valor)
	return base
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	actual, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.store.DeletePerson(ctx, actual.RowIndex)
}

// AvailableRoles lista los roles que ninguna otra persona ocupa todavía.
// El rol actual de la persona editada se mantiene seleccionable.
func (s *Service) AvailableRoles(current string) []string {
	snap := s.store.Current()
	taken := make(map[string]bool, len(snap.Personas))
	for _, p := range snap.Personas {
		if p.Rol != "" {
			taken[strings.ToLower(p.Rol)] = true
		}
	}
	out := make([]string, 0, len(snap.Roles))
	for _, r := range snap.Roles {
		libre := !taken[strings.ToLower(r.Nombre)]
		if libre || strings.EqualFold(r.Nombre, current) {
			out = append(out, r.Nombre)
		}
	}
	sort.Strings(out)
	return out
}
