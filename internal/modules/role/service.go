package role

import (
	"context"
	"errors"
	"strings"

	"gestiondeo/internal/domain"
	"gestiondeo/internal/repository"
)

var (
	ErrNombreVacio     = errors.New("el nombre del rol no puede estar vacío")
	ErrRolDuplicado    = errors.New("ya existe un rol con ese nombre")
	ErrRolNoEncontrado = errors.New("rol no encontrado")
)

// Store es el recorte del dataset que necesita este módulo. Los roles no
// tienen columna id, la fila de la hoja es la única referencia estable.
type Store interface {
	Current() repository.Snapshot
	CreateRole(ctx context.Context, nombre string) error
	UpdateRole(ctx context.Context, r domain.Role) error
	DeleteRole(ctx context.Context, rowIdx int64) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) List() []domain.Role {
	return s.store.Current().Roles
}

func (s *Service) Create(ctx context.Context, nombre string) (domain.Role, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return domain.Role{}, ErrNombreVacio
	}
	if s.exists(nombre, 0) {
		return domain.Role{}, ErrRolDuplicado
	}
	if err := s.store.CreateRole(ctx, nombre); err != nil {
		return domain.Role{}, err
	}
	// El alta recarga la hoja, así que la fila nueva ya está en el snapshot.
	for _, r := range s.store.Current().Roles {
		if strings.EqualFold(r.Nombre, nombre) {
			return r, nil
		}
	}
	return domain.Role{Nombre: nombre}, nil
}

func (s *Service) Update(ctx context.Context, rowIdx int64, nombre string) (domain.Role, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return domain.Role{}, ErrNombreVacio
	}
	if _, err := s.byRow(rowIdx); err != nil {
		return domain.Role{}, err
	}
	if s.exists(nombre, rowIdx) {
		return domain.Role{}, ErrRolDuplicado
	}
	r := domain.Role{Nombre: nombre, RowIndex: rowIdx}
	if err := s.store.UpdateRole(ctx, r); err != nil {
		return domain.Role{}, err
	}
	return r, nil
}

func (s *Service) Delete(ctx context.Context, rowIdx int64) error {
	if _, err := s.byRow(rowIdx); err != nil {
		return err
	}
	return s.store.DeleteRole(ctx, rowIdx)
}

func (s *Service) byRow(rowIdx int64) (domain.Role, error) {
	for _, r := range s.store.Current().Roles {
		if r.RowIndex == rowIdx {
			return r, nil
		}
	}
	return domain.Role{}, ErrRolNoEncontrado
}

func (s *Service) exists(nombre string, exceptRow int64) bool {
	for _, r := range s.store.Current().Roles {
		if r.RowIndex != exceptRow && strings.EqualFold(r.Nombre, nombre) {
			return true
		}
	}
	return false
}
