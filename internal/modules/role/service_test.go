package role

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gestiondeo/internal/domain"
	"gestiondeo/internal/repository"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Current() repository.Snapshot {
	args := m.Called()
	return args.Get(0).(repository.Snapshot)
}

func (m *mockStore) CreateRole(ctx context.Context, nombre string) error {
	return m.Called(ctx, nombre).Error(0)
}

func (m *mockStore) UpdateRole(ctx context.Context, r domain.Role) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockStore) DeleteRole(ctx context.Context, rowIdx int64) error {
	return m.Called(ctx, rowIdx).Error(0)
}

func conRoles(roles ...domain.Role) *mockStore {
	store := new(mockStore)
	store.On("Current").Return(repository.Snapshot{Roles: roles})
	return store
}

func TestCreate_DevuelveLaFilaRecargada(t *testing.T) {
	store := new(mockStore)
	store.On("Current").Return(repository.Snapshot{Roles: []domain.Role{}}).Once()
	store.On("CreateRole", mock.Anything, "Especialista SIG").Return(nil)
	store.On("Current").Return(repository.Snapshot{Roles: []domain.Role{
		{Nombre: "Especialista SIG", RowIndex: 2},
	}})

	svc := NewService(store)
	r, err := svc.Create(context.Background(), " Especialista SIG ")

	assert.NoError(t, err)
	assert.Equal(t, int64(2), r.RowIndex)
	store.AssertExpectations(t)
}

func TestCreate_RechazaVacioYDuplicado(t *testing.T) {
	store := conRoles(domain.Role{Nombre: "Jefe de Proyecto", RowIndex: 2})
	svc := NewService(store)

	_, err := svc.Create(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrNombreVacio)

	_, err = svc.Create(context.Background(), "jefe de proyecto")
	assert.ErrorIs(t, err, ErrRolDuplicado)
}

func TestUpdate_PermiteRenombrarseASiMismo(t *testing.T) {
	store := conRoles(domain.Role{Nombre: "Analista", RowIndex: 3})
	store.On("UpdateRole", mock.Anything, domain.Role{Nombre: "Analista SIG", RowIndex: 3}).Return(nil)

	svc := NewService(store)
	r, err := svc.Update(context.Background(), 3, " Analista SIG ")

	assert.NoError(t, err)
	assert.Equal(t, "Analista SIG", r.Nombre)
	store.AssertExpectations(t)
}

func TestUpdate_FilaInexistente(t *testing.T) {
	svc := NewService(conRoles())
	_, err := svc.Update(context.Background(), 9, "X")
	assert.ErrorIs(t, err, ErrRolNoEncontrado)
}

func TestDelete_PorFila(t *testing.T) {
	store := conRoles(domain.Role{Nombre: "Analista", RowIndex: 4})
	store.On("DeleteRole", mock.Anything, int64(4)).Return(nil)

	svc := NewService(store)
	assert.NoError(t, svc.Delete(context.Background(), 4))
	store.AssertExpectations(t)
}
