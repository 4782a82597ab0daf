package project

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

func (m *mockStore) CreateProject(ctx context.Context, p domain.Project) (domain.Project, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *mockStore) UpdateProject(ctx context.Context, p domain.Project) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockStore) DeleteProject(ctx context.Context, rowIdx int64) error {
	return m.Called(ctx, rowIdx).Error(0)
}

func TestCreate_NormalizaFechas(t *testing.T) {
	store := new(mockStore)
	esperado := domain.Project{Nombre: "IREN Norte", Activo: true, Inicio: "15/01/2024", Fin: "2025-no-es-fecha"}
	store.On("CreateProject", mock.Anything, esperado).Return(esperado, nil)

	svc := NewService(store)
	_, err := svc.Create(context.Background(), SaveRequest{
		Nombre: " IREN Norte ",
		Activo: true,
		Inicio: "2024-01-15",
		Fin:    "2025-no-es-fecha",
	})

	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestUpdate_ConservaIDYFila(t *testing.T) {
	store := new(mockStore)
	store.On("Current").Return(repository.Snapshot{Proyectos: []domain.Project{
		{ID: 4, Nombre: "La Caleta", RowIndex: 6},
	}})
	store.On("UpdateProject", mock.Anything, mock.MatchedBy(func(p domain.Project) bool {
		return p.ID == 4 && p.RowIndex == 6 && p.Nombre == "La Caleta II"
	})).Return(nil)

	svc := NewService(store)
	p, err := svc.Update(context.Background(), 4, SaveRequest{Nombre: "La Caleta II"})

	assert.NoError(t, err)
	assert.Equal(t, int64(4), p.ID)
	store.AssertExpectations(t)
}

func TestDelete_NoEncontrado(t *testing.T) {
	store := new(mockStore)
	store.On("Current").Return(repository.Snapshot{})

	svc := NewService(store)
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrProyectoNoEncontrado)
}

func TestList_FiltraPorNombreYDescripcion(t *testing.T) {
	store := new(mockStore)
	store.On("Current").Return(repository.Snapshot{Proyectos: []domain.Project{
		{ID: 1, Nombre: "Lanatta", Descripcion: "hospital"},
		{ID: 2, Nombre: "Drenaje Piura", Descripcion: "pluvial"},
	}})

	svc := NewService(store)
	assert.Len(t, svc.List("drenaje"), 1)
	assert.Len(t, svc.List("hospital"), 1)
	assert.Len(t, svc.List(""), 2)
}
