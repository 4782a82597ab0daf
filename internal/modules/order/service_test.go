package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gestiondeo/internal/domain"
	"gestiondeo/internal/repository"
	"gestiondeo/internal/schedule"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Current() repository.Snapshot {
	args := m.Called()
	return args.Get(0).(repository.Snapshot)
}

func (m *mockStore) CreateOrder(ctx context.Context, o domain.ServiceOrder) (domain.ServiceOrder, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(domain.ServiceOrder), args.Error(1)
}

func (m *mockStore) UpdateOrder(ctx context.Context, o domain.ServiceOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *mockStore) DeleteOrder(ctx context.Context, rowIdx int64) error {
	return m.Called(ctx, rowIdx).Error(0)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func baseSnapshot(ordenes ...domain.ServiceOrder) repository.Snapshot {
	return repository.Snapshot{
		Personas: []domain.Person{
			{ID: 1, Nombre: "Ana", Apellido: "Torres"},
			{ID: 2, Nombre: "Luis", Apellido: "Rojas"},
		},
		Proyectos: []domain.Project{
			{ID: 10, Nombre: "IREN Norte"},
			{ID: 11, Nombre: "Drenaje Piura"},
		},
		Ordenes: ordenes,
	}
}

func newFixedService(store *mockStore, hoy string) *Service {
	svc := NewService(store)
	svc.now = func() time.Time { return day(hoy) }
	return svc
}

func TestCreate_OSDerivaCronograma(t *testing.T) {
	store := new(mockStore)
	store.On("Current").Return(baseSnapshot())
	store.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o domain.ServiceOrder) bool {
		return o.FechaFin == "31/03/2024" &&
			o.Entregables == domain.Entregables{"31/01/2024", "01/03/2024", "31/03/2024", ""}
	})).Return(domain.ServiceOrder{ID: "OS-001", PersonaID: 1, ProyectoID: 10, Tipo: domain.ContractOS, FechaFin: "31/03/2024"}, nil)

	svc := newFixedService(store, "2024-01-05")
	e, warnings, err := svc.Create(context.Background(), SaveRequest{
		PersonaID:   1,
		ProyectoID:  10,
		Tipo:        "OS",
		FechaInicio: "2024-01-01",
		Duracion:    90,
		Modo:        ModoAuto,
		Activa:      true,
	})

	assert.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "OS-001", e.ID)
	assert.Equal(t, "Ana Torres", e.PersonaNombre)
	store.AssertExpectations(t)
}

func TestCreate_CASLimpiaElCronograma(t *testing.T) {
	store := new(mockStore)
	store.On("Current").Return(baseSnapshot())
	store.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o domain.ServiceOrder) bool {
		return o.Tipo == domain.ContractCAS &&
			o.Duracion == 0 &&
			o.FechaFin == domain.Indeterminado &&
			o.Entregables == domain.Entregables{}
	})).Return(domain.ServiceOrder{ID: "OS-002", PersonaID: 2, ProyectoID: 11, Tipo: domain.ContractCAS, FechaFin: domain.Indeterminado}, nil)

	svc := newFixedService(store, "2024-01-05")
	e, _, err := svc.Create(context.Background(), SaveRequest{
		PersonaID:   2,
		ProyectoID:  11,
		Tipo:        "cas",
		FechaInicio: "01/02/2024",
		Duracion:    365, // ignorado para CAS
	})

	assert.NoError(t, err)
	assert.Equal(t, schedule.EstadoVigente, e.Estado.Categoria)
	assert.Nil(t, e.DiasRestantes)
	store.AssertExpectations(t)
}

func TestCreate_ReferenciasInvalidas(t *testing.T) {
	store := new(mockStore)
	store.On("Current").Return(baseSnapshot())

	svc := newFixedService(store, "2024-01-05")

	_, _, err := svc.Create(context.Background(), SaveRequest{PersonaID: 99, ProyectoID: 10, Tipo: "OS"})
	assert.ErrorIs(t, err, ErrPersonaInvalida)

	_, _, err = svc.Create(context.Background(), SaveRequest{PersonaID: 1, ProyectoID: 99, Tipo: "OS"})
	assert.ErrorIs(t, err, ErrProyectoInvalido)

	_, _, err = svc.Create(context.Background(), SaveRequest{PersonaID: 1, ProyectoID: 10, Tipo: "locación"})
	assert.ErrorIs(t, err, ErrTipoInvalido)
}

func TestCreate_CondicionOtros(t *testing.T) {
	store := new(mockStore)
	store.On("Current").Return(baseSnapshot())
	store.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o domain.ServiceOrder) bool {
		return o.Condicion == "Convenio marco"
	})).Return(domain.ServiceOrder{ID: "OS-003", PersonaID: 1, ProyectoID: 10, Tipo: domain.ContractOS}, nil)

	svc := newFixedService(store, "2024-01-05")
	_, _, err := svc.Create(context.Background(), SaveRequest{
		PersonaID:      1,
		ProyectoID:     10,
		Tipo:           "OS",
		FechaInicio:    "01/01/2024",
		Duracion:       30,
		Condicion:      "Otros",
		CondicionOtros: " Convenio marco ",
	})

	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestList_EnriqueceYClasifica(t *testing.T) {
	store := new(mockStore)
	store.On("Current").Return(baseSnapshot(
		domain.ServiceOrder{ID: "OS-001", PersonaID: 1, ProyectoID: 10, Tipo: domain.ContractOS, FechaFin: "15/03/2024", Entregables: domain.Entregables{"12/03/2024"}},
		domain.ServiceOrder{ID: "OS-002", PersonaID: 99, ProyectoID: 99, Tipo: domain.ContractOS, FechaFin: "01/01/2024"},
		domain.ServiceOrder{ID: "OS-003", PersonaID: 2, ProyectoID: 11, Tipo: domain.ContractCAS, FechaFin: domain.Indeterminado},
	))

	svc := newFixedService(store, "2024-03-10")
	list := svc.List(Filter{})

	assert.Len(t, list, 3)

	// OS-001: vence en 5 días, por vencer, con su entregable clasificado.
	assert.Equal(t, 5, *list[0].DiasRestantes)
	assert.Equal(t, schedule.EstadoPorVencer, list[0].Estado.Categoria)
	assert.Len(t, list[0].Entregas, 1)
	assert.Equal(t, 2, *list[0].Entregas[0].Dias)

	// OS-002: referencias rotas muestran N/A, contrato ya finalizado.
	assert.Equal(t, "N/A", list[1].PersonaNombre)
	assert.Equal(t, "N/A", list[1].ProyectoNombre)
	assert.Equal(t, schedule.EstadoFinalizada, list[1].Estado.Categoria)

	// OS-003: CAS sin fecha va al final y queda vigente.
	assert.Equal(t, "OS-003", list[2].ID)
	assert.Nil(t, list[2].DiasRestantes)
	assert.Equal(t, schedule.EstadoVigente, list[2].Estado.Categoria)
}

func TestList_FiltraPorEstadoYProyecto(t *testing.T) {
	store := new(mockStore)
	store.On("Current").Return(baseSnapshot(
		domain.ServiceOrder{ID: "OS-001", PersonaID: 1, ProyectoID: 10, Tipo: domain.ContractOS, FechaFin: "15/03/2024"},
		domain.ServiceOrder{ID: "OS-002", PersonaID: 2, ProyectoID: 11, Tipo: domain.ContractOS, FechaFin: "01/06/2024"},
	))

	svc := newFixedService(store, "2024-03-10")

	porVencer := svc.List(Filter{Estado: "por vencer"})
	assert.Len(t, porVencer, 1)
	assert.Equal(t, "OS-001", porVencer[0].ID)

	drenaje := svc.List(Filter{ProyectoID: 11})
	assert.Len(t, drenaje, 1)
	assert.Equal(t, "OS-002", drenaje[0].ID)

	texto := svc.List(Filter{Q: "rojas"})
	assert.Len(t, texto, 1)
	assert.Equal(t, "OS-002", texto[0].ID)
}

func TestList_BusquedaPorTipoDeContrato(t *testing.T) {
	store := new(mockStore)
	store.On("Current").Return(baseSnapshot(
		domain.ServiceOrder{ID: "OS-001", PersonaID: 1, ProyectoID: 10, Tipo: domain.ContractOS, FechaFin: "15/03/2024"},
		domain.ServiceOrder{ID: "OS-002", PersonaID: 2, ProyectoID: 11, Tipo: domain.ContractCAS, FechaFin: domain.Indeterminado},
	))

	svc := newFixedService(store, "2024-03-10")

	porTipo := svc.List(Filter{Q: "cas"})
	assert.Equal(t, []string{"OS-002"}, ids(porTipo))

	// "os" como texto libre pesca ambos: por el id y por el tipo.
	assert.Len(t, svc.List(Filter{Q: "os"}), 2)
}

func TestList_SinFechaSiempreAlFinal(t *testing.T) {
	store := new(mockStore)
	store.On("Current").Return(baseSnapshot(
		domain.ServiceOrder{ID: "OS-001", PersonaID: 1, ProyectoID: 10, Tipo: domain.ContractCAS, FechaFin: domain.Indeterminado},
		domain.ServiceOrder{ID: "OS-002", PersonaID: 2, ProyectoID: 11, Tipo: domain.ContractOS, FechaFin: "01/06/2024"},
		domain.ServiceOrder{ID: "OS-003", PersonaID: 1, ProyectoID: 10, Tipo: domain.ContractOS, FechaFin: "15/03/2024"},
	))

	svc := newFixedService(store, "2024-03-10")

	asc := svc.List(Filter{Sort: "fechaFin", Dir: "asc"})
	assert.Equal(t, []string{"OS-003", "OS-002", "OS-001"}, ids(asc))

	desc := svc.List(Filter{Sort: "fechaFin", Dir: "desc"})
	assert.Equal(t, []string{"OS-002", "OS-003", "OS-001"}, ids(desc))
}

func TestPreview_NoPersiste(t *testing.T) {
	store := new(mockStore)
	svc := newFixedService(store, "2024-01-05")

	preview, err := svc.Preview(PreviewRequest{
		FechaInicio: "01/01/2024",
		Duracion:    90,
		Modo:        ModoCantidad,
		Cantidad:    3,
	})

	assert.NoError(t, err)
	assert.Equal(t, "31/03/2024", preview.FechaFin)
	assert.Equal(t, "31/03/2024", preview.Entregables[2])
	store.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestDelete_PorID(t *testing.T) {
	store := new(mockStore)
	store.On("Current").Return(baseSnapshot(
		domain.ServiceOrder{ID: "OS-007", PersonaID: 1, ProyectoID: 10, Tipo: domain.ContractOS, RowIndex: 8},
	))
	store.On("DeleteOrder", mock.Anything, int64(8)).Return(nil)

	svc := newFixedService(store, "2024-03-10")
	assert.NoError(t, svc.Delete(context.Background(), "os-007"))
	store.AssertExpectations(t)
}

func ids(list []Enriched) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.ID)
	}
	return out
}
