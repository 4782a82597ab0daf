package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"google.golang.org/api/googleapi"
	gsheets "google.golang.org/api/sheets/v4"

	"gestiondeo/internal/domain"
	"gestiondeo/internal/sheets"
)

var (
	// ErrUnauthorized marks remote-auth failures (expired or missing token).
	// Handlers answer 401 so the client drops its session.
	ErrUnauthorized = errors.New("spreadsheet access unauthorized")

	ErrSinRowIndex = errors.New("fila sin rowIndex, no se puede aplicar la operacion")
	ErrSheetFalta  = errors.New("pestaña no encontrada en el spreadsheet")
)

// Store is the spreadsheet-backed dataset. Every mutation is a single remote
// call followed by an unconditional reload of all four sheets; the in-memory
// snapshot is only ever replaced wholesale. Two clients editing the same row
// race without conflict detection: the last reload wins.
type Store struct {
	svc           *gsheets.Service
	spreadsheetID string

	mu       sync.RWMutex
	snap     Snapshot
	sheetIDs map[string]int64

	onRefresh func()
}

func NewStore(svc *gsheets.Service, spreadsheetID string) *Store {
	return &Store{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetIDs:      make(map[string]int64),
	}
}

// OnRefresh registers the hook run after each successful reload (the events
// hub broadcasts it to connected dashboards).
func (s *Store) OnRefresh(fn func()) {
	s.onRefresh = fn
}

// Current returns the last loaded snapshot.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// LoadAll rebuilds the snapshot from a metadata read plus one batch read of
// the four value ranges.
func (s *Store) LoadAll(ctx context.Context) error {
	meta, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return classify(fmt.Errorf("leyendo metadatos: %w", err))
	}

	ids := make(map[string]int64, len(meta.Sheets))
	for _, sh := range meta.Sheets {
		if sh.Properties != nil {
			ids[sh.Properties.Title] = sh.Properties.SheetId
		}
	}
	for _, name := range []string{SheetProyectos, SheetPersonas, SheetRoles, SheetOS} {
		if _, ok := ids[name]; !ok {
			return fmt.Errorf("%w: %s", ErrSheetFalta, name)
		}
	}

	resp, err := s.svc.Spreadsheets.Values.
		BatchGet(s.spreadsheetID).
		Ranges(rangeProyectos, rangePersonas, rangeOS, rangeRoles).
		Context(ctx).Do()
	if err != nil {
		return classify(fmt.Errorf("leyendo valores: %w", err))
	}
	if len(resp.ValueRanges) != 4 {
		return fmt.Errorf("respuesta batchGet incompleta: %d rangos", len(resp.ValueRanges))
	}

	snap := Snapshot{LoadedAt: time.Now()}
	for i, row := range resp.ValueRanges[0].Values {
		snap.Proyectos = append(snap.Proyectos, parseProjectRow(row, i))
	}
	for i, row := range resp.ValueRanges[1].Values {
		snap.Personas = append(snap.Personas, parsePersonRow(row, i))
	}
	for i, row := range resp.ValueRanges[2].Values {
		snap.Ordenes = append(snap.Ordenes, parseOrderRow(row, i))
	}
	for i, row := range resp.ValueRanges[3].Values {
		r := parseRoleRow(row, i)
		if r.Nombre == "" {
			continue
		}
		snap.Roles = append(snap.Roles, r)
	}

	s.mu.Lock()
	s.snap = snap
	s.sheetIDs = ids
	s.mu.Unlock()
	return nil
}

// mutate is the single perform-operation wrapper: run the one remote write,
// then refetch everything. No optimistic update, no rollback needed.
func (s *Store) mutate(ctx context.Context, op func(context.Context) error) error {
	if err := op(ctx); err != nil {
		return classify(err)
	}
	if err := s.LoadAll(ctx); err != nil {
		return err
	}
	if s.onRefresh != nil {
		s.onRefresh()
	}
	return nil
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sheets.ErrNoToken) {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && (gerr.Code == 401 || gerr.Code == 403) {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return err
}

func (s *Store) appendRow(ctx context.Context, appendRange string, row []interface{}) error {
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, appendRange, &gsheets.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	return err
}

func (s *Store) overwriteRow(ctx context.Context, sheet, lastCol string, rowIdx int64, row []interface{}) error {
	rng := fmt.Sprintf("%s!A%d:%s%d", sheet, rowIdx, lastCol, rowIdx)
	_, err := s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, rng, &gsheets.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	return err
}

// deleteRow removes a data row. The last remaining row is value-cleared
// instead, deleting it would drop the range the sheet reads start from.
func (s *Store) deleteRow(ctx context.Context, sheet, lastCol string, rowIdx int64, remaining int) error {
	if rowIdx <= 0 {
		return ErrSinRowIndex
	}
	if remaining <= 1 {
		rng := fmt.Sprintf("%s!A%d:%s%d", sheet, rowIdx, lastCol, rowIdx)
		_, err := s.svc.Spreadsheets.Values.Clear(s.spreadsheetID, rng, &gsheets.ClearValuesRequest{}).
			Context(ctx).Do()
		return err
	}

	s.mu.RLock()
	sheetID, ok := s.sheetIDs[sheet]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSheetFalta, sheet)
	}

	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			DeleteDimension: &gsheets.DeleteDimensionRequest{
				Range: &gsheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: rowIdx - 1,
					EndIndex:   rowIdx,
				},
			},
		}},
	}
	_, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do()
	return err
}

// --- Proyectos ---

func (s *Store) CreateProject(ctx context.Context, p domain.Project) (domain.Project, error) {
	p.ID = NextProjectID(s.Current().Proyectos)
	err := s.mutate(ctx, func(ctx context.Context) error {
		return s.appendRow(ctx, appendRangeProyectos, projectRow(p))
	})
	return p, err
}

func (s *Store) UpdateProject(ctx context.Context, p domain.Project) error {
	if p.RowIndex <= 0 {
		return ErrSinRowIndex
	}
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.overwriteRow(ctx, SheetProyectos, "F", p.RowIndex, projectRow(p))
	})
}

func (s *Store) DeleteProject(ctx context.Context, rowIdx int64) error {
	remaining := len(s.Current().Proyectos)
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.deleteRow(ctx, SheetProyectos, "F", rowIdx, remaining)
	})
}

// --- Personas ---

func (s *Store) CreatePerson(ctx context.Context, p domain.Person) (domain.Person, error) {
	p.ID = NextPersonID(s.Current().Personas)
	err := s.mutate(ctx, func(ctx context.Context) error {
		return s.appendRow(ctx, appendRangePersonas, personRow(p))
	})
	return p, err
}

func (s *Store) UpdatePerson(ctx context.Context, p domain.Person) error {
	if p.RowIndex <= 0 {
		return ErrSinRowIndex
	}
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.overwriteRow(ctx, SheetPersonas, "H", p.RowIndex, personRow(p))
	})
}

func (s *Store) DeletePerson(ctx context.Context, rowIdx int64) error {
	remaining := len(s.Current().Personas)
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.deleteRow(ctx, SheetPersonas, "H", rowIdx, remaining)
	})
}

// --- Roles ---

func (s *Store) CreateRole(ctx context.Context, nombre string) error {
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.appendRow(ctx, appendRangeRoles, []interface{}{nombre})
	})
}

func (s *Store) UpdateRole(ctx context.Context, r domain.Role) error {
	if r.RowIndex <= 0 {
		return ErrSinRowIndex
	}
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.overwriteRow(ctx, SheetRoles, "A", r.RowIndex, []interface{}{r.Nombre})
	})
}

func (s *Store) DeleteRole(ctx context.Context, rowIdx int64) error {
	remaining := len(s.Current().Roles)
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.deleteRow(ctx, SheetRoles, "A", rowIdx, remaining)
	})
}

// --- Ordenes de servicio ---

func (s *Store) CreateOrder(ctx context.Context, o domain.ServiceOrder) (domain.ServiceOrder, error) {
	if o.ID == "" {
		o.ID = NextOrderID(s.Current().Ordenes)
	}
	err := s.mutate(ctx, func(ctx context.Context) error {
		return s.appendRow(ctx, appendRangeOS, orderRow(o))
	})
	return o, err
}

func (s *Store) UpdateOrder(ctx context.Context, o domain.ServiceOrder) error {
	if o.RowIndex <= 0 {
		return ErrSinRowIndex
	}
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.overwriteRow(ctx, SheetOS, "O", o.RowIndex, orderRow(o))
	})
}

func (s *Store) DeleteOrder(ctx context.Context, rowIdx int64) error {
	remaining := len(s.Current().Ordenes)
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.deleteRow(ctx, SheetOS, "O", rowIdx, remaining)
	})
}
