package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gestiondeo/internal/domain"
)

// Sheet names and value ranges, fixed by the backing spreadsheet's layout.
const (
	SheetProyectos = "Proyectos"
	SheetPersonas  = "Personas"
	SheetRoles     = "Roles"
	SheetOS        = "OS"

	rangeProyectos = "Proyectos!A2:F"
	rangePersonas  = "Personas!A2:H"
	rangeRoles     = "Roles!A2:A"
	rangeOS        = "OS!A2:O"

	appendRangeProyectos = "Proyectos!A:F"
	appendRangePersonas  = "Personas!A:H"
	appendRangeRoles     = "Roles!A:A"
	appendRangeOS        = "OS!A:O"
)

// Snapshot is the whole dataset as read in one batch. It is replaced
// wholesale after every mutation; nothing is patched incrementally.
type Snapshot struct {
	Proyectos []domain.Project
	Personas  []domain.Person
	Roles     []domain.Role
	Ordenes   []domain.ServiceOrder
	LoadedAt  time.Time
}

// cell returns column i of a raw sheet row, tolerating short rows.
func cell(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	if row[i] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[i]))
}

func parseInt64(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// parseInt swallows the Indeterminado sentinel and anything non-numeric to 0.
func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// parseFlag reads the sheet's "TRUE"/"FALSE" strings.
func parseFlag(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "TRUE")
}

func formatFlag(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// rowIndex converts a 0-based position within a data range that starts at
// sheet row 2 into the 1-based sheet row number.
func rowIndex(i int) int64 {
	return int64(i) + 2
}

func parseProjectRow(row []interface{}, i int) domain.Project {
	return domain.Project{
		ID:          parseInt64(cell(row, 0)),
		Nombre:      cell(row, 1),
		Activo:      parseFlag(cell(row, 2)),
		Inicio:      cell(row, 3),
		Fin:         cell(row, 4),
		Descripcion: cell(row, 5),
		RowIndex:    rowIndex(i),
	}
}

func projectRow(p domain.Project) []interface{} {
	return []interface{}{
		strconv.FormatInt(p.ID, 10), p.Nombre, formatFlag(p.Activo),
		p.Inicio, p.Fin, p.Descripcion,
	}
}

func parsePersonRow(row []interface{}, i int) domain.Person {
	return domain.Person{
		ID:       parseInt64(cell(row, 0)),
		Nombre:   cell(row, 1),
		Apellido: cell(row, 2),
		Email:    cell(row, 3),
		Activo:   parseFlag(cell(row, 4)),
		Rol:      cell(row, 5),
		Celular:  cell(row, 6),
		Valor:    cell(row, 7),
		RowIndex: rowIndex(i),
	}
}

func personRow(p domain.Person) []interface{} {
	return []interface{}{
		strconv.FormatInt(p.ID, 10), p.Nombre, p.Apellido, p.Email,
		formatFlag(p.Activo), p.Rol, p.Celular, p.Valor,
	}
}

func parseRoleRow(row []interface{}, i int) domain.Role {
	return domain.Role{Nombre: cell(row, 0), RowIndex: rowIndex(i)}
}

func parseOrderRow(row []interface{}, i int) domain.ServiceOrder {
	o := domain.ServiceOrder{
		ID:          cell(row, 0),
		PersonaID:   parseInt64(cell(row, 1)),
		ProyectoID:  parseInt64(cell(row, 2)),
		Tipo:        domain.ContractType(strings.ToUpper(cell(row, 3))),
		Duracion:    parseInt(cell(row, 4)),
		FechaInicio: cell(row, 5),
		FechaFin:    cell(row, 6),
		Activa:      parseFlag(cell(row, 11)),
		Valor:       cell(row, 12),
		AreaCargo:   cell(row, 13),
		Condicion:   cell(row, 14),
		RowIndex:    rowIndex(i),
	}
	for s := 0; s < domain.MaxEntregables; s++ {
		o.Entregables[s] = cell(row, 7+s)
	}
	return o
}

func orderRow(o domain.ServiceOrder) []interface{} {
	duracion := domain.Indeterminado
	if o.Tipo != domain.ContractCAS {
		duracion = strconv.Itoa(o.Duracion)
	}
	return []interface{}{
		o.ID,
		strconv.FormatInt(o.PersonaID, 10),
		strconv.FormatInt(o.ProyectoID, 10),
		string(o.Tipo),
		duracion,
		o.FechaInicio,
		o.FechaFin,
		o.Entregables[0], o.Entregables[1], o.Entregables[2], o.Entregables[3],
		formatFlag(o.Activa),
		o.Valor,
		o.AreaCargo,
		o.Condicion,
	}
}

// NextPersonID assigns identity as max(existing)+1, 1 on an empty sheet.
func NextPersonID(personas []domain.Person) int64 {
	var max int64
	for _, p := range personas {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func NextProjectID(proyectos []domain.Project) int64 {
	var max int64
	for _, p := range proyectos {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

// NextOrderID generates the next OS-### id from the highest numeric suffix
// among existing OS-prefixed ids. User-supplied ids that do not follow the
// pattern are simply skipped.
func NextOrderID(ordenes []domain.ServiceOrder) string {
	max := 0
	for _, o := range ordenes {
		rest, ok := strings.CutPrefix(strings.ToUpper(o.ID), "OS-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("OS-%03d", max+1)
}
