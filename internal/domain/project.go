package domain

// Project mirrors one row of the "Proyectos" sheet (columns A:F).
// Inicio/Fin stay as the raw sheet strings; the schedule package owns parsing.
type Project struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre" validate:"required"`
	Activo      bool   `json:"activo"`
	Inicio      string `json:"inicio,omitempty"`
	Fin         string `json:"fin,omitempty"`
	Descripcion string `json:"descripcion,omitempty"`

	RowIndex int64 `json:"rowIndex,omitempty"`
}

// Role is a bare name from the "Roles" sheet. The row index is the only
// handle for updates and deletes, there is no id column.
type Role struct {
	Nombre   string `json:"nombre" validate:"required"`
	RowIndex int64  `json:"rowIndex"`
}
