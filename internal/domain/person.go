package domain

// Person mirrors one row of the "Personas" sheet (columns A:H).
// Valor llega como texto libre desde la hoja, no se valida como número.
type Person struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre" validate:"required"`
	Apellido string `json:"apellido" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Activo   bool   `json:"activo"`
	Rol      string `json:"rol"`
	Celular  string `json:"nro_celular,omitempty"`
	Valor    string `json:"valor,omitempty"`

	// RowIndex is the 1-based sheet row this person was read from.
	// Updates and deletes target the backing store through it.
	RowIndex int64 `json:"rowIndex,omitempty"`
}

func (p Person) NombreCompleto() string {
	if p.Nombre == "" && p.Apellido == "" {
		return ""
	}
	if p.Apellido == "" {
		return p.Nombre
	}
	return p.Nombre + " " + p.Apellido
}
