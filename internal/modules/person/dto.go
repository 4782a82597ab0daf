package person

import "gestiondeo/internal/domain"

type SaveRequest struct {
	Nombre   string `json:"nombre" binding:"required"`
	Apellido string `json:"apellido" binding:"required"`
	Email    string `json:"email"`
	Activo   bool   `json:"activo"`
	Rol      string `json:"rol"`
	Celular  string `json:"nro_celular"`
	Valor    string `json:"valor"`
}

type Response struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Activo   bool   `json:"activo"`
	Rol      string `json:"rol"`
	Celular  string `json:"nro_celular"`
	Valor    string `json:"valor"`
	RowIndex int64  `json:"rowIndex"`
}

func toResponse(p domain.Person) Response {
	return Response{
		ID:       p.ID,
		Nombre:   p.Nombre,
		Apellido: p.Apellido,
		Email:    p.Email,
		Activo:   p.Activo,
		Rol:      p.Rol,
		Celular:  p.Celular,
		Valor:    p.Valor,
		RowIndex: p.RowIndex,
	}
}
