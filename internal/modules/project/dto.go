package project

import "gestiondeo/internal/domain"

type SaveRequest struct {
	Nombre      string `json:"nombre" binding:"required"`
	Activo      bool   `json:"activo"`
	Inicio      string `json:"inicio"`
	Fin         string `json:"fin"`
	Descripcion string `json:"descripcion"`
}

type Response struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Activo      bool   `json:"activo"`
	Inicio      string `json:"inicio"`
	Fin         string `json:"fin"`
	Descripcion string `json:"descripcion"`
	RowIndex    int64  `json:"rowIndex"`
}

func toResponse(p domain.Project) Response {
	return Response{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Activo:      p.Activo,
		Inicio:      p.Inicio,
		Fin:         p.Fin,
		Descripcion: p.Descripcion,
		RowIndex:    p.RowIndex,
	}
}
