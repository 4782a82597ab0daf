package order

import "errors"

var (
	ErrOrdenNoEncontrada = errors.New("orden de servicio no encontrada")
	ErrPersonaInvalida   = errors.New("la persona indicada no existe")
	ErrProyectoInvalido  = errors.New("el proyecto indicado no existe")
	ErrTipoInvalido      = errors.New("tipo de contrato invalido")
	ErrModoInvalido      = errors.New("modo de entregables invalido")
)
