package project

import "errors"

var ErrProyectoNoEncontrado = errors.New("proyecto no encontrado")
