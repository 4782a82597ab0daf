package person

import "errors"

var ErrPersonaNoEncontrada = errors.New("persona no encontrada")
