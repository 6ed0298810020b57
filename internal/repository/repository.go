package repository

import "errors"

// ErrNotFound se devuelve cuando el registro pedido no existe, sin importar
// el backend (Postgres o memoria).
var ErrNotFound = errors.New("record not found")
