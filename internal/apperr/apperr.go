// Package apperr define os tipos de erro de dominio devolvidos pelos services.
// Os handlers traduzem cada tipo para o status HTTP correspondente.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound indica que o id referenciado nao existe.
var ErrNotFound = errors.New("registro não encontrado")

// ConflictError carrega o relatorio de colisao de dados unicos
// (ex.: "Dados já cadastrados: E-mail | Telefone").
type ConflictError struct {
	Report string
}

func (e *ConflictError) Error() string {
	return e.Report
}

// StorageError indica falha fatal de persistencia ou do object store
// (tentativas esgotadas ou erro nao transitorio).
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
