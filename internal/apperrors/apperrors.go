// Package apperrors define a taxonomia de erros da API.
// O tipo do erro decide o status HTTP na borda; a lógica de negócio
// só conhece os tipos, nunca códigos de status.
package apperrors

import "errors"

// ValidationError indica campo ausente/malformado ou resposta obrigatória faltando
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation cria um ValidationError com a mensagem dada
func NewValidation(message string) error {
	return &ValidationError{Message: message}
}

// NotFoundError indica id de recurso não resolvido
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFound cria um NotFoundError com a mensagem dada
func NewNotFound(message string) error {
	return &NotFoundError{Message: message}
}

// ConflictError indica violação de unicidade, como duplicidade de (meta, data)
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflict cria um ConflictError com a mensagem dada
func NewConflict(message string) error {
	return &ConflictError{Message: message}
}

// IsValidation reporta se err é um ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound reporta se err é um NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsConflict reporta se err é um ConflictError
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}
