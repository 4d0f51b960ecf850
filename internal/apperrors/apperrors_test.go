package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassificacao(t *testing.T) {
	validacao := NewValidation("campo obrigatório")
	naoEncontrado := NewNotFound("meta não encontrada")
	conflito := NewConflict("registro duplicado")

	assert.True(t, IsValidation(validacao))
	assert.False(t, IsValidation(naoEncontrado))

	assert.True(t, IsNotFound(naoEncontrado))
	assert.False(t, IsNotFound(conflito))

	assert.True(t, IsConflict(conflito))
	assert.False(t, IsConflict(validacao))

	assert.False(t, IsValidation(errors.New("qualquer outro")))
}

func TestClassificacaoAtravessaWrap(t *testing.T) {
	err := fmt.Errorf("criando checklist: %w", NewConflict("registro duplicado"))
	assert.True(t, IsConflict(err))
	assert.False(t, IsValidation(err))
}

func TestMensagem(t *testing.T) {
	assert.Equal(t, "campo obrigatório", NewValidation("campo obrigatório").Error())
	assert.Equal(t, "meta não encontrada", NewNotFound("meta não encontrada").Error())
}
