package usecases

import (
	"testing"

	"github.com/lgmendes/terapia-api/internal/apperrors"
	"github.com/lgmendes/terapia-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverterTipo(t *testing.T) {
	t.Run("vazio usa TEXTO", func(t *testing.T) {
		tipo, err := converterTipo("")
		require.NoError(t, err)
		assert.Equal(t, entities.TipoTexto, tipo)
	})

	t.Run("normaliza para maiúsculas", func(t *testing.T) {
		tipo, err := converterTipo("formula")
		require.NoError(t, err)
		assert.Equal(t, entities.TipoFormula, tipo)
	})

	t.Run("rejeita tipo fora do conjunto", func(t *testing.T) {
		_, err := converterTipo("DATA")
		require.True(t, apperrors.IsValidation(err))
		assert.Contains(t, err.Error(), "DATA")
	})
}

func TestConverterStatus(t *testing.T) {
	t.Run("vazio usa EmAndamento", func(t *testing.T) {
		status, err := converterStatus("")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusEmAndamento, status)
	})

	t.Run("aceita Concluida", func(t *testing.T) {
		status, err := converterStatus("Concluida")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusConcluida, status)
	})

	t.Run("rejeita status fora do conjunto", func(t *testing.T) {
		_, err := converterStatus("Pausada")
		assert.True(t, apperrors.IsValidation(err))
	})
}
