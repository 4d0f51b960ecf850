package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidarNota(t *testing.T) {
	for _, nota := range []int{1, 2, 3, 4, 5} {
		assert.True(t, ValidarNota(nota))
	}
	for _, nota := range []int{0, -1, 6, 100} {
		assert.False(t, ValidarNota(nota))
	}
}

func TestTipoPerguntaValido(t *testing.T) {
	for _, tipo := range []TipoPergunta{TipoTexto, TipoNumero, TipoBooleano, TipoMultipla, TipoFormula} {
		assert.True(t, tipo.Valido())
	}
	assert.False(t, TipoPergunta("texto").Valido())
	assert.False(t, TipoPergunta("DATA").Valido())
}

func TestStatusMetaValido(t *testing.T) {
	assert.True(t, StatusEmAndamento.Valido())
	assert.True(t, StatusConcluida.Valido())
	assert.False(t, StatusMeta("Cancelada").Valido())
}

func TestCalcularProgresso(t *testing.T) {
	novaMeta := func(inicio, termino string) MetaTerapeutica {
		dataInicio, err := ParseData(inicio)
		require.NoError(t, err)
		dataTermino, err := ParseData(termino)
		require.NoError(t, err)
		return MetaTerapeutica{DataInicio: dataInicio, DataPrevisaoTermino: dataTermino}
	}
	dia := func(s string) time.Time {
		data, err := ParseData(s)
		require.NoError(t, err)
		return data.Time
	}

	t.Run("meio do caminho", func(t *testing.T) {
		meta := novaMeta("2025-01-01", "2025-01-11")
		assert.Equal(t, 50.0, meta.CalcularProgresso(dia("2025-01-06")))
	})

	t.Run("antes do início trava em zero", func(t *testing.T) {
		meta := novaMeta("2025-01-10", "2025-01-20")
		assert.Equal(t, 0.0, meta.CalcularProgresso(dia("2025-01-01")))
	})

	t.Run("depois do término trava em cem", func(t *testing.T) {
		meta := novaMeta("2025-01-01", "2025-01-11")
		assert.Equal(t, 100.0, meta.CalcularProgresso(dia("2025-06-01")))
	})

	t.Run("arredonda para duas casas", func(t *testing.T) {
		meta := novaMeta("2025-01-01", "2025-01-04")
		assert.Equal(t, 33.33, meta.CalcularProgresso(dia("2025-01-02")))
	})

	t.Run("sem datas retorna zero", func(t *testing.T) {
		meta := MetaTerapeutica{}
		assert.Equal(t, 0.0, meta.CalcularProgresso(dia("2025-01-01")))
	})
}

func TestEhFormula(t *testing.T) {
	assert.True(t, Pergunta{Tipo: TipoFormula}.EhFormula())
	assert.False(t, Pergunta{Tipo: TipoNumero}.EhFormula())
}
