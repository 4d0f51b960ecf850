package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvaliar(t *testing.T) {
	t.Run("precedência de operadores", func(t *testing.T) {
		resultado, err := Avaliar("{1}+{2}*2", map[int]string{1: "3", 2: "4"})
		require.NoError(t, err)
		assert.Equal(t, "11", resultado)
	})

	t.Run("resposta ausente vale zero", func(t *testing.T) {
		resultado, err := Avaliar("{1}+{2}", map[int]string{1: "5"})
		require.NoError(t, err)
		assert.Equal(t, "5", resultado)
	})

	t.Run("resposta não numérica vale zero", func(t *testing.T) {
		resultado, err := Avaliar("{1}+{2}", map[int]string{1: "Sim", 2: "3"})
		require.NoError(t, err)
		assert.Equal(t, "3", resultado)
	})

	t.Run("parênteses", func(t *testing.T) {
		resultado, err := Avaliar("({1}+{2})*2", map[int]string{1: "3", 2: "4"})
		require.NoError(t, err)
		assert.Equal(t, "14", resultado)
	})

	t.Run("divisão", func(t *testing.T) {
		resultado, err := Avaliar("{1}/{2}", map[int]string{1: "7", 2: "2"})
		require.NoError(t, err)
		assert.Equal(t, "3.5", resultado)
	})

	t.Run("valores decimais", func(t *testing.T) {
		resultado, err := Avaliar("{1}+{2}", map[int]string{1: "1.5", 2: "2.25"})
		require.NoError(t, err)
		assert.Equal(t, "3.75", resultado)
	})

	t.Run("resposta negativa", func(t *testing.T) {
		resultado, err := Avaliar("{1}*2", map[int]string{1: "-3"})
		require.NoError(t, err)
		assert.Equal(t, "-6", resultado)
	})

	t.Run("espaços no template", func(t *testing.T) {
		resultado, err := Avaliar("{1} + {2} * 2", map[int]string{1: "1", 2: "2"})
		require.NoError(t, err)
		assert.Equal(t, "5", resultado)
	})
}

func TestAvaliarErros(t *testing.T) {
	casos := []struct {
		nome     string
		template string
	}{
		{"divisão por zero", "{1}/{2}"},
		{"letras na expressão", "{1}+abc"},
		{"placeholder malformado", "{1}+{x}"},
		{"parêntese não fechado", "({1}+{2}"},
		{"operador solto", "{1}+"},
		{"template vazio", ""},
		{"símbolo fora da gramática", "{1}^2"},
	}

	respostas := map[int]string{1: "4", 2: "0"}
	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			_, err := Avaliar(caso.template, respostas)
			require.Error(t, err)
			var compErr *ComputationError
			assert.ErrorAs(t, err, &compErr)
		})
	}
}

func TestAvaliarNaoExecutaRespostaComoCodigo(t *testing.T) {
	// A resposta bruta nunca vira sintaxe: valor não numérico colapsa
	// para 0 antes da substituição, inclusive tentativas de injeção
	resultado, err := Avaliar("{1}+1", map[int]string{1: "2)*(3"})
	require.NoError(t, err)
	assert.Equal(t, "1", resultado)
}
