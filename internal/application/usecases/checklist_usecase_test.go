package usecases

import (
	"testing"

	"github.com/lgmendes/terapia-api/internal/apperrors"
	"github.com/lgmendes/terapia-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perguntasDeExemplo() []entities.Pergunta {
	return []entities.Pergunta{
		{ID: 1, Texto: "Como foi o dia?", Tipo: entities.TipoTexto, Obrigatoria: true, Ordem: 1},
		{ID: 2, Texto: "Quantas tentativas?", Tipo: entities.TipoNumero, Obrigatoria: true, Ordem: 2},
		{ID: 3, Texto: "Quantas com apoio?", Tipo: entities.TipoNumero, Obrigatoria: false, Ordem: 3},
		{ID: 4, Texto: "Total", Tipo: entities.TipoFormula, Obrigatoria: true, Ordem: 4, Formula: "{2} + {3}"},
	}
}

func TestConverterRespostas(t *testing.T) {
	t.Run("converte chaves numéricas", func(t *testing.T) {
		convertidas, err := converterRespostas(map[string]string{"1": "bom", "2": "5"})
		require.NoError(t, err)
		assert.Equal(t, map[int]string{1: "bom", 2: "5"}, convertidas)
	})

	t.Run("rejeita chave não numérica", func(t *testing.T) {
		_, err := converterRespostas(map[string]string{"abc": "x"})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("rejeita chave não positiva", func(t *testing.T) {
		_, err := converterRespostas(map[string]string{"0": "x"})
		assert.True(t, apperrors.IsValidation(err))
		_, err = converterRespostas(map[string]string{"-3": "x"})
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestValidarRespostas(t *testing.T) {
	perguntas := perguntasDeExemplo()

	t.Run("aceita submissão completa", func(t *testing.T) {
		err := validarRespostas(perguntas, map[int]string{1: "bom", 2: "5"})
		assert.NoError(t, err)
	})

	t.Run("rejeita chave de pergunta não vinculada", func(t *testing.T) {
		err := validarRespostas(perguntas, map[int]string{1: "bom", 2: "5", 99: "x"})
		require.True(t, apperrors.IsValidation(err))
		assert.Contains(t, err.Error(), "não vinculadas")
		assert.Contains(t, err.Error(), "99")
	})

	t.Run("rejeita obrigatória ausente nomeando a pergunta", func(t *testing.T) {
		err := validarRespostas(perguntas, map[int]string{1: "bom"})
		require.True(t, apperrors.IsValidation(err))
		assert.Contains(t, err.Error(), "obrigatórias ausentes")
		assert.Contains(t, err.Error(), "Quantas tentativas?")
	})

	t.Run("resposta só de espaços conta como ausente", func(t *testing.T) {
		err := validarRespostas(perguntas, map[int]string{1: "bom", 2: "   "})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("fórmula obrigatória não exige resposta enviada", func(t *testing.T) {
		// pergunta 4 é FORMULA e obrigatória; o valor dela é derivado
		err := validarRespostas(perguntas, map[int]string{1: "bom", 2: "5"})
		assert.NoError(t, err)
	})
}

func TestMontarRespostas(t *testing.T) {
	perguntas := perguntasDeExemplo()

	t.Run("materializa uma linha por pergunta vinculada", func(t *testing.T) {
		linhas := montarRespostas(perguntas, map[int]string{1: "bom", 2: "5", 3: "2"})
		require.Len(t, linhas, 4)
		assert.Equal(t, 1, linhas[0].PerguntaID)
		assert.Equal(t, "bom", linhas[0].Resposta)
	})

	t.Run("pergunta sem resposta entra vazia", func(t *testing.T) {
		linhas := montarRespostas(perguntas, map[int]string{1: "bom", 2: "5"})
		assert.Equal(t, "", linhas[2].Resposta)
	})

	t.Run("calcula a fórmula sobre as respostas do dia", func(t *testing.T) {
		linhas := montarRespostas(perguntas, map[int]string{1: "bom", 2: "5", 3: "2"})
		require.NotNil(t, linhas[3].RespostaCalculada)
		assert.Equal(t, "7", *linhas[3].RespostaCalculada)
	})

	t.Run("resposta ausente vale zero no cálculo", func(t *testing.T) {
		linhas := montarRespostas(perguntas, map[int]string{1: "bom", 2: "5"})
		require.NotNil(t, linhas[3].RespostaCalculada)
		assert.Equal(t, "5", *linhas[3].RespostaCalculada)
	})

	t.Run("falha de cálculo deixa o valor nulo sem abortar", func(t *testing.T) {
		quebradas := perguntasDeExemplo()
		quebradas[3].Formula = "{2} / {3}"
		linhas := montarRespostas(quebradas, map[int]string{1: "bom", 2: "5", 3: "0"})
		require.Len(t, linhas, 4)
		assert.Nil(t, linhas[3].RespostaCalculada)
		assert.Equal(t, "5", linhas[1].Resposta)
	})
}

func TestMesclarRespostas(t *testing.T) {
	// Perguntas da meta de destino de uma reatribuição
	perguntasNova := []entities.Pergunta{
		{ID: 5, Texto: "Humor geral", Tipo: entities.TipoTexto, Obrigatoria: true, Ordem: 1},
		{ID: 6, Texto: "Crises no dia", Tipo: entities.TipoNumero, Obrigatoria: true, Ordem: 2},
	}
	// Linhas existentes do checklist: perguntas 1 e 2 são da meta antiga,
	// a 5 é compartilhada entre as duas metas
	existentes := []entities.ChecklistResposta{
		{PerguntaID: 1, Resposta: "bom"},
		{PerguntaID: 2, Resposta: "5"},
		{PerguntaID: 5, Resposta: "calmo"},
	}

	t.Run("descarta linhas de perguntas de outra meta", func(t *testing.T) {
		mescladas := mesclarRespostas(perguntasNova, existentes, map[int]string{6: "0"})
		assert.Equal(t, map[int]string{5: "calmo", 6: "0"}, mescladas)
	})

	t.Run("reatribuição com respostas válidas passa na validação", func(t *testing.T) {
		mescladas := mesclarRespostas(perguntasNova, existentes, map[int]string{6: "0"})
		assert.NoError(t, validarRespostas(perguntasNova, mescladas))
	})

	t.Run("chave enviada fora da nova meta segue rejeitada", func(t *testing.T) {
		mescladas := mesclarRespostas(perguntasNova, existentes, map[int]string{6: "0", 2: "5"})
		err := validarRespostas(perguntasNova, mescladas)
		require.True(t, apperrors.IsValidation(err))
		assert.Contains(t, err.Error(), "2")
	})

	t.Run("sem respostas enviadas só sobrevivem as vinculadas", func(t *testing.T) {
		mescladas := mesclarRespostas(perguntasNova, existentes, nil)
		assert.Equal(t, map[int]string{5: "calmo"}, mescladas)
	})

	t.Run("re-materialização cobre só as perguntas da nova meta", func(t *testing.T) {
		mescladas := mesclarRespostas(perguntasNova, existentes, nil)
		linhas := montarRespostas(perguntasNova, mescladas)
		require.Len(t, linhas, 2)
		assert.Equal(t, 5, linhas[0].PerguntaID)
		assert.Equal(t, "calmo", linhas[0].Resposta)
		assert.Equal(t, 6, linhas[1].PerguntaID)
		assert.Equal(t, "", linhas[1].Resposta)
	})

	t.Run("sobrescritas as chaves enviadas, preservadas as demais", func(t *testing.T) {
		perguntas := perguntasDeExemplo()
		linhasAtuais := []entities.ChecklistResposta{
			{PerguntaID: 1, Resposta: "bom"},
			{PerguntaID: 2, Resposta: "5"},
		}
		mescladas := mesclarRespostas(perguntas, linhasAtuais, map[int]string{2: "8"})
		assert.Equal(t, "bom", mescladas[1])
		assert.Equal(t, "8", mescladas[2])
	})
}

func TestNotasPresentes(t *testing.T) {
	nota := func(v int) *int { return &v }
	checklists := []entities.ChecklistDiario{
		{Nota: nota(4)},
		{Nota: nil},
		{Nota: nota(2)},
	}
	assert.Equal(t, []float64{4, 2}, notasPresentes(checklists))
}
