package repositories

import (
	"testing"

	"github.com/lgmendes/terapia-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosCarga(t *testing.T) {
	pergunta := func(id, formularioID, ordem int, tipo entities.TipoPergunta) *entities.Pergunta {
		return &entities.Pergunta{ID: id, FormularioID: formularioID, Ordem: ordem, Tipo: tipo}
	}

	t.Run("ordena as respostas pela ordem das perguntas donas", func(t *testing.T) {
		checklist := entities.ChecklistDiario{
			Respostas: []entities.ChecklistResposta{
				{PerguntaID: 3, Pergunta: pergunta(3, 1, 3, entities.TipoNumero)},
				{PerguntaID: 1, Pergunta: pergunta(1, 1, 1, entities.TipoTexto)},
				{PerguntaID: 2, Pergunta: pergunta(2, 1, 2, entities.TipoBooleano)},
			},
		}
		posCarga(&checklist)

		ids := make([]int, 0, len(checklist.Respostas))
		for _, r := range checklist.Respostas {
			ids = append(ids, r.PerguntaID)
		}
		assert.Equal(t, []int{1, 2, 3}, ids)
	})

	t.Run("formulário dono vem antes da ordem da pergunta", func(t *testing.T) {
		checklist := entities.ChecklistDiario{
			Respostas: []entities.ChecklistResposta{
				{PerguntaID: 9, Pergunta: pergunta(9, 2, 1, entities.TipoTexto)},
				{PerguntaID: 4, Pergunta: pergunta(4, 1, 2, entities.TipoTexto)},
				{PerguntaID: 3, Pergunta: pergunta(3, 1, 1, entities.TipoTexto)},
			},
		}
		posCarga(&checklist)

		ids := make([]int, 0, len(checklist.Respostas))
		for _, r := range checklist.Respostas {
			ids = append(ids, r.PerguntaID)
		}
		assert.Equal(t, []int{3, 4, 9}, ids)
	})

	t.Run("pergunta não carregada cai na ordenação por id", func(t *testing.T) {
		checklist := entities.ChecklistDiario{
			Respostas: []entities.ChecklistResposta{
				{PerguntaID: 7},
				{PerguntaID: 2},
				{PerguntaID: 5, Pergunta: pergunta(5, 1, 1, entities.TipoTexto)},
			},
		}
		posCarga(&checklist)

		ids := make([]int, 0, len(checklist.Respostas))
		for _, r := range checklist.Respostas {
			ids = append(ids, r.PerguntaID)
		}
		assert.Equal(t, []int{2, 5, 7}, ids)
	})

	t.Run("preenche eh_formula e a descrição da meta", func(t *testing.T) {
		checklist := entities.ChecklistDiario{
			Meta: &entities.MetaTerapeutica{Descricao: "Ampliar comunicação"},
			Respostas: []entities.ChecklistResposta{
				{PerguntaID: 1, Pergunta: pergunta(1, 1, 1, entities.TipoTexto)},
				{PerguntaID: 2, Pergunta: pergunta(2, 1, 2, entities.TipoFormula)},
			},
		}
		posCarga(&checklist)

		require.Len(t, checklist.Respostas, 2)
		assert.Equal(t, "Ampliar comunicação", checklist.MetaDescricao)
		assert.False(t, checklist.Respostas[0].EhFormula)
		assert.True(t, checklist.Respostas[1].EhFormula)
	})
}
