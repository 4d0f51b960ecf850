package usecases

import (
	"testing"

	"github.com/lgmendes/terapia-api/internal/domain/entities"
	"github.com/lgmendes/terapia-api/internal/domain/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcularEstatisticas(t *testing.T) {
	t.Run("série vazia zera tudo", func(t *testing.T) {
		resumo := CalcularEstatisticas(nil)
		assert.Equal(t, 0, resumo.Total)
		assert.Equal(t, 0.0, resumo.Media)
		assert.Equal(t, 0.0, resumo.Maxima)
		assert.Equal(t, 0.0, resumo.Minima)
	})

	t.Run("média com duas casas", func(t *testing.T) {
		resumo := CalcularEstatisticas([]float64{1, 2, 2})
		assert.Equal(t, 3, resumo.Total)
		assert.Equal(t, 1.67, resumo.Media)
		assert.Equal(t, 2.0, resumo.Maxima)
		assert.Equal(t, 1.0, resumo.Minima)
	})

	t.Run("elemento único", func(t *testing.T) {
		resumo := CalcularEstatisticas([]float64{4})
		assert.Equal(t, 4.0, resumo.Media)
		assert.Equal(t, 4.0, resumo.Maxima)
		assert.Equal(t, 4.0, resumo.Minima)
	})
}

func TestCalcularTendencia(t *testing.T) {
	casos := []struct {
		nome    string
		valores []float64
		quer    string
	}{
		{"vazia", nil, TendenciaSemDados},
		{"um elemento é estável", []float64{3}, TendenciaEstavel},
		{"último maior que o primeiro", []float64{2, 1, 5}, TendenciaCrescente},
		{"último menor que o primeiro", []float64{5, 9, 2}, TendenciaDecrescente},
		{"último igual ao primeiro", []float64{3, 1, 3}, TendenciaEstavel},
	}
	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			assert.Equal(t, caso.quer, CalcularTendencia(caso.valores))
		})
	}
}

func TestTaxaConclusao(t *testing.T) {
	assert.Equal(t, 0.0, TaxaConclusao(0, 0))
	assert.Equal(t, 50.0, TaxaConclusao(1, 2))
	assert.Equal(t, 66.67, TaxaConclusao(2, 3))
	assert.Equal(t, 100.0, TaxaConclusao(3, 3))
}

func TestAgruparPorDia(t *testing.T) {
	nota := func(v int) *int { return &v }
	dia := func(s string) entities.Data {
		data, err := entities.ParseData(s)
		require.NoError(t, err)
		return data
	}

	checklists := []entities.ChecklistDiario{
		{Data: dia("2025-01-01"), Nota: nota(4)},
		{Data: dia("2025-01-01"), Nota: nota(2)},
		{Data: dia("2025-01-02"), Nota: nil},
		{Data: dia("2025-01-03"), Nota: nota(5)},
	}

	buckets := AgruparPorDia(checklists)
	require.Len(t, buckets, 3)

	assert.Equal(t, "2025-01-01", buckets[0].Data)
	assert.Equal(t, 3.0, buckets[0].MediaNotas)
	assert.Equal(t, 2, buckets[0].TotalRegistros)

	// Dia só com nota ausente conta o registro, média zero
	assert.Equal(t, "2025-01-02", buckets[1].Data)
	assert.Equal(t, 0.0, buckets[1].MediaNotas)
	assert.Equal(t, 1, buckets[1].TotalRegistros)

	assert.Equal(t, "2025-01-03", buckets[2].Data)
	assert.Equal(t, 5.0, buckets[2].MediaNotas)
}

func TestValoresNumericos(t *testing.T) {
	calculada := func(s string) *string { return &s }
	itens := []repositories.RespostaFormulaDia{
		{RespostaCalculada: calculada("3.5")},
		{RespostaCalculada: nil},
		{RespostaCalculada: calculada("abc")},
		{RespostaCalculada: calculada("-2")},
	}
	assert.Equal(t, []float64{3.5, -2}, valoresNumericos(itens))
}

func TestAgruparSeriesFormula(t *testing.T) {
	calculada := func(s string) *string { return &s }
	itens := []repositories.RespostaFormulaDia{
		{PerguntaID: 7, Texto: "Total", Formula: "{1} + {2}", RespostaCalculada: calculada("3")},
		{PerguntaID: 7, Texto: "Total", Formula: "{1} + {2}", RespostaCalculada: calculada("5")},
		{PerguntaID: 9, Texto: "Razão", Formula: "{1} / {2}", RespostaCalculada: calculada("0.5")},
	}

	series := agruparSeriesFormula(itens)
	require.Len(t, series, 2)

	assert.Equal(t, 7, series[0].PerguntaID)
	assert.Len(t, series[0].Serie, 2)
	assert.Equal(t, TendenciaCrescente, series[0].Estatisticas["tendencia"])
	assert.Equal(t, 4.0, series[0].Estatisticas["nota_media"])

	assert.Equal(t, 9, series[1].PerguntaID)
	assert.Equal(t, TendenciaEstavel, series[1].Estatisticas["tendencia"])
}

func TestEstatisticasComTendencia(t *testing.T) {
	t.Run("série vazia", func(t *testing.T) {
		bloco := estatisticasComTendencia(nil)
		assert.Equal(t, 0, bloco["total_registros"])
		assert.Equal(t, TendenciaSemDados, bloco["tendencia"])
	})

	t.Run("série preenchida", func(t *testing.T) {
		bloco := estatisticasComTendencia([]float64{2, 4})
		assert.Equal(t, 2, bloco["total_registros"])
		assert.Equal(t, 3.0, bloco["nota_media"])
		assert.Equal(t, 4.0, bloco["nota_maxima"])
		assert.Equal(t, 2.0, bloco["nota_minima"])
		assert.Equal(t, TendenciaCrescente, bloco["tendencia"])
	})
}
