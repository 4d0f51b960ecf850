package usecases

import (
	"math"
	"strconv"
	"time"

	"github.com/lgmendes/terapia-api/internal/apperrors"
	"github.com/lgmendes/terapia-api/internal/domain/entities"
	"github.com/lgmendes/terapia-api/internal/domain/repositories"
	"github.com/lgmendes/terapia-api/internal/utils"
)

// Classificação de tendência de uma série numérica
const (
	TendenciaCrescente   = "increasing"
	TendenciaDecrescente = "decreasing"
	TendenciaEstavel     = "stable"
	TendenciaSemDados    = "no_data"
)

// Estatisticas resume uma série numérica
type Estatisticas struct {
	Total  int     `json:"total_registros"`
	Media  float64 `json:"nota_media"`
	Maxima float64 `json:"nota_maxima"`
	Minima float64 `json:"nota_minima"`
}

// Arredondar2 arredonda para duas casas decimais
func Arredondar2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalcularEstatisticas computa contagem, média (2 casas), máxima e mínima
func CalcularEstatisticas(valores []float64) Estatisticas {
	if len(valores) == 0 {
		return Estatisticas{}
	}
	soma := 0.0
	maxima := valores[0]
	minima := valores[0]
	for _, v := range valores {
		soma += v
		maxima = math.Max(maxima, v)
		minima = math.Min(minima, v)
	}
	return Estatisticas{
		Total:  len(valores),
		Media:  Arredondar2(soma / float64(len(valores))),
		Maxima: maxima,
		Minima: minima,
	}
}

// CalcularTendencia compara o último valor com o primeiro da série em
// ordem cronológica. Série de um elemento é estável; vazia, sem dados.
func CalcularTendencia(valores []float64) string {
	if len(valores) == 0 {
		return TendenciaSemDados
	}
	primeiro := valores[0]
	ultimo := valores[len(valores)-1]
	switch {
	case ultimo > primeiro:
		return TendenciaCrescente
	case ultimo < primeiro:
		return TendenciaDecrescente
	default:
		return TendenciaEstavel
	}
}

// PontoEvolucao é um registro da série de evolução de uma meta
type PontoEvolucao struct {
	Data       entities.Data `json:"data"`
	Nota       *int          `json:"nota"`
	Observacao *string       `json:"observacao"`
}

// EvolucaoMeta é a série de notas de uma meta com estatísticas e tendência
type EvolucaoMeta struct {
	Evolucao     []PontoEvolucao        `json:"evolucao"`
	Estatisticas map[string]interface{} `json:"estatisticas"`
}

// SerieFormula agrupa a série temporal de uma pergunta FORMULA
type SerieFormula struct {
	PerguntaID   int                               `json:"pergunta_id"`
	Texto        string                            `json:"texto"`
	Formula      string                            `json:"formula"`
	Serie        []repositories.RespostaFormulaDia `json:"serie"`
	Estatisticas map[string]interface{}            `json:"estatisticas"`
}

// BucketDiario agrega os checklists de um dia do relatório por período
type BucketDiario struct {
	Data           string  `json:"data"`
	MediaNotas     float64 `json:"media_notas"`
	TotalRegistros int     `json:"total_registros"`
}

// RelatorioUseCase implementa as consultas somente-leitura de relatórios
// e agregações sobre o histórico de checklists
type RelatorioUseCase struct {
	relatorioRepo *repositories.RelatorioRepository
	checklistRepo *repositories.ChecklistRepository
	metaRepo      *repositories.MetaRepository
	perguntaRepo  *repositories.PerguntaRepository
}

// NewRelatorioUseCase cria uma nova instância de RelatorioUseCase
func NewRelatorioUseCase(
	relatorioRepo *repositories.RelatorioRepository,
	checklistRepo *repositories.ChecklistRepository,
	metaRepo *repositories.MetaRepository,
	perguntaRepo *repositories.PerguntaRepository,
) *RelatorioUseCase {
	return &RelatorioUseCase{
		relatorioRepo: relatorioRepo,
		checklistRepo: checklistRepo,
		metaRepo:      metaRepo,
		perguntaRepo:  perguntaRepo,
	}
}

// estatisticasComTendencia monta o bloco de estatísticas dos relatórios de
// evolução, com zeros e "no_data" quando a série filtrada é vazia
func estatisticasComTendencia(valores []float64) map[string]interface{} {
	resumo := CalcularEstatisticas(valores)
	return map[string]interface{}{
		"total_registros": resumo.Total,
		"nota_media":      resumo.Media,
		"nota_maxima":     resumo.Maxima,
		"nota_minima":     resumo.Minima,
		"tendencia":       CalcularTendencia(valores),
	}
}

// GetEvolucaoMeta retorna a série de notas de uma meta no intervalo
// opcional [inicio, fim], em ordem cronológica
func (u *RelatorioUseCase) GetEvolucaoMeta(metaID int, inicio, fim string) (*EvolucaoMeta, error) {
	if _, err := u.metaRepo.FindByID(metaID); err != nil {
		return nil, err
	}

	var dataInicio, dataFim *entities.Data
	if inicio != "" {
		convertida, err := entities.ParseData(inicio)
		if err != nil {
			return nil, apperrors.NewValidation(err.Error())
		}
		dataInicio = &convertida
	}
	if fim != "" {
		convertida, err := entities.ParseData(fim)
		if err != nil {
			return nil, apperrors.NewValidation(err.Error())
		}
		dataFim = &convertida
	}

	checklists, err := u.checklistRepo.FindByMetaAsc(metaID, dataInicio, dataFim)
	if err != nil {
		return nil, err
	}

	evolucao := make([]PontoEvolucao, 0, len(checklists))
	for _, c := range checklists {
		evolucao = append(evolucao, PontoEvolucao{Data: c.Data, Nota: c.Nota, Observacao: c.Observacao})
	}

	return &EvolucaoMeta{
		Evolucao:     evolucao,
		Estatisticas: estatisticasComTendencia(notasPresentes(checklists)),
	}, nil
}

// valoresNumericos extrai os valores calculados que parseiam como número;
// registros não numéricos permanecem na série, mas fora dos agregados
func valoresNumericos(itens []repositories.RespostaFormulaDia) []float64 {
	var valores []float64
	for _, item := range itens {
		if item.RespostaCalculada == nil {
			continue
		}
		if v, err := strconv.ParseFloat(*item.RespostaCalculada, 64); err == nil {
			valores = append(valores, v)
		}
	}
	return valores
}

// agruparSeriesFormula quebra os itens (ordenados por pergunta e data)
// em uma série por pergunta, cada uma com suas estatísticas
func agruparSeriesFormula(itens []repositories.RespostaFormulaDia) []SerieFormula {
	series := make([]SerieFormula, 0)
	indice := make(map[int]int)
	for _, item := range itens {
		pos, ok := indice[item.PerguntaID]
		if !ok {
			pos = len(series)
			indice[item.PerguntaID] = pos
			series = append(series, SerieFormula{
				PerguntaID: item.PerguntaID,
				Texto:      item.Texto,
				Formula:    item.Formula,
			})
		}
		series[pos].Serie = append(series[pos].Serie, item)
	}
	for i := range series {
		series[i].Estatisticas = estatisticasComTendencia(valoresNumericos(series[i].Serie))
	}
	return series
}

// GetFormulasDaMeta retorna uma série por pergunta FORMULA da meta
func (u *RelatorioUseCase) GetFormulasDaMeta(metaID int) ([]SerieFormula, error) {
	if _, err := u.metaRepo.FindByID(metaID); err != nil {
		return nil, err
	}
	itens, err := u.checklistRepo.RespostasFormulaDaMeta(metaID)
	if err != nil {
		return nil, err
	}
	return agruparSeriesFormula(itens), nil
}

// GetEvolucaoFormula retorna a série temporal de uma única pergunta FORMULA
func (u *RelatorioUseCase) GetEvolucaoFormula(perguntaID int) (*SerieFormula, error) {
	pergunta, err := u.perguntaRepo.FindByID(perguntaID)
	if err != nil {
		return nil, err
	}
	if !pergunta.EhFormula() {
		return nil, apperrors.NewValidation("Pergunta não é do tipo FORMULA")
	}

	itens, err := u.checklistRepo.RespostasDaPergunta(perguntaID)
	if err != nil {
		return nil, err
	}
	serie := SerieFormula{
		PerguntaID:   pergunta.ID,
		Texto:        pergunta.Texto,
		Formula:      pergunta.Formula,
		Serie:        itens,
		Estatisticas: estatisticasComTendencia(valoresNumericos(itens)),
	}
	return &serie, nil
}

// GetRelatorioPeriodo agrupa os checklists do intervalo em buckets diários
func (u *RelatorioUseCase) GetRelatorioPeriodo(inicio, fim string) (map[string]interface{}, error) {
	if inicio == "" || fim == "" {
		return nil, apperrors.NewValidation("data_inicio e data_fim são obrigatórios")
	}
	dataInicio, err := entities.ParseData(inicio)
	if err != nil {
		return nil, apperrors.NewValidation(err.Error())
	}
	dataFim, err := entities.ParseData(fim)
	if err != nil {
		return nil, apperrors.NewValidation(err.Error())
	}

	checklists, err := u.checklistRepo.FindByPeriodo(dataInicio, dataFim)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"periodo": map[string]string{
			"data_inicio": inicio,
			"data_fim":    fim,
		},
		"evolucao_diaria": AgruparPorDia(checklists),
		"estatisticas":    estatisticasSemTendencia(notasPresentes(checklists), len(checklists)),
	}, nil
}

// estatisticasSemTendencia é o bloco de estatísticas do relatório por
// período: total conta todos os registros, agregados só as notas presentes
func estatisticasSemTendencia(notas []float64, total int) map[string]interface{} {
	resumo := CalcularEstatisticas(notas)
	return map[string]interface{}{
		"total_registros": total,
		"media_geral":     resumo.Media,
		"nota_maxima":     resumo.Maxima,
		"nota_minima":     resumo.Minima,
	}
}

// AgruparPorDia agrega os checklists por data de calendário, em ordem
// cronológica, com a média das notas presentes de cada dia
func AgruparPorDia(checklists []entities.ChecklistDiario) []BucketDiario {
	porDia := make(map[string][]float64)
	totais := make(map[string]int)
	var ordem []string
	for _, c := range checklists {
		dia := c.Data.String()
		if _, visto := totais[dia]; !visto {
			ordem = append(ordem, dia)
		}
		totais[dia]++
		if c.Nota != nil {
			porDia[dia] = append(porDia[dia], float64(*c.Nota))
		}
	}

	buckets := make([]BucketDiario, 0, len(ordem))
	for _, dia := range ordem {
		media := 0.0
		if notas := porDia[dia]; len(notas) > 0 {
			media = CalcularEstatisticas(notas).Media
		}
		buckets = append(buckets, BucketDiario{
			Data:           dia,
			MediaNotas:     media,
			TotalRegistros: totais[dia],
		})
	}
	return buckets
}

// TaxaConclusao calcula o percentual de metas concluídas (2 casas), 0 quando não há metas
func TaxaConclusao(concluidas, total int) float64 {
	if total == 0 {
		return 0
	}
	return Arredondar2(float64(concluidas) / float64(total) * 100)
}

// GetRelatorioPaciente monta o resumo de planos, metas e registros
// recentes (30 dias) de um paciente, com a evolução por meta
func (u *RelatorioUseCase) GetRelatorioPaciente(pacienteID int) (map[string]interface{}, error) {
	paciente, err := u.relatorioRepo.FindPaciente(pacienteID)
	if err != nil {
		return nil, err
	}

	planos, err := u.relatorioRepo.PlanosDoPaciente(pacienteID)
	if err != nil {
		return nil, err
	}
	planoIDs := make([]int, 0, len(planos))
	for _, p := range planos {
		planoIDs = append(planoIDs, p.ID)
	}
	metas, err := u.relatorioRepo.MetasDosPlanos(planoIDs)
	if err != nil {
		return nil, err
	}

	limite := entities.NovaData(time.Now().In(utils.GetBrasilLocation()).AddDate(0, 0, -30))
	recentes, err := u.relatorioRepo.ChecklistsRecentesDoPaciente(pacienteID, limite)
	if err != nil {
		return nil, err
	}

	concluidas := 0
	for _, m := range metas {
		if m.Status == entities.StatusConcluida {
			concluidas++
		}
	}

	mediaRecente := 0.0
	if notas := notasPresentes(recentes); len(notas) > 0 {
		mediaRecente = CalcularEstatisticas(notas).Media
	}

	evolucaoPorMeta := make(map[string]interface{})
	for _, meta := range metas {
		var registros []map[string]interface{}
		for i := len(recentes) - 1; i >= 0; i-- {
			// recentes vem em ordem decrescente; invertida, vira cronológica
			if recentes[i].MetaID == meta.ID {
				registros = append(registros, map[string]interface{}{
					"data": recentes[i].Data.String(),
					"nota": recentes[i].Nota,
				})
			}
		}
		if len(registros) > 0 {
			evolucaoPorMeta[strconv.Itoa(meta.ID)] = map[string]interface{}{
				"meta_descricao": meta.Descricao,
				"registros":      registros,
			}
		}
	}

	return map[string]interface{}{
		"paciente": paciente,
		"resumo": map[string]interface{}{
			"total_planos":              len(planos),
			"total_metas":               len(metas),
			"metas_ativas":              len(metas) - concluidas,
			"metas_concluidas":          concluidas,
			"registros_ultimos_30_dias": len(recentes),
			"media_notas_recentes":      mediaRecente,
		},
		"evolucao_por_meta": evolucaoPorMeta,
	}, nil
}

// GetRelatorioProfissional monta o resumo de atividade de um profissional,
// com taxa de conclusão e distribuição de diagnósticos dos pacientes
func (u *RelatorioUseCase) GetRelatorioProfissional(profissionalID int) (map[string]interface{}, error) {
	profissional, err := u.relatorioRepo.FindProfissional(profissionalID)
	if err != nil {
		return nil, err
	}

	planos, err := u.relatorioRepo.PlanosDoProfissional(profissionalID)
	if err != nil {
		return nil, err
	}
	planoIDs := make([]int, 0, len(planos))
	pacienteIDs := make([]int, 0, len(planos))
	vistos := make(map[int]bool)
	for _, p := range planos {
		planoIDs = append(planoIDs, p.ID)
		if !vistos[p.PacienteID] {
			vistos[p.PacienteID] = true
			pacienteIDs = append(pacienteIDs, p.PacienteID)
		}
	}

	metas, err := u.relatorioRepo.MetasDosPlanos(planoIDs)
	if err != nil {
		return nil, err
	}
	pacientes, err := u.relatorioRepo.PacientesPorIDs(pacienteIDs)
	if err != nil {
		return nil, err
	}

	concluidas := 0
	for _, m := range metas {
		if m.Status == entities.StatusConcluida {
			concluidas++
		}
	}

	distribuicao := make(map[entities.Diagnostico]int)
	for _, p := range pacientes {
		distribuicao[p.Diagnostico]++
	}
	itens := make([]map[string]interface{}, 0, len(distribuicao))
	for diagnostico, count := range distribuicao {
		itens = append(itens, map[string]interface{}{
			"diagnostico": diagnostico,
			"count":       count,
		})
	}

	return map[string]interface{}{
		"profissional": profissional,
		"resumo": map[string]interface{}{
			"total_pacientes":  len(pacientes),
			"total_planos":     len(planos),
			"total_metas":      len(metas),
			"metas_concluidas": concluidas,
			"taxa_conclusao":   TaxaConclusao(concluidas, len(metas)),
		},
		"distribuicao_diagnosticos": itens,
	}, nil
}

// GetDashboard monta o resumo geral e as distribuições do painel
func (u *RelatorioUseCase) GetDashboard() (map[string]interface{}, error) {
	totalPacientes, err := u.relatorioRepo.TotalPacientes()
	if err != nil {
		return nil, err
	}
	totalProfissionais, err := u.relatorioRepo.TotalProfissionais()
	if err != nil {
		return nil, err
	}
	totalMetasAtivas, err := u.relatorioRepo.TotalMetasAtivas()
	if err != nil {
		return nil, err
	}
	registrosHoje, err := u.relatorioRepo.RegistrosNaData(entities.Hoje(utils.GetBrasilLocation()))
	if err != nil {
		return nil, err
	}

	diagnosticos, err := u.relatorioRepo.DistribuicaoDiagnosticos()
	if err != nil {
		return nil, err
	}
	statusMetas, err := u.relatorioRepo.DistribuicaoStatusMetas()
	if err != nil {
		return nil, err
	}

	distribuicaoDiagnosticos := make([]map[string]interface{}, 0, len(diagnosticos))
	for _, item := range diagnosticos {
		distribuicaoDiagnosticos = append(distribuicaoDiagnosticos, map[string]interface{}{
			"diagnostico": item.Chave,
			"count":       item.Count,
		})
	}
	distribuicaoMetas := make([]map[string]interface{}, 0, len(statusMetas))
	for _, item := range statusMetas {
		distribuicaoMetas = append(distribuicaoMetas, map[string]interface{}{
			"status": item.Chave,
			"count":  item.Count,
		})
	}

	return map[string]interface{}{
		"resumo": map[string]interface{}{
			"total_pacientes":     totalPacientes,
			"total_profissionais": totalProfissionais,
			"total_metas_ativas":  totalMetasAtivas,
			"registros_hoje":      registrosHoje,
		},
		"distribuicao_diagnosticos": distribuicaoDiagnosticos,
		"distribuicao_metas":        distribuicaoMetas,
	}, nil
}
