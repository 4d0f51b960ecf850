package usecases

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lgmendes/terapia-api/internal/apperrors"
	"github.com/lgmendes/terapia-api/internal/domain/entities"
	"github.com/lgmendes/terapia-api/internal/domain/repositories"
	"github.com/lgmendes/terapia-api/internal/formula"
	"github.com/lgmendes/terapia-api/internal/utils"
)

// CriarChecklistInput é o DTO de criação de checklist diário.
// Respostas mapeia id da pergunta (string no JSON) para o texto bruto.
type CriarChecklistInput struct {
	MetaID     int               `json:"meta_id"`
	Data       string            `json:"data"`
	Nota       *int              `json:"nota"`
	Observacao *string           `json:"observacao"`
	Respostas  map[string]string `json:"respostas"`
}

// AtualizarChecklistInput é o DTO de atualização parcial de checklist.
// Respostas nulo deixa as respostas intactas; presente, só as chaves
// enviadas são sobrescritas.
type AtualizarChecklistInput struct {
	MetaID     *int              `json:"meta_id"`
	Data       *string           `json:"data"`
	Nota       *int              `json:"nota"`
	Observacao *string           `json:"observacao"`
	Respostas  map[string]string `json:"respostas"`
}

// ChecklistUseCase implementa a criação, validação e atualização dos
// checklists diários e de suas respostas
type ChecklistUseCase struct {
	checklistRepo *repositories.ChecklistRepository
	metaRepo      *repositories.MetaRepository
}

// NewChecklistUseCase cria uma nova instância de ChecklistUseCase
func NewChecklistUseCase(checklistRepo *repositories.ChecklistRepository, metaRepo *repositories.MetaRepository) *ChecklistUseCase {
	return &ChecklistUseCase{checklistRepo: checklistRepo, metaRepo: metaRepo}
}

// GetChecklists retorna todos os checklists
func (u *ChecklistUseCase) GetChecklists() ([]entities.ChecklistDiario, error) {
	return u.checklistRepo.FindAll()
}

// GetChecklist retorna um checklist pelo id
func (u *ChecklistUseCase) GetChecklist(id int) (*entities.ChecklistDiario, error) {
	return u.checklistRepo.FindByID(id)
}

// GetChecklistsPorMeta retorna os checklists de uma meta, mais recentes primeiro
func (u *ChecklistUseCase) GetChecklistsPorMeta(metaID int) ([]entities.ChecklistDiario, error) {
	if _, err := u.metaRepo.FindByID(metaID); err != nil {
		return nil, err
	}
	return u.checklistRepo.FindByMeta(metaID)
}

// GetChecklistPorMetaEData retorna o checklist de uma meta em uma data
func (u *ChecklistUseCase) GetChecklistPorMetaEData(metaID int, data string) (*entities.ChecklistDiario, error) {
	dataConvertida, err := entities.ParseData(data)
	if err != nil {
		return nil, apperrors.NewValidation(err.Error())
	}
	return u.checklistRepo.FindByMetaEData(metaID, dataConvertida)
}

// GetChecklistsDeHoje retorna os checklists de hoje
func (u *ChecklistUseCase) GetChecklistsDeHoje() ([]entities.ChecklistDiario, error) {
	return u.checklistRepo.FindByData(entities.Hoje(utils.GetBrasilLocation()))
}

// converterRespostas valida as chaves do mapa de respostas (ids inteiros)
// e as converte para o mapa interno pergunta id -> texto bruto
func converterRespostas(respostas map[string]string) (map[int]string, error) {
	convertidas := make(map[int]string, len(respostas))
	for chave, valor := range respostas {
		id, err := strconv.Atoi(chave)
		if err != nil || id <= 0 {
			return nil, apperrors.NewValidation(fmt.Sprintf("Chave de resposta inválida: %q", chave))
		}
		convertidas[id] = valor
	}
	return convertidas, nil
}

// validarRespostas aplica as duas validações da submissão:
// toda chave enviada precisa pertencer a uma pergunta vinculada à meta, e
// toda pergunta obrigatória não-fórmula precisa de resposta não vazia
func validarRespostas(perguntas []entities.Pergunta, respostas map[int]string) error {
	conhecidas := make(map[int]bool, len(perguntas))
	for _, p := range perguntas {
		conhecidas[p.ID] = true
	}

	var desconhecidas []string
	for id := range respostas {
		if !conhecidas[id] {
			desconhecidas = append(desconhecidas, strconv.Itoa(id))
		}
	}
	if len(desconhecidas) > 0 {
		sort.Strings(desconhecidas)
		return apperrors.NewValidation("Respostas para perguntas não vinculadas à meta: " + strings.Join(desconhecidas, ", "))
	}

	var faltando []string
	for _, p := range perguntas {
		if !p.Obrigatoria || p.EhFormula() {
			continue
		}
		if strings.TrimSpace(respostas[p.ID]) == "" {
			faltando = append(faltando, p.Texto)
		}
	}
	if len(faltando) > 0 {
		return apperrors.NewValidation("Respostas obrigatórias ausentes: " + strings.Join(faltando, ", "))
	}
	return nil
}

// montarRespostas materializa uma linha de resposta para cada pergunta
// vinculada (vazia quando não enviada) e calcula as perguntas FORMULA.
// Falha de cálculo não aborta a submissão: a resposta calculada fica nula.
func montarRespostas(perguntas []entities.Pergunta, respostas map[int]string) []entities.ChecklistResposta {
	completas := make(map[int]string, len(perguntas))
	for _, p := range perguntas {
		completas[p.ID] = respostas[p.ID]
	}

	linhas := make([]entities.ChecklistResposta, 0, len(perguntas))
	for _, p := range perguntas {
		linha := entities.ChecklistResposta{
			PerguntaID: p.ID,
			Resposta:   completas[p.ID],
		}
		if p.EhFormula() {
			if calculada, err := formula.Avaliar(p.Formula, completas); err == nil {
				linha.RespostaCalculada = &calculada
			}
		}
		linhas = append(linhas, linha)
	}
	return linhas
}

// CriarChecklist valida e grava a submissão diária de uma meta como uma
// unidade atômica: o checklist e uma resposta por pergunta vinculada
func (u *ChecklistUseCase) CriarChecklist(input CriarChecklistInput) (*entities.ChecklistDiario, error) {
	if input.MetaID == 0 {
		return nil, apperrors.NewValidation("ID da meta é obrigatório")
	}
	if input.Nota != nil && !entities.ValidarNota(*input.Nota) {
		return nil, apperrors.NewValidation("Nota deve ser um número inteiro entre 1 e 5")
	}

	if _, err := u.metaRepo.FindByID(input.MetaID); err != nil {
		return nil, err
	}

	data := entities.Hoje(utils.GetBrasilLocation())
	if input.Data != "" {
		convertida, err := entities.ParseData(input.Data)
		if err != nil {
			return nil, apperrors.NewValidation(err.Error())
		}
		data = convertida
	}

	// Pré-checagem amigável; o índice único decide sob concorrência
	existe, err := u.checklistRepo.ExisteParaMetaEData(input.MetaID, data)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, apperrors.NewConflict("Já existe um checklist para esta meta nesta data")
	}

	respostas, err := converterRespostas(input.Respostas)
	if err != nil {
		return nil, err
	}

	perguntas, err := u.metaRepo.PerguntasDaMeta(input.MetaID)
	if err != nil {
		return nil, err
	}
	if err := validarRespostas(perguntas, respostas); err != nil {
		return nil, err
	}

	checklist := entities.ChecklistDiario{
		MetaID:     input.MetaID,
		Data:       data,
		Nota:       input.Nota,
		Observacao: input.Observacao,
		Respostas:  montarRespostas(perguntas, respostas),
	}
	if err := u.checklistRepo.Create(&checklist); err != nil {
		return nil, err
	}
	return u.checklistRepo.FindByID(checklist.ID)
}

// mesclarRespostas monta o estado final previsto do mapa de respostas:
// linhas existentes cujas perguntas pertencem à meta atual do checklist,
// sobrescritas pelas chaves enviadas. Linhas de perguntas de outra meta
// (sobras de uma reatribuição) ficam de fora e serão descartadas na gravação
func mesclarRespostas(perguntas []entities.Pergunta, existentes []entities.ChecklistResposta, enviadas map[int]string) map[int]string {
	vinculadas := make(map[int]bool, len(perguntas))
	for _, p := range perguntas {
		vinculadas[p.ID] = true
	}

	mescladas := make(map[int]string, len(existentes)+len(enviadas))
	for _, r := range existentes {
		if vinculadas[r.PerguntaID] {
			mescladas[r.PerguntaID] = r.Resposta
		}
	}
	for id, valor := range enviadas {
		mescladas[id] = valor
	}
	return mescladas
}

// AtualizarChecklist aplica a atualização parcial: campos presentes são
// sobrescritos, respostas presentes revalidam as obrigatórias da meta
// (possivelmente alterada) e recalculam as fórmulas. A troca de meta
// re-materializa o conjunto de respostas para as perguntas da nova meta
func (u *ChecklistUseCase) AtualizarChecklist(id int, input AtualizarChecklistInput) (*entities.ChecklistDiario, error) {
	checklist, err := u.checklistRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	metaAlterada := false
	if input.MetaID != nil && *input.MetaID != checklist.MetaID {
		if _, err := u.metaRepo.FindByID(*input.MetaID); err != nil {
			return nil, err
		}
		existe, err := u.checklistRepo.ExisteParaMetaEData(*input.MetaID, checklist.Data)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, apperrors.NewConflict("Já existe um checklist para esta meta nesta data")
		}
		checklist.MetaID = *input.MetaID
		metaAlterada = true
	}

	if input.Data != nil {
		novaData, err := entities.ParseData(*input.Data)
		if err != nil {
			return nil, apperrors.NewValidation(err.Error())
		}
		if !novaData.Equal(checklist.Data.Time) {
			existe, err := u.checklistRepo.ExisteParaMetaEData(checklist.MetaID, novaData)
			if err != nil {
				return nil, err
			}
			if existe {
				return nil, apperrors.NewConflict("Já existe um checklist para esta meta nesta data")
			}
			checklist.Data = novaData
		}
	}

	if input.Nota != nil {
		if !entities.ValidarNota(*input.Nota) {
			return nil, apperrors.NewValidation("Nota deve ser um número inteiro entre 1 e 5")
		}
		checklist.Nota = input.Nota
	}
	if input.Observacao != nil {
		checklist.Observacao = input.Observacao
	}

	var linhas []entities.ChecklistResposta
	if input.Respostas != nil || metaAlterada {
		var enviadas map[int]string
		if input.Respostas != nil {
			enviadas, err = converterRespostas(input.Respostas)
			if err != nil {
				return nil, err
			}
		}

		perguntas, err := u.metaRepo.PerguntasDaMeta(checklist.MetaID)
		if err != nil {
			return nil, err
		}

		mescladas := mesclarRespostas(perguntas, checklist.Respostas, enviadas)

		// Na troca de meta sem respostas no payload não há submissão a
		// validar; obrigatórias só são exigidas quando respostas chegam
		if input.Respostas != nil {
			if err := validarRespostas(perguntas, mescladas); err != nil {
				return nil, err
			}
		}

		if metaAlterada {
			// Re-materializa o conjunto completo para as perguntas da nova
			// meta; as linhas da meta antiga são descartadas na gravação
			linhas = montarRespostas(perguntas, mescladas)
		} else {
			// Sobrescreve as chaves enviadas e recalcula toda fórmula da meta,
			// já que o valor derivado pode depender de qualquer resposta alterada
			for _, p := range perguntas {
				if _, enviada := enviadas[p.ID]; !enviada && !p.EhFormula() {
					continue
				}
				linha := entities.ChecklistResposta{
					PerguntaID: p.ID,
					Resposta:   mescladas[p.ID],
				}
				if p.EhFormula() {
					if calculada, err := formula.Avaliar(p.Formula, mescladas); err == nil {
						linha.RespostaCalculada = &calculada
					}
				}
				linhas = append(linhas, linha)
			}
		}
	}

	if err := u.checklistRepo.Update(checklist, linhas, metaAlterada); err != nil {
		return nil, err
	}
	return u.checklistRepo.FindByID(id)
}

// DeletarChecklist remove o checklist e, em cascata, suas respostas
func (u *ChecklistUseCase) DeletarChecklist(id int) error {
	return u.checklistRepo.Delete(id)
}

// FormulasDoChecklist retorna as respostas calculadas das perguntas
// FORMULA de um checklist
func (u *ChecklistUseCase) FormulasDoChecklist(id int) (*entities.ChecklistDiario, []entities.ChecklistResposta, error) {
	checklist, err := u.checklistRepo.FindByID(id)
	if err != nil {
		return nil, nil, err
	}
	var formulas []entities.ChecklistResposta
	for _, r := range checklist.Respostas {
		if r.EhFormula {
			formulas = append(formulas, r)
		}
	}
	return checklist, formulas, nil
}

// FormulasDaMeta retorna as respostas de fórmula de todos os checklists da meta
func (u *ChecklistUseCase) FormulasDaMeta(metaID int) ([]repositories.RespostaFormulaDia, error) {
	if _, err := u.metaRepo.FindByID(metaID); err != nil {
		return nil, err
	}
	return u.checklistRepo.RespostasFormulaDaMeta(metaID)
}

// EstatisticasDaMeta resume as notas dos checklists de uma meta
func (u *ChecklistUseCase) EstatisticasDaMeta(metaID int) (map[string]interface{}, error) {
	if _, err := u.metaRepo.FindByID(metaID); err != nil {
		return nil, err
	}
	checklists, err := u.checklistRepo.FindByMeta(metaID)
	if err != nil {
		return nil, err
	}

	notas := notasPresentes(checklists)
	estatisticas := map[string]interface{}{
		"total_registros": len(checklists),
		"nota_media":      0.0,
		"nota_maxima":     0.0,
		"nota_minima":     0.0,
	}
	if len(notas) > 0 {
		resumo := CalcularEstatisticas(notas)
		estatisticas["nota_media"] = resumo.Media
		estatisticas["nota_maxima"] = resumo.Maxima
		estatisticas["nota_minima"] = resumo.Minima
	}
	if len(checklists) > 0 {
		// FindByMeta retorna mais recentes primeiro
		estatisticas["ultimo_registro"] = checklists[0].Data.String()
	}
	return estatisticas, nil
}

// notasPresentes extrai em ordem as notas não nulas dos checklists
func notasPresentes(checklists []entities.ChecklistDiario) []float64 {
	var notas []float64
	for _, c := range checklists {
		if c.Nota != nil {
			notas = append(notas, float64(*c.Nota))
		}
	}
	return notas
}
