package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lgmendes/terapia-api/internal/application/usecases"
)

type RelatorioHandler struct {
	relatorioUseCase *usecases.RelatorioUseCase
}

func NewRelatorioHandler(relatorioUseCase *usecases.RelatorioUseCase) *RelatorioHandler {
	return &RelatorioHandler{relatorioUseCase}
}

// GetEvolucaoMeta retorna a série de notas de uma meta com estatísticas e
// tendência; ?data_inicio= e ?data_fim= recortam o intervalo
func (h *RelatorioHandler) GetEvolucaoMeta(c *fiber.Ctx) error {
	metaID, err := parseID(c, "meta_id")
	if err != nil {
		return respondError(c, err)
	}
	relatorio, err := h.relatorioUseCase.GetEvolucaoMeta(metaID, c.Query("data_inicio"), c.Query("data_fim"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(relatorio)
}

// GetFormulasDaMeta retorna uma série temporal por pergunta FORMULA da meta
func (h *RelatorioHandler) GetFormulasDaMeta(c *fiber.Ctx) error {
	metaID, err := parseID(c, "meta_id")
	if err != nil {
		return respondError(c, err)
	}
	series, err := h.relatorioUseCase.GetFormulasDaMeta(metaID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"meta_id":  metaID,
		"formulas": series,
	})
}

// GetEvolucaoFormula retorna a série temporal de uma pergunta FORMULA
func (h *RelatorioHandler) GetEvolucaoFormula(c *fiber.Ctx) error {
	perguntaID, err := parseID(c, "pergunta_id")
	if err != nil {
		return respondError(c, err)
	}
	serie, err := h.relatorioUseCase.GetEvolucaoFormula(perguntaID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(serie)
}

// GetRelatorioPeriodo agrega os checklists do intervalo em buckets diários
func (h *RelatorioHandler) GetRelatorioPeriodo(c *fiber.Ctx) error {
	relatorio, err := h.relatorioUseCase.GetRelatorioPeriodo(c.Query("data_inicio"), c.Query("data_fim"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(relatorio)
}

// GetRelatorioPaciente resume planos, metas e registros recentes de um paciente
func (h *RelatorioHandler) GetRelatorioPaciente(c *fiber.Ctx) error {
	pacienteID, err := parseID(c, "paciente_id")
	if err != nil {
		return respondError(c, err)
	}
	relatorio, err := h.relatorioUseCase.GetRelatorioPaciente(pacienteID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(relatorio)
}

// GetRelatorioProfissional resume a atividade de um profissional
func (h *RelatorioHandler) GetRelatorioProfissional(c *fiber.Ctx) error {
	profissionalID, err := parseID(c, "profissional_id")
	if err != nil {
		return respondError(c, err)
	}
	relatorio, err := h.relatorioUseCase.GetRelatorioProfissional(profissionalID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(relatorio)
}

// GetDashboard retorna o resumo geral e as distribuições do painel
func (h *RelatorioHandler) GetDashboard(c *fiber.Ctx) error {
	relatorio, err := h.relatorioUseCase.GetDashboard()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(relatorio)
}
