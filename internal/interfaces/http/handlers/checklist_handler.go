package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lgmendes/terapia-api/internal/application/usecases"
)

type ChecklistHandler struct {
	checklistUseCase *usecases.ChecklistUseCase
}

func NewChecklistHandler(checklistUseCase *usecases.ChecklistUseCase) *ChecklistHandler {
	return &ChecklistHandler{checklistUseCase}
}

// GetChecklists lista todos os checklists diários
func (h *ChecklistHandler) GetChecklists(c *fiber.Ctx) error {
	checklists, err := h.checklistUseCase.GetChecklists()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(checklists)
}

// GetChecklistsDeHoje lista os checklists registrados na data de hoje
func (h *ChecklistHandler) GetChecklistsDeHoje(c *fiber.Ctx) error {
	checklists, err := h.checklistUseCase.GetChecklistsDeHoje()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(checklists)
}

// GetChecklist retorna um checklist pelo id
func (h *ChecklistHandler) GetChecklist(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	checklist, err := h.checklistUseCase.GetChecklist(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(checklist)
}

// GetChecklistsPorMeta lista os checklists de uma meta, mais recentes primeiro
func (h *ChecklistHandler) GetChecklistsPorMeta(c *fiber.Ctx) error {
	metaID, err := parseID(c, "meta_id")
	if err != nil {
		return respondError(c, err)
	}
	checklists, err := h.checklistUseCase.GetChecklistsPorMeta(metaID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(checklists)
}

// GetChecklistPorMetaEData retorna o checklist de uma meta em uma data específica
func (h *ChecklistHandler) GetChecklistPorMetaEData(c *fiber.Ctx) error {
	metaID, err := parseID(c, "meta_id")
	if err != nil {
		return respondError(c, err)
	}
	checklist, err := h.checklistUseCase.GetChecklistPorMetaEData(metaID, c.Params("data"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(checklist)
}

// CreateChecklist registra a submissão diária de uma meta
func (h *ChecklistHandler) CreateChecklist(c *fiber.Ctx) error {
	var input usecases.CriarChecklistInput
	if err := c.BodyParser(&input); err != nil {
		return respondInvalidBody(c)
	}
	checklist, err := h.checklistUseCase.CriarChecklist(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(checklist)
}

// UpdateChecklist aplica alterações parciais e recalcula as fórmulas
func (h *ChecklistHandler) UpdateChecklist(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var input usecases.AtualizarChecklistInput
	if err := c.BodyParser(&input); err != nil {
		return respondInvalidBody(c)
	}
	checklist, err := h.checklistUseCase.AtualizarChecklist(id, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(checklist)
}

// DeleteChecklist remove o checklist e suas respostas
func (h *ChecklistHandler) DeleteChecklist(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.checklistUseCase.DeletarChecklist(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"mensagem": "Checklist removido com sucesso",
	})
}

// GetFormulasDoChecklist retorna as respostas calculadas de um checklist
func (h *ChecklistHandler) GetFormulasDoChecklist(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	checklist, formulas, err := h.checklistUseCase.FormulasDoChecklist(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"checklist_id":   checklist.ID,
		"meta_id":        checklist.MetaID,
		"data":           checklist.Data,
		"formulas":       formulas,
		"total_formulas": len(formulas),
	})
}

// GetEstatisticasDaMeta resume as notas dos checklists de uma meta
func (h *ChecklistHandler) GetEstatisticasDaMeta(c *fiber.Ctx) error {
	metaID, err := parseID(c, "meta_id")
	if err != nil {
		return respondError(c, err)
	}
	estatisticas, err := h.checklistUseCase.EstatisticasDaMeta(metaID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(estatisticas)
}
