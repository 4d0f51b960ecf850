package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lgmendes/terapia-api/internal/application/usecases"
)

type MetaHandler struct {
	metaUseCase *usecases.MetaUseCase
}

func NewMetaHandler(metaUseCase *usecases.MetaUseCase) *MetaHandler {
	return &MetaHandler{metaUseCase}
}

// GetMetas lista todas as metas com seus formulários vinculados
func (h *MetaHandler) GetMetas(c *fiber.Ctx) error {
	metas, err := h.metaUseCase.GetMetas()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(metas)
}

// GetMetasAtivas lista as metas em andamento; ?paciente_id= filtra por paciente
func (h *MetaHandler) GetMetasAtivas(c *fiber.Ctx) error {
	pacienteID, _ := strconv.Atoi(c.Query("paciente_id", "0"))
	metas, err := h.metaUseCase.GetMetasAtivas(pacienteID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(metas)
}

// GetMeta retorna uma meta pelo id
func (h *MetaHandler) GetMeta(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	meta, err := h.metaUseCase.GetMeta(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(meta)
}

// GetMetasPorPlano lista as metas de um plano terapêutico
func (h *MetaHandler) GetMetasPorPlano(c *fiber.Ctx) error {
	planoID, err := parseID(c, "plano_id")
	if err != nil {
		return respondError(c, err)
	}
	metas, err := h.metaUseCase.GetMetasPorPlano(planoID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(metas)
}

// CreateMeta cria uma meta e vincula os formulários informados
func (h *MetaHandler) CreateMeta(c *fiber.Ctx) error {
	var input usecases.CriarMetaInput
	if err := c.BodyParser(&input); err != nil {
		return respondInvalidBody(c)
	}
	meta, err := h.metaUseCase.CriarMeta(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(meta)
}

// UpdateMeta aplica alterações parciais; formularios substitui o conjunto de vínculos
func (h *MetaHandler) UpdateMeta(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var input usecases.AtualizarMetaInput
	if err := c.BodyParser(&input); err != nil {
		return respondInvalidBody(c)
	}
	meta, err := h.metaUseCase.AtualizarMeta(id, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(meta)
}

// ConcluirMeta marca a meta como concluída
func (h *MetaHandler) ConcluirMeta(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	meta, err := h.metaUseCase.ConcluirMeta(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(meta)
}

// DeleteMeta remove a meta, seus checklists e os vínculos com formulários
func (h *MetaHandler) DeleteMeta(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.metaUseCase.DeletarMeta(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"mensagem": "Meta removida com sucesso",
	})
}
