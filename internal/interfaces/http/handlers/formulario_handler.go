package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lgmendes/terapia-api/internal/application/usecases"
)

type FormularioHandler struct {
	formularioUseCase *usecases.FormularioUseCase
}

func NewFormularioHandler(formularioUseCase *usecases.FormularioUseCase) *FormularioHandler {
	return &FormularioHandler{formularioUseCase}
}

// GetFormularios lista todos os formulários com suas perguntas ordenadas
func (h *FormularioHandler) GetFormularios(c *fiber.Ctx) error {
	formularios, err := h.formularioUseCase.GetFormularios()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(formularios)
}

// GetFormulario retorna um formulário pelo id
func (h *FormularioHandler) GetFormulario(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	formulario, err := h.formularioUseCase.GetFormulario(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(formulario)
}

// CreateFormulario cria um formulário com suas perguntas
func (h *FormularioHandler) CreateFormulario(c *fiber.Ctx) error {
	var input usecases.CriarFormularioInput
	if err := c.BodyParser(&input); err != nil {
		return respondInvalidBody(c)
	}
	formulario, err := h.formularioUseCase.CriarFormulario(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(formulario)
}

// UpdateFormulario atualiza o formulário; perguntas com id são sobrescritas,
// sem id são acrescentadas, ausentes são preservadas
func (h *FormularioHandler) UpdateFormulario(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var input usecases.AtualizarFormularioInput
	if err := c.BodyParser(&input); err != nil {
		return respondInvalidBody(c)
	}
	formulario, err := h.formularioUseCase.AtualizarFormulario(id, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(formulario)
}

// DeleteFormulario remove o formulário e suas perguntas
func (h *FormularioHandler) DeleteFormulario(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.formularioUseCase.DeletarFormulario(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"mensagem": "Formulário removido com sucesso",
	})
}
