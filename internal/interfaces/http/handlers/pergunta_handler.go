package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lgmendes/terapia-api/internal/application/usecases"
)

type PerguntaHandler struct {
	perguntaUseCase *usecases.PerguntaUseCase
}

func NewPerguntaHandler(perguntaUseCase *usecases.PerguntaUseCase) *PerguntaHandler {
	return &PerguntaHandler{perguntaUseCase}
}

// GetPerguntas lista todas as perguntas
func (h *PerguntaHandler) GetPerguntas(c *fiber.Ctx) error {
	perguntas, err := h.perguntaUseCase.GetPerguntas()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(perguntas)
}

// GetPergunta retorna uma pergunta pelo id
func (h *PerguntaHandler) GetPergunta(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	pergunta, err := h.perguntaUseCase.GetPergunta(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pergunta)
}

// CreatePergunta cria uma pergunta avulsa em um formulário existente
func (h *PerguntaHandler) CreatePergunta(c *fiber.Ctx) error {
	var input usecases.CriarPerguntaInput
	if err := c.BodyParser(&input); err != nil {
		return respondInvalidBody(c)
	}
	pergunta, err := h.perguntaUseCase.CriarPergunta(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(pergunta)
}

// UpdatePergunta aplica alterações parciais em uma pergunta
func (h *PerguntaHandler) UpdatePergunta(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var input usecases.AtualizarPerguntaInput
	if err := c.BodyParser(&input); err != nil {
		return respondInvalidBody(c)
	}
	pergunta, err := h.perguntaUseCase.AtualizarPergunta(id, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pergunta)
}

// DeletePergunta remove uma pergunta
func (h *PerguntaHandler) DeletePergunta(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.perguntaUseCase.DeletarPergunta(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"mensagem": "Pergunta removida com sucesso",
	})
}
