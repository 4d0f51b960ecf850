package handlers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lgmendes/terapia-api/internal/apperrors"
)

// parseID lê um parâmetro de rota como inteiro positivo
func parseID(c *fiber.Ctx, nome string) (int, error) {
	id, err := strconv.Atoi(c.Params(nome))
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidation("ID inválido")
	}
	return id, nil
}

// respondError converte os erros de aplicação no status HTTP adequado.
// Erros desconhecidos viram 500 com mensagem genérica para não vazar detalhes
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case apperrors.IsValidation(err), apperrors.IsConflict(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"erro": err.Error(),
		})
	case apperrors.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"erro": err.Error(),
		})
	default:
		log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"erro": "Erro interno do servidor",
		})
	}
}

// respondInvalidBody é a resposta padrão para JSON malformado
func respondInvalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"erro": "Corpo da requisição inválido",
	})
}
