package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lgmendes/terapia-api/internal/domain/repositories"
)

// CadastroHandler expõe as listagens de pacientes, profissionais e planos.
// São leituras diretas, sem regra de negócio, então falam com o repositório
type CadastroHandler struct {
	cadastroRepo *repositories.CadastroRepository
}

func NewCadastroHandler(cadastroRepo *repositories.CadastroRepository) *CadastroHandler {
	return &CadastroHandler{cadastroRepo}
}

// GetPacientes lista todos os pacientes
func (h *CadastroHandler) GetPacientes(c *fiber.Ctx) error {
	pacientes, err := h.cadastroRepo.FindPacientes()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pacientes)
}

// GetProfissionais lista todos os profissionais
func (h *CadastroHandler) GetProfissionais(c *fiber.Ctx) error {
	profissionais, err := h.cadastroRepo.FindProfissionais()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profissionais)
}

// GetPlanos lista todos os planos terapêuticos
func (h *CadastroHandler) GetPlanos(c *fiber.Ctx) error {
	planos, err := h.cadastroRepo.FindPlanos()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(planos)
}

// GetPlano retorna um plano pelo id
func (h *CadastroHandler) GetPlano(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	plano, err := h.cadastroRepo.FindPlanoByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(plano)
}
