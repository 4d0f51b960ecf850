package usecases

import (
	"strings"

	"github.com/lgmendes/terapia-api/internal/apperrors"
	"github.com/lgmendes/terapia-api/internal/domain/entities"
	"github.com/lgmendes/terapia-api/internal/domain/repositories"
)

// CriarPerguntaInput é o DTO de criação de pergunta avulsa
type CriarPerguntaInput struct {
	Texto        string `json:"texto"`
	Tipo         string `json:"tipo"`
	Obrigatoria  bool   `json:"obrigatoria"`
	Formula      string `json:"formula"`
	FormularioID int    `json:"formulario_id"`
}

// AtualizarPerguntaInput é o DTO de atualização de pergunta
type AtualizarPerguntaInput struct {
	Texto       *string `json:"texto"`
	Tipo        *string `json:"tipo"`
	Obrigatoria *bool   `json:"obrigatoria"`
	Formula     *string `json:"formula"`
}

// PerguntaUseCase implementa os casos de uso de perguntas avulsas
type PerguntaUseCase struct {
	perguntaRepo   *repositories.PerguntaRepository
	formularioRepo *repositories.FormularioRepository
}

// NewPerguntaUseCase cria uma nova instância de PerguntaUseCase
func NewPerguntaUseCase(perguntaRepo *repositories.PerguntaRepository, formularioRepo *repositories.FormularioRepository) *PerguntaUseCase {
	return &PerguntaUseCase{perguntaRepo: perguntaRepo, formularioRepo: formularioRepo}
}

// GetPerguntas retorna todas as perguntas
func (u *PerguntaUseCase) GetPerguntas() ([]entities.Pergunta, error) {
	return u.perguntaRepo.FindAll()
}

// GetPergunta retorna uma pergunta pelo id
func (u *PerguntaUseCase) GetPergunta(id int) (*entities.Pergunta, error) {
	return u.perguntaRepo.FindByID(id)
}

// CriarPergunta cria uma pergunta no próximo slot de ordem do formulário dono
func (u *PerguntaUseCase) CriarPergunta(input CriarPerguntaInput) (*entities.Pergunta, error) {
	if strings.TrimSpace(input.Texto) == "" || strings.TrimSpace(input.Tipo) == "" {
		return nil, apperrors.NewValidation("Texto e tipo são obrigatórios")
	}
	tipo, err := converterTipo(input.Tipo)
	if err != nil {
		return nil, err
	}
	if _, err := u.formularioRepo.FindByID(input.FormularioID); err != nil {
		return nil, err
	}
	ordem, err := u.formularioRepo.ProximaOrdem(input.FormularioID)
	if err != nil {
		return nil, err
	}

	pergunta := entities.Pergunta{
		Texto:        input.Texto,
		Tipo:         tipo,
		Obrigatoria:  input.Obrigatoria,
		Ordem:        ordem,
		Formula:      input.Formula,
		FormularioID: input.FormularioID,
	}
	if err := u.perguntaRepo.Create(&pergunta); err != nil {
		return nil, err
	}
	return &pergunta, nil
}

// AtualizarPergunta aplica alterações parciais em uma pergunta
func (u *PerguntaUseCase) AtualizarPergunta(id int, input AtualizarPerguntaInput) (*entities.Pergunta, error) {
	pergunta, err := u.perguntaRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.Texto != nil {
		pergunta.Texto = *input.Texto
	}
	if input.Tipo != nil {
		tipo, err := converterTipo(*input.Tipo)
		if err != nil {
			return nil, err
		}
		pergunta.Tipo = tipo
	}
	if input.Obrigatoria != nil {
		pergunta.Obrigatoria = *input.Obrigatoria
	}
	if input.Formula != nil {
		pergunta.Formula = *input.Formula
	}

	if err := u.perguntaRepo.Update(pergunta); err != nil {
		return nil, err
	}
	return pergunta, nil
}

// DeletarPergunta remove uma pergunta
func (u *PerguntaUseCase) DeletarPergunta(id int) error {
	return u.perguntaRepo.Delete(id)
}
