package usecases

import (
	"fmt"
	"strings"

	"github.com/lgmendes/terapia-api/internal/apperrors"
	"github.com/lgmendes/terapia-api/internal/domain/entities"
	"github.com/lgmendes/terapia-api/internal/domain/repositories"
)

// PerguntaInput é o DTO de uma pergunta dentro do payload de formulário.
// Id presente significa sobrescrever a pergunta existente; ausente, criar.
type PerguntaInput struct {
	ID          int    `json:"id"`
	Texto       string `json:"texto"`
	Tipo        string `json:"tipo"`
	Obrigatoria bool   `json:"obrigatoria"`
	Formula     string `json:"formula"`
}

// CriarFormularioInput é o DTO de criação de formulário
type CriarFormularioInput struct {
	Nome      string          `json:"nome"`
	Descricao string          `json:"descricao"`
	Categoria string          `json:"categoria"`
	Perguntas []PerguntaInput `json:"perguntas"`
}

// AtualizarFormularioInput é o DTO de atualização de formulário
type AtualizarFormularioInput struct {
	Nome      *string         `json:"nome"`
	Descricao *string         `json:"descricao"`
	Categoria *string         `json:"categoria"`
	Perguntas []PerguntaInput `json:"perguntas"`
}

// FormularioUseCase implementa os casos de uso de formulários de avaliação
type FormularioUseCase struct {
	formularioRepo *repositories.FormularioRepository
}

// NewFormularioUseCase cria uma nova instância de FormularioUseCase
func NewFormularioUseCase(formularioRepo *repositories.FormularioRepository) *FormularioUseCase {
	return &FormularioUseCase{formularioRepo: formularioRepo}
}

// GetFormularios retorna todos os formulários
func (u *FormularioUseCase) GetFormularios() ([]entities.Formulario, error) {
	return u.formularioRepo.FindAll()
}

// GetFormulario retorna um formulário pelo id
func (u *FormularioUseCase) GetFormulario(id int) (*entities.Formulario, error) {
	return u.formularioRepo.FindByID(id)
}

// converterTipo valida o tipo recebido contra o conjunto fechado,
// aplicando TEXTO como padrão quando vazio
func converterTipo(tipo string) (entities.TipoPergunta, error) {
	if tipo == "" {
		return entities.TipoTexto, nil
	}
	convertido := entities.TipoPergunta(strings.ToUpper(tipo))
	if !convertido.Valido() {
		return "", apperrors.NewValidation(fmt.Sprintf("Tipo de pergunta inválido: %s", tipo))
	}
	return convertido, nil
}

// CriarFormulario cria o formulário e suas perguntas com ordem sequencial a partir de 1
func (u *FormularioUseCase) CriarFormulario(input CriarFormularioInput) (*entities.Formulario, error) {
	if strings.TrimSpace(input.Nome) == "" {
		return nil, apperrors.NewValidation("Nome é obrigatório")
	}

	categoria := input.Categoria
	if categoria == "" {
		categoria = entities.CategoriaPadrao
	}

	formulario := entities.Formulario{
		Nome:      input.Nome,
		Descricao: input.Descricao,
		Categoria: categoria,
	}

	for i, p := range input.Perguntas {
		tipo, err := converterTipo(p.Tipo)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(p.Texto) == "" {
			return nil, apperrors.NewValidation(fmt.Sprintf("Texto é obrigatório na pergunta %d", i+1))
		}
		formulario.Perguntas = append(formulario.Perguntas, entities.Pergunta{
			Texto:       p.Texto,
			Tipo:        tipo,
			Obrigatoria: p.Obrigatoria,
			Ordem:       i + 1,
			Formula:     p.Formula,
		})
	}

	if err := u.formularioRepo.Create(&formulario); err != nil {
		return nil, err
	}
	return u.formularioRepo.FindByID(formulario.ID)
}

// AtualizarFormulario aplica o upsert não destrutivo: perguntas com id são
// sobrescritas em posição, sem id entram no próximo slot de ordem livre e
// perguntas ausentes do payload são preservadas
func (u *FormularioUseCase) AtualizarFormulario(id int, input AtualizarFormularioInput) (*entities.Formulario, error) {
	formulario, err := u.formularioRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.Nome != nil {
		formulario.Nome = *input.Nome
	}
	if input.Descricao != nil {
		formulario.Descricao = *input.Descricao
	}
	if input.Categoria != nil {
		formulario.Categoria = *input.Categoria
	}

	proximaOrdem, err := u.formularioRepo.ProximaOrdem(id)
	if err != nil {
		return nil, err
	}

	perguntas := make([]entities.Pergunta, 0, len(input.Perguntas))
	for i, p := range input.Perguntas {
		tipo, err := converterTipo(p.Tipo)
		if err != nil {
			return nil, err
		}
		pergunta := entities.Pergunta{
			ID:          p.ID,
			Texto:       p.Texto,
			Tipo:        tipo,
			Obrigatoria: p.Obrigatoria,
			Formula:     p.Formula,
		}
		if p.ID > 0 {
			pergunta.Ordem = i + 1
		} else {
			if strings.TrimSpace(p.Texto) == "" {
				return nil, apperrors.NewValidation(fmt.Sprintf("Texto é obrigatório na pergunta %d", i+1))
			}
			pergunta.Ordem = proximaOrdem
			proximaOrdem++
		}
		perguntas = append(perguntas, pergunta)
	}

	if err := u.formularioRepo.UpdateComPerguntas(formulario, perguntas); err != nil {
		return nil, err
	}
	return u.formularioRepo.FindByID(id)
}

// DeletarFormulario remove o formulário e, em cascata, suas perguntas
func (u *FormularioUseCase) DeletarFormulario(id int) error {
	return u.formularioRepo.Delete(id)
}
