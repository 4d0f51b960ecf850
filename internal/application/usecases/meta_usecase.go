package usecases

import (
	"github.com/lgmendes/terapia-api/internal/apperrors"
	"github.com/lgmendes/terapia-api/internal/domain/entities"
	"github.com/lgmendes/terapia-api/internal/domain/repositories"
)

// CriarMetaInput é o DTO de criação de meta terapêutica
type CriarMetaInput struct {
	PlanoID             int    `json:"plano_id"`
	Descricao           string `json:"descricao"`
	DataInicio          string `json:"data_inicio"`
	DataPrevisaoTermino string `json:"data_previsao_termino"`
	Status              string `json:"status"`
	Formularios         []int  `json:"formularios"`
}

// AtualizarMetaInput é o DTO de atualização de meta terapêutica
type AtualizarMetaInput struct {
	PlanoID             *int    `json:"plano_id"`
	Descricao           *string `json:"descricao"`
	DataInicio          *string `json:"data_inicio"`
	DataPrevisaoTermino *string `json:"data_previsao_termino"`
	Status              *string `json:"status"`
	Formularios         []int   `json:"formularios"`
}

// MetaUseCase implementa os casos de uso de metas terapêuticas e do
// vínculo meta-formulário
type MetaUseCase struct {
	metaRepo     *repositories.MetaRepository
	cadastroRepo *repositories.CadastroRepository
}

// NewMetaUseCase cria uma nova instância de MetaUseCase
func NewMetaUseCase(metaRepo *repositories.MetaRepository, cadastroRepo *repositories.CadastroRepository) *MetaUseCase {
	return &MetaUseCase{metaRepo: metaRepo, cadastroRepo: cadastroRepo}
}

// GetMetas retorna todas as metas
func (u *MetaUseCase) GetMetas() ([]entities.MetaTerapeutica, error) {
	return u.metaRepo.FindAll()
}

// GetMeta retorna uma meta pelo id
func (u *MetaUseCase) GetMeta(id int) (*entities.MetaTerapeutica, error) {
	return u.metaRepo.FindByID(id)
}

// GetMetasPorPlano retorna as metas de um plano
func (u *MetaUseCase) GetMetasPorPlano(planoID int) ([]entities.MetaTerapeutica, error) {
	return u.metaRepo.FindByPlano(planoID)
}

// GetMetasAtivas retorna as metas em andamento; pacienteID > 0 filtra por paciente
func (u *MetaUseCase) GetMetasAtivas(pacienteID int) ([]entities.MetaTerapeutica, error) {
	return u.metaRepo.FindAtivas(pacienteID)
}

func converterStatus(status string) (entities.StatusMeta, error) {
	if status == "" {
		return entities.StatusEmAndamento, nil
	}
	convertido := entities.StatusMeta(status)
	if !convertido.Valido() {
		return "", apperrors.NewValidation("Status inválido")
	}
	return convertido, nil
}

// CriarMeta cria uma meta e vincula o conjunto inicial de formulários
func (u *MetaUseCase) CriarMeta(input CriarMetaInput) (*entities.MetaTerapeutica, error) {
	if input.PlanoID == 0 {
		return nil, apperrors.NewValidation("ID do plano é obrigatório")
	}
	if input.Descricao == "" {
		return nil, apperrors.NewValidation("Descrição é obrigatória")
	}
	if input.DataInicio == "" {
		return nil, apperrors.NewValidation("Data de início é obrigatória")
	}
	if input.DataPrevisaoTermino == "" {
		return nil, apperrors.NewValidation("Data de previsão de término é obrigatória")
	}

	if _, err := u.cadastroRepo.FindPlanoByID(input.PlanoID); err != nil {
		return nil, err
	}

	dataInicio, err := entities.ParseData(input.DataInicio)
	if err != nil {
		return nil, apperrors.NewValidation(err.Error())
	}
	dataTermino, err := entities.ParseData(input.DataPrevisaoTermino)
	if err != nil {
		return nil, apperrors.NewValidation(err.Error())
	}
	if !dataTermino.After(dataInicio.Time) {
		return nil, apperrors.NewValidation("Data de término deve ser posterior à data de início")
	}

	status, err := converterStatus(input.Status)
	if err != nil {
		return nil, err
	}

	meta := entities.MetaTerapeutica{
		PlanoID:             input.PlanoID,
		Descricao:           input.Descricao,
		DataInicio:          dataInicio,
		DataPrevisaoTermino: dataTermino,
		Status:              status,
	}
	if err := u.metaRepo.Create(&meta); err != nil {
		return nil, err
	}

	if len(input.Formularios) > 0 {
		if err := u.vincularFormularios(&meta, input.Formularios); err != nil {
			return nil, err
		}
	}
	return u.metaRepo.FindByID(meta.ID)
}

// AtualizarMeta aplica alterações parciais; formularios presente substitui
// o conjunto completo de vínculos
func (u *MetaUseCase) AtualizarMeta(id int, input AtualizarMetaInput) (*entities.MetaTerapeutica, error) {
	meta, err := u.metaRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.PlanoID != nil {
		if _, err := u.cadastroRepo.FindPlanoByID(*input.PlanoID); err != nil {
			return nil, err
		}
		meta.PlanoID = *input.PlanoID
	}
	if input.Descricao != nil {
		meta.Descricao = *input.Descricao
	}
	if input.DataInicio != nil {
		dataInicio, err := entities.ParseData(*input.DataInicio)
		if err != nil {
			return nil, apperrors.NewValidation(err.Error())
		}
		meta.DataInicio = dataInicio
	}
	if input.DataPrevisaoTermino != nil {
		dataTermino, err := entities.ParseData(*input.DataPrevisaoTermino)
		if err != nil {
			return nil, apperrors.NewValidation(err.Error())
		}
		meta.DataPrevisaoTermino = dataTermino
	}
	if !meta.DataPrevisaoTermino.After(meta.DataInicio.Time) {
		return nil, apperrors.NewValidation("Data de término deve ser posterior à data de início")
	}
	if input.Status != nil {
		status, err := converterStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		meta.Status = status
	}

	if err := u.metaRepo.Update(meta); err != nil {
		return nil, err
	}

	if input.Formularios != nil {
		if err := u.vincularFormularios(meta, input.Formularios); err != nil {
			return nil, err
		}
	}
	return u.metaRepo.FindByID(id)
}

// ConcluirMeta marca a meta como concluída
func (u *MetaUseCase) ConcluirMeta(id int) (*entities.MetaTerapeutica, error) {
	meta, err := u.metaRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	meta.Status = entities.StatusConcluida
	if err := u.metaRepo.Update(meta); err != nil {
		return nil, err
	}
	return u.metaRepo.FindByID(id)
}

// DeletarMeta remove a meta, os checklists e os vínculos com formulários
func (u *MetaUseCase) DeletarMeta(id int) error {
	return u.metaRepo.Delete(id)
}

// vincularFormularios substitui o conjunto de formulários da meta
// (semântica de conjunto, não de acréscimo)
func (u *MetaUseCase) vincularFormularios(meta *entities.MetaTerapeutica, ids []int) error {
	formularios, err := u.metaRepo.FindFormularios(ids)
	if err != nil {
		return err
	}
	if len(formularios) != len(ids) {
		return apperrors.NewNotFound("Um ou mais formulários não foram encontrados")
	}
	return u.metaRepo.SetFormularios(meta, formularios)
}
