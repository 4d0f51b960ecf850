package repositories

import (
	"errors"
	"time"

	"github.com/lgmendes/terapia-api/internal/apperrors"
	"github.com/lgmendes/terapia-api/internal/domain/entities"
	"github.com/lgmendes/terapia-api/internal/utils"
	"gorm.io/gorm"
)

// MetaRepository implementa o acesso a dados de metas terapêuticas
// e do vínculo meta-formulário
type MetaRepository struct {
	db *gorm.DB
}

// NewMetaRepository cria uma nova instância de MetaRepository
func NewMetaRepository(db *gorm.DB) *MetaRepository {
	return &MetaRepository{db: db}
}

func (r *MetaRepository) preloaded() *gorm.DB {
	return r.db.Preload("Formularios.Perguntas", func(db *gorm.DB) *gorm.DB {
		return db.Order("perguntas.ordem ASC")
	})
}

// preencherProgresso preenche o progresso temporal na leitura
func preencherProgresso(metas []entities.MetaTerapeutica) {
	hoje := time.Now().In(utils.GetBrasilLocation())
	for i := range metas {
		metas[i].Progresso = metas[i].CalcularProgresso(hoje)
	}
}

// FindAll retorna todas as metas com os formulários vinculados
func (r *MetaRepository) FindAll() ([]entities.MetaTerapeutica, error) {
	var metas []entities.MetaTerapeutica
	err := r.preloaded().Order("metas_terapeuticas.id ASC").Find(&metas).Error
	preencherProgresso(metas)
	return metas, err
}

// FindByID retorna uma meta pelo id com os formulários vinculados
func (r *MetaRepository) FindByID(id int) (*entities.MetaTerapeutica, error) {
	var meta entities.MetaTerapeutica
	err := r.preloaded().First(&meta, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Meta terapêutica não encontrada")
	}
	if err != nil {
		return nil, err
	}
	meta.Progresso = meta.CalcularProgresso(time.Now().In(utils.GetBrasilLocation()))
	return &meta, nil
}

// FindByPlano retorna as metas de um plano terapêutico
func (r *MetaRepository) FindByPlano(planoID int) ([]entities.MetaTerapeutica, error) {
	var metas []entities.MetaTerapeutica
	err := r.preloaded().Where("plano_id = ?", planoID).Order("metas_terapeuticas.id ASC").Find(&metas).Error
	preencherProgresso(metas)
	return metas, err
}

// FindAtivas retorna as metas em andamento, com filtro opcional por paciente
func (r *MetaRepository) FindAtivas(pacienteID int) ([]entities.MetaTerapeutica, error) {
	var metas []entities.MetaTerapeutica
	query := r.preloaded().Where("metas_terapeuticas.status = ?", entities.StatusEmAndamento)
	if pacienteID > 0 {
		query = query.
			Joins("JOIN planos_terapeuticos ON planos_terapeuticos.id = metas_terapeuticas.plano_id").
			Where("planos_terapeuticos.paciente_id = ?", pacienteID)
	}
	err := query.Order("metas_terapeuticas.id ASC").Find(&metas).Error
	preencherProgresso(metas)
	return metas, err
}

// Create persiste uma meta
func (r *MetaRepository) Create(meta *entities.MetaTerapeutica) error {
	return r.db.Create(meta).Error
}

// Update persiste alterações de campos escalares da meta
func (r *MetaRepository) Update(meta *entities.MetaTerapeutica) error {
	return r.db.Model(meta).
		Select("plano_id", "descricao", "data_inicio", "data_previsao_termino", "status").
		Updates(meta).Error
}

// Delete remove a meta; checklists e vínculos caem em cascata
func (r *MetaRepository) Delete(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		meta := entities.MetaTerapeutica{ID: id}
		if err := tx.Model(&meta).Association("Formularios").Clear(); err != nil {
			return err
		}
		result := tx.Select("Checklists").Delete(&meta)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFound("Meta terapêutica não encontrada")
		}
		return nil
	})
}

// SetFormularios substitui o conjunto completo de formulários vinculados à meta
func (r *MetaRepository) SetFormularios(meta *entities.MetaTerapeutica, formularios []entities.Formulario) error {
	return r.db.Model(meta).Association("Formularios").Replace(formularios)
}

// PerguntasDaMeta retorna todas as perguntas de todos os formulários
// vinculados à meta, ordenadas pelo formulário e pela ordem da pergunta
func (r *MetaRepository) PerguntasDaMeta(metaID int) ([]entities.Pergunta, error) {
	var perguntas []entities.Pergunta
	err := r.db.
		Joins("JOIN meta_formularios mf ON mf.formulario_id = perguntas.formulario_id").
		Where("mf.meta_terapeutica_id = ?", metaID).
		Order("perguntas.formulario_id ASC, perguntas.ordem ASC").
		Find(&perguntas).Error
	return perguntas, err
}

// FindFormularios retorna os formulários correspondentes aos ids informados
func (r *MetaRepository) FindFormularios(ids []int) ([]entities.Formulario, error) {
	var formularios []entities.Formulario
	err := r.db.Where("id IN ?", ids).Find(&formularios).Error
	return formularios, err
}
