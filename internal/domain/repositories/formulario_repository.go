package repositories

import (
	"errors"

	"github.com/lgmendes/terapia-api/internal/apperrors"
	"github.com/lgmendes/terapia-api/internal/domain/entities"
	"gorm.io/gorm"
)

// FormularioRepository implementa o acesso a dados de formulários e suas perguntas
type FormularioRepository struct {
	db *gorm.DB
}

// NewFormularioRepository cria uma nova instância de FormularioRepository
func NewFormularioRepository(db *gorm.DB) *FormularioRepository {
	return &FormularioRepository{db: db}
}

// FindAll retorna todos os formulários com as perguntas ordenadas
func (r *FormularioRepository) FindAll() ([]entities.Formulario, error) {
	var formularios []entities.Formulario
	err := r.db.
		Preload("Perguntas", func(db *gorm.DB) *gorm.DB {
			return db.Order("perguntas.ordem ASC")
		}).
		Order("formularios.id ASC").
		Find(&formularios).Error
	return formularios, err
}

// FindByID retorna um formulário pelo id com as perguntas ordenadas
func (r *FormularioRepository) FindByID(id int) (*entities.Formulario, error) {
	var formulario entities.Formulario
	err := r.db.
		Preload("Perguntas", func(db *gorm.DB) *gorm.DB {
			return db.Order("perguntas.ordem ASC")
		}).
		First(&formulario, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Formulário não encontrado")
	}
	if err != nil {
		return nil, err
	}
	return &formulario, nil
}

// Create persiste o formulário e suas perguntas em uma transação
func (r *FormularioRepository) Create(formulario *entities.Formulario) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(formulario).Error
	})
}

// UpdateComPerguntas aplica o upsert não destrutivo de perguntas: perguntas
// com id são sobrescritas, sem id são criadas, ausentes do payload ficam intactas
func (r *FormularioRepository) UpdateComPerguntas(formulario *entities.Formulario, perguntas []entities.Pergunta) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(formulario).Select("nome", "descricao", "categoria").Updates(formulario).Error; err != nil {
			return err
		}

		for i := range perguntas {
			p := &perguntas[i]
			p.FormularioID = formulario.ID
			if p.ID > 0 {
				// Sobrescreve a pergunta existente, casando id e formulário dono
				result := tx.Model(&entities.Pergunta{}).
					Where("id = ? AND formulario_id = ?", p.ID, formulario.ID).
					Select("texto", "tipo", "obrigatoria", "ordem", "formula").
					Updates(p)
				if result.Error != nil {
					return result.Error
				}
				continue
			}
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete remove o formulário; as perguntas caem em cascata
func (r *FormularioRepository) Delete(id int) error {
	result := r.db.Select("Perguntas").Delete(&entities.Formulario{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("Formulário não encontrado")
	}
	return nil
}

// ProximaOrdem retorna o próximo índice de ordem livre do formulário
func (r *FormularioRepository) ProximaOrdem(formularioID int) (int, error) {
	var maxOrdem int
	err := r.db.Model(&entities.Pergunta{}).
		Where("formulario_id = ?", formularioID).
		Select("COALESCE(MAX(ordem), 0)").
		Scan(&maxOrdem).Error
	return maxOrdem + 1, err
}
