package repositories

import (
	"errors"

	"github.com/lgmendes/terapia-api/internal/apperrors"
	"github.com/lgmendes/terapia-api/internal/domain/entities"
	"gorm.io/gorm"
)

// PerguntaRepository implementa o acesso a dados de perguntas avulsas
type PerguntaRepository struct {
	db *gorm.DB
}

// NewPerguntaRepository cria uma nova instância de PerguntaRepository
func NewPerguntaRepository(db *gorm.DB) *PerguntaRepository {
	return &PerguntaRepository{db: db}
}

// FindAll retorna todas as perguntas
func (r *PerguntaRepository) FindAll() ([]entities.Pergunta, error) {
	var perguntas []entities.Pergunta
	err := r.db.Order("formulario_id ASC, ordem ASC").Find(&perguntas).Error
	return perguntas, err
}

// FindByID retorna uma pergunta pelo id
func (r *PerguntaRepository) FindByID(id int) (*entities.Pergunta, error) {
	var pergunta entities.Pergunta
	err := r.db.First(&pergunta, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Pergunta não encontrada")
	}
	if err != nil {
		return nil, err
	}
	return &pergunta, nil
}

// Create persiste uma pergunta
func (r *PerguntaRepository) Create(pergunta *entities.Pergunta) error {
	return r.db.Create(pergunta).Error
}

// Update persiste alterações em uma pergunta existente
func (r *PerguntaRepository) Update(pergunta *entities.Pergunta) error {
	return r.db.Save(pergunta).Error
}

// Delete remove uma pergunta
func (r *PerguntaRepository) Delete(id int) error {
	result := r.db.Delete(&entities.Pergunta{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("Pergunta não encontrada")
	}
	return nil
}
