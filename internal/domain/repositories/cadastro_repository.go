package repositories

import (
	"errors"

	"github.com/lgmendes/terapia-api/internal/apperrors"
	"github.com/lgmendes/terapia-api/internal/domain/entities"
	"gorm.io/gorm"
)

// CadastroRepository expõe as leituras simples de pacientes, profissionais
// e planos usadas fora dos relatórios. Os cadastros completos vivem em outro
// serviço; aqui eles são só colaboradores externos dos relatórios.
type CadastroRepository struct {
	db *gorm.DB
}

// NewCadastroRepository cria uma nova instância de CadastroRepository
func NewCadastroRepository(db *gorm.DB) *CadastroRepository {
	return &CadastroRepository{db: db}
}

// FindPacientes retorna todos os pacientes
func (r *CadastroRepository) FindPacientes() ([]entities.Paciente, error) {
	var pacientes []entities.Paciente
	err := r.db.Order("id ASC").Find(&pacientes).Error
	return pacientes, err
}

// FindProfissionais retorna todos os profissionais
func (r *CadastroRepository) FindProfissionais() ([]entities.Profissional, error) {
	var profissionais []entities.Profissional
	err := r.db.Order("id ASC").Find(&profissionais).Error
	return profissionais, err
}

// FindPlanos retorna todos os planos terapêuticos
func (r *CadastroRepository) FindPlanos() ([]entities.PlanoTerapeutico, error) {
	var planos []entities.PlanoTerapeutico
	err := r.db.Order("id ASC").Find(&planos).Error
	return planos, err
}

// FindPlanoByID retorna um plano pelo id
func (r *CadastroRepository) FindPlanoByID(id int) (*entities.PlanoTerapeutico, error) {
	var plano entities.PlanoTerapeutico
	err := r.db.First(&plano, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Plano terapêutico não encontrado")
	}
	if err != nil {
		return nil, err
	}
	return &plano, nil
}
