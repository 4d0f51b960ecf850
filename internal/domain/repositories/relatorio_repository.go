package repositories

import (
	"errors"

	"github.com/lgmendes/terapia-api/internal/apperrors"
	"github.com/lgmendes/terapia-api/internal/domain/entities"
	"gorm.io/gorm"
)

// DistribuicaoItem é um par (chave, contagem) de uma distribuição
type DistribuicaoItem struct {
	Chave string `gorm:"column:chave"`
	Count int64  `gorm:"column:count"`
}

// RelatorioRepository implementa as consultas somente-leitura dos relatórios
type RelatorioRepository struct {
	db *gorm.DB
}

// NewRelatorioRepository cria uma nova instância de RelatorioRepository
func NewRelatorioRepository(db *gorm.DB) *RelatorioRepository {
	return &RelatorioRepository{db: db}
}

// TotalPacientes conta os pacientes cadastrados
func (r *RelatorioRepository) TotalPacientes() (int64, error) {
	var total int64
	err := r.db.Model(&entities.Paciente{}).Count(&total).Error
	return total, err
}

// TotalProfissionais conta os profissionais cadastrados
func (r *RelatorioRepository) TotalProfissionais() (int64, error) {
	var total int64
	err := r.db.Model(&entities.Profissional{}).Count(&total).Error
	return total, err
}

// TotalMetasAtivas conta as metas em andamento
func (r *RelatorioRepository) TotalMetasAtivas() (int64, error) {
	var total int64
	err := r.db.Model(&entities.MetaTerapeutica{}).
		Where("status = ?", entities.StatusEmAndamento).
		Count(&total).Error
	return total, err
}

// RegistrosNaData conta os checklists de uma data
func (r *RelatorioRepository) RegistrosNaData(data entities.Data) (int64, error) {
	var total int64
	err := r.db.Model(&entities.ChecklistDiario{}).
		Where("data = ?", data.Time).
		Count(&total).Error
	return total, err
}

// DistribuicaoDiagnosticos agrupa os pacientes por diagnóstico
func (r *RelatorioRepository) DistribuicaoDiagnosticos() ([]DistribuicaoItem, error) {
	var itens []DistribuicaoItem
	err := r.db.Model(&entities.Paciente{}).
		Select("diagnostico AS chave, COUNT(id) AS count").
		Group("diagnostico").
		Order("count DESC").
		Scan(&itens).Error
	return itens, err
}

// DistribuicaoStatusMetas agrupa as metas por status
func (r *RelatorioRepository) DistribuicaoStatusMetas() ([]DistribuicaoItem, error) {
	var itens []DistribuicaoItem
	err := r.db.Model(&entities.MetaTerapeutica{}).
		Select("status AS chave, COUNT(id) AS count").
		Group("status").
		Order("count DESC").
		Scan(&itens).Error
	return itens, err
}

// FindPaciente retorna um paciente pelo id
func (r *RelatorioRepository) FindPaciente(id int) (*entities.Paciente, error) {
	var paciente entities.Paciente
	err := r.db.First(&paciente, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Paciente não encontrado")
	}
	if err != nil {
		return nil, err
	}
	return &paciente, nil
}

// FindProfissional retorna um profissional pelo id
func (r *RelatorioRepository) FindProfissional(id int) (*entities.Profissional, error) {
	var profissional entities.Profissional
	err := r.db.First(&profissional, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Profissional não encontrado")
	}
	if err != nil {
		return nil, err
	}
	return &profissional, nil
}

// PlanosDoPaciente retorna os planos terapêuticos de um paciente
func (r *RelatorioRepository) PlanosDoPaciente(pacienteID int) ([]entities.PlanoTerapeutico, error) {
	var planos []entities.PlanoTerapeutico
	err := r.db.Where("paciente_id = ?", pacienteID).Find(&planos).Error
	return planos, err
}

// PlanosDoProfissional retorna os planos terapêuticos de um profissional
func (r *RelatorioRepository) PlanosDoProfissional(profissionalID int) ([]entities.PlanoTerapeutico, error) {
	var planos []entities.PlanoTerapeutico
	err := r.db.Where("profissional_id = ?", profissionalID).Find(&planos).Error
	return planos, err
}

// MetasDosPlanos retorna as metas pertencentes aos planos informados
func (r *RelatorioRepository) MetasDosPlanos(planoIDs []int) ([]entities.MetaTerapeutica, error) {
	if len(planoIDs) == 0 {
		return nil, nil
	}
	var metas []entities.MetaTerapeutica
	err := r.db.Where("plano_id IN ?", planoIDs).Find(&metas).Error
	return metas, err
}

// PacientesPorIDs retorna os pacientes correspondentes aos ids informados
func (r *RelatorioRepository) PacientesPorIDs(ids []int) ([]entities.Paciente, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var pacientes []entities.Paciente
	err := r.db.Where("id IN ?", ids).Find(&pacientes).Error
	return pacientes, err
}

// ChecklistsRecentesDoPaciente retorna os checklists das metas do paciente
// a partir da data limite, mais recentes primeiro
func (r *RelatorioRepository) ChecklistsRecentesDoPaciente(pacienteID int, limite entities.Data) ([]entities.ChecklistDiario, error) {
	var checklists []entities.ChecklistDiario
	err := r.db.
		Joins("JOIN metas_terapeuticas mt ON mt.id = checklists_diarios.meta_id").
		Joins("JOIN planos_terapeuticos pt ON pt.id = mt.plano_id").
		Where("pt.paciente_id = ? AND checklists_diarios.data >= ?", pacienteID, limite.Time).
		Order("checklists_diarios.data DESC").
		Find(&checklists).Error
	return checklists, err
}
