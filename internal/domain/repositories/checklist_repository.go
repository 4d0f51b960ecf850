package repositories

import (
	"errors"
	"sort"

	"github.com/lgmendes/terapia-api/internal/apperrors"
	"github.com/lgmendes/terapia-api/internal/domain/entities"
	"gorm.io/gorm"
)

// ChecklistRepository implementa o acesso a dados de checklists diários e respostas
type ChecklistRepository struct {
	db *gorm.DB
}

// NewChecklistRepository cria uma nova instância de ChecklistRepository
func NewChecklistRepository(db *gorm.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

func (r *ChecklistRepository) preloaded() *gorm.DB {
	return r.db.
		Preload("Meta").
		Preload("Respostas.Pergunta")
}

// posCarga preenche os campos derivados e ordena as respostas pela ordem
// das perguntas donas
func posCarga(checklist *entities.ChecklistDiario) {
	if checklist.Meta != nil {
		checklist.MetaDescricao = checklist.Meta.Descricao
	}
	for i := range checklist.Respostas {
		if p := checklist.Respostas[i].Pergunta; p != nil {
			checklist.Respostas[i].EhFormula = p.EhFormula()
		}
	}
	sort.SliceStable(checklist.Respostas, func(a, b int) bool {
		pa, pb := checklist.Respostas[a].Pergunta, checklist.Respostas[b].Pergunta
		if pa == nil || pb == nil {
			return checklist.Respostas[a].PerguntaID < checklist.Respostas[b].PerguntaID
		}
		if pa.FormularioID != pb.FormularioID {
			return pa.FormularioID < pb.FormularioID
		}
		return pa.Ordem < pb.Ordem
	})
}

// FindAll retorna todos os checklists diários
func (r *ChecklistRepository) FindAll() ([]entities.ChecklistDiario, error) {
	var checklists []entities.ChecklistDiario
	err := r.preloaded().Order("checklists_diarios.data DESC, checklists_diarios.id DESC").Find(&checklists).Error
	for i := range checklists {
		posCarga(&checklists[i])
	}
	return checklists, err
}

// FindByID retorna um checklist pelo id com meta e respostas carregadas
func (r *ChecklistRepository) FindByID(id int) (*entities.ChecklistDiario, error) {
	var checklist entities.ChecklistDiario
	err := r.preloaded().First(&checklist, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Checklist diário não encontrado")
	}
	if err != nil {
		return nil, err
	}
	posCarga(&checklist)
	return &checklist, nil
}

// FindByMeta retorna os checklists de uma meta, mais recentes primeiro
func (r *ChecklistRepository) FindByMeta(metaID int) ([]entities.ChecklistDiario, error) {
	var checklists []entities.ChecklistDiario
	err := r.preloaded().
		Where("meta_id = ?", metaID).
		Order("checklists_diarios.data DESC").
		Find(&checklists).Error
	for i := range checklists {
		posCarga(&checklists[i])
	}
	return checklists, err
}

// FindByMetaAsc retorna os checklists de uma meta em ordem cronológica,
// com filtro opcional de intervalo de datas
func (r *ChecklistRepository) FindByMetaAsc(metaID int, inicio, fim *entities.Data) ([]entities.ChecklistDiario, error) {
	var checklists []entities.ChecklistDiario
	query := r.preloaded().Where("meta_id = ?", metaID)
	if inicio != nil {
		query = query.Where("data >= ?", inicio.Time)
	}
	if fim != nil {
		query = query.Where("data <= ?", fim.Time)
	}
	err := query.Order("checklists_diarios.data ASC").Find(&checklists).Error
	for i := range checklists {
		posCarga(&checklists[i])
	}
	return checklists, err
}

// FindByMetaEData retorna o checklist de uma meta em uma data específica
func (r *ChecklistRepository) FindByMetaEData(metaID int, data entities.Data) (*entities.ChecklistDiario, error) {
	var checklist entities.ChecklistDiario
	err := r.preloaded().Where("meta_id = ? AND data = ?", metaID, data.Time).First(&checklist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Checklist não encontrado para esta data")
	}
	if err != nil {
		return nil, err
	}
	posCarga(&checklist)
	return &checklist, nil
}

// FindByData retorna todos os checklists de uma data
func (r *ChecklistRepository) FindByData(data entities.Data) ([]entities.ChecklistDiario, error) {
	var checklists []entities.ChecklistDiario
	err := r.preloaded().Where("data = ?", data.Time).Find(&checklists).Error
	for i := range checklists {
		posCarga(&checklists[i])
	}
	return checklists, err
}

// FindByPeriodo retorna os checklists do intervalo [inicio, fim] em ordem cronológica
func (r *ChecklistRepository) FindByPeriodo(inicio, fim entities.Data) ([]entities.ChecklistDiario, error) {
	var checklists []entities.ChecklistDiario
	err := r.preloaded().
		Where("data >= ? AND data <= ?", inicio.Time, fim.Time).
		Order("checklists_diarios.data ASC").
		Find(&checklists).Error
	for i := range checklists {
		posCarga(&checklists[i])
	}
	return checklists, err
}

// ExisteParaMetaEData verifica se já há checklist para (meta, data)
func (r *ChecklistRepository) ExisteParaMetaEData(metaID int, data entities.Data) (bool, error) {
	var count int64
	err := r.db.Model(&entities.ChecklistDiario{}).
		Where("meta_id = ? AND data = ?", metaID, data.Time).
		Count(&count).Error
	return count > 0, err
}

// Create grava o checklist e todas as respostas em uma única transação.
// A violação do índice único (meta, data) é o árbitro final da duplicidade
// sob escrita concorrente e vira ConflictError.
func (r *ChecklistRepository) Create(checklist *entities.ChecklistDiario) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(checklist).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.NewConflict("Já existe um checklist para esta meta nesta data")
	}
	return err
}

// Update aplica em uma transação a atualização parcial do checklist e das
// respostas cujos ids de pergunta vieram no payload. Com substituir, as
// linhas existentes são descartadas e o conjunto recebido gravado no lugar,
// o caminho da reatribuição de meta
func (r *ChecklistRepository) Update(checklist *entities.ChecklistDiario, respostas []entities.ChecklistResposta, substituir bool) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(checklist).
			Select("meta_id", "data", "nota", "observacao").
			Updates(checklist).Error; err != nil {
			return err
		}

		if substituir {
			if err := tx.Where("checklist_id = ?", checklist.ID).
				Delete(&entities.ChecklistResposta{}).Error; err != nil {
				return err
			}
			for i := range respostas {
				respostas[i].ID = 0
				respostas[i].ChecklistID = checklist.ID
			}
			if len(respostas) > 0 {
				if err := tx.Create(&respostas).Error; err != nil {
					return err
				}
			}
			return nil
		}

		for i := range respostas {
			resposta := &respostas[i]
			resposta.ChecklistID = checklist.ID
			result := tx.Model(&entities.ChecklistResposta{}).
				Where("checklist_id = ? AND pergunta_id = ?", checklist.ID, resposta.PerguntaID).
				Select("resposta", "resposta_calculada").
				Updates(resposta)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				if err := tx.Create(resposta).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.NewConflict("Já existe um checklist para esta meta nesta data")
	}
	return err
}

// Delete remove o checklist; as respostas caem em cascata
func (r *ChecklistRepository) Delete(id int) error {
	result := r.db.Select("Respostas").Delete(&entities.ChecklistDiario{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("Checklist diário não encontrado")
	}
	return nil
}

// RespostaFormulaDia projeta uma resposta de fórmula junto com a data
// do checklist dono e os dados da pergunta
type RespostaFormulaDia struct {
	Data              entities.Data `json:"data" gorm:"column:data"`
	ChecklistID       int           `json:"checklist_id" gorm:"column:checklist_id"`
	MetaID            int           `json:"meta_id" gorm:"column:meta_id"`
	PerguntaID        int           `json:"pergunta_id" gorm:"column:pergunta_id"`
	Texto             string        `json:"texto" gorm:"column:texto"`
	Formula           string        `json:"formula" gorm:"column:formula"`
	Resposta          string        `json:"resposta" gorm:"column:resposta"`
	RespostaCalculada *string       `json:"resposta_calculada" gorm:"column:resposta_calculada"`
}

const colunasRespostaFormula = "cd.data, cd.meta_id, checklist_respostas.checklist_id, checklist_respostas.pergunta_id, " +
	"perguntas.texto, perguntas.formula, checklist_respostas.resposta, checklist_respostas.resposta_calculada"

// RespostasDaPergunta retorna em ordem cronológica as respostas de uma
// pergunta através de todos os checklists
func (r *ChecklistRepository) RespostasDaPergunta(perguntaID int) ([]RespostaFormulaDia, error) {
	var itens []RespostaFormulaDia
	err := r.db.Table("checklist_respostas").
		Select(colunasRespostaFormula).
		Joins("JOIN checklists_diarios cd ON cd.id = checklist_respostas.checklist_id").
		Joins("JOIN perguntas ON perguntas.id = checklist_respostas.pergunta_id").
		Where("checklist_respostas.pergunta_id = ?", perguntaID).
		Order("cd.data ASC").
		Scan(&itens).Error
	return itens, err
}

// RespostasFormulaDaMeta retorna em ordem cronológica as respostas das
// perguntas do tipo FORMULA de todos os checklists de uma meta
func (r *ChecklistRepository) RespostasFormulaDaMeta(metaID int) ([]RespostaFormulaDia, error) {
	var itens []RespostaFormulaDia
	err := r.db.Table("checklist_respostas").
		Select(colunasRespostaFormula).
		Joins("JOIN checklists_diarios cd ON cd.id = checklist_respostas.checklist_id").
		Joins("JOIN perguntas ON perguntas.id = checklist_respostas.pergunta_id").
		Where("cd.meta_id = ? AND perguntas.tipo = ?", metaID, entities.TipoFormula).
		Order("checklist_respostas.pergunta_id ASC, cd.data ASC").
		Scan(&itens).Error
	return itens, err
}
