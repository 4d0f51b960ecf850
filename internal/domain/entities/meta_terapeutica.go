package entities

import (
	"math"
	"time"
)

// StatusMeta é o status fechado de uma meta terapêutica
type StatusMeta string

const (
	StatusEmAndamento StatusMeta = "EmAndamento"
	StatusConcluida   StatusMeta = "Concluida"
)

// Valido verifica se o status pertence ao conjunto fechado
func (s StatusMeta) Valido() bool {
	return s == StatusEmAndamento || s == StatusConcluida
}

// MetaTerapeutica representa um objetivo terapêutico acompanhado por checklists diários
type MetaTerapeutica struct {
	ID                  int        `json:"id" gorm:"primaryKey;column:id"`
	PlanoID             int        `json:"plano_id" gorm:"column:plano_id;not null"`
	Descricao           string     `json:"descricao" gorm:"column:descricao;type:text;not null"`
	DataInicio          Data       `json:"data_inicio" gorm:"column:data_inicio;not null"`
	DataPrevisaoTermino Data       `json:"data_previsao_termino" gorm:"column:data_previsao_termino;not null"`
	Status              StatusMeta `json:"status" gorm:"column:status;size:20;not null;default:EmAndamento"`

	// Progresso temporal estimado, preenchido na leitura
	Progresso float64 `json:"progresso" gorm:"-"`

	Plano *PlanoTerapeutico `json:"-" gorm:"foreignKey:PlanoID"`

	// Formulários vinculados; o vínculo é uma associação explícita,
	// criada e removida independente do ciclo de vida das duas pontas
	Formularios []Formulario `json:"formularios" gorm:"many2many:meta_formularios"`

	Checklists []ChecklistDiario `json:"-" gorm:"foreignKey:MetaID;constraint:OnDelete:CASCADE"`
}

// TableName define o nome da tabela no banco
func (MetaTerapeutica) TableName() string {
	return "metas_terapeuticas"
}

// CalcularProgresso estima o progresso temporal da meta em percentual (0-100)
func (m MetaTerapeutica) CalcularProgresso(hoje time.Time) float64 {
	if m.DataInicio.IsZero() || m.DataPrevisaoTermino.IsZero() {
		return 0
	}
	totalDias := m.DataPrevisaoTermino.Sub(m.DataInicio.Time).Hours() / 24
	if totalDias <= 0 {
		return 100
	}
	decorridos := NovaData(hoje).Sub(m.DataInicio.Time).Hours() / 24
	progresso := decorridos / totalDias * 100
	progresso = math.Min(100, math.Max(0, progresso))
	return math.Round(progresso*100) / 100
}
