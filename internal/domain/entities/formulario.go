package entities

import "time"

// CategoriaPadrao é a categoria atribuída quando nenhuma é informada
const CategoriaPadrao = "avaliacao"

// Formulario representa um modelo reutilizável de avaliação com perguntas ordenadas
type Formulario struct {
	ID           int        `json:"id" gorm:"primaryKey;column:id"`
	Nome         string     `json:"nome" gorm:"column:nome;size:255;not null"`
	Descricao    string     `json:"descricao" gorm:"column:descricao;size:400"`
	Categoria    string     `json:"categoria" gorm:"column:categoria;size:50;not null;default:avaliacao"`
	CriadoEm     time.Time  `json:"criadoEm" gorm:"column:criado_em;autoCreateTime"`
	AtualizadoEm time.Time  `json:"atualizadoEm" gorm:"column:atualizado_em;autoUpdateTime"`
	Perguntas    []Pergunta `json:"perguntas" gorm:"foreignKey:FormularioID;constraint:OnDelete:CASCADE"`

	// Many-to-many com metas terapêuticas via tabela meta_formularios
	Metas []MetaTerapeutica `json:"-" gorm:"many2many:meta_formularios"`
}

// TableName define o nome da tabela no banco
func (Formulario) TableName() string {
	return "formularios"
}
