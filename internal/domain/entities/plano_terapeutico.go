package entities

// PlanoTerapeutico agrupa metas de um paciente sob a responsabilidade de um profissional
type PlanoTerapeutico struct {
	ID             int    `json:"id" gorm:"primaryKey;column:id"`
	PacienteID     int    `json:"paciente_id" gorm:"column:paciente_id;not null"`
	ProfissionalID int    `json:"profissional_id" gorm:"column:profissional_id;not null"`
	ObjetivoGeral  string `json:"objetivo_geral" gorm:"column:objetivo_geral;type:text;not null"`
	DataCriacao    Data   `json:"data_criacao" gorm:"column:data_criacao;not null"`

	Paciente     *Paciente     `json:"-" gorm:"foreignKey:PacienteID"`
	Profissional *Profissional `json:"-" gorm:"foreignKey:ProfissionalID"`

	Metas []MetaTerapeutica `json:"-" gorm:"foreignKey:PlanoID;constraint:OnDelete:CASCADE"`
}

// TableName define o nome da tabela no banco
func (PlanoTerapeutico) TableName() string {
	return "planos_terapeuticos"
}
