package entities

// Profissional é usado pelos relatórios apenas como agrupador dos planos terapêuticos
type Profissional struct {
	ID            int    `json:"id" gorm:"primaryKey;column:id"`
	Nome          string `json:"nome" gorm:"column:nome;size:100;not null"`
	Especialidade string `json:"especialidade" gorm:"column:especialidade;size:100"`
	Email         string `json:"email" gorm:"column:email;size:120;unique"`
	Telefone      string `json:"telefone" gorm:"column:telefone;size:20"`

	Planos []PlanoTerapeutico `json:"-" gorm:"foreignKey:ProfissionalID;constraint:OnDelete:CASCADE"`
}

// TableName define o nome da tabela no banco
func (Profissional) TableName() string {
	return "profissionais"
}
