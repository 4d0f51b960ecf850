package entities

// Diagnostico é o diagnóstico fechado de um paciente
type Diagnostico string

const (
	DiagnosticoTEA   Diagnostico = "TEA"
	DiagnosticoTDAH  Diagnostico = "TDAH"
	DiagnosticoOutro Diagnostico = "Outro"
)

// Valido verifica se o diagnóstico pertence ao conjunto fechado
func (d Diagnostico) Valido() bool {
	return d == DiagnosticoTEA || d == DiagnosticoTDAH || d == DiagnosticoOutro
}

// Paciente é usado pelos relatórios apenas como agrupador dos planos terapêuticos
type Paciente struct {
	ID             int         `json:"id" gorm:"primaryKey;column:id"`
	Nome           string      `json:"nome" gorm:"column:nome;size:100;not null"`
	DataNascimento Data        `json:"data_nascimento" gorm:"column:data_nascimento;not null"`
	Responsavel    string      `json:"responsavel" gorm:"column:responsavel;size:100"`
	Contato        string      `json:"contato" gorm:"column:contato;size:50"`
	Diagnostico    Diagnostico `json:"diagnostico" gorm:"column:diagnostico;size:20;not null"`

	Planos []PlanoTerapeutico `json:"-" gorm:"foreignKey:PacienteID;constraint:OnDelete:CASCADE"`
}

// TableName define o nome da tabela no banco
func (Paciente) TableName() string {
	return "pacientes"
}
