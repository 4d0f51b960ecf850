package entities

// ChecklistDiario representa o registro de um dia de acompanhamento de uma meta.
// No máximo um registro por (meta, data), garantido por índice único no banco.
type ChecklistDiario struct {
	ID         int     `json:"id" gorm:"primaryKey;column:id"`
	MetaID     int     `json:"meta_id" gorm:"column:meta_id;not null;uniqueIndex:unique_meta_data"`
	Data       Data    `json:"data" gorm:"column:data;not null;uniqueIndex:unique_meta_data"`
	Nota       *int    `json:"nota" gorm:"column:nota"`
	Observacao *string `json:"observacao" gorm:"column:observacao;type:text"`

	Meta *MetaTerapeutica `json:"-" gorm:"foreignKey:MetaID"`

	Respostas []ChecklistResposta `json:"respostas" gorm:"foreignKey:ChecklistID;constraint:OnDelete:CASCADE"`

	// Preenchido na leitura a partir da meta carregada
	MetaDescricao string `json:"meta_descricao" gorm:"-"`
}

// TableName define o nome da tabela no banco
func (ChecklistDiario) TableName() string {
	return "checklists_diarios"
}

// ValidarNota verifica se a nota está no intervalo aceito (1 a 5)
func ValidarNota(nota int) bool {
	return nota >= 1 && nota <= 5
}

// ChecklistResposta guarda a resposta bruta de uma pergunta em um checklist,
// e o valor calculado quando a pergunta é do tipo FORMULA
type ChecklistResposta struct {
	ID                int     `json:"id" gorm:"primaryKey;column:id"`
	ChecklistID       int     `json:"checklist_id" gorm:"column:checklist_id;not null;uniqueIndex:unique_checklist_pergunta"`
	PerguntaID        int     `json:"pergunta_id" gorm:"column:pergunta_id;not null;uniqueIndex:unique_checklist_pergunta"`
	Resposta          string  `json:"resposta" gorm:"column:resposta;type:text"`
	RespostaCalculada *string `json:"resposta_calculada" gorm:"column:resposta_calculada"`

	Pergunta *Pergunta `json:"-" gorm:"foreignKey:PerguntaID"`

	// Preenchido na leitura a partir da pergunta carregada
	EhFormula bool `json:"eh_formula" gorm:"-"`
}

// TableName define o nome da tabela no banco
func (ChecklistResposta) TableName() string {
	return "checklist_respostas"
}
