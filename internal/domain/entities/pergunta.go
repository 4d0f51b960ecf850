package entities

// TipoPergunta é o tipo fechado de uma pergunta de formulário
type TipoPergunta string

const (
	TipoTexto    TipoPergunta = "TEXTO"
	TipoNumero   TipoPergunta = "NUMERO"
	TipoBooleano TipoPergunta = "BOOLEANO"
	TipoMultipla TipoPergunta = "MULTIPLA"
	TipoFormula  TipoPergunta = "FORMULA"
)

// TiposPerguntaValidos lista os valores aceitos na borda da API
var TiposPerguntaValidos = []TipoPergunta{TipoTexto, TipoNumero, TipoBooleano, TipoMultipla, TipoFormula}

// Valido verifica se o tipo pertence ao conjunto fechado
func (t TipoPergunta) Valido() bool {
	for _, v := range TiposPerguntaValidos {
		if t == v {
			return true
		}
	}
	return false
}

// Pergunta representa um item de um formulário de avaliação
type Pergunta struct {
	ID           int          `json:"id" gorm:"primaryKey;column:id"`
	Texto        string       `json:"texto" gorm:"column:texto;size:255;not null"`
	Tipo         TipoPergunta `json:"tipo" gorm:"column:tipo;size:20;not null"`
	Obrigatoria  bool         `json:"obrigatoria" gorm:"column:obrigatoria;default:false"`
	Ordem        int          `json:"ordem" gorm:"column:ordem;not null"`
	Formula      string       `json:"formula" gorm:"column:formula;size:400"`
	FormularioID int          `json:"formulario_id" gorm:"column:formulario_id;not null"`
}

// TableName define o nome da tabela no banco
func (Pergunta) TableName() string {
	return "perguntas"
}

// EhFormula indica se a pergunta tem valor derivado de outras respostas
func (p Pergunta) EhFormula() bool {
	return p.Tipo == TipoFormula
}
