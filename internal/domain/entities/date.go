package entities

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// FormatoData é o formato de data usado em toda a API (YYYY-MM-DD)
const FormatoData = "2006-01-02"

// Data representa uma data de calendário sem componente de hora.
// Serializa como "YYYY-MM-DD" no JSON e mapeia para coluna DATE no banco.
type Data struct {
	time.Time
}

// NovaData cria uma Data truncando o componente de hora
func NovaData(t time.Time) Data {
	return Data{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseData converte uma string "YYYY-MM-DD" em Data
func ParseData(s string) (Data, error) {
	t, err := time.Parse(FormatoData, s)
	if err != nil {
		return Data{}, fmt.Errorf("formato de data inválido. Use YYYY-MM-DD")
	}
	return Data{t}, nil
}

// Hoje retorna a data de hoje no fuso horário informado
func Hoje(loc *time.Location) Data {
	return NovaData(time.Now().In(loc))
}

func (d Data) String() string {
	return d.Format(FormatoData)
}

func (d Data) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(FormatoData) + `"`), nil
}

func (d *Data) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Data{}
		return nil
	}
	parsed, err := ParseData(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implementa driver.Valuer para o GORM gravar como DATE
func (d Data) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implementa sql.Scanner
func (d *Data) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*d = NovaData(v)
		return nil
	case string:
		parsed, err := ParseData(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case nil:
		*d = Data{}
		return nil
	}
	return fmt.Errorf("não foi possível converter %T para Data", value)
}

// GormDataType informa ao GORM o tipo de coluna
func (Data) GormDataType() string {
	return "date"
}
