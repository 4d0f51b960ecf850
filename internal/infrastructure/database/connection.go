package database

import (
	"context"

	"gorm.io/gorm"
)

// Marca no contexto que a sessão já está ajustando o fuso
type timezoneKey struct{}

// SetTimezoneMiddleware fixa o fuso da sessão em America/Sao_Paulo antes
// das consultas. As colunas de data dos checklists são datas de calendário
// locais; sem o ajuste, comparações com "hoje" derrapam perto da meia-noite
func SetTimezoneMiddleware() func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if _, ok := db.Statement.Context.Value(timezoneKey{}).(bool); ok {
			return // Evita recursão infinita
		}

		ctx := context.WithValue(db.Statement.Context, timezoneKey{}, true)

		tx := db.WithContext(ctx)
		tx.Exec("SET timezone = 'America/Sao_Paulo'")
	}
}

// RegisterMiddlewares registra os callbacks de sessão no GORM
func RegisterMiddlewares(db *gorm.DB) {
	db.Callback().Query().Before("gorm:query").Register("set_timezone_before_query", SetTimezoneMiddleware())
}
