package migrations

import (
	"github.com/lgmendes/terapia-api/internal/domain/entities"
	"gorm.io/gorm"
)

// Migrate cria/atualiza o esquema de todas as entidades
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Profissional{},
		&entities.Paciente{},
		&entities.PlanoTerapeutico{},
		&entities.Formulario{},
		&entities.Pergunta{},
		&entities.MetaTerapeutica{},
		&entities.ChecklistDiario{},
		&entities.ChecklistResposta{},
	)
}
