package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adds indexes to the database to improve query performance
func AddIndexes(db *gorm.DB) error {
	// Um checklist por meta por dia; o banco é a última linha de defesa
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS unique_meta_data ON checklists_diarios (meta_id, data)").Error; err != nil {
		return err
	}
	// Uma resposta por pergunta dentro do checklist
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS unique_checklist_pergunta ON checklist_respostas (checklist_id, pergunta_id)").Error; err != nil {
		return err
	}

	// Índices das consultas de série temporal e dos relatórios
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_checklists_diarios_data ON checklists_diarios (data)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_checklists_diarios_meta_id ON checklists_diarios (meta_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_checklist_respostas_pergunta_id ON checklist_respostas (pergunta_id)").Error; err != nil {
		return err
	}

	// Índices das associações mais percorridas
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_perguntas_formulario_id ON perguntas (formulario_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_metas_terapeuticas_plano_id ON metas_terapeuticas (plano_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_metas_terapeuticas_status ON metas_terapeuticas (status)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_planos_terapeuticos_paciente_id ON planos_terapeuticos (paciente_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_planos_terapeuticos_profissional_id ON planos_terapeuticos (profissional_id)").Error; err != nil {
		return err
	}

	return nil
}
