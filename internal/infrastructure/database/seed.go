package database

import (
	"fmt"
	"log"
	"time"

	"github.com/lgmendes/terapia-api/internal/domain/entities"
	"github.com/lgmendes/terapia-api/internal/utils"
	"gorm.io/gorm"
)

// SeedDemo grava o cenário de demonstração: um profissional, um paciente,
// um plano, um formulário com os quatro tipos de pergunta e uma meta já
// vinculada ao formulário. Idempotente: não grava nada se já houver dados
func SeedDemo(db *gorm.DB) error {
	var total int64
	if err := db.Model(&entities.Formulario{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		log.Println("🌱 Dados já existentes, seed ignorado")
		return nil
	}

	hoje := time.Now().In(utils.GetBrasilLocation())

	return db.Transaction(func(tx *gorm.DB) error {
		profissional := entities.Profissional{
			Nome:          "Dra. Ana Souza",
			Especialidade: "Fonoaudiologia",
			Email:         "ana.souza@clinica.example",
			Telefone:      "(11) 99999-0001",
		}
		if err := tx.Create(&profissional).Error; err != nil {
			return err
		}

		paciente := entities.Paciente{
			Nome:           "João Pedro",
			DataNascimento: entities.NovaData(hoje.AddDate(-6, 0, 0)),
			Responsavel:    "Maria Pedro",
			Contato:        "(11) 99999-0002",
			Diagnostico:    entities.DiagnosticoTEA,
		}
		if err := tx.Create(&paciente).Error; err != nil {
			return err
		}

		plano := entities.PlanoTerapeutico{
			PacienteID:     paciente.ID,
			ProfissionalID: profissional.ID,
			ObjetivoGeral:  "Ampliar a comunicação funcional nas rotinas diárias",
			DataCriacao:    entities.NovaData(hoje),
		}
		if err := tx.Create(&plano).Error; err != nil {
			return err
		}

		formulario := entities.Formulario{
			Nome:      "Registro diário de comunicação",
			Descricao: "Acompanhamento das interações comunicativas do dia",
			Categoria: entities.CategoriaPadrao,
			Perguntas: []entities.Pergunta{
				{Texto: "Como foi a interação de hoje?", Tipo: entities.TipoTexto, Obrigatoria: true, Ordem: 1},
				{Texto: "Quantas solicitações espontâneas?", Tipo: entities.TipoNumero, Obrigatoria: true, Ordem: 2},
				{Texto: "Quantas solicitações com apoio?", Tipo: entities.TipoNumero, Obrigatoria: true, Ordem: 3},
				{Texto: "Houve crise durante a sessão?", Tipo: entities.TipoBooleano, Obrigatoria: false, Ordem: 4},
				{Texto: "Total de solicitações", Tipo: entities.TipoFormula, Obrigatoria: false, Ordem: 5, Formula: "{2} + {3}"},
			},
		}
		if err := tx.Create(&formulario).Error; err != nil {
			return err
		}

		// A fórmula referencia perguntas pelos ids reais gerados acima
		formula := fmt.Sprintf("{%d} + {%d}", formulario.Perguntas[1].ID, formulario.Perguntas[2].ID)
		if err := tx.Model(&formulario.Perguntas[4]).Update("formula", formula).Error; err != nil {
			return err
		}

		meta := entities.MetaTerapeutica{
			PlanoID:             plano.ID,
			Descricao:           "Aumentar solicitações espontâneas para 10 por dia",
			DataInicio:          entities.NovaData(hoje),
			DataPrevisaoTermino: entities.NovaData(hoje.AddDate(0, 3, 0)),
			Status:              entities.StatusEmAndamento,
		}
		if err := tx.Create(&meta).Error; err != nil {
			return err
		}
		if err := tx.Model(&meta).Association("Formularios").Replace([]entities.Formulario{formulario}); err != nil {
			return err
		}

		log.Println("🌱 Dados de demonstração criados")
		return nil
	})
}
