package routes

import (
	"github.com/lgmendes/terapia-api/internal/application/usecases"
	"github.com/lgmendes/terapia-api/internal/domain/repositories"
	"github.com/lgmendes/terapia-api/internal/interfaces/http/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

func authMiddleware(c *fiber.Ctx) error {
	// TODO: Implementar autenticação
	return c.Next()
}

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Repositories
	formularioRepo := repositories.NewFormularioRepository(db)
	perguntaRepo := repositories.NewPerguntaRepository(db)
	metaRepo := repositories.NewMetaRepository(db)
	checklistRepo := repositories.NewChecklistRepository(db)
	relatorioRepo := repositories.NewRelatorioRepository(db)
	cadastroRepo := repositories.NewCadastroRepository(db)

	// Use Cases
	formularioUseCase := usecases.NewFormularioUseCase(formularioRepo)
	perguntaUseCase := usecases.NewPerguntaUseCase(perguntaRepo, formularioRepo)
	metaUseCase := usecases.NewMetaUseCase(metaRepo, cadastroRepo)
	checklistUseCase := usecases.NewChecklistUseCase(checklistRepo, metaRepo)
	relatorioUseCase := usecases.NewRelatorioUseCase(relatorioRepo, checklistRepo, metaRepo, perguntaRepo)

	// Handlers
	formularioHandler := handlers.NewFormularioHandler(formularioUseCase)
	perguntaHandler := handlers.NewPerguntaHandler(perguntaUseCase)
	metaHandler := handlers.NewMetaHandler(metaUseCase)
	checklistHandler := handlers.NewChecklistHandler(checklistUseCase)
	relatorioHandler := handlers.NewRelatorioHandler(relatorioUseCase)
	cadastroHandler := handlers.NewCadastroHandler(cadastroRepo)

	// Formulários
	formularios := app.Group("/formularios", authMiddleware)
	formularios.Get("/", formularioHandler.GetFormularios)
	formularios.Get("/:id", formularioHandler.GetFormulario)
	formularios.Post("/", formularioHandler.CreateFormulario)
	formularios.Put("/:id", formularioHandler.UpdateFormulario)
	formularios.Delete("/:id", formularioHandler.DeleteFormulario)

	// Perguntas avulsas
	perguntas := app.Group("/perguntas", authMiddleware)
	perguntas.Get("/", perguntaHandler.GetPerguntas)
	perguntas.Get("/:id", perguntaHandler.GetPergunta)
	perguntas.Post("/", perguntaHandler.CreatePergunta)
	perguntas.Put("/:id", perguntaHandler.UpdatePergunta)
	perguntas.Delete("/:id", perguntaHandler.DeletePergunta)

	// Metas terapêuticas
	metas := app.Group("/metas-terapeuticas", authMiddleware)
	metas.Get("/", metaHandler.GetMetas)
	metas.Get("/ativas", metaHandler.GetMetasAtivas)
	metas.Get("/plano/:plano_id", metaHandler.GetMetasPorPlano)
	metas.Get("/:id", metaHandler.GetMeta)
	metas.Post("/", metaHandler.CreateMeta)
	metas.Put("/:id/concluir", metaHandler.ConcluirMeta)
	metas.Put("/:id", metaHandler.UpdateMeta)
	metas.Delete("/:id", metaHandler.DeleteMeta)

	// Checklists diários
	checklists := app.Group("/checklists-diarios", authMiddleware)
	checklists.Get("/", checklistHandler.GetChecklists)
	checklists.Get("/hoje", checklistHandler.GetChecklistsDeHoje)
	checklists.Get("/estatisticas/meta/:meta_id", checklistHandler.GetEstatisticasDaMeta)
	checklists.Get("/meta/:meta_id/data/:data", checklistHandler.GetChecklistPorMetaEData)
	checklists.Get("/meta/:meta_id/formulas", relatorioHandler.GetFormulasDaMeta)
	checklists.Get("/meta/:meta_id", checklistHandler.GetChecklistsPorMeta)
	checklists.Get("/:id/formulas", checklistHandler.GetFormulasDoChecklist)
	checklists.Get("/:id", checklistHandler.GetChecklist)
	checklists.Post("/", checklistHandler.CreateChecklist)
	checklists.Put("/:id", checklistHandler.UpdateChecklist)
	checklists.Delete("/:id", checklistHandler.DeleteChecklist)

	// Relatórios
	relatorios := app.Group("/relatorios", authMiddleware)
	relatorios.Get("/evolucao-meta/:meta_id", relatorioHandler.GetEvolucaoMeta)
	relatorios.Get("/formulas/evolucao/:pergunta_id", relatorioHandler.GetEvolucaoFormula)
	relatorios.Get("/formulas/:meta_id", relatorioHandler.GetFormulasDaMeta)
	relatorios.Get("/periodo", relatorioHandler.GetRelatorioPeriodo)
	relatorios.Get("/paciente/:paciente_id", relatorioHandler.GetRelatorioPaciente)
	relatorios.Get("/profissional/:profissional_id", relatorioHandler.GetRelatorioProfissional)
	relatorios.Get("/dashboard", relatorioHandler.GetDashboard)

	// Cadastros de apoio (somente leitura)
	app.Get("/pacientes", cadastroHandler.GetPacientes)
	app.Get("/profissionais", cadastroHandler.GetProfissionais)
	app.Get("/planos-terapeuticos", cadastroHandler.GetPlanos)
	app.Get("/planos-terapeuticos/:id", cadastroHandler.GetPlano)
}
