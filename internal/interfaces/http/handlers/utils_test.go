package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lgmendes/terapia-api/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executar(t *testing.T, handler fiber.Handler, caminho, rota string) (int, map[string]string) {
	t.Helper()
	app := fiber.New()
	app.Get(rota, handler)

	resp, err := app.Test(httptest.NewRequest("GET", caminho, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	return resp.StatusCode, payload
}

func TestRespondError(t *testing.T) {
	casos := []struct {
		nome       string
		err        error
		statusQuer int
		msgQuer    string
	}{
		{"validação vira 400", apperrors.NewValidation("campo obrigatório"), 400, "campo obrigatório"},
		{"conflito vira 400", apperrors.NewConflict("registro duplicado"), 400, "registro duplicado"},
		{"não encontrado vira 404", apperrors.NewNotFound("meta não encontrada"), 404, "meta não encontrada"},
		{"desconhecido vira 500 genérico", assert.AnError, 500, "Erro interno do servidor"},
	}
	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			status, payload := executar(t, func(c *fiber.Ctx) error {
				return respondError(c, caso.err)
			}, "/x", "/x")
			assert.Equal(t, caso.statusQuer, status)
			assert.Equal(t, caso.msgQuer, payload["erro"])
		})
	}
}

func TestParseID(t *testing.T) {
	handler := func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"id": strconv.Itoa(id)})
	}

	t.Run("id numérico passa", func(t *testing.T) {
		status, _ := executar(t, handler, "/recurso/42", "/recurso/:id")
		assert.Equal(t, 200, status)
	})

	t.Run("id não numérico vira 400", func(t *testing.T) {
		status, payload := executar(t, handler, "/recurso/abc", "/recurso/:id")
		assert.Equal(t, 400, status)
		assert.Equal(t, "ID inválido", payload["erro"])
	})

	t.Run("id zero vira 400", func(t *testing.T) {
		status, _ := executar(t, handler, "/recurso/0", "/recurso/:id")
		assert.Equal(t, 400, status)
	})
}
