package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseData(t *testing.T) {
	t.Run("aceita o formato YYYY-MM-DD", func(t *testing.T) {
		data, err := ParseData("2025-03-15")
		require.NoError(t, err)
		assert.Equal(t, "2025-03-15", data.String())
	})

	t.Run("rejeita outros formatos", func(t *testing.T) {
		for _, entrada := range []string{"15/03/2025", "2025-3-15", "2025-03-15T10:00:00", "amanhã", ""} {
			_, err := ParseData(entrada)
			assert.Error(t, err, entrada)
			assert.Contains(t, err.Error(), "YYYY-MM-DD")
		}
	})
}

func TestDataJSON(t *testing.T) {
	t.Run("serializa como string de data", func(t *testing.T) {
		data, err := ParseData("2025-03-15")
		require.NoError(t, err)
		b, err := json.Marshal(data)
		require.NoError(t, err)
		assert.Equal(t, `"2025-03-15"`, string(b))
	})

	t.Run("desserializa de string de data", func(t *testing.T) {
		var data Data
		require.NoError(t, json.Unmarshal([]byte(`"2025-12-31"`), &data))
		assert.Equal(t, "2025-12-31", data.String())
	})

	t.Run("null vira data zero", func(t *testing.T) {
		var data Data
		require.NoError(t, json.Unmarshal([]byte(`null`), &data))
		assert.True(t, data.IsZero())
	})
}

func TestNovaDataTruncaHora(t *testing.T) {
	data := NovaData(time.Date(2025, 3, 15, 23, 59, 58, 0, time.UTC))
	assert.Equal(t, "2025-03-15", data.String())
}

func TestDataScan(t *testing.T) {
	t.Run("aceita time.Time", func(t *testing.T) {
		var data Data
		require.NoError(t, data.Scan(time.Date(2025, 3, 15, 14, 0, 0, 0, time.UTC)))
		assert.Equal(t, "2025-03-15", data.String())
	})

	t.Run("aceita string", func(t *testing.T) {
		var data Data
		require.NoError(t, data.Scan("2025-03-15"))
		assert.Equal(t, "2025-03-15", data.String())
	})

	t.Run("rejeita tipos desconhecidos", func(t *testing.T) {
		var data Data
		assert.Error(t, data.Scan(42))
	})
}
