package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Concesionaria-api/pkg/logger"
)

func TestNamed_AgregaComponent(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info").Named("cassandra")
	log.Info().Str("keyspace", "basededatos").Msg("conectado")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "cassandra", entry["component"])
	assert.Equal(t, "basededatos", entry["keyspace"])
	assert.Equal(t, "conectado", entry["message"])
}

func TestNivel_FiltraDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "warn")
	log.Debug().Msg("no debe aparecer")
	log.Info().Msg("tampoco")
	assert.Empty(t, buf.String())

	log.Warn().Msg("sí")
	assert.Contains(t, buf.String(), "sí")
}
