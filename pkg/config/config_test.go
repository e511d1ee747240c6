package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, []string{"127.0.0.1"}, cfg.Cassandra.Hosts)
	assert.Equal(t, "dc1", cfg.Cassandra.LocalDC)
	assert.Equal(t, "basededatos", cfg.Cassandra.Keyspace)
	assert.False(t, cfg.Cassandra.HasCredentials())
	assert.Equal(t, time.Duration(0), cfg.Cassandra.ConnectTimeout)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.Equal(t, PasswordModePlain, cfg.Auth.PasswordMode)
	assert.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("CASSANDRA_HOSTS", " 192.168.18.173, 192.168.18.174 ,")
	v.Set("CASSANDRA_LOCAL_DC", "dc2")
	v.Set("CASSANDRA_USERNAME", "gateway")
	v.Set("CASSANDRA_CONNECT_TIMEOUT_SECONDS", "5")
	v.Set("HTTP_PORT", "8081")
	v.Set("AUTH_PASSWORD_MODE", "BCRYPT")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, []string{"192.168.18.173", "192.168.18.174"}, cfg.Cassandra.Hosts)
	assert.Equal(t, "dc2", cfg.Cassandra.LocalDC)
	assert.True(t, cfg.Cassandra.HasCredentials())
	assert.Equal(t, 5*time.Second, cfg.Cassandra.ConnectTimeout)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, PasswordModeBcrypt, cfg.Auth.PasswordMode)
}

func TestFromViper_SinHosts_RetornaError(t *testing.T) {
	v := viper.New()
	v.Set("CASSANDRA_HOSTS", " , ")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_ModoPasswordDesconocido_RetornaError(t *testing.T) {
	v := viper.New()
	v.Set("AUTH_PASSWORD_MODE", "md5")
	_, err := fromViper(v)
	assert.Error(t, err)
}
