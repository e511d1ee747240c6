package cassandra

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Concesionaria-api/pkg/config"
	"github.com/jhoicas/Concesionaria-api/pkg/logger"
)

func TestNewClusterConfig(t *testing.T) {
	cfg := config.CassandraConfig{
		Hosts:          []string{"192.168.18.173", "192.168.18.174"},
		LocalDC:        "dc1",
		Keyspace:       "basededatos",
		Username:       "gateway",
		Password:       "s3cret",
		ConnectTimeout: 3 * time.Second,
	}
	cluster := NewClusterConfig(cfg)

	assert.Equal(t, cfg.Hosts, cluster.Hosts)
	assert.Equal(t, "basededatos", cluster.Keyspace)
	assert.Equal(t, 3*time.Second, cluster.ConnectTimeout)
	assert.NotNil(t, cluster.PoolConfig.HostSelectionPolicy)
	assert.Equal(t, gocql.PasswordAuthenticator{Username: "gateway", Password: "s3cret"}, cluster.Authenticator)
}

func TestNewClusterConfig_ValoresPorDefectoDelDriver(t *testing.T) {
	def := gocql.NewCluster("127.0.0.1")
	cluster := NewClusterConfig(config.CassandraConfig{Hosts: []string{"127.0.0.1"}, LocalDC: "dc1", Keyspace: "ks"})

	assert.Nil(t, cluster.Authenticator)
	assert.Equal(t, def.ConnectTimeout, cluster.ConnectTimeout)
	assert.Equal(t, def.Timeout, cluster.Timeout)
	assert.Equal(t, def.Consistency, cluster.Consistency)
}

func TestSession_Shutdown_UnaSolaVez(t *testing.T) {
	closes := 0
	s := &Session{closeFn: func() { closes++ }}

	require.NoError(t, s.Shutdown(context.Background()))
	assert.ErrorIs(t, s.Shutdown(context.Background()), ErrSessionClosed)
	assert.Equal(t, 1, closes)
}

func TestSession_Shutdown_Timeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	s := &Session{closeFn: func() { <-release }}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := s.Shutdown(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConnectionError(t *testing.T) {
	cause := errors.New("no connections were made")
	err := &ConnectionError{Hosts: []string{"a", "b"}, Err: cause}
	assert.Contains(t, err.Error(), "a,b")
	assert.ErrorIs(t, err, cause)
}

// Puerto 1 en loopback: nadie escucha, la conexión se rechaza de inmediato.
func unreachableConfig() config.CassandraConfig {
	return config.CassandraConfig{
		Hosts:          []string{"127.0.0.1:1"},
		LocalDC:        "dc1",
		Keyspace:       "basededatos",
		ConnectTimeout: time.Second,
	}
}

func TestConnect_HostInalcanzable_ConnectionError(t *testing.T) {
	session, err := Connect(context.Background(), unreachableConfig(), logger.Nop())

	assert.Nil(t, session)
	require.Error(t, err)
	var connErr *ConnectionError
	require.True(t, errors.As(err, &connErr))
	assert.Equal(t, []string{"127.0.0.1:1"}, connErr.Hosts)
}

func TestConnect_ContextoCancelado_ConnectionError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	session, err := Connect(ctx, unreachableConfig(), logger.Nop())

	assert.Nil(t, session)
	var connErr *ConnectionError
	require.True(t, errors.As(err, &connErr))
	assert.ErrorIs(t, err, context.Canceled)
}
