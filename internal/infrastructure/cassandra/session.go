package cassandra

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gocql/gocql"
	"github.com/jhoicas/Concesionaria-api/pkg/config"
	"github.com/jhoicas/Concesionaria-api/pkg/logger"
)

// ErrSessionClosed se devuelve al intentar cerrar una sesión ya cerrada.
var ErrSessionClosed = errors.New("sesión cassandra ya cerrada")

// ConnectionError fallo al establecer la sesión inicial con el clúster.
type ConnectionError struct {
	Hosts []string
	Err   error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("conectar a cassandra [%s]: %v", strings.Join(e.Hosts, ","), e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

var _ Querier = (*Session)(nil)

// Session es la única sesión compartida con el clúster. Se crea con Connect al arrancar,
// se inyecta en los repositorios y se cierra una sola vez con Shutdown.
type Session struct {
	gs      *gocql.Session
	closeFn func()
	once    sync.Once
}

// NewClusterConfig traduce la configuración de la app a la del driver.
// Timeouts, consistencia y reintentos quedan con los valores por defecto del driver.
func NewClusterConfig(cfg config.CassandraConfig) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Keyspace = cfg.Keyspace
	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(
		gocql.DCAwareRoundRobinPolicy(cfg.LocalDC),
	)
	if cfg.HasCredentials() {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.Username,
			Password: cfg.Password,
		}
	}
	if cfg.ConnectTimeout > 0 {
		cluster.ConnectTimeout = cfg.ConnectTimeout
	}
	return cluster
}

// Connect abre la sesión y bloquea hasta que esté lista o falle. Si ctx expira antes,
// devuelve su error y la sesión que llegue tarde se cierra.
func Connect(ctx context.Context, cfg config.CassandraConfig, log *logger.Logger) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ConnectionError{Hosts: cfg.Hosts, Err: err}
	}
	gocql.Logger = driverLogger{log: log.Named("gocql")}
	cluster := NewClusterConfig(cfg)

	type result struct {
		gs  *gocql.Session
		err error
	}
	ch := make(chan result, 1)
	go func() {
		gs, err := cluster.CreateSession()
		ch <- result{gs: gs, err: err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			return nil, &ConnectionError{Hosts: cfg.Hosts, Err: r.err}
		}
		log.Info().
			Strs("hosts", cfg.Hosts).
			Str("local_dc", cfg.LocalDC).
			Str("keyspace", cfg.Keyspace).
			Msg("conectado a cassandra")
		return newSession(r.gs), nil
	case <-ctx.Done():
		go func() {
			if r := <-ch; r.gs != nil {
				r.gs.Close()
			}
		}()
		return nil, &ConnectionError{Hosts: cfg.Hosts, Err: ctx.Err()}
	}
}

func newSession(gs *gocql.Session) *Session {
	return &Session{gs: gs, closeFn: gs.Close}
}

// Shutdown cierra la sesión y espera a que el driver termine o a que ctx expire.
// Las consultas en curso pueden fallar a partir de este punto.
func (s *Session) Shutdown(ctx context.Context) error {
	first := false
	s.once.Do(func() { first = true })
	if !first {
		return ErrSessionClosed
	}

	done := make(chan struct{})
	go func() {
		s.closeFn()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("cerrar sesión cassandra: %w", ctx.Err())
	}
}

// Exec implementa Querier.
func (s *Session) Exec(ctx context.Context, stmt string, values ...any) error {
	q := s.gs.Query(stmt, values...).WithContext(ctx)
	defer q.Release()
	return q.Exec()
}

// ExecCAS implementa Querier.
func (s *Session) ExecCAS(ctx context.Context, stmt string, values ...any) (bool, error) {
	q := s.gs.Query(stmt, values...).WithContext(ctx)
	defer q.Release()
	return q.MapScanCAS(map[string]any{})
}

// Select implementa Querier.
func (s *Session) Select(ctx context.Context, stmt string, values ...any) ([]map[string]any, error) {
	q := s.gs.Query(stmt, values...).WithContext(ctx)
	defer q.Release()
	iter := q.Iter()
	rows, err := iter.SliceMap()
	if closeErr := iter.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// driverLogger adapta el StdLogger de gocql a zerolog.
type driverLogger struct {
	log *logger.Logger
}

func (l driverLogger) Print(v ...any) {
	l.log.Warn().Msg(strings.TrimSpace(fmt.Sprint(v...)))
}

func (l driverLogger) Printf(format string, v ...any) {
	l.log.Warn().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l driverLogger) Println(v ...any) {
	l.log.Warn().Msg(strings.TrimSpace(fmt.Sprintln(v...)))
}
