package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Modos de comparación de contraseñas soportados.
const (
	PasswordModePlain  = "plain"
	PasswordModeBcrypt = "bcrypt"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
// Se fija al arrancar; no se recarga en caliente.
type Config struct {
	App       AppConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Cassandra CassandraConfig
	Auth      AuthConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env             string // development, staging, production
	Name            string
	ShutdownTimeout time.Duration
}

// LogConfig nivel y destino opcional (archivo rotado) del logger.
type LogConfig struct {
	Level string
	File  string // vacío = solo stdout
}

// CassandraConfig puntos de contacto, datacenter local y keyspace del clúster.
type CassandraConfig struct {
	Hosts          []string
	LocalDC        string
	Keyspace       string
	Username       string
	Password       string
	ConnectTimeout time.Duration // 0 = valor por defecto del driver
}

// HasCredentials indica si se debe configurar autenticación por usuario/contraseña.
func (c CassandraConfig) HasCredentials() bool {
	return c.Username != ""
}

// AuthConfig configuración del chequeo de credenciales de empleados.
type AuthConfig struct {
	PasswordMode string // plain | bcrypt
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, CASSANDRA_HOSTS, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:             getString(v, "APP_ENV", "development"),
			Name:            getString(v, "APP_NAME", "concesionaria-api"),
			ShutdownTimeout: time.Duration(getInt(v, "SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
			File:  getString(v, "LOG_FILE", ""),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Cassandra: CassandraConfig{
			Hosts:          splitList(getString(v, "CASSANDRA_HOSTS", "127.0.0.1")),
			LocalDC:        getString(v, "CASSANDRA_LOCAL_DC", "dc1"),
			Keyspace:       getString(v, "CASSANDRA_KEYSPACE", "basededatos"),
			Username:       getString(v, "CASSANDRA_USERNAME", ""),
			Password:       getString(v, "CASSANDRA_PASSWORD", ""),
			ConnectTimeout: time.Duration(getInt(v, "CASSANDRA_CONNECT_TIMEOUT_SECONDS", 0)) * time.Second,
		},
		Auth: AuthConfig{
			PasswordMode: strings.ToLower(getString(v, "AUTH_PASSWORD_MODE", PasswordModePlain)),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Cassandra.Hosts) == 0 {
		return errors.New("CASSANDRA_HOSTS requiere al menos un punto de contacto")
	}
	if c.Cassandra.Keyspace == "" {
		return errors.New("CASSANDRA_KEYSPACE es requerido")
	}
	switch c.Auth.PasswordMode {
	case PasswordModePlain, PasswordModeBcrypt:
	default:
		return fmt.Errorf("AUTH_PASSWORD_MODE desconocido: %q", c.Auth.PasswordMode)
	}
	return nil
}

// splitList separa una lista "a, b,c" descartando elementos vacíos.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
