package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Backend   BackendConfig
	Session   SessionConfig
	Public    PublicConfig
	Dashboard DashboardConfig
	Inventory InventoryConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	CompanyName string // nombre comercial que aparece en facturas y PDF
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

// BackendConfig apunta a la API REST que es dueña de todos los datos.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig cookie sellada donde vive el token Bearer del usuario.
type SessionConfig struct {
	CookieName string
	Secret     string
	MaxAge     time.Duration
	Secure     bool
}

// PublicConfig límites de la página pública de facturas.
type PublicConfig struct {
	SubmitsPerMinute int
	Burst            int
}

// DashboardConfig intervalo de refresco de los paneles que hacen polling.
type DashboardConfig struct {
	RefreshSeconds int
}

// InventoryConfig umbral de reposición del resumen de inventario.
type InventoryConfig struct {
	LowStock int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_BASE_URL, SESSION_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

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

	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "isp-backoffice"),
			CompanyName: getString(v, "COMPANY_NAME", "MBA NET"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(getString(v, "BACKEND_BASE_URL", "http://127.0.0.1:8000"), "/"),
			Timeout: time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Session: SessionConfig{
			CookieName: getString(v, "SESSION_COOKIE", "isp_session"),
			Secret:     getString(v, "SESSION_SECRET", ""),
			MaxAge:     time.Duration(getInt(v, "SESSION_MAX_AGE_MINUTES", 60)) * time.Minute,
			Secure:     getBool(v, "SESSION_SECURE", false),
		},
		Public: PublicConfig{
			SubmitsPerMinute: getInt(v, "PUBLIC_RATE_PER_MINUTE", 6),
			Burst:            getInt(v, "PUBLIC_RATE_BURST", 3),
		},
		Dashboard: DashboardConfig{
			RefreshSeconds: getInt(v, "DASHBOARD_REFRESH_SECONDS", 60),
		},
		Inventory: InventoryConfig{
			LowStock: getInt(v, "INVENTORY_LOW_STOCK", 5),
		},
	}

	if cfg.Session.Secret == "" {
		if cfg.App.Env != "development" {
			return nil, fmt.Errorf("config: SESSION_SECRET es obligatorio fuera de development")
		}
		cfg.Session.Secret = "dev-only-session-secret"
	}

	return cfg, nil
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
			n, err := strconv.Atoi(v.GetString(key))
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(v.GetString(key))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
