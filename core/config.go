package core

import (
	"log"
	"net"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	Config struct {
		AppName         string           `mapstructure:"app_name"`
		Build           string           `mapstructure:"build"`
		Env             string           `mapstructure:"-"`
		Debug           bool             `mapstructure:"debug"`
		TestMode        bool             `mapstructure:"test_mode"`
		SecretKey       string           `mapstructure:"secret_key"`
		FrontendBaseURL string           `mapstructure:"frontend_base_url"`
		FromEmail       string           `mapstructure:"default_from_email"`
		SendgridAPIKey  string           `mapstructure:"sendgrid_api_key"`
		RollbarToken    string           `mapstructure:"rollbar_token"`
		Server          ServerConfig     `mapstructure:"server"`
		Database        DatabaseConfig   `mapstructure:"database"`
		Attendance      AttendanceConfig `mapstructure:"attendance"`
	}

	ServerConfig struct {
		Host                      string        `mapstructure:"host"`
		Addr                      string        `mapstructure:"addr"`
		DebugAddr                 string        `mapstructure:"debug_addr"`
		ShutdownTimeout           time.Duration `mapstructure:"shutdown_timeout"`
		JWTExpirationDelta        time.Duration `mapstructure:"jwt_expiration_delta"`
		JWTRefreshExpirationDelta time.Duration `mapstructure:"jwt_refresh_expiration_delta"`
		DisableReqLogs            bool          `mapstructure:"disable_req_logs"`
	}

	DatabaseConfig struct {
		Engine        string `mapstructure:"engine"` // memory | postgres
		Host          string `mapstructure:"host"`
		Port          string `mapstructure:"port"`
		Name          string `mapstructure:"name"`
		User          string `mapstructure:"user"`
		Password      string `mapstructure:"password"`
		AdminUser     string `mapstructure:"admin_user"`
		AdminPassword string `mapstructure:"admin_password"`
		DisableTLS    bool   `mapstructure:"disable_tls"`
	}

	AttendanceConfig struct {
		HoursPerSession float64 `mapstructure:"hours_per_session"`
	}
)

const (
	EngineMemory   = "memory"
	EnginePostgres = "postgres"
)

func (dbc DatabaseConfig) Address() string {
	return net.JoinHostPort(dbc.Host, dbc.Port)
}

func (c *Config) DefaultFromEmail() mail.Address {
	addr, err := mail.ParseAddress(c.FromEmail)
	if err != nil {
		return mail.Address{Name: c.AppName, Address: c.FromEmail}
	}
	if addr.Name == "" {
		addr.Name = c.AppName
	}
	return *addr
}

// NewConfig loads the configuration of the environment named by $ENV and dies on failure.
func NewConfig() *Config {
	conf, err := LoadConfig(os.Getenv("ENV"))
	if err != nil {
		log.Fatalf("%+v", err)
	}
	return conf
}

// LoadConfig reads defaults, the optional `config/.env.<env>` file and the environment variables
// prefixed with the upper-cased env name (eg. DEV_SERVER_ADDR).
func LoadConfig(env string) (*Config, error) {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	v.SetDefault("app_name", "Darasa")
	v.SetDefault("build", "develop")
	v.SetDefault("debug", true)
	v.SetDefault("test_mode", false)
	v.SetDefault("secret_key", "tu3e-wq)znb$+x7=dr&uoxh9(k!x)#*c2(#yg4h^$cegm8pbz")
	v.SetDefault("frontend_base_url", "http://localhost:8080")
	v.SetDefault("default_from_email", "noreply@localhost")
	v.SetDefault("sendgrid_api_key", "")
	v.SetDefault("rollbar_token", "")

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.addr", ":8000")
	v.SetDefault("server.debug_addr", ":4000")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.jwt_expiration_delta", 7*24*time.Hour)
	v.SetDefault("server.jwt_refresh_expiration_delta", 4*time.Hour)
	v.SetDefault("server.disable_req_logs", false)

	v.SetDefault("database.engine", EngineMemory)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.name", "darasa")
	v.SetDefault("database.user", "darasa")
	v.SetDefault("database.password", "")
	v.SetDefault("database.admin_user", "postgres")
	v.SetDefault("database.admin_password", "")
	v.SetDefault("database.disable_tls", true)

	v.SetDefault("attendance.hours_per_session", 1.5)

	env = strings.ToUpper(strings.TrimSpace(env)) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("test_mode", true)
	case "QA", "PROD":
		v.SetDefault("debug", false)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(configDir(), ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err = godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "stat %s", dotEnvPath)
	}
	v.AutomaticEnv()

	conf := new(Config)
	if err := v.Unmarshal(conf); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	conf.Env = env
	return conf, nil
}

func configDir() string {
	if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		return dir
	}
	return "config"
}
