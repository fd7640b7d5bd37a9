package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Modos de fonte de dados
const (
	ProviderModeStatic   = "static"
	ProviderModeRemote   = "remote"
	ProviderModePostgres = "postgres"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Provider    Provider    `mapstructure:",squash"`
	Remote      Remote      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Cache       Cache       `mapstructure:",squash"`
	Sales       Sales       `mapstructure:",squash"`
	CacheReport CacheReport `mapstructure:",squash"`
}

type App struct {
	LogLevel       string   `mapstructure:"log_level"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Provider struct {
	Mode string `mapstructure:"provider_mode"`
}

type Remote struct {
	BaseURL string        `mapstructure:"remote_base_url"`
	Timeout time.Duration `mapstructure:"remote_timeout"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Cache struct {
	// Janela para stats, série de vendas e categorias
	StaticStaleTime time.Duration `mapstructure:"cache_static_stale_time"`
	// Janela para a lista de pedidos, a visão mais sensível a filtros
	OrdersStaleTime time.Duration `mapstructure:"cache_orders_stale_time"`
}

type Sales struct {
	ReferenceYear int `mapstructure:"sales_reference_year"`
}

type CacheReport struct {
	CronSchedule string `mapstructure:"cache_report_cron"`
	Enabled      bool   `mapstructure:"cache_report_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("PROVIDER_MODE", ProviderModeStatic)

	viper.SetDefault("REMOTE_BASE_URL", "http://localhost:3001")
	viper.SetDefault("REMOTE_TIMEOUT", "10s")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("CACHE_STATIC_STALE_TIME", "5m")
	viper.SetDefault("CACHE_ORDERS_STALE_TIME", "2m")

	viper.SetDefault("SALES_REFERENCE_YEAR", 2024)

	viper.SetDefault("CACHE_REPORT_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("CACHE_REPORT_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = config.Database.BuildDSN()

	return config, nil
}

func (d Database) BuildDSN() string {
	return d.Driver + "://" + d.User + ":" + d.Password + "@" + d.URL
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
