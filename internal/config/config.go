// Package config loads server settings from a YAML file with
// environment-variable overrides on top, so deployments can configure
// the Azure OpenAI credentials without a file at all.
package config

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"

	"fit-trainer/internal/logger"
	"fit-trainer/internal/schema"

	gomysql "github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      logger.Config  `yaml:"log"`
	Azure    AzureConfig    `yaml:"azure"`
	Plan     PlanConfig     `yaml:"plan"`
	Database DatabaseConfig `yaml:"database"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// AzureConfig holds the generation endpoint settings. Any missing
// value makes every generation call fail fast before a network
// attempt; the server still starts so the profile and events
// endpoints keep working.
type AzureConfig struct {
	Endpoint   string `yaml:"endpoint"`
	Deployment string `yaml:"deployment"`
	APIVersion string `yaml:"api_version"`
	APIKey     string `yaml:"api_key"`
}

type PlanConfig struct {
	Days int `yaml:"days"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

func Load(configFile string) *Config {
	c := &Config{
		Server:   ServerConfig{Port: 3000},
		Log:      logger.Config{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		Plan:     PlanConfig{Days: schema.DefaultPlanDays},
		Database: DatabaseConfig{Port: 3306, Name: "fit_trainer"},
	}

	paths := []string{"etc/config-dev.yaml", "/etc/fit-trainer/config.yaml"}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			yaml.Unmarshal(data, c)
			break
		}
	}

	envOverride(&c.Azure.Endpoint, "AZURE_OPENAI_ENDPOINT")
	envOverride(&c.Azure.Deployment, "AZURE_OPENAI_DEPLOYMENT")
	envOverride(&c.Azure.APIVersion, "AZURE_OPENAI_API_VERSION")
	envOverride(&c.Azure.APIKey, "AZURE_OPENAI_API_KEY")
	envOverride(&c.Database.Host, "DB_HOST")
	envOverride(&c.Database.User, "DB_USER")
	envOverride(&c.Database.Password, "DB_PASS")
	envOverride(&c.Database.Name, "DB_NAME")
	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverrideInt(&c.Server.Port, "PORT")
	envOverrideInt(&c.Database.Port, "DB_PORT")
	envOverrideInt(&c.Plan.Days, "PLAN_DAYS")

	return c
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// Validate rejects settings that would only blow up mid-request.
func (c *Config) Validate() error {
	if err := schema.ValidatePlanDays(c.Plan.Days); err != nil {
		return fmt.Errorf("plan config: %w", err)
	}
	return nil
}

func (c *Config) OpenGormDB() (*gorm.DB, error) {
	cfg := gomysql.NewConfig()
	cfg.User = c.Database.User
	cfg.Passwd = c.Database.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port)
	cfg.DBName = c.Database.Name
	cfg.ParseTime = true

	connector, err := gomysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("create connector: %w", err)
	}
	sqlDB := sql.OpenDB(connector)
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return gorm.Open(mysql.New(mysql.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
