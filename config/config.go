// Package config loads the environment-driven settings shared by the three
// demo servers. Values come from an optional dotenv file and the process
// environment; every key has a fixed fallback.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"

	"demoapps/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultEnvFile = ".env"

// Config is read once at startup and treated as read-only afterwards.
type Config struct {
	ListenAddr   string
	LogLevel     string
	GinMode      string
	CountFile    string
	DatabaseFile string
	Postgres     Postgres
}

// Postgres holds the connection target of the blog database.
type Postgres struct {
	User     string
	Password string //nolint:gosec // connection config
	Host     string
	Port     string
	Name     string
	SSLMode  string
}

// URL assembles the connection URL understood by lib/pq.
func (p Postgres) URL() string {
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(p.User, p.Password),
		Host:   net.JoinHostPort(p.Host, p.Port),
		Path:   "/" + p.Name,
	}
	if p.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {p.SSLMode}}.Encode()
	}
	return u.String()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen_addr", ":5000")
	v.SetDefault("log_level", "info")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("count_file", "/data/count.txt")
	v.SetDefault("database_file", "/data/mydatabase.db")

	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_host", "db")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_name", "blog_db")
	v.SetDefault("db_sslmode", "disable")
}

// Load reads envFile (".env" when empty) into the process environment and
// builds a Config. A missing default file is not an error; a missing
// explicitly named file is.
func Load(envFile string) (*Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return &Config{
		ListenAddr:   v.GetString("listen_addr"),
		LogLevel:     v.GetString("log_level"),
		GinMode:      v.GetString("gin_mode"),
		CountFile:    v.GetString("count_file"),
		DatabaseFile: v.GetString("database_file"),
		Postgres: Postgres{
			User:     v.GetString("db_user"),
			Password: v.GetString("db_password"),
			Host:     v.GetString("db_host"),
			Port:     v.GetString("db_port"),
			Name:     v.GetString("db_name"),
			SSLMode:  v.GetString("db_sslmode"),
		},
	}, nil
}

func loadEnvFile(envFile string) error {
	if envFile == "" {
		if err := godotenv.Load(defaultEnvFile); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Sugar.Debug("No .env file found, using environment variables from OS")
				return nil
			}
			return fmt.Errorf("load %s: %w", defaultEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("load env file %s: %w", envFile, err)
	}
	return nil
}
