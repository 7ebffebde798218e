package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"release-notes-webhook/internal/entities"
)

// Storage backend names.
const (
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	DevOps   DevOpsConfig   `mapstructure:"devops"`
	Release  ReleaseConfig  `mapstructure:"release"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	SQLite   SQLiteConfig   `mapstructure:"sqlite"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("%w: server.port is required", entities.ErrConfiguration)
	}
	if err := c.DevOps.Validate(); err != nil {
		return err
	}
	if err := c.Release.Validate(); err != nil {
		return err
	}

	switch c.Storage.Backend {
	case StoragePostgres:
		if c.Postgres.User == "" || c.Postgres.Password == "" || c.Postgres.DBName == "" {
			return fmt.Errorf("%w: postgres credentials are required", entities.ErrConfiguration)
		}
		if c.Postgres.Host == "" {
			return fmt.Errorf("%w: postgres.host is required", entities.ErrConfiguration)
		}
	case StorageSQLite:
		if strings.TrimSpace(c.SQLite.Path) == "" {
			return fmt.Errorf("%w: sqlite.path is required", entities.ErrConfiguration)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("%w: unknown storage.backend %q", entities.ErrConfiguration, c.Storage.Backend)
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// DevOpsConfig describes the work-tracking and source-control organization.
type DevOpsConfig struct {
	OrganizationURL string `mapstructure:"organization_url"`
	ProjectName     string `mapstructure:"project_name"`
	RepoName        string `mapstructure:"repo_name"`
	Username        string `mapstructure:"username"`
	AccessToken     string `mapstructure:"access_token"`
}

// Validate checks that the organization can be reached and addressed.
func (d DevOpsConfig) Validate() error {
	if d.OrganizationURL == "" {
		return fmt.Errorf("%w: devops.organization_url is required", entities.ErrConfiguration)
	}
	u, err := url.Parse(d.OrganizationURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: devops.organization_url %q is not an absolute URL", entities.ErrConfiguration, d.OrganizationURL)
	}
	if d.ProjectName == "" {
		return fmt.Errorf("%w: devops.project_name is required", entities.ErrConfiguration)
	}
	if d.RepoName == "" {
		return fmt.Errorf("%w: devops.repo_name is required", entities.ErrConfiguration)
	}
	if d.AccessToken == "" {
		return fmt.Errorf("%w: devops.access_token is required", entities.ErrConfiguration)
	}
	return nil
}

// ReleaseConfig holds the fixed knobs of the release-notes pipeline.
type ReleaseConfig struct {
	LookbackDays int           `mapstructure:"lookback_days"`
	AreaPath     string        `mapstructure:"area_path"`
	TargetBranch string        `mapstructure:"target_branch"`
	Container    string        `mapstructure:"container"`
	LatestKey    string        `mapstructure:"latest_key"`
	RunTimeout   time.Duration `mapstructure:"run_timeout"`
}

// Validate rejects settings the pipeline cannot run with.
func (r ReleaseConfig) Validate() error {
	if r.LookbackDays < 0 {
		return fmt.Errorf("%w: release.lookback_days must be non-negative, got %d", entities.ErrConfiguration, r.LookbackDays)
	}
	if r.AreaPath == "" {
		return fmt.Errorf("%w: release.area_path is required", entities.ErrConfiguration)
	}
	if r.TargetBranch == "" {
		return fmt.Errorf("%w: release.target_branch is required", entities.ErrConfiguration)
	}
	if r.LatestKey == "" {
		return fmt.Errorf("%w: release.latest_key is required", entities.ErrConfiguration)
	}
	return nil
}

// StorageConfig selects the blob store backend.
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
}

// PostgresConfig describes database connection parameters.
type PostgresConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	DBName         string        `mapstructure:"db_name"`
	SSLMode        string        `mapstructure:"ssl_mode"`
	MigrationsDir  string        `mapstructure:"migrations_dir"`
	MigrateTimeout time.Duration `mapstructure:"migrate_timeout"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
	MaxConns       int32         `mapstructure:"max_conns"`
	MinConns       int32         `mapstructure:"min_conns"`
}

// DSN returns a Postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

// SQLiteConfig describes the single-instance file store.
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}
