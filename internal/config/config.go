package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	// BackendMemory keeps everything in process memory. Useful for
	// development and tests; all state is lost on exit.
	BackendMemory = "memory"
)

type Config struct {
	Server  ServerConfig  `yaml:"server" json:"server"`
	Storage StorageConfig `yaml:"storage" json:"storage"`
	Balance Balance       `yaml:"balance" json:"balance"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"`
	// CORSOrigins lists browser origins allowed to call the API. Empty
	// means no CORS headers are emitted. "*" allows any origin.
	CORSOrigins []string `yaml:"cors_origins" json:"cors_origins"`
}

type StorageConfig struct {
	// Backend selects the persistence implementation: "file" or "sqlite".
	Backend string `yaml:"backend" json:"backend"`
	// DataDir holds the JSON collections for the file backend and is the
	// default parent of the sqlite database file.
	DataDir    string `yaml:"data_dir" json:"data_dir"`
	SQLitePath string `yaml:"sqlite_path" json:"sqlite_path"`
}

func Default() *Config {
	return &Config{
		Server:  ServerConfig{Addr: ":8787"},
		Storage: StorageConfig{Backend: BackendFile, DataDir: "data", SQLitePath: "data/disciplineforge.db"},
		Balance: DefaultBalance(),
	}
}

// Load reads the yaml config at path. A missing file is not an error; it
// yields the defaults so the server can run with zero setup.
func Load(path string) (*Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		cfg.Server.Addr = ":8787"
	}
	if strings.TrimSpace(cfg.Storage.DataDir) == "" {
		cfg.Storage.DataDir = "data"
	}
	if strings.TrimSpace(cfg.Storage.SQLitePath) == "" {
		cfg.Storage.SQLitePath = "data/disciplineforge.db"
	}
	switch cfg.Storage.Backend {
	case "", BackendFile:
		cfg.Storage.Backend = BackendFile
	case BackendSQLite, BackendMemory:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	cfg.Balance = cfg.Balance.normalize()

	return cfg, nil
}
