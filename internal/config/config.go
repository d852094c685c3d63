// Package config resolves runtime settings for the commands. Values are
// plain data threaded through function calls; nothing here is consulted
// from library code at runtime.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Data source
	SheetURL string
	College  string // website/company name, College field fallback

	// HTTP
	FetchTimeout time.Duration

	// Server
	ListenAddr     string
	AllowedOrigins []string

	// SFTP archive
	SFTPHost                  string
	SFTPPort                  int
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPInsecureIgnoreHostKey bool
}

// fileConfig is the optional YAML config file shape. Env vars win over it.
type fileConfig struct {
	SheetURL       string   `yaml:"sheet_url"`
	College        string   `yaml:"college"`
	FetchTimeout   string   `yaml:"fetch_timeout"`
	ListenAddr     string   `yaml:"listen_addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`

	SFTP struct {
		Host               string `yaml:"host"`
		Port               int    `yaml:"port"`
		User               string `yaml:"user"`
		Pass               string `yaml:"pass"`
		Dir                string `yaml:"dir"`
		InsecureSkipVerify bool   `yaml:"insecure_skip_verify"`
	} `yaml:"sftp"`
}

// Load resolves configuration: defaults, then the YAML file at path (when
// non-empty), then environment variables. A .env file in the working
// directory is folded into the environment first when present.
func Load(path string) (Config, error) {
	// Missing .env is the normal case outside dev.
	_ = godotenv.Load()

	cfg := Config{
		College:      "Certificate Portal",
		FetchTimeout: 60 * time.Second,
		ListenAddr:   ":8080",
		SFTPPort:     22,
		SFTPDir:      "/snapshots",
	}

	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	cfg.SheetURL = getenv("CERT_SHEET_URL", cfg.SheetURL)
	cfg.College = getenv("CERT_COLLEGE_NAME", cfg.College)
	cfg.ListenAddr = getenv("CERT_LISTEN_ADDR", cfg.ListenAddr)
	if v := os.Getenv("CERT_FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CERT_FETCH_TIMEOUT %q: %w", v, err)
		}
		cfg.FetchTimeout = d
	}

	cfg.SFTPHost = getenv("SFTP_HOST", cfg.SFTPHost)
	cfg.SFTPPort = getenvInt("SFTP_PORT", cfg.SFTPPort)
	cfg.SFTPUser = getenv("SFTP_USER", cfg.SFTPUser)
	cfg.SFTPPass = getenv("SFTP_PASS", cfg.SFTPPass)
	cfg.SFTPDir = getenv("SFTP_DIR", cfg.SFTPDir)
	cfg.SFTPInsecureIgnoreHostKey = getenvBool("SFTP_INSECURE_IGNORE_HOSTKEY", cfg.SFTPInsecureIgnoreHostKey)

	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.SheetURL != "" {
		cfg.SheetURL = fc.SheetURL
	}
	if fc.College != "" {
		cfg.College = fc.College
	}
	if fc.FetchTimeout != "" {
		d, err := time.ParseDuration(fc.FetchTimeout)
		if err != nil {
			return fmt.Errorf("invalid fetch_timeout %q in %s: %w", fc.FetchTimeout, path, err)
		}
		cfg.FetchTimeout = d
	}
	if fc.ListenAddr != "" {
		cfg.ListenAddr = fc.ListenAddr
	}
	if len(fc.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = fc.AllowedOrigins
	}
	if fc.SFTP.Host != "" {
		cfg.SFTPHost = fc.SFTP.Host
	}
	if fc.SFTP.Port > 0 {
		cfg.SFTPPort = fc.SFTP.Port
	}
	if fc.SFTP.User != "" {
		cfg.SFTPUser = fc.SFTP.User
	}
	if fc.SFTP.Pass != "" {
		cfg.SFTPPass = fc.SFTP.Pass
	}
	if fc.SFTP.Dir != "" {
		cfg.SFTPDir = fc.SFTP.Dir
	}
	if fc.SFTP.InsecureSkipVerify {
		cfg.SFTPInsecureIgnoreHostKey = true
	}
	return nil
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
