package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

type DBConfig struct {
	Type   string `yaml:"type" json:"type"`
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Name   string `yaml:"name" json:"name"`
	User   string `yaml:"user" json:"user"`
	Passwd string `yaml:"passwd" json:"passwd"`
	Debug  bool   `yaml:"debug" json:"debug"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig    `yaml:"system" json:"system"`
	Web      WebConfig    `yaml:"web" json:"web"`
	Database DBConfig     `yaml:"database" json:"database"`
	Logger   LoggerConfig `yaml:"logger" json:"logger"`
}

// UploadDir is the directory uploaded product images are stored in and
// served from, under the workdir.
func (c *AppConfig) UploadDir() string {
	return filepath.Join(c.System.Workdir, "uploads")
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "Boutique",
		Location: "Africa/Dakar",
		Workdir:  "/var/boutique",
		Debug:    true,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 8000,
	},
	Database: DBConfig{
		Type: "sqlite",
		Name: "Ecommerce.db",
	},
	Logger: LoggerConfig{
		Mode:       "development",
		FileEnable: false,
		Filename:   "/var/boutique/boutique.log",
	},
}

func setEnvValue(name string, f func(v string)) {
	if v, ok := os.LookupEnv(name); ok {
		f(v)
	}
}

// LoadConfig reads the YAML configuration file when it exists and applies
// BOUTIQUE_* environment overrides on top. Missing file falls back to
// defaults so the server can start with zero configuration.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	setEnvValue("BOUTIQUE_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("BOUTIQUE_SYSTEM_DEBUG", func(v string) { cfg.System.Debug = cast.ToBool(v) })
	setEnvValue("BOUTIQUE_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvValue("BOUTIQUE_WEB_PORT", func(v string) { cfg.Web.Port = cast.ToInt(v) })
	setEnvValue("BOUTIQUE_DB_TYPE", func(v string) { cfg.Database.Type = v })
	setEnvValue("BOUTIQUE_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvValue("BOUTIQUE_DB_PORT", func(v string) { cfg.Database.Port = cast.ToInt(v) })
	setEnvValue("BOUTIQUE_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("BOUTIQUE_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("BOUTIQUE_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvValue("BOUTIQUE_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })
	setEnvValue("BOUTIQUE_LOGGER_FILE_ENABLE", func(v string) { cfg.Logger.FileEnable = cast.ToBool(v) })
	setEnvValue("BOUTIQUE_LOGGER_FILENAME", func(v string) { cfg.Logger.Filename = v })

	return cfg
}
