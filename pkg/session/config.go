package session

import (
	"os"

	"github.com/spf13/viper"
)

// Config resolves where the session lives and which backend to talk to.
type Config interface {
	BasePath() string
	Server() string
}

// LoadConfig reads the .termin config file (current directory, or
// TERMIN_CONFIG_PATH) with TERMIN_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.termin.db")
	viper.SetDefault("server", "http://localhost:8000")
	viper.SetConfigName(".termin") // .yaml is implicit
	viper.SetEnvPrefix("TERMIN")
	viper.AutomaticEnv()

	if override := os.Getenv("TERMIN_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &fileConfig{
		Path:      viper.GetString("path"),
		ServerURL: viper.GetString("server"),
	}, nil
}

type fileConfig struct {
	Path      string `json:"path"`
	ServerURL string `json:"server"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Server() string {
	return f.ServerURL
}
