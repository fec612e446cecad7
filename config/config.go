package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DatabaseURL string

	SpotifyID     string
	SpotifySecret string

	ListenAddr string `default:":8080"`
}

func ProvideConfig() Config {
	var cfg Config
	err := envconfig.Process("moodscope", &cfg)
	if err != nil {
		log.Fatal(err.Error())
	}
	return cfg
}

var Options = ProvideConfig
