package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	SpotifyID          string
	SpotifySecret      string
	SpotifyRedirectURL string `default:"http://localhost:8888/callback"`

	DataDir    string `default:"data"`
	ListenAddr string `default:":8080"`
}

func ProvideConfig() Config {
	var cfg Config
	err := envconfig.Process("libex", &cfg)
	if err != nil {
		log.Fatal(err.Error())
	}
	return cfg
}

var Options = ProvideConfig
