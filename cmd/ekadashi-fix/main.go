package main

import (
	"flag"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	ekadashi "github.com/vedicdata/ekadashi-tools"
	"github.com/vedicdata/ekadashi-tools/config"
)

func main() {
	configPath := flag.String("config", "", "path to config.yml (falls back to EKADASHI_CONFIG, ./config.yml, then built-in defaults)")
	flag.Parse()

	_ = godotenv.Load()
	ekadashi.InitLogging()

	if err := config.LoadAppConfig(*configPath); err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := ekadashi.RunFix(config.Config.Fix); err != nil {
		log.Fatal().Err(err).Msg("fix")
	}
}
