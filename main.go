package main

import (
	"flag"
	"net/http"

	"lostandfound/global"
	"lostandfound/initialize"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to optional yaml config file")
		addr       = flag.String("addr", "", "Listen address override")
	)
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}

	listen := app.Cfg.ListenAddr
	if *addr != "" {
		listen = *addr
	}

	global.Logger.Info().Str("addr", listen).Msg("listening")
	if err := http.ListenAndServe(listen, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("server failed")
	}
}
