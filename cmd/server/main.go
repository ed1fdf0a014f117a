// path: cmd/server/main.go
package main

import (
	"flag"
	"log"

	"quantum_shogi/internal/config"
	"quantum_shogi/internal/game"
	"quantum_shogi/internal/httpx"
)

func main() {
	envCfg, err := config.ParseEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	addr := flag.String("addr", envCfg.Addr, "listen address")
	settingsPath := flag.String("settings", envCfg.SettingsPath, "rule settings yaml (optional)")
	flag.Parse()

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		log.Fatalf("settings: %v", err)
	}
	log.Printf("settings: max_worlds=%d max_time_jump=%d hand_mode=%s time_policy=%s check_mode=%s",
		settings.MaxWorlds, settings.MaxTimeJump, settings.HandMode, settings.TimePolicy, settings.CheckMode)

	g := game.NewGame(settings)
	srv := httpx.NewServer(g)
	if err := srv.Listen(*addr); err != nil {
		log.Fatal(err)
	}
}
