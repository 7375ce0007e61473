package main

import (
	"github.com/gibberish-game/core/internal/app"
	"github.com/gibberish-game/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
