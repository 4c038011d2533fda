package main

import (
	"os"

	"github.com/limbo/unbroken/internal/service"
	"github.com/limbo/unbroken/pkg/cleanup"
	"github.com/limbo/unbroken/pkg/config"
	"github.com/limbo/unbroken/pkg/logging"
)

func main() {
	cfg := config.New()
	logging.Init(logging.Options{
		Level: cfg.GetStringOr("LOG_LEVEL", "warn"),
		Path:  cfg.GetString("LOG_PATH"),
		Text:  true,
	})
	service.InitValidator()
	code := 0
	if err := newRootCmd(cfg).Execute(); err != nil {
		printErr(os.Stderr, err)
		code = 1
	}
	cleanup.CleanUp()
	os.Exit(code)
}
