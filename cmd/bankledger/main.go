package main

import (
	"log"

	"github.com/iurnickita/bankledger/internal/bank"
	"github.com/iurnickita/bankledger/internal/config"
	"github.com/iurnickita/bankledger/internal/console"
	"github.com/iurnickita/bankledger/internal/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.GetConfig()

	zaplog, err := logger.NewZapLog(cfg.Logger)
	if err != nil {
		return err
	}

	b := bank.NewBank()

	return console.Serve(cfg.Console, b, zaplog)
}
