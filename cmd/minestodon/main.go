package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/TheLukeGuy/minestodon/mcnet"
	"github.com/TheLukeGuy/minestodon/registry"
	"go.uber.org/zap"
)

func main() {
	addr := flag.String("addr", "0.0.0.0:25565", "address to listen on")
	dev := flag.Bool("dev", false, "use a development logger config")
	flag.Parse()

	logger, err := buildLogger(*dev)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	registry.InitAll()

	srv, err := mcnet.NewServer(*addr)
	if err != nil {
		logger.Fatal("failed to start listening", zap.Error(err))
	}
	logger.Info("listening", zap.String("addr", srv.Addr().String()))

	if err := srv.Serve(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func buildLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
