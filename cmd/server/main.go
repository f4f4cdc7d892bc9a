package main

import (
	"context"
	"errors"
	"flag"

	"github.com/lintang-b-s/baybridges/pkg/http"
	"github.com/lintang-b-s/baybridges/pkg/http/usecases"
	"github.com/lintang-b-s/baybridges/pkg/logger"
	"github.com/lintang-b-s/baybridges/pkg/selector"
	"github.com/lintang-b-s/baybridges/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configDir    = flag.String("config", "./data/", "directory holding config.yaml")
	useRateLimit = flag.Bool("rate_limit", true, "enable the global request rate limiter")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(*configDir); err != nil {
		panic(err)
	}

	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	gs, err := selector.NewGreedySelectorFromConfig(logger)
	if err != nil {
		panic(err)
	}

	selectionService := usecases.NewSelectionService(logger, gs, viper.GetInt("MAX_BRIDGES"))

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger).Use(ctx, *useRateLimit, selectionService)

	signal := http.GracefulShutdown()

	logger.Info("Bay bridges selection server stopping", zap.String("signal", signal.String()))
	cleanup()
	if err := api.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server stopped with error", zap.Error(err))
	}
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
