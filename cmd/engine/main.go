package main

import (
	"context"
	"flag"

	"github.com/liftmap/spotquery/pkg/dispatch"
	"github.com/liftmap/spotquery/pkg/engine"
	"github.com/liftmap/spotquery/pkg/http"
	"github.com/liftmap/spotquery/pkg/http/usecases"
	"github.com/liftmap/spotquery/pkg/logger"
	"github.com/liftmap/spotquery/pkg/spot"
	"github.com/liftmap/spotquery/pkg/util"
	"go.uber.org/zap"
)

var (
	datasetFile  = flag.String("dataset", "./data/spots.json.bz2", "spot dataset served when a command carries no spots (json or json.bz2)")
	poolSize     = flag.Int("pool_size", 4, "number of engine instances behind the round-robin dispatch")
	queueSize    = flag.Int("queue_size", 64, "per-instance bounded command queue size")
	useRateLimit = flag.Bool("rate_limit", false, "rate limit the http api")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		logger.Warn("no config file found, using defaults", zap.Error(err))
	}

	spots, err := spot.LoadFile(*datasetFile)
	if err != nil {
		logger.Warn("no default dataset loaded, commands must carry their own spots",
			zap.String("dataset", *datasetFile), zap.Error(err))
	} else {
		logger.Info("default spot dataset loaded",
			zap.String("dataset", *datasetFile), zap.Int("spots", len(spots)))
	}

	queryEngine := engine.New(logger)
	pool := dispatch.NewPool(queryEngine, logger, *poolSize, *queueSize)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	pool.Run(ctx)

	queryService := usecases.NewQueryService(logger, pool, spots)

	api := http.NewServer(logger)
	api.Use(ctx, logger, *useRateLimit, queryService)

	signal := http.GracefulShutdown()

	logger.Info("Spotquery Engine Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
