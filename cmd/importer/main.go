package main

import (
	"flag"

	"github.com/liftmap/spotquery/pkg/logger"
	"github.com/liftmap/spotquery/pkg/osmimport"
	"github.com/liftmap/spotquery/pkg/spot"
	"go.uber.org/zap"
)

var (
	inputFile  = flag.String("input", "./data/extract.osm.pbf", "openstreetmap pbf extract")
	outputFile = flag.String("output", "./data/spots.json.bz2", "spot dump to write (json or json.bz2)")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	parser := osmimport.NewParser(logger)
	spots, err := parser.Parse(*inputFile)
	if err != nil {
		logger.Fatal("parsing pbf extract", zap.Error(err))
	}

	if err := spot.WriteFile(*outputFile, spots); err != nil {
		logger.Fatal("writing spot dump", zap.Error(err))
	}

	logger.Info("spot dump written",
		zap.String("output", *outputFile), zap.Int("spots", len(spots)))
}
