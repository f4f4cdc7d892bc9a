package main

import (
	"flag"
	"os"

	"github.com/lintang-b-s/baybridges/pkg/ingest"
	"github.com/lintang-b-s/baybridges/pkg/logger"
	"github.com/lintang-b-s/baybridges/pkg/output"
	"github.com/lintang-b-s/baybridges/pkg/selector"
	"github.com/lintang-b-s/baybridges/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	inputFile     = flag.String("input", "", "bridge file, one \"id: ([lat, lon], [lat, lon])\" per line (.bz2 accepted)")
	outputFormat  = flag.String("format", "text", "output format: text (one id per line) or json")
	configDir     = flag.String("config", "./data/", "directory holding config.yaml")
	crossingModel = flag.String("crossing_model", "", "planar or geodesic, overrides CROSSING_MODEL")
	workers       = flag.Int("workers", 0, "goroutines used to count crossings, overrides COUNT_WORKERS")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(*configDir); err != nil {
		panic(err)
	}
	if *crossingModel != "" {
		viper.Set("CROSSING_MODEL", *crossingModel)
	}
	if *workers > 0 {
		viper.Set("COUNT_WORKERS", *workers)
	}

	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if *inputFile == "" {
		if len(flag.Args()) == 0 {
			logger.Fatal("Please, provide an input file path with -input")
		}
		*inputFile = flag.Arg(0)
	}

	format, err := output.ParseFormat(*outputFormat)
	if err != nil {
		logger.Fatal("invalid output format", zap.Error(err))
	}

	records, err := ingest.ReadFile(*inputFile)
	if err != nil {
		logger.Fatal("could not read bridges", zap.String("input", *inputFile), zap.Error(err))
	}

	gs, err := selector.NewGreedySelectorFromConfig(logger)
	if err != nil {
		logger.Fatal("invalid selector config", zap.Error(err))
	}

	res := gs.Select(ingest.BuildBridges(records))

	if err := output.WriteIDs(os.Stdout, res.RetainedIDs(), format); err != nil {
		logger.Fatal("could not write result", zap.Error(err))
	}
}
