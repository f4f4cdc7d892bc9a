package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/baybridges/pkg/geo"
	"github.com/lintang-b-s/baybridges/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	outFile   = flag.String("out", "random_bridges.txt", "output file, .bz2 suffix writes a bzip2 compressed file")
	n         = flag.Int("n", 1000, "number of bridges")
	minLat    = flag.Float64("min_lat", 37.40, "bounding box min latitude")
	minLon    = flag.Float64("min_lon", -122.55, "bounding box min longitude")
	maxLat    = flag.Float64("max_lat", 37.90, "bounding box max latitude")
	maxLon    = flag.Float64("max_lon", -122.00, "bounding box max longitude")
	maxLength = flag.Float64("max_length", 10, "max bridge length in km")
	seed      = flag.Uint64("seed", 0, "random seed, 0 uses the current time")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	rd := rand.New(rand.NewSource(s))

	box := boundingBox{minLat: *minLat, minLon: *minLon, maxLat: *maxLat, maxLon: *maxLon}
	if err := writeRandomBridges(*outFile, *n, box, *maxLength, rd); err != nil {
		logger.Fatal("write random bridges", zap.Error(err))
	}

	logger.Info("random bridges written", zap.String("out", *outFile), zap.Int("n", *n), zap.Uint64("seed", s))
}

type boundingBox struct {
	minLat, minLon, maxLat, maxLon float64
}

// writeRandomBridges. write n random bridges starting inside box to path. the file is flushed and closed
// before returning so write errors are not lost.
func writeRandomBridges(path string, n int, box boundingBox, maxLengthKM float64, rd *rand.Rand) (err error) {
	fout, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fout.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	var (
		w  io.Writer = fout
		bz *bzip2.Writer
	)
	if strings.HasSuffix(path, ".bz2") {
		bz, err = bzip2.NewWriter(fout, &bzip2.WriterConfig{})
		if err != nil {
			return err
		}
		w = bz
	}

	bw := bufio.NewWriterSize(w, 1<<20)
	for i := 1; i <= n; i++ {
		latA := box.minLat + rd.Float64()*(box.maxLat-box.minLat)
		lonA := box.minLon + rd.Float64()*(box.maxLon-box.minLon)
		bearing := rd.Float64() * 360.0
		dist := rd.Float64() * maxLengthKM
		latB, lonB := geo.GetDestinationPoint(latA, lonA, bearing, dist)

		if _, err := fmt.Fprintf(bw, "%d: ([%.6f, %.6f], [%.6f, %.6f])\n", i, latA, lonA, latB, lonB); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return err
	}
	if bz != nil {
		if err := bz.Close(); err != nil {
			return err
		}
	}
	return nil
}
