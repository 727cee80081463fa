// Command neuroinspect prints an NZP container's header fields and how
// its payload compares to general-purpose baseline compressors.
//
// Usage:
//
//	neuroinspect -model weights.bin archive.nzp
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ha1tch/neurozip/internal/config"
	"github.com/ha1tch/neurozip/neurozip"
)

var (
	modelPath = flag.String("model", "", "path to LSTM weight file (defaults to $NEUROZIP_MODEL_PATH)")
	help      = flag.Bool("h", false, "display this help")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "neuroinspect: expected one archive path")
		fmt.Fprintln(os.Stderr, "Try 'neuroinspect -h' for more information.")
		os.Exit(1)
	}

	path := *modelPath
	if path == "" {
		path = config.Load().ModelPath
	}
	if path == "" {
		fatal("no model path: pass -model or set NEUROZIP_MODEL_PATH")
	}

	m, err := neurozip.LoadModel(path)
	if err != nil {
		fatal("cannot load model '%s': %v", path, err)
	}

	archivePath := flag.Arg(0)
	report, err := neurozip.Inspect(archivePath, m)
	if err != nil {
		fatal("inspect failed: %v", err)
	}

	h := report.Header
	fmt.Printf("Archive:       %s\n", archivePath)
	fmt.Printf("Model id:      %d\n", h.ModelID)
	fmt.Printf("Model hash:    %#016x\n", h.ModelHash)
	fmt.Printf("Original size: %d bytes\n", h.OriginalSize)
	fmt.Printf("Payload size:  %d bytes\n", report.PayloadBytes)
	fmt.Printf("Checksum:      %#08x\n", h.Checksum)

	if h.OriginalSize > 0 {
		ratio := 100 * (1 - float64(report.PayloadBytes)/float64(h.OriginalSize))
		fmt.Printf("Neural ratio:  %.1f%%\n", ratio)

		if report.Baseline.Flate >= 0 {
			fr := 100 * (1 - float64(report.Baseline.Flate)/float64(h.OriginalSize))
			fmt.Printf("flate ratio:   %.1f%% (%d bytes)\n", fr, report.Baseline.Flate)
		}
		if report.Baseline.Zstd >= 0 {
			zr := 100 * (1 - float64(report.Baseline.Zstd)/float64(h.OriginalSize))
			fmt.Printf("zstd ratio:    %.1f%% (%d bytes)\n", zr, report.Baseline.Zstd)
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: neuroinspect -model weights.bin archive.nzp

Print an NZP container's header fields, decompress its payload, and
report how it compares in size to DEFLATE and zstd baselines.

Options:
  -model path   LSTM weight file (defaults to $NEUROZIP_MODEL_PATH)
  -h            display this help

`)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "neuroinspect: "+format+"\n", args...)
	os.Exit(1)
}
