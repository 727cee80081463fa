// Command neurozip compresses a file into an NZP container.
//
// Usage:
//
//	neurozip -model weights.bin in.bin out.nzp
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
	quiet     = flag.Bool("q", false, "quiet operation")
	help      = flag.Bool("h", false, "display this help")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "neurozip: expected input and output paths")
		fmt.Fprintln(os.Stderr, "Try 'neurozip -h' for more information.")
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

	inPath, outPath := flag.Arg(0), flag.Arg(1)
	if !*quiet {
		fmt.Fprintf(os.Stderr, "  compressing: %s\n", inPath)
	}

	if err := neurozip.CompressFile(inPath, outPath, m); err != nil {
		fatal("compression failed: %v", err)
	}

	if !*quiet {
		in, errIn := os.Stat(inPath)
		out, errOut := os.Stat(outPath)
		if errIn == nil && errOut == nil && in.Size() > 0 {
			ratio := 100 - float64(out.Size())*100/float64(in.Size())
			fmt.Fprintf(os.Stderr, "  %d bytes -> %d bytes (%.1f%%)\n", in.Size(), out.Size(), ratio)
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: neurozip -model weights.bin [-q] in.bin out.nzp

Compress in.bin into out.nzp using the tiny LSTM predictor loaded from
weights.bin, driving a 32-bit range coder symbol by symbol.

Options:
  -model path   LSTM weight file (defaults to $NEUROZIP_MODEL_PATH)
  -q            quiet operation
  -h            display this help

`)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "neurozip: "+format+"\n", args...)
	os.Exit(1)
}
