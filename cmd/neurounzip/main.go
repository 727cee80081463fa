// Command neurounzip decompresses an NZP container.
//
// Usage:
//
//	neurounzip -model weights.bin in.nzp out.bin
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
		fmt.Fprintln(os.Stderr, "neurounzip: expected input and output paths")
		fmt.Fprintln(os.Stderr, "Try 'neurounzip -h' for more information.")
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
		fmt.Fprintf(os.Stderr, "  inflating: %s\n", inPath)
	}

	if err := neurozip.DecompressFile(inPath, outPath, m); err != nil {
		fatal("decompression failed: %v", err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: neurounzip -model weights.bin [-q] in.nzp out.bin

Decompress in.nzp into out.bin using the tiny LSTM predictor loaded
from weights.bin. Fails with a mismatch error if the container's model
id or (non-zero) model hash doesn't match the loaded weights.

Options:
  -model path   LSTM weight file (defaults to $NEUROZIP_MODEL_PATH)
  -q            quiet operation
  -h            display this help

`)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "neurounzip: "+format+"\n", args...)
	os.Exit(1)
}
