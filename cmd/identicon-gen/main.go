package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/identicon-gen/internal/identicon"
	"github.com/ironsheep/identicon-gen/internal/storage"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("identicon-gen %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	outDir := flag.String("out", "identicons", "output directory for generated images")
	size := flag.Int("size", identicon.CanvasSize, "output image size in pixels (square)")
	quiet := flag.Bool("quiet", false, "suppress per-image output")
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 {
		printUsage()
		os.Exit(1)
	}

	sink := storage.NewDir(*outDir)
	for _, input := range inputs {
		data, err := identicon.GenerateSized(input, *size)
		if err != nil {
			log.Fatalf("failed to generate identicon for %q: %v", input, err)
		}

		path, err := sink.Save(input, data)
		if err != nil {
			log.Fatalf("failed to save identicon for %q: %v", input, err)
		}

		if !*quiet {
			sum := identicon.Summarize(input)
			fmt.Printf("%s  %s  %d cells\n", path, sum.Color.Hex, len(sum.Cells))
		}
	}
}

func printUsage() {
	fmt.Println("identicon-gen - deterministic identicon generator")
	fmt.Println()
	fmt.Println("Usage: identicon-gen [options] INPUT [INPUT...]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -out DIR         output directory (default \"identicons\")")
	fmt.Println("  -size N          output image size in pixels (default 250)")
	fmt.Println("  -quiet           suppress per-image output")
	fmt.Println("  --version, -v    print version information")
	fmt.Println("  --help, -h       print this help message")
	fmt.Println()
	fmt.Println("Each INPUT produces one PNG in the output directory. The same")
	fmt.Println("input always produces the same image.")
}
