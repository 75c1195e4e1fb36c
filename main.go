package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sheikhrachel/go-life-rle/game"
	"github.com/sheikhrachel/go-life-rle/utils"
)

const configFile = "config.json"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Load configuration - fallback to defaults if file doesn't exist
	config, configErr := utils.LoadConfig(configFile)
	if configErr != nil {
		config = utils.DefaultConfig()
	}

	// Flags override the configuration file
	fs := flag.NewFlagSet("go-life-rle", flag.ContinueOnError)
	config.Bind(fs)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: go-life-rle [flags] <pattern.rle>\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 2
	}

	path := fs.Arg(0)
	if config.Verbose {
		if configErr != nil {
			fmt.Fprintf(os.Stderr, "Using default configuration (%s not loaded)\n", configFile)
		}
		displayRunInfo(config, path)
	}

	result, err := game.NewAssembler(config).RunFile(path, config.Generations, config.OutputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if config.Verbose {
		displayRunStats(config, result)
	}
	fmt.Println(result.Text)
	return 0
}
