package main

import (
	"fmt"
	"log"
	"time"

	"github.com/integrii/flaggy"

	"github.com/tcc-tools/fftplot"
)

// AppName is the app name
const AppName = "fftplot"

// AppDesc is the app description
const AppDesc = "Plot and compare input and output for the FFT Test"

// AppSite is the app website
const AppSite = "https://github.com/tcc-tools/fftplot"

// timeLayout matches ctime output
const timeLayout = "Mon Jan 02 15:04:05 2006"

var version = "unknown"

func main() {
	log.SetFlags(0)

	start := time.Now()
	fmt.Printf("Starting application at %s\n", start.Format(timeLayout))

	cfg := newZeroConfig()

	doFlags(&cfg)

	chk(cfg.Sanitize(), "invalid arguments")

	plotCfg := cfg.plotConfig()

	chk(fftplot.Run(&plotCfg), "failed to run fftplot")

	end := time.Now()
	fmt.Printf("### Ending application at %s processing took %.2f seconds\n",
		end.Format(timeLayout), end.Sub(start).Seconds())
}

func doFlags(cfg *config) {
	chk(newParser(cfg).Parse(), "failed to parse arguments")
}

// newParser binds the command line to cfg
func newParser(cfg *config) *flaggy.Parser {
	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc
	parser.AdditionalHelpPrepend = AppSite
	parser.Version = version

	parser.AddPositionalValue(&cfg.dataDir, "dataDirectory", 1, true,
		"the directory with the (csv) data files, expecting 2 input files and 2 output files")

	parser.String(&cfg.savePlot, "s", "savePlot",
		"save the plot to this file path instead of showing it on screen")
	parser.Bool(&cfg.quiet, "q", "quiet", "suppress verbose output")
	parser.Float64(&cfg.width, "", "width", "saved figure width in inches")
	parser.Float64(&cfg.height, "", "height", "saved figure height in inches")

	return parser
}

func chk(err error, wrap string) {
	if err != nil {
		log.Fatalln(wrap+": ", err)
	}
}
