// Command demo creates a sample folder layout under FW_DATA_ROOT (./data by
// default) using every provisioner operation, printing progress as it goes.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/krelinga/folder-workflows/internal"
	"github.com/krelinga/folder-workflows/internal/byline"
	"github.com/krelinga/folder-workflows/internal/fwfolder"
	"github.com/krelinga/folder-workflows/internal/fwlog"
)

const banner = "#####################################"

var regions = []string{
	"North America",
	"South America",
	"Europe",
	"Asia",
	"Africa",
	"Oceania",
	"Middle East",
}

func main() {
	if err := mainImpl(); err != nil {
		log.Fatal(err)
	}
}

func mainImpl() error {
	if err := internal.LoadDotEnv(); err != nil {
		return err
	}
	config := internal.NewDemoConfigFromEnv()

	logger, err := fwlog.New(config.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p, err := fwfolder.Open(config.DataRoot, fwfolder.WithLogger(logger))
	if err != nil {
		return err
	}

	fmt.Println(banner)
	fmt.Println("# Starting execution of main()")
	fmt.Println(banner)
	fmt.Println()
	fmt.Printf("Byline: %s\n", byline.Get())

	if err := run(ctx, p, config.Interval, logger.Sugar()); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(banner)
	fmt.Println("# Completed execution of main()")
	fmt.Println(banner)
	return nil
}

// run exercises each operation with the sample arguments. It stops at the
// first failure; folders created before it are kept.
func run(ctx context.Context, p *fwfolder.Provisioner, interval time.Duration, logger *zap.SugaredLogger) error {
	report := func(folders []string) {
		for _, name := range folders {
			logger.Infof("Created folder: %s", p.Path(name))
		}
	}

	folders, err := p.CreateRange(ctx, 2020, 2023)
	if err != nil {
		return err
	}
	report(folders)
	logger.Infof("FUNCTION CALLED: CreateRange with start=%d and end=%d", 2020, 2023)

	names := []string{"data-csv", "data-excel", "data-json", "Final Deliverables"}
	all := fwfolder.Transforms{Lowercase: true, ReplaceSpaces: true, AddDate: true}
	folders, err = p.CreateFromList(ctx, names, all)
	if err != nil {
		return err
	}
	report(folders)
	logger.Infof("FUNCTION CALLED: CreateFromList with names=%q", names)

	folders, err = p.CreatePrefixed(ctx, []string{"csv", "excel", "json"}, "data-")
	if err != nil {
		return err
	}
	report(folders)
	logger.Infof("FUNCTION CALLED: CreatePrefixed with prefix=%q", "data-")

	folders, err = p.CreatePeriodic(ctx, interval, 5)
	if err != nil {
		return err
	}
	report(folders)
	logger.Infof("FUNCTION CALLED: CreatePeriodic with interval=%s and count=%d", interval, 5)

	folders, err = p.CreateFromList(ctx, regions, fwfolder.Transforms{Lowercase: true, ReplaceSpaces: true})
	if err != nil {
		return err
	}
	report(folders)
	logger.Infof("FUNCTION CALLED: CreateFromList with names=%q", regions)

	return nil
}
