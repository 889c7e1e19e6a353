package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goserg/ratingtracker/internal/cache/mem"
	"github.com/goserg/ratingtracker/internal/config"
	"github.com/goserg/ratingtracker/internal/logger"
	"github.com/goserg/ratingtracker/internal/report"
	"github.com/goserg/ratingtracker/internal/service"
)

func main() {
	configPath := flag.String("config", "", "path to tracker toml config, embedded demo if empty")
	flag.Parse()

	if err := run(*configPath, os.Stdout); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run(configPath string, out io.Writer) error {
	cfg, err := config.New(configPath)
	if err != nil {
		return err
	}
	log := logger.New(os.Stderr, cfg.Tracker.Debug)

	tracker := service.New(mem.New(), log)
	if err := tracker.RunScenario(cfg.Scenario); err != nil {
		return err
	}

	for _, account := range tracker.List() {
		if _, err := fmt.Fprintln(out, report.Summary(account)+report.History(account.Name, account.History)); err != nil {
			return err
		}
	}
	return nil
}
