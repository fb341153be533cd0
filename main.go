// Package main implements the main entry point for a CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/cli"
	"github.com/retroenv/chip8emu/internal/config"
	"github.com/retroenv/chip8emu/internal/frontend"
	"github.com/retroenv/chip8emu/internal/loader"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(logger, opts)

	if err := run(ctx, logger, opts); err != nil {
		logger.Fatal("Emulation failed", log.Err(err))
	}
}

func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("chip8emu - CHIP-8 emulator",
		log.String("version", buildinfo.Version(version, commit, date)),
	)
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	rom, err := loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	machine, err := chip8.NewMachine(rom)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	if !opts.Quiet {
		logger.Info("Running ROM",
			log.String("file", opts.Input),
			log.Int("size", len(rom)),
		)
	}

	interpreter := chip8.NewInterpreter(logger)
	interpreter.TraceExecution = opts.Debug

	runner := chip8.NewRunner(interpreter)
	runner.SetInstructionsPerTick(opts.Speed)
	runner.TimersWhileWaiting = !opts.FreezeTimers

	var beeper *frontend.Beeper
	if !opts.Mute {
		beeper, err = frontend.NewBeeper()
		if err != nil {
			return fmt.Errorf("initializing audio: %w", err)
		}
		defer beeper.Close()
	}

	front := frontend.New(ctx, logger, opts, machine, runner, beeper)
	return front.Run()
}
