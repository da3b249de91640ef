package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"elevatorsim/src/config"
	"elevatorsim/src/elev"
	"elevatorsim/src/executor"
	"elevatorsim/src/view"

	"github.com/jonboulle/clockwork"
)

func main() {
	unit := flag.Duration("unit", config.DefaultTimeUnit, "Wall-clock length of one simulation time unit")
	logPath := flag.String("log", "elevator.log", "Log file, empty to disable logging")
	redraw := flag.Bool("clear", true, "Redraw the shaft in place instead of scrolling")
	flag.Parse()

	logFile, err := elev.InitLogger(*logPath, slog.LevelDebug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	requestCh := make(chan int, config.RequestBufSize)
	elevator := executor.New(clockwork.NewRealClock(), *unit)

	go elevator.Run(ctx, requestCh)
	go view.Print(ctx, os.Stdout, elevator.States(), *unit, *redraw)
	go func() {
		if err := view.ReadButtons(ctx, os.Stdin, config.NumFloors, requestCh); err != nil {
			slog.Error("Input closed", "err", err)
		}
	}()

	slog.Info("Simulator started", "floors", config.NumFloors, "unit", *unit)
	<-ctx.Done()
	slog.Info("Simulator stopped")
}
