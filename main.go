package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"rudp/domain/app"
	"rudp/domain/mode"
	palSignal "rudp/infrastructure/PAL/signal"
	"rudp/infrastructure/logging"
	"rudp/presentation"
	"rudp/presentation/mode_selection"
	"rudp/presentation/runners/version"
	"rudp/presentation/signals/shutdown"
)

func main() {
	appCtx, appCtxCancel := context.WithCancel(context.Background())
	defer appCtxCancel()

	shutdown.NewHandler(
		appCtx,
		appCtxCancel,
		palSignal.NewDefaultProvider(),
		shutdown.NewNotifier(),
		logging.NewLogLogger(),
	).Handle()

	selectedMode, selectedModeErr := mode_selection.NewArgsAppMode(os.Args).Mode()
	if selectedModeErr != nil {
		fmt.Println(selectedModeErr)
		printUsage()
		os.Exit(1)
	}

	switch selectedMode {
	case mode.Version:
		version.NewRunner().Run(appCtx)
	case mode.Listen:
		if err := presentation.StartListener(appCtx); err != nil {
			log.Fatalf("%s: %v", app.Name, err)
		}
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`Usage: %[1]s [listen] [--config <path>]
       %[1]s version
`, app.Name)
}
