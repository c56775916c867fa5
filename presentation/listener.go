package presentation

import (
	"context"
	"fmt"
	"rudp/infrastructure/PAL/args"
	listenerConfig "rudp/infrastructure/PAL/configuration/listener"
	"rudp/infrastructure/PAL/stat"
	"rudp/infrastructure/logging"
	"rudp/presentation/runners/listener"
)

// StartListener loads the configuration and runs the UDP listener until ctx is done.
func StartListener(ctx context.Context) error {
	resolver := listenerConfig.NewArgumentResolver(
		listenerConfig.NewDefaultResolver(),
		args.NewDefaultProvider(),
	)
	manager, managerErr := listenerConfig.NewManager(resolver, stat.NewDefaultStat())
	if managerErr != nil {
		return managerErr
	}
	conf, confErr := manager.Configuration()
	if confErr != nil {
		return fmt.Errorf("failed to read listener configuration: %w", confErr)
	}

	logger := logging.NewComponentLogger("listener", nil)
	logger.Printf("using configuration %s", manager.Path())

	deps := listener.NewDependencies(*conf, manager, logger)
	runner := listener.NewRunner(deps, listener.NewUDPStarter(logger))
	return runner.Run(ctx)
}
