package listener

import (
	"rudp/application/logging"
	listenerConfig "rudp/infrastructure/PAL/configuration/listener"
)

type AppDependencies interface {
	Configuration() listenerConfig.Configuration
	ConfigurationManager() listenerConfig.ConfigurationManager
	Logger() logging.Logger
}

type Dependencies struct {
	configuration        listenerConfig.Configuration
	configurationManager listenerConfig.ConfigurationManager
	logger               logging.Logger
}

func NewDependencies(
	configuration listenerConfig.Configuration,
	configurationManager listenerConfig.ConfigurationManager,
	logger logging.Logger,
) AppDependencies {
	return &Dependencies{
		configuration:        configuration,
		configurationManager: configurationManager,
		logger:               logger,
	}
}

func (d Dependencies) Configuration() listenerConfig.Configuration {
	return d.configuration
}

func (d Dependencies) ConfigurationManager() listenerConfig.ConfigurationManager {
	return d.configurationManager
}

func (d Dependencies) Logger() logging.Logger {
	return d.logger
}
