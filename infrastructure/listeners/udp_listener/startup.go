package udp_listener

// Startup creates a controller, resolves host:port and starts listening.
func Startup(maxConnections int, host string, port int, opts Options) (*Controller, error) {
	controller, controllerErr := NewController(maxConnections, opts)
	if controllerErr != nil {
		return nil, controllerErr
	}

	addr, resolveErr := NewIPv4Resolver().Resolve(host, port)
	if resolveErr != nil {
		return nil, resolveErr
	}

	if startErr := controller.Start(addr); startErr != nil {
		return nil, startErr
	}
	return controller, nil
}
