package listener

import (
	"os"
	"path/filepath"
	"rudp/infrastructure/PAL/args"
	"rudp/infrastructure/PAL/configuration"
	"strings"
)

const (
	configFlag   = "--config"
	configFlagEq = "--config="
)

type resolver struct {
}

func NewDefaultResolver() configuration.Resolver {
	return &resolver{}
}

func (r resolver) Resolve() (string, error) {
	return filepath.Join(string(os.PathSeparator), "etc", "rudp", "listener.json"), nil
}

// ArgumentResolver prefers a --config path from the command line.
type ArgumentResolver struct {
	resolver     configuration.Resolver
	argsProvider args.Provider
}

func NewArgumentResolver(resolver configuration.Resolver, argsProvider args.Provider) configuration.Resolver {
	return &ArgumentResolver{
		resolver:     resolver,
		argsProvider: argsProvider,
	}
}

func (a *ArgumentResolver) Resolve() (string, error) {
	if path, ok := a.configPathArgument(); ok {
		return path, nil
	}
	return a.resolver.Resolve()
}

func (a *ArgumentResolver) configPathArgument() (string, bool) {
	arguments := a.argsProvider.Args()
	for i, arg := range arguments {
		if value, found := strings.CutPrefix(arg, configFlagEq); found {
			return value, value != ""
		}
		if arg == configFlag {
			if i+1 >= len(arguments) {
				return "", false
			}
			next := arguments[i+1]
			if next == "" || strings.HasPrefix(next, "-") {
				return "", false
			}
			return next, true
		}
	}
	return "", false
}
