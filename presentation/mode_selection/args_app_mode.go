package mode_selection

import (
	"rudp/domain/mode"
	"strings"
)

type ArgsAppMode struct {
	arguments []string
}

func NewArgsAppMode(arguments []string) AppMode {
	return &ArgsAppMode{
		arguments: arguments,
	}
}

// Mode treats a missing subcommand, or one that starts with a flag such as
// --config, as Listen.
func (a *ArgsAppMode) Mode() (mode.Mode, error) {
	if len(a.arguments) == 0 {
		return mode.Unknown, mode.NewInvalidExecPathProvided()
	}

	if len(a.arguments) < 2 {
		return mode.Listen, nil
	}

	modeArgument := strings.TrimSpace(strings.ToLower(a.arguments[1]))
	switch {
	case strings.HasPrefix(modeArgument, "-"):
		return mode.Listen, nil
	case modeArgument == "listen":
		return mode.Listen, nil
	case modeArgument == "version":
		return mode.Version, nil
	default:
		return mode.Unknown, mode.NewInvalidModeProvided(modeArgument)
	}
}
