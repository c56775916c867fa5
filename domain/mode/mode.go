package mode

type Mode int

const (
	Unknown Mode = iota
	// Listen runs the UDP listener until a shutdown signal arrives
	Listen
	// Version prints the build tag
	Version
)

func (m Mode) String() string {
	switch m {
	case Listen:
		return "listen"
	case Version:
		return "version"
	default:
		return "unknown"
	}
}
