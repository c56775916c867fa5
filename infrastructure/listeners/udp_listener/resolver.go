package udp_listener

import (
	"fmt"
	"net/netip"
)

type AddressResolver interface {
	Resolve(host string, port int) (netip.AddrPort, error)
}

// IPv4Resolver accepts dotted IPv4 literals only. Host names are not looked up.
type IPv4Resolver struct {
}

func NewIPv4Resolver() AddressResolver {
	return &IPv4Resolver{}
}

func (r IPv4Resolver) Resolve(host string, port int) (netip.AddrPort, error) {
	addr, parseErr := netip.ParseAddr(host)
	if parseErr != nil {
		return netip.AddrPort{}, fmt.Errorf("%w: %q: %w", ErrInvalidAddress, host, parseErr)
	}
	if !addr.Is4() {
		return netip.AddrPort{}, fmt.Errorf("%w: %q is not an IPv4 address", ErrInvalidAddress, host)
	}
	if port < 0 || port > 65535 {
		return netip.AddrPort{}, fmt.Errorf("%w: port %d out of range 0..65535", ErrInvalidAddress, port)
	}
	return netip.AddrPortFrom(addr, uint16(port)), nil
}
