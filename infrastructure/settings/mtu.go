package settings

// ReceiveBufferSize returns the receive buffer length for the given MTU.
// Values outside [MinimumIPv4MTU, MaxPacketSize] fall back to MaxPacketSize.
func ReceiveBufferSize(mtu int) int {
	if mtu < MinimumIPv4MTU || mtu > MaxPacketSize {
		return MaxPacketSize
	}
	return mtu
}
