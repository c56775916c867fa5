package signals

// Handler subscribes to OS signals and reacts to them in the background.
type Handler interface {
	Handle()
}
