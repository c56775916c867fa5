package settings

// Listener describes a single UDP listener instance.
type Listener struct {
	Host           string       `json:"Host"`
	Port           int          `json:"Port"`
	MaxConnections int          `json:"MaxConnections"`
	MTU            int          `json:"MTU"`
	IdleWaitMs     Milliseconds `json:"IdleWaitMs"`
	QueueCapacity  int          `json:"QueueCapacity"`
}
