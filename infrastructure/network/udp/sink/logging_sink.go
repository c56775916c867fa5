package sink

import (
	"rudp/application/logging"
	"rudp/application/network/datagram"
)

// previewBytes bounds how much of a payload is hex-dumped per log line.
const previewBytes = 32

// LoggingSink is the diagnostic sink used until packet parsing exists.
type LoggingSink struct {
	logger logging.Logger
}

func NewLoggingSink(logger logging.Logger) datagram.Sink {
	return &LoggingSink{logger: logger}
}

func (s *LoggingSink) Handle(d datagram.Datagram) {
	preview := d.Payload
	suffix := ""
	if len(preview) > previewBytes {
		preview = preview[:previewBytes]
		suffix = " ..."
	}
	s.logger.Printf("datagram from %s: %d bytes: % x%s", d.From, len(d.Payload), preview, suffix)
}
