package logging

import (
	"log"
	"rudp/application/logging"
)

type LogLogger struct {
}

func NewLogLogger() logging.Logger {
	return &LogLogger{}
}

func (l LogLogger) Printf(format string, v ...any) {
	log.Printf(format, v...)
}

// ComponentLogger prefixes every line with the component name, e.g. "[listener] ".
type ComponentLogger struct {
	component string
	inner     logging.Logger
}

func NewComponentLogger(component string, inner logging.Logger) logging.Logger {
	if inner == nil {
		inner = NewLogLogger()
	}
	return &ComponentLogger{
		component: component,
		inner:     inner,
	}
}

func (c *ComponentLogger) Printf(format string, v ...any) {
	c.inner.Printf("["+c.component+"] "+format, v...)
}
