package version

import (
	"context"
	"fmt"
	"rudp/domain/app"
	"strings"
)

// Tag will be set via ldflags by CI release workflow
var Tag = "version not set"

type Runner struct{}

func NewRunner() *Runner { return &Runner{} }

func (r *Runner) Run(_ context.Context) {
	fmt.Printf("%s %s\n",
		app.Name,
		Tag,
	)
}

// Current returns the trimmed release tag.
func Current() string {
	return strings.TrimSpace(Tag)
}
