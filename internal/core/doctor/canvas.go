package doctor

import (
	"context"
	"fmt"
)

// WhoamiFunc returns the display name of the authenticated Canvas user.
type WhoamiFunc func(ctx context.Context) (string, error)

// CanvasCheck verifies that the Canvas API accepts the configured token.
type CanvasCheck struct {
	whoami WhoamiFunc
}

// NewCanvasCheck creates a new Canvas connectivity check. A nil whoami means
// Canvas is not configured and the check is skipped with a warning.
func NewCanvasCheck(whoami WhoamiFunc) *CanvasCheck {
	return &CanvasCheck{whoami: whoami}
}

func (c *CanvasCheck) Name() string {
	return "Canvas"
}

func (c *CanvasCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	if c.whoami == nil {
		result.add(warn("api", "skipped, canvas url or token missing"))
		return result
	}

	name, err := c.whoami(ctx)
	if err != nil {
		result.add(fail("api", err.Error()))
		return result
	}

	result.add(pass("api", fmt.Sprintf("authenticated as %s", name)))
	return result
}
