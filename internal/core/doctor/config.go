package doctor

import (
	"context"
	"errors"

	"github.com/hay-kot/criterio"

	"github.com/realprogrammersusevim/canvas-todo/internal/core/config"
)

// ConfigCheck runs deep config validation and reports the Canvas settings a
// sync needs.
type ConfigCheck struct {
	cfg        *config.Config
	configPath string
}

// NewConfigCheck creates a new configuration check.
func NewConfigCheck(cfg *config.Config, configPath string) *ConfigCheck {
	return &ConfigCheck{cfg: cfg, configPath: configPath}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	err := c.cfg.ValidateDeep(c.configPath)

	var fieldErrs criterio.FieldErrors
	switch {
	case err == nil:
		result.add(pass("config", c.configPath))
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			result.add(fail(fe.Field, fe.Err.Error()))
		}
	default:
		result.add(fail("config", err.Error()))
	}

	if c.cfg.Canvas.URL == "" {
		result.add(fail("canvas.url", "not set (CANVAS_API_URL or canvas.url)"))
	} else {
		result.add(pass("canvas.url", c.cfg.Canvas.URL))
	}

	if c.cfg.Canvas.Token == "" {
		item := fail("canvas.token", "not set (run 'canvas-todo auth login')")
		item.Fixable = true
		result.add(item)
	} else {
		result.add(pass("canvas.token", "set"))
	}

	list := c.cfg.Things.ListName
	if list == "" {
		list = "Inbox"
	}
	result.add(pass("things.list_name", list))

	return result
}
