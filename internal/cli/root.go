package cli

import (
	"io"
	"os"

	"github.com/julianstephens/weeklift/internal/config"
	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/form"
	"github.com/julianstephens/weeklift/internal/models"
	"github.com/julianstephens/weeklift/internal/selection"
	"github.com/julianstephens/weeklift/internal/storage"
	"github.com/julianstephens/weeklift/internal/utils"
)

type Context struct {
	Store     storage.Provider
	Selection *selection.Controller
	Config    config.Config
	// SeedPath is the seed file the plan came from, empty for the built-in or empty plan
	SeedPath string
	Out      io.Writer
}

// NewContext wires a store holding plan to a form and selection controller
// configured from cfg
func NewContext(cfg config.Config, plan models.WeeklyPlan) (*Context, error) {
	day, err := cfg.Day()
	if err != nil {
		return nil, err
	}
	typ, err := cfg.ExerciseType()
	if err != nil {
		return nil, err
	}
	category, err := cfg.Category()
	if err != nil {
		return nil, err
	}

	store := storage.NewMemoryStoreFrom(plan)
	fc := form.New(store, form.Options{
		StrictRequired:  cfg.StrictRequiredFields,
		DefaultType:     typ,
		DefaultCategory: category,
	})

	return &Context{
		Store:     store,
		Selection: selection.New(store, fc, day),
		Config:    cfg,
		Out:       os.Stdout,
	}, nil
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// resolveDay parses a --day value, falling back to the selection's current day
func (c *Context) resolveDay(s string) (constants.Day, error) {
	if s == "" {
		return c.Selection.CurrentDay(), nil
	}
	return utils.ResolveDay(s, c.Config.Timezone)
}
