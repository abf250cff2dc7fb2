package command

import (
	"io"

	"go.uber.org/zap"

	"github.com/keshon/minigit/internal/config"
	"github.com/keshon/minigit/internal/fs"
	"github.com/keshon/minigit/internal/repo"
)

// Command represents a cli command
type Command interface {
	Name() string
	Aliases() []string
	Usage() string
	Brief() string
	Help() string
	Run(ctx *Context) error
}

// Context represents a cli context
type Context struct {
	Args     []string
	FS       fs.FS // working tree, rooted at "/"
	Out      io.Writer
	Log      *zap.Logger
	Settings *config.Settings
}

// OpenRepo opens the repository of the working tree.
func (ctx *Context) OpenRepo() (*repo.Repository, error) {
	return repo.Open(ctx.FS, ctx.Settings, ctx.logger())
}

func (ctx *Context) logger() *zap.Logger {
	if ctx.Log == nil {
		return zap.NewNop()
	}
	return ctx.Log
}
