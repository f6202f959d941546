package cli

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/lnsy/pochade/internal/config"
	"github.com/lnsy/pochade/internal/fs"
	"github.com/lnsy/pochade/internal/scaffold"
)

// RunContext holds everything a create run needs from its surroundings.
type RunContext struct {
	CWD    string
	Config *config.Config
	FS     fs.FS
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	scaffoldManager *scaffold.ScaffoldManager
	managersInit    sync.Once
}

// openContext is swapped out by tests.
var openContext = OpenRunContext

// OpenRunContext loads the global defaults and binds the process streams.
func OpenRunContext() (*RunContext, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.LoadGlobal()
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	return &RunContext{
		CWD:    cwd,
		Config: cfg,
		FS:     fs.Default,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}, nil
}

func (rc *RunContext) ScaffoldManager() *scaffold.ScaffoldManager {
	rc.managersInit.Do(func() {
		rc.scaffoldManager = scaffold.NewScaffoldManager()
	})
	return rc.scaffoldManager
}
