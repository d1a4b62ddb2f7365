package cli

import (
	"context"
	"os"

	"github.com/matzehuels/clustermap/pkg/buildinfo"
)

// SetVersion sets the build information displayed by --version. main calls
// it when the values were injected into the main package rather than into
// buildinfo.
func SetVersion(v, c, d string) {
	if v != "" {
		buildinfo.Version = v
	}
	if c != "" {
		buildinfo.Commit = c
	}
	if d != "" {
		buildinfo.Date = d
	}
}

// Execute runs the clustermap CLI with args at info level and returns the
// error of the failing command, if any.
func Execute(ctx context.Context, args []string) error {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
