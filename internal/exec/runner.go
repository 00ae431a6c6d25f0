package exec

import (
	"context"
	"os/exec"
)

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct {
	// Shell is the shell used by RunShell. Empty means "sh".
	Shell string
}

// NewRunner creates a new ExecRunner using the given shell.
func NewRunner(shell string) *ExecRunner {
	if shell == "" {
		shell = "sh"
	}
	return &ExecRunner{Shell: shell}
}

// Run executes a command and returns combined stdout/stderr output.
func (r *ExecRunner) Run(ctx context.Context, workDir string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if workDir != "" {
		cmd.Dir = workDir
	}
	return cmd.CombinedOutput()
}

// RunShell executes a shell command through the configured shell.
func (r *ExecRunner) RunShell(ctx context.Context, workDir string, command string) ([]byte, error) {
	return r.Run(ctx, workDir, r.Shell, "-c", command)
}

// Verify ExecRunner implements CommandRunner at compile time.
var _ CommandRunner = (*ExecRunner)(nil)
