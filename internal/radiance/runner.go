package radiance

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// ToolError reports a missing executable or a failed subprocess.
type ToolError struct {
	Tool   string
	Err    error
	Stderr string
}

func (e *ToolError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("radiance: %s: %v: %s", e.Tool, e.Err, e.Stderr)
	}
	return fmt.Sprintf("radiance: %s: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }

// Runner executes Radiance command-line tools synchronously.
type Runner struct {
	// BinDir holds the Radiance executables. Empty means resolve from
	// PATH.
	BinDir string
	// LibDir is exported to subprocesses as RAYPATH (after ".").
	LibDir string
	Log    hclog.Logger
}

func (r *Runner) logger() hclog.Logger {
	if r.Log != nil {
		return r.Log
	}
	return hclog.NewNullLogger()
}

// CheckTools verifies every named executable resolves, mirroring the
// up-front install check the plugin did before any work.
func (r *Runner) CheckTools(tools ...string) error {
	for _, t := range tools {
		if _, err := r.lookup(t); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) lookup(tool string) (string, error) {
	if r.BinDir == "" {
		p, err := exec.LookPath(tool)
		if err != nil {
			return "", &ToolError{Tool: tool, Err: err}
		}
		return p, nil
	}
	candidates := []string{filepath.Join(r.BinDir, tool)}
	if runtime.GOOS == "windows" {
		candidates = append(candidates, filepath.Join(r.BinDir, tool+".exe"))
	}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", &ToolError{Tool: tool, Err: fmt.Errorf("not found in %s", r.BinDir)}
}

func (r *Runner) command(ctx context.Context, dir, tool string, args []string) (*exec.Cmd, error) {
	path, err := r.lookup(tool)
	if err != nil {
		return nil, err
	}
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	if r.LibDir != "" {
		cmd.Env = append(os.Environ(),
			"RAYPATH=."+string(os.PathListSeparator)+r.LibDir)
	}
	return cmd, nil
}

// Run executes the tool with args, blocking until it exits. dir is the
// working directory; empty means inherit.
func (r *Runner) Run(ctx context.Context, dir, tool string, args ...string) error {
	cmd, err := r.command(ctx, dir, tool, args)
	if err != nil {
		return err
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	r.logger().Debug("running radiance tool", "tool", tool, "args", args, "dir", dir)
	if err := cmd.Run(); err != nil {
		return &ToolError{Tool: tool, Err: err, Stderr: strings.TrimSpace(stderr.String())}
	}
	return nil
}

// RunToFile executes the tool with its stdout redirected to outPath,
// standing in for the shell redirections the legacy batch scripts used.
func (r *Runner) RunToFile(ctx context.Context, dir, outPath, tool string, args ...string) error {
	cmd, err := r.command(ctx, dir, tool, args)
	if err != nil {
		return err
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("radiance: create %s: %w", outPath, err)
	}
	defer out.Close()
	cmd.Stdout = out
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	r.logger().Debug("running radiance tool", "tool", tool, "args", args, "out", outPath)
	if err := cmd.Run(); err != nil {
		return &ToolError{Tool: tool, Err: err, Stderr: strings.TrimSpace(stderr.String())}
	}
	return nil
}
