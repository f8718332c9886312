package transfer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/op/go-logging"
)

// ErrToolNotFound signals that the rsync binary could not be located in
// the execution environment.
var ErrToolNotFound = errors.New("rsync binary not found")

// ExitError carries the termination status of a failed rsync run so the
// caller can exit with the same status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("rsync exited with status %d", e.Code)
}

// DefaultFlags: archive mode, human-readable sizes, progress output,
// partial-transfer retention, in-place writes.
var DefaultFlags = []string{"-avh", "--progress", "--partial", "--inplace"}

// Rsync invokes the external rsync binary for validated requests. The
// child inherits the configured output streams, so rsync's own progress
// output stays visible while the run blocks.
type Rsync struct {
	Binary string
	Flags  []string
	Stdout io.Writer
	Stderr io.Writer
	logger *logging.Logger
}

func NewRsync(binary string, flags []string, logger *logging.Logger) *Rsync {
	if binary == "" {
		binary = "rsync"
	}
	if len(flags) == 0 {
		flags = DefaultFlags
	}
	return &Rsync{
		Binary: binary,
		Flags:  flags,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		logger: logger,
	}
}

// Args builds the full argument vector for req.
func (r *Rsync) Args(req *Request) []string {
	args := append([]string{}, r.Flags...)
	return append(args, req.Source, req.Destination())
}

// Run executes rsync and blocks until it terminates. No timeout is
// imposed. An invalid request never starts a child process.
func (r *Rsync) Run(req *Request) error {
	if err := req.Valid(); err != nil {
		return err
	}
	args := r.Args(req)
	r.logger.Debugf("executing %s %v", r.Binary, args)
	cmd := exec.Command(r.Binary, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Code: exitErr.ExitCode()}
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
		return ErrToolNotFound
	}
	return err
}
