package transfer

import (
	"errors"
	"fmt"

	"github.com/goph/emperror"
)

var (
	ErrInvalidSource = errors.New("source path does not exist")
	ErrInvalidHost   = errors.New("host is not a valid IPv4 address")
)

// Request describes one transfer operation: copy Source into
// User@Host:RemotePath. User and RemotePath are free-form, Source and
// Host carry predicates which must hold before the request may be
// handed to the invoker.
type Request struct {
	Source     string
	User       string
	Host       string
	RemotePath string
}

// Destination renders the remote rsync endpoint.
func (req *Request) Destination() string {
	return fmt.Sprintf("%s@%s:%s", req.User, req.Host, req.RemotePath)
}

// Valid re-checks the structural invariants at call time.
func (req *Request) Valid() error {
	if !PathExists(req.Source) {
		return emperror.Wrapf(ErrInvalidSource, "source %s", req.Source)
	}
	if !ValidIP(req.Host) {
		return emperror.Wrapf(ErrInvalidHost, "host %s", req.Host)
	}
	return nil
}
