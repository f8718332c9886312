package transfer

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/require"
)

func testLogger() *logging.Logger {
	return logging.MustGetLogger("test")
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	source := filepath.Join(t.TempDir(), "payload")
	require.NoError(t, os.WriteFile(source, []byte("x"), 0644))
	return &Request{Source: source, User: "alice", Host: "10.0.0.5", RemotePath: "/backup/"}
}

func TestRsyncArgs(t *testing.T) {
	req := &Request{Source: "/tmp/testfile", User: "alice", Host: "10.0.0.5", RemotePath: "/backup/"}
	rs := NewRsync("", nil, testLogger())
	require.Equal(t, "rsync", rs.Binary)
	require.Equal(t,
		[]string{"-avh", "--progress", "--partial", "--inplace", "/tmp/testfile", "alice@10.0.0.5:/backup/"},
		rs.Args(req))
}

func TestRsyncSuccess(t *testing.T) {
	rs := NewRsync("true", nil, testLogger())
	rs.Stdout = ioutil.Discard
	rs.Stderr = ioutil.Discard
	require.NoError(t, rs.Run(validRequest(t)))
}

func TestRsyncExitStatus(t *testing.T) {
	for _, code := range []int{1, 23} {
		rs := NewRsync("sh", []string{"-c", fmt.Sprintf("exit %d", code)}, testLogger())
		rs.Stdout = ioutil.Discard
		rs.Stderr = ioutil.Discard
		err := rs.Run(validRequest(t))
		var exitErr *ExitError
		require.True(t, errors.As(err, &exitErr), "expected ExitError, got %v", err)
		require.Equal(t, code, exitErr.Code)
	}
}

func TestRsyncToolNotFound(t *testing.T) {
	rs := NewRsync("rsync-binary-which-does-not-exist", nil, testLogger())
	err := rs.Run(validRequest(t))
	require.ErrorIs(t, err, ErrToolNotFound)
}

func TestRsyncRejectsInvalidRequest(t *testing.T) {
	req := &Request{Source: "/does/not/exist", User: "alice", Host: "999.1.1.1", RemotePath: "/backup/"}
	rs := NewRsync("true", nil, testLogger())
	require.Error(t, rs.Run(req))
}
