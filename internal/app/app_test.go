package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"

	"genetag/internal/cli"
	"genetag/internal/errs"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{errs.Write("flush", "-", syscall.EPIPE), ExitOK},
		{&cli.UsageError{Err: errors.New("bad flag")}, ExitUsage},
		{fmt.Errorf("stream: %w", context.Canceled), ExitCancelled},
		{errs.Parse("in.fa", io.ErrUnexpectedEOF), ExitParse},
		{errs.NotFound("open", "in.fa", fs.ErrNotExist), ExitIO},
		{errs.Write("write", "out.fa", errors.New("disk full")), ExitIO},
		{errors.New("mystery"), ExitFailure},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExitCode(tc.err), "%v", tc.err)
	}
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	code := Run([]string{"--version"}, &out, io.Discard)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out.String(), "genetag version")
}

func TestUsageMessage(t *testing.T) {
	var stderr bytes.Buffer
	code := Run([]string{"a.fa", "b.fa", "c.fa"}, io.Discard, &stderr)
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr.String(), "at most 2 arg(s)")
	assert.Contains(t, stderr.String(), "--help")
}
