package errs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindsAndCauseAreReachable(t *testing.T) {
	err := NotFound("open", "in.fa", fs.ErrNotExist)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, ErrParse)
	assert.Equal(t, ErrFileNotFound, Kind(err))
	assert.Contains(t, err.Error(), "in.fa")
}

func TestNilStaysNil(t *testing.T) {
	assert.NoError(t, NotFound("open", "x", nil))
	assert.NoError(t, Parse("x", nil))
	assert.NoError(t, Write("write", "x", nil))
}

func TestAlreadyClassifiedIsNotRewrapped(t *testing.T) {
	inner := Parse("in.fa", io.ErrUnexpectedEOF)
	outer := Write("write", "out.fa", fmt.Errorf("stream: %w", inner))
	assert.ErrorIs(t, outer, ErrParse)
	assert.NotErrorIs(t, outer, ErrWrite)
	assert.Equal(t, ErrParse, Kind(outer))
}

func TestStdioPathIsNamed(t *testing.T) {
	err := Write("write", "-", errors.New("disk full"))
	assert.Equal(t, "write <stdio>: write error: disk full", err.Error())
}

func TestUnclassified(t *testing.T) {
	assert.Nil(t, Kind(errors.New("boom")))
}
