package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrConfigLoad, "config unreadable")
	assert.Equal(t, "[CONFIG_LOAD] config unreadable", err.Error())

	wrapped := Wrap(fmt.Errorf("permission denied"), ErrFileAccess, "cannot open file")
	assert.Equal(t, "[FILE_ACCESS] cannot open file: permission denied", wrapped.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrUnknown, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrUnknown, "ignored %d", 1))
}

func TestUnwrap(t *testing.T) {
	inner := fmt.Errorf("inner")
	err := Wrap(inner, ErrDiffParse, "outer")
	assert.Equal(t, inner, err.Unwrap())
}

func TestIsErrorCode(t *testing.T) {
	err := Newf(ErrDiffRetrieve, "no HEAD in %s", "/repo")
	assert.True(t, IsErrorCode(err, ErrDiffRetrieve))
	assert.False(t, IsErrorCode(err, ErrDiffParse))

	// Works through wrapping with %w
	outer := fmt.Errorf("run failed: %w", err)
	assert.True(t, IsErrorCode(outer, ErrDiffRetrieve))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrBackupCreate, GetErrorCode(New(ErrBackupCreate, "x")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrStage, "staging failed").WithDetail("path", "install.conf.yaml")
	require.NotNil(t, err.Details)
	assert.Equal(t, "install.conf.yaml", err.Details["path"])
}
