package dbase

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandling(t *testing.T) {
	tests := []struct {
		context     string
		kind        error
		expectedMsg string
	}{
		{"dbase-test-format-1", ErrFormat, "bad terminator: invalid format"},
		{"dbase-test-resource-1", ErrResource, "bad terminator: resource unavailable"},
		{"dbase-test-configuration-1", ErrConfiguration, "bad terminator: invalid configuration"},
	}
	for _, tt := range tests {
		t.Run(tt.context, func(t *testing.T) {
			err := newErrorf(tt.context, tt.kind, "bad %s", "terminator")
			assert.Equal(t, tt.expectedMsg, err.Error())
			assert.Equal(t, []string{tt.context}, err.Context())
			assert.ErrorIs(t, err, tt.kind)
			assert.Contains(t, err.trace(), tt.context)
		})
	}
}

func TestErrorContextChain(t *testing.T) {
	inner := newErrorf("dbase-inner-1", ErrFormat, "broken")
	outer := newError("dbase-outer-1", inner)
	assert.Equal(t, []string{"dbase-outer-1", "dbase-inner-1"}, outer.Context())
	assert.Equal(t, "dbase-outer-1:dbase-inner-1:broken: invalid format", outer.trace())
	assert.ErrorIs(t, outer, ErrFormat)
	assert.NotErrorIs(t, outer, ErrResource)
}

func TestGetErrorTrace(t *testing.T) {
	assert.Equal(t, "dbase-ctx-1:EOF", GetErrorTrace(newError("dbase-ctx-1", errors.New("EOF"))).Error())
	assert.Equal(t, "generic error", GetErrorTrace(errors.New("generic error")).Error())
	wrapped := errors.WithMessage(newError("dbase-ctx-2", ErrIncomplete), "record 7")
	assert.Equal(t, "dbase-ctx-2:incomplete", GetErrorTrace(wrapped).Error())
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil))
	err := WrapError(newErrorf("dbase-ctx-1", ErrFormat, "broken"))
	var e Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, []string{"TestWrapError", "dbase-ctx-1"}, e.Context())
	assert.ErrorIs(t, err, ErrFormat)
}
