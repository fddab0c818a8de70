package clierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeOf(t *testing.T) {
	assert.Equal(t, 0, ExitCodeOf(nil))
	assert.Equal(t, 1, ExitCodeOf(errors.New("plain")))
	assert.Equal(t, 1, ExitCodeOf(New(KindUsage, "usage")))
	assert.Equal(t, 1, ExitCodeOf(Silent(KindValidation)))

	wrapped := fmt.Errorf("outer: %w", New(KindNotFound, "missing"))
	assert.Equal(t, 1, ExitCodeOf(wrapped))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestExitError_Message(t *testing.T) {
	cause := errors.New("exit status 128")

	assert.Equal(t, "history: exit status 128", Wrap(KindRuntime, "history", cause).Error())
	assert.Equal(t, "plain", Wrap(KindRuntime, "plain", nil).Error())
	assert.True(t, errors.Is(Wrap(KindRuntime, "history", cause), cause))
}

func TestSilent(t *testing.T) {
	err := Silent(KindValidation)
	assert.True(t, IsSilent(err))
	assert.Empty(t, err.Error())
	assert.Equal(t, KindValidation, KindOf(err))

	assert.False(t, IsSilent(New(KindUsage, "x")))
	assert.False(t, IsSilent(errors.New("x")))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "usage", KindUsage.String())
	assert.Equal(t, "not-found", KindNotFound.String())
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "runtime", KindRuntime.String())
}
