package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	var quiet, loud bytes.Buffer

	New(&quiet, false).Debug("hidden", "k", "v")
	New(&loud, true).Debug("shown", "k", "v")

	assert.Empty(t, quiet.String())
	assert.Contains(t, loud.String(), "msg=shown")
	assert.Contains(t, loud.String(), "k=v")
}

func TestNew_WarnAlwaysLogged(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Warn("careful")
	assert.Contains(t, buf.String(), "level=WARN")
}
