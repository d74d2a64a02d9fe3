package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigureAfterDestroy(t *testing.T) {
	var o Overlay

	assert.NotPanics(t, func() { layerSurface{o: &o}.Configure(3, 640, 480) })
	assert.Zero(t, o.width)
	assert.Zero(t, o.height)
	assert.Equal(t, PhaseUncreated, o.phase)
}
