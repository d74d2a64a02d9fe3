package pointer_test

import (
	"testing"

	"deedles.dev/wloverlay/pointer"
	"github.com/stretchr/testify/assert"
)

func TestPrimary(t *testing.T) {
	assert.Equal(t, pointer.Button(272), pointer.Primary)
	assert.True(t, pointer.Button(272).IsPrimary())
	assert.False(t, pointer.ButtonRight.IsPrimary())
}

func TestString(t *testing.T) {
	assert.Equal(t, "left", pointer.ButtonLeft.String())
	assert.Equal(t, "stylus", pointer.ButtonStylus.String())
	assert.Equal(t, "button1", pointer.Button(1).String())
}
