package shm_test

import (
	"testing"

	"deedles.dev/wloverlay/shm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestCreate(t *testing.T) {
	file, err := shm.Create("test", 4096)
	require.NoError(t, err)
	defer file.Close()

	info, err := file.Stat()
	require.NoError(t, err)
	assert.EqualValues(t, 4096, info.Size())
}

func TestMapSharedThenPrivate(t *testing.T) {
	file, err := shm.Create("test", 16)
	require.NoError(t, err)
	defer file.Close()

	w, err := shm.MapShared(file, 16, unix.PROT_READ|unix.PROT_WRITE)
	require.NoError(t, err)
	copy(w, "keymap contents")
	require.NoError(t, w.Unmap())

	r, err := shm.MapPrivate(file, 16)
	require.NoError(t, err)
	defer r.Unmap()
	assert.Equal(t, "keymap contents\x00", string(r))
}
