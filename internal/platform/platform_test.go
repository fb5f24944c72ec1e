package platform

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireSingleInstance_SecondLaunchActivatesFirst(t *testing.T) {
	name := "focustimer-test-" + t.Name()
	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	t.Cleanup(func() { _ = guard.Release() })

	activated := make(chan struct{}, 1)
	guard.Serve(func() { activated <- struct{}{} })

	second, err := AcquireSingleInstance(name)
	assert.Nil(t, second)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("first instance was not activated")
	}
}

func TestPortFromName_StableAndInRange(t *testing.T) {
	port := portFromName("FocusTimer")
	assert.Equal(t, port, portFromName("FocusTimer"))
	assert.GreaterOrEqual(t, port, 20000)
	assert.LessOrEqual(t, port, 39999)
}

func TestFallbackConfigDir(t *testing.T) {
	home := filepath.FromSlash("/home/user")
	assert.Equal(t, filepath.Join(home, ".config"), fallbackConfigDir(home, "linux"))
	assert.Equal(t, filepath.Join(home, "Library", "Application Support"), fallbackConfigDir(home, "darwin"))
	assert.Equal(t, filepath.Join(home, "AppData", "Roaming"), fallbackConfigDir(home, "windows"))
}

func TestConfigDir_EndsWithAppName(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("AppData", home)

	dir, err := ConfigDir("FocusTimer")
	require.NoError(t, err)
	assert.Equal(t, "FocusTimer", filepath.Base(dir))
}
