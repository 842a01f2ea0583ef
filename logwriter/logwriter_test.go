package logwriter

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreColour(t *testing.T) {
	saved := color.NoColor
	t.Cleanup(func() { color.NoColor = saved })
}

func TestCreateWriter(t *testing.T) {
	restoreColour(t)
	var buf bytes.Buffer
	w := New(&buf, true, false)
	require.NoError(t, w.Create())
	assert.True(t, color.NoColor)
	w.Logger().Println("hello")
	w.Cleanup()
	assert.True(t, strings.HasPrefix(buf.String(), Prefix), buf.String())
	assert.Contains(t, buf.String(), "hello")
}

func TestCreateDisabled(t *testing.T) {
	restoreColour(t)
	var buf bytes.Buffer
	w := New(&buf, false, true)
	require.NoError(t, w.Create())
	w.Logger().Println("hidden")
	assert.Zero(t, buf.Len())
}

func TestCreateDefaultStderr(t *testing.T) {
	restoreColour(t)
	w := NewFile("", true, true)
	require.NoError(t, w.Create())
	assert.Equal(t, os.Stderr, w.Writer)
}

func TestCreateFile(t *testing.T) {
	restoreColour(t)
	path := filepath.Join(t.TempDir(), "philo.log")
	w := NewFile(path, true, false)
	require.NoError(t, w.Create())
	w.Logger().Println("to file")
	w.Cleanup()
	b, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "to file")
}

func TestCreateFileError(t *testing.T) {
	restoreColour(t)
	w := NewFile(filepath.Join(t.TempDir(), "missing", "philo.log"), true, false)
	assert.Error(t, w.Create())
}
