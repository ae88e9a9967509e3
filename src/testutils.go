package ft8token

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertOutputContains runs command with stdout captured and checks what it printed.
// Exported so the cmd/ wrappers can use it too.
// Large outputs will block; the pipe is only read once command returns.
func AssertOutputContains(t *testing.T, command func(), expectedOutputContains string) {
	t.Helper()

	assert.Contains(t, CaptureOutput(t, command), expectedOutputContains)
}

func CaptureOutput(t *testing.T, command func()) string {
	t.Helper()

	var oldStdout = os.Stdout
	defer func() {
		os.Stdout = oldStdout
	}()

	var r, w, pipeErr = os.Pipe()
	require.NoError(t, pipeErr)

	os.Stdout = w

	command()

	w.Close() //nolint:gosec

	os.Stdout = oldStdout

	var outputBytes, readErr = io.ReadAll(r)

	require.NoError(t, readErr)

	return string(outputBytes)
}
