package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestHandleMessageAppendsAuditLine(t *testing.T) {
	chdir(t, t.TempDir())

	ev := LeaveRecordedEvent{
		Action:     "created",
		LeaveID:    7,
		UserID:     1,
		From:       "2023-01-01",
		To:         "2023-01-10",
		Type:       "Sick",
		RecordedAt: "2023-01-01T09:00:00Z",
	}
	body, err := json.Marshal(ev)
	require.NoError(t, err)

	require.NoError(t, handleMessage(body))
	require.NoError(t, handleMessage(body))

	data, err := os.ReadFile(filepath.Join("logs", "leaves.log"))
	require.NoError(t, err)
	lines := string(data)
	assert.Contains(t, lines, "Leave created")
	assert.Contains(t, lines, "leave_id=7")
	assert.Contains(t, lines, "user_id=1")
	assert.Contains(t, lines, `type="Sick"`)
}

func TestHandleMessageRejectsGarbage(t *testing.T) {
	chdir(t, t.TempDir())

	assert.Error(t, handleMessage([]byte("not json")))
	_, err := os.Stat("logs")
	assert.True(t, os.IsNotExist(err))
}
