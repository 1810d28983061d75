package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/osama1998H/ocean/core/logger"
	"github.com/osama1998H/ocean/core/result"
	"github.com/osama1998H/ocean/core/vos"
	"github.com/osama1998H/ocean/core/vos/vostest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventLog []logger.LogType

func (e *eventLog) Record(event logger.LogType) error {
	*e = append(*e, event)
	return nil
}

func newTestDispatcher() (*Dispatcher, *eventLog, *bytes.Buffer) {
	events := &eventLog{}
	stderr := &bytes.Buffer{}
	return &Dispatcher{
		Session: vostest.NewDeterministicSession(),
		Events:  events,
		Stderr:  stderr,
	}, events, stderr
}

func strPtr(s string) *string {
	return &s
}

func TestDispatcher_Lookup(t *testing.T) {
	d, events, _ := newTestDispatcher()
	ctx := context.Background()

	res, ok := d.Lookup(ctx, "اين", nil, nil)
	require.True(t, ok)
	assert.Equal(t, result.Success("/\n"), res)

	res, ok = d.Lookup(ctx, "cat", nil, strPtr("piped"))
	require.True(t, ok)
	assert.Equal(t, result.Success("piped"), res)

	res, ok = d.Lookup(ctx, "cd", []string{"/tmp"}, nil)
	require.True(t, ok)
	assert.Equal(t, result.None(), res)
	assert.Equal(t, "/tmp", d.Session.Getwd())

	res, ok = d.Lookup(ctx, "خروج", nil, nil)
	require.True(t, ok)
	assert.Equal(t, result.Exit(0), res)

	_, ok = d.Lookup(ctx, "frobnicate", nil, nil)
	assert.False(t, ok)

	require.Len(t, *events, 4)
	assert.Equal(t, &logger.RunCommand{Command: []string{"cd", "/tmp"}, Builtin: true, ExitCode: 0}, (*events)[2])
}

func TestDispatcher_LookupErrors(t *testing.T) {
	d, _, _ := newTestDispatcher()
	ctx := context.Background()

	res, ok := d.Lookup(ctx, "cd", []string{"/missing"}, nil)
	require.True(t, ok)
	assert.False(t, res.IsSuccess())
	assert.Contains(t, res.Text, "Cannot change to '/missing'")

	// grep reports no matches through its status alone.
	res, ok = d.Lookup(ctx, "grep", []string{"x"}, strPtr("abc\n"))
	require.True(t, ok)
	assert.Equal(t, result.Error("الأمر انتهى برمز: 1 / Command exited with code: 1"), res)
}

func TestDispatcher_LookupForwardsStderr(t *testing.T) {
	d, _, stderr := newTestDispatcher()

	mustAddBuiltinForTestProc(t, "warn", func(virtOS vos.VOS) int {
		virtOS.Stdout().Write([]byte("out"))
		virtOS.Stderr().Write([]byte("careful\n"))
		return 0
	})

	res, ok := d.Lookup(context.Background(), "warn", nil, nil)
	require.True(t, ok)
	assert.Equal(t, result.Success("out"), res)
	assert.Equal(t, "careful\n", stderr.String())
}

func TestDispatcher_LookupCanceled(t *testing.T) {
	d, events, _ := newTestDispatcher()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, ok := d.Lookup(ctx, "pwd", nil, nil)
	require.True(t, ok)
	assert.False(t, res.IsSuccess())
	assert.Empty(t, *events)
}

func mustAddBuiltinForTestProc(t *testing.T, id string, proc vos.ProcessFunc) {
	t.Helper()

	mustAddBuiltin(id, "test / test", proc, id)
	t.Cleanup(func() {
		delete(builtins, id)
		delete(aliases, id)
	})
}
