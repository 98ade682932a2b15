// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contascan/cli/internal/backend"
	apperr "contascan/cli/internal/errors"
	"contascan/cli/internal/models"
)

// fakeAPI satisfies backend.API for the single method the log calls; the
// embedded nil interface panics on anything else.
type fakeAPI struct {
	backend.API
	reply string
	err   error

	gotSession string
	gotMessage string
	calls      int
}

func (f *fakeAPI) SendChat(_ context.Context, sessionID, message string) (string, error) {
	f.calls++
	f.gotSession = sessionID
	f.gotMessage = message
	return f.reply, f.err
}

func TestSendAppendsBothSides(t *testing.T) {
	api := &fakeAPI{reply: "los totales cuadran"}
	l := NewLog("abc", api)

	require.NoError(t, l.Send(context.Background(), "¿cuadran los totales?"))

	msgs := l.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, models.RoleUser, msgs[0].Role)
	assert.Equal(t, "¿cuadran los totales?", msgs[0].Content)
	assert.Equal(t, models.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "los totales cuadran", msgs[1].Content)

	assert.Equal(t, "abc", api.gotSession)
	assert.Equal(t, "¿cuadran los totales?", api.gotMessage)
	assert.False(t, l.Busy())
}

func TestSendFailureKeepsUserEntry(t *testing.T) {
	api := &fakeAPI{err: apperr.New(apperr.Server, "modelo no disponible")}
	l := NewLog("abc", api)

	err := l.Send(context.Background(), "hola")
	require.Error(t, err)
	assert.Equal(t, "modelo no disponible", apperr.Message(err))

	// the user entry is never rolled back
	msgs := l.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, models.RoleUser, msgs[0].Role)
	assert.Equal(t, "hola", msgs[0].Content)

	// the busy flag is cleared on failure too
	assert.False(t, l.Busy())
	api.err = nil
	api.reply = "ahora sí"
	require.NoError(t, l.Send(context.Background(), "reintenta"))
	assert.Len(t, l.Messages(), 3)
}

func TestSendRejectsEmptyInput(t *testing.T) {
	api := &fakeAPI{}
	l := NewLog("abc", api)

	for _, input := range []string{"", "   ", "\t\n"} {
		err := l.Send(context.Background(), input)
		require.Error(t, err)
		assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	}
	assert.Zero(t, api.calls)
	assert.Empty(t, l.Messages())
}

func TestSendWhileBusyRejected(t *testing.T) {
	api := &fakeAPI{}
	l := NewLog("abc", api)
	l.busy = true

	err := l.Send(context.Background(), "hola")
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.Zero(t, api.calls)
}

func TestTimestampsAreRFC3339(t *testing.T) {
	api := &fakeAPI{reply: "ok"}
	l := NewLog("abc", api)
	fixed := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	require.NoError(t, l.Send(context.Background(), "hola"))
	for _, m := range l.Messages() {
		assert.Equal(t, "2026-03-14T09:30:00Z", m.Timestamp)
	}
}
