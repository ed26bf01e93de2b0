package application

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *WorkstationService {
	return NewWorkstationService(newTestEngine(), nil)
}

func TestWorkstation_SessionLifecycle(t *testing.T) {
	w := newTestService()

	id, s := w.CreateSession()
	require.NotEmpty(t, id)
	require.NotNil(t, s)

	got, err := w.GetSession(id)
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, w.DeleteSession(id))
	_, err = w.GetSession(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, w.DeleteSession(id), ErrSessionNotFound)
}

func TestWorkstation_ExecuteMutatesOwnSessionOnly(t *testing.T) {
	w := newTestService()
	a, _ := w.CreateSession()
	b, _ := w.CreateSession()

	events, err := w.Execute(a, "NM1DOE/JOHN MR")
	require.NoError(t, err)
	assert.NotEmpty(t, events)

	sa, _ := w.GetSession(a)
	sb, _ := w.GetSession(b)
	assert.NotNil(t, sa.ActivePNR)
	assert.Nil(t, sb.ActivePNR)

	_, err = w.Execute("no-such-id", "RT")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestWorkstation_ConcurrentSessionsDoNotInterfere(t *testing.T) {
	w := newTestService()

	const n = 8
	ids := make([]string, n)
	for i := range ids {
		ids[i], _ = w.CreateSession()
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			for _, cmd := range []string{"AN26DECALGPAR", "SS1Y1", "NM1DOE/JOHN MR", "FXP"} {
				if _, err := w.Execute(id, cmd); err != nil {
					t.Error(err)
					return
				}
			}
		}(id)
	}
	wg.Wait()

	for _, id := range ids {
		s, err := w.GetSession(id)
		require.NoError(t, err)
		require.Len(t, s.TSTs, 1)
	}
}
