package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingSink struct {
	mu        sync.Mutex
	delivered []Notification
}

func (s *recordingSink) Deliver(n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delivered = append(s.delivered, n)
	return nil
}

func (s *recordingSink) snapshot() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Notification(nil), s.delivered...)
}

func TestDispatcher_DeliversAsync(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, zap.NewNop().Sugar())

	d.Notify(5, "Novo agendamento para 07/09 às 10:00.", "/bookings/1")
	d.Notify(9, "Agendamento cancelado.", "")

	require.Eventually(t, func() bool {
		return len(sink.snapshot()) == 2
	}, time.Second, 10*time.Millisecond)

	got := sink.snapshot()
	assert.Equal(t, uint(5), got[0].RecipientID)
	assert.Equal(t, "/bookings/1", got[0].Link)
	assert.Equal(t, uint(9), got[1].RecipientID)
}
