package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findbar/internal/domain"
	"findbar/internal/logging"
)

func TestPublishReachesSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan DomainEvent, 2)
	b.Subscribe(EventSearchSettled, func(e DomainEvent) { got <- e })
	b.Subscribe(EventSearchSettled, func(e DomainEvent) { got <- e })

	b.Publish(domain.SearchSettledEvent{Query: "r", Count: 3})

	for i := 0; i < 2; i++ {
		select {
		case e := <-got:
			settled, ok := e.(domain.SearchSettledEvent)
			require.True(t, ok)
			assert.Equal(t, 3, settled.Count)
		case <-time.After(2 * time.Second):
			t.Fatal("handler not called")
		}
	}
}

func TestSubscribersOnlySeeTheirType(t *testing.T) {
	b := New()
	defer b.Close()

	var mu sync.Mutex
	var seen []EventType
	done := make(chan struct{})

	b.Subscribe(EventSearchCleared, func(e DomainEvent) {
		mu.Lock()
		seen = append(seen, e.Type())
		mu.Unlock()
		close(done)
	})

	b.Publish(domain.SearchStartedEvent{Query: "x"})
	b.Publish(domain.SearchClearedEvent{})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler not called")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []EventType{EventSearchCleared}, seen)
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	defer b.Close()

	removed := make(chan struct{}, 1)
	kept := make(chan struct{}, 1)

	unsubscribe := b.Subscribe(EventTabChanged, func(DomainEvent) { removed <- struct{}{} })
	b.Subscribe(EventTabChanged, func(DomainEvent) { kept <- struct{}{} })
	unsubscribe()

	b.Publish(domain.TabChangedEvent{From: domain.TabAll, To: domain.TabFiles})

	select {
	case <-kept:
	case <-time.After(2 * time.Second):
		t.Fatal("remaining handler not called")
	}

	select {
	case <-removed:
		t.Fatal("unsubscribed handler was called")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New()
	defer b.Close()

	ok := make(chan struct{})
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(DomainEvent) { close(ok) })

	b.Publish(domain.ErrorEvent{Message: "x"})

	select {
	case <-ok:
	case <-time.After(2 * time.Second):
		t.Fatal("second handler not called")
	}
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New()
	called := make(chan struct{}, 1)
	b.Subscribe(EventSearchCleared, func(DomainEvent) { called <- struct{}{} })

	b.Close()
	b.Close()
	b.Publish(domain.SearchClearedEvent{})

	select {
	case <-called:
		t.Fatal("handler called after close")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBusLoggerResolvedOnce(t *testing.T) {
	b := New().(*bus)
	defer b.Close()

	require.NotNil(t, b.log)
	assert.Same(t, logging.NewLogger("eventbus"), b.log)
	assert.Equal(t, "eventbus", b.log.Data["component"])
}
