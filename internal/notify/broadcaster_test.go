package notify_test

import (
	"testing"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster_DeliversToAllSubscribers(t *testing.T) {
	b := notify.New()

	ch1, cancel1 := b.Subscribe()
	defer cancel1()
	ch2, cancel2 := b.Subscribe()
	defer cancel2()

	b.LedgerChanged()

	for _, ch := range []<-chan struct{}{ch1, ch2} {
		select {
		case <-ch:
		default:
			t.Fatal("subscriber did not receive the signal")
		}
	}
}

func TestBroadcaster_CoalescesPendingSignals(t *testing.T) {
	b := notify.New()
	ch, cancel := b.Subscribe()
	defer cancel()

	b.LedgerChanged()
	b.LedgerChanged()
	b.LedgerChanged()

	select {
	case <-ch:
	default:
		t.Fatal("expected one pending signal")
	}

	// Undrained repeats collapse into the single buffered slot.
	select {
	case <-ch:
		t.Fatal("expected repeats to coalesce")
	default:
	}
}

func TestBroadcaster_CancelStopsDelivery(t *testing.T) {
	b := notify.New()
	ch, cancel := b.Subscribe()
	cancel()

	require.NotPanics(t, func() { b.LedgerChanged() })

	select {
	case <-ch:
		t.Fatal("cancelled subscriber received a signal")
	default:
	}
}

func TestBroadcaster_NoSubscribers(t *testing.T) {
	b := notify.New()
	assert.NotPanics(t, func() { b.LedgerChanged() })
}
