package publisher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"udaan/pkg/requestcontext"
)

func TestEmitEnqueues(t *testing.T) {
	p := New(2)
	at := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), at)

	p.Emit(ctx, "acme", "general")

	select {
	case e := <-p.Entries():
		assert.Equal(t, "acme", e.Query)
		assert.Equal(t, "general", e.Type)
		assert.Equal(t, at, e.CreatedAt)
	default:
		t.Fatal("expected an entry")
	}
}

func TestEmitDropsWhenFull(t *testing.T) {
	p := New(1)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		p.Emit(ctx, "first", "general")
		p.Emit(ctx, "second", "general")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Emit blocked on a full buffer")
	}

	require.Len(t, p.Entries(), 1)
	assert.Equal(t, "first", (<-p.Entries()).Query)
}
