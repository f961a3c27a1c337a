package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnEmitOrder(t *testing.T) {
	b := New(nil)
	var got []int
	b.On("tick", func(args ...any) { got = append(got, 1) })
	b.On("tick", func(args ...any) { got = append(got, 2) })
	b.On("tick", func(args ...any) { got = append(got, 3) })

	b.Emit("tick")
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestEmitArgs(t *testing.T) {
	b := New(nil)
	var gotA string
	var gotB int
	b.On("pair", func(args ...any) {
		require.Len(t, args, 2)
		gotA = args[0].(string)
		gotB = args[1].(int)
	})

	b.Emit("pair", "hello", 42)
	assert.Equal(t, "hello", gotA)
	assert.Equal(t, 42, gotB)
}

func TestEmitNoSubscribers(t *testing.T) {
	b := New(nil)
	assert.NotPanics(t, func() { b.Emit("nobody", 1, 2, 3) })
}

func TestOff(t *testing.T) {
	b := New(nil)
	var got []string
	b.On("tick", func(args ...any) { got = append(got, "first") })
	sub := b.On("tick", func(args ...any) { got = append(got, "second") })
	b.On("tick", func(args ...any) { got = append(got, "third") })

	b.Off(sub)
	b.Emit("tick")
	assert.Equal(t, []string{"first", "third"}, got)
	assert.Equal(t, 2, b.SubscriberCount("tick"))
}

func TestOffTwice(t *testing.T) {
	b := New(nil)
	sub := b.On("tick", func(args ...any) {})
	b.Off(sub)
	assert.NotPanics(t, func() { b.Off(sub) })
	assert.Equal(t, 0, b.SubscriberCount("tick"))
}

func TestOffUnknownSubscription(t *testing.T) {
	b := New(nil)
	b.On("tick", func(args ...any) {})
	assert.NotPanics(t, func() { b.Off(Subscription{}) })
	assert.Equal(t, 1, b.SubscriberCount("tick"))
}

func TestPanicIsolation(t *testing.T) {
	b := New(nil)
	var afterRan bool
	b.On("boom", func(args ...any) { panic("handler failure") })
	b.On("boom", func(args ...any) { afterRan = true })

	assert.NotPanics(t, func() { b.Emit("boom") })
	assert.True(t, afterRan, "handler after a panicking handler must still run")
}

func TestSubscribeDuringEmit(t *testing.T) {
	b := New(nil)
	var lateRan bool
	b.On("tick", func(args ...any) {
		b.On("tick", func(args ...any) { lateRan = true })
	})

	b.Emit("tick")
	assert.False(t, lateRan, "handler added mid-emit must not run in the same dispatch")

	b.Emit("tick")
	assert.True(t, lateRan)
}

func TestNoDeduplication(t *testing.T) {
	b := New(nil)
	count := 0
	fn := func(args ...any) { count++ }
	b.On("tick", fn)
	b.On("tick", fn)

	b.Emit("tick")
	assert.Equal(t, 2, count)
}
