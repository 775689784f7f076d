package history

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushNewestFirst(t *testing.T) {
	var l Log
	l = l.Push("phone", 0)
	l = l.Push("case", 0)
	assert.Equal(t, Log{"case", "phone"}, l)
}

func TestPushDeduplicatesMovingToFront(t *testing.T) {
	var l Log
	l = l.Push("phone", 0)
	l = l.Push("case", 0)
	l = l.Push("phone", 0)
	assert.Equal(t, Log{"phone", "case"}, l)
	assert.Len(t, l, 2)
}

func TestPushCap(t *testing.T) {
	var l Log
	for _, q := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		l = l.Push(q, 0)
	}
	assert.Equal(t, Log{"g", "f", "e", "d", "c"}, l)
}

func TestPushCustomCap(t *testing.T) {
	var l Log
	for _, q := range []string{"a", "b", "c"} {
		l = l.Push(q, 2)
	}
	assert.Equal(t, Log{"c", "b"}, l)
}

func TestPushEmptyTextIgnored(t *testing.T) {
	l := Log{"phone"}
	assert.Equal(t, l, l.Push("", 0))
}

func TestPushDoesNotMutateReceiver(t *testing.T) {
	l := Log{"phone"}
	_ = l.Push("case", 0)
	assert.Equal(t, Log{"phone"}, l)
}

// --- Store ---

type fakeSink struct {
	data   map[string]string
	getErr error
	setErr error
}

func newFakeSink() *fakeSink {
	return &fakeSink{data: make(map[string]string)}
}

func (f *fakeSink) Get(_ context.Context, key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeSink) Set(_ context.Context, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func TestStoreRoundTrip(t *testing.T) {
	sink := newFakeSink()
	store := NewStore(sink)
	ctx := context.Background()

	log := Log{"mouse", "keyboard"}
	require.NoError(t, store.Save(ctx, log))
	assert.Equal(t, log, store.Load(ctx))
}

func TestStoreLoadMissingKey(t *testing.T) {
	store := NewStore(newFakeSink())
	assert.Nil(t, store.Load(context.Background()))
}

func TestStoreLoadCorruptPayload(t *testing.T) {
	sink := newFakeSink()
	sink.data[Key] = "not json{{{"
	store := NewStore(sink)
	assert.Nil(t, store.Load(context.Background()), "corrupt history degrades to empty")
}

func TestStoreLoadReadFailure(t *testing.T) {
	sink := newFakeSink()
	sink.getErr = errors.New("disk on fire")
	store := NewStore(sink)
	assert.Nil(t, store.Load(context.Background()))
}

func TestStoreLoadTruncatesOversizedPayload(t *testing.T) {
	sink := newFakeSink()
	sink.data[Key] = `["a","b","c","d","e","f","g"]`
	store := NewStore(sink)
	assert.Len(t, store.Load(context.Background()), MaxEntries)
}

func TestStoreSaveFailure(t *testing.T) {
	sink := newFakeSink()
	sink.setErr = errors.New("read-only filesystem")
	store := NewStore(sink)
	err := store.Save(context.Background(), Log{"mouse"})
	require.Error(t, err)
	assert.ErrorIs(t, err, sink.setErr)
}
