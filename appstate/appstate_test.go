package appstate

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlfranklin/AppStateAuto/constants"
	"github.com/carlfranklin/AppStateAuto/events"
	"github.com/carlfranklin/AppStateAuto/logger"
	"github.com/carlfranklin/AppStateAuto/persist"
)

type recordingSubscriber struct {
	mtx      sync.Mutex
	received []*events.Event
}

func (s *recordingSubscriber) ConsumeEvent(ctx context.Context, event *events.Event, globalProperties map[string]interface{}) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.received = append(s.received, event)
}

func (s *recordingSubscriber) all() []*events.Event {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	out := make([]*events.Event, len(s.received))
	copy(out, s.received)
	return out
}

type countingRenderer struct {
	renders atomic.Int32
}

func (r *countingRenderer) RequestRender() {
	r.renders.Add(1)
}

func TestGetterReturnsExactlySetValue(t *testing.T) {
	logger.Init(strconv.Itoa(4))
	state := NewAppState(events.NewEventPublisher())

	for _, message := range []string{"hello", "", "hello again", "héllo wörld"} {
		state.SetMessage(message)
		assert.Equal(t, message, state.GetMessage())
	}

	for _, count := range []int{1, 0, -5, 1000000} {
		state.SetCount(count)
		assert.Equal(t, count, state.GetCount())
	}
}

func TestDefaultMessageTriggersStartupNotification(t *testing.T) {
	logger.Init(strconv.Itoa(4))
	publisher := events.NewEventPublisher()
	subscriber := &recordingSubscriber{}
	publisher.RegisterSubscriber(subscriber)

	state := NewAppState(publisher)

	assert.Equal(t, constants.DEFAULT_MESSAGE, state.GetMessage())
	assert.Equal(t, constants.DEFAULT_COUNT, state.GetCount())

	received := subscriber.all()
	require.Len(t, received, 1)
	assert.Equal(t, constants.STATE_PROPERTY_CHANGED_EVENT, received[0].Event)
	properties, ok := received[0].Properties.(*events.PropertyChangedEventProperties)
	require.True(t, ok)
	assert.Equal(t, constants.STATE_PROPERTY_MESSAGE, properties.Property)
	assert.Equal(t, constants.DEFAULT_MESSAGE, properties.Value)
}

func TestSetMessageRendersOnceAndNotifiesOnce(t *testing.T) {
	logger.Init(strconv.Itoa(4))
	publisher := events.NewEventPublisher()
	state := NewAppState(publisher)

	subscriber := &recordingSubscriber{}
	publisher.RegisterSubscriber(subscriber)
	renderer := &countingRenderer{}
	state.SetRenderer(renderer)

	state.SetMessage("hello")

	assert.Equal(t, int32(1), renderer.renders.Load())
	received := subscriber.all()
	require.Len(t, received, 1)
	properties, ok := received[0].Properties.(*events.PropertyChangedEventProperties)
	require.True(t, ok)
	assert.Equal(t, constants.STATE_PROPERTY_MESSAGE, properties.Property)
	assert.Equal(t, "hello", properties.Value)
}

func TestSettingSameValueStillNotifies(t *testing.T) {
	logger.Init(strconv.Itoa(4))
	publisher := events.NewEventPublisher()
	state := NewAppState(publisher)

	subscriber := &recordingSubscriber{}
	publisher.RegisterSubscriber(subscriber)

	state.SetMessage("same")
	state.SetMessage("same")

	assert.Len(t, subscriber.all(), 2)
}

func TestIncrementCount(t *testing.T) {
	logger.Init(strconv.Itoa(4))
	publisher := events.NewEventPublisher()
	state := NewAppState(publisher)

	subscriber := &recordingSubscriber{}
	publisher.RegisterSubscriber(subscriber)

	assert.Equal(t, 1, state.IncrementCount())
	assert.Equal(t, 2, state.IncrementCount())
	assert.Equal(t, 2, state.GetCount())

	received := subscriber.all()
	require.Len(t, received, 2)
	properties, ok := received[1].Properties.(*events.PropertyChangedEventProperties)
	require.True(t, ok)
	assert.Equal(t, constants.STATE_PROPERTY_COUNT, properties.Property)
	assert.Equal(t, 2, properties.Value)
}

func TestRestoreAppliesSnapshotWithoutPropertyEvents(t *testing.T) {
	logger.Init(strconv.Itoa(4))
	publisher := events.NewEventPublisher()
	state := NewAppState(publisher)

	subscriber := &recordingSubscriber{}
	publisher.RegisterSubscriber(subscriber)
	renderer := &countingRenderer{}
	state.SetRenderer(renderer)

	state.Restore(&persist.Snapshot{
		Message:      "restored",
		Count:        9,
		LastSaveTime: time.Now().Add(-10 * time.Second),
	})

	assert.Equal(t, "restored", state.GetMessage())
	assert.Equal(t, 9, state.GetCount())
	assert.True(t, state.GetLastSaveTime().IsZero())
	assert.Equal(t, int32(1), renderer.renders.Load())

	received := subscriber.all()
	require.Len(t, received, 1)
	assert.Equal(t, constants.STATE_RESTORED_EVENT, received[0].Event)
}

func TestSnapshotIsACopy(t *testing.T) {
	logger.Init(strconv.Itoa(4))
	state := NewAppState(events.NewEventPublisher())
	state.SetMessage("original")

	snapshot := state.Snapshot()
	snapshot.Message = "mutated"
	snapshot.Count = 99

	assert.Equal(t, "original", state.GetMessage())
	assert.Equal(t, 0, state.GetCount())
}

func TestSetRendererNilFallsBackToNoop(t *testing.T) {
	logger.Init(strconv.Itoa(4))
	state := NewAppState(events.NewEventPublisher())
	state.SetRenderer(nil)

	// must not panic
	state.SetMessage("still fine")
	assert.Equal(t, "still fine", state.GetMessage())
}
