package event

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchByType(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(a, SceneBuilt, RectRecycled)
	d.Subscribe(b, RectRecycled)

	d.Dispatch(Event{Type: SceneBuilt, Data: SceneInfo{Seed: 1}})
	d.Dispatch(Event{Type: RectRecycled, Data: Recycle{Frame: 2, Index: 3}})
	d.Dispatch(Event{Type: Paused, Data: 4})

	assert.Len(t, a.got, 2)
	assert.Equal(t, []Event{{Type: RectRecycled, Data: Recycle{Frame: 2, Index: 3}}}, b.got)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(a, Paused)
	d.Subscribe(b, Paused)
	d.Unsubscribe(Paused, a)

	d.Dispatch(Event{Type: Paused, Data: 1})
	assert.Empty(t, a.got)
	assert.Len(t, b.got, 1)

	d.Reset(Paused)
	d.Dispatch(Event{Type: Paused, Data: 2})
	assert.Len(t, b.got, 1)
}

func TestNilDispatcherDrops(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: Paused}) })
}

func TestLogListener(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	d := NewDispatcher()
	d.Subscribe(LogListener(logger), AllTypes...)

	d.Dispatch(Event{Type: RectRecycled, Data: Recycle{Frame: 1, Index: 0}})
	assert.Empty(t, buf.String(), "recycles are debug output")

	d.Dispatch(Event{Type: SceneBuilt, Data: SceneInfo{Seed: 42, Rects: 100, Inks: [2]string{"Black", "Teal"}}})
	assert.Contains(t, buf.String(), "scene built")
	assert.Contains(t, buf.String(), "Black / Teal")

	d.Dispatch(Event{Type: SnapshotSaved, Data: "/tmp/a.png"})
	assert.Contains(t, buf.String(), "/tmp/a.png")
}
