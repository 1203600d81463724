// internal/event/types.go
package event

const (
	SceneBuilt    EventType = "SceneBuilt"    // Data: SceneInfo
	RectRecycled  EventType = "RectRecycled"  // Data: Recycle
	FrameWritten  EventType = "FrameWritten"  // Data: string, the PNG path
	SnapshotSaved EventType = "SnapshotSaved" // Data: string, the PNG path
	Paused        EventType = "Paused"        // Data: int, the frame
	Resumed       EventType = "Resumed"       // Data: int, the frame
)

// SceneInfo describes a freshly built scene.
type SceneInfo struct {
	Seed  int64
	Rects int
	Inks  [2]string
}

// Recycle reports a rect replaced after leaving the canvas.
type Recycle struct {
	Frame int
	Index int
}
