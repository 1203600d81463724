// internal/event/log.go
package event

import "github.com/charmbracelet/log"

// AllTypes lists every event type, for listeners that want everything.
var AllTypes = []EventType{SceneBuilt, RectRecycled, FrameWritten, SnapshotSaved, Paused, Resumed}

// LogListener writes events to logger. Per-frame noise goes to debug.
func LogListener(logger *log.Logger) Listener {
	return ListenerFunc(func(e Event) {
		switch data := e.Data.(type) {
		case SceneInfo:
			logger.Info("scene built", "seed", data.Seed, "rects", data.Rects, "inks", data.Inks[0]+" / "+data.Inks[1])
		case Recycle:
			logger.Debug("rect recycled", "frame", data.Frame, "index", data.Index)
		default:
			if e.Type == FrameWritten {
				logger.Debug("wrote frame", "path", data)
				return
			}
			logger.Info(string(e.Type), "data", data)
		}
	})
}
