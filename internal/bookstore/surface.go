package bookstore

// Surface is the user-visible side of the application. The terminal UI and
// the CLI each implement it.
type Surface interface {
	Error(msg string)
	Warn(msg string)
	Info(msg string)
	Success(msg string)

	// Refresh asks the surface to redraw and drop stale input.
	Refresh()
}

// Level classifies a surfaced message.
type Level string

const (
	LevelError   Level = "error"
	LevelWarn    Level = "warn"
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
)

// Notice is one surfaced message.
type Notice struct {
	Level Level
	Text  string
}

// Recorder is a Surface that keeps every notice in order.
type Recorder struct {
	Notices   []Notice
	Refreshes int
}

func (r *Recorder) Error(msg string)   { r.add(LevelError, msg) }
func (r *Recorder) Warn(msg string)    { r.add(LevelWarn, msg) }
func (r *Recorder) Info(msg string)    { r.add(LevelInfo, msg) }
func (r *Recorder) Success(msg string) { r.add(LevelSuccess, msg) }
func (r *Recorder) Refresh()           { r.Refreshes++ }

func (r *Recorder) add(level Level, msg string) {
	r.Notices = append(r.Notices, Notice{Level: level, Text: msg})
}

// Last returns the most recent notice.
func (r *Recorder) Last() (Notice, bool) {
	if len(r.Notices) == 0 {
		return Notice{}, false
	}
	return r.Notices[len(r.Notices)-1], true
}

// Levels returns the level of every notice in order.
func (r *Recorder) Levels() []Level {
	out := make([]Level, len(r.Notices))
	for i, n := range r.Notices {
		out[i] = n.Level
	}
	return out
}

// Reset drops all recorded notices.
func (r *Recorder) Reset() {
	r.Notices = nil
	r.Refreshes = 0
}
