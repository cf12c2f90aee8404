package events

// Event type constants for kelindar/event.
const (
	TypeParamWritten uint32 = iota + 1
	TypeTextWritten
	TypeWriteFailed
	TypeDisplayCleared
	TypeLogEntry
)

// Event interface required by kelindar/event.
type Event interface {
	Type() uint32
}

// ParamWrittenEvent is published after a driver parameter file was written.
type ParamWrittenEvent struct {
	Param     string `json:"param" example:"lcd_row" doc:"Driver parameter name"`
	Value     string `json:"value" example:"1" doc:"Value written"`
	Path      string `json:"path" example:"/sys/module/hd44780_driver/parameters/lcd_row" doc:"Target file"`
	Timestamp string `json:"timestamp" example:"2025-01-27T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for ParamWrittenEvent.
func (e ParamWrittenEvent) Type() uint32 { return TypeParamWritten }

// TextWrittenEvent is published after text reached the display device.
type TextWrittenEvent struct {
	Text      string `json:"text" example:"Hello, World!" doc:"Text written to the display"`
	Bytes     int    `json:"bytes" example:"13" doc:"Number of bytes written"`
	Path      string `json:"path" example:"/dev/hd44780_driver" doc:"Device file"`
	Timestamp string `json:"timestamp" example:"2025-01-27T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for TextWrittenEvent.
func (e TextWrittenEvent) Type() uint32 { return TypeTextWritten }

// WriteFailedEvent is published when opening or writing a target file failed.
type WriteFailedEvent struct {
	Target    string `json:"target" example:"lcd_row" doc:"Parameter name, or \"text\" for the device"`
	Path      string `json:"path" example:"/dev/hd44780_driver" doc:"File that could not be written"`
	Error     string `json:"error" example:"permission denied" doc:"Failure description"`
	Timestamp string `json:"timestamp" example:"2025-01-27T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for WriteFailedEvent.
func (e WriteFailedEvent) Type() uint32 { return TypeWriteFailed }

// DisplayClearedEvent is published after a clear request was accepted by the driver.
type DisplayClearedEvent struct {
	Timestamp string `json:"timestamp" example:"2025-01-27T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for DisplayClearedEvent.
func (e DisplayClearedEvent) Type() uint32 { return TypeDisplayCleared }

// LogEntryEvent represents a log entry for SSE streaming.
type LogEntryEvent struct {
	Timestamp  string         `json:"timestamp" example:"2025-01-09T10:30:00.123Z" doc:"Log timestamp"`
	Level      string         `json:"level" example:"info" doc:"Log level"`
	Module     string         `json:"module" example:"lcd" doc:"Source module"`
	Message    string         `json:"message" doc:"Log message"`
	Attributes map[string]any `json:"attributes,omitempty" doc:"Structured log attributes"`
}

// Type returns the event type identifier for LogEntryEvent.
func (e LogEntryEvent) Type() uint32 { return TypeLogEntry }
