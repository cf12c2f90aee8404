package api

import "github.com/smazurov/lcdctl/internal/lcd"

// HealthData reports service liveness.
type HealthData struct {
	Status  string `json:"status" example:"ok" doc:"Service status"`
	Message string `json:"message" example:"API is healthy" doc:"Status message"`
}

// HealthResponse wraps HealthData.
type HealthResponse struct {
	Body HealthData
}

// VersionData describes the running build.
type VersionData struct {
	Version   string `json:"version" example:"dev" doc:"Application version"`
	GitCommit string `json:"git_commit" example:"abc1234" doc:"Git commit SHA"`
	BuildDate string `json:"build_date" example:"2024-12-15 14:30" doc:"Build timestamp"`
	GoVersion string `json:"go_version" example:"go1.24.0" doc:"Go compiler version"`
	Platform  string `json:"platform" example:"linux/arm64" doc:"Platform"`
}

// VersionResponse wraps VersionData.
type VersionResponse struct {
	Body VersionData
}

// TextRequest writes text, optionally moving the cursor first.
type TextRequest struct {
	Body struct {
		Text string `json:"text" maxLength:"256" example:"Hello, World!" doc:"Text to write at the cursor"`
		Row  *int   `json:"row,omitempty" minimum:"0" example:"0" doc:"Row to move to first (requires col)"`
		Col  *int   `json:"col,omitempty" minimum:"0" example:"0" doc:"Column to move to first (requires row)"`
	}
}

// CursorRequest moves the cursor.
type CursorRequest struct {
	Body struct {
		Row int `json:"row" minimum:"0" example:"1" doc:"Cursor row"`
		Col int `json:"col" minimum:"0" example:"0" doc:"Cursor column"`
	}
}

// ParamRequest writes a raw driver parameter.
type ParamRequest struct {
	Name string `path:"name" example:"lcd_row" doc:"Parameter name (lcd_row, lcd_col, lcd_clear_flag)"`
	Body struct {
		Value int `json:"value" minimum:"0" example:"1" doc:"Decimal value to write"`
	}
}

// ScreenRequest draws a full screen layout.
type ScreenRequest struct {
	Body lcd.Screen
}

// DisplayData is the current display state.
type DisplayData struct {
	Backend  string          `json:"backend" example:"sysfs" doc:"Active I/O backend"`
	Geometry lcd.Geometry    `json:"geometry" doc:"Configured panel size"`
	Status   *lcd.Status     `json:"status,omitempty" doc:"Parameters read back from the driver"`
	Error    string          `json:"error,omitempty" doc:"Read-back failure, if any"`
	Checks   []lcd.PathCheck `json:"checks" doc:"Access checks for each driver file"`
}

// DisplayResponse wraps DisplayData.
type DisplayResponse struct {
	Body DisplayData
}

// LogsResponse returns buffered log history.
type LogsResponse struct {
	Body struct {
		Entries []LogEntryData `json:"entries" doc:"Buffered log entries, oldest first"`
	}
}

// LogEntryData is a single buffered log line.
type LogEntryData struct {
	Timestamp  string         `json:"timestamp" example:"2025-01-09T10:30:00.123Z" doc:"Log timestamp"`
	Level      string         `json:"level" example:"info" doc:"Log level"`
	Module     string         `json:"module" example:"lcd" doc:"Source module"`
	Message    string         `json:"message" doc:"Log message"`
	Attributes map[string]any `json:"attributes,omitempty" doc:"Structured log attributes"`
}
