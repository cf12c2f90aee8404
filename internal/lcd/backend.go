package lcd

// Backend performs the raw file I/O against the driver's filesystem surface.
// Implementations must not retain any display state between calls.
type Backend interface {
	// WriteParam writes value verbatim to the parameter file.
	WriteParam(p Param, value string) error

	// WriteText writes text verbatim to the display device.
	WriteText(text string) error

	// ReadParam returns the current, whitespace-trimmed parameter value.
	ReadParam(p Param) (string, error)

	// Name identifies the backend in logs and status output.
	Name() string
}
