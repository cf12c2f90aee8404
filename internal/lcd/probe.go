package lcd

// PathCheck describes whether a driver file is present and writable by this process.
type PathCheck struct {
	Name     string `json:"name" example:"lcd_row" doc:"Parameter name or \"device\""`
	Path     string `json:"path" example:"/sys/module/hd44780_driver/parameters/lcd_row" doc:"File path"`
	Exists   bool   `json:"exists" doc:"Whether the file exists"`
	Writable bool   `json:"writable" doc:"Whether this process may write the file"`
	Error    string `json:"error,omitempty" doc:"Access check failure"`
}

// Probe checks every parameter file and the device node.
func (d *Display) Probe() []PathCheck {
	checks := make([]PathCheck, 0, len(Params)+1)
	for _, p := range Params {
		checks = append(checks, checkPath(string(p), d.ParamPath(p)))
	}
	return append(checks, checkPath("device", d.opts.DevicePath))
}
