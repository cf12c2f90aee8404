package lcd

import (
	"errors"
	"testing"
)

func TestParseParam(t *testing.T) {
	tests := []struct {
		in      string
		want    Param
		wantErr bool
	}{
		{"lcd_row", ParamRow, false},
		{"row", ParamRow, false},
		{"COL", ParamCol, false},
		{" clear_flag ", ParamClearFlag, false},
		{"lcd_backlight", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseParam(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownParam) {
					t.Errorf("ParseParam(%q) error = %v, want ErrUnknownParam", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseParam(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseParam(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGeometryContains(t *testing.T) {
	g := Geometry{Rows: 2, Cols: 16}

	if err := g.contains(1, 15); err != nil {
		t.Errorf("contains(1, 15) = %v", err)
	}
	if err := g.contains(2, 0); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("contains(2, 0) = %v, want ErrInvalidValue", err)
	}

	// Zero geometry only rejects negatives.
	var open Geometry
	if err := open.contains(40, 80); err != nil {
		t.Errorf("zero geometry contains(40, 80) = %v", err)
	}
}
