package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/smazurov/lcdctl/internal/lcd"
)

// displayError maps display failures onto HTTP errors.
func displayError(msg string, err error) error {
	switch {
	case errors.Is(err, lcd.ErrUnknownParam):
		return huma.Error404NotFound(msg, err)
	case errors.Is(err, lcd.ErrInvalidValue):
		return huma.Error422UnprocessableEntity(msg, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return huma.Error503ServiceUnavailable(msg, err)
	default:
		return huma.Error500InternalServerError(msg, err)
	}
}

func (s *Server) displayState() DisplayData {
	data := DisplayData{
		Backend:  s.display.Backend(),
		Geometry: s.display.Geometry(),
		Checks:   s.display.Probe(),
	}
	status, err := s.display.Status()
	if err != nil {
		data.Error = err.Error()
	} else {
		data.Status = &status
	}
	return data
}

func (s *Server) registerDisplayRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "get-display",
		Method:      http.MethodGet,
		Path:        "/api/display",
		Summary:     "Display Status",
		Description: "Read back the driver parameters and check access to each driver file",
		Tags:        []string{"display"},
		Security:    withAuth(),
		Errors:      []int{401},
	}, func(_ context.Context, _ *struct{}) (*DisplayResponse, error) {
		return &DisplayResponse{Body: s.displayState()}, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "write-text",
		Method:      http.MethodPost,
		Path:        "/api/display/text",
		Summary:     "Write Text",
		Description: "Write text at the cursor, or at row/col when both are given",
		Tags:        []string{"display"},
		Security:    withAuth(),
		Errors:      []int{400, 401, 422, 500},
	}, func(ctx context.Context, input *TextRequest) (*DisplayResponse, error) {
		row, col := input.Body.Row, input.Body.Col
		var err error
		switch {
		case row == nil && col == nil:
			err = s.display.WriteText(input.Body.Text)
		case row != nil && col != nil:
			err = s.display.Print(ctx, *row, *col, input.Body.Text)
		default:
			return nil, huma.Error400BadRequest("row and col must be given together")
		}
		if err != nil {
			return nil, displayError("Failed to write text", err)
		}
		return &DisplayResponse{Body: s.displayState()}, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID:   "clear-display",
		Method:        http.MethodPost,
		Path:          "/api/display/clear",
		Summary:       "Clear Display",
		Description:   "Raise the clear flag and wait for the driver to settle",
		Tags:          []string{"display"},
		Security:      withAuth(),
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{401, 500},
	}, func(ctx context.Context, _ *struct{}) (*struct{}, error) {
		if err := s.display.Clear(ctx); err != nil {
			return nil, displayError("Failed to clear display", err)
		}
		return nil, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID:   "set-cursor",
		Method:        http.MethodPost,
		Path:          "/api/display/cursor",
		Summary:       "Set Cursor",
		Description:   "Move the cursor to row/col",
		Tags:          []string{"display"},
		Security:      withAuth(),
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{401, 422, 500},
	}, func(ctx context.Context, input *CursorRequest) (*struct{}, error) {
		if err := s.display.SetCursor(ctx, input.Body.Row, input.Body.Col); err != nil {
			return nil, displayError("Failed to set cursor", err)
		}
		return nil, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID:   "write-param",
		Method:        http.MethodPut,
		Path:          "/api/display/params/{name}",
		Summary:       "Write Parameter",
		Description:   "Write a raw decimal value to a driver parameter",
		Tags:          []string{"display"},
		Security:      withAuth(),
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{401, 404, 422, 500},
	}, func(_ context.Context, input *ParamRequest) (*struct{}, error) {
		p, err := lcd.ParseParam(input.Name)
		if err != nil {
			return nil, displayError("Unknown parameter", err)
		}
		if err := s.display.WriteParam(p, input.Body.Value); err != nil {
			return nil, displayError("Failed to write parameter", err)
		}
		return nil, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID:   "render-screen",
		Method:        http.MethodPut,
		Path:          "/api/display/screen",
		Summary:       "Render Screen",
		Description:   "Draw a full screen layout. Lines that fail do not stop the rest.",
		Tags:          []string{"display"},
		Security:      withAuth(),
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{401, 422, 500},
	}, func(ctx context.Context, input *ScreenRequest) (*struct{}, error) {
		if err := s.display.Render(ctx, input.Body); err != nil {
			return nil, displayError("Failed to render screen", err)
		}
		return nil, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID:   "run-demo",
		Method:        http.MethodPost,
		Path:          "/api/display/demo",
		Summary:       "Run Demo",
		Description:   "Run the hello-world demo sequence. Blocks for the demo's hold time.",
		Tags:          []string{"display"},
		Security:      withAuth(),
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{401, 503},
	}, func(ctx context.Context, _ *struct{}) (*struct{}, error) {
		if err := lcd.RunDemo(ctx, s.display); err != nil {
			return nil, displayError("Demo interrupted", err)
		}
		return nil, nil
	})
}
