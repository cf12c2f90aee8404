package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/sse"
	"github.com/smazurov/lcdctl/internal/events"
)

// registerEventRoutes registers the display event SSE endpoint.
func (s *Server) registerEventRoutes() {
	sse.Register(s.api, huma.Operation{
		OperationID: "events-stream",
		Method:      http.MethodGet,
		Path:        "/api/events",
		Summary:     "Server-Sent Events Stream",
		Description: "Real-time stream of parameter writes, text writes, clears and write failures",
		Tags:        []string{"events"},
		Security:    withAuth(),
		Errors:      []int{401},
	}, map[string]any{
		"param-written":   events.ParamWrittenEvent{},
		"text-written":    events.TextWrittenEvent{},
		"write-failed":    events.WriteFailedEvent{},
		"display-cleared": events.DisplayClearedEvent{},
	}, func(ctx context.Context, _ *struct{}, send sse.Sender) {
		eventCh := make(chan any, 10)

		unsubscribers := []func(){
			events.SubscribeToChannel[events.ParamWrittenEvent](s.eventBus, eventCh),
			events.SubscribeToChannel[events.TextWrittenEvent](s.eventBus, eventCh),
			events.SubscribeToChannel[events.WriteFailedEvent](s.eventBus, eventCh),
			events.SubscribeToChannel[events.DisplayClearedEvent](s.eventBus, eventCh),
		}
		defer func() {
			for _, unsub := range unsubscribers {
				unsub()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case event := <-eventCh:
				if err := send.Data(event); err != nil {
					return
				}
			}
		}
	})
}
