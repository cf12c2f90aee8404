package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/smazurov/lcdctl/internal/events"
)

// waitFor polls cond until it holds; the event bus delivers asynchronously.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestSubscribe(t *testing.T) {
	bus := events.New()
	unsub := Subscribe(bus)
	defer unsub()

	rowBefore := testutil.ToFloat64(paramWrites.WithLabelValues("lcd_row"))
	bytesBefore := testutil.ToFloat64(textBytes)
	failBefore := testutil.ToFloat64(writeFailures.WithLabelValues("text"))
	clearsBefore := testutil.ToFloat64(clears)

	bus.Publish(events.ParamWrittenEvent{Param: "lcd_row", Value: "1"})
	bus.Publish(events.TextWrittenEvent{Text: "Hello, World!", Bytes: 13})
	bus.Publish(events.WriteFailedEvent{Target: "text"})
	bus.Publish(events.DisplayClearedEvent{})

	waitFor(t, func() bool {
		return testutil.ToFloat64(paramWrites.WithLabelValues("lcd_row")) == rowBefore+1 &&
			testutil.ToFloat64(textBytes) == bytesBefore+13 &&
			testutil.ToFloat64(writeFailures.WithLabelValues("text")) == failBefore+1 &&
			testutil.ToFloat64(clears) == clearsBefore+1
	})

	if testutil.ToFloat64(lastWrite) == 0 {
		t.Error("last write timestamp not set")
	}
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	bus := events.New()
	unsub := Subscribe(bus)
	unsub()

	before := testutil.ToFloat64(clears)
	bus.Publish(events.DisplayClearedEvent{})
	time.Sleep(20 * time.Millisecond)

	if got := testutil.ToFloat64(clears); got != before {
		t.Errorf("clears = %v after unsubscribe, want %v", got, before)
	}
}

func TestHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "lcdctl_lcd_text_writes_total") {
		t.Error("expected lcdctl metrics in response")
	}
}
