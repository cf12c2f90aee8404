package events

import (
	"testing"
	"time"
)

func TestBus_PublishSubscribe(t *testing.T) {
	bus := New()
	received := make(chan TextWrittenEvent, 1)

	unsub := bus.Subscribe(func(e TextWrittenEvent) {
		received <- e
	})
	defer unsub()

	event := TextWrittenEvent{
		Text:      "Hello, World!",
		Bytes:     13,
		Path:      "/dev/hd44780_driver",
		Timestamp: "2025-01-27T10:30:00Z",
	}
	bus.Publish(event)

	got := <-received
	if got.Text != event.Text {
		t.Errorf("Expected text %q, got %q", event.Text, got.Text)
	}
	if got.Bytes != 13 {
		t.Errorf("Expected 13 bytes, got %d", got.Bytes)
	}
}

func TestBus_MultipleSubscribers(_ *testing.T) {
	bus := New()
	received1 := make(chan ParamWrittenEvent, 1)
	received2 := make(chan ParamWrittenEvent, 1)

	unsub1 := bus.Subscribe(func(e ParamWrittenEvent) {
		received1 <- e
	})
	defer unsub1()

	unsub2 := bus.Subscribe(func(e ParamWrittenEvent) {
		received2 <- e
	})
	defer unsub2()

	bus.Publish(ParamWrittenEvent{Param: "lcd_row", Value: "1"})

	<-received1
	<-received2
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := New()
	received := make(chan WriteFailedEvent, 1)

	unsub := bus.Subscribe(func(e WriteFailedEvent) {
		received <- e
	})

	bus.Publish(WriteFailedEvent{Target: "lcd_row"})
	<-received

	unsub()

	bus.Publish(WriteFailedEvent{Target: "lcd_col"})
	select {
	case <-received:
		t.Fatal("Should not have received event after unsubscribe")
	case <-time.After(10 * time.Millisecond):
		// Expected - no event
	}
}

func TestBus_TypeIsolation(t *testing.T) {
	bus := New()
	cleared := make(chan DisplayClearedEvent, 1)

	unsub := bus.Subscribe(func(e DisplayClearedEvent) {
		cleared <- e
	})
	defer unsub()

	bus.Publish(TextWrittenEvent{Text: "x"})

	select {
	case e := <-cleared:
		t.Fatalf("DisplayClearedEvent subscriber received %+v", e)
	case <-time.After(10 * time.Millisecond):
	}
}

func TestBus_UnknownHandler(t *testing.T) {
	bus := New()
	unsub := bus.Subscribe(func(string) {})
	if unsub == nil {
		t.Fatal("Subscribe returned nil unsubscribe")
	}
	unsub()
}

func TestBus_NilPublish(_ *testing.T) {
	var bus *Bus
	bus.Publish(DisplayClearedEvent{})
}

func TestSubscribeToChannel(t *testing.T) {
	bus := New()
	ch := make(chan any, 10)

	unsub := SubscribeToChannel[ParamWrittenEvent](bus, ch)
	defer unsub()

	bus.Publish(ParamWrittenEvent{Param: "lcd_col", Value: "0"})

	received := <-ch
	ev, ok := received.(ParamWrittenEvent)
	if !ok {
		t.Fatalf("Expected ParamWrittenEvent, got %T", received)
	}
	if ev.Param != "lcd_col" {
		t.Errorf("Expected param lcd_col, got %s", ev.Param)
	}
}

func TestSubscribeToChannel_NonBlocking(_ *testing.T) {
	bus := New()
	ch := make(chan any) // No buffer

	unsub := SubscribeToChannel[TextWrittenEvent](bus, ch)
	defer unsub()

	done := make(chan bool, 1)
	go func() {
		bus.Publish(TextWrittenEvent{Text: "dropped"})
		done <- true
	}()

	<-done // Should complete without blocking
}
