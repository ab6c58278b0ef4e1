package service

import (
	"context"
	"errors"
	"testing"
)

func TestEventBus_Dispatch(t *testing.T) {
	bus := NewEventBus()

	var got []uint64
	bus.Subscribe(EventResponseCreated, func(ctx context.Context, evt Event) error {
		got = append(got, evt.ResponseID)
		return nil
	})
	bus.Subscribe(EventResponseCreated, func(ctx context.Context, evt Event) error {
		got = append(got, evt.ResponseID*10)
		return nil
	})

	bus.Publish(context.Background(), Event{Kind: EventResponseCreated, ResponseID: 7})

	if len(got) != 2 || got[0] != 7 || got[1] != 70 {
		t.Fatalf("both handlers should run in order, got %v", got)
	}
}

// 一个回调失败不影响后面的回调
func TestEventBus_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := NewEventBus()

	ran := false
	bus.Subscribe(EventEntryPublished, func(ctx context.Context, evt Event) error {
		return errors.New("boom")
	})
	bus.Subscribe(EventEntryPublished, func(ctx context.Context, evt Event) error {
		ran = true
		return nil
	})

	bus.Publish(context.Background(), Event{Kind: EventEntryPublished, EntryID: 1})

	if !ran {
		t.Fatal("second handler should still run after the first fails")
	}
}

// 没订阅者的事件静默丢弃
func TestEventBus_NoSubscribers(t *testing.T) {
	bus := NewEventBus()
	bus.Publish(context.Background(), Event{Kind: EventResponseCurated, ResponseID: 1})
}
