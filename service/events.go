package service

import (
	"Nexus/pkg/log"
	"context"
	"sync"

	"go.uber.org/zap"
)

type EventKind string

const (
	EventEntryPublished    EventKind = "entry.published"
	EventResponseCreated   EventKind = "response.created"
	EventResponseApplauded EventKind = "response.applauded"
	EventResponseCurated   EventKind = "response.curated"
)

// Event 领域事件，冗余计数的维护全部走事件回调而不是写路径内联重算
type Event struct {
	Kind       EventKind
	EntryID    uint64
	ResponseID uint64
	ParentID   *uint64
	UserID     uint64
	TopicIDs   []uint64
}

type EventHandler func(ctx context.Context, evt Event) error

// EventBus 进程内同步事件总线
type EventBus struct {
	mu       sync.RWMutex
	handlers map[EventKind][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[EventKind][]EventHandler)}
}

func (b *EventBus) Subscribe(kind EventKind, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[kind] = append(b.handlers[kind], handler)
}

// Publish 同步分发；计数维护是缓存性质的，单个回调失败只记日志不打断业务
func (b *EventBus) Publish(ctx context.Context, evt Event) {
	b.mu.RLock()
	handlers := b.handlers[evt.Kind]
	b.mu.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, evt); err != nil {
			log.L.Error("event handler failed",
				zap.String("kind", string(evt.Kind)),
				zap.Uint64("entry_id", evt.EntryID),
				zap.Error(err))
		}
	}
}
