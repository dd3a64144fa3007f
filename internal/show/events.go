package show

type EventType int

const (
	EventSceneChanged EventType = iota // sequencer moved to a new scene
	EventSceneSkipped                  // the viewer forced the move
)

type Event struct {
	Type  EventType
	Scene int
	Name  string
}

type EventHandler func(Event)

// EventBus dispatches synchronously on the frame thread.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
