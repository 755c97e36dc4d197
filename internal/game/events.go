package game

type EventType int

const (
	EventRunStarted EventType = iota
	EventLaneChange
	EventJump
	EventCarPassed
	EventCoinCollected
	EventCrash
	EventGameOver
	EventNewBest
	EventTierSelected
)

type Event struct {
	Type EventType
	X, Z float64
	Data int // Generic payload (lane, reward, score).
}

type EventHandler func(Event)

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
