package surf

// EventType classifies something that happened during a tick.
type EventType int

const (
	EventCollected EventType = iota // A reward hazard was hit
	EventLifeLost                   // The penalty hazard was hit
	EventRespawned                  // A hazard re-entered from the right edge without being hit
	EventGameOver
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventCollected:
		return "collected"
	case EventLifeLost:
		return "life_lost"
	case EventRespawned:
		return "respawned"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event describes a change between two consecutive snapshots.
type Event struct {
	Type  EventType
	Kind  HazardKind // Zero for EventGameOver
	Delta int        // Score delta applied, if any
}

// Events lists what happened in the tick that turned prev into next.
// next must be the result of Step(prev, ...).
func Events(prev, next State) []Event {
	if next.Tick == prev.Tick {
		return nil
	}

	var events []Event
	for i, h := range next.Hazards {
		switch {
		case next.LastHits[i] && h.Kind.CostsLife():
			events = append(events, Event{Type: EventLifeLost, Kind: h.Kind, Delta: h.ScoreDelta})
		case next.LastHits[i]:
			events = append(events, Event{Type: EventCollected, Kind: h.Kind, Delta: h.ScoreDelta})
		case h.X > prev.Hazards[i].X:
			events = append(events, Event{Type: EventRespawned, Kind: h.Kind})
		}
	}

	if next.Terminal && !prev.Terminal {
		events = append(events, Event{Type: EventGameOver})
	}
	return events
}
