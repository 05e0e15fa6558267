// Package telemetry provides windowed patrol statistics and CSV output for
// the headless host.
package telemetry

import "github.com/pthm-cable/skitter/behavior"

// EventType identifies telemetry events.
type EventType uint8

const (
	EventStateChange EventType = iota
	EventDestinationPlanned
	EventPlannerMiss
	EventArrival
	EventStuckReplan
	EventObstacleRefusal
)

// Event is a single patrol event attributed to one agent.
type Event struct {
	Type    EventType
	Tick    int32
	AgentID uint32

	// Optional fields depending on event type
	From       behavior.State // state change
	To         behavior.State
	Distance   float64 // planned leg distance
	Duration   float64 // completed leg duration
	Transition bool    // destination lies on a diverging surface
}

// NewStateChangeEvent creates a state change event.
func NewStateChangeEvent(tick int32, agentID uint32, from, to behavior.State) Event {
	return Event{
		Type:    EventStateChange,
		Tick:    tick,
		AgentID: agentID,
		From:    from,
		To:      to,
	}
}

// NewDestinationPlannedEvent creates a destination planned event.
func NewDestinationPlannedEvent(tick int32, agentID uint32, distance float64, transition bool) Event {
	return Event{
		Type:       EventDestinationPlanned,
		Tick:       tick,
		AgentID:    agentID,
		Distance:   distance,
		Transition: transition,
	}
}

// NewPlannerMissEvent creates an event for a planning pass that found nothing.
func NewPlannerMissEvent(tick int32, agentID uint32) Event {
	return Event{
		Type:    EventPlannerMiss,
		Tick:    tick,
		AgentID: agentID,
	}
}

// NewArrivalEvent creates an arrival event for a completed leg.
func NewArrivalEvent(tick int32, agentID uint32, legDuration float64) Event {
	return Event{
		Type:     EventArrival,
		Tick:     tick,
		AgentID:  agentID,
		Duration: legDuration,
	}
}

// NewStuckReplanEvent creates an event for a leg abandoned by stuck detection.
func NewStuckReplanEvent(tick int32, agentID uint32) Event {
	return Event{
		Type:    EventStuckReplan,
		Tick:    tick,
		AgentID: agentID,
	}
}

// NewObstacleRefusalEvent creates an event for a movement step refused by an
// opposing surface.
func NewObstacleRefusalEvent(tick int32, agentID uint32) Event {
	return Event{
		Type:    EventObstacleRefusal,
		Tick:    tick,
		AgentID: agentID,
	}
}
