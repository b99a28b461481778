package pipeline

import "time"

// EventType represents the lifecycle phases of a pipeline stage
type EventType string

const (
	EventStageStart EventType = "stage_start"
	EventStageEnd   EventType = "stage_end"
)

// Event represents a lifecycle event during a query run
type Event struct {
	Type      EventType // Type of event
	RunID     string    // Identifies one query run across its events
	Stage     string    // Stage name, e.g. "filter_region"
	Timestamp time.Time // When the event occurred
	Rows      int       // Rows produced by the stage; set on stage_end
}

// Observer interface for event subscribers
// Observers receive events as a query run moves through its stages
type Observer interface {
	OnEvent(event Event)
}
