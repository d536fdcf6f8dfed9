package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewBaseEvent(t *testing.T) {
	aggregateID := uuid.New()

	before := time.Now().UTC()
	event := NewBaseEvent("report.submitted", aggregateID, "Report")
	after := time.Now().UTC()

	if event.EventID() == uuid.Nil {
		t.Error("expected non-nil event ID")
	}

	if event.EventType() != "report.submitted" {
		t.Errorf("expected event type %q, got %q", "report.submitted", event.EventType())
	}

	if event.AggregateID() != aggregateID {
		t.Errorf("expected aggregate ID %v, got %v", aggregateID, event.AggregateID())
	}

	if event.AggregateType() != "Report" {
		t.Errorf("expected aggregate type %q, got %q", "Report", event.AggregateType())
	}

	if event.OccurredAt().Before(before) || event.OccurredAt().After(after) {
		t.Errorf("expected occurredAt between %v and %v, got %v", before, after, event.OccurredAt())
	}
}

func TestBaseEventImplementsDomainEvent(t *testing.T) {
	var _ DomainEvent = BaseEvent{}
}

func TestEventCollector(t *testing.T) {
	var c EventCollector

	if len(c.Events()) != 0 {
		t.Fatal("expected no events on a fresh collector")
	}

	first := NewBaseEvent("assessment.completed", uuid.New(), "AppAssessment")
	second := NewBaseEvent("assessment.risky_app", uuid.New(), "AppAssessment")
	c.Record(first)
	c.Record(second)

	if got := len(c.Events()); got != 2 {
		t.Fatalf("expected 2 events, got %d", got)
	}

	cleared := c.ClearEvents()
	if len(cleared) != 2 {
		t.Fatalf("expected 2 cleared events, got %d", len(cleared))
	}
	if cleared[0].EventType() != "assessment.completed" {
		t.Errorf("unexpected first event type %q", cleared[0].EventType())
	}

	if len(c.Events()) != 0 {
		t.Error("expected collector to be empty after ClearEvents")
	}
}
