package application

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"pnw-map/internal/domain/model"
)

// EventsService fetches the campus ICS feed and exposes its entries as
// discrete events.
type EventsService interface {
	Upcoming(ctx context.Context, limit int) ([]model.CampusEvent, error)
}

type eventsServiceImpl struct {
	feedURL    string
	httpClient *http.Client
	now        func() time.Time
}

// NewEventsService creates the service for a feed URL.
func NewEventsService(feedURL string) EventsService {
	return &eventsServiceImpl{
		feedURL:    feedURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		now:        time.Now,
	}
}

func (s *eventsServiceImpl) Upcoming(ctx context.Context, limit int) ([]model.CampusEvent, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", s.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ICS feed: %w (%v)", model.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ICS feed returned %s: %w", resp.Status, model.ErrUnavailable)
	}

	events, err := ParseEvents(resp.Body, s.now())
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

// ParseEvents parses an ICS document into upcoming events sorted by start
// time. Entries without a parseable start are skipped; an entry without an
// end gets its start as the end.
func ParseEvents(r io.Reader, now time.Time) ([]model.CampusEvent, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ICS feed: %w", err)
	}

	var events []model.CampusEvent
	for _, ev := range cal.Events() {
		start, err := ev.GetStartAt()
		if err != nil {
			continue
		}
		end, err := ev.GetEndAt()
		if err != nil {
			end = start
		}
		if end.Before(now) {
			continue
		}
		events = append(events, model.CampusEvent{
			UID:         ev.Id(),
			Summary:     propertyValue(ev, ics.ComponentPropertySummary),
			Description: propertyValue(ev, ics.ComponentPropertyDescription),
			Location:    propertyValue(ev, ics.ComponentPropertyLocation),
			StartsAt:    start,
			EndsAt:      end,
		})
	}

	sort.Slice(events, func(i, j int) bool { return events[i].StartsAt.Before(events[j].StartsAt) })
	return events, nil
}

func propertyValue(ev *ics.VEvent, prop ics.ComponentProperty) string {
	p := ev.GetProperty(prop)
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p.Value)
}
