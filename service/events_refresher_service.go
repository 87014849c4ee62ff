package services

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"vh-server/api/eventservice"
	"vh-server/dao/redis"
	"vh-server/models"
)

// EventsRefresherService periodically pulls the full event snapshot from the
// event service and upserts it into the geo index so distance lookups stay
// current.
type EventsRefresherService struct {
	eventDao  *redis.RedisEventDAO
	eventsAPI eventservice.EventsAPI
	scheduler *cron.Cron
}

// NewEventsRefresherService constructs a new Refresher with dependencies.
func NewEventsRefresherService(
	eventDao *redis.RedisEventDAO,
	eventsAPI eventservice.EventsAPI,
) *EventsRefresherService {
	return &EventsRefresherService{
		eventDao:  eventDao,
		eventsAPI: eventsAPI,
	}
}

// StartPeriodicJob schedules the background refresh at the given interval.
func (er *EventsRefresherService) StartPeriodicJob(interval time.Duration) {
	er.scheduler = cron.New()
	spec := fmt.Sprintf("@every %s", interval)
	if _, err := er.scheduler.AddFunc(spec, func() {
		log.Println("[EventsRefresherService] Running periodic events refresher job.")
		if err := er.RefreshEventsData(); err != nil {
			log.Printf("[EventsRefresherService] RefreshEventsData returned error: %v", err)
		} else {
			log.Println("[EventsRefresherService] RefreshEventsData completed successfully.")
		}
	}); err != nil {
		log.Printf("[EventsRefresherService] Failed to schedule refresh job: %v", err)
		return
	}
	er.scheduler.Start()
}

// Stop halts the background schedule.
func (er *EventsRefresherService) Stop() {
	if er.scheduler != nil {
		er.scheduler.Stop()
	}
}

// RefreshEventsData fetches the snapshot, dedupes it and upserts every event
// into the geo index.
func (er *EventsRefresherService) RefreshEventsData() error {
	snapshot, err := er.eventsAPI.ListEvents(models.EventFilterParams{})
	if err != nil {
		return fmt.Errorf("failed to list events for refresh: %w", err)
	}
	log.Printf("[EventsRefresherService] Fetched %d events", len(snapshot))

	seenIDs := make(map[string]struct{})
	upserted := 0
	for _, e := range snapshot {
		if _, dup := seenIDs[e.EventID]; dup {
			log.Printf("[EventsRefresherService] Skipping duplicate event ID=%s", e.EventID)
			continue
		}
		seenIDs[e.EventID] = struct{}{}

		if err := er.eventDao.UpsertEvent(e); err != nil {
			log.Printf("[EventsRefresherService] Upsert failed for %s: %v", e.EventID, err)
			continue
		}
		upserted++
	}

	log.Printf("[EventsRefresherService] Upserted %d/%d events", upserted, len(snapshot))
	return nil
}
