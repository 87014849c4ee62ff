package services

import (
	"log"
	"time"

	"vh-server/api/eventservice"
	"vh-server/config"
	"vh-server/dao/redis"
	"vh-server/discovery"
	"vh-server/history"
	"vh-server/models"
	"vh-server/models/event"
)

// Location holds a viewer position for distance annotation.
type Location struct {
	Lat float64
	Lon float64
}

// DiscoveryService runs the event discovery pipeline: snapshot from the event
// service, optional distance annotation from the geo index, then the pure
// filter/sort/bucket engine. Re-running the pipeline has no side effects;
// only an explicit search touches the history log.
type DiscoveryService struct {
	eventsApi    eventservice.EventsAPI
	eventDao     *redis.RedisEventDAO
	historyStore *history.Store
	now          func() time.Time
}

// NewDiscoveryService constructs a DiscoveryService with its collaborators.
func NewDiscoveryService(
	eventsApi eventservice.EventsAPI,
	eventDao *redis.RedisEventDAO,
	historyStore *history.Store) *DiscoveryService {

	return &DiscoveryService{
		eventsApi:    eventsApi,
		eventDao:     eventDao,
		historyStore: historyStore,
		now:          time.Now,
	}
}

// ListEvents returns the flat filtered, sorted event list.
func (ds *DiscoveryService) ListEvents(filters models.FilterSet, sortKey models.SortKey, viewer *Location) ([]event.Event, error) {
	return ds.listEvents(filters, sortKey, "", viewer)
}

// Search is ListEvents plus a free-text query. Confirming a search is the one
// place the history log is written.
func (ds *DiscoveryService) Search(filters models.FilterSet, sortKey models.SortKey, query string, viewer *Location) ([]event.Event, error) {
	events, err := ds.listEvents(filters, sortKey, query, viewer)
	if err != nil {
		return nil, err
	}
	ds.historyStore.Record(query)
	return events, nil
}

func (ds *DiscoveryService) listEvents(filters models.FilterSet, sortKey models.SortKey, query string, viewer *Location) ([]event.Event, error) {
	visible, err := ds.visibleSnapshot(filters, query, viewer)
	if err != nil {
		return nil, err
	}
	return discovery.SortEvents(visible, sortKey), nil
}

// Feed returns the bucketized landing view.
func (ds *DiscoveryService) Feed(filters models.FilterSet, viewer *Location) ([]discovery.Bucket, error) {
	visible, err := ds.visibleSnapshot(filters, "", viewer)
	if err != nil {
		return nil, err
	}
	return discovery.BuildBuckets(visible), nil
}

// ExpandBucket returns one bucket's full member list for the "see all" view.
// An empty sortKey keeps the bucket's default order.
func (ds *DiscoveryService) ExpandBucket(bucketID string, filters models.FilterSet, sortKey models.SortKey, viewer *Location) ([]event.Event, error) {
	visible, err := ds.visibleSnapshot(filters, "", viewer)
	if err != nil {
		return nil, err
	}
	return discovery.ExpandBucket(bucketID, visible, sortKey), nil
}

// GetEvent returns the full record for a selected event.
func (ds *DiscoveryService) GetEvent(eventID string) (*event.Event, error) {
	return ds.eventsApi.GetEvent(eventID)
}

// Suggestions exposes the recent-searches affordance.
func (ds *DiscoveryService) Suggestions(currentQuery string) []string {
	return ds.historyStore.Suggestions(currentQuery)
}

func (ds *DiscoveryService) visibleSnapshot(filters models.FilterSet, query string, viewer *Location) ([]event.Event, error) {
	snapshot, err := ds.eventsApi.ListEvents(models.EventFilterParams{})
	if err != nil {
		return nil, err
	}

	snapshot = ds.annotateDistances(snapshot, viewer)
	return discovery.FilterEvents(snapshot, filters, query, ds.now()), nil
}

// annotateDistances sets DistanceKm on snapshot events the geo index knows
// about. No viewer position, or a failing index, just leaves distances unset.
func (ds *DiscoveryService) annotateDistances(snapshot []event.Event, viewer *Location) []event.Event {
	if viewer == nil {
		return snapshot
	}

	distances, err := ds.eventDao.GetDistances(viewer.Lat, viewer.Lon, config.DISTANCE_ANNOTATION_RADIUS_KM)
	if err != nil {
		log.Printf("[DiscoveryService] Distance annotation unavailable: %v", err)
		return snapshot
	}

	annotated := make([]event.Event, len(snapshot))
	copy(annotated, snapshot)
	for i := range annotated {
		if dist, ok := distances[annotated[i].EventID]; ok {
			d := dist
			annotated[i].DistanceKm = &d
		}
	}
	return annotated
}
