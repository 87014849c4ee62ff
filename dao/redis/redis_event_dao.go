package redis

import (
	"encoding/json"
	"fmt"

	"vh-server/db"
	"vh-server/models/event"
)

const EVENTS_GEO_KEY_V1 = "events_geo_v1"
const EVENTS_GEO_MEMBER_FORMAT_V1 = "events_geo_member_v1:%s"

// RedisEventDAO keeps the geo-indexed copy of the event snapshot. The index
// only serves distance lookups; the snapshot of record always comes from the
// event service.
type RedisEventDAO struct {
	client db.RedisClient
}

// NewRedisEventDAO initializes a RedisEventDAO with the Redis client.
func NewRedisEventDAO(client db.RedisClient) *RedisEventDAO {
	return &RedisEventDAO{client: client}
}

// UpsertEvent stores the event as a geolocation with the event's JSON data.
func (dao *RedisEventDAO) UpsertEvent(e event.Event) error {
	ctx := dao.client.GetContext()
	memberKey := fmt.Sprintf(EVENTS_GEO_MEMBER_FORMAT_V1, e.EventID)
	return dao.client.AddLocationWithJSON(ctx, EVENTS_GEO_KEY_V1, memberKey, e.EventLat, e.EventLon, e)
}

// GetNearbyEvents retrieves events within the radius (km) of the viewer, each
// with its DistanceKm set.
func (dao *RedisEventDAO) GetNearbyEvents(lat, lon, radius float64) ([]event.Event, error) {
	members, err := dao.client.GetLocationsWithinRadius(EVENTS_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisEventDAO] failed to get events: %v", err)
	}

	events := make([]event.Event, len(members))
	for i, m := range members {
		if err := json.Unmarshal([]byte(m.Data), &events[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event JSON: %v", err)
		}
		dist := m.DistanceKm
		events[i].DistanceKm = &dist
	}
	return events, nil
}

// GetDistances returns a map of event id to distance (km) from the viewer,
// for annotating a snapshot.
func (dao *RedisEventDAO) GetDistances(lat, lon, radius float64) (map[string]float64, error) {
	events, err := dao.GetNearbyEvents(lat, lon, radius)
	if err != nil {
		return nil, err
	}

	distances := make(map[string]float64, len(events))
	for _, e := range events {
		if e.DistanceKm != nil {
			distances[e.EventID] = *e.DistanceKm
		}
	}
	return distances, nil
}
