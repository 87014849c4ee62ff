package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// HTTP server config
const SERVER_ADDRESS = ":8080"

// Events Refresher config
const EVENTS_REFRESHER_SERVICE_SCHEDULE_MINUTES = 30

// Event service API
const EVENT_SERVICE_ENDPOINT_BASE_V1 = "https://api.volunteerhub.example/v1"

// Radius used when annotating a snapshot with viewer distances. Wide on
// purpose: the nearby bucket applies its own, much smaller cutoff.
const DISTANCE_ANNOTATION_RADIUS_KM = 500.0

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const EVENTS_RESOURCE = "events.json"
const EVENT_STATIC_RESOURCE = "event_static.json"

// RedisAddress returns the Redis address, honoring the env override.
func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS
}

// EventServiceBaseURL returns the event service endpoint, honoring the env
// override.
func EventServiceBaseURL() string {
	if base := os.Getenv("EVENT_SERVICE_BASE_URL"); base != "" {
		return base
	}
	return EVENT_SERVICE_ENDPOINT_BASE_V1
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
