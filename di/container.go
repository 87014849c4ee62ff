package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"vh-server/api"
	"vh-server/api/eventservice"
	"vh-server/config"
	"vh-server/dao/redis"
	"vh-server/db"
	"vh-server/history"
	"vh-server/server"
	"vh-server/server/handlers"
	services "vh-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient            db.RedisClient
	RedisEventDao          *redis.RedisEventDAO
	SearchHistoryDao       *redis.RedisSearchHistoryDAO
	HistoryStore           *history.Store
	EventsAPI              eventservice.EventsAPI
	DiscoveryService       *services.DiscoveryService
	FilterSessionService   *services.FilterSessionService
	EventsRefresherService *services.EventsRefresherService
	EventHandler           *handlers.EventHandler
	SearchHandler          *handlers.SearchHandler
	FilterHandler          *handlers.FilterHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	VolunteerHubHttpServer *server.VolunteerHubHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.RedisAddress(),
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewGeoRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize DAOs
	redisEventDao := redis.NewRedisEventDAO(redisClient)
	searchHistoryDao := redis.NewRedisSearchHistoryDAO(redisClient)

	// Initialize the history store from its persisted state
	historyStore := history.NewStore(searchHistoryDao)

	// Initialize EventsAPI - fixture-backed mock outside prod
	var eventsAPI eventservice.EventsAPI
	if env != "prod" {
		eventsAPI = eventservice.NewEventsApiClientMock(config.GetResourcePath(config.EVENTS_RESOURCE))
		log.Printf("Using mock events api")
	} else {
		log.Printf("Using prod events api")
		httpClient := api.NewHTTPClient(config.EventServiceBaseURL())
		eventsAPI = eventservice.NewEventsApiClient(httpClient)
	}

	// Initialize service layer
	discoveryService := services.NewDiscoveryService(eventsAPI, redisEventDao, historyStore)
	filterSessionService := services.NewFilterSessionService()
	eventsRefresherService := services.NewEventsRefresherService(redisEventDao, eventsAPI)

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(discoveryService, filterSessionService)
	searchHandler := handlers.NewSearchHandler(discoveryService)
	filterHandler := handlers.NewFilterHandler(filterSessionService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(eventHandler, searchHandler, filterHandler, muxRouter)

	// initialize volunteer hub server
	volunteerHubHttpServer := server.NewVolunteerHubHttpServer(router, muxRouter)

	return &Container{
		RedisClient:            redisClient,
		RedisEventDao:          redisEventDao,
		SearchHistoryDao:       searchHistoryDao,
		HistoryStore:           historyStore,
		EventsAPI:              eventsAPI,
		DiscoveryService:       discoveryService,
		FilterSessionService:   filterSessionService,
		EventsRefresherService: eventsRefresherService,
		EventHandler:           eventHandler,
		SearchHandler:          searchHandler,
		FilterHandler:          filterHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		VolunteerHubHttpServer: volunteerHubHttpServer,
	}
}
