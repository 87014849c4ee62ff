package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"vh-server/config"
	"vh-server/db"
	"vh-server/di"
	"vh-server/models"
	"vh-server/util"
)

func testRedisClient(redisClient db.RedisClient) db.RedisClient {
	// Set a key-value pair
	if err := redisClient.Set("mykey", "myvalue"); err != nil {
		log.Fatalf("Failed to set key: %v", err)
	}

	// Get the value for the key
	val, err := redisClient.Get("mykey")
	if err != nil {
		log.Fatalf("Failed to get key: %v", err)
	}
	fmt.Printf("mykey: %s\n", val)

	return redisClient
}

func testDiscoveryPipeline(container *di.Container) {
	log.Println("Running: testDiscoveryPipeline")
	events, err := container.DiscoveryService.ListEvents(models.FilterSet{}, models.DefaultSortKey, nil)
	if err != nil {
		log.Println("Error while running testDiscoveryPipeline: ", err)
		return
	}
	for _, e := range events {
		fmt.Println(e.ToString())
	}
}

func plotFeedOverview(container *di.Container) {
	buckets, err := container.DiscoveryService.Feed(models.FilterSet{}, nil)
	if err != nil {
		log.Println("Error building feed for plot: ", err)
		return
	}
	util.PlotFeedOverview(buckets)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}

	container := di.NewContainer(env)

	// testRedisClient(container.RedisClient)
	// testDiscoveryPipeline(container)
	// plotFeedOverview(container)

	fmt.Println("refreshing!")
	if err := container.EventsRefresherService.RefreshEventsData(); err != nil {
		log.Printf("Initial events refresh failed: %v", err)
	}
	fmt.Println("starting periodic job!")
	container.EventsRefresherService.StartPeriodicJob(config.EVENTS_REFRESHER_SERVICE_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.VolunteerHubHttpServer.Start()
}
