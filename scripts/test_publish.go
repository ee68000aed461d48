//go:build ignore

// Публикует тестовое событие анализа и ждёт, пока воркер прогреет кеш наборов данных.
//
//	go run scripts/test_publish.go -redis localhost:6379 -region ooty
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type analysis struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Region string `json:"region"`
}

type analysisCreatedEvent struct {
	SessionID uuid.UUID `json:"session_id"`
	Analysis  analysis  `json:"analysis"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	region := flag.String("region", "ooty", "Region id of the analysis")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// в ключе есть отпечаток каталога, поэтому ищем по шаблону
	patterns := []string{
		"dataset:*:factors:" + *region,
		"dataset:*:historical:" + *region,
	}
	// чтобы увидеть именно прогрев воркером
	for _, p := range patterns {
		if keys, err := client.Keys(ctx, p).Result(); err == nil && len(keys) > 0 {
			client.Del(ctx, keys...)
		}
	}

	event := analysisCreatedEvent{
		SessionID: uuid.New(),
		Analysis: analysis{
			ID:     "2",
			Date:   time.Now().Format("2006-01-02"),
			Region: *region,
		},
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:analysis:created",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: stream:analysis:created\n")
	fmt.Printf("   Message ID: %s\n", id)
	fmt.Printf("   Session ID: %s\n", event.SessionID)
	fmt.Printf("   Region: %s\n", *region)
	fmt.Printf("\nWaiting for dataset cache keys...\n")

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout waiting for cache warm-up")
			return
		case <-ticker.C:
			var found []string
			matched := 0
			for _, p := range patterns {
				keys, err := client.Keys(ctx, p).Result()
				if err != nil || len(keys) == 0 {
					break
				}
				matched++
				found = append(found, keys...)
			}
			if matched == len(patterns) {
				fmt.Println("Datasets cached:")
				for _, k := range found {
					ttl, _ := client.TTL(ctx, k).Result()
					fmt.Printf("   %s (ttl %s)\n", k, ttl)
				}
				return
			}
		}
	}
}
