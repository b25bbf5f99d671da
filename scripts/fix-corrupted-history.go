package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// Minimal shape check for stored comparison records
type historyRecord struct {
	ID        string `json:"id"`
	Name1     string `json:"name1"`
	Name2     string `json:"name2"`
	Timestamp int64  `json:"timestamp"`
}

const historyKey = "pokemon-comparison-history"
const maxHistory = 10

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Inspecting comparison history...")

	data, err := client.Get(ctx, historyKey).Result()
	if err == redis.Nil {
		fmt.Println("No history stored, nothing to do")
		return
	}
	if err != nil {
		log.Fatal("Failed to read history:", err)
	}

	var records []historyRecord
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		fmt.Printf("✗ Corrupted JSON in %s: %v\n", historyKey, err)
		confirmAndDelete(ctx, client)
		return
	}

	var broken int
	for i, rec := range records {
		if rec.Name1 == "" || rec.Name2 == "" || rec.Timestamp <= 0 {
			fmt.Printf("✗ Malformed record at index %d: %+v\n", i, rec)
			broken++
		}
	}

	fmt.Printf("\nChecked %d records, found %d malformed\n", len(records), broken)
	if len(records) > maxHistory {
		fmt.Printf("History exceeds the %d-entry bound (%d entries)\n", maxHistory, len(records))
		broken++
	}

	if broken == 0 {
		fmt.Println("History is healthy!")
		return
	}

	confirmAndDelete(ctx, client)
}

func confirmAndDelete(ctx context.Context, client *redis.Client) {
	fmt.Print("\nDo you want to DELETE the history key? (yes/no): ")
	var response string
	fmt.Scanln(&response)

	if response == "yes" {
		if err := client.Del(ctx, historyKey).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", historyKey, err)
			return
		}
		fmt.Println("Deleted", historyKey)
	} else {
		fmt.Println("Aborted - no changes made")
	}
}
