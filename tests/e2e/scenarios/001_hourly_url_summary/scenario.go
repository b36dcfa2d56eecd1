package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalEvents   = 6400 // Total number of request events to send
	contentLength = 6    // Transfer bytes per event
)

var (
	hours = []string{"09", "10", "11", "12"}
	urls  = []string{
		"https://example.com/",
		"https://example.com/about",
		"https://example.com/careers",
		"https://example.com/contact",
	}
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
		"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
		"curl/7.88.1",
	}
)

// ### End - fixed configs

type requestEvent struct {
	Url             string `json:"url"`
	RemoteAddr      string `json:"remoteAddr"`
	UserAgentString string `json:"userAgentString"`
	ServerName      string `json:"serverName"`
	Status          int    `json:"status"`
	ContentLength   int64  `json:"contentLength"`
	OccurredAt      string `json:"occurredAt"`
}

type summaryResponse struct {
	RequestID string                      `json:"requestId"`
	Summary   map[string][]map[string]any `json:"summary"`
}

// main runs the e2e scenario: 001_hourly_url_summary
//
// This scenario tests the end-to-end flow of request event tracking, fan-out
// summarization and summary querying. It sends 6,400 request events spread
// deterministically over four hours, four urls and four user agents, then
// reads the url summary back and checks the hour, day and month totals.
//
// What it tests:
//   - Request event tracking via POST /events
//   - Asynchronous fan-out of events into per-dimension counter increments
//   - Hour/day/month bucket truncation
//   - Summary reads via GET /summary/{dimension} with a date range
//   - Concurrent increments of the same counter rows are all counted
//
// Expected results:
//   - All events are accepted (202)
//   - The url summary over the day holds 16 hour rows (4 hours x 4 urls),
//     each with hits=400 and transfer=2400
//   - Each url's day row holds hits=1600 and transfer=9600
//   - Each url's month row holds hits=1600 and transfer=9600
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the usage analytics API server
	dateUTC := "2026-03-17"            // Date used for generating event timestamps (UTC)
	parallel := 8                      // Number of concurrent event requests to send

	fmt.Println("Starting e2e scenario: 001_hourly_url_summary")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("DATE_UTC: %s\n", dateUTC)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("TOTAL_EVENTS: %d\n", totalEvents)
	fmt.Println()

	client := &http.Client{Timeout: 30 * time.Second}

	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []error
	var acceptedRequest int64

	for i := 0; i < totalEvents; i++ {
		wg.Add(1)
		workerChan <- struct{}{} // Acquire worker slot

		go func(i int) {
			defer wg.Done()
			defer func() { <-workerChan }() // Release worker slot

			statusCode, err := sendEvent(client, baseURL, generateEvent(i, dateUTC))
			if err != nil {
				mu.Lock()
				errors = append(errors, fmt.Errorf("event %d: %w", i, err))
				mu.Unlock()
				fmt.Fprintf(os.Stderr, "ERROR: Event %d failed: %v\n", i, err)
				return
			}
			if statusCode == http.StatusAccepted {
				atomic.AddInt64(&acceptedRequest, 1)
			}
		}(i)
	}

	wg.Wait()

	fmt.Println()
	if len(errors) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d event sends failed\n", len(errors))
		os.Exit(1)
	}
	fmt.Printf("All events sent (accepted: %d)\n", atomic.LoadInt64(&acceptedRequest))

	// Give the background consumers a moment to drain the queue.
	fmt.Println("Waiting for summarization to settle...")
	time.Sleep(3 * time.Second)

	// Read the url summary for the whole day back and verify totals.
	summaryURL := fmt.Sprintf("%s/summary/sumUrl?start_date=%sT00:00:00Z&end_date=%sT23:59:59Z",
		baseURL, dateUTC, dateUTC)
	fmt.Printf("Querying %s\n", summaryURL)

	resp, err := client.Get(summaryURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Summary request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "ERROR: Summary request returned HTTP %d\n", resp.StatusCode)
		os.Exit(1)
	}

	var summary summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to decode summary response: %v\n", err)
		os.Exit(1)
	}

	failures := 0
	failures += checkRowCount(summary, "hour", len(hours)*len(urls))
	failures += checkRowTotals(summary, "hour", totalEvents/(len(hours)*len(urls)))
	failures += checkRowCount(summary, "day", len(urls))
	failures += checkRowTotals(summary, "day", totalEvents/len(urls))
	failures += checkRowCount(summary, "month", len(urls))
	failures += checkRowTotals(summary, "month", totalEvents/len(urls))

	fmt.Println()
	if failures > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d summary checks failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("=== Statistics ===")
	fmt.Printf("Total events sent: %d\n", totalEvents)
	fmt.Printf("Hour rows: %d, day rows: %d, month rows: %d\n",
		len(summary.Summary["hour"]), len(summary.Summary["day"]), len(summary.Summary["month"]))
	fmt.Println("Scenario completed successfully")
}

func generateEvent(i int, dateUTC string) requestEvent {
	hour := hours[i%len(hours)]
	url := urls[(i/len(hours))%len(urls)]
	ua := userAgents[(i/(len(hours)*len(urls)))%len(userAgents)]

	minute := i % 60
	second := (i * 7) % 60
	timestamp := fmt.Sprintf("%sT%s:%02d:%02dZ", dateUTC, hour, minute, second)

	return requestEvent{
		Url:             url,
		RemoteAddr:      fmt.Sprintf("203.0.113.%d", i%250),
		UserAgentString: ua,
		ServerName:      "e2e-1",
		Status:          200,
		ContentLength:   contentLength,
		OccurredAt:      timestamp,
	}
}

func sendEvent(client *http.Client, baseURL string, event requestEvent) (int, error) {
	jsonData, err := json.Marshal(event)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal event: %w", err)
	}

	req, err := http.NewRequest("POST", baseURL+"/events", bytes.NewReader(jsonData))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return resp.StatusCode, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}

func checkRowCount(summary summaryResponse, period string, expected int) int {
	rows := summary.Summary[period]
	if len(rows) != expected {
		fmt.Fprintf(os.Stderr, "FAIL: %s rows: got %d, want %d\n", period, len(rows), expected)
		return 1
	}
	fmt.Printf("OK: %s rows: %d\n", period, len(rows))
	return 0
}

func checkRowTotals(summary summaryResponse, period string, expectedHits int) int {
	failures := 0
	for _, row := range summary.Summary[period] {
		hits, _ := row["hits"].(float64)
		transfer, _ := row["transfer"].(float64)
		if int(hits) != expectedHits || int(transfer) != expectedHits*contentLength {
			fmt.Fprintf(os.Stderr, "FAIL: %s row %v: hits=%d transfer=%d, want hits=%d transfer=%d\n",
				period, row["url"], int(hits), int(transfer), expectedHits, expectedHits*contentLength)
			failures++
		}
	}
	return failures
}
