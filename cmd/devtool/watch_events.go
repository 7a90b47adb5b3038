package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
)

const eventsStreamPath = "/api/v1/events/stream"

type WatchEventsCommand struct{}

func (c *WatchEventsCommand) Name() string {
	return "watch-events"
}

func (c *WatchEventsCommand) Description() string {
	return "Print events from the SSE stream of a running server"
}

func (c *WatchEventsCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	limit := fs.Int("n", 0, "Stop after n events (0 = until interrupted)")
	types := fs.String("types", "", "Comma-separated event types to subscribe to")
	if err := fs.Parse(args); err != nil {
		return err
	}

	url := baseURL() + eventsStreamPath
	if *types != "" {
		url += "?types=" + *types
	}

	PrintHeader(fmt.Sprintf("Watching %s", url))

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set(headerAPIKey, os.Getenv(envAPIKey))
	req.Header.Set("Accept", "text/event-stream")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	PrintSuccess("Connected")

	return readEvents(bufio.NewScanner(resp.Body), *limit)
}

// readEvents prints each event/data pair and returns after limit events when limit > 0
func readEvents(scanner *bufio.Scanner, limit int) error {
	seen := 0
	var eventType string
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event:"):
			eventType = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			PrintInfo("%s %s", eventType, strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		case line == "" && eventType != "":
			eventType = ""
			seen++
			if limit > 0 && seen >= limit {
				return nil
			}
		}
	}
	return scanner.Err()
}
