package main

import (
	"fmt"
	"net/http"
	"time"
)

var healthPaths = []string{"/healthz", "/readyz"}

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check liveness and readiness of a running server (API_URL or first arg)"
}

func (c *HealthCheckCommand) Run(args []string) error {
	base := baseURL()
	if len(args) > 0 {
		base = args[0]
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", base))

	client := &http.Client{Timeout: 5 * time.Second}
	for _, path := range healthPaths {
		elapsed, err := probe(client, base+path)
		if err != nil {
			PrintError("%s failed: %v", path, err)
			return err
		}
		if elapsed > slowResponseCap {
			PrintWarning("%s slow response time (%v)", path, elapsed)
		} else {
			PrintSuccess("%s passed (response time: %v)", path, elapsed)
		}
	}
	return nil
}

func probe(client *http.Client, url string) (time.Duration, error) {
	start := time.Now()
	resp, err := client.Get(url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("status code %d", resp.StatusCode)
	}
	return time.Since(start), nil
}
