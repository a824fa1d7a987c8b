// Command shadow_compare fetches the same schedule queries from the
// legacy JS implementation and this service and reports divergence.
// Used during the consolidation to confirm the Go engine reproduces
// the newer legacy behaviour before the old one is retired.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"reflect"
	"time"
)

type target struct {
	Name     string
	Path     string
	Critical bool
}

var defaultTargets = []target{
	{Name: "today", Path: "/api/v1/schedule/today", Critical: true},
	{Name: "current", Path: "/api/v1/schedule/current", Critical: false}, // clock-dependent
	{Name: "week", Path: "/api/v1/schedule/week", Critical: true},
	{Name: "subjects", Path: "/api/v1/subjects", Critical: true},
	{Name: "timetables", Path: "/api/v1/timetables", Critical: true},
	{Name: "byDate", Path: "/api/v1/schedule/date/2025-12-15", Critical: true},
	{Name: "byDate-friday", Path: "/api/v1/schedule/date/2025-12-19", Critical: true},
	{Name: "byDate-weekend", Path: "/api/v1/schedule/date/2025-12-20", Critical: true},
}

func main() {
	var (
		goBase     string
		legacyBase string
		timeout    time.Duration
	)

	flag.StringVar(&goBase, "go-base", "http://localhost:8080", "Go API base URL")
	flag.StringVar(&legacyBase, "legacy-base", "http://localhost:3000", "Legacy API base URL")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	client := &http.Client{Timeout: timeout}
	breaking := 0

	for _, t := range defaultTargets {
		match, err := compare(client, goBase, legacyBase, t)
		switch {
		case err != nil:
			fmt.Printf("ERROR  %-16s %v\n", t.Name, err)
			if t.Critical {
				breaking++
			}
		case !match:
			fmt.Printf("DIFF   %-16s %s\n", t.Name, t.Path)
			if t.Critical {
				breaking++
			}
		default:
			fmt.Printf("OK     %-16s\n", t.Name)
		}
	}

	if breaking > 0 {
		log.Printf("%d critical divergence(s)", breaking)
		os.Exit(1)
	}
}

func compare(client *http.Client, goBase, legacyBase string, t target) (bool, error) {
	goBody, err := fetch(client, goBase+t.Path)
	if err != nil {
		return false, fmt.Errorf("go: %w", err)
	}
	legacyBody, err := fetch(client, legacyBase+t.Path)
	if err != nil {
		return false, fmt.Errorf("legacy: %w", err)
	}

	var goEnv, legacyEnv map[string]interface{}
	if err := json.Unmarshal(goBody, &goEnv); err != nil {
		return false, fmt.Errorf("go body: %w", err)
	}
	if err := json.Unmarshal(legacyBody, &legacyEnv); err != nil {
		return false, fmt.Errorf("legacy body: %w", err)
	}

	// Timestamps always differ between the two services.
	delete(goEnv, "timestamp")
	delete(legacyEnv, "timestamp")

	return reflect.DeepEqual(goEnv, legacyEnv), nil
}

func fetch(client *http.Client, url string) ([]byte, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck
	return io.ReadAll(resp.Body)
}
