package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tailored-agentic-units/observe/config"
)

func main() {
	configFile := flag.String("config", "", "Path to a JSON or YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sink, err := cfg.NewObserver(os.Stderr)
	if err != nil {
		log.Fatalf("Failed to create observer: %v", err)
	}

	a, b, c := cfg.Values()
	r, err := runScenario(a, b, c, sink)
	if err != nil {
		log.Fatalf("Scenario failed: %v", err)
	}

	fmt.Printf("Notifications: %v\n", r.Notifications)
	fmt.Printf("Observers on first entity: %d\n", r.FirstObservers)
	fmt.Printf("Observers on second entity: %d\n", r.SecondObservers)
}
