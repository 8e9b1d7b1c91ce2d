// Command tuninggen writes the engine's default tuning to a YAML file,
// as a starting point for balance experiments via TOWERWARS_TUNING.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"towerwars/internal/domain/strategy"

	"gopkg.in/yaml.v3"
)

func main() {
	var out string
	flag.StringVar(&out, "out", "tuning.yaml", "output path for the tuning file")
	flag.Parse()

	b, err := yaml.Marshal(strategy.DefaultTuning())
	if err != nil {
		log.Fatalf("marshal tuning: %v", err)
	}
	if err := os.WriteFile(out, b, 0o644); err != nil {
		log.Fatalf("write %s: %v", out, err)
	}

	fmt.Printf("wrote default tuning to %s\n", out)
}
