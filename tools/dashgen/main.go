package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/affiliatehub/shopee-relay/tools/dashgen/dashboards"
	"github.com/affiliatehub/shopee-relay/tools/dashgen/rules"
)

const generatedHeader = "# Generated by tools/dashgen. Do not edit by hand.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, validateOnly bool) error {
	artifacts := map[string][]byte{}

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview().Build()
		if err != nil {
			return fmt.Errorf("building overview dashboard: %w", err)
		}
		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding dashboard: %w", err)
		}
		artifacts[filepath.Join("grafana", "data", "relay-overview.json")] = append(data, '\n')
	}

	if cfg.RulesEnabled {
		recording, err := yaml.Marshal(rules.RecordingRules())
		if err != nil {
			return fmt.Errorf("encoding recording rules: %w", err)
		}
		alerts, err := yaml.Marshal(rules.AlertRules())
		if err != nil {
			return fmt.Errorf("encoding alert rules: %w", err)
		}
		artifacts[filepath.Join("prometheus", "relay-recording-rules.yaml")] = append([]byte(generatedHeader), recording...)
		artifacts[filepath.Join("prometheus", "relay-alerts.yaml")] = append([]byte(generatedHeader), alerts...)
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	for rel, data := range artifacts {
		path := filepath.Join(cfg.OutputDir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("dashgen: wrote %s\n", path)
	}
	return nil
}
