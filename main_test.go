package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/charminar-game/game/engine"
	"github.com/wricardo/charminar-game/game/service"
	"github.com/wricardo/charminar-game/validate"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName != "Charminar" {
		t.Errorf("Expected app name Charminar, got %s", AppName)
	}
}

// writeProfiles creates a config directory holding the default tuning under
// the given names
func writeProfiles(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		cfg := engine.DefaultConfig()
		cfg.Name = name
		cfg.Seed = 5
		data, err := json.Marshal(cfg)
		if err != nil {
			t.Fatalf("Failed to marshal profile: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, name+".json"), data, 0644); err != nil {
			t.Fatalf("Failed to write profile: %v", err)
		}
	}
	return dir
}

func TestInitializeServices(t *testing.T) {
	gameService, err := initializeServices(writeProfiles(t, "classic"))
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}
	if gameService == nil {
		t.Fatal("Expected game service to be initialized")
	}

	configs, err := gameService.ListConfigs(context.Background())
	if err != nil {
		t.Fatalf("ListConfigs failed: %v", err)
	}
	if len(configs) != 1 || configs[0].ConfigID != "classic" {
		t.Errorf("Expected the classic profile, got %+v", configs)
	}
}

func TestInitializeServices_InvalidConfigDir(t *testing.T) {
	if _, err := initializeServices("/non/existent/path"); err == nil {
		t.Error("Expected error for non-existent config directory")
	}
}

func TestNewApp(t *testing.T) {
	app := newApp()

	expected := []string{"play", "simulate", "validate", "configs"}
	if len(app.Commands) != len(expected) {
		t.Fatalf("Expected %d commands, got %d", len(expected), len(app.Commands))
	}
	for i, name := range expected {
		if app.Commands[i].Name != name {
			t.Errorf("Expected command %d to be %s, got %s", i, name, app.Commands[i].Name)
		}
	}
	if app.Action == nil {
		t.Error("Expected a default action")
	}
}

func TestSimulate(t *testing.T) {
	gameService, err := initializeServices(writeProfiles(t, "classic"))
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	t.Run("single run", func(t *testing.T) {
		var buf bytes.Buffer
		opts := service.SimulationOptions{MaxTicks: 300, Seed: 9}
		if err := simulate(context.Background(), gameService, &buf, "classic", 1, opts); err != nil {
			t.Fatalf("simulate failed: %v", err)
		}

		var result service.SimulationResult
		if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
			t.Fatalf("Expected a JSON object, got %q: %v", buf.String(), err)
		}
		if result.Seed != 9 {
			t.Errorf("Expected seed 9, got %d", result.Seed)
		}
		if result.Total != 177 {
			t.Errorf("Expected 177 consumables, got %d", result.Total)
		}
		if !strings.Contains(buf.String(), `"reason": "`) {
			t.Errorf("Expected the reason encoded by name, got %s", buf.String())
		}
	})

	t.Run("batch", func(t *testing.T) {
		var buf bytes.Buffer
		opts := service.SimulationOptions{MaxTicks: 120, Seed: 20}
		if err := simulate(context.Background(), gameService, &buf, "classic", 3, opts); err != nil {
			t.Fatalf("simulate failed: %v", err)
		}

		var results []service.SimulationResult
		if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
			t.Fatalf("Expected a JSON array, got %q: %v", buf.String(), err)
		}
		if len(results) != 3 {
			t.Fatalf("Expected 3 results, got %d", len(results))
		}
		for i, r := range results {
			if r.Seed != int64(20+i) {
				t.Errorf("Expected run %d to use seed %d, got %d", i, 20+i, r.Seed)
			}
		}
	})

	t.Run("unknown profile", func(t *testing.T) {
		var buf bytes.Buffer
		err := simulate(context.Background(), gameService, &buf, "missing", 1, service.SimulationOptions{MaxTicks: 10})
		if err == nil {
			t.Error("Expected error for unknown profile")
		}
	})
}

func TestPrintValidation(t *testing.T) {
	tests := []struct {
		name        string
		results     []validate.ValidationResult
		expectValid bool
		expectOut   string
	}{
		{
			name: "all valid",
			results: []validate.ValidationResult{
				{File: "classic.json", Valid: true, Info: []string{"✓ Name: classic"}},
			},
			expectValid: true,
			expectOut:   "All configurations are valid!",
		},
		{
			name: "one invalid",
			results: []validate.ValidationResult{
				{File: "classic.json", Valid: true},
				{File: "broken.json", Valid: false, Errors: []string{"Invalid JSON: oops"}},
			},
			expectValid: false,
			expectOut:   "❌ Invalid JSON: oops",
		},
		{
			name:        "empty directory",
			expectValid: true,
			expectOut:   "No configurations found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			if got := printValidation(&buf, test.results); got != test.expectValid {
				t.Errorf("Expected %v, got %v", test.expectValid, got)
			}
			if !strings.Contains(buf.String(), test.expectOut) {
				t.Errorf("Expected output to contain %q, got:\n%s", test.expectOut, buf.String())
			}
		})
	}
}

func TestShippedConfigs(t *testing.T) {
	if _, err := os.Stat("configs"); os.IsNotExist(err) {
		t.Skip("Skipping test - configs directory not found")
	}

	results, err := validate.ValidateDir("configs")
	if err != nil {
		t.Fatalf("ValidateDir failed: %v", err)
	}
	for _, r := range results {
		if !r.Valid {
			t.Errorf("Expected %s to be valid, got %v", r.File, r.Errors)
		}
	}
}
