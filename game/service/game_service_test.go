package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/wricardo/charminar-game/game/engine"
	"github.com/wricardo/charminar-game/game/service"
	"github.com/wricardo/charminar-game/game/session"
)

var errMockNotFound = errors.New("configuration not found")

// MockConfigManager implements service.ConfigManager for testing
type MockConfigManager struct {
	configs map[string]*engine.GameConfig
}

func NewMockConfigManager() *MockConfigManager {
	classic := engine.DefaultConfig()
	classic.Seed = 11

	hard := engine.DefaultConfig()
	hard.Name = "hard"
	hard.StartingLives = 1
	hard.Aggressiveness = 1
	hard.Seed = 5

	return &MockConfigManager{
		configs: map[string]*engine.GameConfig{
			"classic": classic,
			"hard":    hard,
		},
	}
}

func (m *MockConfigManager) LoadConfig(name string) (*engine.GameConfig, error) {
	config, exists := m.configs[name]
	if !exists {
		return nil, errMockNotFound
	}
	return config, nil
}

func (m *MockConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	var infos []*service.ConfigInfo
	for id, config := range m.configs {
		infos = append(infos, &service.ConfigInfo{
			Filename: id + ".json",
			ConfigID: id,
			Name:     config.Name,
		})
	}
	return infos, nil
}

func (m *MockConfigManager) GetDefault() *engine.GameConfig {
	return m.configs["classic"]
}

func (m *MockConfigManager) SaveConfig(name string, config *engine.GameConfig) error {
	if err := engine.ValidateGameConfig(config); err != nil {
		return err
	}
	m.configs[name] = config
	return nil
}

func setupTestService() (service.GameService, *session.Manager) {
	sessions := session.NewManager()
	return service.NewGameService(sessions, NewMockConfigManager()), sessions
}

func TestGameService_CreateSession(t *testing.T) {
	svc, sessions := setupTestService()
	ctx := context.Background()

	t.Run("default config", func(t *testing.T) {
		sess, err := svc.CreateSession(ctx, "")
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if sess.Config.Name != "classic" {
			t.Errorf("Expected default config 'classic', got '%s'", sess.Config.Name)
		}
	})

	t.Run("named config", func(t *testing.T) {
		sess, err := svc.CreateSession(ctx, "hard")
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if sess.Snapshot().Lives != 1 {
			t.Errorf("Expected 1 life, got %d", sess.Snapshot().Lives)
		}
	})

	t.Run("unknown config", func(t *testing.T) {
		_, err := svc.CreateSession(ctx, "missing")
		if !errors.Is(err, errMockNotFound) {
			t.Errorf("Expected wrapped not-found error, got %v", err)
		}
	})

	if sessions.Count() != 2 {
		t.Errorf("Expected 2 sessions, got %d", sessions.Count())
	}
}

func TestGameService_SessionLifecycle(t *testing.T) {
	svc, _ := setupTestService()
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := sess.Frame(session.FrameDuration); err != nil {
			t.Fatalf("Frame failed: %v", err)
		}
	}

	info, err := svc.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Failed to get session: %v", err)
	}
	if info.Frames != 3 || info.Snapshot.Tick != 3 {
		t.Errorf("Expected 3 frames and tick 3, got %d and %d", info.Frames, info.Snapshot.Tick)
	}

	list, err := svc.ListSessions(ctx)
	if err != nil {
		t.Fatalf("Failed to list sessions: %v", err)
	}
	if len(list) != 1 || list[0].ID != sess.ID {
		t.Errorf("Expected only session %s to be listed, got %d sessions", sess.ID, len(list))
	}

	if err := svc.DeleteSession(ctx, sess.ID); err != nil {
		t.Fatalf("Failed to delete session: %v", err)
	}
	if _, err := svc.GetSession(ctx, sess.ID); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestGameService_Simulate(t *testing.T) {
	svc, sessions := setupTestService()
	ctx := context.Background()

	result, err := svc.Simulate(ctx, "classic", service.SimulationOptions{MaxTicks: 600})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	if result.RunID == "" {
		t.Error("Expected a run ID")
	}
	if result.Seed != 11 {
		t.Errorf("Expected the profile seed 11, got %d", result.Seed)
	}
	if result.Ticks < 1 || result.Ticks > 600 {
		t.Errorf("Expected between 1 and 600 ticks, got %d", result.Ticks)
	}
	if result.Total != 177 {
		t.Errorf("Expected 177 consumables in total, got %d", result.Total)
	}

	eaten := result.Total - result.Remaining
	if eaten < 1 {
		t.Error("Expected the autopilot to eat at least one consumable")
	}
	if result.Events[engine.EventPickup] != eaten {
		t.Errorf("Expected %d pickup events, got %d", eaten, result.Events[engine.EventPickup])
	}
	if result.Score != eaten*engine.DefaultPickupReward {
		t.Errorf("Expected score %d, got %d", eaten*engine.DefaultPickupReward, result.Score)
	}
	if result.Lives != engine.DefaultStartingLives-result.Events[engine.EventLifeLost] {
		t.Errorf("Expected lives to match life_lost events, got %d lives and %d events", result.Lives, result.Events[engine.EventLifeLost])
	}
	if result.GameOver == (result.Reason == engine.ReasonNone) {
		t.Errorf("Game over %v does not agree with reason %v", result.GameOver, result.Reason)
	}

	if sessions.Count() != 0 {
		t.Errorf("Expected the run session to be removed, %d remain", sessions.Count())
	}
}

func TestGameService_SimulateIsReproducible(t *testing.T) {
	svc, _ := setupTestService()
	ctx := context.Background()
	opts := service.SimulationOptions{MaxTicks: 1200, Seed: 42}

	first, err := svc.Simulate(ctx, "classic", opts)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	second, err := svc.Simulate(ctx, "classic", opts)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	if first.RunID == second.RunID {
		t.Error("Expected distinct run IDs")
	}
	if first.Ticks != second.Ticks || first.Score != second.Score ||
		first.Lives != second.Lives || first.Remaining != second.Remaining {
		t.Errorf("Expected identical outcomes for the same seed, got %+v and %+v", first, second)
	}
}

func TestGameService_SimulateCancelled(t *testing.T) {
	svc, _ := setupTestService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Simulate(ctx, "classic", service.SimulationOptions{MaxTicks: 600})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestGameService_SimulateBatch(t *testing.T) {
	svc, sessions := setupTestService()
	ctx := context.Background()

	results, err := svc.SimulateBatch(ctx, "classic", 4, service.SimulationOptions{MaxTicks: 300, Seed: 100, Parallelism: 2})
	if err != nil {
		t.Fatalf("SimulateBatch failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("Expected 4 results, got %d", len(results))
	}

	ids := make(map[string]bool)
	for i, res := range results {
		if res.Seed != int64(100+i) {
			t.Errorf("Run %d: expected seed %d, got %d", i, 100+i, res.Seed)
		}
		ids[res.RunID] = true
	}
	if len(ids) != 4 {
		t.Errorf("Expected 4 distinct run IDs, got %d", len(ids))
	}
	if sessions.Count() != 0 {
		t.Errorf("Expected all run sessions to be removed, %d remain", sessions.Count())
	}

	if _, err := svc.SimulateBatch(ctx, "classic", 0, service.SimulationOptions{}); err == nil {
		t.Error("Expected error for zero runs")
	}
	if _, err := svc.SimulateBatch(ctx, "missing", 2, service.SimulationOptions{MaxTicks: 10}); !errors.Is(err, errMockNotFound) {
		t.Errorf("Expected wrapped not-found error, got %v", err)
	}
}

func TestGameService_Configs(t *testing.T) {
	svc, _ := setupTestService()
	ctx := context.Background()

	configs, err := svc.ListConfigs(ctx)
	if err != nil {
		t.Fatalf("Failed to list configs: %v", err)
	}
	if len(configs) != 2 {
		t.Errorf("Expected 2 configs, got %d", len(configs))
	}

	custom := engine.DefaultConfig()
	custom.Name = "custom"
	if err := svc.SaveConfig(ctx, "custom", custom); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}
	loaded, err := svc.LoadConfig(ctx, "custom")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if loaded.Name != "custom" {
		t.Errorf("Expected 'custom', got '%s'", loaded.Name)
	}
}
