package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/wricardo/charminar-game/game/engine"
	"github.com/wricardo/charminar-game/game/session"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// resolveConfig loads a profile by name, or the default when name is empty
func (s *gameServiceImpl) resolveConfig(configName string) (*engine.GameConfig, error) {
	if configName == "" {
		return s.configs.GetDefault(), nil
	}

	config, err := s.configs.LoadConfig(configName)
	if err != nil {
		// Provide helpful error message with available options
		if available, listErr := s.configs.ListConfigs(); listErr == nil && len(available) > 0 {
			ids := make([]string, 0, len(available))
			for _, info := range available {
				ids = append(ids, info.ConfigID)
			}
			return nil, fmt.Errorf("failed to load config '%s' (available: %v): %w", configName, ids, err)
		}
		return nil, fmt.Errorf("failed to load config '%s': %w", configName, err)
	}
	return config, nil
}

// CreateSession creates a new interactive session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*session.Session, error) {
	config, err := s.resolveConfig(configName)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return sess, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	return sessionInfo(sess), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, sessionInfo(sess))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(sessionID)
}

// Simulate plays one headless session with the autopilot until it ends or
// MaxTicks frames have run
func (s *gameServiceImpl) Simulate(ctx context.Context, configName string, opts SimulationOptions) (*SimulationResult, error) {
	config, err := s.resolveConfig(configName)
	if err != nil {
		return nil, err
	}

	// Fix the seed so the result can be replayed.
	run := *config
	if opts.Seed != 0 {
		run.Seed = opts.Seed
	}
	if run.Seed == 0 {
		run.Seed = time.Now().UnixNano()
	}

	sess, err := s.sessions.Create(uuid.NewString(), &run)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	defer s.sessions.Delete(sess.ID)

	return runSimulation(ctx, sess, NewAutopilot(), opts.MaxTicks)
}

// SimulateBatch runs several simulations concurrently. With a non-zero seed
// run i uses seed+i.
func (s *gameServiceImpl) SimulateBatch(ctx context.Context, configName string, runs int, opts SimulationOptions) ([]*SimulationResult, error) {
	if runs < 1 {
		return nil, fmt.Errorf("runs must be at least 1, got %d", runs)
	}

	limit := opts.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	results := make([]*SimulationResult, runs)
	for i := 0; i < runs; i++ {
		g.Go(func() error {
			runOpts := opts
			if opts.Seed != 0 {
				runOpts.Seed = opts.Seed + int64(i)
			}
			res, err := s.Simulate(gctx, configName, runOpts)
			if err != nil {
				return fmt.Errorf("run %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ListConfigs returns available profiles
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a profile by name
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.resolveConfig(configName)
}

// SaveConfig stores a profile
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// runSimulation feeds frames to sess as fast as they are consumed until the
// game ends, maxTicks frames have been sent, or ctx is done
func runSimulation(ctx context.Context, sess *session.Session, pilot session.Pilot, maxTicks int) (*SimulationResult, error) {
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	counts := make(map[string]int)
	sess.OnEvent(func(ev engine.GameEvent) {
		counts[ev.Type]++
		if ev.Type == engine.EventGameOver || ev.Type == engine.EventVictory {
			cancel()
		}
	})

	ticks := make(chan time.Time)
	go func() {
		defer close(ticks)
		start := time.Now()
		for i := 0; i < maxTicks; i++ {
			select {
			case ticks <- start.Add(time.Duration(i) * session.FrameDuration):
			case <-runCtx.Done():
				return
			}
		}
	}()

	began := time.Now()
	err := sess.Run(runCtx, ticks, pilot)
	if err != nil && !errors.Is(err, context.Canceled) {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	snap := sess.Snapshot()
	return &SimulationResult{
		RunID:      sess.ID,
		ConfigName: sess.Config.Name,
		Seed:       sess.Config.Seed,
		Ticks:      snap.Tick,
		Score:      snap.Score,
		Lives:      snap.Lives,
		Remaining:  snap.Remaining,
		Total:      snap.Total,
		GameOver:   snap.GameOver,
		Reason:     snap.Reason,
		Events:     counts,
		Simulated:  time.Duration(snap.Tick) * session.FrameDuration,
		WallTime:   time.Since(began),
	}, nil
}

func sessionInfo(sess *session.Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     sess.Config.Name,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessed(),
		Frames:         sess.Frames(),
		Snapshot:       sess.Snapshot(),
		GameConfig:     sess.Config,
	}
}
