package runner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

func TestLoopStoppedIsNoop(t *testing.T) {
	l := NewLoop(config.DefaultRunnerConfig(), 1)

	if ev := l.Tick(); ev != 0 {
		t.Errorf("Tick on a stopped loop = %b, expected none", ev)
	}
	if ev := l.SpawnTick(); ev != 0 {
		t.Errorf("SpawnTick on a stopped loop = %b, expected none", ev)
	}
	if l.State().Score != 0 || l.State().Obstacles.Len() != 0 {
		t.Error("stopped loop should not change state")
	}
}

func TestLoopFirstConfirmStartsAndJumps(t *testing.T) {
	l := NewLoop(config.DefaultRunnerConfig(), 1)

	ev := l.Confirm()
	if !ev.Has(EventStart | EventJump) {
		t.Errorf("first confirm events = %b, expected start and jump", ev)
	}
	if !l.Running() || !l.State().Started {
		t.Error("loop should be running after first confirm")
	}
	if l.State().Player.VelocityY != -17 {
		t.Errorf("VelocityY = %d, expected -17", l.State().Player.VelocityY)
	}

	l.Tick()
	if ev := l.Confirm(); ev.Has(EventJump) {
		t.Error("confirm while airborne should not jump")
	}
}

func TestLoopStartStop(t *testing.T) {
	l := NewLoop(config.DefaultRunnerConfig(), 1)
	l.Start()
	l.Tick()
	l.Tick()
	if l.State().Score != 2 {
		t.Fatalf("score = %d, expected 2", l.State().Score)
	}

	l.Stop()
	l.Tick()
	l.SpawnTick()
	if l.State().Score != 2 || l.State().Obstacles.Len() != 0 {
		t.Error("stopped loop kept advancing")
	}

	l.Start()
	l.Tick()
	if l.State().Score != 3 {
		t.Errorf("restarted loop score = %d, expected 3", l.State().Score)
	}
}

func TestLoopSpawnAndHistoryBound(t *testing.T) {
	l := NewLoop(config.DefaultRunnerConfig(), 42)
	l.Start()

	evicted := 0
	for i := 0; i < 15; i++ {
		ev := l.SpawnTick()
		if !ev.Has(EventSpawn) {
			t.Fatalf("spawn %d did not spawn", i)
		}
		if ev.Has(EventEvict) {
			evicted++
		}
	}
	if l.State().Obstacles.Len() != 10 {
		t.Errorf("history length = %d, expected 10", l.State().Obstacles.Len())
	}
	if evicted != 5 {
		t.Errorf("evictions = %d, expected 5", evicted)
	}
}

func TestLoopCollisionStopsAndResetOnConfirm(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	var seen []Events
	l := NewLoop(cfg, 9, WithListener(func(ev Events, _ State) {
		seen = append(seen, ev)
	}))
	l.Start()
	l.SpawnTick()

	var ended Events
	for i := 0; i < 100 && !l.State().Over; i++ {
		ended = l.Tick()
	}
	if !ended.Has(EventCollision) {
		t.Fatalf("expected the first obstacle to hit a standing player, got %b", ended)
	}
	if l.Running() {
		t.Error("loop should stop on collision")
	}
	if l.State().Outcome != core.OutcomeCollision {
		t.Errorf("outcome = %v, expected collision", l.State().Outcome)
	}

	// Timers are stopped: spawns and ticks do nothing
	score := l.State().Score
	l.Tick()
	l.SpawnTick()
	if l.State().Score != score {
		t.Error("finished loop kept ticking")
	}

	// Acknowledge the end of game: back to the initial state
	if ev := l.Confirm(); ev != EventReset {
		t.Errorf("confirm after game over = %b, expected reset only", ev)
	}
	s := l.State()
	if s.Obstacles.Len() != 0 || s.Score != 0 || s.Over || s.Started || l.Running() {
		t.Errorf("reset state = %+v running=%v", s, l.Running())
	}
	if s.Player != NewPlayer(cfg.Player) {
		t.Errorf("player not back in initial pose: %+v", s.Player)
	}

	var sawCollision bool
	for _, ev := range seen {
		if ev.Has(EventCollision) {
			sawCollision = true
		}
	}
	if !sawCollision {
		t.Error("listener did not receive the collision event")
	}
}

func TestLoopWin(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Scoring.WinScore = 5
	l := NewLoop(cfg, 1)
	l.Start()

	var ev Events
	for i := 0; i < 5; i++ {
		ev = l.Tick()
	}
	if !ev.Has(EventWin) || l.State().Outcome != core.OutcomeWin {
		t.Errorf("expected win, got events %b outcome %v", ev, l.State().Outcome)
	}
	if l.Running() {
		t.Error("loop should stop on win")
	}
}

func TestLoopPause(t *testing.T) {
	l := NewLoop(config.DefaultRunnerConfig(), 1)

	if ev := l.TogglePause(); ev != 0 {
		t.Error("pause before start should do nothing")
	}

	l.Start()
	if ev := l.TogglePause(); ev != EventPause {
		t.Errorf("TogglePause = %b, expected pause", ev)
	}
	l.Tick()
	l.SpawnTick()
	if ev := l.Confirm(); ev.Has(EventJump) {
		t.Error("jump while paused should be ignored")
	}
	if l.State().Score != 0 || l.State().Obstacles.Len() != 0 {
		t.Error("paused loop advanced")
	}

	if ev := l.TogglePause(); ev != EventResume {
		t.Errorf("TogglePause = %b, expected resume", ev)
	}
	l.Tick()
	if l.State().Score != 1 {
		t.Errorf("score after resume = %d, expected 1", l.State().Score)
	}
}

func TestLoopLogsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	cfg := config.DefaultRunnerConfig()
	cfg.Scoring.WinScore = 1

	l := NewLoop(cfg, 1, WithLogger(logger))
	l.Start()
	l.Tick()

	out := buf.String()
	if !strings.Contains(out, "run started") || !strings.Contains(out, "run finished") {
		t.Errorf("missing lifecycle logs: %q", out)
	}
	if !strings.Contains(out, "outcome=win") {
		t.Errorf("finish log should carry the outcome: %q", out)
	}
}
