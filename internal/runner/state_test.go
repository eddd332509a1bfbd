package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// startedState returns a fresh state that is already running.
func startedState(cfg config.RunnerConfig) State {
	s := NewState(cfg)
	s.Started = true
	return s
}

func TestJumpArc(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := startedState(cfg)

	s, ok := Jump(s, cfg)
	if !ok {
		t.Fatal("grounded player should be able to jump")
	}
	if s.Player.VelocityY != -17 {
		t.Errorf("VelocityY after jump = %d, expected -17", s.Player.VelocityY)
	}
	if s.Player.Visual != VisualJumping {
		t.Errorf("Visual after jump = %v, expected jumping", s.Player.Visual)
	}

	// Apex: 17 ticks of +1 gravity bring velocity back to zero.
	for i := 0; i < 17; i++ {
		s, _ = Tick(s, cfg)
	}
	if s.Player.VelocityY != 0 {
		t.Errorf("VelocityY at apex = %d, expected 0", s.Player.VelocityY)
	}
	if s.Player.Y != 156-17*17+17*18/2 {
		t.Errorf("apex Y = %d, expected %d", s.Player.Y, 156-17*17+17*18/2)
	}

	// Symmetric descent: back on the ground line after 33 ticks.
	for i := 0; i < 16; i++ {
		s, _ = Tick(s, cfg)
	}
	if s.Player.Y != s.Player.GroundY {
		t.Errorf("Y after 33 ticks = %d, expected ground %d", s.Player.Y, s.Player.GroundY)
	}
	if s.Player.VelocityY != 16 {
		t.Errorf("VelocityY after 33 ticks = %d, expected 16", s.Player.VelocityY)
	}

	// The next tick overshoots and the landing clamp zeroes velocity.
	var ev Events
	s, ev = Tick(s, cfg)
	if !ev.Has(EventLand) {
		t.Error("tick 34 should report a landing")
	}
	if s.Player.Y != s.Player.GroundY || s.Player.VelocityY != 0 {
		t.Errorf("after landing Y=%d v=%d, expected ground and 0", s.Player.Y, s.Player.VelocityY)
	}
	if s.Player.Visual != VisualRunning {
		t.Errorf("Visual after landing = %v, expected running", s.Player.Visual)
	}
}

func TestPlayerNeverBelowGround(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Scoring.WinScore = 1 << 30
	rng := rand.New(rand.NewSource(7))

	s := startedState(cfg)
	for i := 0; i < 5000; i++ {
		if rng.Intn(4) == 0 {
			s, _ = Jump(s, cfg)
		}
		s, _ = Tick(s, cfg)
		if s.Player.Y > s.Player.GroundY {
			t.Fatalf("tick %d: Y=%d exceeds ground %d", i, s.Player.Y, s.Player.GroundY)
		}
	}
}

func TestJumpRequiresGroundAndRunningGame(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	airborne := startedState(cfg)
	airborne, _ = Jump(airborne, cfg)
	airborne, _ = Tick(airborne, cfg)
	before := airborne.Player
	after, ok := Jump(airborne, cfg)
	if ok || after.Player != before {
		t.Error("jump while airborne should be a no-op")
	}

	over := startedState(cfg)
	over.Over = true
	after, ok = Jump(over, cfg)
	if ok || after.Player.VelocityY != 0 {
		t.Error("jump after game over should be a no-op")
	}
}

func TestObstacleTravel(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := startedState(cfg)
	s, _ = Spawn(s, VariantSmall, cfg)

	o := s.Obstacles.At(0)
	if o.X != 700 || o.Y != 180 || o.W != 34 || o.H != 70 {
		t.Fatalf("spawned obstacle = %+v, expected 700,180 34x70", o.Rect)
	}

	// The dino stands still on the ground, so the small cactus reaches it
	// only once its left edge passes x=138.
	for i := 0; i < 46; i++ {
		var ev Events
		s, ev = Tick(s, cfg)
		if ev.Has(EventCollision) {
			t.Fatalf("premature collision at tick %d, x=%d", i+1, s.Obstacles.At(0).X)
		}
	}
	if x := s.Obstacles.At(0).X; x != 700-46*12 {
		t.Errorf("x after 46 ticks = %d, expected %d", x, 700-46*12)
	}

	var ev Events
	s, ev = Tick(s, cfg)
	if !ev.Has(EventCollision) {
		t.Errorf("expected collision at x=%d", s.Obstacles.At(0).X)
	}
}

func TestObstacleTravel58Ticks(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	o := NewObstacle(VariantLarge, cfg)
	for i := 0; i < 58; i++ {
		o.Move()
	}
	if o.X != 4 {
		t.Errorf("x after 58 ticks = %d, expected 4", o.X)
	}
	if o.Y != 180 {
		t.Errorf("obstacles must not move vertically, y = %d", o.Y)
	}
}

func TestCollisionEndsGame(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := startedState(cfg)
	s, _ = Spawn(s, VariantMedium, cfg)
	s.Obstacles.items[0].X = 60
	s.Score = 10

	s, ev := Tick(s, cfg)
	if !ev.Has(EventCollision) || ev.Has(EventWin) {
		t.Fatalf("events = %b, expected collision only", ev)
	}
	if !s.Over || s.Outcome != core.OutcomeCollision {
		t.Errorf("Over=%v Outcome=%v, expected collision end", s.Over, s.Outcome)
	}
	if s.Player.Visual != VisualDead {
		t.Errorf("Visual = %v, expected dead", s.Player.Visual)
	}
	if s.Score != 10 {
		t.Errorf("collision tick should not score, got %d", s.Score)
	}

	// Further ticks are no-ops
	again, ev := Tick(s, cfg)
	if ev != 0 || again.Score != s.Score {
		t.Error("ticks after game over should do nothing")
	}
}

func TestFirstCollisionShortCircuits(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := startedState(cfg)
	s, _ = Spawn(s, VariantSmall, cfg)
	s, _ = Spawn(s, VariantSmall, cfg)
	s.Obstacles.items[0].X = 60
	s.Obstacles.items[1].X = 70

	s, ev := Tick(s, cfg)
	if !ev.Has(EventCollision) {
		t.Fatal("expected a collision")
	}
	// Both obstacles moved before testing, exactly once.
	if s.Obstacles.At(0).X != 48 || s.Obstacles.At(1).X != 58 {
		t.Errorf("obstacles at %d,%d, expected 48,58", s.Obstacles.At(0).X, s.Obstacles.At(1).X)
	}
}

func TestScoreAndWin(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := startedState(cfg)

	for i := 1; i <= 1000; i++ {
		var ev Events
		s, ev = Tick(s, cfg)
		if s.Score != i {
			t.Fatalf("score after %d ticks = %d", i, s.Score)
		}
		if ev.Ended() {
			t.Fatalf("game ended early at tick %d", i)
		}
	}

	s, ev := Tick(s, cfg)
	if s.Score != 1001 {
		t.Errorf("score = %d, expected 1001", s.Score)
	}
	if !ev.Has(EventWin) || !s.Over || s.Outcome != core.OutcomeWin {
		t.Errorf("reaching 1001 should win: ev=%b over=%v outcome=%v", ev, s.Over, s.Outcome)
	}
	if s.Player.Visual == VisualDead {
		t.Error("winning player should not be dead")
	}
}

func TestTickInactiveIsNoop(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := NewState(cfg)
	s, _ = Spawn(s, VariantSmall, cfg)

	next, ev := Tick(s, cfg)
	if ev != 0 || next.Score != 0 || next.Obstacles.At(0).X != 700 {
		t.Error("tick before start should not advance anything")
	}
}

func TestTickDoesNotMutateInput(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := startedState(cfg)
	s, _ = Spawn(s, VariantSmall, cfg)

	_, _ = Tick(s, cfg)
	if s.Obstacles.At(0).X != 700 || s.Score != 0 {
		t.Error("Tick must leave its input state untouched")
	}
}

func TestSpawnAfterGameOverIsNoop(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := startedState(cfg)
	s.Over = true

	s, ev := Spawn(s, VariantLarge, cfg)
	if ev != 0 || s.Obstacles.Len() != 0 {
		t.Error("spawn after game over should do nothing")
	}
}

func TestCollidesSymmetric(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := NewPlayer(cfg.Player)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 1000; i++ {
		o := NewObstacle(Variants[rng.Intn(len(Variants))], cfg)
		o.X = rng.Intn(300) - 50
		o.Y = 100 + rng.Intn(120)
		if p.Collides(o.Entity) != o.Collides(p.Entity) {
			t.Fatalf("collision not symmetric for obstacle %+v", o.Rect)
		}
	}
}
