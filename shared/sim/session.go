package sim

import (
	"fmt"

	"github.com/yohamta/donburi/features/math"
)

// Outcome is the result of a tick. Anything other than Running ends the
// session.
type Outcome int

const (
	Running Outcome = iota
	// EnemyContact means the player touched a patrolling enemy.
	EnemyContact
	// GoalReached means the player touched the goal.
	GoalReached
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case EnemyContact:
		return "enemy_contact"
	case GoalReached:
		return "goal_reached"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Ended reports whether o is terminal.
func (o Outcome) Ended() bool { return o != Running }

// Params are the tunables of a session.
type Params struct {
	MoveSpeed     float64 // horizontal speed and descend speed, units per tick
	JumpSpeed     float64 // upward velocity set by a jump
	MaxJumps      int
	FrameInterval float64 // seconds between animation frames
	FrameCounts   FrameCounts
	Viewport      math.Vec2
}

// World is the set of entities a session starts with.
type World struct {
	Level        *Level
	Player       *Player
	Patrols      []*PatrolAgent
	Collectibles []Collectible
}

// Session is the state of one play-through. It is driven by one Tick per
// frame and is not safe for concurrent use.
type Session struct {
	Player       *Player
	Patrols      []*PatrolAgent
	Collectibles *CollectibleSet
	Level        *Level
	Camera       math.Vec2

	params   Params
	resolver Resolver
	score    int
	outcome  Outcome
	ticks    int
}

// NewSession assembles a session from its starting world.
func NewSession(params Params, world World, resolver Resolver) *Session {
	s := &Session{
		Player:       world.Player,
		Patrols:      world.Patrols,
		Collectibles: NewCollectibleSet(world.Collectibles),
		Level:        world.Level,
		params:       params,
		resolver:     resolver,
	}
	s.Camera = CameraOffset(s.Player.Pos, params.Viewport)
	return s
}

// Score is the number of collectibles picked up so far.
func (s *Session) Score() int { return s.score }

// Outcome is the session's current outcome.
func (s *Session) Outcome() Outcome { return s.outcome }

// Ticks is the number of ticks that have run.
func (s *Session) Ticks() int { return s.ticks }

// Params returns the tunables the session was built with.
func (s *Session) Params() Params { return s.params }

// Tick advances the session by one frame of dt seconds. Once the session has
// ended it returns the terminal outcome without changing any state.
func (s *Session) Tick(dt float64) Outcome {
	if s.outcome.Ended() {
		return s.outcome
	}
	s.ticks++
	p := s.Player

	p.Grounded = s.resolver.Resolve(&p.Body)
	s.Camera = CameraOffset(p.Pos, s.params.Viewport)

	for _, a := range s.Patrols {
		a.Step()
	}
	hit := false
	for _, a := range s.Patrols {
		if p.Overlaps(&a.Body) {
			hit = true
			break
		}
	}

	s.score += len(s.Collectibles.TakeOverlapping(&p.Body))

	p.settle(s.params.MaxJumps)
	p.animate(dt, s.params.FrameCounts)

	// Enemy contact takes precedence over reaching the goal in the same tick.
	switch {
	case hit:
		s.outcome = EnemyContact
	case p.Overlaps(&s.Level.Goal.Body):
		s.outcome = GoalReached
	}
	return s.outcome
}
