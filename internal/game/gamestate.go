package game

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type RunPhase int

const (
	PhaseReady    RunPhase = iota // awaiting start
	PhaseRunning                  // simulation active
	PhaseGameOver                 // frozen until restart
)

func (p RunPhase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game-over"
	}
	return "unknown"
}

var (
	ErrUnknownTier = errors.New("game: unknown tier")
	ErrRunActive   = errors.New("game: cannot change tier during a run")
)

// Sim owns the whole simulation state. It is not safe for concurrent use; the
// frontend drives it from a single loop.
type Sim struct {
	Phase   RunPhase
	Player  Player
	Cars    []Car
	Hazards []Hazard
	Pickups []Pickup
	Effects Effects
	Scenery Scenery

	Score   float64
	Best    float64
	Elapsed float64

	// Scheduler state.
	trafficDistance float64
	sinceWrongWay   float64
	hazardTimer     float64
	pickupTimer     float64
	nextID          EntityID

	tuning Tuning
	tiers  []Tier
	tier   Tier
	rng    RandSource
	scene  Scene
	hud    hudThrottle
	store  BestStore
	events *EventBus
	log    *zap.Logger
}

type Option func(*Sim)

func WithTuning(t Tuning) Option      { return func(s *Sim) { s.tuning = t } }
func WithTiers(tiers []Tier) Option   { return func(s *Sim) { s.tiers = tiers } }
func WithRand(r RandSource) Option    { return func(s *Sim) { s.rng = r } }
func WithScene(sc Scene) Option       { return func(s *Sim) { s.scene = sc } }
func WithHUD(h HUD) Option            { return func(s *Sim) { s.hud.hud = h } }
func WithStore(st BestStore) Option   { return func(s *Sim) { s.store = st } }
func WithEvents(eb *EventBus) Option  { return func(s *Sim) { s.events = eb } }
func WithLogger(l *zap.Logger) Option { return func(s *Sim) { s.log = l } }

// New builds a simulation in the ready phase on the first tier.
func New(opts ...Option) (*Sim, error) {
	s := &Sim{
		tuning: DefaultTuning(),
		tiers:  DefaultTiers(),
	}
	for _, o := range opts {
		o(s)
	}
	if err := s.tuning.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateTiers(s.tiers); err != nil {
		return nil, err
	}
	if s.rng == nil {
		s.rng = NewRand(1)
	}
	if s.scene == nil {
		s.scene = nopScene{}
	}
	if s.events == nil {
		s.events = NewEventBus()
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	s.tier = s.tiers[0]
	s.Effects.max = s.tuning.MaxDebris
	s.Scenery = newScenery(s)
	s.resetPlayer()
	s.Best = s.loadBest()
	s.pushHUD()
	return s, nil
}

func (s *Sim) Tuning() Tuning    { return s.tuning }
func (s *Sim) Tiers() []Tier     { return s.tiers }
func (s *Sim) Tier() Tier        { return s.tier }
func (s *Sim) Events() *EventBus { return s.events }
func (s *Sim) Running() bool     { return s.Phase == PhaseRunning }

// SelectTier switches difficulty. Only allowed outside a run.
func (s *Sim) SelectTier(id string) error {
	if s.Phase == PhaseRunning {
		return ErrRunActive
	}
	for _, t := range s.tiers {
		if t.ID != id {
			continue
		}
		s.tier = t
		s.Best = s.loadBest()
		s.resetPlayer()
		s.hud.invalidate()
		s.pushHUD()
		s.events.Emit(Event{Type: EventTierSelected, Data: int(s.Best)})
		s.log.Info("tier selected", zap.String("tier", t.ID), zap.Float64("best", s.Best))
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownTier, id)
}

// Start begins a fresh run from READY or GAME_OVER. It is ignored while running.
func (s *Sim) Start() {
	if s.Phase == PhaseRunning {
		return
	}
	s.reset()
	s.Phase = PhaseRunning
	s.log.Info("run started", zap.String("tier", s.tier.ID), zap.Float64("best", s.Best))
	s.events.Emit(Event{Type: EventRunStarted})
}

// reset clears every collection and timer back to the start of a run.
func (s *Sim) reset() {
	for i := range s.Cars {
		s.dropVisual(s.Cars[i].Visual)
	}
	s.Cars = s.Cars[:0]
	for i := range s.Hazards {
		s.dropVisual(s.Hazards[i].Visual)
	}
	s.Hazards = s.Hazards[:0]
	for i := range s.Pickups {
		s.dropVisual(s.Pickups[i].Visual)
	}
	s.Pickups = s.Pickups[:0]
	s.clearEffects()
	s.Scenery.Reset()

	s.Score = 0
	s.Elapsed = 0
	s.nextID = 0
	s.resetPlayer()
	s.resetSchedule()
	s.hud.invalidate()
	s.pushHUD()
}

// Frame advances the simulation by delta seconds, clamped to MaxDelta.
// A NaN or non-positive delta advances nothing.
func (s *Sim) Frame(delta float64) {
	dt := 0.0
	if delta > 0 {
		dt = min(delta, s.tuning.MaxDelta)
	}

	if s.Phase == PhaseRunning {
		s.Elapsed += dt
		s.updatePlayer(dt)
	}
	if s.Phase != PhaseGameOver {
		s.Scenery.Update(dt, s.Player.Speed, s.Player.X)
	}
	if s.Phase == PhaseRunning {
		s.Score += s.Player.Speed * dt * s.tuning.DistanceScoreRate
		s.schedule(dt)
		s.updateTraffic(dt)
		s.updateHazards(dt)
		s.updatePickups(dt)
	}
	s.updateEffects(dt)
	s.pushHUD()
}

// gameOver ends the run. Repeated calls before the next Start are ignored.
func (s *Sim) gameOver(cause string, x, z float64) {
	if s.Phase != PhaseRunning {
		return
	}
	s.Phase = PhaseGameOver
	s.events.Emit(Event{Type: EventCrash, X: x, Z: z})

	if s.Score > s.Best {
		s.Best = s.Score
		if s.store != nil {
			if err := s.store.SaveBest(s.tier.StorageKey, s.Best); err != nil {
				s.log.Warn("save best failed", zap.String("key", s.tier.StorageKey), zap.Error(err))
			}
		}
		s.events.Emit(Event{Type: EventNewBest, Data: int(s.Best)})
	}
	s.log.Info("game over",
		zap.String("cause", cause),
		zap.Float64("score", s.Score),
		zap.Float64("elapsed", s.Elapsed),
		zap.String("tier", s.tier.ID))
	s.events.Emit(Event{Type: EventGameOver, Data: int(s.Score)})
	s.pushHUD()
}

func (s *Sim) loadBest() float64 {
	if s.store == nil {
		return 0
	}
	v, err := s.store.LoadBest(s.tier.StorageKey)
	if err != nil {
		s.log.Warn("load best failed", zap.String("key", s.tier.StorageKey), zap.Error(err))
		return 0
	}
	return max(0, v)
}

func (s *Sim) pushHUD() {
	s.hud.push(s.Score, s.Best, s.Player.Speed, s.tuning.SpeedometerFactor)
}

func (s *Sim) newID() EntityID {
	s.nextID++
	return s.nextID
}
