package game

import (
	"math"

	"go.uber.org/zap"
)

func (s *Sim) resetSchedule() {
	t := &s.tuning
	s.trafficDistance = 0
	s.sinceWrongWay = t.WrongWayMinGap
	s.hazardTimer = s.nextHazardInterval()
	s.pickupTimer = rangeF(s.rng, t.PickupMinInterval, t.PickupMaxInterval)
}

// schedule runs the three spawn clocks for one frame.
func (s *Sim) schedule(dt float64) {
	t := &s.tuning

	s.sinceWrongWay += dt
	s.trafficDistance += s.Player.Speed * dt
	if s.trafficDistance >= s.trafficThreshold() {
		s.trafficDistance = 0
		s.spawnTraffic()
	}

	s.hazardTimer -= dt
	if s.hazardTimer <= 0 {
		s.spawnHazard()
		s.hazardTimer = s.nextHazardInterval()
	}

	s.pickupTimer -= dt
	if s.pickupTimer <= 0 {
		if len(s.Pickups) >= t.PickupCap {
			// Full: retry sooner than a normal roll.
			mid := (t.PickupMinInterval + t.PickupMaxInterval) / 2
			s.pickupTimer = rangeF(s.rng, t.PickupMinInterval, mid)
			s.log.Debug("pickup spawn skipped", zap.Int("active", len(s.Pickups)))
			return
		}
		s.spawnPickup()
		s.pickupTimer = rangeF(s.rng, t.PickupMinInterval, t.PickupMaxInterval)
	}
}

// trafficThreshold is the forward distance between traffic spawns. It shrinks
// as the score grows, down to the configured floor.
func (s *Sim) trafficThreshold() float64 {
	t := &s.tuning
	interval := max(t.TrafficMinInterval, t.TrafficBaseInterval-s.Score*t.TrafficScoreDecay)
	return interval * t.TrafficRefSpeed
}

func (s *Sim) nextHazardInterval() float64 {
	t := &s.tuning
	jitter := rangeF(s.rng, 0, t.HazardJitter)
	return max(t.HazardMinInterval, t.HazardBaseInterval-s.Score*t.HazardScoreDecay+jitter)
}

// laneOccupied reports whether a car sits in lane within gap of z.
func (s *Sim) laneOccupied(lane int, z, gap float64) bool {
	for i := range s.Cars {
		c := &s.Cars[i]
		if c.Lane == lane && math.Abs(c.Z-z) < gap {
			return true
		}
	}
	return false
}

func (s *Sim) hazardNear(lane int, z, gap float64) bool {
	for i := range s.Hazards {
		h := &s.Hazards[i]
		if h.Lane == lane && math.Abs(h.Z-z) < gap {
			return true
		}
	}
	return false
}

func (s *Sim) pickupNear(lane int, z, gap float64) bool {
	for i := range s.Pickups {
		p := &s.Pickups[i]
		if p.Lane == lane && math.Abs(p.Z-z) < gap {
			return true
		}
	}
	return false
}

func (s *Sim) spawnTraffic() {
	t := &s.tuning
	lane := s.rng.Intn(t.LaneCount())

	eligible := s.Score > t.WrongWayScoreGate && s.sinceWrongWay >= t.WrongWayMinGap
	wrongWay := eligible && s.rng.Float64() < t.WrongWayChance

	var z, speed float64
	if wrongWay {
		z = t.WrongWaySpawnZ - s.rng.Float64()*t.WrongWaySpawnSpread
		speed = rangeF(s.rng, t.WrongWaySpeedMin, t.WrongWaySpeedMax)
	} else {
		z = t.ForwardSpawnZ - s.rng.Float64()*t.ForwardSpawnSpread
		speed = rangeF(s.rng, t.ForwardSpeedMin, t.ForwardSpeedMax)
	}

	if s.laneOccupied(lane, z, t.TrafficSeparation) {
		s.log.Debug("traffic spawn rejected", zap.Int("lane", lane), zap.Float64("z", z))
		return
	}

	kind := CarForward
	if wrongWay {
		kind = CarWrongWay
		s.sinceWrongWay = 0
	}
	target := s.addCar(lane, z, kind, speed)

	if wrongWay && s.rng.Float64() < t.PursuitChance {
		s.spawnPursuit(target)
	}
}

// spawnPursuit places a police car behind the target, stepping further back on
// each blocked attempt.
func (s *Sim) spawnPursuit(target *Car) {
	t := &s.tuning
	id, lane, baseZ := target.ID, target.Lane, target.Z
	for attempt := 0; attempt < t.PursuitAttempts; attempt++ {
		z := baseZ - t.PursuitGap - float64(attempt)*t.PursuitRetryStep
		if s.laneOccupied(lane, z, t.TrafficSeparation) {
			continue
		}
		s.addCar(lane, z, CarPolice, t.PursuitBaseSpeed).Target = id
		return
	}
	s.log.Debug("pursuit spawn gave up", zap.Uint32("target", uint32(id)))
}

// addCar appends a car and returns a pointer valid until the next append.
func (s *Sim) addCar(lane int, z float64, kind CarKind, speed float64) *Car {
	t := &s.tuning
	c := Car{
		Body: Body{
			ID:   s.newID(),
			Lane: lane,
			X:    t.LaneX(lane),
			Y:    t.PlayerBaseY,
			Z:    z,
		},
		Kind:  kind,
		Speed: speed,
	}
	c.Visual = s.spawnVisual(c.visualKind())
	c.Visual.SetPosition(c.X, c.Y, c.Z)
	if c.Oncoming() {
		c.Visual.SetRotation(0, math.Pi, 0)
	}
	s.Cars = append(s.Cars, c)
	return &s.Cars[len(s.Cars)-1]
}

func (s *Sim) spawnHazard() {
	t := &s.tuning
	lane := s.rng.Intn(t.LaneCount())
	z := t.HazardSpawnZ - s.rng.Float64()*t.HazardSpawnSpread

	if s.laneOccupied(lane, z, t.HazardTrafficGap) || s.hazardNear(lane, z, t.HazardSeparation) {
		s.log.Debug("hazard spawn rejected", zap.Int("lane", lane), zap.Float64("z", z))
		return
	}

	h := Hazard{
		Body: Body{
			ID:   s.newID(),
			Lane: lane,
			X:    t.LaneX(lane),
			Y:    t.HazardBaseY,
			Z:    z,
		},
		BobPhase: s.rng.Float64() * 2 * math.Pi,
	}
	h.Visual = s.spawnVisual(VisualHazard)
	h.Visual.SetPosition(h.X, h.Y, h.Z)
	s.Hazards = append(s.Hazards, h)
}

// spawnPickup tries every lane in shuffled order and takes the first one clear
// of cars, hazards and other pickups. It returns false when all lanes are blocked.
func (s *Sim) spawnPickup() bool {
	t := &s.tuning
	order := shuffleLanes(s.rng, t.LaneCount())
	z := t.PickupSpawnZ - s.rng.Float64()*t.PickupSpawnSpread

	for _, lane := range order {
		if s.laneOccupied(lane, z, t.PickupWindows[0]) ||
			s.hazardNear(lane, z, t.PickupWindows[1]) ||
			s.pickupNear(lane, z, t.PickupWindows[2]) {
			continue
		}
		p := Pickup{
			Body: Body{
				ID:   s.newID(),
				Lane: lane,
				X:    t.LaneX(lane),
				Y:    t.PickupBaseY,
				Z:    z,
			},
			BobPhase: s.rng.Float64() * 2 * math.Pi,
		}
		p.Visual = s.spawnVisual(VisualPickup)
		p.Visual.SetPosition(p.X, p.Y, p.Z)
		s.Pickups = append(s.Pickups, p)
		return true
	}
	s.log.Debug("pickup spawn found no clear lane", zap.Float64("z", z))
	return false
}
