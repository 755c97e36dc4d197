package game

import (
	"errors"
	"fmt"
)

// Tuning holds every threshold the simulation reads. The zero value is not
// usable; start from DefaultTuning and override fields.
type Tuning struct {
	Lanes []float64 `toml:"lanes"`

	// Player.
	PlayerBaseY        float64 `toml:"player_base_y"`
	Gravity            float64 `toml:"gravity"`
	JumpImpulse        float64 `toml:"jump_impulse"`
	JumpCooldown       float64 `toml:"jump_cooldown"`
	AirborneTolerance  float64 `toml:"airborne_tolerance"`
	AccelRate          float64 `toml:"accel_rate"`
	StartSpeed         float64 `toml:"start_speed"`
	SpeedLogFactor     float64 `toml:"speed_log_factor"`
	SpeedBaseOffset    float64 `toml:"speed_base_offset"`
	MaxSpeed           float64 `toml:"max_speed"`
	LateralEaseRate    float64 `toml:"lateral_ease_rate"`
	MaxDelta           float64 `toml:"max_delta"`
	DistanceScoreRate  float64 `toml:"distance_score_rate"`
	SpeedometerFactor  float64 `toml:"speedometer_factor"`
	TiltFactor         float64 `toml:"tilt_factor"`
	MaxPitch           float64 `toml:"max_pitch"`
	PitchRate          float64 `toml:"pitch_rate"`
	GroundEase         float64 `toml:"ground_ease"`
	PitchDecay         float64 `toml:"pitch_decay"`
	TiltEase           float64 `toml:"tilt_ease"`
	CollisionAirMargin float64 `toml:"collision_air_margin"`

	// Traffic spawn.
	TrafficBaseInterval  float64 `toml:"traffic_base_interval"`
	TrafficMinInterval   float64 `toml:"traffic_min_interval"`
	TrafficScoreDecay    float64 `toml:"traffic_score_decay"`
	TrafficRefSpeed      float64 `toml:"traffic_ref_speed"`
	TrafficSeparation    float64 `toml:"traffic_separation"`
	ForwardSpawnZ        float64 `toml:"forward_spawn_z"`
	ForwardSpawnSpread   float64 `toml:"forward_spawn_spread"`
	WrongWaySpawnZ       float64 `toml:"wrong_way_spawn_z"`
	WrongWaySpawnSpread  float64 `toml:"wrong_way_spawn_spread"`
	WrongWayScoreGate    float64 `toml:"wrong_way_score_gate"`
	WrongWayMinGap       float64 `toml:"wrong_way_min_gap"`
	WrongWayChance       float64 `toml:"wrong_way_chance"`
	ForwardSpeedMin      float64 `toml:"forward_speed_min"`
	ForwardSpeedMax      float64 `toml:"forward_speed_max"`
	WrongWaySpeedMin     float64 `toml:"wrong_way_speed_min"`
	WrongWaySpeedMax     float64 `toml:"wrong_way_speed_max"`
	PursuitChance        float64 `toml:"pursuit_chance"`
	PursuitGap           float64 `toml:"pursuit_gap"`
	PursuitAttempts      int     `toml:"pursuit_attempts"`
	PursuitRetryStep     float64 `toml:"pursuit_retry_step"`
	PursuitBaseSpeed     float64 `toml:"pursuit_base_speed"`
	PursuitCatchUp       float64 `toml:"pursuit_catch_up"`
	PursuitTolerance     float64 `toml:"pursuit_tolerance"`
	PursuitSpeedEase     float64 `toml:"pursuit_speed_ease"`
	TrafficDespawnAhead  float64 `toml:"traffic_despawn_ahead"`
	TrafficDespawnBehind float64 `toml:"traffic_despawn_behind"`

	// Traffic contact and pass scoring.
	CarHitHalfWidth    float64 `toml:"car_hit_half_width"`
	CarHitZMin         float64 `toml:"car_hit_z_min"`
	CarHitZMax         float64 `toml:"car_hit_z_max"`
	PassZ              float64 `toml:"pass_z"`
	PassSameLaneBand   float64 `toml:"pass_same_lane_band"`
	PassAirborneMargin float64 `toml:"pass_airborne_margin"`
	PassReward         float64 `toml:"pass_reward"`
	PassRewardWrongWay float64 `toml:"pass_reward_wrong_way"`
	JumpBonus          float64 `toml:"jump_bonus"`
	JumpBonusWrongWay  float64 `toml:"jump_bonus_wrong_way"`
	CloseCallPenalty   float64 `toml:"close_call_penalty"`
	MinPassReward      float64 `toml:"min_pass_reward"`

	// Hazards.
	HazardBaseInterval float64 `toml:"hazard_base_interval"`
	HazardMinInterval  float64 `toml:"hazard_min_interval"`
	HazardScoreDecay   float64 `toml:"hazard_score_decay"`
	HazardJitter       float64 `toml:"hazard_jitter"`
	HazardTrafficGap   float64 `toml:"hazard_traffic_gap"`
	HazardSeparation   float64 `toml:"hazard_separation"`
	HazardSpawnZ       float64 `toml:"hazard_spawn_z"`
	HazardSpawnSpread  float64 `toml:"hazard_spawn_spread"`
	HazardDespawnZ     float64 `toml:"hazard_despawn_z"`
	HazardBaseY        float64 `toml:"hazard_base_y"`
	HazardHitHalfWidth float64 `toml:"hazard_hit_half_width"`
	HazardHitZMin      float64 `toml:"hazard_hit_z_min"`
	HazardHitZMax      float64 `toml:"hazard_hit_z_max"`
	HazardArmStartZ    float64 `toml:"hazard_arm_start_z"`
	HazardArmEndZ      float64 `toml:"hazard_arm_end_z"`

	// Pickups.
	PickupMinInterval   float64    `toml:"pickup_min_interval"`
	PickupMaxInterval   float64    `toml:"pickup_max_interval"`
	PickupCap           int        `toml:"pickup_cap"`
	PickupWindows       [3]float64 `toml:"pickup_windows"` // traffic, hazard, pickup
	PickupReward        float64    `toml:"pickup_reward"`
	PickupSpawnZ        float64    `toml:"pickup_spawn_z"`
	PickupSpawnSpread   float64    `toml:"pickup_spawn_spread"`
	PickupBaseY         float64    `toml:"pickup_base_y"`
	PickupDespawnZ      float64    `toml:"pickup_despawn_z"`
	PickupHitZMin       float64    `toml:"pickup_hit_z_min"`
	PickupHitZMax       float64    `toml:"pickup_hit_z_max"`
	PickupHitHalfWidth  float64    `toml:"pickup_hit_half_width"`
	PickupHitHalfHeight float64    `toml:"pickup_hit_half_height"`

	// Effects.
	PopupDuration float64 `toml:"popup_duration"`
	MaxDebris     int     `toml:"max_debris"`
}

// DefaultTuning returns the stock balance.
func DefaultTuning() Tuning {
	return Tuning{
		Lanes: []float64{-2.6, 0, 2.6},

		PlayerBaseY:        0.42,
		Gravity:            30,
		JumpImpulse:        9.6,
		JumpCooldown:       0.6,
		AirborneTolerance:  0.05,
		AccelRate:          1.005,
		StartSpeed:         55,
		SpeedLogFactor:     40,
		SpeedBaseOffset:    20,
		MaxSpeed:           150,
		LateralEaseRate:    10,
		MaxDelta:           0.06,
		DistanceScoreRate:  4.5,
		SpeedometerFactor:  3.2,
		TiltFactor:         -0.06,
		MaxPitch:           -0.22,
		PitchRate:          3.6,
		GroundEase:         0.25,
		PitchDecay:         0.92,
		TiltEase:           0.18,
		CollisionAirMargin: 0.25,

		TrafficBaseInterval:  1.4,
		TrafficMinInterval:   0.65,
		TrafficScoreDecay:    0.0007,
		TrafficRefSpeed:      55,
		TrafficSeparation:    24,
		ForwardSpawnZ:        -140,
		ForwardSpawnSpread:   40,
		WrongWaySpawnZ:       -95,
		WrongWaySpawnSpread:  24,
		WrongWayScoreGate:    320,
		WrongWayMinGap:       10,
		WrongWayChance:       0.22,
		ForwardSpeedMin:      12,
		ForwardSpeedMax:      18,
		WrongWaySpeedMin:     26,
		WrongWaySpeedMax:     32,
		PursuitChance:        0.5,
		PursuitGap:           35,
		PursuitAttempts:      4,
		PursuitRetryStep:     8,
		PursuitBaseSpeed:     30,
		PursuitCatchUp:       6,
		PursuitTolerance:     2,
		PursuitSpeedEase:     2.5,
		TrafficDespawnAhead:  24,
		TrafficDespawnBehind: -200,

		CarHitHalfWidth:    1.05,
		CarHitZMin:         -2.4,
		CarHitZMax:         2.2,
		PassZ:              1.5,
		PassSameLaneBand:   1.6,
		PassAirborneMargin: 0.22,
		PassReward:         80,
		PassRewardWrongWay: 160,
		JumpBonus:          90,
		JumpBonusWrongWay:  200,
		CloseCallPenalty:   30,
		MinPassReward:      20,

		HazardBaseInterval: 12,
		HazardMinInterval:  4,
		HazardScoreDecay:   0.002,
		HazardJitter:       3,
		HazardTrafficGap:   20,
		HazardSeparation:   18,
		HazardSpawnZ:       -120,
		HazardSpawnSpread:  80,
		HazardDespawnZ:     28,
		HazardBaseY:        0.2,
		HazardHitHalfWidth: 1.2,
		HazardHitZMin:      -1.8,
		HazardHitZMax:      2.6,
		HazardArmStartZ:    -40,
		HazardArmEndZ:      -12,

		PickupMinInterval:   0.5,
		PickupMaxInterval:   3,
		PickupCap:           3,
		PickupWindows:       [3]float64{18, 18, 12},
		PickupReward:        150,
		PickupSpawnZ:        -120,
		PickupSpawnSpread:   50,
		PickupBaseY:         0.72,
		PickupDespawnZ:      24,
		PickupHitZMin:       -1.8,
		PickupHitZMax:       2.6,
		PickupHitHalfWidth:  1.05,
		PickupHitHalfHeight: 1.2,

		PopupDuration: 0.3,
		MaxDebris:     96,
	}
}

// LaneCount returns the number of lanes.
func (t Tuning) LaneCount() int { return len(t.Lanes) }

// LaneX returns the lateral offset of lane i. An out-of-range index is a
// programming error.
func (t Tuning) LaneX(i int) float64 {
	if i < 0 || i >= len(t.Lanes) {
		panic(fmt.Sprintf("game: lane index %d out of range [0,%d)", i, len(t.Lanes)))
	}
	return t.Lanes[i]
}

// SpeedCap is the highest forward speed reachable at multiplier mult.
func (t Tuning) SpeedCap(mult float64) float64 {
	return max(t.StartSpeed, t.MaxSpeed) * mult
}

// Validate reports the first inconsistent field.
func (t *Tuning) Validate() error {
	switch {
	case len(t.Lanes) == 0:
		return errors.New("tuning: at least one lane is required")
	case t.MaxDelta <= 0:
		return errors.New("tuning: max_delta must be positive")
	case t.TrafficMinInterval <= 0 || t.TrafficMinInterval > t.TrafficBaseInterval:
		return fmt.Errorf("tuning: traffic interval floor %.2f must be in (0, %.2f]", t.TrafficMinInterval, t.TrafficBaseInterval)
	case t.HazardMinInterval <= 0 || t.HazardMinInterval > t.HazardBaseInterval:
		return fmt.Errorf("tuning: hazard interval floor %.2f must be in (0, %.2f]", t.HazardMinInterval, t.HazardBaseInterval)
	case t.PickupMinInterval <= 0 || t.PickupMinInterval > t.PickupMaxInterval:
		return fmt.Errorf("tuning: pickup interval [%.2f, %.2f] is invalid", t.PickupMinInterval, t.PickupMaxInterval)
	case t.PickupCap < 0:
		return errors.New("tuning: pickup_cap must not be negative")
	case t.PursuitAttempts < 1:
		return errors.New("tuning: pursuit_attempts must be at least 1")
	case t.StartSpeed < 0 || t.MaxSpeed <= 0:
		return errors.New("tuning: speeds must be positive")
	}
	return nil
}

// Tier is a named difficulty level with its own best-score slot.
type Tier struct {
	ID              string  `toml:"id"`
	Label           string  `toml:"label"`
	SpeedMultiplier float64 `toml:"speed_multiplier"`
	StorageKey      string  `toml:"storage_key"`
}

const storageKeyPrefix = "street-sprint-best"

// DefaultTiers returns the stock easy/normal/hard ladder.
func DefaultTiers() []Tier {
	return []Tier{
		{ID: "easy", Label: "Easy", SpeedMultiplier: 0.85, StorageKey: storageKeyPrefix + "-easy"},
		{ID: "normal", Label: "Normal", SpeedMultiplier: 1.0, StorageKey: storageKeyPrefix + "-normal"},
		{ID: "hard", Label: "Hard", SpeedMultiplier: 1.2, StorageKey: storageKeyPrefix + "-hard"},
	}
}

// ValidateTiers checks the ladder for empty lists, bad multipliers and duplicates.
func ValidateTiers(tiers []Tier) error {
	if len(tiers) == 0 {
		return errors.New("tiers: at least one tier is required")
	}
	ids := make(map[string]bool, len(tiers))
	keys := make(map[string]bool, len(tiers))
	for _, t := range tiers {
		if t.ID == "" {
			return fmt.Errorf("tiers: tier %q needs an id", t.Label)
		}
		if t.StorageKey == "" {
			return fmt.Errorf("tiers: tier %q needs a storage key", t.ID)
		}
		if t.SpeedMultiplier <= 0 {
			return fmt.Errorf("tiers: tier %q has non-positive multiplier %.2f", t.ID, t.SpeedMultiplier)
		}
		if ids[t.ID] {
			return fmt.Errorf("tiers: duplicate id %q", t.ID)
		}
		if keys[t.StorageKey] {
			return fmt.Errorf("tiers: duplicate storage key %q", t.StorageKey)
		}
		ids[t.ID] = true
		keys[t.StorageKey] = true
	}
	return nil
}
