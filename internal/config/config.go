// Package config provides YAML-based scene configuration loading for the
// bump platform.
package config

// CollisionConfig tunes the collision resolver. Precision is the decimal
// precision for corner-touch equality: the tolerance is 10^-precision world
// units, so precision 0 means corners within one full unit count as
// touching. World units here are character cells, where a tolerance of 1.0
// is intentionally forgiving; raise precision for finer-grained scenes.
type CollisionConfig struct {
	Precision int `yaml:"precision"`
}

// PlatformConfig contains all configuration for the platform sandbox scene.
type PlatformConfig struct {
	Physics   PlatformPhysics `yaml:"physics"`
	Player    PlayerBox       `yaml:"player"`
	World     PlatformWorld   `yaml:"world"`
	Collision CollisionConfig `yaml:"collision"`
}

// PlatformPhysics defines movement parameters for the platform scene.
type PlatformPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	MoveForce    float64 `yaml:"move_force"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	Friction     float64 `yaml:"friction"`
}

// PlayerBox defines the player's bounding box in world units.
type PlayerBox struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlatformWorld defines obstacle layout knobs for the platform scene.
type PlatformWorld struct {
	BlockCount  int `yaml:"block_count"`
	CoinCount   int `yaml:"coin_count"`
	SpikeCount  int `yaml:"spike_count"`
	SpringCount int `yaml:"spring_count"`
	CoinScore   int `yaml:"coin_score"`
}

// ArenaConfig contains all configuration for the bumper arena scene.
type ArenaConfig struct {
	Drones    ArenaDrones     `yaml:"drones"`
	Player    PlayerBox       `yaml:"player"`
	Gameplay  ArenaGameplay   `yaml:"gameplay"`
	Collision CollisionConfig `yaml:"collision"`
}

// ArenaDrones defines the drifting drone swarm.
type ArenaDrones struct {
	Count    int     `yaml:"count"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
}

// ArenaGameplay defines scoring and survival parameters.
type ArenaGameplay struct {
	Lives            int     `yaml:"lives"`
	HitCooldownTicks int     `yaml:"hit_cooldown_ticks"`
	PlayerSpeed      float64 `yaml:"player_speed"`
}
