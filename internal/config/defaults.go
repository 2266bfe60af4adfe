package config

import (
	_ "embed"
)

//go:embed defaults/platform.yaml
var defaultPlatformYAML []byte

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultPlatformConfig returns the default platform sandbox configuration.
func DefaultPlatformConfig() PlatformConfig {
	return PlatformConfig{
		Physics: PlatformPhysics{
			Gravity:      0.12,
			MoveForce:    0.5,
			JumpImpulse:  -1.4,
			MaxFallSpeed: 2.0,
			Friction:     0.6,
		},
		Player: PlayerBox{
			Width:  3,
			Height: 2,
		},
		World: PlatformWorld{
			BlockCount:  6,
			CoinCount:   8,
			SpikeCount:  3,
			SpringCount: 2,
			CoinScore:   10,
		},
		Collision: CollisionConfig{
			Precision: 0,
		},
	}
}

// DefaultArenaConfig returns the default bumper arena configuration.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Drones: ArenaDrones{
			Count:    5,
			MinSpeed: 0.2,
			MaxSpeed: 0.6,
			Width:    3,
			Height:   2,
		},
		Player: PlayerBox{
			Width:  3,
			Height: 2,
		},
		Gameplay: ArenaGameplay{
			Lives:            3,
			HitCooldownTicks: 45,
			PlayerSpeed:      0.8,
		},
		Collision: CollisionConfig{
			Precision: 0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a scene.
func GetDefaultYAML(sceneID string) []byte {
	switch sceneID {
	case "platform":
		return defaultPlatformYAML
	case "arena":
		return defaultArenaYAML
	default:
		return nil
	}
}
