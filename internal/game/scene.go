package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Faultbox/egghunt/internal/config"
	"github.com/Faultbox/egghunt/internal/engine/geometry"
	"github.com/Faultbox/egghunt/internal/engine/geometry/loader"
	"github.com/Faultbox/egghunt/internal/scene"
)

// Egg mesh resolution when no egg mesh file is configured.
const (
	eggSegments = 24
	eggRings    = 16
)

// newScene loads the configured meshes and builds a seeded scene.
// It returns the seed actually used so a run can be reproduced.
func newScene(cfg *config.Config) (*scene.State, uint64, error) {
	player, err := loader.Load(cfg.Assets.PlayerMesh, geometry.Bunny)
	if err != nil {
		return nil, 0, fmt.Errorf("player mesh: %w", err)
	}
	egg, err := loader.Load(cfg.Assets.EggMesh, func() geometry.Data {
		return geometry.Sphere(eggSegments, eggRings)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("egg mesh: %w", err)
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	s, err := scene.New(scene.Options{
		PlayerGeometry: player,
		EggGeometry:    egg,
		EggCount:       cfg.Game.EggCount,
		Rand:           rand.New(rand.NewPCG(seed, seed)),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("build scene: %w", err)
	}
	return s, seed, nil
}
