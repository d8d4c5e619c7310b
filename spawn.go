package diablo

import (
	"math"
	"math/rand/v2"
)

const (
	chunkSize    = 8   // tiles per chunk side
	spawnRange   = 3   // chunks, spawn window radius around the player
	spawnKeepOut = 5.0 // tiles, no spawns this close to the origin
)

// chunkHash is a deterministic per-chunk value. Multiplication wraps in
// int32 so far-out chunks hash the same on every platform.
func chunkHash(cx, cy int) uint32 {
	return uint32(int32(cx)*374761393) ^ uint32(int32(cy)*668265263)
}

// Spawner populates chunks with monsters as the player explores. Each
// chunk is rolled exactly once per game; the outcome is fixed by the
// chunk hash so revisited ground stays empty.
type Spawner struct {
	world   *World
	rng     *rand.Rand
	visited map[[2]int]bool
}

// NewSpawner creates a spawner over the given world. The rng picks the
// species; positions come from the chunk hash alone.
func NewSpawner(w *World, rng *rand.Rand) *Spawner {
	return &Spawner{
		world:   w,
		rng:     rng,
		visited: make(map[[2]int]bool),
	}
}

// Visited returns how many chunks have been rolled.
func (s *Spawner) Visited() int {
	return len(s.visited)
}

// SpawnAround rolls every unvisited chunk within the spawn window of the
// given world position and returns the monsters that came up.
func (s *Spawner) SpawnAround(x, y float64) []*Monster {
	pcx := int(math.Floor(x / chunkSize))
	pcy := int(math.Floor(y / chunkSize))

	var spawned []*Monster
	for cy := pcy - spawnRange; cy <= pcy+spawnRange; cy++ {
		for cx := pcx - spawnRange; cx <= pcx+spawnRange; cx++ {
			if m, ok := s.spawnChunk(cx, cy); ok {
				spawned = append(spawned, m)
			}
		}
	}
	return spawned
}

func (s *Spawner) spawnChunk(cx, cy int) (*Monster, bool) {
	key := [2]int{cx, cy}
	if s.visited[key] {
		return nil, false
	}
	s.visited[key] = true

	h := chunkHash(cx, cy)

	// One chunk in five hosts a monster.
	if h%5 != 0 {
		return nil, false
	}

	// Jitter the spawn point around the chunk center.
	centerX := float64(cx*chunkSize) + float64(chunkSize)/2
	centerY := float64(cy*chunkSize) + float64(chunkSize)/2
	offX := float64((h>>8)%chunkSize) - float64(chunkSize)/2
	offY := float64((h>>16)%chunkSize) - float64(chunkSize)/2

	sx := centerX + offX
	sy := centerY + offY

	// Keep the starting area clear.
	if math.Abs(sx) < spawnKeepOut && math.Abs(sy) < spawnKeepOut {
		return nil, false
	}

	kind := RandomKindForTerrain(s.world.TerrainAt(sx, sy), s.rng)
	return NewMonster(sx, sy, kind), true
}
