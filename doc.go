// Package diablo is an isometric action-RPG built on [Ebitengine].
//
// The world is an unbounded procedural plane of 2:1 isometric tiles
// (64x32 pixels) across three Perlin-noise biomes. Monsters spawn from
// deterministic chunk hashes as the player explores; combat, loot, an
// eight-slot inventory, and floating damage text follow the usual
// action-RPG shape.
//
// # Quick start
//
//	cfg := diablo.DefaultConfig()
//	game := diablo.NewGame(cfg, rand.New(rand.NewPCG(1, 2)))
//	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
//	ebiten.SetWindowTitle(cfg.Title)
//	if err := ebiten.RunGame(game); err != nil {
//		log.Fatal(err)
//	}
//
// # Conventions
//
// World positions are measured in tiles; [IsoProject] maps them to
// pixels and [Depth] orders entities back to front (Y-sort). Every
// entity draws with a bottom-center anchor: its ground position is the
// pixel its feet stand on.
//
// Entities render as vector shapes until a sprite sheet is installed
// with [Game.SetSprites]. Sheets are one row per facing in the order
// down-left, down-right, up-left, up-right, one column per walk frame;
// the spritegen package generates them from a YAML plan.
//
// [Ebitengine]: https://ebitengine.org
package diablo
