// Package tilemap models an 8-directional weighted tile grid: terrain
// classification, procedural island generation, fog-of-war bookkeeping and
// pathfinding specialised for diagonal movement.
//
// Grid
//
//	A Map owns width×height tiles in one slice; a tile's ID is y*width+x.
//	Each Tile holds eight neighbor slots ordered Down, Right, Left, Up, DR,
//	DL, UR, UL. Slots are linked symmetrically by New and cleared in both
//	directions when a tile is turned into water.
//
// Terrain
//
//	AutoTileID is either a 4-bit cardinal mask (Down=8, Right=4, Left=2,
//	Up=1) or a TileType written by generation. Values 0..14 are coast,
//	Grass (15) and above are land, Empty (-1) is water. Weight derives from
//	AutoTileID alone: Tree 5, Hill 15, Mountain +Inf, Dungeon 80, else 1.
//
// Movement
//
//	A cardinal step costs the target's weight; a diagonal step costs √2
//	times the target's weight. Mountains are never entered. Whether a
//	diagonal step is allowed depends on the map's DiagonalPolicy; the
//	default DiagonalEitherFlank allows it when at least one of the two
//	flanking cardinal slots is linked. A*, Dijkstra, BFS and
//	ConnectedComponents share that one step rule, so they agree on what is
//	reachable.
//
// Back-pointers
//
//	Tile.Previous is written by every path search after ResetNodePrevious.
//	PathFind writes the Map's shared path buffer; the other entry points
//	return fresh slices. A Map is not safe for concurrent use.
//
// Generation
//
//	CreateIsland runs percentage-driven decoration passes (lakes, erosion,
//	trees, hills, mountains, dungeons, towns) and then SetCastlePlayer,
//	which picks two connected towns as player start and castle. Every retry
//	loop is bounded by WithMaxAttempts and fails with
//	ErrUnsatisfiableGeneration.
//
// Fog
//
//	RevealFog marks a square of tiles revealed and recomputes FogTileID on
//	the square one tile larger. A fog bit is set when that side is the grid
//	edge or an unrevealed tile.
package tilemap
