package director

import "github.com/ghosthunt/ghosthunt-server/internal/geom"

// Handle is a non-owning reference to an entity the director spawned.
// The world destroys entities; the director only asks whether they still exist.
type Handle interface {
	Alive() bool
}

// Surface is the placement surface ghosts are spawned on.
type Surface interface {
	Bounds() geom.Bounds
	// Raycast returns the first hit of ray within maxDistance.
	Raycast(ray geom.Ray, maxDistance float64) (geom.Hit, bool)
}

// OverlapQuery reports whether any collider on the masked layers intersects the sphere.
type OverlapQuery interface {
	CheckSphere(center geom.Vec3, radius float64, mask LayerMask) bool
}

// Factory creates a ghost in the world and returns a handle to it.
type Factory interface {
	Spawn(position geom.Vec3, rotation geom.Quat) Handle
}

// PlayerLocator provides the player's reference point, if there is a player.
type PlayerLocator interface {
	PlayerPosition() (geom.Vec3, bool)
}

// GameOverFlag is read once per tick; the director never writes it.
type GameOverFlag interface {
	IsGameOver() bool
}

// LayerMask filters overlap queries by collision layer.
type LayerMask uint32

// AllLayers matches every layer.
const AllLayers LayerMask = ^LayerMask(0)

// Has reports whether layer is part of the mask.
func (m LayerMask) Has(layer uint) bool {
	return m&(1<<layer) != 0
}
