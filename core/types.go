package core

// --- Enums and Constants ---

type Role string

const (
	RoleTank    Role = "Tank"
	RoleDamage  Role = "Damage"
	RoleSupport Role = "Support"
)

// Pool is the fixed, ordered list of hero names for one role.
type Pool []string

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

var tankPool = Pool{
	"D.Va", "Doomfist", "Hazard", "Junker Queen", "Mauga", "Orisa",
	"Ramattra", "Reinhardt", "Roadhog", "Sigma", "Winston",
	"Wrecking Ball", "Zarya",
}

var damagePool = Pool{
	"Ashe", "Bastion", "Cassidy", "Echo", "Freja", "Genji", "Hanzo",
	"Junkrat", "Mei", "Pharah", "Reaper", "Sojourn", "Soldier 76",
	"Sombra", "Symmetra", "Torbjorn", "Tracer", "Venture", "Widowmaker",
}

var supportPool = Pool{
	"Ana", "Baptiste", "Brigitte", "Illari", "Juno", "Kiriko", "Lifeweaver",
	"Lucio", "Mercy", "Moira", "Zenyatta",
}

// Roles returns the three selectable roles in display order.
func Roles() []Role {
	return []Role{RoleTank, RoleDamage, RoleSupport}
}

// PoolFor returns a copy of the hero pool for the given role, or nil if the
// role is unknown. Callers may reorder or truncate the result freely without
// affecting later draws.
func PoolFor(role Role) Pool {
	var src Pool
	switch role {
	case RoleTank:
		src = tankPool
	case RoleDamage:
		src = damagePool
	case RoleSupport:
		src = supportPool
	default:
		return nil
	}
	out := make(Pool, len(src))
	copy(out, src)
	return out
}
