package model

// NormalSpeed is the speed of an unhasted creature.
const NormalSpeed = 110

// Player is the player-controlled entity as seen by the monster systems.
type Player struct {
	grid  Loc
	depth int
	speed int
}

// NewPlayer creates a player at grid on the given dungeon depth.
func NewPlayer(grid Loc, depth, speed int) *Player {
	return &Player{grid: grid, depth: depth, speed: speed}
}

func (p *Player) Grid() Loc        { return p.grid }
func (p *Player) SetGrid(grid Loc) { p.grid = grid }
func (p *Player) Depth() int       { return p.depth }
func (p *Player) Speed() int       { return p.speed }
func (p *Player) SetSpeed(s int)   { p.speed = s }
