package model

import "slices"

// GroupRole is a monster's role inside its group.
type GroupRole uint8

const (
	GroupRoleNone GroupRole = iota
	GroupRoleLeader
	GroupRoleBodyguard
	GroupRoleMember
	GroupRoleSummon
)

func (r GroupRole) String() string {
	switch r {
	case GroupRoleLeader:
		return "leader"
	case GroupRoleBodyguard:
		return "bodyguard"
	case GroupRoleMember:
		return "member"
	case GroupRoleSummon:
		return "summon"
	default:
		return "none"
	}
}

// GroupInfo is a monster's group membership. Index 0 means "no group".
type GroupInfo struct {
	Index int
	Role  GroupRole
}

// Group is a cluster of related monsters on one level.
type Group struct {
	index   int
	leader  int
	members []int // monster indices
}

// NewGroup creates a group led by the given monster.
func NewGroup(index, leader int) *Group {
	return &Group{
		index:   index,
		leader:  leader,
		members: []int{leader},
	}
}

func (g *Group) Index() int  { return g.index }
func (g *Group) Leader() int { return g.leader }

// Members returns a copy of the member monster indices.
func (g *Group) Members() []int {
	return slices.Clone(g.members)
}

// MemberCount returns number of members.
func (g *Group) MemberCount() int { return len(g.members) }

// HasMember checks if monster is in the group.
func (g *Group) HasMember(monIdx int) bool {
	return slices.Contains(g.members, monIdx)
}

// AddMember adds monster to the group. Adding twice is a no-op.
func (g *Group) AddMember(monIdx int) {
	if g.HasMember(monIdx) {
		return
	}
	g.members = append(g.members, monIdx)
}

// RemoveMember removes monster from the group.
// Returns true if the group became empty.
func (g *Group) RemoveMember(monIdx int) bool {
	g.members = slices.DeleteFunc(g.members, func(m int) bool { return m == monIdx })
	if g.leader == monIdx && len(g.members) > 0 {
		g.leader = g.members[0]
	}
	return len(g.members) == 0
}
