package world

import "github.com/udisondev/cavesummon/internal/model"

// GroupOf returns the group of the monster in slot monIdx, or nil.
func (l *Level) GroupOf(monIdx int) *model.Group {
	mon := l.Monster(monIdx)
	if !mon.IsAlive() {
		return nil
	}
	return l.Group(mon.Group().Index)
}

// Group returns group by index, or nil.
func (l *Level) Group(idx int) *model.Group {
	if idx <= 0 || idx >= len(l.groups) {
		return nil
	}
	return l.groups[idx]
}

// GroupCount returns number of live groups.
func (l *Level) GroupCount() int {
	n := 0
	for _, g := range l.groups[1:] {
		if g != nil {
			n++
		}
	}
	return n
}

// StartGroup creates a group led by mon.
func (l *Level) StartGroup(mon *model.Monster) *model.Group {
	idx := 0
	for i := 1; i < len(l.groups); i++ {
		if l.groups[i] == nil {
			idx = i
			break
		}
	}
	if idx == 0 {
		idx = len(l.groups)
		l.groups = append(l.groups, nil)
	}

	group := model.NewGroup(idx, mon.Index())
	l.groups[idx] = group
	mon.SetGroup(model.GroupInfo{Index: idx, Role: model.GroupRoleLeader})
	return group
}

// JoinGroup adds mon to the group in info with info's role.
// Returns false if the group does not exist.
func (l *Level) JoinGroup(mon *model.Monster, info model.GroupInfo) bool {
	group := l.Group(info.Index)
	if group == nil {
		return false
	}
	group.AddMember(mon.Index())
	mon.SetGroup(info)
	return true
}

// LeaveGroup removes mon from its group, dropping the group once empty.
func (l *Level) LeaveGroup(mon *model.Monster) {
	info := mon.Group()
	group := l.Group(info.Index)
	if group == nil {
		return
	}
	if group.RemoveMember(mon.Index()) {
		l.groups[info.Index] = nil
	}
	mon.SetGroup(model.GroupInfo{})
}
