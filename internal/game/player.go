package game

// Player is the commander's persistent state apart from ship position.
type Player struct {
	Name     string
	Credits  int
	Missions []*Mission
}

// NewPlayer returns a player with no credits or missions.
func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

// HasMission reports whether m is among the player's accepted missions.
func (p *Player) HasMission(m *Mission) bool {
	return indexMission(p.Missions, m) >= 0
}

// AddMission accepts m; accepting twice is a no-op.
func (p *Player) AddMission(m *Mission) {
	if !p.HasMission(m) {
		p.Missions = append(p.Missions, m)
	}
}

// RemoveMission drops m, reporting whether it was held.
func (p *Player) RemoveMission(m *Mission) bool {
	var ok bool
	p.Missions, ok = removeMission(p.Missions, m)
	return ok
}

func indexMission(list []*Mission, m *Mission) int {
	for i, x := range list {
		if x == m || (m.ID != "" && x.ID == m.ID) {
			return i
		}
	}
	return -1
}

func removeMission(list []*Mission, m *Mission) ([]*Mission, bool) {
	i := indexMission(list, m)
	if i < 0 {
		return list, false
	}
	return append(list[:i], list[i+1:]...), true
}
