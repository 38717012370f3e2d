package game

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/mlange-42/ark/ecs"
)

// Context owns all gameplay state for one session.
type Context struct {
	ECS     *ecs.World
	Planets []*Planet
	Player  *Player
	Notices *Notifications
	Rand    *rand.Rand
	Ticks   uint64

	ship    ecs.Entity
	physics *ecs.Map[ShipPhysics]
	beacons *ecs.Filter2[Position, Beacon]
}

// ShipState is the part of the session written to a save file.
type ShipState struct {
	X, Y     float64
	Credits  int
	Missions []*Mission
}

// PlacedBeacon is a beacon together with its world position.
type PlacedBeacon struct {
	Beacon
	Pos Position
}

// NewContext spawns the player ship at (x, y) and an NPC relay beside every
// planet. The first planet also gets the mission hub.
func NewContext(planets []*Planet, player *Player, x, y float64, rng *rand.Rand) *Context {
	w := ecs.NewWorld(256)

	phys := NewShipPhysics(x, y)
	ship := ecs.NewMap2[ShipPhysics, PlayerControlled](w).NewEntity(&phys, &PlayerControlled{})

	spawn := ecs.NewMap2[Position, Beacon](w)
	for i, p := range planets {
		pos := beaconPosition(p, BeaconComm)
		spawn.NewEntity(&pos, &Beacon{Kind: BeaconComm, PlanetID: p.ID, Radius: beaconRadius})
		if i == 0 {
			hub := beaconPosition(p, BeaconHub)
			spawn.NewEntity(&hub, &Beacon{Kind: BeaconHub, PlanetID: p.ID, Radius: beaconRadius})
		}
	}

	if player == nil {
		player = NewPlayer("Commander")
	}
	return &Context{
		ECS:     w,
		Planets: planets,
		Player:  player,
		Notices: NewNotifications(8),
		Rand:    rng,
		ship:    ship,
		physics: ecs.NewMap[ShipPhysics](w),
		beacons: ecs.NewFilter2[Position, Beacon](w),
	}
}

// Ship returns the player's ship physics for direct inspection.
func (c *Context) Ship() *ShipPhysics {
	return c.physics.Get(c.ship)
}

// ShipPos returns the ship's world position.
func (c *Context) ShipPos() (float64, float64) {
	s := c.Ship()
	return s.X, s.Y
}

// Steer applies one tick of thrust.
func (c *Context) Steer(dx, dy int, boost bool) {
	c.Ship().ApplyThrust(dx, dy, boost)
}

// Tick advances the simulation by one step.
func (c *Context) Tick() {
	c.Ticks++
	c.Ship().Tick()
	c.Notices.Advance()
}

// Beacons lists every NPC ship in the world.
func (c *Context) Beacons() []PlacedBeacon {
	var out []PlacedBeacon
	q := c.beacons.Query()
	for q.Next() {
		pos, b := q.Get()
		out = append(out, PlacedBeacon{Beacon: *b, Pos: *pos})
	}
	return out
}

// NearbyBeacon returns the closest beacon whose docking range covers the ship.
func (c *Context) NearbyBeacon() (PlacedBeacon, bool) {
	x, y := c.ShipPos()
	var best PlacedBeacon
	bestDist := math.Inf(1)
	for _, b := range c.Beacons() {
		d := math.Hypot(b.Pos.X-x, b.Pos.Y-y)
		if d <= b.Radius && d < bestDist {
			best, bestDist = b, d
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

// PlanetInRange returns the first planet whose disk is under the ship.
func (c *Context) PlanetInRange() *Planet {
	x, y := c.ShipPos()
	for _, p := range c.Planets {
		if p.Contains(x, y) {
			return p
		}
	}
	return nil
}

// Interact docks at the nearby beacon, if any, and advances missions
// with the beacon's planet and venue.
func (c *Context) Interact() (PlacedBeacon, bool) {
	b, ok := c.NearbyBeacon()
	if !ok {
		return b, false
	}
	if p := PlanetByID(c.Planets, b.PlanetID); p != nil {
		c.arrive(p, b.Kind.Venue())
	}
	return b, true
}

// Land touches down on the planet under the ship.
func (c *Context) Land() (*Planet, bool) {
	p := c.PlanetInRange()
	if p == nil {
		return nil, false
	}
	c.arrive(p, VenuePlanet)
	return p, true
}

// OfferMissions returns the missions available at b, creating the
// beacon's standard contract the first time it is visited.
func (c *Context) OfferMissions(b Beacon, rng *rand.Rand) []*Mission {
	p := PlanetByID(c.Planets, b.PlanetID)
	if p == nil {
		return nil
	}
	title := offerTitle(b.Kind)
	if !slices.ContainsFunc(p.Missions, func(m *Mission) bool { return m.Title == title }) {
		p.Missions = append(p.Missions, offerFor(b.Kind, p, c.Planets, rng))
	}
	return p.Missions
}

// ToggleMission accepts m if the player doesn't hold it, otherwise drops it.
// It reports whether m is now accepted.
func (c *Context) ToggleMission(m *Mission) bool {
	if c.Player.RemoveMission(m) {
		return false
	}
	c.Player.AddMission(m)
	return true
}

// ShipState snapshots the ship for saving.
func (c *Context) ShipState() ShipState {
	x, y := c.ShipPos()
	return ShipState{X: x, Y: y, Credits: c.Player.Credits, Missions: c.Player.Missions}
}

func (c *Context) arrive(p *Planet, v Venue) {
	for _, m := range slices.Clone(c.Player.Missions) {
		if m.Arrive(p.Name, v, c.Notices) {
			c.complete(m)
		}
	}
}

// complete pays out m and removes it from every list that holds it.
func (c *Context) complete(m *Mission) {
	c.Player.Credits += m.Reward
	c.Player.RemoveMission(m)
	for _, p := range c.Planets {
		p.Missions, _ = removeMission(p.Missions, m)
	}
}
