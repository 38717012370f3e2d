package game

import (
	"math/rand/v2"
	"testing"
)

func testPlanets() []*Planet {
	return []*Planet{
		{ID: 0, Name: "Alpha-I", X: 0, Y: 0, Resolution: 64, Scale: 1},
		{ID: 1, Name: "Nova-V", X: 5000, Y: 0, Resolution: 64, Scale: 1},
	}
}

func TestContextBeacons(t *testing.T) {
	ctx := NewContext(testPlanets(), nil, 0, 0, rand.New(rand.NewPCG(1, 1)))
	var comms, hubs int
	for _, b := range ctx.Beacons() {
		switch b.Kind {
		case BeaconComm:
			comms++
		case BeaconHub:
			hubs++
			if b.PlanetID != 0 {
				t.Fatalf("hub beside planet %d, want 0", b.PlanetID)
			}
		}
	}
	if comms != 2 || hubs != 1 {
		t.Fatalf("comms=%d hubs=%d", comms, hubs)
	}
	if _, ok := ctx.NearbyBeacon(); ok {
		t.Fatal("no beacon should be in range of the planet center")
	}
}

func TestSteerMovesShip(t *testing.T) {
	ctx := NewContext(testPlanets(), nil, 10, 10, nil)
	for i := 0; i < 30; i++ {
		ctx.Steer(1, 0, false)
		ctx.Tick()
	}
	x, y := ctx.ShipPos()
	if x <= 10 || y != 10 {
		t.Fatalf("ship at (%v,%v) after thrusting right", x, y)
	}
	if s := ctx.Ship().Speed(); s > ShipMaxSpeed+1e-9 {
		t.Fatalf("speed %v over cap", s)
	}
	if ctx.Ticks != 30 {
		t.Fatalf("Ticks = %d", ctx.Ticks)
	}
}

func TestRefugeeMissionFlow(t *testing.T) {
	planets := testPlanets()
	rng := rand.New(rand.NewPCG(3, 4))
	comm := beaconPosition(planets[0], BeaconComm)
	ctx := NewContext(planets, nil, comm.X, comm.Y, rng)

	b, ok := ctx.Interact()
	if !ok || b.Kind != BeaconComm || b.PlanetID != 0 {
		t.Fatalf("Interact = %+v, %v", b, ok)
	}
	offers := ctx.OfferMissions(b.Beacon, rng)
	if len(offers) != 1 || offers[0].Title != refugeeTitle || offers[0].Reward != refugeeReward {
		t.Fatalf("offers = %+v", offers)
	}
	if again := ctx.OfferMissions(b.Beacon, rng); len(again) != 1 || again[0] != offers[0] {
		t.Fatal("second visit created another offer")
	}
	m := offers[0]
	task := m.Steps[0].Task.(*PassengerTask)
	if task.EndpointPlanet != "Nova-V" || task.PassengerName != "Refugees" {
		t.Fatalf("task = %+v", task)
	}
	if !ctx.ToggleMission(m) {
		t.Fatal("mission not accepted")
	}

	// Landing at the endpoint before the hub does nothing.
	ship := ctx.Ship()
	ship.X, ship.Y = 5000, 0
	if p, ok := ctx.Land(); !ok || p.ID != 1 {
		t.Fatalf("Land = %v, %v", p, ok)
	}
	if m.Completed {
		t.Fatal("completed without the hub")
	}

	hub := beaconPosition(planets[0], BeaconHub)
	ship.X, ship.Y = hub.X, hub.Y
	if b, ok := ctx.Interact(); !ok || b.Kind != BeaconHub {
		t.Fatalf("hub Interact = %+v, %v", b, ok)
	}
	if !task.AtHub {
		t.Fatal("hub visit not recorded")
	}

	ship.X, ship.Y = 5000, 0
	ctx.Land()
	if !m.Completed {
		t.Fatal("mission not complete")
	}
	if ctx.Player.Credits != refugeeReward {
		t.Fatalf("credits = %d", ctx.Player.Credits)
	}
	if len(ctx.Player.Missions) != 0 || len(planets[0].Missions) != 0 {
		t.Fatal("completed mission still listed")
	}
	ctx.Land()
	if ctx.Player.Credits != refugeeReward {
		t.Fatal("reward paid twice")
	}
	if len(ctx.Notices.Notices) != 2 {
		t.Fatalf("notices = %+v", ctx.Notices.Notices)
	}
}

func TestToggleMissionDrops(t *testing.T) {
	ctx := NewContext(testPlanets(), nil, 0, 0, nil)
	m := NewMission("x", "", 1)
	ctx.ToggleMission(m)
	if ctx.ToggleMission(m) || len(ctx.Player.Missions) != 0 {
		t.Fatal("second toggle should drop")
	}
}

func TestShipState(t *testing.T) {
	p := NewPlayer("Ash")
	p.Credits = 77
	ctx := NewContext(testPlanets(), p, -40, 12, nil)
	st := ctx.ShipState()
	if st.X != -40 || st.Y != 12 || st.Credits != 77 {
		t.Fatalf("ShipState = %+v", st)
	}
}

func TestShipBoost(t *testing.T) {
	s := NewShipPhysics(0, 0)
	for i := 0; i < 200; i++ {
		s.ApplyThrust(1, 1, true)
		s.Tick()
	}
	if s.Speed() <= ShipMaxSpeed || s.Speed() > ShipMaxSpeed*BoostFactor+1e-9 {
		t.Fatalf("boost speed %v", s.Speed())
	}
	for i := 0; i < 400; i++ {
		s.ApplyThrust(0, 0, false)
		s.Tick()
	}
	if s.Speed() != 0 {
		t.Fatalf("ship still drifting at %v", s.Speed())
	}
}
