package game

import (
	"fmt"
	"math/rand/v2"
)

// BeaconKind identifies an NPC ship the player can dock with.
type BeaconKind uint8

const (
	BeaconComm BeaconKind = iota // communications relay, one per planet
	BeaconHub                    // mission hub
)

func (k BeaconKind) String() string {
	if k == BeaconHub {
		return "Hub"
	}
	return "Comm Relay"
}

// Venue returns where docking at this kind of beacon counts as.
func (k BeaconKind) Venue() Venue {
	if k == BeaconHub {
		return VenueHub
	}
	return VenueComm
}

// Position is a fixed world location.
type Position struct {
	X, Y float64
}

// PlayerControlled tags the ship the player flies.
type PlayerControlled struct{}

// Beacon is an NPC ship anchored next to a planet.
type Beacon struct {
	Kind     BeaconKind
	PlanetID int
	Radius   float64 // docking range around the ship
}

// Beacon placement and docking range in world pixels.
const (
	beaconRadius = 200
	beaconGap    = 300
)

// beaconPosition places a beacon off a planet's edge. Comm relays sit to the
// right of their planet, the hub to the left.
func beaconPosition(p *Planet, kind BeaconKind) Position {
	off := p.Radius() + beaconGap
	if kind == BeaconHub {
		off = -off
	}
	return Position{X: p.X + off, Y: p.Y}
}

// Mission offers.
const (
	refugeeTitle  = "Smuggle Refugees"
	refugeeReward = 1000
	supplyTitle   = "Supply Run"
	supplyReward  = 500
)

// offerFor builds the mission an NPC at origin hands out, bound for a
// random other planet (origin itself when it is the only one).
func offerFor(kind BeaconKind, origin *Planet, planets []*Planet, rng *rand.Rand) *Mission {
	dest := origin.Name
	var others []*Planet
	for _, p := range planets {
		if p.Name != origin.Name {
			others = append(others, p)
		}
	}
	if len(others) > 0 {
		dest = others[rng.IntN(len(others))].Name
	}

	if kind == BeaconHub {
		return NewMission(supplyTitle,
			fmt.Sprintf("Haul relief supplies to %s.", dest),
			supplyReward,
			&MissionStep{
				Description: fmt.Sprintf("Deliver supplies to %s.", dest),
				Task:        &DeliverTask{CurrentPlanet: origin.Name, EndpointPlanet: dest},
			})
	}
	return NewMission(refugeeTitle,
		fmt.Sprintf("Transport refugees to safety on the planet %s.", dest),
		refugeeReward,
		&MissionStep{
			Description: "Deliver refugees to safety.",
			Task: &PassengerTask{
				DeliverTask:   DeliverTask{CurrentPlanet: origin.Name, EndpointPlanet: dest},
				PassengerName: "Refugees",
			},
		})
}

func offerTitle(kind BeaconKind) string {
	if kind == BeaconHub {
		return supplyTitle
	}
	return refugeeTitle
}
