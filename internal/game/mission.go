package game

import (
	"strconv"

	"github.com/google/uuid"
)

// Venue is the kind of place the ship docks at.
type Venue uint8

const (
	VenuePlanet Venue = iota // landed on the surface
	VenueComm                // communications relay
	VenueHub                 // mission hub
)

func (v Venue) String() string {
	switch v {
	case VenueComm:
		return "comm"
	case VenueHub:
		return "hub"
	default:
		return "planet"
	}
}

// Task type discriminators as written to save files.
const (
	TaskTypeDeliver   = "Deliver"
	TaskTypePassenger = "TaskDeliverPassenger"
)

// Task is the objective behind a mission step. The set of tasks is closed:
// *DeliverTask and *PassengerTask.
type Task interface {
	// Arrive records that the ship reached planet at venue v.
	Arrive(planet string, v Venue)
	Complete() bool
	Type() string
	task()
}

// DeliverTask completes once the ship reaches the endpoint planet.
type DeliverTask struct {
	CurrentPlanet  string
	EndpointPlanet string
	IsComplete     bool
}

func (t *DeliverTask) Arrive(planet string, _ Venue) {
	t.CurrentPlanet = planet
	if t.CurrentPlanet == t.EndpointPlanet {
		t.IsComplete = true
	}
}

func (t *DeliverTask) Complete() bool { return t.IsComplete }
func (t *DeliverTask) Type() string   { return TaskTypeDeliver }
func (t *DeliverTask) task()          {}

// PassengerTask must pass through a hub before reaching the endpoint.
type PassengerTask struct {
	DeliverTask
	PassengerName string
	AtHub         bool
}

func (t *PassengerTask) Arrive(planet string, v Venue) {
	t.CurrentPlanet = planet
	if v == VenueHub {
		t.AtHub = true
	}
	if t.AtHub && t.CurrentPlanet == t.EndpointPlanet {
		t.IsComplete = true
	}
}

func (t *PassengerTask) Type() string { return TaskTypePassenger }

// MissionStep is one objective of a mission.
type MissionStep struct {
	Description string
	Task        Task
	IsComplete  bool
	Notified    bool
}

// update syncs the step with its task. Completion is sticky.
func (s *MissionStep) update(n Notifier) {
	if s.IsComplete || s.Task == nil || !s.Task.Complete() {
		return
	}
	s.IsComplete = true
	if n != nil && !s.Notified {
		n.Notify("Task Complete!", s.Description, NoticeTask)
		s.Notified = true
	}
}

// Mission is a contract with a reward paid once all steps are done.
type Mission struct {
	ID          string
	Title       string
	Description string
	Reward      int
	Steps       []*MissionStep
	Completed   bool
	Notified    bool
}

// NewMission returns a mission with a fresh ID.
func NewMission(title, description string, reward int, steps ...*MissionStep) *Mission {
	return &Mission{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Reward:      reward,
		Steps:       steps,
	}
}

// Arrive forwards an arrival to every step's task and then updates.
func (m *Mission) Arrive(planet string, v Venue, n Notifier) bool {
	for _, s := range m.Steps {
		if s.Task != nil && !s.IsComplete {
			s.Task.Arrive(planet, v)
		}
	}
	return m.Update(n)
}

// Update refreshes step state and reports whether the mission became
// complete during this call. A mission without steps is complete.
func (m *Mission) Update(n Notifier) (justCompleted bool) {
	if m.Completed {
		return false
	}
	for _, s := range m.Steps {
		s.update(n)
	}
	for _, s := range m.Steps {
		if !s.IsComplete {
			return false
		}
	}
	m.Completed = true
	if n != nil && !m.Notified {
		n.Notify("Mission Complete!", m.Title+" - Reward: "+strconv.Itoa(m.Reward), NoticeMission)
		m.Notified = true
	}
	return true
}
