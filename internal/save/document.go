package save

import (
	"encoding/json"
	"fmt"

	"github.com/Calculator5329/infinite-horizons/internal/game"
)

// DocumentVersion is written to every data.json.
const DocumentVersion = 1

// document is the on-disk layout of data.json as written.
type document struct {
	Version   int            `json:"version"`
	Planets   []PlanetRecord `json:"planets"`
	Spaceship ShipRecord     `json:"spaceship"`
}

// rawDocument defers record decoding so one bad planet can't sink the rest.
type rawDocument struct {
	Version   int               `json:"version"`
	Planets   []json.RawMessage `json:"planets"`
	Spaceship json.RawMessage   `json:"spaceship"`
}

// PlanetRecord is one entry of the "planets" array.
type PlanetRecord struct {
	X              float64         `json:"x"`
	Y              float64         `json:"y"`
	ID             int             `json:"id" jsonschema:"minimum=0"`
	Res            int             `json:"res" jsonschema:"minimum=1"`
	Type           string          `json:"type" jsonschema:"enum=Terrestrial,enum=Gas Giant,enum=Ice Giant,enum=Dwarf"`
	Minerals       []string        `json:"minerals"`
	Habitability   float64         `json:"habitability" jsonschema:"minimum=0,maximum=1"`
	Name           string          `json:"name" jsonschema:"minLength=1"`
	ThemeName      string          `json:"theme_name"`
	Scale          float64         `json:"scale"`
	SpriteFilename string          `json:"sprite_filename"`
	Missions       []MissionRecord `json:"missions,omitempty"`
}

// ShipRecord is the "spaceship" object.
type ShipRecord struct {
	X        float64         `json:"x"`
	Y        float64         `json:"y"`
	Credits  int             `json:"credits,omitempty"`
	Missions []MissionRecord `json:"missions"`
}

// MissionRecord mirrors game.Mission.
type MissionRecord struct {
	ID          string       `json:"id,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Reward      int          `json:"reward"`
	Steps       []StepRecord `json:"steps"`
	Completed   bool         `json:"completed"`
	Notified    bool         `json:"notified"`
}

// StepRecord mirrors game.MissionStep.
type StepRecord struct {
	Description string     `json:"description"`
	Task        TaskRecord `json:"task"`
	IsComplete  bool       `json:"is_complete"`
	Notified    bool       `json:"notified"`
}

// TaskRecord is the tagged union of task payloads.
type TaskRecord struct {
	Type           string `json:"type" jsonschema:"enum=Deliver,enum=TaskDeliverPassenger"`
	CurrentPlanet  string `json:"current_planet"`
	EndpointPlanet string `json:"endpoint_planet"`
	IsComplete     bool   `json:"is_complete"`
	PassengerName  string `json:"passenger_name,omitempty"`
	AtHub          bool   `json:"at_hub,omitempty"`
}

func planetRecord(p *game.Planet, spriteRel string) PlanetRecord {
	return PlanetRecord{
		X:              p.X,
		Y:              p.Y,
		ID:             p.ID,
		Res:            p.Resolution,
		Type:           string(p.Type),
		Minerals:       nonNil(p.Minerals),
		Habitability:   p.Habitability,
		Name:           p.Name,
		ThemeName:      p.ThemeName,
		Scale:          p.Scale,
		SpriteFilename: spriteRel,
		Missions:       missionRecords(p.Missions),
	}
}

func shipRecord(s game.ShipState) ShipRecord {
	return ShipRecord{
		X:        s.X,
		Y:        s.Y,
		Credits:  s.Credits,
		Missions: nonNil(missionRecords(s.Missions)),
	}
}

func missionRecords(ms []*game.Mission) []MissionRecord {
	if len(ms) == 0 {
		return nil
	}
	out := make([]MissionRecord, 0, len(ms))
	for _, m := range ms {
		rec := MissionRecord{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Reward:      m.Reward,
			Steps:       make([]StepRecord, 0, len(m.Steps)),
			Completed:   m.Completed,
			Notified:    m.Notified,
		}
		for _, s := range m.Steps {
			rec.Steps = append(rec.Steps, StepRecord{
				Description: s.Description,
				Task:        taskRecord(s.Task),
				IsComplete:  s.IsComplete,
				Notified:    s.Notified,
			})
		}
		out = append(out, rec)
	}
	return out
}

func taskRecord(t game.Task) TaskRecord {
	switch t := t.(type) {
	case *game.PassengerTask:
		return TaskRecord{
			Type:           game.TaskTypePassenger,
			CurrentPlanet:  t.CurrentPlanet,
			EndpointPlanet: t.EndpointPlanet,
			IsComplete:     t.IsComplete,
			PassengerName:  t.PassengerName,
			AtHub:          t.AtHub,
		}
	case *game.DeliverTask:
		return TaskRecord{
			Type:           game.TaskTypeDeliver,
			CurrentPlanet:  t.CurrentPlanet,
			EndpointPlanet: t.EndpointPlanet,
			IsComplete:     t.IsComplete,
		}
	default:
		return TaskRecord{Type: game.TaskTypeDeliver}
	}
}

func (r TaskRecord) task() (game.Task, error) {
	base := game.DeliverTask{
		CurrentPlanet:  r.CurrentPlanet,
		EndpointPlanet: r.EndpointPlanet,
		IsComplete:     r.IsComplete,
	}
	switch r.Type {
	case game.TaskTypeDeliver:
		return &base, nil
	case game.TaskTypePassenger:
		return &game.PassengerTask{DeliverTask: base, PassengerName: r.PassengerName, AtHub: r.AtHub}, nil
	default:
		return nil, fmt.Errorf("unknown task type %q", r.Type)
	}
}

// mission rebuilds a game.Mission, reusing known[ID] when present.
func (r MissionRecord) mission(known map[string]*game.Mission) (*game.Mission, error) {
	if m, ok := known[r.ID]; ok && r.ID != "" {
		return m, nil
	}
	m := &game.Mission{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Reward:      r.Reward,
		Completed:   r.Completed,
		Notified:    r.Notified,
	}
	for i, s := range r.Steps {
		t, err := s.Task.task()
		if err != nil {
			return nil, fmt.Errorf("mission %q step %d: %w", r.Title, i, err)
		}
		m.Steps = append(m.Steps, &game.MissionStep{
			Description: s.Description,
			Task:        t,
			IsComplete:  s.IsComplete,
			Notified:    s.Notified,
		})
	}
	if r.ID != "" {
		known[r.ID] = m
	}
	return m, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
