package save

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	invopop "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	planetSchemaURL = "mem://horizons/planet.schema.json"
	shipSchemaURL   = "mem://horizons/spaceship.schema.json"
)

// reflectSchema builds the JSON Schema for v's type from its struct tags.
func reflectSchema(v any, title string) *invopop.Schema {
	r := invopop.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
	s := r.Reflect(v)
	s.Version = ""
	s.ID = ""
	s.Title = title
	return s
}

func recordSchemas() map[string]*invopop.Schema {
	return map[string]*invopop.Schema{
		planetSchemaURL: reflectSchema(&PlanetRecord{}, "Planet record"),
		shipSchemaURL:   reflectSchema(&ShipRecord{}, "Spaceship record"),
	}
}

type validators struct {
	planet, ship *jsonschema.Schema
}

var compiled = sync.OnceValues(func() (*validators, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	for url, s := range recordSchemas() {
		data, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", url, err)
		}
		if err := c.AddResource(url, bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("add %s: %w", url, err)
		}
	}
	planet, err := c.Compile(planetSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile planet schema: %w", err)
	}
	ship, err := c.Compile(shipSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile spaceship schema: %w", err)
	}
	return &validators{planet: planet, ship: ship}, nil
})

// validateRaw checks one raw JSON record against s.
func validateRaw(s *jsonschema.Schema, raw json.RawMessage) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	return s.Validate(v)
}

// Schema returns the JSON Schemas of the planet and spaceship records,
// indented for display.
func Schema() ([]byte, error) {
	return json.MarshalIndent(map[string]*invopop.Schema{
		"planet":    reflectSchema(&PlanetRecord{}, "Planet record"),
		"spaceship": reflectSchema(&ShipRecord{}, "Spaceship record"),
	}, "", "  ")
}
