package tilegrid

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Scenario is the YAML shape of a stored demo map:
//
//	name: corridor
//	rows:
//	  - "S..#"
//	  - "##.#"
//	  - "...."
//
// '#' is blocked, '.' and ' ' are open, 'S' marks the conventional start
// tile (parsed as open).
type Scenario struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// LoadScenario decodes a Scenario from r and builds its TileMap.
func LoadScenario(r io.Reader) (*Scenario, *TileMap, error) {
	var sc Scenario
	if err := yaml.NewDecoder(r).Decode(&sc); err != nil {
		return nil, nil, fmt.Errorf("tilegrid: decode scenario: %w", err)
	}

	m, err := FromRows(sc.Rows)
	if err != nil {
		return nil, nil, err
	}

	return &sc, m, nil
}
