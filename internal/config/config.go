package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the immutable deployment configuration: the restaurants
// the tool can build imports for, plus the fixed pay codes and the
// spread-of-hours rate. It is loaded once per run and passed down the
// pipeline; nothing mutates it.
type Config struct {
	Restaurants []Restaurant `yaml:"restaurants"`
	Rates       Rates        `yaml:"rates"`
	Codes       Codes        `yaml:"codes"`
}

// Restaurant is a business with an optional list of sub-locations.
// Restaurants without sub-locations carry their institution id at this
// level.
type Restaurant struct {
	Name      string     `yaml:"name"`
	ADPIID    string     `yaml:"adp_iid,omitempty"`
	Locations []Location `yaml:"locations,omitempty"`
}

// Location is one site of a restaurant with its own institution id.
type Location struct {
	Name   string `yaml:"name"`
	ADPIID string `yaml:"adp_iid,omitempty"`
}

// Rates holds the fixed dollar rates for derived pay components.
type Rates struct {
	SpreadHour float64 `yaml:"spread_hour"` // dollars per spread-of-hours credit
}

// Codes holds the fixed interchange codes stamped on every row.
type Codes struct {
	PayFrequency string `yaml:"pay_frequency"`
	RateCode     string `yaml:"rate_code"`
}

// Load reads an adpgen.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the reference deployment configuration.
func Default() *Config {
	return &Config{
		Restaurants: []Restaurant{
			{
				Name: "L'industrie Pizzeria",
				Locations: []Location{
					{Name: "Brooklyn", ADPIID: "32204797"},
					{Name: "West Village", ADPIID: "32204791"},
					{Name: "Little Italy"},
				},
			},
			{
				Name: "Court Street Grocers",
				Locations: []Location{
					{Name: "Greenwich Village"},
					{Name: "Williamsburg"},
					{Name: "Carroll Gardens"},
					{Name: "Midtown"},
				},
			},
			{Name: "Elbow Bread"},
			{Name: "S&P Lunch"},
		},
		Rates: Rates{SpreadHour: 17},
		Codes: Codes{PayFrequency: "W", RateCode: "BASE"},
	}
}

// FindRestaurant returns the restaurant named name, or nil.
func (c *Config) FindRestaurant(name string) *Restaurant {
	for i := range c.Restaurants {
		if c.Restaurants[i].Name == name {
			return &c.Restaurants[i]
		}
	}
	return nil
}

// ResolveInstitution resolves the institution id and display name for
// a restaurant/location selection. Restaurants without sub-locations
// resolve at the restaurant level; for the rest a location is
// required. A resolved entry may still carry an empty institution id —
// the import is generated anyway and the id column stays blank.
func (c *Config) ResolveInstitution(restaurant, location string) (iid, name string, err error) {
	r := c.FindRestaurant(restaurant)
	if r == nil {
		return "", "", fmt.Errorf("unknown restaurant %q", restaurant)
	}
	if len(r.Locations) == 0 {
		return r.ADPIID, r.Name, nil
	}
	if location == "" {
		return "", "", fmt.Errorf("restaurant %q has %d locations; pick one", restaurant, len(r.Locations))
	}
	for _, loc := range r.Locations {
		if loc.Name == location {
			return loc.ADPIID, loc.Name, nil
		}
	}
	return "", "", fmt.Errorf("restaurant %q has no location %q", restaurant, location)
}
