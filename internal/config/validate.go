package config

import "fmt"

// Validate rejects configs that would fail mid-sweep instead of up front.
func Validate(cfg Config) error {
	if len(cfg.Services) == 0 {
		return fmt.Errorf("config: no services defined")
	}

	seen := map[string]bool{}
	for i, s := range cfg.Services {
		if s.Name == "" {
			return fmt.Errorf("config: services[%d]: name is empty", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("config: duplicate service name %q", s.Name)
		}
		seen[s.Name] = true

		if !s.Enabled {
			continue
		}
		if s.Table == "" {
			return fmt.Errorf("config: service %q: table is empty", s.Name)
		}
		if s.URL == "" {
			return fmt.Errorf("config: service %q: url is empty", s.Name)
		}
	}
	return nil
}
