package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/markdias/hair.studio9381-sub000/internal/models"
)

// StylistConfig is one roster entry binding a stylist to a calendar.
type StylistConfig struct {
	Name       string `yaml:"name"`
	CalendarID string `yaml:"calendar_id"`
}

// StylistsConfig is the root configuration for stylists.yaml. The
// roster is owned by the admin side; the engine only mirrors it into
// the bindings table.
type StylistsConfig struct {
	Stylists []StylistConfig `yaml:"stylists"`
}

// LoadStylistsConfig loads and validates the stylist roster.
func LoadStylistsConfig(path string) (*StylistsConfig, error) {
	if path == "" {
		path = "configs/stylists.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stylists config: %w", err)
	}

	var cfg StylistsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse stylists config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate stylists config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the roster for errors.
func (c *StylistsConfig) Validate() error {
	names := make(map[string]bool)
	for i, s := range c.Stylists {
		if s.Name == "" {
			return fmt.Errorf("stylist[%d]: name is required", i)
		}
		if names[s.Name] {
			return fmt.Errorf("stylist[%d]: duplicate name '%s'", i, s.Name)
		}
		names[s.Name] = true

		if s.CalendarID == "" {
			return fmt.Errorf("stylist[%d]: calendar_id is required", i)
		}
	}
	return nil
}

// Bindings converts the roster entries to store rows.
func (c *StylistsConfig) Bindings() []models.StylistCalendar {
	out := make([]models.StylistCalendar, 0, len(c.Stylists))
	for _, s := range c.Stylists {
		out = append(out, models.StylistCalendar{
			Stylist:    s.Name,
			CalendarID: s.CalendarID,
			IsActive:   true,
		})
	}
	return out
}
