package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// Profile holds the SMTP connection settings resolved from one section of
// the profiles file.
type Profile struct {
	Host string
	Port int
	User string
	Pass string
}

type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, profile string) (*Profile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, profile string) (*Profile, error) {
	section, err := cr.cfg.GetSection(profile)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", profile)
	}

	port, err := section.Key("port").Int()
	if err != nil && section.HasKey("port") {
		return nil, fmt.Errorf("profile %s has an invalid port: %w", profile, err)
	}

	return &Profile{
		Host: section.Key("host").String(),
		Port: port,
		User: section.Key("user").String(),
		Pass: section.Key("pass").String(),
	}, nil
}
