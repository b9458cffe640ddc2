package credentials

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// refreshMargin is how far ahead of expiration a cached profile is still
// considered usable, mirroring the original tool's 3-hour safety window.
const refreshMargin = 3 * time.Hour

// CachedProfile is the on-disk shape of one profile's cached credentials.
type CachedProfile struct {
	AccessKeyID     string    `yaml:"aws_access_key_id"`
	SecretAccessKey string    `yaml:"aws_secret_access_key"`
	SessionToken    string    `yaml:"aws_session_token"`
	Expiration      time.Time `yaml:"aws_expiration"`
}

// Fresh reports whether this profile's credentials are still good for at
// least refreshMargin beyond now.
func (c *CachedProfile) Fresh(now time.Time) bool {
	return !c.Expiration.Before(now.Add(refreshMargin))
}

// file is the on-disk document: one CachedProfile per profile name, keyed
// the same way the original keys its credentials file ("mfa/<access key>").
type file struct {
	Profiles map[string]CachedProfile `yaml:"profiles"`
}

// Cache is a YAML-backed store of cached session credentials.
type Cache struct {
	Path string
}

// DefaultCachePath returns ~/.config/oathmfa/credentials.yaml.
func DefaultCachePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "oathmfa", "credentials.yaml"), nil
}

// Load reads the cached profile named by profile. ok is false if the file
// is missing or has no entry for that profile.
func (c *Cache) Load(profile string) (*CachedProfile, bool) {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, false
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, false
	}

	cp, ok := f.Profiles[profile]
	if !ok {
		return nil, false
	}
	return &cp, true
}

// Store writes cp under profile, preserving any other cached profiles.
func (c *Cache) Store(profile string, cp *CachedProfile) error {
	f := file{Profiles: map[string]CachedProfile{}}

	if data, err := os.ReadFile(c.Path); err == nil {
		_ = yaml.Unmarshal(data, &f)
	}
	if f.Profiles == nil {
		f.Profiles = map[string]CachedProfile{}
	}
	f.Profiles[profile] = *cp

	out, err := yaml.Marshal(&f)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(c.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(c.Path, out, 0o600)
}
