// Package environment holds the environment configuration of the coffee shop frontend.
//
// A Config is the set of values the frontend bundle uses to reach its API server
// and its Auth0 tenant. One literal Config exists per build Profile, the build
// selects one of them and bundles it.
package environment

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Config is the environment of one frontend build.
// It is intended to be mapped by viper.
type Config struct {
	Production   bool   `mapstructure:"production"     json:"production"   yaml:"production"`
	APIServerURL string `mapstructure:"api_server_url" json:"apiServerUrl" yaml:"api_server_url" validate:"required,notblank,absurl,baseurl"`
	Auth0        Auth0  `mapstructure:"auth0"          json:"auth0"        yaml:"auth0"`
}

// Auth0 configures the identity provider tenant the frontend logs in with.
type Auth0 struct {
	// URL is the tenant prefix, e.g. "gskhaled.us" for gskhaled.us.auth0.com.
	URL         string `mapstructure:"url"          json:"url"         yaml:"url"          validate:"required,notblank,hostname,tenantprefix"`
	Audience    string `mapstructure:"audience"     json:"audience"    yaml:"audience"     validate:"required,notblank"`
	ClientID    string `mapstructure:"client_id"    json:"clientId"    yaml:"client_id"    validate:"required,notblank"`
	CallbackURL string `mapstructure:"callback_url" json:"callbackURL" yaml:"callback_url" validate:"required,notblank,absurl"`
}

const auth0Suffix = ".auth0.com"

// Domain returns the tenant host.
func (a Auth0) Domain() string {
	return a.URL + auth0Suffix
}

// Issuer returns the issuer Auth0 writes into the tokens of this tenant.
func (a Auth0) Issuer() string {
	return "https://" + a.Domain() + "/"
}

// Endpoint returns the URL of path on the API server.
// The result starts with APIServerURL as configured, only repeated trailing
// slashes are collapsed. APIServerURL carries no query or fragment, see Validate.
func (c Config) Endpoint(path string) string {
	path = strings.TrimLeft(path, "/")
	if path == "" {
		return c.APIServerURL
	}

	return strings.TrimRight(c.APIServerURL, "/") + "/" + path
}

// Profile returns the build profile c belongs to.
func (c Config) Profile() Profile {
	if c.Production {
		return ProductionProfile
	}

	return DevelopmentProfile
}

// Profile is a build target of the frontend.
type Profile string

const (
	DevelopmentProfile Profile = "development"
	ProductionProfile  Profile = "production"
)

// ErrUnknownProfile is returned for a profile name that is not in Profiles.
var ErrUnknownProfile = errors.New("unknown profile")

// Profiles is the list of all supported profiles.
func Profiles() []Profile {
	return []Profile{DevelopmentProfile, ProductionProfile}
}

// ParseProfile returns the Profile named s.
func ParseProfile(s string) (Profile, error) {
	p := Profile(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Profiles(), p) {
		return p, nil
	}

	return "", fmt.Errorf("%w: %q, use one of: %s", ErrUnknownProfile, s, joinProfiles())
}

func joinProfiles() string {
	profiles := Profiles()

	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, string(p))
	}

	return strings.Join(names, ", ")
}

// Development returns the environment of the development build.
func Development() Config {
	return Config{
		Production:   false,
		APIServerURL: "http://127.0.0.1:5000",
		Auth0: Auth0{
			URL:         "gskhaled.us",
			Audience:    "fwd",
			ClientID:    "GoloPe06qxx3kdmcS6JFkJm06zU05twm",
			CallbackURL: "http://localhost:8100",
		},
	}
}

// Production returns the environment of the production build.
// Until a deployment overrides them, see Load, it points at the same
// API server and tenant as Development.
func Production() Config {
	conf := Development()
	conf.Production = true

	return conf
}

// ForProfile returns the environment of the given profile.
func ForProfile(p Profile) (Config, error) {
	switch p {
	case DevelopmentProfile:
		return Development(), nil
	case ProductionProfile:
		return Production(), nil
	default:
		return Config{}, fmt.Errorf("%w: %q, use one of: %s", ErrUnknownProfile, p, joinProfiles())
	}
}

// Select returns the production environment if production is set,
// the development environment otherwise.
func Select(production bool) Config {
	if production {
		return Production()
	}

	return Development()
}
