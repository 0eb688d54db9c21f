package environment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/go-arrower/environment/alog"
)

// EnvPrefix is the prefix of all environment variables overriding a Config,
// e.g. COFFEESHOP_API_SERVER_URL or COFFEESHOP_AUTH0_CLIENT_ID.
const EnvPrefix = "COFFEESHOP"

var (
	ErrLoadFailed      = errors.New("loading environment configuration failed")
	ErrProfileMismatch = errors.New("configuration does not belong to profile")
)

// DefaultViper returns a new viper instance with the values of the
// given profile set as defaults. An unknown profile falls back to DevelopmentProfile.
//
// Environment variables prefixed with EnvPrefix take precedence over
// any config file and the defaults.
func DefaultViper(profile Profile) *Viper {
	conf := Select(profile == ProductionProfile)

	vip := viper.New()

	vip.SetDefault("production", conf.Production)
	vip.SetDefault("api_server_url", conf.APIServerURL)

	vip.SetDefault("auth0.url", conf.Auth0.URL)
	vip.SetDefault("auth0.audience", conf.Auth0.Audience)
	vip.SetDefault("auth0.client_id", conf.Auth0.ClientID)
	vip.SetDefault("auth0.callback_url", conf.Auth0.CallbackURL)

	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	return &Viper{Viper: vip}
}

// Viper is a wrapper around viper.Viper for configuration loading.
// It overwrites the Unmarshal method, so values are decoded the same way
// for all sources and errors are wrapped in ErrLoadFailed.
type Viper struct {
	*viper.Viper
}

func (vip *Viper) Unmarshal(rawVal any, opts ...viper.DecoderConfigOption) error {
	opts = append([]viper.DecoderConfigOption{
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			trimSpaceHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)),
	}, opts...)

	if err := vip.Viper.Unmarshal(rawVal, opts...); err != nil {
		return fmt.Errorf("%w: could not decode configuration into struct: %v", ErrLoadFailed, err) //nolint:errorlint // prevent err in api
	}

	return nil
}

// EnvOverrides returns the keys currently overridden by an environment variable.
func (vip *Viper) EnvOverrides() []string {
	keys := []string{}

	for _, key := range vip.AllKeys() {
		if _, ok := os.LookupEnv(EnvKey(key)); ok {
			keys = append(keys, key)
		}
	}

	return keys
}

// EnvKey returns the name of the environment variable overriding key,
// e.g. auth0.client_id => COFFEESHOP_AUTH0_CLIENT_ID.
func EnvKey(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// trimSpaceHookFunc removes surrounding whitespace, as it is easily
// introduced by .env files and shell exports.
func trimSpaceHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, _ reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}

		s, ok := data.(string)
		if !ok {
			return data, nil
		}

		return strings.TrimSpace(s), nil
	}
}

// Loader loads the Config of a profile, with the overrides of a deployment applied.
type Loader struct {
	logger alog.Logger
}

func NewLoader(logger alog.Logger) *Loader {
	if logger == nil {
		logger = alog.NewNoop()
	}

	return &Loader{logger: logger}
}

// Load returns the Config of the given profile.
// The values of the profile are overwritten by the values of configFile, if given,
// and then by the environment. The result is not validated, see Config.Validate.
func (l *Loader) Load(ctx context.Context, profile Profile, configFile string) (Config, error) {
	if _, err := ForProfile(profile); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	vip := DefaultViper(profile)

	if configFile != "" {
		vip.SetConfigFile(configFile)

		if err := vip.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: could not read config file %s: %v", ErrLoadFailed, configFile, err) //nolint:errorlint,lll // prevent err in api
		}

		l.logger.DebugContext(ctx, "read config file", slog.String("file", vip.ConfigFileUsed()))
	}

	if keys := vip.EnvOverrides(); len(keys) > 0 {
		l.logger.DebugContext(ctx, "values overridden by environment", slog.Any("keys", keys))
	}

	conf := Config{}
	if err := vip.Unmarshal(&conf); err != nil {
		return Config{}, err
	}

	if conf.Profile() != profile {
		return Config{}, fmt.Errorf("%w: %s: production is %t", ErrProfileMismatch, profile, conf.Production)
	}

	l.logger.LogAttrs(ctx, alog.LevelInfo, "loaded environment",
		slog.String("profile", string(profile)),
		slog.String("apiServerUrl", conf.APIServerURL),
		slog.String("auth0Domain", conf.Auth0.Domain()),
	)

	return conf, nil
}

// Load returns the Config of the given profile without logging.
// See Loader.Load.
func Load(profile Profile, configFile string) (Config, error) {
	return NewLoader(nil).Load(context.Background(), profile, configFile)
}
