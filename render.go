package environment

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"gopkg.in/yaml.v3"
)

// Format is the file format a Config is rendered in.
type Format string

const (
	// JSONFormat uses the key names of the frontend.
	JSONFormat Format = "json"
	// YAMLFormat uses the key names of the config file, see Load.
	YAMLFormat Format = "yaml"
	// TSFormat renders the environment.ts module bundled by the frontend build.
	TSFormat Format = "ts"
)

var ErrUnknownFormat = errors.New("unknown format")

// Formats is the list of all supported formats.
func Formats() []Format {
	return []Format{JSONFormat, YAMLFormat, TSFormat}
}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "yml" {
		f = YAMLFormat
	}

	if slices.Contains(Formats(), f) {
		return f, nil
	}

	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}

	return "", fmt.Errorf("%w: %q, use one of: %s", ErrUnknownFormat, s, strings.Join(names, ", "))
}

// Render writes conf to w in the given format.
func Render(w io.Writer, conf Config, format Format) error {
	switch format {
	case JSONFormat:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(conf); err != nil {
			return fmt.Errorf("could not render json: %w", err)
		}
	case YAMLFormat:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint:gomnd

		if err := enc.Encode(conf); err != nil {
			return fmt.Errorf("could not render yaml: %w", err)
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("could not render yaml: %w", err)
		}
	case TSFormat:
		if err := tsTemplate.Execute(w, conf); err != nil {
			return fmt.Errorf("could not render ts: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return nil
}

// tsTemplate renders the same module shape as the hand written
// environment files of the frontend.
var tsTemplate = template.Must(template.New("environment.ts").Funcs(sprig.TxtFuncMap()).Parse(
	`{{- define "str" }}{{ . | replace "\\" "\\\\" | replace "'" "\\'" | replace "\n" "\\n" | replace "\r" "\\r" | replace "\u2028" "\\u2028" | replace "\u2029" "\\u2029" | squote }}{{ end -}}
// generated by envctl for the {{ .Profile }} profile, do not edit.

export const environment = {
  production: {{ .Production }},
  apiServerUrl: {{ template "str" .APIServerURL }}, // the running API server url
  auth0: {
    url: {{ template "str" .Auth0.URL }}, // the auth0 domain prefix
    audience: {{ template "str" .Auth0.Audience }}, // the audience set for the auth0 app
    clientId: {{ template "str" .Auth0.ClientID }}, // the client id generated for the auth0 app
    callbackURL: {{ template "str" .Auth0.CallbackURL }}, // the base url of the running frontend
  }
};
`))
