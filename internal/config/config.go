package config

import (
	"bytes"
	"errors"
	"net/url"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/moltbot/gateway/internal/common"
	"github.com/moltbot/gateway/internal/gperr"
)

type (
	Config struct {
		// proxy listen address, falls back to HTTP_ADDR env
		Listen string `yaml:"listen" validate:"omitempty,hostname_port"`
		// upstream UI base URL, e.g. http://127.0.0.1:18789
		Upstream string `yaml:"upstream" validate:"required,url"`
		// domains allowed as websocket origins; empty accepts all
		MatchDomains []string `yaml:"match_domains" validate:"dive,hostname_rfc1123"`
		// interval between status frames on the status websocket
		StatusInterval Duration `yaml:"status_interval"`

		upstreamURL *url.URL
	}

	// Duration parses yaml strings like "3s" via time.ParseDuration.
	Duration time.Duration
)

var (
	validate = validator.New()

	ErrValidationError = gperr.New("validation error")
)

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func New() *Config {
	return &Config{
		Listen:         common.HTTPAddr,
		MatchDomains:   common.GetCommaSepEnv("MATCH_DOMAINS", ""),
		StatusInterval: Duration(common.DefaultStatusInterval),
	}
}

func Load(path string) (*Config, gperr.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gperr.Wrap(err).Subject(path)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, gperr.Error) {
	cfg := New()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, gperr.Wrap(err, "config parse error")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	u, err := url.Parse(cfg.Upstream)
	if err != nil {
		return nil, gperr.Wrap(err).Subject("upstream")
	}
	cfg.upstreamURL = u
	return cfg, nil
}

func (cfg *Config) Validate() gperr.Error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return gperr.Wrap(err)
	}
	errs := make([]error, 0, len(valErrs))
	for _, e := range valErrs {
		detail := e.ActualTag()
		if e.Param() != "" {
			detail += ":" + e.Param()
		}
		errs = append(errs, ErrValidationError.
			Subject(e.Namespace()).
			Withf("require %q", detail))
	}
	return gperr.Join(errs...).Subject("config")
}

func (cfg *Config) UpstreamURL() *url.URL {
	return cfg.upstreamURL
}

func (cfg *Config) Interval() time.Duration {
	return time.Duration(cfg.StatusInterval)
}
