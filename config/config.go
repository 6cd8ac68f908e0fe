/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads gateway credentials and client settings from YAML
// or TOML files and from PAYGATE_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environments understood by BaseURL.
const (
	Development = "development"
	Sandbox     = "sandbox"
	Production  = "production"
)

// EnvPrefix prefixes every variable read by FromEnv.
const EnvPrefix = "PAYGATE_"

// Gateway hosts per environment.
var hosts = map[string]string{
	Development: "http://localhost:3000",
	Sandbox:     "https://api.sandbox.braintreegateway.com:443",
	Production:  "https://api.braintreegateway.com:443",
}

// Config holds what a gateway client needs to reach one merchant account.
type Config struct {
	Environment string `yaml:"environment" toml:"environment" validate:"required,oneof=development sandbox production"`
	MerchantID  string `yaml:"merchant_id" toml:"merchant_id" validate:"required"`
	PublicKey   string `yaml:"public_key" toml:"public_key" validate:"required"`
	PrivateKey  string `yaml:"private_key" toml:"private_key" validate:"required"`

	// BaseURLOverride replaces the environment host, e.g. for a local fake.
	BaseURLOverride string   `yaml:"base_url" toml:"base_url" validate:"omitempty,url"`
	// Timeout bounds one request; see Duration for the accepted forms.
	Timeout         Duration `yaml:"timeout" toml:"timeout" validate:"gte=0"`
	UserAgent       string   `yaml:"user_agent" toml:"user_agent"`
	LogLevel        string   `yaml:"log_level" toml:"log_level" validate:"omitempty,oneof=panic fatal error warn warning info debug trace"`
}

var validate = validator.New()

// Default returns a sandbox configuration without credentials.
func Default() Config {
	return Config{
		Environment: Sandbox,
		Timeout:     Duration(60 * time.Second),
		LogLevel:    "info",
	}
}

// Load reads a configuration file. The format follows the extension:
// .yaml/.yml or .toml. Fields missing from the file keep their Default
// values. The result is validated.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config: unsupported format %q", ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv builds a configuration from PAYGATE_ENVIRONMENT,
// PAYGATE_MERCHANT_ID, PAYGATE_PUBLIC_KEY, PAYGATE_PRIVATE_KEY,
// PAYGATE_BASE_URL, PAYGATE_TIMEOUT, PAYGATE_USER_AGENT and
// PAYGATE_LOG_LEVEL. The dotenv files, when given, are loaded first;
// variables already set in the process win.
func FromEnv(dotenv ...string) (Config, error) {
	if len(dotenv) > 0 {
		if err := godotenv.Load(dotenv...); err != nil {
			return Config{}, fmt.Errorf("config: loading dotenv: %w", err)
		}
	}
	cfg := Default()
	set := func(name string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	set("ENVIRONMENT", &cfg.Environment)
	set("MERCHANT_ID", &cfg.MerchantID)
	set("PUBLIC_KEY", &cfg.PublicKey)
	set("PRIVATE_KEY", &cfg.PrivateKey)
	set("BASE_URL", &cfg.BaseURLOverride)
	set("USER_AGENT", &cfg.UserAgent)
	set("LOG_LEVEL", &cfg.LogLevel)

	if v, ok := os.LookupEnv(EnvPrefix + "TIMEOUT"); ok {
		if err := cfg.Timeout.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("config: %sTIMEOUT: %w", EnvPrefix, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Duration is a time.Duration read the same way from every source: a Go
// duration ("30s", "1m30s") or a whole number of seconds ("30", 30).
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

// UnmarshalText implements encoding.TextUnmarshaler; go-toml and the
// environment both decode through it.
func (d *Duration) UnmarshalText(b []byte) error {
	v := strings.TrimSpace(string(b))
	if n, err := strconv.Atoi(v); err == nil {
		*d = Duration(time.Duration(n) * time.Second)
		return nil
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid duration %q", v)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalYAML accepts both quoted and bare scalars.
func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: timeout must be a scalar", n.Line)
	}
	return d.UnmarshalText([]byte(n.Value))
}

// Validate checks required fields and enumerations.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// BaseURL returns the merchant root every request path is relative to,
// e.g. "https://api.sandbox.braintreegateway.com:443/merchants/m1".
func (c Config) BaseURL() string {
	host := strings.TrimRight(c.BaseURLOverride, "/")
	if host == "" {
		host = hosts[c.Environment]
	}
	return host + "/merchants/" + c.MerchantID
}

// Logger returns an entry on a new logrus logger at LogLevel. An unparsable
// or empty level means info.
func (c Config) Logger() *logrus.Entry {
	l := logrus.New()
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	return logrus.NewEntry(l).WithField("merchant_id", c.MerchantID)
}
