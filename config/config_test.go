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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_YAML(t *testing.T) {
	p := write(t, "paygate.yaml", `
environment: production
merchant_id: m1
public_key: pub
private_key: priv
timeout: 15s
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, Production, cfg.Environment)
	assert.Equal(t, 15*time.Second, cfg.Timeout.Std())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "https://api.braintreegateway.com:443/merchants/m1", cfg.BaseURL())
}

func TestLoad_TOML(t *testing.T) {
	p := write(t, "paygate.toml", `
environment = "sandbox"
merchant_id = "m2"
public_key = "pub"
private_key = "priv"
base_url = "http://127.0.0.1:8080/"
log_level = "debug"
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080/merchants/m2", cfg.BaseURL())
	assert.Equal(t, 60*time.Second, cfg.Timeout.Std())
	assert.Equal(t, logrus.DebugLevel, cfg.Logger().Logger.GetLevel())
}

func TestLoad_TimeoutFormsAgreeAcrossSources(t *testing.T) {
	const creds = "merchant_id: m\npublic_key: a\nprivate_key: b\n"
	const tomlCreds = "merchant_id = \"m\"\npublic_key = \"a\"\nprivate_key = \"b\"\n"
	cases := []struct {
		name, file, body string
	}{
		{"yaml duration", "d.yaml", creds + "timeout: 30s\n"},
		{"yaml quoted duration", "q.yaml", creds + "timeout: \"30s\"\n"},
		{"yaml seconds", "s.yaml", creds + "timeout: 30\n"},
		{"toml duration", "d.toml", tomlCreds + "timeout = \"30s\"\n"},
		{"toml seconds", "s.toml", tomlCreds + "timeout = 30\n"},
		{"toml quoted seconds", "q.toml", tomlCreds + "timeout = \"30\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(write(t, tc.file, tc.body))
			require.NoError(t, err)
			assert.Equal(t, 30*time.Second, cfg.Timeout.Std())
		})
	}

	for _, v := range []string{"30s", "30"} {
		t.Setenv("PAYGATE_MERCHANT_ID", "m")
		t.Setenv("PAYGATE_PUBLIC_KEY", "a")
		t.Setenv("PAYGATE_PRIVATE_KEY", "b")
		t.Setenv("PAYGATE_TIMEOUT", v)
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, cfg.Timeout.Std(), v)
	}
}

func TestLoad_RejectsBadTimeouts(t *testing.T) {
	const creds = "merchant_id: m\npublic_key: a\nprivate_key: b\n"
	for name, body := range map[string]string{
		"word":     creds + "timeout: soon\n",
		"negative": creds + "timeout: -5s\n",
		"mapping":  creds + "timeout:\n  seconds: 5\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(write(t, "bad.yaml", body))
			assert.Error(t, err)
		})
	}
}

func TestDuration_Text(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte(" 1m30s ")))
	assert.Equal(t, 90*time.Second, d.Std())
	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(b))
	assert.Error(t, d.UnmarshalText([]byte("")))
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"unsupported": write(t, "paygate.json", `{}`),
		"missing":     filepath.Join(t.TempDir(), "nope.yaml"),
		"syntax":      write(t, "bad.yaml", "environment: [\n"),
		"invalid":     write(t, "invalid.yaml", "environment: staging\nmerchant_id: m\npublic_key: a\nprivate_key: b\n"),
		"incomplete":  write(t, "incomplete.toml", `merchant_id = "m"`),
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PAYGATE_ENVIRONMENT", "development")
	t.Setenv("PAYGATE_MERCHANT_ID", "m3")
	t.Setenv("PAYGATE_PUBLIC_KEY", "pub")
	t.Setenv("PAYGATE_PRIVATE_KEY", "priv")
	t.Setenv("PAYGATE_TIMEOUT", "5")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Timeout.Std())
	assert.Equal(t, "http://localhost:3000/merchants/m3", cfg.BaseURL())

	t.Setenv("PAYGATE_TIMEOUT", "250ms")
	cfg, err = FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout.Std())

	t.Setenv("PAYGATE_TIMEOUT", "soon")
	_, err = FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_DotenvDoesNotOverride(t *testing.T) {
	vars := []string{"PAYGATE_MERCHANT_ID", "PAYGATE_PUBLIC_KEY", "PAYGATE_PRIVATE_KEY"}
	t.Cleanup(func() {
		for _, v := range vars {
			_ = os.Unsetenv(v)
		}
	})
	t.Setenv("PAYGATE_ENVIRONMENT", "sandbox")
	t.Setenv("PAYGATE_PRIVATE_KEY", "from-process")
	p := write(t, ".env", "PAYGATE_MERCHANT_ID=m4\nPAYGATE_PUBLIC_KEY=pub\nPAYGATE_PRIVATE_KEY=from-file\n")

	cfg, err := FromEnv(p)
	require.NoError(t, err)
	assert.Equal(t, "m4", cfg.MerchantID)
	assert.Equal(t, "from-process", cfg.PrivateKey)

	_, err = FromEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.Validate())

	cfg.MerchantID, cfg.PublicKey, cfg.PrivateKey = "m", "pub", "priv"
	assert.NoError(t, cfg.Validate())

	cfg.BaseURLOverride = "not a url"
	assert.Error(t, cfg.Validate())

	cfg.BaseURLOverride = ""
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())
}

func TestLogger_FallsBackToInfo(t *testing.T) {
	cfg := Config{MerchantID: "m5", LogLevel: ""}
	entry := cfg.Logger()
	assert.Equal(t, logrus.InfoLevel, entry.Logger.GetLevel())
	assert.Equal(t, "m5", entry.Data["merchant_id"])
}
