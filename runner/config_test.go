// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package runner_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/dtree/runner"
)

func TestDecodeConfig(t *testing.T) {
	cfg, err := runner.DecodeConfig(map[string]any{
		"name":        "router",
		"concurrency": "4",
		"timeout":     "250ms",
		"log_level":   "WARN",
	})
	require.NoError(t, err)
	assert.Equal(t, runner.Config{
		Name:        "router",
		Concurrency: 4,
		Timeout:     250 * time.Millisecond,
		LogLevel:    "WARN",
	}, cfg)
}

func TestDecodeConfigEmpty(t *testing.T) {
	cfg, err := runner.DecodeConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, runner.Config{}, cfg)
}

func TestDecodeConfigErrors(t *testing.T) {
	cases := map[string]map[string]any{
		"unknown key":       {"workers": 3},
		"bad duration":      {"timeout": "soon"},
		"negative workers":  {"concurrency": -1},
		"negative timeout":  {"timeout": "-1s"},
		"unknown log level": {"log_level": "chatty"},
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := runner.DecodeConfig(raw)
			assert.Error(t, err)
		})
	}
}
