/*
 * logging_test.go, part of gonomen.
 *
 * Copyright 2024 The gonomen authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(Te *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" INFO ":  zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(Te, want, ParseLevel(in), in)
	}
}

func TestNew(Te *testing.T) {
	for _, format := range []string{"json", "console", ""} {
		l, err := New(Config{Level: "debug", Format: format})
		require.NoError(Te, err)
		require.NotNil(Te, l)
		l.Debug("built", String("format", format))
	}
}

func TestFromCore(Te *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := FromCore(core).With(String("query", "hexan"))
	l.Debug("hidden")
	l.Info("found", Int("isomers", 5), Strings("names", []string{"hexan"}))
	l.Warn("failed", Err(errors.New("boom")), Bool("catalog", false))
	require.Equal(Te, 2, logs.Len())
	entries := logs.All()
	assert.Equal(Te, "found", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(Te, "hexan", ctx["query"])
	assert.Equal(Te, int64(5), ctx["isomers"])
	assert.Equal(Te, "boom", entries[1].ContextMap()["error"])
}

func TestNop(Te *testing.T) {
	l := Nop()
	assert.NotPanics(Te, func() {
		l.With(String("a", "b")).Error("nothing")
		l.Info("nothing")
	})
	assert.NoError(Te, l.Sync())
}
