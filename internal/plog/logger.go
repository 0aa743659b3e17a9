// Copyright 2025 uzqw
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package plog wraps slog.Logger for the ambient logging every cache
// family emits at construction. Adapted from the teacher project's
// pkg/logger: same Format/Config/New/Default shape, but keyed by a
// per-cache-instance UUID instead of a per-request one, since a cache has
// no connections to correlate.
package plog

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Logger wraps slog.Logger with cache-instance correlation.
type Logger struct {
	*slog.Logger
}

// Format is the log output format.
type Format string

const (
	// FormatText outputs logs in human-readable text format.
	FormatText Format = "text"
	// FormatJSON outputs logs in structured JSON format.
	FormatJSON Format = "json"
)

// Config holds logger configuration.
type Config struct {
	Format Format
	Level  slog.Level
}

// New creates a Logger from the given configuration.
func New(cfg Config) *Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// Default returns a Logger with text format and debug level - cache
// construction events are diagnostic, not operational, so they are logged
// below Info.
func Default() *Logger {
	return New(Config{Format: FormatText, Level: slog.LevelDebug})
}

// WithCacheID tags every subsequent log line with the owning cache
// instance's id, so construction lines from different caches in the same
// process can be told apart.
func (l *Logger) WithCacheID(id uuid.UUID) *Logger {
	return &Logger{Logger: l.With(slog.String("cache_id", id.String()))}
}
