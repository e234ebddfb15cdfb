// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the optional touban user configuration.
//
// The config file is located through the TOUBAN_CONFIG environment
// variable only; there is no home-directory discovery. An unset
// variable means built-in defaults — the tool must work with zero
// setup, since the token itself carries all rotation state. A set
// variable that points at an unreadable or invalid file is an error:
// a configuration the user asked for must never be half-applied.
package config
