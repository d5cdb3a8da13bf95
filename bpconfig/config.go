/*
 * BP
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package bpconfig holds the interpreter's runtime configuration: the CLI's
logging level and its no-input-file fallback (SPEC_FULL.md §2.3
Configuration). The dictionary's initial capacity and load factor and the
frame stack's growth are part of the language's fixed algorithm definition
(spec.md §4.3, §8) and are not configurable.
*/
package bpconfig

import (
	"fmt"
	"strconv"

	"devt.de/krotik/common/errorutil"
)

/*
ProductVersion is the current version of BP.
*/
const ProductVersion = "1.0.0"

/*
Known configuration keys.
*/
const (
	// LogLevel names the default bplog level the CLI's logger runs at
	// (SPEC_FULL.md §2.2 Logging) when -debug is not passed.
	LogLevel = "LogLevel"

	// RunWithoutInput mirrors the RUN_PROGRAM_WITHOUT_INPUT build flag of
	// spec.md §6: when true and the CLI is given no filename argument, it
	// runs DefaultFile instead of prompting on standard input.
	RunWithoutInput = "RunWithoutInput"
	DefaultFile     = "DefaultFile"
)

/*
DefaultConfig is the default configuration.
*/
var DefaultConfig = map[string]interface{}{
	LogLevel:        "info",
	RunWithoutInput: false,
	DefaultFile:     "program_code.bp",
}

/*
Config is the actual configuration in effect.
*/
var Config map[string]interface{}

func init() {
	data := make(map[string]interface{})
	for k, v := range DefaultConfig {
		data[k] = v
	}
	Config = data
}

/*
Str reads a config value as a string.
*/
func Str(key string) string {
	return fmt.Sprint(Config[key])
}

/*
Int reads a config value as an int.
*/
func Int(key string) int {
	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("could not parse config key %v: %v", key, err))

	return int(ret)
}

/*
Bool reads a config value as a bool.
*/
func Bool(key string) bool {
	if b, ok := Config[key].(bool); ok {
		return b
	}

	ret, err := strconv.ParseBool(fmt.Sprint(Config[key]))

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("could not parse config key %v: %v", key, err))

	return ret
}
