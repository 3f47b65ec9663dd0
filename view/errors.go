// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"fmt"
	"log"
	"os"
)

// Warning is a logger for reporting conditions that don't prevent
// resolution, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[view] ", log.Lshortfile)

// A ConfigError reports an invalid view specification, such as an
// unknown resolve policy or fields of incompatible types sharing a
// scale.
type ConfigError struct {
	View    string
	Channel Channel
	Msg     string
}

func (e *ConfigError) Error() string {
	if e.Channel == "" {
		return fmt.Sprintf("view %q: %s", e.View, e.Msg)
	}
	return fmt.Sprintf("view %q: channel %s: %s", e.View, e.Channel, e.Msg)
}

func configErrorf(v View, ch Channel, format string, args ...interface{}) error {
	name := ""
	if v != nil {
		name = v.Name()
	}
	return &ConfigError{name, ch, fmt.Sprintf(format, args...)}
}

// A MissingError reports a reference to data that does not exist,
// such as a field absent from a view's data.
type MissingError struct {
	View    string
	Channel Channel
	Field   string
}

func (e *MissingError) Error() string {
	if e.Channel == "" {
		return fmt.Sprintf("view %q: no field %q in data", e.View, e.Field)
	}
	return fmt.Sprintf("view %q: channel %s: no field %q in data", e.View, e.Channel, e.Field)
}
