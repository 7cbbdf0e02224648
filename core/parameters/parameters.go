/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"strconv"
	"strings"

	"github.com/npillmayer/mdxe/core"
	"github.com/npillmayer/schuko"
)

// ConversionParameter is a key for a parameter of normalizing, parsing or rendering.
type ConversionParameter int

const (
	none ConversionParameter = iota
	P_TABWIDTH
	P_MAXNESTING
	P_MAXINPUT
	P_TABCOLUMNS
	P_UNICODEFORM
	P_AUTOLINKSCHEMES
	P_STOPPER
)

// Values for P_TABCOLUMNS and P_UNICODEFORM.
const (
	ColumnsRunes     = "runes"
	ColumnsGraphemes = "graphemes"
	FormNone         = "none"
	FormNFC          = "nfc"
)

var configKeys = [P_STOPPER]string{
	"",
	"tab-width",
	"max-nesting",
	"max-input",
	"tab-columns",
	"unicode-form",
	"autolink-schemes",
}

func (p ConversionParameter) String() string {
	if p <= none || p >= P_STOPPER {
		return "<undefined parameter>"
	}
	return configKeys[p]
}

// ConversionRegisters holds the parameter values for a conversion.
type ConversionRegisters struct {
	base [P_STOPPER]interface{}
}

// ----------------------------------------------------------------------

// NewConversionRegisters creates a set of registers initialized with default values.
func NewConversionRegisters() *ConversionRegisters {
	regs := &ConversionRegisters{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_TABWIDTH] = 4              // columns per tab stop
	p[P_MAXNESTING] = 256          // bracket depth and link recursion
	p[P_MAXINPUT] = 0              // bytes, 0 = unlimited
	p[P_TABCOLUMNS] = ColumnsRunes // unit of column counting for detab
	p[P_UNICODEFORM] = FormNone    // normalization form applied by cleanup
	p[P_AUTOLINKSCHEMES] = "http,https,ftp,dict"
}

// FromConfig creates a set of registers from a configuration. Keys not set in
// conf keep their default values. Malformed values result in an EINVALID error.
func FromConfig(conf schuko.Configuration) (*ConversionRegisters, error) {
	regs := NewConversionRegisters()
	if conf == nil {
		return regs, nil
	}
	for p := P_TABWIDTH; p < P_STOPPER; p++ {
		value := strings.TrimSpace(conf.GetString(p.String()))
		if value == "" {
			continue
		}
		if err := regs.Set(p, value); err != nil {
			return nil, err
		}
	}
	return regs, nil
}

// Set parses a textual value for parameter key and stores it.
func (regs *ConversionRegisters) Set(key ConversionParameter, value string) error {
	switch key {
	case P_TABWIDTH, P_MAXNESTING:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return core.Error(core.EINVALID, "parameter %s must be a positive integer, is %q", key, value)
		}
		regs.Push(key, n)
	case P_MAXINPUT:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return core.Error(core.EINVALID, "parameter %s must be a non-negative integer, is %q", key, value)
		}
		regs.Push(key, n)
	case P_TABCOLUMNS:
		v := strings.ToLower(value)
		if v != ColumnsRunes && v != ColumnsGraphemes {
			return core.Error(core.EINVALID, "parameter %s must be %q or %q, is %q", key,
				ColumnsRunes, ColumnsGraphemes, value)
		}
		regs.Push(key, v)
	case P_UNICODEFORM:
		v := strings.ToLower(value)
		if v != FormNone && v != FormNFC {
			return core.Error(core.EINVALID, "parameter %s must be %q or %q, is %q", key,
				FormNone, FormNFC, value)
		}
		regs.Push(key, v)
	case P_AUTOLINKSCHEMES:
		if len(Schemes(value)) == 0 {
			return core.Error(core.EINVALID, "parameter %s must name at least one scheme", key)
		}
		regs.Push(key, value)
	default:
		return core.Error(core.EINVALID, "no such parameter: %d", int(key))
	}
	return nil
}

// Push sets the value of a parameter.
func (regs *ConversionRegisters) Push(key ConversionParameter, value interface{}) {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of conversion parameters")
	}
	regs.base[key] = value
}

// Get returns the value of a parameter.
func (regs *ConversionRegisters) Get(key ConversionParameter) interface{} {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of conversion parameters")
	}
	return regs.base[key]
}

// S returns a string parameter.
func (regs *ConversionRegisters) S(key ConversionParameter) string {
	return regs.Get(key).(string)
}

// N returns an integer parameter.
func (regs *ConversionRegisters) N(key ConversionParameter) int {
	return regs.Get(key).(int)
}

// Schemes splits a comma separated list of URL schemes into lower-case names.
func Schemes(list string) []string {
	var schemes []string
	for _, s := range strings.Split(list, ",") {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			schemes = append(schemes, s)
		}
	}
	return schemes
}
