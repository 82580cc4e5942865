/*
Package opt implements the option tokens the UCI codec treats as opaque: the
"option" declaration line an engine sends to advertise a tunable parameter,
and the interpreted side of the "setoption" assignment a GUI sends back. It
also parses the conventional UCI_Opponent value format.

The codec in pkg/uci only frames where these tokens start and end on a line;
their internal grammar lives here.
*/
package opt

import (
	"strconv"
	"strings"

	"github.com/uzichess/uzi/pkg/uci"
)

// Type enumerates the five UCI option types.
type Type uint8

const (
	// Check is a boolean toggle.
	Check Type = iota
	// Spin is an integer in a min/max range.
	Spin
	// Combo picks one of several predefined values.
	Combo
	// Button triggers an action and carries no value.
	Button
	// String is free text.
	String
)

var typeNames = [...]string{"check", "spin", "combo", "button", "string"}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "string"
}

func parseType(tok string) (Type, bool) {
	for i, name := range typeNames {
		if tok == name {
			return Type(i), true
		}
	}
	return 0, false
}

// Decl declares a configurable engine option: the "option name <id> type
// <t> ..." line sent in reply to "uci". Default, Min and Max are emitted
// only when set; Vars lists the predefined values of a combo.
type Decl struct {
	Name    string
	Type    Type
	Default *string
	Min     *int
	Max     *int
	Vars    []string
}

func (d Decl) String() string {
	var sb strings.Builder
	sb.WriteString("option name ")
	sb.WriteString(d.Name)
	sb.WriteString(" type ")
	sb.WriteString(d.Type.String())
	if d.Default != nil {
		sb.WriteString(" default ")
		sb.WriteString(*d.Default)
	}
	if d.Min != nil {
		sb.WriteString(" min ")
		sb.WriteString(strconv.Itoa(*d.Min))
	}
	if d.Max != nil {
		sb.WriteString(" max ")
		sb.WriteString(strconv.Itoa(*d.Max))
	}
	for _, v := range d.Vars {
		sb.WriteString(" var ")
		sb.WriteString(v)
	}
	return sb.String()
}

// declKeywords end a multi-token name, default or var run.
var declKeywords = map[string]bool{
	"type":    true,
	"default": true,
	"min":     true,
	"max":     true,
	"var":     true,
}

// ParseDecl decodes an engine's "option" declaration line. Names, defaults
// and combo vars may span several tokens; a run ends at the next declaration
// keyword. A check default of an empty string is legal for string options.
func ParseDecl(line string) (Decl, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != "option" || fields[1] != "name" {
		return Decl{}, &uci.Error{Kind: uci.What, Raw: line}
	}
	i := 2
	var name []string
	for i < len(fields) && fields[i] != "type" {
		name = append(name, fields[i])
		i++
	}
	if len(name) == 0 || i >= len(fields)-1 {
		return Decl{}, &uci.Error{Kind: uci.What, Raw: line}
	}
	i++ // past "type"
	t, ok := parseType(fields[i])
	if !ok {
		return Decl{}, &uci.Error{Kind: uci.UnknownOpt, Raw: fields[i]}
	}
	d := Decl{Name: strings.Join(name, " "), Type: t}
	i++
	for i < len(fields) {
		switch kw := fields[i]; kw {
		case "default":
			i++
			var val []string
			for i < len(fields) && !declKeywords[fields[i]] {
				val = append(val, fields[i])
				i++
			}
			s := strings.Join(val, " ")
			d.Default = &s
		case "min", "max":
			i++
			if i >= len(fields) {
				return Decl{}, &uci.Error{Kind: uci.What, Field: kw}
			}
			n, err := strconv.Atoi(fields[i])
			if err != nil {
				return Decl{}, &uci.Error{Kind: uci.BadNumber, Field: kw, Raw: fields[i]}
			}
			if kw == "min" {
				d.Min = &n
			} else {
				d.Max = &n
			}
			i++
		case "var":
			i++
			var val []string
			for i < len(fields) && !declKeywords[fields[i]] {
				val = append(val, fields[i])
				i++
			}
			d.Vars = append(d.Vars, strings.Join(val, " "))
		default:
			return Decl{}, &uci.Error{Kind: uci.UnknownOpt, Raw: kw}
		}
	}
	return d, nil
}

// Assign is an interpreted "setoption" payload: the option name and, when
// present, its raw value text.
type Assign struct {
	Name     string
	Value    string
	HasValue bool
}

// FromSetOpt adopts the frame the codec produced.
func FromSetOpt(c uci.SetOpt) Assign {
	return Assign{Name: c.Name, Value: c.Value, HasValue: c.HasValue}
}

// Bool interprets the value as a check-option state.
func (a Assign) Bool() (bool, error) {
	switch strings.TrimSpace(a.Value) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, &uci.Error{Kind: uci.BadBool, Field: a.Name, Raw: a.Value}
}

// Int interprets the value as a spin-option setting.
func (a Assign) Int() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(a.Value))
	if err != nil {
		return 0, &uci.Error{Kind: uci.BadNumber, Field: a.Name, Raw: a.Value}
	}
	return n, nil
}
