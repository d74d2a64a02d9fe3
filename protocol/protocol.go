// Package protocol defines the types necessary for unmarshalling a
// protocol-specification XML file, along with the descriptor tables
// for every protocol that this module speaks.
package protocol

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Protocol struct {
	Name      string `xml:"name,attr"`
	Copyright string `xml:"copyright"`

	Interfaces []Interface `xml:"interface"`
}

// Decode reads a protocol description from r.
func Decode(r io.Reader) (proto Protocol, err error) {
	err = xml.NewDecoder(r).Decode(&proto)
	if err != nil {
		return proto, fmt.Errorf("decode protocol XML: %w", err)
	}
	return proto, nil
}

// Interface returns the interface with the given name, or nil if the
// protocol does not define it.
func (p *Protocol) Interface(name string) *Interface {
	for i := range p.Interfaces {
		if p.Interfaces[i].Name == name {
			return &p.Interfaces[i]
		}
	}
	return nil
}

type Interface struct {
	Name        string      `xml:"name,attr"`
	Version     int         `xml:"version,attr"`
	Description Description `xml:"description"`

	Requests []Op   `xml:"request"`
	Events   []Op   `xml:"event"`
	Enums    []Enum `xml:"enum"`
}

// Request returns the request with the given opcode, or nil if there
// is no such request.
func (i *Interface) Request(op uint16) *Op {
	if int(op) >= len(i.Requests) {
		return nil
	}
	return &i.Requests[op]
}

// Event returns the event with the given opcode, or nil if there is
// no such event.
func (i *Interface) Event(op uint16) *Op {
	if int(op) >= len(i.Events) {
		return nil
	}
	return &i.Events[op]
}

// RequestOpcode looks up the opcode of a request by name.
func (i *Interface) RequestOpcode(name string) (uint16, bool) {
	return opcode(i.Requests, name)
}

// EventOpcode looks up the opcode of an event by name.
func (i *Interface) EventOpcode(name string) (uint16, bool) {
	return opcode(i.Events, name)
}

func opcode(ops []Op, name string) (uint16, bool) {
	for op, v := range ops {
		if v.Name == name {
			return uint16(op), true
		}
	}
	return 0, false
}

// Enum returns the enum with the given name, or nil. Names qualified
// with another interface, such as "wl_shm.format", are not resolved
// here.
func (i *Interface) Enum(name string) *Enum {
	for e := range i.Enums {
		if i.Enums[e].Name == name {
			return &i.Enums[e]
		}
	}
	return nil
}

type Description struct {
	Summary string `xml:"summary,attr"`
	Full    string `xml:",chardata"`
}

type Op struct {
	Name        string      `xml:"name,attr"`
	Type        string      `xml:"type,attr"`
	Since       int         `xml:"since,attr"`
	Description Description `xml:"description"`

	Args []Arg `xml:"arg"`
}

// IsDestructor reports whether the op destroys the object it is sent
// to or from.
func (op Op) IsDestructor() bool {
	return op.Type == "destructor"
}

// Signature returns the argument signature of op in the format used
// by libwayland, such as "no?ous" for a new_id, an object, a nullable
// object, a uint and a string.
func (op Op) Signature() string {
	var sb strings.Builder
	if op.Since > 1 {
		sb.WriteString(strconv.FormatInt(int64(op.Since), 10))
	}
	for _, arg := range op.Args {
		if arg.Nullable() {
			sb.WriteByte('?')
		}
		sb.WriteString(arg.code())
	}
	return sb.String()
}

type Arg struct {
	Name      string `xml:"name,attr"`
	Summary   string `xml:"summary,attr"`
	AllowNull string `xml:"allow-null,attr"`

	Type      string `xml:"type,attr"`
	Interface string `xml:"interface,attr"`
	Enum      string `xml:"enum,attr"`
	Version   int    `xml:"version,attr"`
}

func (arg Arg) Nullable() bool {
	return arg.AllowNull == "true"
}

func (arg Arg) code() string {
	switch arg.Type {
	case "int":
		return "i"
	case "uint":
		return "u"
	case "fixed":
		return "f"
	case "string":
		return "s"
	case "object":
		return "o"
	case "new_id":
		if arg.Interface == "" {
			return "sun"
		}
		return "n"
	case "array":
		return "a"
	case "fd":
		return "h"
	default:
		return "?"
	}
}

type Enum struct {
	Name        string      `xml:"name,attr"`
	Bitfield    bool        `xml:"bitfield,attr"`
	Description Description `xml:"description"`

	Entries []Entry `xml:"entry"`
}

// Value returns the value of the named entry.
func (e *Enum) Value(name string) (int, bool) {
	for _, entry := range e.Entries {
		if entry.Name == name {
			v, err := entry.Int()
			return v, err == nil
		}
	}
	return 0, false
}

type Entry struct {
	Name    string `xml:"name,attr"`
	Summary string `xml:"summary,attr"`
	Value   string `xml:"value,attr"`
	Since   int    `xml:"since,attr"`
}

func (e Entry) Int() (int, error) {
	v, err := strconv.ParseInt(e.Value, 0, 0)
	return int(v), err
}
