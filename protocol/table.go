package protocol

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"sort"
)

//go:embed xml/*.xml
var files embed.FS

// The protocols that this module speaks. They are parsed once, at
// init, from the embedded XML files.
var (
	Wayland          = mustLoad("wayland.xml")
	LayerShell       = mustLoad("wlr-layer-shell-unstable-v1.xml")
	ShortcutsInhibit = mustLoad("keyboard-shortcuts-inhibit-unstable-v1.xml")
	Tablet           = mustLoad("tablet-unstable-v2.xml")
)

var interfaces = index(Wayland, LayerShell, ShortcutsInhibit, Tablet)

func mustLoad(name string) *Protocol {
	data, err := files.ReadFile(path.Join("xml", name))
	if err != nil {
		panic(fmt.Errorf("read embedded protocol %v: %w", name, err))
	}

	proto, err := Decode(bytes.NewReader(data))
	if err != nil {
		panic(fmt.Errorf("load embedded protocol %v: %w", name, err))
	}
	return &proto
}

func index(protos ...*Protocol) map[string]*Interface {
	m := make(map[string]*Interface)
	for _, p := range protos {
		for i := range p.Interfaces {
			m[p.Interfaces[i].Name] = &p.Interfaces[i]
		}
	}
	return m
}

// Lookup finds an interface by name in any of the known protocols.
func Lookup(name string) *Interface {
	return interfaces[name]
}

// MustLookup is like Lookup, but panics if the interface is not
// known. It is meant for package-level variables in the protocol
// object packages.
func MustLookup(name string) *Interface {
	i := Lookup(name)
	if i == nil {
		panic(fmt.Errorf("unknown protocol interface %q", name))
	}
	return i
}

// Protocols returns all of the known protocols, sorted by name.
func Protocols() []*Protocol {
	protos := []*Protocol{Wayland, LayerShell, ShortcutsInhibit, Tablet}
	sort.Slice(protos, func(i, j int) bool { return protos[i].Name < protos[j].Name })
	return protos
}

// ByName returns the known protocol with the given name, or nil.
func ByName(name string) *Protocol {
	for _, p := range Protocols() {
		if p.Name == name {
			return p
		}
	}
	return nil
}
