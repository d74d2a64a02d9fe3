package wl

import (
	"sort"

	"deedles.dev/wloverlay/wire"
	"golang.org/x/exp/maps"
)

// Global is a compositor-advertised interface that can be bound.
type Global struct {
	Name      uint32
	Interface string
	Version   uint32
}

type Registry struct {
	Proxy

	Listener RegistryListener

	globals map[uint32]Global
}

type RegistryListener interface {
	Global(name uint32, inter string, version uint32)
	GlobalRemove(name uint32)
}

// Globals returns a snapshot of the globals currently advertised.
func (registry *Registry) Globals() map[uint32]Global {
	return maps.Clone(registry.globals)
}

// Find returns every advertised global that implements inter, sorted
// by name.
func (registry *Registry) Find(inter string) []Global {
	var found []Global
	for _, g := range registry.globals {
		if g.Interface == inter {
			found = append(found, g)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Name < found[j].Name })
	return found
}

// Bind binds the global with the given name to obj, which must not
// have been added to the state yet. The caller is responsible for
// choosing a version no higher than the advertised one.
func (registry *Registry) Bind(name uint32, inter string, version uint32, obj wire.Object) {
	registry.state.Add(obj)

	id := wire.NewID{Interface: inter, Version: version, ID: obj.ID()}
	msg := registry.NewMessage(registryRequestBind, name, id)
	msg.WriteUint(name)
	msg.WriteNewID(id)
	registry.state.Enqueue(msg)
}

func (registry *Registry) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case registryEventGlobal:
		name := msg.ReadUint()
		inter := msg.ReadString()
		version := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}

		registry.globals[name] = Global{Name: name, Interface: inter, Version: version}
		if registry.Listener != nil {
			registry.Listener.Global(name, inter, version)
		}
		return nil

	case registryEventGlobalRemove:
		name := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}

		delete(registry.globals, name)
		if registry.Listener != nil {
			registry.Listener.GlobalRemove(name)
		}
		return nil

	default:
		return registry.UnknownOp(msg.Op())
	}
}
