// Package layer implements the client side of the wlr layer-shell
// protocol, which lets a client place surfaces in layers above or
// below normal windows and anchor them to the edges of an output.
package layer

import (
	wl "deedles.dev/wloverlay/client"
	"deedles.dev/wloverlay/protocol"
	"deedles.dev/wloverlay/wire"
)

//go:generate go run deedles.dev/wloverlay/cmd/wlgen -proto wlr_layer_shell_unstable_v1 -prefix zwlr_layer_ -out opcodes.go

const ShellInterface = shellInterface

var (
	shellIface   = protocol.MustLookup(shellInterface)
	surfaceIface = protocol.MustLookup(surfaceInterface)
)

type Layer uint32

const (
	Background Layer = iota
	Bottom
	Top
	Overlay
)

type Anchor uint32

const (
	AnchorTop Anchor = 1 << iota
	AnchorBottom
	AnchorLeft
	AnchorRight

	AnchorAll = AnchorTop | AnchorBottom | AnchorLeft | AnchorRight
)

type KeyboardInteractivity uint32

const (
	KeyboardInteractivityNone KeyboardInteractivity = iota
	KeyboardInteractivityExclusive
	KeyboardInteractivityOnDemand
)

func (k KeyboardInteractivity) String() string {
	switch k {
	case KeyboardInteractivityNone:
		return "none"
	case KeyboardInteractivityExclusive:
		return "exclusive"
	case KeyboardInteractivityOnDemand:
		return "on_demand"
	}
	return "unknown"
}

type Shell struct {
	wl.Proxy
}

func IsShell(inter string) bool {
	return inter == shellInterface
}

func BindShell(registry *wl.Registry, name, version uint32) *Shell {
	shell := Shell{Proxy: wl.MakeProxy(registry.State(), shellIface)}
	registry.Bind(name, shellInterface, version, &shell)
	return &shell
}

func (shell *Shell) Dispatch(msg *wire.MessageBuffer) error {
	return shell.UnknownOp(msg.Op())
}

// GetLayerSurface assigns the layer surface role to s. A nil output
// lets the compositor choose one. The surface must not have a buffer
// attached yet, and it must be committed before the compositor will
// send the first configure event.
func (shell *Shell) GetLayerSurface(s *wl.Surface, output wire.Object, layer Layer, namespace string) *Surface {
	ls := Surface{
		Proxy: wl.MakeProxy(shell.State(), surfaceIface),
	}
	shell.State().Add(&ls)

	msg := shell.NewMessage(shellRequestGetLayerSurface, &ls, s, output, layer, namespace)
	msg.WriteObject(&ls)
	msg.WriteObject(s)
	msg.WriteObject(output)
	msg.WriteUint(uint32(layer))
	msg.WriteString(namespace)
	shell.State().Enqueue(msg)

	return &ls
}

// Destroy destroys the shell object. Requires version 3.
func (shell *Shell) Destroy() {
	shell.Send(shellRequestDestroy)
}
