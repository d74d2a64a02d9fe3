package wl

import "deedles.dev/wloverlay/wire"

type Compositor struct {
	Proxy
}

func IsCompositor(inter string) bool {
	return inter == compositorInterface
}

func BindCompositor(registry *Registry, name, version uint32) *Compositor {
	compositor := Compositor{Proxy: MakeProxy(registry.state, compositorIface)}
	registry.Bind(name, compositorInterface, version, &compositor)
	return &compositor
}

func (c *Compositor) Dispatch(msg *wire.MessageBuffer) error {
	return c.UnknownOp(msg.Op())
}

func (c *Compositor) CreateSurface() *Surface {
	s := Surface{Proxy: MakeProxy(c.state, surfaceIface)}
	c.state.Add(&s)

	msg := c.NewMessage(compositorRequestCreateSurface, &s)
	msg.WriteObject(&s)
	c.state.Enqueue(msg)

	return &s
}

func (c *Compositor) CreateRegion() *Region {
	r := Region{Proxy: MakeProxy(c.state, regionIface)}
	c.state.Add(&r)

	msg := c.NewMessage(compositorRequestCreateRegion, &r)
	msg.WriteObject(&r)
	c.state.Enqueue(msg)

	return &r
}
