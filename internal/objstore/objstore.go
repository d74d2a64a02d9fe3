// Package objstore tracks the protocol objects that are alive on a
// connection, keyed by ID.
package objstore

import "deedles.dev/wloverlay/wire"

type Store struct {
	objects map[uint32]wire.Object
	nextID  uint32
}

func New(start uint32) *Store {
	return &Store{
		objects: make(map[uint32]wire.Object),
		nextID:  start,
	}
}

// Add stores obj, allocating a new ID for it if it doesn't have one
// yet.
func (s *Store) Add(obj wire.Object) {
	id := obj.ID()
	if id == 0 {
		id = s.nextID
		obj.SetID(id)
		s.nextID++
	}

	s.objects[id] = obj
}

// Set stores obj under an ID chosen by the other side of the
// connection.
func (s *Store) Set(id uint32, obj wire.Object) {
	obj.SetID(id)
	s.objects[id] = obj
}

func (s *Store) Get(id uint32) wire.Object {
	return s.objects[id]
}

func (s *Store) Delete(id uint32) {
	obj := s.objects[id]
	delete(s.objects, id)
	if obj != nil {
		obj.Delete()
	}
}

func (s *Store) Len() int {
	return len(s.objects)
}
