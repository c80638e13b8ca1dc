package ecs

import "strconv"

// Entity packs a 32-bit id with a 32-bit generation so stale handles to a
// recycled id are detectable.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

// Valid reports whether e was ever issued. It says nothing about liveness.
func (e Entity) Valid() bool {
	return e.id() > 0
}

// entityStore tracks generations and free ids. Ids start at 1.
type entityStore struct {
	gen  []generation
	live []bool
	free []entityID
}

func (s *entityStore) create() Entity {
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		s.live[id-1] = true
		return makeEntity(id, s.gen[id-1])
	}
	s.gen = append(s.gen, 0)
	s.live = append(s.live, true)
	return makeEntity(entityID(len(s.gen)), 0)
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.id() - 1
	s.gen[idx]++
	s.live[idx] = false
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gen) {
		return false
	}
	return s.live[id-1] && s.gen[id-1] == e.generation()
}
