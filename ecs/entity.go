package ecs

import "strconv"

// Entity packs a slot id in the low 32 bits and the slot's generation in the
// high 32 bits. A destroyed slot is reused with a bumped generation, so stale
// handles to planets or pivots fail IsAlive instead of aliasing a new node.
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

// String prints the slot and generation, e.g. "12v3".
func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

// Valid reports whether the handle was ever issued. Slot 0 is never handed
// out, so the zero Entity stands for "no node" (a planet without a ring).
// It does not check liveness.
func (e Entity) Valid() bool {
	return e.id() > 0
}
