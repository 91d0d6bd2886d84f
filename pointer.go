package cardgame

import "strconv"

// OpaquePointer is a handle that names a card instance without the public
// state revealing which instance it is. Two pointers are publicly
// comparable iff they are structurally identical (same owner, same index);
// they are privately resolvable by their owner to an InstanceID.
type OpaquePointer struct {
	Owner Player
	Index int
}

func (p OpaquePointer) String() string {
	return p.Owner.String() + " pointer #" + strconv.Itoa(p.Index)
}
