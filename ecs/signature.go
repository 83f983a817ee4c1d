package ecs

import (
	"math/bits"
	"strconv"
	"strings"
)

// MaxComponentTypes is the number of distinct component types a Registry can hold
const MaxComponentTypes = 64

// Signature is a set of component types, one bit per ComponentID.
// Entities carry the set they have, systems carry the set they require.
type Signature uint64

// NewSignature builds a signature from component ids
func NewSignature(ids ...ComponentID) Signature {
	var s Signature
	for _, id := range ids {
		s = s.Set(id)
	}
	return s
}

// Set returns s with the bit for id enabled
func (s Signature) Set(id ComponentID) Signature {
	return s | 1<<uint(id)
}

// Clear returns s with the bit for id disabled
func (s Signature) Clear(id ComponentID) Signature {
	return s &^ (1 << uint(id))
}

// Has checks if the bit for id is set
func (s Signature) Has(id ComponentID) bool {
	return s&(1<<uint(id)) != 0
}

// Contains reports whether every bit of sub is also set in s
func (s Signature) Contains(sub Signature) bool {
	return s&sub == sub
}

// Matches reports whether an entity with signature entity satisfies the
// requirement s, i.e. (s & entity) == s.
func (s Signature) Matches(entity Signature) bool {
	return s&entity == s
}

// Len returns the number of component types in the set
func (s Signature) Len() int {
	return bits.OnesCount64(uint64(s))
}

// IsEmpty reports whether no bit is set
func (s Signature) IsEmpty() bool {
	return s == 0
}

// IDs returns the component ids in the set in ascending order
func (s Signature) IDs() []ComponentID {
	ids := make([]ComponentID, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		ids = append(ids, ComponentID(bits.TrailingZeros64(rest)))
	}
	return ids
}

func (s Signature) String() string {
	parts := make([]string, 0, s.Len())
	for _, id := range s.IDs() {
		parts = append(parts, strconv.Itoa(int(id)))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
