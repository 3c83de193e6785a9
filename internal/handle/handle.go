// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package handle implements a generic handle table backed by a
// bitmap free list.
//
// The engine context uses this to own Texture and Mesh values by
// handle (spec.md §3's "Ownership summary": the context owns
// textures and meshes), so callers never hold a live pointer into
// storage that a concurrent Insert may reallocate.
package handle

import (
	"github.com/kvlabs/swrast/internal/bitm"
)

// Handle identifies an element in a Table.
// The zero Handle is never issued by Insert.
type Handle int

// entry is what a Table stores alongside the user data.
type entry[D any] struct {
	data D
	live bool
}

// Table stores data of type D, indexed by Handle.
// The zero value is an empty, usable Table.
type Table[D any] struct {
	idMap bitm.Bitm[uint32]
	data  []entry[D]
}

// Insert adds d to the table and returns the Handle that
// identifies it.
func (t *Table[D]) Insert(d D) Handle {
	if t.idMap.Rem() == 0 {
		t.idMap.Grow(1)
		t.data = append(t.data, make([]entry[D], t.idMap.Len()-len(t.data))...)
	}
	idx, ok := t.idMap.Search()
	if !ok {
		panic("handle: unexpected failure from bitm.Bitm.Search")
	}
	t.idMap.Set(idx)
	t.data[idx] = entry[D]{data: d, live: true}
	// Handle 0 is reserved as invalid, so every index is
	// offset by one.
	return Handle(idx + 1)
}

// Remove invalidates h.
// It is a no-op if h is the zero Handle or does not belong
// to the table.
func (t *Table[D]) Remove(h Handle) {
	idx := int(h) - 1
	if h == 0 || idx >= len(t.data) || !t.data[idx].live {
		return
	}
	var zero D
	t.data[idx] = entry[D]{data: zero}
	t.idMap.Unset(idx)
}

// Get returns the data associated with h and whether h
// identifies a live entry.
func (t *Table[D]) Get(h Handle) (d D, ok bool) {
	idx := int(h) - 1
	if h == 0 || idx >= len(t.data) || !t.data[idx].live {
		return
	}
	return t.data[idx].data, true
}

// Len returns the number of live entries in the table.
func (t *Table[D]) Len() int { return t.idMap.Len() - t.idMap.Rem() }
