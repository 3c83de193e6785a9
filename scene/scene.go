// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package scene provides the per-instance world-transform store a
// vertex shader's instanceId parameter resolves against.
package scene

import (
	"github.com/kvlabs/swrast/linear"
	"github.com/kvlabs/swrast/node"
)

// transform is a node.Interface wrapping a single local matrix. It
// reports Changed exactly once after each Set call, so
// node.Graph.Update only recomputes instances whose transform
// actually moved.
type transform struct {
	local linear.M4
	dirty bool
}

func (t *transform) Local() *linear.M4 { return &t.local }

func (t *transform) Changed() bool {
	c := t.dirty
	t.dirty = false
	return c
}

// Instances is a flat per-instance world-transform store: no
// parent/child relationships, just instanceId -> model matrix,
// closing the gap between spec.md §4.2's vertex-processor input
// `(..., instanceId, ...)` and an actual caller (spec.md's
// original_source/ has no scene graph of its own).
//
// The zero value is an empty, usable store.
type Instances struct {
	graph  node.Graph
	byInst map[uint32]node.Node
}

// Set assigns local as instanceID's local (and, since instances
// have no parent, also world) transform, creating the instance on
// first use.
func (s *Instances) Set(instanceID uint32, local linear.M4) {
	if s.byInst == nil {
		s.byInst = make(map[uint32]node.Node)
	}
	if n, ok := s.byInst[instanceID]; ok {
		t := s.graph.Get(n).(*transform)
		t.local = local
		t.dirty = true
		return
	}
	s.byInst[instanceID] = s.graph.Insert(&transform{local: local, dirty: true}, node.Nil)
}

// Remove deletes instanceID from the store. It is a no-op if
// instanceID was never set.
func (s *Instances) Remove(instanceID uint32) {
	n, ok := s.byInst[instanceID]
	if !ok {
		return
	}
	s.graph.Remove(n)
	delete(s.byInst, instanceID)
}

// Update recomputes the world transform of every instance whose
// local transform changed since the last call.
func (s *Instances) Update() { s.graph.Update() }

// World returns instanceID's world transform and whether
// instanceID is known to the store. Callers resolve this once per
// draw call's instanceId and pack the result into the shader's
// uniform buffer.
func (s *Instances) World(instanceID uint32) (linear.M4, bool) {
	n, ok := s.byInst[instanceID]
	if !ok {
		return linear.M4{}, false
	}
	return *s.graph.World(n), true
}

// Len returns the number of instances in the store.
func (s *Instances) Len() int { return s.graph.Len() }
