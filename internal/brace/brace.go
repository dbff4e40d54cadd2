// Package brace holds the joint being designed and runs its checks.
//
// A Designer owns one Brace and one AxialForce. Every field sits behind
// its own mutex and is replaced whole. A check copies each field out under
// that field's lock and computes without holding any lock, so concurrent
// setters and checks see last-writer-wins per field, read-committed per
// field, with no serializable view across fields: a check racing two
// setters may combine the new section with the old bolts.
package brace

import (
	"sync"

	"github.com/alexiusacademia/gobrace/internal/catalog"
	"github.com/alexiusacademia/gobrace/internal/member"
	"github.com/alexiusacademia/gobrace/internal/value"
)

// Brace is the set of joint parts, each guarded separately.
type Brace struct {
	sectionMu sync.Mutex
	section   member.Section

	materialMu sync.Mutex
	material   catalog.SteelMaterial

	boltsMu sync.Mutex
	bolts   member.BoltConnection

	gussetMu sync.Mutex
	gusset   member.GussetPlate
}

func (b *Brace) Section() member.Section {
	b.sectionMu.Lock()
	defer b.sectionMu.Unlock()
	return b.section
}

func (b *Brace) SetSection(s member.Section) {
	b.sectionMu.Lock()
	b.section = s
	b.sectionMu.Unlock()
}

func (b *Brace) Material() catalog.SteelMaterial {
	b.materialMu.Lock()
	defer b.materialMu.Unlock()
	return b.material
}

func (b *Brace) SetMaterial(m catalog.SteelMaterial) {
	b.materialMu.Lock()
	b.material = m
	b.materialMu.Unlock()
}

func (b *Brace) Bolts() member.BoltConnection {
	b.boltsMu.Lock()
	defer b.boltsMu.Unlock()
	return b.bolts
}

func (b *Brace) SetBolts(c member.BoltConnection) {
	b.boltsMu.Lock()
	b.bolts = c
	b.boltsMu.Unlock()
}

func (b *Brace) Gusset() member.GussetPlate {
	b.gussetMu.Lock()
	defer b.gussetMu.Unlock()
	return b.gusset
}

func (b *Brace) SetGusset(g member.GussetPlate) {
	b.gussetMu.Lock()
	b.gusset = g
	b.gussetMu.Unlock()
}

// AxialForce is the design axial force Nd.
type AxialForce struct {
	mu sync.Mutex
	nd value.Force
}

func (f *AxialForce) Get() value.Force {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nd
}

func (f *AxialForce) Set(nd value.Force) {
	f.mu.Lock()
	f.nd = nd
	f.mu.Unlock()
}
