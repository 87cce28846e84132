// Package model implements the OSCQuery address tree.
//
// The tree mirrors the OSC address space: interior nodes are groups,
// addressable parameters are leaves. A node is exclusively one or the
// other - the type system has no group with a value and no leaf with
// children. The root group additionally carries the server's HostInfo.
//
// # Building
//
// A Tree is built single-threaded before serving:
//
//	tree := model.New(model.NewHostInfo("My OSC Server", "127.0.0.1", 9000))
//	err := tree.Insert(model.Parameter{
//	    Path:        "/synth/volume",
//	    Value:       osc.Float(0.5),
//	    Description: "master volume",
//	    Range:       &model.Range{Min: 0, Max: 1},
//	    Unit:        unit.Gain(unit.Linear),
//	})
//
// Insert creates intermediate groups as needed and fails with
// ErrInvalidPath or ErrPathConflict without modifying the tree.
// There is no removal or update.
//
// # Publishing
//
// Freeze marks the tree immutable; once frozen it may be read from any
// number of goroutines without locking, which is what the query and
// service layers rely on. Insert after Freeze returns ErrFrozen.
//
// # Serialization
//
// Nodes marshal to the exact JSON mandated by the OSCQuery proposal:
// upper-case field names, ACCESS as an integer, VALUE/RANGE/UNIT as
// arrays with one element per value slot, and CONTENTS preserving
// insertion order among siblings.
package model
