// Package game overlays typed views on objects owned by the Pwn Adventure 3
// game library and calls its functions.
//
// Views are never created by this package. ActorAt, PlayerAt and
// ConnectionAt reinterpret an address the host handed us; the view is only
// valid while the host keeps the object alive, which in practice means for
// the duration of the host call that supplied the address.
//
// State the host maintains invariants over (position, velocity, rotation,
// jump state) is read and written through the host's own accessors rather
// than the raw fields, so replication flags and physics caches stay
// consistent.
package game
