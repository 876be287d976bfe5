package randperm

// Timestamp returns the current value of the system's highest-resolution
// clock as an opaque 64-bit number. It is the default seed source for New,
// so two constructions without an explicit seed are overwhelmingly likely
// to produce different permutations.
//
// The values are only meaningful as seed material: they are not comparable
// across machines or restarts, and the unit differs per platform (see the
// platform-specific implementations).
func Timestamp() uint64 {
	return timestamp()
}
