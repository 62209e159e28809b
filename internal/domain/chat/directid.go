package chat

// DirectID derives the canonical conversation id for an unordered pair of
// participants: sort the pair lexicographically and join under the dm_
// namespace. Commutative and deterministic, so creating a direct
// conversation is idempotent per pair. Known caveat: identities containing
// the separator could in principle produce ambiguous ids; participant ids
// issued by this system never collide that way.
func DirectID(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return "dm_" + a + "_" + b
}
