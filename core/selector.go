package core

// Pick draws one hero name from pool with uniform probability using the
// provided RNG. An empty or nil pool yields ErrEmptyPool; the caller is
// expected to show a placeholder instead of failing.
func Pick(pool Pool, rng RNG) (string, error) {
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}
	return pool[rng.Intn(len(pool))], nil
}
