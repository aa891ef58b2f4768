package core_test

import (
	"errors"
	"math/rand"
	"testing"

	"herogen-ebiten/core"
)

// scriptedRNG returns values from a pre-set sequence.
type scriptedRNG struct {
	values []int
	idx    int
}

func (r *scriptedRNG) Intn(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

func TestPick_DeterministicIndex(t *testing.T) {
	pool := core.Pool{"Ana", "Baptiste", "Brigitte"}
	rng := &scriptedRNG{values: []int{2, 0, 1}}

	want := []string{"Brigitte", "Ana", "Baptiste"}
	for i, w := range want {
		got, err := core.Pick(pool, rng)
		if err != nil {
			t.Fatalf("pick %d: unexpected error: %v", i, err)
		}
		if got != w {
			t.Errorf("pick %d: got %q, want %q", i, got, w)
		}
	}
}

func TestPick_EmptyPool(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, pool := range []core.Pool{nil, {}} {
		if _, err := core.Pick(pool, rng); !errors.Is(err, core.ErrEmptyPool) {
			t.Errorf("pool %#v: got err %v, want ErrEmptyPool", pool, err)
		}
	}
}

func TestPick_MembershipPerRole(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, role := range core.Roles() {
		pool := core.PoolFor(role)
		members := make(map[string]bool, len(pool))
		for _, name := range pool {
			members[name] = true
		}
		for i := 0; i < 500; i++ {
			got, err := core.Pick(pool, rng)
			if err != nil {
				t.Fatalf("role %s: unexpected error: %v", role, err)
			}
			if !members[got] {
				t.Fatalf("role %s: pick %q is not in that role's pool", role, got)
			}
		}
	}
}

func TestPick_Uniformity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, role := range core.Roles() {
		pool := core.PoolFor(role)
		const trialsPerEntry = 2000
		trials := trialsPerEntry * len(pool)

		counts := make(map[string]int, len(pool))
		for i := 0; i < trials; i++ {
			got, err := core.Pick(pool, rng)
			if err != nil {
				t.Fatalf("role %s: unexpected error: %v", role, err)
			}
			counts[got]++
		}

		// Each entry should land within 25% of the expected 1/n frequency.
		// Loose enough to never flake at 2000 trials per entry, tight enough
		// to catch a biased or truncated draw.
		lo := trialsPerEntry * 3 / 4
		hi := trialsPerEntry * 5 / 4
		for _, name := range pool {
			if c := counts[name]; c < lo || c > hi {
				t.Errorf("role %s: %q drawn %d times, want within [%d, %d]", role, name, c, lo, hi)
			}
		}
	}
}
