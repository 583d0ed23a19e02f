package keypool

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

// Selector picks an index into a pool of n credentials. Implementations must
// be safe for concurrent use.
type Selector interface {
	Next(n int) int
}

// Pool holds the configured oracle API keys and hands one out per call.
// Key choice is delegated to the Selector so tests can inject a fixed one.
type Pool struct {
	keys     []string
	selector Selector
}

// New builds a pool over the non-empty keys. A nil selector defaults to
// random selection, matching the original load-distribution behavior.
func New(keys []string, selector Selector) *Pool {
	filtered := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			filtered = append(filtered, k)
		}
	}
	if selector == nil {
		selector = NewRandomSelector(time.Now().UnixNano())
	}
	return &Pool{keys: filtered, selector: selector}
}

// Pick returns a key, or false when the pool is empty.
func (p *Pool) Pick() (string, bool) {
	if len(p.keys) == 0 {
		return "", false
	}
	idx := p.selector.Next(len(p.keys))
	if idx < 0 || idx >= len(p.keys) {
		idx = 0
	}
	return p.keys[idx], true
}

// Size reports how many usable keys are configured.
func (p *Pool) Size() int {
	return len(p.keys)
}

// RandomSelector distributes load by picking a key uniformly at random.
type RandomSelector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomSelector(seed int64) *RandomSelector {
	return &RandomSelector{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomSelector) Next(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// RoundRobinSelector cycles through keys in order.
type RoundRobinSelector struct {
	counter atomic.Uint64
}

func NewRoundRobinSelector() *RoundRobinSelector {
	return &RoundRobinSelector{}
}

func (s *RoundRobinSelector) Next(n int) int {
	return int((s.counter.Add(1) - 1) % uint64(n))
}

// FixedSelector always returns the same index; meant for deterministic tests.
type FixedSelector int

func (s FixedSelector) Next(n int) int {
	return int(s) % n
}
