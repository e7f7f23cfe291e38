package session

import "sync"

// Serializer runs tasks submitted under the same key one at a time, in
// submission order. Tasks under different keys run concurrently. The
// bot uses it to guarantee that two messages from the same chat are
// never handled at once, without one slow chat stalling every other.
type Serializer struct {
	mu    sync.Mutex
	tails map[int64]chan struct{}
}

// NewSerializer creates an empty Serializer
func NewSerializer() *Serializer {
	return &Serializer{
		tails: make(map[int64]chan struct{}),
	}
}

// Do schedules task behind every task previously submitted for key and
// returns immediately. Submission order is preserved only when Do is
// called from a single goroutine per key, which the bot's update loop
// provides.
func (s *Serializer) Do(key int64, task func()) {
	s.mu.Lock()
	prev := s.tails[key]
	done := make(chan struct{})
	s.tails[key] = done
	s.mu.Unlock()

	go func() {
		if prev != nil {
			<-prev
		}

		task()
		close(done)

		s.mu.Lock()
		if s.tails[key] == done {
			delete(s.tails, key)
		}
		s.mu.Unlock()
	}()
}
