package document

// Signal delivers values synchronously to its connected receivers, in
// connection order. A receiver can be blocked temporarily without losing
// its connection.
type Signal[T any] struct {
	conns []*Connection[T]
}

type Connection[T any] struct {
	signal  *Signal[T]
	fn      func(T)
	blocked int
}

func (s *Signal[T]) Connect(fn func(T)) *Connection[T] {
	c := &Connection[T]{signal: s, fn: fn}
	s.conns = append(s.conns, c)
	return c
}

func (s *Signal[T]) Emit(v T) {
	// Receivers may disconnect while being notified.
	conns := append([]*Connection[T](nil), s.conns...)
	for _, c := range conns {
		if c.signal == nil || c.blocked > 0 {
			continue
		}
		c.fn(v)
	}
}

func (s *Signal[T]) ConnectionCount() int {
	return len(s.conns)
}

// Block suppresses delivery until the matching Unblock. Calls nest.
func (c *Connection[T]) Block() {
	c.blocked++
}

func (c *Connection[T]) Unblock() {
	if c.blocked > 0 {
		c.blocked--
	}
}

func (c *Connection[T]) IsBlocked() bool {
	return c.blocked > 0
}

func (c *Connection[T]) Disconnect() {
	s := c.signal
	if s == nil {
		return
	}
	for i, other := range s.conns {
		if other == c {
			s.conns = append(s.conns[:i], s.conns[i+1:]...)
			break
		}
	}
	c.signal = nil
}
