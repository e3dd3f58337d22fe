// Package queue implements a singly linked FIFO of strings with insertion at
// both ends, removal at the head, in-place reversal and a stable in-place
// merge sort.
package queue

// element is one node of the chain. It owns its string copy and the sole
// link to its successor.
type element struct {
	value string
	next  *element
}

// Queue is a linked sequence of owned string elements. It is not safe for
// concurrent use. A nil *Queue is a valid argument to every method and
// behaves as an absent queue.
type Queue struct {
	head  *element
	tail  *element
	size  int
	alloc Allocator
}

// New returns an empty queue backed by the Go heap.
func New() *Queue {
	return &Queue{alloc: heapAllocator{}}
}

// NewIn returns an empty queue whose storage is accounted through a.
// Returns nil if a is nil.
func NewIn(a Allocator) *Queue {
	if a == nil {
		return nil
	}
	return &Queue{alloc: a}
}

// newElement reserves and initializes an element holding a copy of s.
// Returns nil if s is absent or a reservation is refused; a refused string
// reservation releases the node reservation, so a failed insert holds
// nothing.
func (q *Queue) newElement(s []byte, next *element) *element {
	if s == nil || !q.alloc.AllocElement() {
		return nil
	}
	value, ok := q.alloc.AllocString(s)
	if !ok {
		q.alloc.FreeElement()
		return nil
	}
	return &element{value: value, next: next}
}

// delElement releases e's string and node storage and returns its successor.
func (q *Queue) delElement(e *element) *element {
	next := e.next
	q.alloc.FreeString(e.value)
	q.alloc.FreeElement()
	return next
}

// Free releases every element from head to tail and leaves the queue
// detached from all of them. No-op on a nil queue.
func (q *Queue) Free() {
	if q == nil {
		return
	}
	for q.head != nil {
		q.head = q.delElement(q.head)
	}
	q.tail = nil
	q.size = 0
}

// InsertHead copies s into a new element at the head of the queue. Returns
// false, with the queue unchanged, if the queue or s is nil or storage is
// refused.
func (q *Queue) InsertHead(s []byte) bool {
	if q == nil {
		return false
	}
	newh := q.newElement(s, q.head)
	if newh == nil {
		return false
	}
	if q.size == 0 {
		q.tail = newh
	}
	q.head = newh
	q.size++
	return true
}

// InsertTail copies s into a new element after the tail of the queue. Same
// failure conditions as InsertHead.
func (q *Queue) InsertTail(s []byte) bool {
	if q == nil {
		return false
	}
	if q.size == 0 {
		return q.InsertHead(s)
	}
	newt := q.newElement(s, nil)
	if newt == nil {
		return false
	}
	q.tail.next = newt
	q.tail = newt
	q.size++
	return true
}

// RemoveHead removes and releases the head element. If buf is non-empty the
// removed value is first copied into it, truncated to len(buf)-1 bytes and
// NUL terminated; nothing past len(buf) is ever written. Returns false on a
// nil or empty queue.
func (q *Queue) RemoveHead(buf []byte) bool {
	if q.Size() == 0 {
		return false
	}
	if len(buf) > 0 {
		n := copy(buf[:len(buf)-1], q.head.value)
		buf[n] = 0
	}
	q.head = q.delElement(q.head)
	q.size--
	if q.size <= 1 {
		q.tail = q.head
	}
	return true
}

// Size returns the number of elements, 0 for a nil queue.
func (q *Queue) Size() int {
	if q == nil {
		return 0
	}
	return q.size
}

// Reverse relinks the chain in place so the element order is exactly
// reversed, then swaps head and tail. No elements are created or destroyed.
// No-op below two elements.
func (q *Queue) Reverse() {
	if q.Size() <= 1 {
		return
	}
	var prev *element
	cur := q.head
	next := cur.next
	for next != nil {
		cur.next = prev
		prev = cur
		cur = next
		next = next.next
	}
	cur.next = prev
	q.tail = q.head
	q.head = cur
}
