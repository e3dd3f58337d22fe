package queue

// An Allocator accounts for the storage behind queue elements. A queue built
// with NewIn reserves node and string storage through its allocator and
// releases both for every element it destroys. A reservation may be refused;
// the queue reports that to the caller as a failed insertion and leaves its
// state untouched.
type Allocator interface {
	// AllocElement reserves storage for one element node.
	AllocElement() bool
	// AllocString reserves storage for a copy of s and returns the copy.
	AllocString(s []byte) (string, bool)
	// FreeElement returns one element node reservation.
	FreeElement()
	// FreeString returns the reservation behind a copy made by AllocString.
	FreeString(s string)
}

// heapAllocator backs queues created with New. The Go heap never refuses.
type heapAllocator struct{}

func (heapAllocator) AllocElement() bool { return true }

func (heapAllocator) AllocString(s []byte) (string, bool) { return string(s), true }

func (heapAllocator) FreeElement() {}

func (heapAllocator) FreeString(string) {}
