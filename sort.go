package queue

// span is a contiguous sub-chain identified by its first and last element.
type span struct {
	head *element
	tail *element
}

// split locates the midpoint of the range head..tail, advancing a fast
// pointer two nodes per step against a slow one, and cuts the chain there.
// Both halves come back as properly terminated sub-chains.
func split(head, tail *element) (span, span) {
	slow := head
	for fast := head.next; fast != tail && fast != tail.next; {
		fast = fast.next.next
		slow = slow.next
	}
	left := span{head: head, tail: slow}
	right := span{head: slow.next, tail: tail}
	slow.next = nil
	tail.next = nil
	return left, right
}

// merge interleaves two sorted spans into one. Equal keys take a's element
// first, which keeps the sort stable. Once a side is exhausted the other
// side's remainder is spliced in wholesale.
func merge(a, b span) span {
	var merged *element
	tail := &merged
	for a.head != nil && b.head != nil {
		src := &b.head
		if a.head.value <= b.head.value {
			src = &a.head
		}
		*tail = *src
		*src = (*src).next
		tail = &(*tail).next
	}
	rest := &b
	if a.head != nil {
		rest = &a
	}
	*tail = rest.head
	rest.head = merged
	return *rest
}

// mergeSort sorts the range head..tail and returns its new boundaries.
func mergeSort(head, tail *element) span {
	if head == tail {
		return span{head: head, tail: tail}
	}
	left, right := split(head, tail)
	return merge(mergeSort(left.head, left.tail), mergeSort(right.head, right.tail))
}

// Sort reorders the elements in place into ascending order by bytewise
// string comparison. The sort is stable. No-op below two elements.
func (q *Queue) Sort() {
	if q.Size() <= 1 {
		return
	}
	sorted := mergeSort(q.head, q.tail)
	q.head = sorted.head
	q.tail = sorted.tail
}
