// Implements the WaitQueue, which holds visitors waiting for a counter,
// and the QueueManager that owns the electronic and offline queues.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue represents a FIFO queue of visitors waiting to be served.
type WaitQueue struct {
	queue []Visitor
}

// Enqueue adds a visitor to the back of the wait queue.
func (wq *WaitQueue) Enqueue(v Visitor) {
	wq.queue = append(wq.queue, v)
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range wq.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of visitors in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Peek returns the visitor at the front of the queue without removing it.
// ok is false if the queue is empty.
func (wq *WaitQueue) Peek() (v Visitor, ok bool) {
	if len(wq.queue) == 0 {
		return Visitor{}, false
	}
	return wq.queue[0], true
}

// Dequeue removes the visitor at the front of the queue.
// ok is false if the queue is empty.
func (wq *WaitQueue) Dequeue() (v Visitor, ok bool) {
	if len(wq.queue) == 0 {
		return Visitor{}, false
	}
	v = wq.queue[0]
	wq.queue[0] = Visitor{}
	wq.queue = wq.queue[1:]
	return v, true
}

// QueueManager owns the two channel queues and decides who is served next.
// The electronic queue always has absolute priority over the offline queue.
type QueueManager struct {
	electronic WaitQueue
	offline    WaitQueue

	enqueued int
	dequeued int
}

// NewQueueManager returns a QueueManager with both queues empty.
func NewQueueManager() *QueueManager {
	return &QueueManager{}
}

// Enqueue appends v to the tail of the queue for its channel.
func (qm *QueueManager) Enqueue(v Visitor) {
	if v.ServiceDuration <= 0 {
		panic(fmt.Sprintf("Enqueue: visitor %v has non-positive service duration", v))
	}
	switch v.Channel {
	case Electronic:
		qm.electronic.Enqueue(v)
	case Offline:
		qm.offline.Enqueue(v)
	default:
		panic(fmt.Sprintf("Enqueue: visitor %v has unknown channel", v))
	}
	qm.enqueued++
}

// DequeueForAssignment pops the electronic head if there is one, otherwise
// the offline head. ok is false when both queues are empty.
func (qm *QueueManager) DequeueForAssignment() (v Visitor, ok bool) {
	if v, ok = qm.electronic.Dequeue(); !ok {
		v, ok = qm.offline.Dequeue()
	}
	if ok {
		qm.dequeued++
	}
	return v, ok
}

// Sizes returns the current lengths of the electronic and offline queues.
func (qm *QueueManager) Sizes() (electronic, offline int) {
	return qm.electronic.Len(), qm.offline.Len()
}

// Len returns the total number of waiting visitors.
func (qm *QueueManager) Len() int {
	return qm.electronic.Len() + qm.offline.Len()
}

// Enqueued returns how many visitors have ever been enqueued.
func (qm *QueueManager) Enqueued() int { return qm.enqueued }

// Dequeued returns how many visitors have ever been handed out for assignment.
func (qm *QueueManager) Dequeued() int { return qm.dequeued }

// Queue returns the queue for ch, for read-only inspection.
func (qm *QueueManager) Queue(ch Channel) *WaitQueue {
	if ch == Electronic {
		return &qm.electronic
	}
	return &qm.offline
}

func (qm *QueueManager) String() string {
	return fmt.Sprintf("electronic=%s offline=%s", qm.electronic.String(), qm.offline.String())
}
