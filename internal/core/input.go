package core

// Action represents a semantic input action, abstracted from physical keys
// and raw bytes.
type Action int

const (
	ActionNone      Action = iota
	ActionJump             // w, up, space
	ActionWalkLeft         // a, left
	ActionWalkRight        // d, right
	ActionPause            // p
	ActionRestart          // r - respawn at the level start
	ActionQuit             // q, ctrl+c
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionWalkLeft:
		return "WalkLeft"
	case ActionWalkRight:
		return "WalkRight"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ActionForByte maps a raw input byte to an action.
// Only q, w, a and d are recognized; every other byte maps to ActionNone.
func ActionForByte(b byte) Action {
	switch b {
	case 'q':
		return ActionQuit
	case 'w':
		return ActionJump
	case 'a':
		return ActionWalkLeft
	case 'd':
		return ActionWalkRight
	}
	return ActionNone
}

// InputFrame holds the actions consumed during one simulation tick,
// in the order they were received. The session applies them in that order,
// so two presses of the same walk key toggle the intent on and off again.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// FrameOf creates an input frame holding the given actions.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set appends an action to this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// DefaultQueueSize bounds the number of pending input events.
const DefaultQueueSize = 32

// InputQueue is a bounded FIFO of pending actions.
// Front ends push every recognized input event and pop one per tick.
type InputQueue struct {
	buf  []Action
	head int
	size int
}

// NewInputQueue creates a queue holding at most capacity actions.
func NewInputQueue(capacity int) *InputQueue {
	if capacity <= 0 {
		capacity = DefaultQueueSize
	}
	return &InputQueue{buf: make([]Action, capacity)}
}

// Push enqueues an action. It returns false when the action is ActionNone
// or the queue is full; a full queue drops the newest event.
func (q *InputQueue) Push(a Action) bool {
	if a == ActionNone || q.size == len(q.buf) {
		return false
	}
	q.buf[(q.head+q.size)%len(q.buf)] = a
	q.size++
	return true
}

// Pop dequeues the oldest action. ok is false when the queue is empty.
func (q *InputQueue) Pop() (a Action, ok bool) {
	if q.size == 0 {
		return ActionNone, false
	}
	a = q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return a, true
}

// NextFrame pops at most one action and wraps it in an input frame.
func (q *InputQueue) NextFrame() InputFrame {
	f := NewInputFrame()
	if a, ok := q.Pop(); ok {
		f.Set(a)
	}
	return f
}
