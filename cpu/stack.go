package cpu

const (
	STACK_LIMIT = 16 // Maximum stack depth
)

// Stack is the fixed capacity operand stack.
// The zero value is an empty stack.
type Stack struct {
	data [STACK_LIMIT]uint16
	sp   int
}

// need checks that at least down words are on the stack, and that there
// is room for the stack to grow by up words.
func (s *Stack) need(down, up int) (err error) {
	if s.sp < down {
		return ErrStackUnderflow
	}
	if s.sp+up > STACK_LIMIT {
		return ErrStackOverflow
	}
	return
}

func (s *Stack) push(value uint16) {
	s.data[s.sp] = value
	s.sp++
}

// pop clears the vacated slot so the value cannot be observed again.
func (s *Stack) pop() (value uint16) {
	s.sp--
	value = s.data[s.sp]
	s.data[s.sp] = 0
	return
}

// Push a word onto the stack.
func (s *Stack) Push(value uint16) (err error) {
	err = s.need(0, 1)
	if err != nil {
		return
	}
	s.push(value)
	return
}

// Pop the top word from the stack.
func (s *Stack) Pop() (value uint16, err error) {
	err = s.need(1, 0)
	if err != nil {
		return
	}
	value = s.pop()
	return
}

// Top returns the top word without removing it.
func (s *Stack) Top() (value uint16, err error) {
	err = s.need(1, 0)
	if err != nil {
		return
	}
	value = s.data[s.sp-1]
	return
}

// Nos returns the word next-on-stack, one below the top.
func (s *Stack) Nos() (value uint16, err error) {
	err = s.need(2, 0)
	if err != nil {
		return
	}
	value = s.data[s.sp-2]
	return
}

// Len returns the stack pointer, the number of words on the stack.
func (s *Stack) Len() int {
	return s.sp
}

func (s *Stack) Empty() bool {
	return s.sp == 0
}

func (s *Stack) Full() bool {
	return s.sp == STACK_LIMIT
}

// Data returns a copy of all stack slots, bottom first.
// Slots at or above the stack pointer are zero.
func (s *Stack) Data() [STACK_LIMIT]uint16 {
	return s.data
}

func (s *Stack) Reset() {
	*s = Stack{}
}

// peek returns the word depth below the top, unchecked.
func (s *Stack) peek(depth int) uint16 {
	return s.data[s.sp-1-depth]
}
