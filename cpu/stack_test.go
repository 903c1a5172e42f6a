package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())
	assert.False(s.Full())

	err := s.Push(0x1234)
	assert.NoError(err)
	assert.False(s.Empty())
	assert.Equal(1, s.Len())
	assert.Equal(uint16(0x1234), s.Data()[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x1234)
	s.Push(0xABCD)

	val, err := s.Pop()
	assert.NoError(err)
	assert.Equal(uint16(0xABCD), val)
	assert.Equal(1, s.Len())

	val, err = s.Pop()
	assert.NoError(err)
	assert.Equal(uint16(0x1234), val)
	assert.Equal(0, s.Len())
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	val, err := s.Pop()
	assert.ErrorIs(err, ErrStackUnderflow)
	assert.Equal(uint16(0), val)
	assert.Equal(0, s.Len())
}

func TestStack_Pop_Clears(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x1111)
	s.Push(0x2222)
	s.Pop()

	assert.Equal([STACK_LIMIT]uint16{0x1111}, s.Data())
}

func TestStack_Top(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	_, err := s.Top()
	assert.ErrorIs(err, ErrStackUnderflow)

	s.Push(0x1234)
	s.Push(0xABCD)

	val, err := s.Top()
	assert.NoError(err)
	assert.Equal(uint16(0xABCD), val)
	assert.Equal(2, s.Len())
}

func TestStack_Nos(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x1234)

	_, err := s.Nos()
	assert.ErrorIs(err, ErrStackUnderflow)

	s.Push(0xABCD)
	val, err := s.Nos()
	assert.NoError(err)
	assert.Equal(uint16(0x1234), val)
	assert.Equal(2, s.Len())
}

func TestStack_Full(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	for i := range STACK_LIMIT {
		assert.False(s.Full())
		assert.NoError(s.Push(uint16(i)))
	}

	assert.True(s.Full())
	assert.Equal(STACK_LIMIT, s.Len())

	err := s.Push(0xffff)
	assert.ErrorIs(err, ErrStackOverflow)
	assert.Equal(STACK_LIMIT, s.Len())
	assert.Equal(uint16(STACK_LIMIT-1), s.Data()[STACK_LIMIT-1])
}

func TestStack_Lifo(t *testing.T) {
	assert := assert.New(t)

	for depth := range STACK_LIMIT + 1 {
		s := &Stack{}
		for n := range depth {
			assert.NoError(s.Push(uint16(n*0x101 + 7)))
		}
		for n := depth - 1; n >= 0; n-- {
			val, err := s.Pop()
			assert.NoError(err)
			assert.Equal(uint16(n*0x101+7), val, "depth %d", depth)
		}
		assert.True(s.Empty())
	}
}

func TestStack_Need(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		depth int
		down  int
		up    int
		err   error
	}){
		{"empty_none", 0, 0, 0, nil},
		{"empty_pop", 0, 1, 0, ErrStackUnderflow},
		{"one_nos", 1, 2, 0, ErrStackUnderflow},
		{"two_nos", 2, 2, 1, nil},
		{"full_dup", STACK_LIMIT, 1, 1, ErrStackOverflow},
		{"full_pop", STACK_LIMIT, 1, 0, nil},
		{"nearly_full_push", STACK_LIMIT - 1, 0, 1, nil},
	}

	for _, entry := range table {
		s := &Stack{}
		for n := range entry.depth {
			s.push(uint16(n))
		}
		err := s.need(entry.down, entry.up)
		if entry.err == nil {
			assert.NoError(err, entry.name)
		} else {
			assert.ErrorIs(err, entry.err, entry.name)
		}
	}
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x1234)
	s.Push(0xABCD)
	assert.Equal(2, s.Len())

	s.Reset()
	assert.True(s.Empty())
	assert.Equal([STACK_LIMIT]uint16{}, s.Data())
}
