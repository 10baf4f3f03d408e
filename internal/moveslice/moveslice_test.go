//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/ckirsch/chesscore/internal/types"
)

func TestPushPopBack(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(NewMove(SqE2, SqE4))
	ms.PushBack(NewMove(SqD2, SqD4))
	assert.Equal(t, 2, ms.Len())
	assert.Equal(t, NewMove(SqD2, SqD4), ms.PopBack())
	assert.Equal(t, 1, ms.Len())
}

func TestPushPopFront(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(NewMove(SqE2, SqE4))
	ms.PushFront(NewMove(SqD2, SqD4))
	assert.Equal(t, NewMove(SqD2, SqD4), ms.Front())
	assert.Equal(t, NewMove(SqD2, SqD4), ms.PopFront())
	assert.Equal(t, NewMove(SqE2, SqE4), ms.Front())
}

func TestAtAndSet(t *testing.T) {
	ms := NewMoveSlice(2)
	ms.PushBack(NewMove(SqE2, SqE4))
	ms.PushBack(NewMove(SqD2, SqD4))
	assert.Equal(t, NewMove(SqE2, SqE4), ms.At(0))
	ms.Set(0, NewMove(SqG1, SqF3))
	assert.Equal(t, NewMove(SqG1, SqF3), ms.At(0))
	assert.Equal(t, NewMove(SqD2, SqD4), ms.Back())
}

func TestFrontBackPanicOnEmpty(t *testing.T) {
	ms := NewMoveSlice(0)
	assert.Panics(t, func() { ms.Front() })
	assert.Panics(t, func() { ms.Back() })
	assert.Panics(t, func() { ms.PopBack() })
	assert.Panics(t, func() { ms.PopFront() })
}

func TestFilterKeepsOnlyMatching(t *testing.T) {
	ms := NewMoveSlice(0)
	ms.PushBack(NewMove(SqE2, SqE4))
	ms.PushBack(NewMove(SqD2, SqD4))
	ms.PushBack(NewMove(SqG1, SqF3))
	ms.Filter(func(i int) bool { return ms.At(i).From() != SqD2 })
	assert.Equal(t, 2, ms.Len())
	assert.False(t, ms.Contains(NewMove(SqD2, SqD4)))
}

func TestFilterCopyLeavesSourceUntouched(t *testing.T) {
	src := NewMoveSlice(0)
	src.PushBack(NewMove(SqE2, SqE4))
	src.PushBack(NewMove(SqD2, SqD4))
	dest := NewMoveSlice(0)
	src.FilterCopy(dest, func(i int) bool { return src.At(i).From() == SqE2 })
	assert.Equal(t, 2, src.Len())
	assert.Equal(t, 1, dest.Len())
	assert.Equal(t, NewMove(SqE2, SqE4), dest.At(0))
}

func TestCloneIsIndependent(t *testing.T) {
	src := NewMoveSlice(0)
	src.PushBack(NewMove(SqE2, SqE4))
	clone := src.Clone()
	clone.PushBack(NewMove(SqD2, SqD4))
	assert.Equal(t, 1, src.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestEquals(t *testing.T) {
	a := NewMoveSlice(0)
	a.PushBack(NewMove(SqE2, SqE4))
	b := NewMoveSlice(0)
	b.PushBack(NewMove(SqE2, SqE4))
	assert.True(t, a.Equals(b))
	b.PushBack(NewMove(SqD2, SqD4))
	assert.False(t, a.Equals(b))
}

func TestClear(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(NewMove(SqE2, SqE4))
	cap := ms.Cap()
	ms.Clear()
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, cap, ms.Cap())
}

func TestString(t *testing.T) {
	ms := NewMoveSlice(0)
	ms.PushBack(NewMove(SqE2, SqE4))
	s := ms.String()
	assert.Contains(t, s, "[1]")
	assert.Contains(t, s, ms.At(0).String())
}
