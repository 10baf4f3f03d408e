/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileAndRankMasks(t *testing.T) {
	assert.True(t, FileA_Bb.Has(SqA1))
	assert.True(t, FileA_Bb.Has(SqA8))
	assert.False(t, FileA_Bb.Has(SqB1))
	assert.Equal(t, 8, FileA_Bb.PopCount())

	assert.True(t, Rank1_Bb.Has(SqA1))
	assert.True(t, Rank1_Bb.Has(SqH1))
	assert.False(t, Rank1_Bb.Has(SqA2))
	assert.Equal(t, 8, Rank1_Bb.PopCount())

	assert.Equal(t, FileA_Bb, FileMaskOf(SqA5))
	assert.Equal(t, Rank1_Bb, RankMaskOf(SqD1))
}

func TestSquareBbAndSquaresBb(t *testing.T) {
	assert.Equal(t, Bitboard(1), SquareBb(SqA1))
	combined := SquaresBb(SqA1, SqH8)
	assert.True(t, combined.Has(SqA1))
	assert.True(t, combined.Has(SqH8))
	assert.Equal(t, 2, combined.PopCount())
}

func TestSetClearToggleHas(t *testing.T) {
	var b Bitboard
	b = b.Set(SqE4)
	assert.True(t, b.Has(SqE4))
	b = b.Toggle(SqE4)
	assert.False(t, b.Has(SqE4))
	b = b.Set(SqE4)
	b = b.Clear(SqE4)
	assert.True(t, b.Empty())
}

func TestLsbAndPopLsb(t *testing.T) {
	b := SquaresBb(SqD4, SqA1, SqH8)
	assert.Equal(t, SqA1, b.Lsb())

	first := b.PopLsb()
	assert.Equal(t, SqA1, first)
	assert.False(t, b.Has(SqA1))
	assert.Equal(t, 2, b.PopCount())

	var empty Bitboard
	assert.Equal(t, SqNone, empty.Lsb())
	assert.Equal(t, SqNone, empty.PopLsb())
}

func TestShiftsRespectFileWrap(t *testing.T) {
	h := SquareBb(SqH4)
	assert.True(t, h.East().Empty(), "shifting a file-H square east must not wrap to file A")

	a := SquareBb(SqA4)
	assert.True(t, a.West().Empty(), "shifting a file-A square west must not wrap to file H")

	assert.Equal(t, SquareBb(SqH5), h.North())
	assert.Equal(t, SquareBb(SqG5), SquareBb(SqH4).Northwest())
}

func TestSquaresReturnsAscendingOrder(t *testing.T) {
	b := SquaresBb(SqH8, SqA1, SqD4)
	assert.Equal(t, []Square{SqA1, SqD4, SqH8}, b.Squares())
}
