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

package types

// Direction is a square-index delta for stepping across the board.
type Direction int8

const (
	North     Direction = 8
	South     Direction = -North
	East      Direction = 1
	West      Direction = -East
	Northeast Direction = North + East
	Southeast Direction = South + East
	Northwest Direction = North + West
	Southwest Direction = South + West
)

// Directions lists all eight ray directions, orthogonal first then diagonal.
var Directions = [8]Direction{North, East, South, West, Northeast, Southeast, Southwest, Northwest}

// Orthogonal lists the four rook-like directions.
var Orthogonal = [4]Direction{North, East, South, West}

// Diagonal lists the four bishop-like directions.
var Diagonal = [4]Direction{Northeast, Southeast, Southwest, Northwest}
