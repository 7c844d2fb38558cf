// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

// Type number represents every value that can be represented as a number.
type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Max returns the larger value between the numbers a and b.
func Max[T number](a, b T) T {
	if a > b {
		return a
	}

	return b
}

// Min returns the smaller value between the numbers a and b.
func Min[T number](a, b T) T {
	if a < b {
		return a
	}

	return b
}

// Abs returns the absolute value of the number x.
func Abs[T number](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// Clamp clamps the number x to the provided inclusive bounds.
func Clamp[T number](x, low, high T) T {
	return Max(low, Min(high, x))
}

// Lerp linearly interpolates between a and b, where the fraction of b in
// the result is given by x/max.
func Lerp[T number](a, b, x, max T) T {
	return a + (b-a)*x/max
}
