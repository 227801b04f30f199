// Copyright © 2018 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package diverseseq

// Progress is the narrow interface the selection and distance engines
// report through. It is satisfied both by a real terminal progress bar in
// the CLI host and by NoopProgress in library/test use, so core code never
// has to special-case "is anyone watching".
type Progress interface {
	// AddTask registers a unit of work named by label with a total number
	// of steps (negative when the total is not known in advance), returning
	// a task id used in subsequent Update calls.
	AddTask(label string, total int) int
	// Update advances the task by delta steps.
	Update(taskID int, delta int)
}

// NoopProgress discards every call. It is the default Progress for library
// callers that don't want terminal output.
type NoopProgress struct{}

func (NoopProgress) AddTask(label string, total int) int { return 0 }
func (NoopProgress) Update(taskID int, delta int)         {}
