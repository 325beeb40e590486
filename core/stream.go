// SPDX-License-Identifier: MIT
// Package: baynet/core
//
// stream.go — in-memory ObservationStream over a slice of rows.
//
// Contract:
//   • Next/Reset follow the ObservationStream cursor semantics exactly:
//     end-of-stream is (nil, false), never an error; Reset is repeatable,
//     including after exhaustion.
//   • The backing slice is not copied; callers must not mutate rows while
//     a learning pass is consuming the stream.

package core

// SliceStream is an ObservationStream backed by an in-memory slice. It is
// the stream the tests and small training sets use; larger hosts provide
// their own cursor over whatever storage they have.
type SliceStream struct {
	rows []Observation
	pos  int
}

// NewSliceStream returns a stream positioned at the first row.
func NewSliceStream(rows ...Observation) *SliceStream {
	return &SliceStream{rows: rows}
}

// Next returns the next row and true, or (nil, false) at end-of-stream.
func (s *SliceStream) Next() (Observation, bool) {
	if s.pos >= len(s.rows) {
		return nil, false
	}
	row := s.rows[s.pos]
	s.pos++
	return row, true
}

// Reset rewinds the cursor to the first row.
func (s *SliceStream) Reset() {
	s.pos = 0
}

// Len reports the known row count; always known for a slice.
func (s *SliceStream) Len() (int, bool) {
	return len(s.rows), true
}
