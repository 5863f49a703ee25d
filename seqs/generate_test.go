package seqs_test

import (
	"errors"
	"math"
	"numkit/seqs"
	"slices"
	"testing"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name              string
		start, end, step int
		want              []int
	}{
		{"Ascending", 0, 5, 1, []int{0, 1, 2, 3, 4}},
		{"Descending", 5, 0, -1, []int{5, 4, 3, 2, 1}},
		{"StepTwo", 0, 7, 2, []int{0, 2, 4, 6}},
		{"NegativeStepThree", 10, -1, -3, []int{10, 7, 4, 1}},
		{"EmptyEqualBounds", 5, 5, 1, nil},
		{"EmptyWrongDirection", 0, 5, -1, nil},
		{"EmptyWrongDirectionPositive", 5, 0, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := seqs.Range(tt.start, tt.end, tt.step)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			got := slices.Collect(seq)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Range(%d, %d, %d) = %v, want %v", tt.start, tt.end, tt.step, got, tt.want)
			}
		})
	}
}

func TestRangeZeroStep(t *testing.T) {
	seq, err := seqs.Range(1, 10, 0)
	if !errors.Is(err, seqs.ErrInvalidArgument) {
		t.Fatalf("Range with zero step error = %v, want %v", err, seqs.ErrInvalidArgument)
	}
	if seq != nil {
		t.Error("Range with zero step should not return a sequence")
	}
}

func TestRangeRestartable(t *testing.T) {
	seq, err := seqs.Range(0, 3, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) || !slices.Equal(first, []int{0, 1, 2}) {
		t.Errorf("passes differ: first %v, second %v", first, second)
	}
}

func TestRangeEarlyStop(t *testing.T) {
	seq, _ := seqs.Range(0, 100, 1)
	var got []int
	for v := range seq {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int{0, 1, 2}) {
		t.Errorf("early stop got %v", got)
	}
}

func TestRangeNoOverflow(t *testing.T) {
	t.Run("Up", func(t *testing.T) {
		seq, _ := seqs.Range(math.MaxInt-2, math.MaxInt, 5)
		got := slices.Collect(seq)
		if !slices.Equal(got, []int{math.MaxInt - 2}) {
			t.Errorf("got %v", got)
		}
	})

	t.Run("Down", func(t *testing.T) {
		seq, _ := seqs.Range(math.MinInt+2, math.MinInt, -5)
		got := slices.Collect(seq)
		if !slices.Equal(got, []int{math.MinInt + 2}) {
			t.Errorf("got %v", got)
		}
	})
}

func TestXRange(t *testing.T) {
	tests := []struct {
		name   string
		bounds []int
		want   []int
	}{
		{"EndOnly", []int{4}, []int{0, 1, 2, 3}},
		{"StartEnd", []int{2, 5}, []int{2, 3, 4}},
		{"StartEndStep", []int{5, 0, -2}, []int{5, 3, 1}},
		{"NegativeEndOnly", []int{-3}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := seqs.XRange(tt.bounds...)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := slices.Collect(seq); !slices.Equal(got, tt.want) {
				t.Errorf("XRange(%v) = %v, want %v", tt.bounds, got, tt.want)
			}
		})
	}

	t.Run("BadArity", func(t *testing.T) {
		for _, bounds := range [][]int{nil, {1, 2, 3, 4}} {
			if _, err := seqs.XRange(bounds...); !errors.Is(err, seqs.ErrInvalidArgument) {
				t.Errorf("XRange(%v) error = %v, want %v", bounds, err, seqs.ErrInvalidArgument)
			}
		}
	})
}

func TestCollect(t *testing.T) {
	got, err := seqs.Collect(0, 5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("Collect(0, 5) = %v", got)
	}

	empty, err := seqs.Collect(5, 5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("Collect(5, 5) = %#v, want empty non-nil slice", empty)
	}

	if _, err := seqs.Collect(0, 5, 0); !errors.Is(err, seqs.ErrInvalidArgument) {
		t.Errorf("Collect with zero step error = %v", err)
	}
}
