package tally_test

import (
	"reflect"
	"testing"

	"github.com/yaksok/yaksok/internal/tally"
)

func TestMajority(t *testing.T) {
	cases := []struct {
		name           string
		ballots        []string
		expectedWinner string
		expectedTied   []string
	}{
		{
			name:           "clear majority",
			ballots:        []string{"강남역", "강남역", "홍대입구역"},
			expectedWinner: "강남역",
			expectedTied:   []string{"강남역"},
		},
		{
			name:           "two-way tie resolved to smallest key",
			ballots:        []string{"B", "A", "B", "A"},
			expectedWinner: "A",
			expectedTied:   []string{"A", "B"},
		},
		{
			name:           "single ballot",
			ballots:        []string{"2025-03-01"},
			expectedWinner: "2025-03-01",
			expectedTied:   []string{"2025-03-01"},
		},
		{
			name:           "no ballots",
			ballots:        nil,
			expectedWinner: "",
			expectedTied:   nil,
		},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			result := tally.Majority(tcase.ballots)

			if result.Winner != tcase.expectedWinner {
				t.Errorf("expected winner %q, got %q", tcase.expectedWinner, result.Winner)
			}
			if !reflect.DeepEqual(result.Tied, tcase.expectedTied) {
				t.Errorf("expected tied set %v, got %v", tcase.expectedTied, result.Tied)
			}
		})
	}
}

func TestMajorityIsDeterministic(t *testing.T) {
	ballots := []string{"용산역", "강남역", "용산역", "강남역"}

	first := tally.Majority(ballots)
	for i := 0; i < 20; i++ {
		if got := tally.Majority(ballots); got.Winner != first.Winner {
			t.Fatalf("tie resolution changed between runs: %q then %q", first.Winner, got.Winner)
		}
	}
	if !first.Tie() {
		t.Error("expected a tie to be reported")
	}
}

func TestComplete(t *testing.T) {
	cases := []struct {
		name         string
		voters       []uint
		participants []uint
		expected     bool
	}{
		{"everyone voted", []uint{1, 2, 3}, []uint{1, 2, 3}, true},
		{"one missing", []uint{1, 3}, []uint{1, 2, 3}, false},
		{"duplicate votes count once", []uint{1, 1, 2}, []uint{1, 2}, true},
		{"no participants", nil, nil, true},
		{"extra voter does not complete others", []uint{4}, []uint{1}, false},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			if got := tally.Complete(tcase.voters, tcase.participants); got != tcase.expected {
				t.Errorf("expected %t, got %t", tcase.expected, got)
			}
		})
	}
}

func TestParticipantsIncludeOrganizer(t *testing.T) {
	cases := []struct {
		name         string
		participants []uint
		creator      uint
		expected     []uint
	}{
		{"organizer not listed", []uint{2, 3}, 1, []uint{1, 2, 3}},
		{"organizer listed twice", []uint{1, 2}, 1, []uint{1, 2}},
		{"only organizer", nil, 7, []uint{7}},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			if got := tally.Participants(tcase.participants, tcase.creator); !reflect.DeepEqual(got, tcase.expected) {
				t.Errorf("expected %v, got %v", tcase.expected, got)
			}
		})
	}
}
