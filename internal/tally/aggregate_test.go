package tally_test

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/yaksok/yaksok/internal/tally"
)

func TestAggregate(t *testing.T) {
	for _, tcase := range aggregateCases() {
		t.Run(tcase.name, func(t *testing.T) {
			options := tally.Aggregate(tcase.submissions)

			if !reflect.DeepEqual(options.CommonDates, tcase.expectedCommonDates) {
				t.Errorf("expected common dates %v, got %v", tcase.expectedCommonDates, options.CommonDates)
			}
			if !reflect.DeepEqual(options.PluralityDates, tcase.expectedPluralityDates) {
				t.Errorf("expected plurality dates %v, got %v", tcase.expectedPluralityDates, options.PluralityDates)
			}
			if !reflect.DeepEqual(options.CommonLocations, tcase.expectedCommonLocations) {
				t.Errorf("expected common locations %v, got %v", tcase.expectedCommonLocations, options.CommonLocations)
			}
			if !reflect.DeepEqual(options.PluralityLocations, tcase.expectedPluralityLocations) {
				t.Errorf("expected plurality locations %v, got %v", tcase.expectedPluralityLocations, options.PluralityLocations)
			}
		})
	}
}

func TestAggregateOrderIndependence(t *testing.T) {
	submissions := []tally.Submission{
		{Dates: []string{"2025-03-01", "2025-03-02"}, Locations: []string{"강남역:서울 강남대로"}},
		{Dates: []string{"2025-03-01"}, Locations: []string{"강남역:서울 강남대로", "홍대입구역:서울 양화로"}},
		{Dates: []string{"2025-03-01", "2025-03-03"}, Locations: []string{"홍대입구역:서울 양화로"}},
	}

	expected := tally.Aggregate(submissions)
	for i := 0; i < 10; i++ {
		shuffled := make([]tally.Submission, len(submissions))
		copy(shuffled, submissions)
		rand.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		if got := tally.Aggregate(shuffled); !reflect.DeepEqual(got, expected) {
			t.Fatalf("aggregation depends on submission order: expected %v, got %v", expected, got)
		}
	}
}

func TestBestOptionsFallBackToPlurality(t *testing.T) {
	submissions := []tally.Submission{
		{Dates: []string{"2025-03-01", "2025-03-02"}},
		{Dates: []string{"2025-03-02", "2025-03-03"}},
		{Dates: []string{"2025-03-03", "2025-03-01"}},
	}

	options := tally.Aggregate(submissions)
	if len(options.CommonDates) != 0 {
		t.Fatalf("expected no unanimous dates, got %v", options.CommonDates)
	}

	expected := []string{"2025-03-01", "2025-03-02", "2025-03-03"}
	if !reflect.DeepEqual(options.BestDates(), expected) {
		t.Errorf("expected fallback dates %v, got %v", expected, options.BestDates())
	}
	if options.Unanimous() {
		t.Error("expected options not to be unanimous")
	}
}

func TestDuplicateEntriesCountOnce(t *testing.T) {
	submissions := []tally.Submission{
		{Dates: []string{"2025-03-01", "2025-03-01"}},
		{Dates: []string{"2025-03-02"}},
	}

	options := tally.Aggregate(submissions)
	if len(options.PluralityDates) != 0 {
		t.Errorf("a duplicated date within one submission must not reach the plurality set, got %v", options.PluralityDates)
	}
}

type aggregateCase struct {
	name                       string
	submissions                []tally.Submission
	expectedCommonDates        []string
	expectedPluralityDates     []string
	expectedCommonLocations    []string
	expectedPluralityLocations []string
}

func aggregateCases() []aggregateCase {
	return []aggregateCase{
		{
			name:                       "no submissions yield empty sets",
			submissions:                []tally.Submission{},
			expectedCommonDates:        []string{},
			expectedPluralityDates:     []string{},
			expectedCommonLocations:    []string{},
			expectedPluralityLocations: []string{},
		},
		{
			name: "one date picked by everyone",
			submissions: []tally.Submission{
				{Dates: []string{"2025-03-01", "2025-03-02"}},
				{Dates: []string{"2025-03-01"}},
				{Dates: []string{"2025-03-01"}},
			},
			expectedCommonDates:        []string{"2025-03-01"},
			expectedPluralityDates:     []string{"2025-03-01"},
			expectedCommonLocations:    []string{},
			expectedPluralityLocations: []string{},
		},
		{
			name: "no overlap at all",
			submissions: []tally.Submission{
				{Dates: []string{"2025-03-01"}},
				{Dates: []string{"2025-03-02"}},
				{Dates: []string{"2025-03-03"}},
			},
			expectedCommonDates:        []string{},
			expectedPluralityDates:     []string{},
			expectedCommonLocations:    []string{},
			expectedPluralityLocations: []string{},
		},
		{
			name: "locations with matching title but different address stay apart",
			submissions: []tally.Submission{
				{Locations: []string{"스타벅스:서울 강남대로 390", "강남역:서울 강남대로"}},
				{Locations: []string{"스타벅스:서울 양화로 153", "강남역:서울 강남대로"}},
			},
			expectedCommonDates:        []string{},
			expectedPluralityDates:     []string{},
			expectedCommonLocations:    []string{"강남역:서울 강남대로"},
			expectedPluralityLocations: []string{"강남역:서울 강남대로"},
		},
		{
			name: "plurality needs at least two picks",
			submissions: []tally.Submission{
				{Dates: []string{"2025-03-01", "2025-03-02"}},
				{Dates: []string{"2025-03-02", "2025-03-03"}},
				{Dates: []string{"2025-03-04"}},
			},
			expectedCommonDates:        []string{},
			expectedPluralityDates:     []string{"2025-03-02"},
			expectedCommonLocations:    []string{},
			expectedPluralityLocations: []string{},
		},
	}
}
