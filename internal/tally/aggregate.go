// Package tally holds the pure computations behind schedule coordination:
// aggregating availability submissions into candidate sets and resolving
// majority votes with a deterministic tie-break.
package tally

import "sort"

// Submission is one participant's availability answer. Locations are
// identified by their composite key (see model.Location.Key), so two
// selections only count as the same place when title and address both match.
type Submission struct {
	Dates     []string
	Locations []string
}

// Options are the candidate sets derived from a set of submissions.
// Common sets contain values picked by every participant; plurality sets
// contain values picked by at least two. Common takes precedence when
// presenting candidates, plurality is the fallback when nothing is unanimous.
type Options struct {
	CommonDates        []string
	CommonLocations    []string
	PluralityDates     []string
	PluralityLocations []string
}

// Aggregate computes the candidate sets for a schedule. It is a pure function
// of the submission set: order of submissions does not matter and zero
// submissions yield empty sets.
func Aggregate(submissions []Submission) Options {
	dates := make(map[string]int)
	locations := make(map[string]int)

	for _, submission := range submissions {
		for _, date := range uniques(submission.Dates) {
			dates[date]++
		}
		for _, location := range uniques(submission.Locations) {
			locations[location]++
		}
	}

	total := len(submissions)
	return Options{
		CommonDates:        keysWithCount(dates, func(count int) bool { return count == total }),
		CommonLocations:    keysWithCount(locations, func(count int) bool { return count == total }),
		PluralityDates:     keysWithCount(dates, func(count int) bool { return count > 1 }),
		PluralityLocations: keysWithCount(locations, func(count int) bool { return count > 1 }),
	}
}

// BestDates returns the dates to present to voters: the unanimous set if
// there is one, the plurality set otherwise.
func (o Options) BestDates() []string {
	if len(o.CommonDates) > 0 {
		return o.CommonDates
	}
	return o.PluralityDates
}

// BestLocations returns the location candidates, unanimous first.
func (o Options) BestLocations() []string {
	if len(o.CommonLocations) > 0 {
		return o.CommonLocations
	}
	return o.PluralityLocations
}

// Unanimous tells whether every participant agreed on at least one date and
// one location, in which case no coordination vote is needed.
func (o Options) Unanimous() bool {
	return len(o.CommonDates) > 0 && len(o.CommonLocations) > 0
}

func keysWithCount(counts map[string]int, matches func(int) bool) []string {
	keys := []string{}
	for key, count := range counts {
		if matches(count) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// A participant sending the same date twice must still count once towards
// unanimity, otherwise a duplicate would fake a second vote.
func uniques(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return result
}
