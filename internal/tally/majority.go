package tally

import "sort"

// Result is the outcome of a majority count. Winner is always set when there
// is at least one ballot; when several candidates share the highest count the
// lexicographically smallest one wins and Tied lists all of them so callers
// can surface the tie instead of pretending there was a clear majority.
type Result struct {
	Winner string
	Tied   []string
}

// Tie reports whether the winner only won by the tie-break rule.
func (r Result) Tie() bool {
	return len(r.Tied) > 1
}

// Majority counts ballots and returns the most voted value. With no ballots
// it returns a zero Result. The same input always produces the same winner.
func Majority(ballots []string) Result {
	if len(ballots) == 0 {
		return Result{}
	}

	counts := make(map[string]int)
	for _, ballot := range ballots {
		counts[ballot]++
	}

	max := 0
	for _, count := range counts {
		if count > max {
			max = count
		}
	}

	tied := []string{}
	for value, count := range counts {
		if count == max {
			tied = append(tied, value)
		}
	}
	sort.Strings(tied)

	return Result{
		Winner: tied[0],
		Tied:   tied,
	}
}

// Complete reports whether every expected participant has contributed,
// counting each voter once no matter how many records they have.
func Complete(voterIDs []uint, participantIDs []uint) bool {
	voted := make(map[uint]struct{}, len(voterIDs))
	for _, id := range voterIDs {
		voted[id] = struct{}{}
	}
	for _, id := range participantIDs {
		if _, ok := voted[id]; !ok {
			return false
		}
	}
	return true
}

// Participants dedupes the participant list and makes sure the organizer is
// part of it; the creator always counts even when not listed explicitly.
func Participants(participantIDs []uint, creatorID uint) []uint {
	seen := make(map[uint]struct{}, len(participantIDs)+1)
	all := make([]uint, 0, len(participantIDs)+1)
	for _, id := range append([]uint{creatorID}, participantIDs...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		all = append(all, id)
	}
	return all
}
