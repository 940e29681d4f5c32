package quiz

import (
	"math/rand/v2"
	"time"
)

const (
	// missedBias is the probability that a previously-missed question is
	// chosen when any exist.
	missedBias = 0.8

	// resurfaceRollMax is the upper bound of the resurface die (1..10).
	resurfaceRollMax = 10

	// resurfaceThreshold is the highest roll that resurfaces a mastered
	// question (3 of 10, a nominal 30% chance).
	resurfaceThreshold = 3
)

// Pool is the tri-category partition of a question bank against a user's
// attempt record.
type Pool struct {
	// New holds questions absent from the record.
	New []Question

	// Missed holds questions whose last terminal attempt was incorrect.
	Missed []Question

	// Mastered holds questions whose last terminal attempt was correct.
	Mastered []Question
}

// Empty reports whether all three categories are empty.
func (p Pool) Empty() bool {
	return len(p.New) == 0 && len(p.Missed) == 0 && len(p.Mastered) == 0
}

// Partition splits the bank into new / missed / mastered sets by consulting
// the attempt record. Invalid questions are dropped here, so the selector
// never serves them. Record entries for question IDs not in the bank are
// ignored.
func Partition(bank []Question, record AttemptRecord) Pool {
	var p Pool
	for _, q := range bank {
		if !q.Valid() {
			continue
		}
		correct, attempted := record[q.ID]
		switch {
		case !attempted:
			p.New = append(p.New, q)
		case correct:
			p.Mastered = append(p.Mastered, q)
		default:
			p.Missed = append(p.Missed, q)
		}
	}
	return p
}

// Selector picks the next question to present, skewing toward missed and
// unseen material while occasionally resurfacing mastered questions.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a Selector seeded from the wall clock.
func NewSelector() *Selector {
	now := uint64(time.Now().UnixNano())
	return NewSelectorWithRand(rand.New(rand.NewPCG(now, now>>32)))
}

// NewSelectorWithRand creates a Selector with an explicit random source.
// Tests use this with a fixed seed to pin down the draw sequence.
func NewSelectorWithRand(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Next chooses the next question and its classification, or ok=false when
// the subject has no question left to serve.
//
// The policy is a short-circuiting ladder of two independent draws:
//
//  1. If any missed questions exist, a Bernoulli(0.8) draw decides whether
//     to retry one of them (uniformly chosen).
//  2. Otherwise a separate uniform 1..10 die is rolled; on 1-3, and if any
//     mastered questions exist, one is resurfaced (uniformly chosen).
//  3. Otherwise a new question is served if any remain.
//  4. Otherwise the subject is exhausted for this call.
//
// The two draws are deliberately separate rather than a single weighted
// pick: missed questions take precedence over the resurface die, and each
// call re-rolls both independently. Note that step 4 can report exhaustion
// while missed or mastered questions still exist, whenever their draws
// fail and no new question remains; the next call re-rolls.
func (s *Selector) Next(bank []Question, record AttemptRecord) (Question, Classification, bool) {
	pool := Partition(bank, record)

	if len(pool.Missed) > 0 && s.rng.Float64() < missedBias {
		return s.pick(pool.Missed), ClassRetry, true
	}

	if roll := s.rng.IntN(resurfaceRollMax) + 1; roll <= resurfaceThreshold && len(pool.Mastered) > 0 {
		return s.pick(pool.Mastered), ClassResurfaced, true
	}

	if len(pool.New) > 0 {
		return s.pick(pool.New), ClassFresh, true
	}

	return Question{}, "", false
}

func (s *Selector) pick(qs []Question) Question {
	return qs[s.rng.IntN(len(qs))]
}
