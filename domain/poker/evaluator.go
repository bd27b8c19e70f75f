package poker

import "sort"

// Classify returns the poker category of cards. Categories are checked from
// strongest to weakest and the first match wins.
//
// Classify works on hands of any size. Flush and straight have no minimum
// card count: a hand whose cards all share a suit is a flush and a hand of
// consecutive distinct values is a straight, whatever its length. With two
// cards this means 10♥ J♥ is a StraightFlush. An empty hand is HighCard.
//
// TwoPair needs exactly two paired ranks; three pairs in a larger hand fall
// back to OnePair.
//
// Ace only counts high (14), so A-2-3-4-5 is not a straight. Hands are not
// compared beyond their category: there is no kicker.
func Classify(cards []Card) HandRank {
	if len(cards) == 0 {
		return HighCard
	}

	rankCounts := make(map[Rank]int)
	for _, c := range cards {
		rankCounts[c.rank]++
	}
	flush := isFlush(cards)
	straight := isStraight(cards)

	var pairs, trips, quads int
	for _, n := range rankCounts {
		switch n {
		case 2:
			pairs++
		case 3:
			trips++
		case 4:
			quads++
		}
	}

	switch {
	case flush && straight && rankCounts[Ace] > 0 && rankCounts[Ten] > 0:
		return RoyalFlush
	case flush && straight:
		return StraightFlush
	case quads > 0:
		return FourOfAKind
	case trips > 0 && pairs > 0:
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case trips > 0:
		return ThreeOfAKind
	case pairs == 2:
		return TwoPair
	case pairs > 0:
		return OnePair
	default:
		return HighCard
	}
}

// isFlush reports whether all cards share a suit.
func isFlush(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.suit != cards[0].suit {
			return false
		}
	}
	return true
}

// isStraight reports whether the card values are all distinct and form a
// run with no gaps.
func isStraight(cards []Card) bool {
	values := make([]int, 0, len(cards))
	seen := make(map[int]bool)
	for _, c := range cards {
		v := c.Value()
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	if len(values) != len(cards) {
		return false
	}
	sort.Ints(values)
	for i := 1; i < len(values); i++ {
		if values[i]-values[i-1] != 1 {
			return false
		}
	}
	return true
}
