package game

// Position names a seat relative to the dealer button
type Position uint8

const (
	BTN Position = iota
	SB
	BB
	UTG
	UTG1
	MP
	HJ
	CO
)

func (p Position) String() string {
	switch p {
	case BTN:
		return "BTN"
	case SB:
		return "SB"
	case BB:
		return "BB"
	case UTG:
		return "UTG"
	case UTG1:
		return "UTG+1"
	case MP:
		return "MP"
	case HJ:
		return "HJ"
	case CO:
		return "CO"
	default:
		return "?"
	}
}

// MaxSeats is the largest supported table
const MaxSeats = 8

// MinSeats is the smallest supported table
const MinSeats = 2

// middle positions between the big blind and the button, in full-ring order
var middlePositions = [...]Position{UTG, UTG1, MP, HJ, CO}

// PositionName maps a clockwise offset from the button to a position name.
// Heads-up the button also posts the small blind, so the seats are BTN and BB.
// Short-handed tables keep UTG and drop the earliest of the remaining middle
// positions first, so CO always sits next to the button. Counts outside
// 1..MaxSeats have no positions and report BTN.
func PositionName(offset, playerCount int) Position {
	if playerCount < 1 || playerCount > MaxSeats {
		return BTN
	}
	offset = ((offset % playerCount) + playerCount) % playerCount
	if playerCount == 2 {
		if offset == 0 {
			return BTN
		}
		return BB
	}

	switch offset {
	case 0:
		return BTN
	case 1:
		return SB
	case 2:
		return BB
	case 3:
		return UTG
	}

	middle := playerCount - 3
	tail := middlePositions[len(middlePositions)-(middle-1):]
	return tail[offset-4]
}

// SmallBlindSeat returns the seat that posts the small blind
func SmallBlindSeat(dealer, playerCount int) int {
	if playerCount == 2 {
		return dealer
	}
	return (dealer + 1) % playerCount
}

// BigBlindSeat returns the seat that posts the big blind
func BigBlindSeat(dealer, playerCount int) int {
	return (SmallBlindSeat(dealer, playerCount) + 1) % playerCount
}

// FirstToAct returns the seat that opens betting in the given phase, skipping
// folded and all-in seats. Preflop starts after the big blind, later streets
// start after the button. NoSeat is returned when nobody can act, in which case
// the remaining streets are dealt without betting.
func FirstToAct(phase Phase, dealer int, players []Player) int {
	n := len(players)
	start := (dealer + 1) % n
	if phase == Preflop {
		start = (BigBlindSeat(dealer, n) + 1) % n
	}
	for i := range n {
		seat := (start + i) % n
		if players[seat].CanAct() {
			return seat
		}
	}
	return NoSeat
}

// assignPositions recomputes every seat's position from the button
func assignPositions(players []Player, dealer int) {
	n := len(players)
	for i := range players {
		offset := (i - dealer + n) % n
		players[i].PositionIndex = offset
		players[i].Position = PositionName(offset, n)
	}
}
