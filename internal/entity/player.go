package entity

// Side is one of the two match participants. The human always plays X, the AI always plays O.
type Side string

const (
	SidePlayer Side = "player"
	SideAI     Side = "ai"
)

func (that Side) Mark() Mark {
	if that == SidePlayer {
		return PlayerX
	}
	return PlayerO
}

// SideOf returns the side that plays mark.
func SideOf(mark Mark) Side {
	if mark == PlayerX {
		return SidePlayer
	}
	return SideAI
}

// RoundWin is the round result of this side completing a line.
func (that Side) RoundWin() RoundResult {
	if that == SidePlayer {
		return RoundPlayerWin
	}
	return RoundAIWin
}
