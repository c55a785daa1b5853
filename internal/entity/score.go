package entity

// WinsToMatch is the number of round wins that ends a match.
const WinsToMatch = 3

type MatchScore struct {
	PlayerWins int `json:"player_wins"`
	AIWins     int `json:"ai_wins"`
}

// Record counts a finished round. Draws and unfinished rounds leave the score as is.
func (that *MatchScore) Record(result RoundResult) {
	switch result {
	case RoundPlayerWin:
		that.PlayerWins++
	case RoundAIWin:
		that.AIWins++
	case RoundDraw, RoundInProgress:
	}
}

func (that MatchScore) IsDecided() bool {
	return that.PlayerWins >= WinsToMatch || that.AIWins >= WinsToMatch
}

// Winner awards the match to the player only on a strictly greater score,
// so an equal score goes to the AI.
func (that MatchScore) Winner() Side {
	if that.PlayerWins > that.AIWins {
		return SidePlayer
	}
	return SideAI
}

type MatchOutcome struct {
	ID     string     `json:"id"`
	Score  MatchScore `json:"score"`
	Winner Side       `json:"winner"`
	Rounds int        `json:"rounds"`
}
