package session

// Phase is a state of the turn loop
type Phase int

const (
	// PhaseSetup shows the freshly dealt, face-down table
	PhaseSetup Phase = iota
	// PhaseRoundActive reveals and redraws every hand (classic mode)
	PhaseRoundActive
	// PhasePlayerTurns lets each player hit or stand (play mode)
	PhasePlayerTurns
	// PhaseDealerTurn plays the dealer's hand under the house rule (play mode)
	PhaseDealerTurn
	// PhaseRoundOver shows the settled results (play mode)
	PhaseRoundOver
	// PhaseFinished is terminal
	PhaseFinished
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseRoundActive:
		return "round-active"
	case PhasePlayerTurns:
		return "player-turns"
	case PhaseDealerTurn:
		return "dealer-turn"
	case PhaseRoundOver:
		return "round-over"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Mode selects how a round progresses after setup
type Mode string

const (
	// Classic reveals every hand and redraws until the user quits
	Classic Mode = "classic"
	// Play runs hit/stand turns, the dealer's turn and settlement
	Play Mode = "play"
)
