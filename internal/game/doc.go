// Package game implements the betting rules of no-limit Texas Hold'em.
//
// The engine is a set of pure transitions over State values: every call
// takes a state and returns a new one, leaving its input untouched. A
// rejected action returns an error and no state, so the caller's previous
// state stays authoritative.
//
// # Basic Usage
//
//	e := game.NewEngine(game.WithRNG(randutil.New(42)))
//	s, err := e.StartHand(e.Initialize())
//	if err != nil {
//	    return err
//	}
//	for s.Phase != game.Showdown {
//	    seat := s.CurrentPlayer
//	    s, err = e.Apply(s, game.Action{Type: game.ActionCall, Seat: seat})
//	    if err != nil {
//	        return err
//	    }
//	}
//	fmt.Println(s.Showdown.Winners)
//
// # Turn Order
//
// Exactly one seat has status Acting while a betting round is open. Apply
// closes the round itself once bets are equalised, deals the next street,
// and resolves the pot at showdown. When every remaining player is all-in
// the board is run out without further prompts.
//
// # Chips
//
// Amounts are integer Chips where one chip is half the small blind. The
// default table plays 2/4 blinds with 800 chip (200 big blind) stacks.
package game
