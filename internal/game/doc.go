// Package game implements the twentyone engine: players, the turn loop and
// winner determination.
//
// # Basic Usage
//
// Build a game from player names. Names starting with "com" are automated,
// everything else is interactive and asks a DecisionProvider:
//
//	rng := randutil.New(42)
//	g, err := game.NewGameFromNames(rng, []string{"p1", "com1"},
//	    game.WithInteractive(prompter, prompter))
//	if err != nil {
//	    return err
//	}
//	result, err := g.Run(ctx)
//
// # Deterministic Testing
//
// Every card comes from the cards.Source handed to the game, so tests can
// stack the deal:
//
//	src := cards.NewStackedSource(5, 4, 6, 6, 7, 3)
//	g, _ := game.NewGameFromNames(src, []string{"com1", "com2"})
//
// # Turn Loop
//
// Run publishes a TurnStartEvent with every player's status, stops once all
// players are finished, and otherwise calls Step. Step visits players in
// seat order; a finished player is skipped but stays in the game for
// scoring. A player who declines to draw stands; a player whose total goes
// over BustThreshold busts. Both are terminal.
package game
