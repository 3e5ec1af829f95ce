//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package config

// evalConfiguration holds the tunable weights of the static evaluator.
// Mobility, pawn structure, and attack-based heuristics are out of scope;
// this carries only material, phase threshold, bishop pair and king safety.
type evalConfiguration struct {
	// Material values, middlegame and endgame, indexed by PieceKind.
	MaterialMid [6]int32
	MaterialEnd [6]int32

	// PhaseThreshold: non-pawn piece count (both kings included) strictly
	// below which endgame parameters apply.
	PhaseThreshold int

	BishopPairBonus int32

	KingSafetyNoMovesBonus   int32
	KingSafetyShieldedBonus  int32
	KingSafetyShieldMaxBits  int
	KingSafetyExposedMalus   int32
}

func init() {
	Settings.Eval.MaterialMid = [6]int32{100, 310, 330, 500, 900, 20000}
	Settings.Eval.MaterialEnd = [6]int32{200, 280, 300, 600, 920, 20000}
	Settings.Eval.PhaseThreshold = 6
	Settings.Eval.BishopPairBonus = 50
	Settings.Eval.KingSafetyNoMovesBonus = 100
	Settings.Eval.KingSafetyShieldedBonus = 100
	Settings.Eval.KingSafetyShieldMaxBits = 2
	Settings.Eval.KingSafetyExposedMalus = -20
}
