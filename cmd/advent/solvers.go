package main

import "github.com/JaviLunes/AdventCodeTools/solve"

// solvers holds the known day solvers. A yearly project binds its days
// here, e.g.:
//
//	func init() {
//		cobra.CheckErr(solvers.Register(1, day_1.Solve))
//	}
var solvers = solve.NewRegistry()
