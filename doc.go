// Command philo simulates the dining philosophers problem.
//
// Philosophers sit around a table with one fork between each pair of
// neighbours. A philosopher needs both of its forks to eat, and starves if it
// does not start a meal within time_to_die of the previous one.
//
//	philo 5 800 200 200 7
//
// The fork protocol can also be exported for external checkers with the
// migo, cfsms and dot subcommands.
package main
