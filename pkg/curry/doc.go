// Package curry turns fixed-arity functions into chains of single-argument
// calls for point-free composition. Curry2 through Curry7 cover two to
// seven parameters; the original function runs once, after the last
// argument arrives, with all arguments in their original positional order.
//
// There is no runtime arity checking: the chain's shape is its type, so a
// wrong number of arguments does not compile.
package curry
