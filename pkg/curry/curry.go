package curry

// Curry2 turns f into a chain of single-argument calls: the returned
// function takes the first argument and returns a function taking the
// second, which invokes f once with both arguments in their original
// order. Partially-applied links can be kept and reused.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Curry3 curries a three-argument function.
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return f(a, b, c)
			}
		}
	}
}

// Curry4 curries a four-argument function.
func Curry4[A, B, C, D, R any](f func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return func(b B) func(C) func(D) R {
			return func(c C) func(D) R {
				return func(d D) R {
					return f(a, b, c, d)
				}
			}
		}
	}
}

// Curry5 curries a five-argument function.
func Curry5[A, B, C, D, E, R any](f func(A, B, C, D, E) R) func(A) func(B) func(C) func(D) func(E) R {
	return func(a A) func(B) func(C) func(D) func(E) R {
		return func(b B) func(C) func(D) func(E) R {
			return func(c C) func(D) func(E) R {
				return func(d D) func(E) R {
					return func(e E) R {
						return f(a, b, c, d, e)
					}
				}
			}
		}
	}
}

// Curry6 curries a six-argument function.
func Curry6[A, B, C, D, E, F, R any](f func(A, B, C, D, E, F) R) func(A) func(B) func(C) func(D) func(E) func(F) R {
	return func(a A) func(B) func(C) func(D) func(E) func(F) R {
		return func(b B) func(C) func(D) func(E) func(F) R {
			return func(c C) func(D) func(E) func(F) R {
				return func(d D) func(E) func(F) R {
					return func(e E) func(F) R {
						return func(f6 F) R {
							return f(a, b, c, d, e, f6)
						}
					}
				}
			}
		}
	}
}

// Curry7 curries a seven-argument function.
func Curry7[A, B, C, D, E, F, G, R any](f func(A, B, C, D, E, F, G) R) func(A) func(B) func(C) func(D) func(E) func(F) func(G) R {
	return func(a A) func(B) func(C) func(D) func(E) func(F) func(G) R {
		return func(b B) func(C) func(D) func(E) func(F) func(G) R {
			return func(c C) func(D) func(E) func(F) func(G) R {
				return func(d D) func(E) func(F) func(G) R {
					return func(e E) func(F) func(G) R {
						return func(f6 F) func(G) R {
							return func(g G) R {
								return f(a, b, c, d, e, f6, g)
							}
						}
					}
				}
			}
		}
	}
}
