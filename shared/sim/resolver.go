package sim

// Resolver advances a body by one tick against the static level geometry:
// it applies gravity, moves the body by its velocity without entering solids,
// and cancels vertical velocity on a floor or ceiling. It reports whether the
// body is standing on something afterwards.
type Resolver interface {
	Resolve(body *Body) (grounded bool)
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(body *Body) bool

func (f ResolverFunc) Resolve(body *Body) bool { return f(body) }
