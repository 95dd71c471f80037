package spectrum

// RateSource answers the primary emission rate of a category. *ratecache.Cache
// implements it.
type RateSource[K comparable] interface {
	Query(k K, e float64) (float64, error)
}

// Attributes supplies the kinematic threshold of an emitter.
type Attributes[K comparable] interface {
	RestEnergy(k K) float64
}

type categoryChecker[K comparable] interface {
	Has(k K) bool
}
