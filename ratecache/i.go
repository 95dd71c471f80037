package ratecache

// EmissionFunc is the raw, pure emission rate of category k at energy e.
type EmissionFunc[K comparable] func(k K, e float64) (float64, error)

// Attributes supplies the kinematic threshold of a category.
type Attributes[K comparable] interface {
	RestEnergy(k K) float64
}
