package observability

type Metrics interface {
	ObserveHTTP(method, route string, status int, durMs float64)
	ObserveQuery(op string, durMs float64, failed bool)
	ObserveDelete(outcome string)
	IncCacheHit()
	IncCacheMiss()
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveHTTP(string, string, int, float64) {}
func (Noop) ObserveQuery(string, float64, bool)       {}
func (Noop) ObserveDelete(string)                     {}
func (Noop) IncCacheHit()                             {}
func (Noop) IncCacheMiss()                            {}
