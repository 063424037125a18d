/*
Package resilience provides a circuit breaker for the catalog's network
backed store.

# States

- Closed: calls pass through, consecutive failures are counted
- Open: calls fail immediately with ErrCircuitOpen
- Half-Open: after the cooldown one probe call is let through

	Closed --[Threshold failures]-> Open --[Cooldown]-> Half-Open --[success]-> Closed
	                                  ^                     |
	                                  +------[failure]------+

# Usage

	breaker := resilience.New("redis", resilience.Settings{
		Threshold: 5,
		Cooldown:  30 * time.Second,
	})

	courses, err := resilience.Do(breaker, func() ([]catalog.Course, error) {
		return store.Load(ctx)
	})
*/
package resilience
