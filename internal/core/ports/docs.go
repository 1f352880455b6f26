// Package ports declares the contracts the application layer depends on: the stores
// behind the unit of work, the postal-code resolver, the realtime publisher and the
// credential services. Adapters under internal/adapters implement them.
package ports
