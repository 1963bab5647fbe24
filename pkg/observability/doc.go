/*
Package observability binds blend node lifecycle events to Prometheus metrics and structured logs.

Both Metrics.Hooks and LogHooks return domain.LifecycleHooks, so they can be chained with
domain.ChainHooks and handed to a node through inertia.WithLifecycleHooks.
*/
package observability
