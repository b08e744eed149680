package eventbus

import "context"

// NoopEventBus drops every event. Used when no brokers are configured and
// in tests.
type NoopEventBus struct{}

func NewNoopEventBus() *NoopEventBus { return &NoopEventBus{} }

func (*NoopEventBus) Publish(ctx context.Context, topic Topic, event Event) error { return nil }

func (*NoopEventBus) Close() {}
