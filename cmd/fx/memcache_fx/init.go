package memcache_fx

import (
	"go.uber.org/fx"
	mem "substore/pkg/memcache"
)

var Module = fx.Provide(providePendingSubscriptionStore)

func providePendingSubscriptionStore() mem.PendingSubscriptionStore {
	return mem.NewPendingSubscriptions()
}
