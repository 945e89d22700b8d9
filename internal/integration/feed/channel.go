// Package feed implements the change feed that drives live collection updates.
package feed

import (
	"github.com/finance-pal/backend/internal/domain/entity"
)

// channelPrefix namespaces feed channels in a shared Redis instance.
const channelPrefix = "finance-pal"

// channelName returns the channel carrying changes of one collection in a scope.
func channelName(scopeKey string, collection entity.Collection) string {
	return channelPrefix + ":" + scopeKey + ":" + string(collection)
}
