package derived

import (
	"sort"
	"time"

	"cloud.google.com/go/civil"

	"github.com/finance-pal/backend/internal/domain/entity"
	"github.com/finance-pal/backend/internal/domain/valueobject"
)

// recencyKey holds the sort keys of one transaction.
type recencyKey struct {
	at        civil.DateTime
	valid     bool
	createdAt *time.Time
	position  int
}

func newRecencyKey(txn *entity.Transaction, position int) recencyKey {
	at, err := valueobject.ParseDateTime(txn.Date, txn.Time)
	return recencyKey{
		at:        at,
		valid:     err == nil,
		createdAt: txn.CreatedAt,
		position:  position,
	}
}

// compare orders newest first. The chain is:
//  1. date and time, descending; two unparseable entries are equal here and
//     an unparseable entry sorts after any parseable one
//  2. createdAt, descending; a missing createdAt sorts after a present one
//  3. input position, ascending
func (a recencyKey) compare(b recencyKey) int {
	switch {
	case a.valid && b.valid:
		if a.at.After(b.at) {
			return -1
		}
		if a.at.Before(b.at) {
			return 1
		}
	case a.valid:
		return -1
	case b.valid:
		return 1
	}

	switch {
	case a.createdAt != nil && b.createdAt != nil:
		if a.createdAt.After(*b.createdAt) {
			return -1
		}
		if a.createdAt.Before(*b.createdAt) {
			return 1
		}
	case a.createdAt != nil:
		return -1
	case b.createdAt != nil:
		return 1
	}

	return a.position - b.position
}

// sortByRecency returns a new slice holding txns newest first.
func sortByRecency(txns []*entity.Transaction) []*entity.Transaction {
	keys := make([]recencyKey, len(txns))
	order := make([]int, len(txns))
	for i, txn := range txns {
		keys[i] = newRecencyKey(txn, i)
		order[i] = i
	}

	sort.Slice(order, func(i, j int) bool {
		return keys[order[i]].compare(keys[order[j]]) < 0
	})

	sorted := make([]*entity.Transaction, len(txns))
	for i, idx := range order {
		sorted[i] = txns[idx]
	}
	return sorted
}
