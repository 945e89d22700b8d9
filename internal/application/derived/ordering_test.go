package derived

import (
	"testing"
	"time"

	"github.com/finance-pal/backend/internal/domain/entity"
)

func TestSortByRecency(t *testing.T) {
	base := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)

	morning := newTxn("2024-06-10", "08:00", "Groceries", "1")
	evening := newTxn("2024-06-10", "20:15", "Groceries", "1")
	noClock := newTxn("2024-06-10", "", "Groceries", "1")
	older := newTxn("2024-06-01", "23:59", "Groceries", "1")
	isoStamp := newTxn("2024-06-12T09:30:00Z", "", "Groceries", "1")

	createdFirst := withCreatedAt(newTxn("2024-06-05", "10:00", "Groceries", "1"), base)
	createdLater := withCreatedAt(newTxn("2024-06-05", "10:00", "Groceries", "1"), base.Add(time.Hour))
	createdMissing := newTxn("2024-06-05", "10:00", "Groceries", "1")

	badA := newTxn("not-a-date", "", "Groceries", "1")
	badB := newTxn("2024-13-45", "", "Groceries", "1")
	badClock := newTxn("2024-06-30", "25:99", "Groceries", "1")

	tests := []struct {
		name  string
		input []*entity.Transaction
		want  []*entity.Transaction
	}{
		{
			name:  "date then time descending",
			input: []*entity.Transaction{older, morning, evening, isoStamp},
			want:  []*entity.Transaction{isoStamp, evening, morning, older},
		},
		{
			name:  "missing time sorts as start of day",
			input: []*entity.Transaction{noClock, morning},
			want:  []*entity.Transaction{morning, noClock},
		},
		{
			name:  "createdAt breaks primary key ties",
			input: []*entity.Transaction{createdFirst, createdMissing, createdLater},
			want:  []*entity.Transaction{createdLater, createdFirst, createdMissing},
		},
		{
			name:  "unparseable entries keep their relative order after parseable ones",
			input: []*entity.Transaction{badA, older, badB, badClock, morning},
			want:  []*entity.Transaction{morning, older, badA, badB, badClock},
		},
		{
			name:  "empty input",
			input: nil,
			want:  []*entity.Transaction{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sortByRecency(tt.input)
			sameOrder(t, got, tt.want)
		})
	}
}

func TestRecencyKey_CompareIsAntisymmetric(t *testing.T) {
	txns := []*entity.Transaction{
		newTxn("2024-06-10", "08:00", "Groceries", "1"),
		newTxn("bad", "", "Groceries", "1"),
		withCreatedAt(newTxn("2024-06-10", "08:00", "Groceries", "1"), time.Now()),
		newTxn("2024-06-09", "", "Groceries", "1"),
	}
	keys := make([]recencyKey, len(txns))
	for i, txn := range txns {
		keys[i] = newRecencyKey(txn, i)
	}

	for i := range keys {
		for j := range keys {
			a, b := keys[i].compare(keys[j]), keys[j].compare(keys[i])
			if i == j && a != 0 {
				t.Errorf("key %d compared to itself = %d", i, a)
			}
			if i != j && (a == 0 || (a < 0) == (b < 0)) {
				t.Errorf("keys %d and %d are not strictly ordered: %d / %d", i, j, a, b)
			}
		}
	}
}
