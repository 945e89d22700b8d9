// Package export contains the collection export use case.
package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"golang.org/x/sync/errgroup"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/application/derived"
	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
	"github.com/finance-pal/backend/internal/domain/valueobject"
)

// ExportCollectionInput represents the input for exporting a collection.
type ExportCollectionInput struct {
	Scope      entity.Scope
	Collection entity.Collection
	Format     string // encoder extension, e.g. "csv"
	Currency   entity.Currency
	Filters    derived.Filters // applied to transactions only
	Now        time.Time
}

// ExportCollectionOutput is an encoded file ready for download.
type ExportCollectionOutput struct {
	FileName    string
	ContentType string
	Content     []byte
	Rows        int
}

// ExportCollectionUseCase renders a collection as a downloadable file.
type ExportCollectionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.BankAccountRepository
	budgetRepo      adapter.BudgetRepository
	goalRepo        adapter.SavingsGoalRepository
	engine          *derived.Engine
	encoders        map[string]adapter.TableEncoder
}

// NewExportCollectionUseCase creates a new ExportCollectionUseCase instance.
// Encoders are selected by their extension.
func NewExportCollectionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.BankAccountRepository,
	budgetRepo adapter.BudgetRepository,
	goalRepo adapter.SavingsGoalRepository,
	engine *derived.Engine,
	encoders ...adapter.TableEncoder,
) *ExportCollectionUseCase {
	byExtension := make(map[string]adapter.TableEncoder, len(encoders))
	for _, enc := range encoders {
		byExtension[enc.Extension()] = enc
	}
	return &ExportCollectionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		budgetRepo:      budgetRepo,
		goalRepo:        goalRepo,
		engine:          engine,
		encoders:        byExtension,
	}
}

// Execute builds the table for the collection and encodes it.
func (uc *ExportCollectionUseCase) Execute(ctx context.Context, input ExportCollectionInput) (*ExportCollectionOutput, error) {
	if input.Now.IsZero() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeMissingReferenceTime,
			"reference time is required",
			domainerror.ErrMissingReferenceTime,
		)
	}

	encoder, ok := uc.encoders[strings.ToLower(input.Format)]
	if !ok {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeUnsupportedExportFormat,
			fmt.Sprintf("unsupported export format %q", input.Format),
			domainerror.ErrUnsupportedExportFormat,
		)
	}

	table, err := uc.buildTable(ctx, input)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := encoder.Encode(&buf, table); err != nil {
		return nil, fmt.Errorf("failed to encode %s export: %w", input.Collection, err)
	}

	return &ExportCollectionOutput{
		FileName:    fmt.Sprintf("%s_%s.%s", input.Collection, civil.DateOf(input.Now), encoder.Extension()),
		ContentType: encoder.ContentType(),
		Content:     buf.Bytes(),
		Rows:        table.Len(),
	}, nil
}

func (uc *ExportCollectionUseCase) buildTable(ctx context.Context, input ExportCollectionInput) (valueobject.Table, error) {
	switch input.Collection {
	case entity.CollectionTransactions:
		return uc.transactionsTable(ctx, input)
	case entity.CollectionBudgets:
		budgets, err := uc.budgetRepo.FindAll(ctx, input.Scope)
		if err != nil {
			return valueobject.Table{}, fmt.Errorf("failed to load budgets: %w", err)
		}
		return BudgetsTable(budgets, input.Currency), nil
	case entity.CollectionSavingsGoals:
		goals, err := uc.goalRepo.FindAll(ctx, input.Scope)
		if err != nil {
			return valueobject.Table{}, fmt.Errorf("failed to load savings goals: %w", err)
		}
		return SavingsGoalsTable(goals, input.Currency), nil
	default:
		return valueobject.Table{}, domainerror.NewReportError(
			domainerror.ErrCodeUnknownCollection,
			fmt.Sprintf("collection %q cannot be exported", input.Collection),
			domainerror.ErrUnknownCollection,
		)
	}
}

func (uc *ExportCollectionUseCase) transactionsTable(ctx context.Context, input ExportCollectionInput) (valueobject.Table, error) {
	var (
		txns     []*entity.Transaction
		accounts []*entity.BankAccount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txns, err = uc.transactionRepo.FindAll(gctx, input.Scope)
		if err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		accounts, err = uc.accountRepo.FindAll(gctx, input.Scope)
		if err != nil {
			return fmt.Errorf("failed to load bank accounts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return valueobject.Table{}, err
	}

	filtered := uc.engine.FilterTransactions(txns, input.Filters)
	return TransactionsTable(filtered, accounts, input.Currency), nil
}
