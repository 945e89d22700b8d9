// Package savingsgoal contains savings goal use cases.
package savingsgoal

import (
	"strings"

	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
	"github.com/finance-pal/backend/internal/domain/valueobject"
)

func validateGoal(goal *entity.SavingsGoal) error {
	if strings.TrimSpace(goal.Name) == "" {
		return domainerror.NewSavingsGoalError(
			domainerror.ErrCodeMissingGoalName,
			"goal name is required",
			domainerror.ErrMissingGoalName,
		)
	}
	if !goal.TargetAmount.IsPositive() {
		return domainerror.NewSavingsGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}
	if !valueobject.FitsMoneyScale(goal.TargetAmount) {
		return domainerror.NewSavingsGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must have at most 2 decimal places",
			domainerror.ErrAmountTooPrecise,
		)
	}
	if goal.CurrentAmount.IsNegative() {
		return domainerror.NewSavingsGoalError(
			domainerror.ErrCodeInvalidCurrentAmount,
			"current amount must not be negative",
			domainerror.ErrInvalidCurrentAmount,
		)
	}
	if !valueobject.FitsMoneyScale(goal.CurrentAmount) {
		return domainerror.NewSavingsGoalError(
			domainerror.ErrCodeInvalidCurrentAmount,
			"current amount must have at most 2 decimal places",
			domainerror.ErrAmountTooPrecise,
		)
	}
	if goal.CurrentAmount.GreaterThan(goal.TargetAmount) {
		return domainerror.NewSavingsGoalError(
			domainerror.ErrCodeCurrentExceedsTarget,
			"current amount must not exceed the target amount",
			domainerror.ErrCurrentExceedsTarget,
		)
	}
	if goal.Deadline != nil {
		if _, err := valueobject.ParseCalendarDate(*goal.Deadline); err != nil {
			return domainerror.NewSavingsGoalError(
				domainerror.ErrCodeInvalidGoalDeadline,
				"deadline must be a valid calendar date (YYYY-MM-DD)",
				domainerror.ErrInvalidGoalDeadline,
			)
		}
	}
	return nil
}

func optionalDate(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}

func notFound() error {
	return domainerror.NewSavingsGoalError(
		domainerror.ErrCodeSavingsGoalNotFound,
		"savings goal not found",
		domainerror.ErrSavingsGoalNotFound,
	)
}
