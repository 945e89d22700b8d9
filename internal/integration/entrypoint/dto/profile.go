// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/finance-pal/backend/internal/application/usecase/profile"

// ResetDataResponse reports how many records each collection lost.
type ResetDataResponse struct {
	Deleted map[string]int64 `json:"deleted"`
}

// ToResetDataResponse converts a ResetDataOutput to its DTO.
func ToResetDataResponse(output *profile.ResetDataOutput) ResetDataResponse {
	deleted := make(map[string]int64, len(output.Deleted))
	for collection, n := range output.Deleted {
		deleted[string(collection)] = n
	}
	return ResetDataResponse{Deleted: deleted}
}
