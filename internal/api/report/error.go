package report

import "FinTrack/pkg/response"

var (
	ErrInvalidPeriod       = response.NewError(400, "invalid year or month")
	ErrInvalidIdentifier   = response.NewError(400, "invalid owner identifier")
	ErrInvalidCurrency     = response.NewError(400, "invalid currency")
	ErrInvalidCategoryType = response.NewError(400, "invalid category type")
)
