package response

import "travel-booking/internal/data/entity"

// PaginatedDetailsResponse wraps one page of package details.
type PaginatedDetailsResponse struct {
	Page  int64                   `json:"page"`
	Limit int64                   `json:"limit"`
	Total int64                   `json:"total"`
	Data  []*entity.PackageDetail `json:"data"`
}

// GroupedDetailsResponse maps a day number to the details of that day,
// ordered by position.
type GroupedDetailsResponse map[int][]*entity.PackageDetail
