package model

// DateLayout is the storage and path format of observation dates
const DateLayout = "2006-01-02"

// DateRangeDTO carries the start and optional end date path parameters
type DateRangeDTO struct {
	Start string `param:"start" validate:"required,datetime=2006-01-02"`
	End   string `param:"end" validate:"omitempty,datetime=2006-01-02"`
}

// HasEnd reports whether the range is bounded on the right
func (dto DateRangeDTO) HasEnd() bool {
	return dto.End != ""
}

// IsOrdered reports whether start is not after end. Dates compare lexicographically.
func (dto DateRangeDTO) IsOrdered() bool {
	return !dto.HasEnd() || dto.Start <= dto.End
}
