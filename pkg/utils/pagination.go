package utils

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// TotalPages - число страниц для total записей при заданном limit.
func TotalPages(total uint64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
