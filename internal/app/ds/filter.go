package ds

// SortBy: поле сортировки каталога карточек
type SortBy string

const (
	SortPrice        SortBy = "price"
	SortRating       SortBy = "rating"
	SortAlphabetical SortBy = "alphabetical"
	SortNewest       SortBy = "newest"
)

func (s SortBy) IsValid() bool {
	switch s {
	case SortPrice, SortRating, SortAlphabetical, SortNewest:
		return true
	}
	return false
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SpecialistFilter: условия каталога, все заданные поля объединяются через AND
type SpecialistFilter struct {
	Search             string
	VerificationStatus VerificationStatus
	IsDraft            *bool
	MinPrice           *float64
	MaxPrice           *float64
	MinRating          *float64
	SortBy             SortBy
	SortOrder          SortOrder
}
