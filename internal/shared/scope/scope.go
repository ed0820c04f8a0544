package scope

import "gorm.io/gorm"

// Paginate applies offset/limit for 1-based pages.
func Paginate(page, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 10
		}
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}

// ILike adds a case-insensitive contains filter on one column when the
// search term is non-empty.
func ILike(column, term string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		return db.Where(column+" ILIKE ?", "%"+term+"%")
	}
}
