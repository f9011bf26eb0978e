package helper

import (
	"gorm.io/gorm"
)

// NextSortOrder: count+1 dalam scope; bila sudah terpakai (ada baris terhapus di tengah) pakai max+1.
// scope boleh nil (seluruh koleksi).
func NextSortOrder(tx *gorm.DB, model any, scope func(*gorm.DB) *gorm.DB) (int, error) {
	base := func() *gorm.DB {
		q := tx.Model(model)
		if scope != nil {
			q = scope(q)
		}
		return q
	}

	var count int64
	if err := base().Count(&count).Error; err != nil {
		return 0, err
	}
	var maxOrder int
	if err := base().Select("COALESCE(MAX(sort_order), 0)").Scan(&maxOrder).Error; err != nil {
		return 0, err
	}

	next := int(count) + 1
	if next <= maxOrder {
		next = maxOrder + 1
	}
	return next, nil
}

// ToggleActive membalik is_active satu baris. found=false bila id tidak ada.
func ToggleActive(tx *gorm.DB, model any, id any) (bool, error) {
	res := tx.Model(model).Where("id = ?", id).Update("is_active", gorm.Expr("NOT is_active"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
