package models

// ConfigEntry is a free-form key/value row. The readiness probe writes and
// deletes a throwaway entry to verify database writes.
type ConfigEntry struct {
	Key    string `gorm:"column:key;primaryKey"`
	Config string `gorm:"column:config;not null"`
}

func (ConfigEntry) TableName() string {
	return "configs"
}
