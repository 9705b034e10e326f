package settings

import "time"

type SettingDB struct {
	Path      string
	Value     []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}
