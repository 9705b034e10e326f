package entities

type SettingType string

const (
	SettingString  SettingType = "string"
	SettingNumber  SettingType = "number"
	SettingBoolean SettingType = "boolean"
)

func (t SettingType) String() string {
	return string(t)
}

type SettingField struct {
	Path        string
	Title       string
	Description string
	Type        SettingType
	Default     any
}

// Setting - значение поля вместе со схемой. Value уже приведено к типу поля:
// string, float64 или bool.
type Setting struct {
	Field SettingField
	Value any
}

const (
	SettingOrderUpdatedNotifications = "wallet.notifications.order_updated"
	SettingOrdersNotificationTime    = "notifications.orders.timestamp"
)
