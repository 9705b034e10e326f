package settings

import "market/internal/entities"

// DefaultSchema - поля настроек, известные клиенту. Порядок задает порядок выдачи.
func DefaultSchema() []entities.SettingField {
	return []entities.SettingField{
		{
			Path:        entities.SettingOrderUpdatedNotifications,
			Title:       "Order updates",
			Description: "Notify when a buy or sell order changes status",
			Type:        entities.SettingBoolean,
			Default:     true,
		},
		{
			Path:        entities.SettingOrdersNotificationTime,
			Title:       "Last order notification",
			Description: "Unix time in milliseconds of the last order update notification",
			Type:        entities.SettingNumber,
			Default:     float64(0),
		},
		{
			Path:        "display.language",
			Title:       "Language",
			Description: "Interface language code",
			Type:        entities.SettingString,
			Default:     "en_US",
		},
	}
}
