package models

// Settings holds application-level configuration persisted alongside the data.
type Settings struct {
	Timezone      string `json:"timezone"`
	DefaultMember string `json:"default_member"`
}
