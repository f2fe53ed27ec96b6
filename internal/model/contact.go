package model

import "time"

// SocialLinks is stored as a jsonb column and round-trips as a nested
// object on the wire.
type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	VK        string `json:"vk"`
	MailRu    string `json:"mailru"`
	Ozon      string `json:"ozon"`
}

// ContactInfo is a singleton record: at most one row is ever read or
// written.
type ContactInfo struct {
	Phone          string      `json:"phone"`
	Address        string      `json:"address"`
	Email          string      `json:"email"`
	OpeningHours   string      `json:"openingHours"`
	MondayHours    string      `json:"mondayHours"`
	TuesdayHours   string      `json:"tuesdayHours"`
	WednesdayHours string      `json:"wednesdayHours"`
	ThursdayHours  string      `json:"thursdayHours"`
	FridayHours    string      `json:"fridayHours"`
	SaturdayHours  string      `json:"saturdayHours"`
	SundayHours    string      `json:"sundayHours"`
	Whatsapp       string      `json:"whatsapp"`
	Telegram       string      `json:"telegram"`
	Max            string      `json:"max"`
	MapEmbedURL    string      `json:"mapEmbedUrl"`
	SocialLinks    SocialLinks `json:"socialLinks"`
	UpdatedAt      time.Time   `json:"-"`
}
