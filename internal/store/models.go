package store

import (
	"time"

	"gorm.io/datatypes"
)

// ArticleRow is the persisted shape of an article. Columns keep their
// historical snake_case names; list-valued fields on NewsRow are stored
// as JSON text and decoded downstream.
type ArticleRow struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Content     string    `gorm:"type:text" json:"content"`
	Link        string    `gorm:"size:512" json:"link"`
	Category    string    `gorm:"size:64" json:"category"`
	PublishDate string    `gorm:"column:publish_date;size:32" json:"date"`
	Author      string    `gorm:"size:128" json:"author"`
	CreatedAt   time.Time `json:"-"`
}

// TableName keeps the historical table name.
func (ArticleRow) TableName() string { return "articles" }

// NewsRow is the persisted shape of a news/activity record.
type NewsRow struct {
	ID               int64     `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"size:255;not null" json:"title"`
	Subtitle         string    `gorm:"size:255" json:"subtitle"`
	EventDate        string    `gorm:"column:event_date;size:32" json:"date"`
	EventTime        string    `gorm:"column:event_time;size:32" json:"time"`
	Location         string    `gorm:"size:255" json:"location"`
	Organizer        string    `gorm:"size:255" json:"organizer"`
	CoOrganizer      string    `gorm:"column:co_organizer;size:255" json:"coOrganizer"`
	Sponsor          string    `gorm:"size:255" json:"sponsor"`
	Purpose          string    `gorm:"type:text" json:"purpose"`
	Content          string    `gorm:"type:text" json:"content"`
	CoreFunction     string    `gorm:"column:core_function;type:text" json:"coreFunction"`
	Highlights       string    `gorm:"type:text" json:"highlights"`
	Participants     string    `gorm:"type:text" json:"participants"`
	Staff            string    `gorm:"type:text" json:"staff"`
	ParticipantsList string    `gorm:"column:participants_list;type:text" json:"participants_list"`
	StaffList        string    `gorm:"column:staff_list;type:text" json:"staff_list"`
	Image            string    `gorm:"type:longtext" json:"image"`
	Video            string    `gorm:"type:longtext" json:"video"`
	CoverImage       string    `gorm:"column:cover_image;type:longtext" json:"cover_image"`
	EventScale       string    `gorm:"column:event_scale;size:128" json:"eventScale"`
	EventFee         string    `gorm:"column:event_fee;size:128" json:"eventFee"`
	ContactPhone     string    `gorm:"column:contact_phone;size:64" json:"contactPhone"`
	RegistrationLink string    `gorm:"column:registration_link;size:512" json:"registrationLink"`
	OfficialWebsite  string    `gorm:"column:official_website;size:512" json:"officialWebsite"`
	Category         string    `gorm:"size:64" json:"category"`
	CreatedAt        time.Time `json:"-"`
}

// TableName keeps the historical table name.
func (NewsRow) TableName() string { return "news" }

// UserRow is an admin account.
type UserRow struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"-"`
}

// TableName keeps the historical table name.
func (UserRow) TableName() string { return "users" }

// OperationLogRow records one admin mutation for the audit trail.
type OperationLogRow struct {
	ID         int64             `gorm:"primaryKey" json:"id"`
	Username   string            `gorm:"size:64;not null" json:"username"`
	Action     string            `gorm:"size:32;not null" json:"action"`
	TargetType string            `gorm:"column:target_type;size:32;not null" json:"targetType"`
	TargetID   int64             `gorm:"column:target_id" json:"targetId"`
	Metadata   datatypes.JSONMap `gorm:"type:json" json:"metadata"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// TableName keeps the historical table name.
func (OperationLogRow) TableName() string { return "operation_logs" }
