package models

// DefaultAuthor is used when an article row carries no author.
const DefaultAuthor = "东方美谷韩国中心"

// Article is the canonical form of a WeChat article record.
type Article struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Link      string `json:"link"`
	Category  string `json:"category"`
	Date      string `json:"date"`
	Author    string `json:"author"`
	CreatedAt int64  `json:"createdAt"`
}
