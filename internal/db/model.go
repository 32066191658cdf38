package db

import (
	"time"
)

var Columns = struct {
	Post struct {
		ID, Title, Excerpt, Content, Category, Author, Date, ReadTime, CreatedAt, UpdatedAt string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
}{
	Post: struct {
		ID, Title, Excerpt, Content, Category, Author, Date, ReadTime, CreatedAt, UpdatedAt string
	}{
		ID:       "id",
		Title:    "title",
		Excerpt:  "excerpt",
		Content:  "content",
		Category: "category",
		Author:   "author",
		Date:     "date",
		// canonical lower-case spelling; the camel-case "readTime" column is legacy
		ReadTime:  "readtime",
		CreatedAt: "created_at",
		UpdatedAt: "updated_at",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
}

var Tables = struct {
	Post struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
}{
	Post: struct {
		Name, Alias string
	}{
		Name:  "blogs",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
}

type Post struct {
	tableName struct{} `pg:"blogs,alias:t,discard_unknown_columns"`

	ID        string     `pg:"id,pk"`
	Title     string     `pg:"title,use_zero"`
	Excerpt   string     `pg:"excerpt,use_zero"`
	Content   string     `pg:"content,use_zero"`
	Category  string     `pg:"category,use_zero"`
	Author    string     `pg:"author,use_zero"`
	Date      string     `pg:"date,use_zero"`
	ReadTime  string     `pg:"readtime,use_zero"`
	CreatedAt time.Time  `pg:"created_at,use_zero"`
	UpdatedAt *time.Time `pg:"updated_at"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}
