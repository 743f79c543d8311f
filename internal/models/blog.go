package models

import "time"

// BlogPost represents a blog entry with its draft/publish lifecycle fields.
type BlogPost struct {
	ID          int64         `json:"id" gorm:"primaryKey"`
	Title       string        `json:"title" gorm:"not null"`
	Slug        string        `json:"slug" gorm:"uniqueIndex;not null"`
	Summary     string        `json:"summary"`
	Content     string        `json:"content" gorm:"type:text"`
	ImageURL    string        `json:"image_url"`
	Tags        []BlogPostTag `json:"tags" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Published   bool          `json:"published" gorm:"not null;default:false"`
	PublishDate *time.Time    `json:"publish_date,omitempty"`
	// ReadingTime overrides the computed estimate when set.
	ReadingTime *int      `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for the BlogPost model.
func (BlogPost) TableName() string {
	return "blog_posts"
}

// BlogPostTag is a tag value owned by a single post.
type BlogPostTag struct {
	ID     int64  `json:"-" gorm:"primaryKey"`
	PostID int64  `json:"-" gorm:"index;not null"`
	Value  string `json:"value" gorm:"not null"`
}

// TableName returns the database table name for the BlogPostTag model.
func (BlogPostTag) TableName() string {
	return "blog_post_tags"
}

// HasTag reports case-sensitive tag membership.
func (p *BlogPost) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t.Value == tag {
			return true
		}
	}
	return false
}

// IsVisible reports whether the post is publicly readable at the given
// instant: published and not scheduled in the future.
func (p *BlogPost) IsVisible(now time.Time) bool {
	return p.Published && p.PublishDate != nil && !p.PublishDate.After(now)
}

// TagValues returns the plain tag strings.
func (p *BlogPost) TagValues() []string {
	values := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		values = append(values, t.Value)
	}
	return values
}

// NewBlogPostTags wraps plain strings into owned tag rows.
func NewBlogPostTags(values []string) []BlogPostTag {
	tags := make([]BlogPostTag, 0, len(values))
	for _, v := range values {
		tags = append(tags, BlogPostTag{Value: v})
	}
	return tags
}
