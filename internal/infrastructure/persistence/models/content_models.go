package models

import (
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/content"
)

// BlogCategoryModel is the GORM database model for blog categories
type BlogCategoryModel struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"not null;type:varchar(100)"`
	Slug        string  `gorm:"not null;uniqueIndex;type:varchar(120)"`
	Description *string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (BlogCategoryModel) TableName() string {
	return "blog_categories"
}

// PrimaryKey returns the row id
func (m *BlogCategoryModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *BlogCategoryModel) ToDomain() *content.BlogCategory {
	return &content.BlogCategory{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BlogCategoryModel) FromDomain(c *content.BlogCategory) {
	m.ID = c.ID
	m.Name = c.Name
	m.Slug = c.Slug
	m.Description = c.Description
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

// BlogPostModel is the GORM database model for blog posts
type BlogPostModel struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"not null;type:varchar(200)"`
	Slug        string  `gorm:"not null;uniqueIndex;type:varchar(220)"`
	Excerpt     *string `gorm:"type:varchar(500)"`
	Content     string  `gorm:"not null;type:text"`
	Thumbnail   *string `gorm:"type:varchar(255)"`
	CategoryID  uint    `gorm:"not null;index"`
	AuthorID    uint    `gorm:"not null;index"`
	Status      string  `gorm:"not null;index;type:varchar(20)"`
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (BlogPostModel) TableName() string {
	return "blog_posts"
}

// PrimaryKey returns the row id
func (m *BlogPostModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *BlogPostModel) ToDomain() *content.BlogPost {
	return &content.BlogPost{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Excerpt:     m.Excerpt,
		Content:     m.Content,
		Thumbnail:   m.Thumbnail,
		CategoryID:  m.CategoryID,
		AuthorID:    m.AuthorID,
		Status:      content.PostStatus(m.Status),
		PublishedAt: m.PublishedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BlogPostModel) FromDomain(p *content.BlogPost) {
	m.ID = p.ID
	m.Title = p.Title
	m.Slug = p.Slug
	m.Excerpt = p.Excerpt
	m.Content = p.Content
	m.Thumbnail = p.Thumbnail
	m.CategoryID = p.CategoryID
	m.AuthorID = p.AuthorID
	m.Status = string(p.Status)
	m.PublishedAt = p.PublishedAt
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

// CareerModel is the GORM database model for job postings
type CareerModel struct {
	ID             uint    `gorm:"primaryKey"`
	Title          string  `gorm:"not null;type:varchar(150)"`
	Description    string  `gorm:"not null;type:text"`
	Location       string  `gorm:"not null;type:varchar(150)"`
	EmploymentType string  `gorm:"not null;type:varchar(20)"`
	Vacancies      int     `gorm:"not null;default:1"`
	Salary         *string `gorm:"type:varchar(100)"`
	Deadline       time.Time
	Status         string `gorm:"not null;index;type:varchar(20)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (CareerModel) TableName() string {
	return "careers"
}

// PrimaryKey returns the row id
func (m *CareerModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *CareerModel) ToDomain() *content.Career {
	return &content.Career{
		ID:             m.ID,
		Title:          m.Title,
		Description:    m.Description,
		Location:       m.Location,
		EmploymentType: m.EmploymentType,
		Vacancies:      m.Vacancies,
		Salary:         m.Salary,
		Deadline:       m.Deadline,
		Status:         content.CareerStatus(m.Status),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CareerModel) FromDomain(c *content.Career) {
	m.ID = c.ID
	m.Title = c.Title
	m.Description = c.Description
	m.Location = c.Location
	m.EmploymentType = c.EmploymentType
	m.Vacancies = c.Vacancies
	m.Salary = c.Salary
	m.Deadline = c.Deadline
	m.Status = string(c.Status)
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

// CenterModel is the GORM database model for service centers
type CenterModel struct {
	ID         uint    `gorm:"primaryKey"`
	Name       string  `gorm:"not null;type:varchar(150)"`
	Address    string  `gorm:"not null;type:varchar(255)"`
	Phone      *string `gorm:"type:varchar(30)"`
	Email      *string `gorm:"type:varchar(150)"`
	MapURL     *string `gorm:"column:map_url;type:varchar(500)"`
	Image      *string `gorm:"type:varchar(255)"`
	DivisionID *uint   `gorm:"index"`
	DistrictID *uint   `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (CenterModel) TableName() string {
	return "centers"
}

// PrimaryKey returns the row id
func (m *CenterModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *CenterModel) ToDomain() *content.Center {
	return &content.Center{
		ID:         m.ID,
		Name:       m.Name,
		Address:    m.Address,
		Phone:      m.Phone,
		Email:      m.Email,
		MapURL:     m.MapURL,
		Image:      m.Image,
		DivisionID: m.DivisionID,
		DistrictID: m.DistrictID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CenterModel) FromDomain(c *content.Center) {
	m.ID = c.ID
	m.Name = c.Name
	m.Address = c.Address
	m.Phone = c.Phone
	m.Email = c.Email
	m.MapURL = c.MapURL
	m.Image = c.Image
	m.DivisionID = c.DivisionID
	m.DistrictID = c.DistrictID
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

// TeamMemberModel is the GORM database model for team members
type TeamMemberModel struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"not null;type:varchar(100)"`
	Designation string  `gorm:"not null;type:varchar(100)"`
	Bio         *string `gorm:"type:text"`
	Image       *string `gorm:"type:varchar(255)"`
	Phone       *string `gorm:"type:varchar(30)"`
	Email       *string `gorm:"type:varchar(150)"`
	Facebook    *string `gorm:"type:varchar(255)"`
	LinkedIn    *string `gorm:"column:linkedin;type:varchar(255)"`
	Position    int     `gorm:"not null;default:0;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (TeamMemberModel) TableName() string {
	return "team_members"
}

// PrimaryKey returns the row id
func (m *TeamMemberModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *TeamMemberModel) ToDomain() *content.TeamMember {
	return &content.TeamMember{
		ID:          m.ID,
		Name:        m.Name,
		Designation: m.Designation,
		Bio:         m.Bio,
		Image:       m.Image,
		Phone:       m.Phone,
		Email:       m.Email,
		Facebook:    m.Facebook,
		LinkedIn:    m.LinkedIn,
		Position:    m.Position,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TeamMemberModel) FromDomain(t *content.TeamMember) {
	m.ID = t.ID
	m.Name = t.Name
	m.Designation = t.Designation
	m.Bio = t.Bio
	m.Image = t.Image
	m.Phone = t.Phone
	m.Email = t.Email
	m.Facebook = t.Facebook
	m.LinkedIn = t.LinkedIn
	m.Position = t.Position
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
}

// ContactFormModel is the GORM database model for contact messages
type ContactFormModel struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"not null;type:varchar(100)"`
	Email     string  `gorm:"not null;type:varchar(150)"`
	Phone     *string `gorm:"type:varchar(30)"`
	Subject   string  `gorm:"not null;type:varchar(200)"`
	Message   string  `gorm:"not null;type:text"`
	Status    string  `gorm:"not null;index;type:varchar(20)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ContactFormModel) TableName() string {
	return "contact_forms"
}

// PrimaryKey returns the row id
func (m *ContactFormModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *ContactFormModel) ToDomain() *content.ContactForm {
	return &content.ContactForm{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    content.ContactStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ContactFormModel) FromDomain(c *content.ContactForm) {
	m.ID = c.ID
	m.Name = c.Name
	m.Email = c.Email
	m.Phone = c.Phone
	m.Subject = c.Subject
	m.Message = c.Message
	m.Status = string(c.Status)
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}
