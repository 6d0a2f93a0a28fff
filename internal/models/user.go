package models

type User struct {
	UserID   uint   `gorm:"primaryKey" json:"userId"`
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	// Relationships
	Posts    []Post    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Comments []Comment `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

// UserRequiredFields is the fixed order in which missing required
// fields are reported on create.
var UserRequiredFields = []string{"name", "email", "password"}

// UserColumns maps the JSON keys accepted in a partial update to the
// persisted column they write. Keys outside this set are ignored.
var UserColumns = map[string]string{
	"name":     "name",
	"email":    "email",
	"password": "password",
}
