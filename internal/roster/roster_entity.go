package roster

import (
	"time"
)

// Personnel is an unregistered roster entry. Its id is the external
// personnel number and is unique across both identity kinds: an id is held
// by either a Personnel row or a User row, never both.
type Personnel struct {
	ID          string     `gorm:"column:id;primaryKey"`
	FirstName   string     `gorm:"column:first_name;not null"`
	LastName    string     `gorm:"column:last_name;not null"`
	Company     string     `gorm:"column:company;not null;index"`
	Platoon     string     `gorm:"column:platoon;not null"`
	Active      bool       `gorm:"column:active;default:true"`
	DateAdded   time.Time  `gorm:"column:date_added;type:date"`
	DateRemoved *time.Time `gorm:"column:date_removed;type:date"`
}

func (Personnel) TableName() string {
	return "personnel"
}

// Overwrite copies every mutable field from other, keeping the id.
func (p *Personnel) Overwrite(other Personnel) {
	p.FirstName, p.LastName = other.FirstName, other.LastName
	p.Company = other.Company
	p.Platoon = other.Platoon
	p.Active = other.Active
	p.DateRemoved = other.DateRemoved
}

// User is a roster identity promoted to an authenticated account. It keeps
// the personnel number it was promoted from as its primary key.
type User struct {
	ID          string     `gorm:"column:id;primaryKey"`
	Email       string     `gorm:"column:email;not null;uniqueIndex:uq_users_email"`
	Role        string     `gorm:"column:role;not null"`
	FirstName   string     `gorm:"column:first_name;not null"`
	LastName    string     `gorm:"column:last_name;not null"`
	Company     string     `gorm:"column:company;not null;index"`
	Platoon     string     `gorm:"column:platoon;not null"`
	Active      bool       `gorm:"column:active;default:true"`
	DateAdded   time.Time  `gorm:"column:date_added;type:date"`
	DateRemoved *time.Time `gorm:"column:date_removed;type:date"`
}

func (User) TableName() string {
	return "users"
}

// Overwrite copies every mutable field from other, keeping id and email.
func (u *User) Overwrite(other User) {
	u.FirstName, u.LastName = other.FirstName, other.LastName
	u.Company = other.Company
	u.Platoon = other.Platoon
	u.Role = other.Role
	u.Active = other.Active
	u.DateRemoved = other.DateRemoved
}

// Demoted strips the account attributes, leaving the bare roster entry that
// replaces the user on demotion.
func (u User) Demoted() Personnel {
	return Personnel{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Company:     u.Company,
		Platoon:     u.Platoon,
		Active:      u.Active,
		DateAdded:   u.DateAdded,
		DateRemoved: u.DateRemoved,
	}
}
