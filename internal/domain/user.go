package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type User struct {
	ID        string    `json:"_id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Photo     string    `json:"photo" bson:"photo"`
	Role      Role      `json:"role" bson:"role"`
	Gender    Gender    `json:"gender" bson:"gender"`
	DOB       time.Time `json:"dob" bson:"dob"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (u User) Created() time.Time { return u.CreatedAt }

// Age is the number of full years between DOB and now.
func (u User) Age(now time.Time) int {
	age := now.Year() - u.DOB.Year()
	if now.Month() < u.DOB.Month() || (now.Month() == u.DOB.Month() && now.Day() < u.DOB.Day()) {
		age--
	}
	return age
}

type NewUser struct {
	ID     string    `json:"_id" validate:"required"`
	Name   string    `json:"name" validate:"required"`
	Email  string    `json:"email" validate:"required,email"`
	Photo  string    `json:"photo" validate:"required"`
	Gender Gender    `json:"gender" validate:"required,oneof=male female"`
	DOB    time.Time `json:"dob" validate:"required"`
}
