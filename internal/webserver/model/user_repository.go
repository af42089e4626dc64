package model

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (u *UserRepository) Create(user *User) error {
	if result := u.DB.Create(user); result.Error != nil {
		log.Printf("error creating user: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (u *UserRepository) FindByEmail(email string) (*User, error) {
	return u.find("email", email)
}

func (u *UserRepository) FindByUsername(username string) (*User, error) {
	return u.find("username", username)
}

func (u *UserRepository) FindByIDs(ids []uint) ([]User, error) {
	var users []User

	if len(ids) == 0 {
		return []User{}, nil
	}

	result := u.DB.Where("id IN ?", ids).Find(&users)
	if result.Error != nil {
		log.Printf("error retrieving users by id: %s\n", result.Error)
		return nil, result.Error
	}
	return users, nil
}

func (u *UserRepository) FindByUsernames(usernames []string) ([]User, error) {
	var users []User

	if len(usernames) == 0 {
		return []User{}, nil
	}

	result := u.DB.Where("username IN ?", usernames).Find(&users)
	if result.Error != nil {
		log.Printf("error retrieving users by username: %s\n", result.Error)
		return nil, result.Error
	}
	return users, nil
}

func Hash(s string) string {
	h := sha256.New()
	h.Write([]byte(s))
	return string(h.Sum(nil))
}

func (u *UserRepository) find(field, value string) (*User, error) {
	var user User

	result := u.DB.Where(fmt.Sprintf("%s = ?", field), value).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, result.Error
}
