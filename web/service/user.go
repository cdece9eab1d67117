// Package service implements the application logic between controllers and
// the persistence layer.
package service

import (
	"errors"

	"goblog/database"
	"goblog/database/model"
	"goblog/logger"
	"goblog/util/crypto"
)

var (
	ErrEmailTaken    = errors.New("email is already registered")
	ErrUnknownEmail  = errors.New("email is not registered")
	ErrWrongPassword = errors.New("wrong password")
)

type UserService struct{}

func (s *UserService) GetUser(id int) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUserByEmail(email string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Register creates a new account with a bcrypt-hashed password. The email
// must not belong to an existing user.
func (s *UserService) Register(name string, email string, password string) (*model.User, error) {
	db := database.GetDB()

	_, err := s.GetUserByEmail(email)
	if err == nil {
		return nil, ErrEmailTaken
	} else if !database.IsNotFound(err) {
		return nil, err
	}

	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser verifies a login attempt. It distinguishes an unknown email
// from a wrong password so the caller can show a specific message.
func (s *UserService) CheckUser(email string, password string) (*model.User, error) {
	user, err := s.GetUserByEmail(email)
	if database.IsNotFound(err) {
		return nil, ErrUnknownEmail
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil, err
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil, ErrWrongPassword
	}
	return user, nil
}
