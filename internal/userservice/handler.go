package userservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sushihentaime/bloglist/internal/common"
)

var (
	ErrAuthenticationFailure = fmt.Errorf("invalid username or password")
)

func NewUserService(db *sql.DB, mb common.MessageProducer, secret string) *UserService {
	return &UserService{
		m:      newUserModel(db),
		mb:     mb,
		secret: []byte(secret),
	}
}

// CreateUser registers a new account and publishes a user.created event.
// The raw password is hashed before the insert and never persisted.
func (s *UserService) CreateUser(ctx context.Context, username, name, password string) (*User, error) {
	v := common.NewValidator()
	validateUsername(v, username)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	u := User{
		Username: username,
		Name:     name,
		Password: Password{Plain: password},
		Blogs:    []int{},
	}

	err := u.Password.set(u.Password.Plain)
	if err != nil {
		return nil, err
	}

	err = s.m.insertUser(ctx, &u)
	if err != nil {
		return nil, err
	}

	data := struct {
		Username string
		Name     string
	}{
		Username: u.Username,
		Name:     u.Name,
	}

	eventData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	err = s.mb.Publish(ctx, eventData, common.UserCreatedKey, common.UserExchange)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// LoginUser checks the credentials and returns a signed bearer token
// together with the user record.
func (s *UserService) LoginUser(ctx context.Context, username, password string) (*string, *User, error) {
	v := common.NewValidator()
	validateUsername(v, username)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, nil, v.ValidationError()
	}

	user, err := s.m.getUserByUsername(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, nil, ErrAuthenticationFailure
		default:
			return nil, nil, err
		}
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return nil, nil, err
	}

	if !ok {
		return nil, nil, ErrAuthenticationFailure
	}

	token, err := signToken(user, s.secret)
	if err != nil {
		return nil, nil, err
	}

	return &token, user, nil
}

// GetUserByID returns the user with its owned blog ids populated.
func (s *UserService) GetUserByID(ctx context.Context, id int) (*User, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getUserById(ctx, id)
}

// GetUsers returns every account with its owned blog ids populated.
func (s *UserService) GetUsers(ctx context.Context) ([]User, error) {
	return s.m.getUsers(ctx)
}

func (u *User) IsAnonymous() bool {
	return u == &AnonymousUser
}
