package userservice

import (
	"testing"

	"github.com/sushihentaime/bloglist/internal/common"
)

func TestValidateUsername(t *testing.T) {
	testCases := []struct {
		username string
		valid    bool
	}{
		{username: "", valid: false},
		{username: "a", valid: false},
		{username: "ro", valid: false},
		{username: "abc", valid: true},
		{username: "root", valid: true},
		{username: "mluukkai", valid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.username, func(t *testing.T) {
			v := common.NewValidator()
			validateUsername(v, tc.username)
			if v.Valid() != tc.valid {
				t.Errorf("expected %v, got %v", tc.valid, v.Valid())
				for _, e := range v.Errors {
					t.Log(e)
				}
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "missing", password: "", valid: false},
		{name: "one char", password: "1", valid: false},
		{name: "two chars", password: "12", valid: false},
		{name: "three chars", password: "123", valid: true},
		{name: "long", password: "salainen", valid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validatePassword(v, tc.password)
			if v.Valid() != tc.valid {
				t.Errorf("expected %v, got %v", tc.valid, v.Valid())
				for _, e := range v.Errors {
					t.Log(e)
				}
			}
		})
	}
}
