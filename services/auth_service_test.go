package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fadhlanhapp/tripdash-backend/models"
	"github.com/fadhlanhapp/tripdash-backend/utils"
)

func TestAuthenticate(t *testing.T) {
	service := NewAuthService()
	users := []models.User{
		{Name: "Alice", Password: "pw1", Role: "member"},
		{Name: "Bob", Password: "pw2", Role: "admin"},
	}

	t.Run("valid credentials", func(t *testing.T) {
		user, err := service.Authenticate("Alice", "pw1", users)

		assert.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "member", user.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		user, err := service.Authenticate("Alice", "wrong", users)

		assert.Nil(t, user)
		assert.Error(t, err)
	})

	t.Run("unknown name", func(t *testing.T) {
		user, err := service.Authenticate("Mallory", "pw1", users)

		assert.Nil(t, user)
		assert.Error(t, err)
	})

	t.Run("failure message does not reveal which field was wrong", func(t *testing.T) {
		_, errName := service.Authenticate("Mallory", "pw1", users)
		_, errPass := service.Authenticate("Alice", "wrong", users)

		assert.Equal(t, errName.Error(), errPass.Error())
	})

	t.Run("match is case-sensitive", func(t *testing.T) {
		user, err := service.Authenticate("alice", "pw1", users)

		assert.Nil(t, user)
		assert.Error(t, err)
	})

	t.Run("first matching record wins", func(t *testing.T) {
		dupes := append(users, models.User{Name: "Alice", Password: "pw1", Role: "admin"})
		user, err := service.Authenticate("Alice", "pw1", dupes)

		assert.NoError(t, err)
		assert.Equal(t, utils.RoleMember, user.Role)
	})
}
