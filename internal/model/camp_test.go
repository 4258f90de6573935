package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestCampUpdate_SetDocument(t *testing.T) {
	name := "Eye Care Camp"
	fees := 25.5

	set := CampUpdate{CampName: &name, CampFees: &fees}.SetDocument()

	assert.Equal(t, bson.D{
		{Key: "campName", Value: "Eye Care Camp"},
		{Key: "campFees", Value: 25.5},
	}, set)
}

func TestCampUpdate_EmptyUpdate(t *testing.T) {
	assert.Empty(t, CampUpdate{}.SetDocument())
}

func TestUser_IsAdmin(t *testing.T) {
	var nilUser *User

	assert.False(t, nilUser.IsAdmin())
	assert.False(t, (&User{Role: RoleMember}).IsAdmin())
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
}
