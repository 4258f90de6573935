package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campmed/internal/model"
	"campmed/internal/repository"
)

type fakeCamps struct {
	repository.CampRepository
	byName map[string]*model.Camp
}

func (f *fakeCamps) UpsertByName(_ context.Context, camp *model.Camp) (*repository.UpdateResult, error) {
	if _, ok := f.byName[camp.CampName]; ok {
		f.byName[camp.CampName] = camp
		return &repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
	f.byName[camp.CampName] = camp
	return &repository.UpdateResult{Acknowledged: true, UpsertedCount: 1}, nil
}

type fakeUsers struct {
	repository.UserRepository
	roles map[string]model.Role
}

func (f *fakeUsers) SetRole(_ context.Context, email string, role model.Role) (*repository.UpdateResult, error) {
	f.roles[email] = role
	return &repository.UpdateResult{Acknowledged: true}, nil
}

func TestReadAndSeedCamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camps.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"campName":"Eye Care","campFees":20,"location":"Dhaka"},
		{"campName":"Dental","campFees":15}
	]`), 0o600))

	camps, err := readCamps(path)
	require.NoError(t, err)
	require.Len(t, camps, 2)

	repo := &fakeCamps{byName: map[string]*model.Camp{"Dental": {}}}
	created, updated, err := seedCamps(context.Background(), repo, camps)

	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, updated)
	assert.Equal(t, "Dhaka", repo.byName["Eye Care"].Location)
}

func TestSeedCamps_RejectsNameless(t *testing.T) {
	repo := &fakeCamps{byName: map[string]*model.Camp{}}

	_, _, err := seedCamps(context.Background(), repo, []model.Camp{{CampFees: 10}})

	assert.Error(t, err)
}

func TestPromoteAdmins(t *testing.T) {
	repo := &fakeUsers{roles: map[string]model.Role{}}

	require.NoError(t, promoteAdmins(context.Background(), repo, splitEmails(" a@b.com, ,c@d.com")))

	assert.Equal(t, map[string]model.Role{"a@b.com": model.RoleAdmin, "c@d.com": model.RoleAdmin}, repo.roles)
}
