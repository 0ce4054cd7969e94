package store_test

import (
	"testing"

	"github.com/safar/pharmacy-store/internal/models"
	"github.com/safar/pharmacy-store/internal/storage"
	"github.com/safar/pharmacy-store/internal/store"
	"github.com/stretchr/testify/require"
)

func TestUserRepoCreateRejectsDuplicateLogin(t *testing.T) {
	pharmacists, err := store.NewPharmacistRepo(newFiles(t))
	require.NoError(t, err)

	user := &models.User{LastName: "Dupont", FirstName: "Marie", Login: "pdupont", Password: "pharma123"}
	require.NoError(t, pharmacists.Create(user))
	require.Equal(t, models.RolePharmacist, user.Role)

	again := &models.User{LastName: "Durand", FirstName: "Paul", Login: "pdupont", Password: "other"}
	require.ErrorIs(t, pharmacists.Create(again), storage.ErrDuplicateLogin)
}

func TestUserRepoSameLoginAllowedAcrossRoleTables(t *testing.T) {
	files := newFiles(t)
	pharmacists, err := store.NewPharmacistRepo(files)
	require.NoError(t, err)
	managers, err := store.NewManagerRepo(files)
	require.NoError(t, err)

	require.NoError(t, pharmacists.Create(&models.User{LastName: "A", FirstName: "A", Login: "shared", Password: "x"}))
	require.NoError(t, managers.Create(&models.User{LastName: "B", FirstName: "B", Login: "shared", Password: "y"}))

	fromManagers, err := managers.FindByLogin("shared")
	require.NoError(t, err)
	require.Equal(t, models.RoleManager, fromManagers.Role)
}

func TestUserRepoAuthenticate(t *testing.T) {
	pharmacists, err := store.NewPharmacistRepo(newFiles(t))
	require.NoError(t, err)

	require.NoError(t, pharmacists.Create(&models.User{LastName: "Dupont", FirstName: "Marie", Login: "pdupont", Password: "pharma123"}))

	user, err := pharmacists.Authenticate("pdupont", "pharma123")
	require.NoError(t, err)
	require.Equal(t, "Dupont", user.LastName)

	_, err = pharmacists.Authenticate("pdupont", "wrong")
	require.ErrorIs(t, err, storage.ErrUserNotFound)
}
