package seed_test

import (
	"testing"

	"github.com/safar/pharmacy-store/internal/models"
	"github.com/safar/pharmacy-store/internal/seed"
	"github.com/safar/pharmacy-store/internal/storage"
	"github.com/safar/pharmacy-store/internal/store"
	"github.com/stretchr/testify/require"
)

func newRepos(t *testing.T) (*store.ClientRepo, *store.UserRepo, *store.UserRepo) {
	t.Helper()

	files, err := storage.New(t.TempDir())
	require.NoError(t, err)

	clients, err := store.NewClientRepo(files)
	require.NoError(t, err)
	pharmacists, err := store.NewPharmacistRepo(files)
	require.NoError(t, err)
	managers, err := store.NewManagerRepo(files)
	require.NoError(t, err)
	return clients, pharmacists, managers
}

func TestEnsureDefaults(t *testing.T) {
	clients, pharmacists, managers := newRepos(t)

	require.NoError(t, seed.EnsureDefaults(clients, pharmacists, managers))

	walkIn, err := clients.FindByID(models.AnonymousClientID)
	require.NoError(t, err)
	require.Equal(t, "Walk-in", walkIn.LastName)

	pharmacist, err := pharmacists.Authenticate("pdupont", "pharma123")
	require.NoError(t, err)
	require.Equal(t, models.RolePharmacist, pharmacist.Role)

	manager, err := managers.Authenticate("aadmin", "admin123")
	require.NoError(t, err)
	require.Equal(t, models.RoleManager, manager.Role)
}

func TestEnsureDefaultsIsIdempotent(t *testing.T) {
	clients, pharmacists, managers := newRepos(t)

	require.NoError(t, seed.EnsureDefaults(clients, pharmacists, managers))
	require.NoError(t, seed.EnsureDefaults(clients, pharmacists, managers))

	all, err := clients.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 1)

	staff, err := pharmacists.FindAll()
	require.NoError(t, err)
	require.Len(t, staff, 1)
}

func TestEnsureDefaultsSkipsWalkInWhenClientsExist(t *testing.T) {
	clients, pharmacists, managers := newRepos(t)

	require.NoError(t, clients.Create(&models.Client{LastName: "Martin", FirstName: "Julie"}))
	require.NoError(t, seed.EnsureDefaults(clients, pharmacists, managers))

	all, err := clients.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "Martin", all[0].LastName)
}
