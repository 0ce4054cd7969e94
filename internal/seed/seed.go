package seed

import (
	"errors"
	"fmt"

	"github.com/safar/pharmacy-store/internal/models"
	"github.com/safar/pharmacy-store/internal/store"
	"github.com/safar/pharmacy-store/internal/storage"
)

// EnsureDefaults inserts the records a fresh installation needs: the
// walk-in sentinel client and one demo account per role. Tables that
// already hold data are left alone, so running it repeatedly is safe.
func EnsureDefaults(clients *store.ClientRepo, pharmacists, managers *store.UserRepo) error {
	existing, err := clients.FindAll()
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		walkIn := &models.Client{LastName: "Walk-in", FirstName: "Customer"}
		if err := clients.Create(walkIn); err != nil {
			return err
		}
		// Anonymous sales are recorded against this client, so it must
		// own the sentinel id.
		if walkIn.ID != models.AnonymousClientID {
			return fmt.Errorf("walk-in client got id %d, want %d", walkIn.ID, models.AnonymousClientID)
		}
	}

	pharmacist := &models.User{LastName: "Dupont", FirstName: "Marie", Login: "pdupont", Password: "pharma123"}
	if err := ensureUser(pharmacists, pharmacist); err != nil {
		return err
	}

	manager := &models.User{LastName: "Admin", FirstName: "Amine", Login: "aadmin", Password: "admin123"}
	return ensureUser(managers, manager)
}

func ensureUser(users *store.UserRepo, user *models.User) error {
	err := users.Create(user)
	if err != nil && !errors.Is(err, storage.ErrDuplicateLogin) {
		return err
	}
	return nil
}
