package store

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/safar/pharmacy-store/internal/models"
	"github.com/safar/pharmacy-store/internal/storage"
)

var userHeaders = []string{"id", "last_name", "first_name", "login", "password"}

// UserRepo serves one of the two staff tables. Pharmacists and managers
// share the row layout but live in disjoint files, so login uniqueness
// holds per table only.
type UserRepo struct {
	files *storage.Store
	table string
	role  models.Role
}

func NewPharmacistRepo(files *storage.Store) (*UserRepo, error) {
	return newUserRepo(files, "pharmacists", models.RolePharmacist)
}

func NewManagerRepo(files *storage.Store) (*UserRepo, error) {
	return newUserRepo(files, "managers", models.RoleManager)
}

func newUserRepo(files *storage.Store, table string, role models.Role) (*UserRepo, error) {
	if err := files.EnsureTable(table, userHeaders); err != nil {
		return nil, err
	}
	return &UserRepo{files: files, table: table, role: role}, nil
}

func (r *UserRepo) Role() models.Role {
	return r.role
}

func (r *UserRepo) Create(user *models.User) error {
	if _, err := r.FindByLogin(user.Login); err == nil {
		return storage.ErrDuplicateLogin
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return err
	}

	id, err := r.files.NextID(r.table)
	if err != nil {
		return fmt.Errorf("allocate user id: %w", err)
	}
	user.ID = id
	user.Role = r.role

	return r.files.AppendRow(r.table, encodeUser(user))
}

func (r *UserRepo) FindByID(id int64) (*models.User, error) {
	rows, err := r.files.ReadAll(r.table)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if rid, ok := rowID(row); !ok || rid != id {
			continue
		}
		user, err := r.decode(row)
		if err != nil {
			return nil, rowError(r.table, i, err)
		}
		return user, nil
	}

	return nil, storage.ErrUserNotFound
}

func (r *UserRepo) FindByLogin(login string) (*models.User, error) {
	return r.findMatch(func(row []string) bool { return row[3] == login })
}

// Authenticate matches login and password exactly. Credentials are stored
// in plain text; hashing them is out of scope for this store.
func (r *UserRepo) Authenticate(login, password string) (*models.User, error) {
	return r.findMatch(func(row []string) bool { return row[3] == login && row[4] == password })
}

func (r *UserRepo) findMatch(match func(row []string) bool) (*models.User, error) {
	rows, err := r.files.ReadAll(r.table)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if err := checkWidth(row, len(userHeaders)); err != nil {
			return nil, rowError(r.table, i, err)
		}
		if !match(row) {
			continue
		}
		user, err := r.decode(row)
		if err != nil {
			return nil, rowError(r.table, i, err)
		}
		return user, nil
	}

	return nil, storage.ErrUserNotFound
}

func (r *UserRepo) FindAll() ([]models.User, error) {
	rows, err := r.files.ReadAll(r.table)
	if err != nil {
		return nil, err
	}

	var users []models.User
	for i, row := range rows {
		user, err := r.decode(row)
		if err != nil {
			return nil, rowError(r.table, i, err)
		}
		users = append(users, *user)
	}

	return users, nil
}

func (r *UserRepo) Update(user *models.User) error {
	return r.files.Rewrite(r.table, userHeaders, func(rows [][]string) ([][]string, error) {
		for i, row := range rows {
			if id, ok := rowID(row); ok && id == user.ID {
				rows[i] = encodeUser(user)
				return rows, nil
			}
		}
		return nil, storage.ErrUserNotFound
	})
}

func encodeUser(user *models.User) []string {
	return []string{
		strconv.FormatInt(user.ID, 10),
		user.LastName,
		user.FirstName,
		user.Login,
		user.Password,
	}
}

func (r *UserRepo) decode(row []string) (*models.User, error) {
	if err := checkWidth(row, len(userHeaders)); err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("id: %w", err)
	}

	return &models.User{
		ID:        id,
		LastName:  row[1],
		FirstName: row[2],
		Login:     row[3],
		Password:  row[4],
		Role:      r.role,
	}, nil
}
