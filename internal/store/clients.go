package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/safar/pharmacy-store/internal/models"
	"github.com/safar/pharmacy-store/internal/storage"
)

const clientsTable = "clients"

var clientHeaders = []string{"id", "last_name", "first_name", "email", "address"}

type ClientRepo struct {
	files *storage.Store
}

func NewClientRepo(files *storage.Store) (*ClientRepo, error) {
	if err := files.EnsureTable(clientsTable, clientHeaders); err != nil {
		return nil, err
	}
	return &ClientRepo{files: files}, nil
}

func (r *ClientRepo) Create(client *models.Client) error {
	id, err := r.files.NextID(clientsTable)
	if err != nil {
		return fmt.Errorf("allocate client id: %w", err)
	}
	client.ID = id

	return r.files.AppendRow(clientsTable, encodeClient(client))
}

func (r *ClientRepo) FindByID(id int64) (*models.Client, error) {
	rows, err := r.files.ReadAll(clientsTable)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if rid, ok := rowID(row); !ok || rid != id {
			continue
		}
		client, err := decodeClient(row)
		if err != nil {
			return nil, rowError(clientsTable, i, err)
		}
		return client, nil
	}

	return nil, storage.ErrClientNotFound
}

func (r *ClientRepo) FindAll() ([]models.Client, error) {
	return r.filter(func(*models.Client) bool { return true })
}

// SearchByName matches case-insensitively against last or first name.
func (r *ClientRepo) SearchByName(name string) ([]models.Client, error) {
	needle := strings.ToLower(name)
	return r.filter(func(client *models.Client) bool {
		return strings.Contains(strings.ToLower(client.LastName), needle) ||
			strings.Contains(strings.ToLower(client.FirstName), needle)
	})
}

func (r *ClientRepo) filter(keep func(*models.Client) bool) ([]models.Client, error) {
	rows, err := r.files.ReadAll(clientsTable)
	if err != nil {
		return nil, err
	}

	var clients []models.Client
	for i, row := range rows {
		client, err := decodeClient(row)
		if err != nil {
			return nil, rowError(clientsTable, i, err)
		}
		if keep(client) {
			clients = append(clients, *client)
		}
	}

	return clients, nil
}

func (r *ClientRepo) Update(client *models.Client) error {
	return r.files.Rewrite(clientsTable, clientHeaders, func(rows [][]string) ([][]string, error) {
		for i, row := range rows {
			if id, ok := rowID(row); ok && id == client.ID {
				rows[i] = encodeClient(client)
				return rows, nil
			}
		}
		return nil, storage.ErrClientNotFound
	})
}

func (r *ClientRepo) Delete(id int64) error {
	return r.files.Rewrite(clientsTable, clientHeaders, func(rows [][]string) ([][]string, error) {
		kept := rows[:0]
		found := false
		for _, row := range rows {
			if rid, ok := rowID(row); ok && rid == id {
				found = true
				continue
			}
			kept = append(kept, row)
		}
		if !found {
			return nil, storage.ErrClientNotFound
		}
		return kept, nil
	})
}

func encodeClient(client *models.Client) []string {
	return []string{
		strconv.FormatInt(client.ID, 10),
		client.LastName,
		client.FirstName,
		client.Email,
		client.Address,
	}
}

func decodeClient(row []string) (*models.Client, error) {
	if err := checkWidth(row, len(clientHeaders)); err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("id: %w", err)
	}

	return &models.Client{
		ID:        id,
		LastName:  row[1],
		FirstName: row[2],
		Email:     row[3],
		Address:   row[4],
	}, nil
}
