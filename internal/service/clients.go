package service

import (
	"strings"

	"github.com/safar/pharmacy-store/internal/models"
)

type Clients struct {
	clients ClientStore
}

func NewClients(clients ClientStore) *Clients {
	return &Clients{clients: clients}
}

// AddClient creates a client record. Email and address are optional; both
// names are not.
func (s *Clients) AddClient(lastName, firstName, email, address string) (*models.Client, error) {
	if strings.TrimSpace(lastName) == "" || strings.TrimSpace(firstName) == "" {
		return nil, ErrNameRequired
	}

	client := &models.Client{
		LastName:  lastName,
		FirstName: firstName,
		Email:     email,
		Address:   address,
	}
	if err := s.clients.Create(client); err != nil {
		return nil, err
	}

	return client, nil
}

func (s *Clients) GetClient(id int64) (*models.Client, error) {
	return s.clients.FindByID(id)
}

func (s *Clients) ListClients() ([]models.Client, error) {
	return s.clients.FindAll()
}

func (s *Clients) SearchClients(name string) ([]models.Client, error) {
	return s.clients.SearchByName(name)
}

func (s *Clients) UpdateClient(client *models.Client) error {
	if strings.TrimSpace(client.LastName) == "" || strings.TrimSpace(client.FirstName) == "" {
		return ErrNameRequired
	}

	return s.clients.Update(client)
}

func (s *Clients) DeleteClient(id int64) error {
	return s.clients.Delete(id)
}
