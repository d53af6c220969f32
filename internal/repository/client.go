package repository

import (
	"errors"
	"sync"

	"parking-backend/internal/models"
	"parking-backend/internal/store"
)

var ErrClientNotFound = errors.New("permanent client not found")

const clientsDoc = "permanent-clients"

type ClientRepository struct {
	store *store.Store
	mu    sync.Mutex
}

func NewClientRepository(s *store.Store) *ClientRepository {
	return &ClientRepository{store: s}
}

func (r *ClientRepository) List() ([]models.PermanentClient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return store.Read(r.store, clientsDoc, []models.PermanentClient{})
}

func (r *ClientRepository) Insert(client models.PermanentClient) (models.PermanentClient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clients, err := store.Read(r.store, clientsDoc, []models.PermanentClient{})
	if err != nil {
		return models.PermanentClient{}, err
	}

	clients = append(clients, client)
	if err := store.Write(r.store, clientsDoc, clients); err != nil {
		return models.PermanentClient{}, err
	}
	return client, nil
}

func (r *ClientRepository) Update(id string, mutate func(*models.PermanentClient)) (models.PermanentClient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clients, err := store.Read(r.store, clientsDoc, []models.PermanentClient{})
	if err != nil {
		return models.PermanentClient{}, err
	}

	for i := range clients {
		if clients[i].ID == id {
			mutate(&clients[i])
			if err := store.Write(r.store, clientsDoc, clients); err != nil {
				return models.PermanentClient{}, err
			}
			return clients[i], nil
		}
	}
	return models.PermanentClient{}, ErrClientNotFound
}

// Delete removes the client with the given id. Deleting an unknown id is not
// an error; the delete endpoint is idempotent.
func (r *ClientRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clients, err := store.Read(r.store, clientsDoc, []models.PermanentClient{})
	if err != nil {
		return err
	}

	kept := clients[:0]
	for _, c := range clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return store.Write(r.store, clientsDoc, kept)
}

func (r *ClientRepository) ReplaceAll(clients []models.PermanentClient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return store.Write(r.store, clientsDoc, clients)
}
