// Package kv manages the Redis connections behind the key-value
// persistence surfaces: tracker partitions, session flags, and cached
// listings.
package kv

import (
	"fmt"
	"sync"

	"github.com/designerscolony/colony/internal/setup/config"
	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

const (
	// CacheDBIndex stores cached listing payloads, like the chai talk
	// list, in database 0 to keep them separate from durable data.
	CacheDBIndex = 0

	// SessionDBIndex dedicates database 1 to per-owner authentication
	// flags so session state can be flushed independently.
	SessionDBIndex = 1

	// TrackerDBIndex uses database 2 for the tracker partitions, the
	// only key-value data that must survive a cache flush.
	TrackerDBIndex = 2
)

// Manager maintains a thread-safe mapping of database indices to Redis
// clients. Each database index gets its own connection pool through rueidis.
type Manager struct {
	clients map[int]rueidis.Client
	config  *config.Redis
	logger  *zap.Logger
	mu      sync.RWMutex // Protects concurrent access to the clients map
}

// NewManager initializes the Redis connection manager with an empty
// client pool. Actual connections are created lazily when first requested.
func NewManager(config *config.Redis, logger *zap.Logger) *Manager {
	return &Manager{
		clients: make(map[int]rueidis.Client),
		config:  config,
		logger:  logger.Named("kv"),
	}
}

// GetClient retrieves or creates a Redis client for the specified
// database index. Uses a mutex to safely handle concurrent creation.
func (m *Manager) GetClient(dbIndex int) (rueidis.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Check if client already exists
	if client, exists := m.clients[dbIndex]; exists {
		return client, nil
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress: []string{fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)},
		Username:    m.config.Username,
		Password:    m.config.Password,
		SelectDB:    dbIndex,
		ClientName:  "colony",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis client for DB %d: %w", dbIndex, err)
	}

	m.clients[dbIndex] = client
	m.logger.Info("Created new Redis client", zap.Int("dbIndex", dbIndex))

	return client, nil
}

// Close gracefully shuts down all active Redis clients in the pool.
// Safe to call multiple times.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for dbIndex, client := range m.clients {
		client.Close()
		delete(m.clients, dbIndex)
		m.logger.Info("Closed Redis client", zap.Int("dbIndex", dbIndex))
	}
}
