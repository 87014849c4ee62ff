package redis

import (
	"encoding/json"
	"fmt"

	"vh-server/db"
)

// SEARCH_HISTORY_KEY_V1 is the single fixed key holding the search log.
const SEARCH_HISTORY_KEY_V1 = "search_history_v1"

// RedisSearchHistoryDAO persists the recent-searches log as a JSON array.
type RedisSearchHistoryDAO struct {
	client db.RedisClient
}

// NewRedisSearchHistoryDAO initializes the DAO with the Redis client.
func NewRedisSearchHistoryDAO(client db.RedisClient) *RedisSearchHistoryDAO {
	return &RedisSearchHistoryDAO{client: client}
}

// LoadHistory reads the persisted list. A missing key is an empty history,
// not an error.
func (dao *RedisSearchHistoryDAO) LoadHistory() ([]string, error) {
	str, err := dao.client.Get(SEARCH_HISTORY_KEY_V1)
	if err != nil {
		return nil, nil
	}

	var entries []string
	if err := json.Unmarshal([]byte(str), &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search history JSON: %w", err)
	}
	return entries, nil
}

// SaveHistory overwrites the persisted list.
func (dao *RedisSearchHistoryDAO) SaveHistory(entries []string) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal search history: %w", err)
	}
	if err := dao.client.Set(SEARCH_HISTORY_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to set search history in redis: %w", err)
	}
	return nil
}
