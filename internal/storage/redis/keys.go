package redis

import (
	"fmt"

	"github.com/giufus/workout-streak-bot/internal/model"
)

// Key prefix for all tracker data
const keyPrefix = "wsb"

// scoreKey returns the Redis key for a player's score hash
// (field = exercise id, value = cumulative total)
func scoreKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:score:%d", keyPrefix, id)
}

// aliasIndexKey returns the Redis key for the alias -> exercise id hash
func aliasIndexKey() string {
	return fmt.Sprintf("%s:exercise:aliases", keyPrefix)
}

// exerciseDetailsKey returns the Redis key for an exercise's detail hash
func exerciseDetailsKey(id model.ExerciseID) string {
	return fmt.Sprintf("%s:exercise:details:%s", keyPrefix, id)
}

// playersKey returns the Redis key for the SET of registered player ids
func playersKey() string {
	return fmt.Sprintf("%s:players", keyPrefix)
}

// playerInfoKey returns the Redis key for a player's display info hash
func playerInfoKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:info:%d", keyPrefix, id)
}
