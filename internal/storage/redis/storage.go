package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/giufus/workout-streak-bot/internal/catalog"
	"github.com/giufus/workout-streak-bot/internal/model"
	"github.com/giufus/workout-streak-bot/internal/storage"
)

// Detail hash fields
const (
	fieldName = "name"
	fieldGoal = "goal"
)

// Player info hash fields
const (
	fieldFirstName  = "first_name"
	fieldUsername   = "username"
	fieldLastUpdate = "last_update"
)

// Storage is a Redis-backed implementation of the score store
type Storage struct {
	client *redis.Client
	cfg    Config
	logger *slog.Logger
}

// New creates a new Redis storage instance
func New(cfg Config, logger *slog.Logger) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrStoreUnavailable, err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config, logger *slog.Logger) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// opCtx bounds a single storage operation with the configured timeout
func (s *Storage) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.OpTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.cfg.OpTimeout)
}

// storeErr wraps a transport-level failure as ErrStoreUnavailable
func storeErr(err error) error {
	return fmt.Errorf("%w: %s", model.ErrStoreUnavailable, err)
}

// Seeding

// sentinelExercise picks the definition whose detail record marks the store
// as seeded. Name order makes the choice deterministic across processes.
func sentinelExercise(cat *catalog.Catalog) model.ExerciseDef {
	return cat.SortedByName()[0]
}

func (s *Storage) EnsureSeeded(ctx context.Context, cat *catalog.Catalog) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	exists, err := s.client.Exists(ctx, exerciseDetailsKey(sentinelExercise(cat).ID)).Result()
	if err != nil {
		return storeErr(err)
	}
	if exists > 0 {
		return nil
	}

	return s.seed(ctx, cat)
}

// seed writes the alias index and detail hashes in one pipeline.
// Concurrent seeding is last-writer-wins; content is identical so the
// race is benign.
func (s *Storage) seed(ctx context.Context, cat *catalog.Catalog) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, aliasIndexKey())

	aliases := make(map[string]string, cat.Len())
	for id, def := range cat.Exercises() {
		aliases[def.Alias] = string(id)
		pipe.HSet(ctx, exerciseDetailsKey(id), map[string]string{
			fieldName: def.Name,
			fieldGoal: strconv.Itoa(def.Goal),
		})
	}
	pipe.HSet(ctx, aliasIndexKey(), aliases)

	if _, err := pipe.Exec(ctx); err != nil {
		return storeErr(err)
	}

	s.logger.Info("exercise catalog seeded", slog.Int("exercises", cat.Len()))
	return nil
}

// Exercise reads

func (s *Storage) GetExerciseDetails(ctx context.Context, id model.ExerciseID) (model.ExerciseDef, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	fields, err := s.client.HGetAll(ctx, exerciseDetailsKey(id)).Result()
	if err != nil {
		return model.ExerciseDef{}, storeErr(err)
	}
	if len(fields) == 0 {
		return model.ExerciseDef{}, model.ErrExerciseNotFound
	}

	return s.detailFromHash(id, fields), nil
}

// detailFromHash converts a detail hash to an ExerciseDef. An unparseable
// goal degrades to 0 with a warning rather than failing the read.
func (s *Storage) detailFromHash(id model.ExerciseID, fields map[string]string) model.ExerciseDef {
	def := model.ExerciseDef{
		ID:   id,
		Name: fields[fieldName],
	}
	goal, err := strconv.Atoi(fields[fieldGoal])
	if err != nil || goal < 0 {
		s.logger.Warn("invalid goal value in store, treating as no goal",
			slog.String("exercise_id", string(id)),
			slog.String("goal", fields[fieldGoal]),
		)
		goal = 0
	}
	def.Goal = goal
	return def
}

func (s *Storage) ListExerciseDetails(ctx context.Context) (map[model.ExerciseID]model.ExerciseDef, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	aliases, err := s.client.HGetAll(ctx, aliasIndexKey()).Result()
	if err != nil {
		return nil, storeErr(err)
	}

	// Empty index means seeding never ran; callers decide how to react
	out := make(map[model.ExerciseID]model.ExerciseDef, len(aliases))
	if len(aliases) == 0 {
		return out, nil
	}

	pipe := s.client.Pipeline()
	cmds := make(map[model.ExerciseID]*redis.MapStringStringCmd, len(aliases))
	aliasByID := make(map[model.ExerciseID]string, len(aliases))
	for alias, idStr := range aliases {
		id := model.ExerciseID(idStr)
		cmds[id] = pipe.HGetAll(ctx, exerciseDetailsKey(id))
		aliasByID[id] = alias
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, storeErr(err)
	}

	for id, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			// Alias without a detail record; skip rather than invent one
			continue
		}
		def := s.detailFromHash(id, fields)
		def.Alias = aliasByID[id]
		out[id] = def
	}
	return out, nil
}

// Score operations

func (s *Storage) GetScore(ctx context.Context, playerID model.PlayerID, exerciseID model.ExerciseID) (int64, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	val, err := s.client.HGet(ctx, scoreKey(playerID), string(exerciseID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, storeErr(err)
	}

	total, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, storeErr(err)
	}
	return total, nil
}

func (s *Storage) GetPlayerScores(ctx context.Context, playerID model.PlayerID) (map[model.ExerciseID]int64, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	fields, err := s.client.HGetAll(ctx, scoreKey(playerID)).Result()
	if err != nil {
		return nil, storeErr(err)
	}
	return scoresFromHash(fields), nil
}

func scoresFromHash(fields map[string]string) map[model.ExerciseID]int64 {
	scores := make(map[model.ExerciseID]int64, len(fields))
	for exID, val := range fields {
		total, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			continue
		}
		scores[model.ExerciseID(exID)] = total
	}
	return scores
}

func (s *Storage) GetAllPlayerScores(ctx context.Context) (map[model.PlayerID]map[model.ExerciseID]int64, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	members, err := s.client.SMembers(ctx, playersKey()).Result()
	if err != nil {
		return nil, storeErr(err)
	}

	out := make(map[model.PlayerID]map[model.ExerciseID]int64, len(members))
	if len(members) == 0 {
		return out, nil
	}

	pipe := s.client.Pipeline()
	cmds := make(map[model.PlayerID]*redis.MapStringStringCmd, len(members))
	for _, member := range members {
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			s.logger.Warn("skipping malformed player id in registry", slog.String("member", member))
			continue
		}
		playerID := model.PlayerID(id)
		cmds[playerID] = pipe.HGetAll(ctx, scoreKey(playerID))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, storeErr(err)
	}

	// A registered player whose score hash is empty still gets a row
	for playerID, cmd := range cmds {
		out[playerID] = scoresFromHash(cmd.Val())
	}
	return out, nil
}

func (s *Storage) IncrementScore(ctx context.Context, playerID model.PlayerID, exerciseID model.ExerciseID, delta int64) (int64, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	// HINCRBY is the single indivisible fetch-and-add the ledger relies on
	total, err := s.client.HIncrBy(ctx, scoreKey(playerID), string(exerciseID), delta).Result()
	if err != nil {
		return 0, storeErr(err)
	}
	return total, nil
}

func (s *Storage) SetScore(ctx context.Context, playerID model.PlayerID, exerciseID model.ExerciseID, value int64) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	if err := s.client.HSet(ctx, scoreKey(playerID), string(exerciseID), strconv.FormatInt(value, 10)).Err(); err != nil {
		return storeErr(err)
	}
	return nil
}

// Player registry and display metadata

func (s *Storage) RegisterPlayer(ctx context.Context, playerID model.PlayerID) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	if err := s.client.SAdd(ctx, playersKey(), strconv.FormatInt(int64(playerID), 10)).Err(); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *Storage) UpsertPlayerInfo(ctx context.Context, playerID model.PlayerID, info model.PlayerInfo, lastUpdate int64) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	key := playerInfoKey(playerID)
	fields := map[string]string{
		fieldFirstName:  info.FirstName,
		fieldLastUpdate: strconv.FormatInt(lastUpdate, 10),
	}

	pipe := s.client.Pipeline()
	if info.Username != "" {
		fields[fieldUsername] = info.Username
	} else {
		// A handle the player has since removed must not linger
		pipe.HDel(ctx, key, fieldUsername)
	}
	pipe.HSet(ctx, key, fields)

	if _, err := pipe.Exec(ctx); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *Storage) GetPlayerDisplay(ctx context.Context, playerID model.PlayerID) (model.PlayerDisplay, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	fields, err := s.client.HGetAll(ctx, playerInfoKey(playerID)).Result()
	if err != nil {
		return model.PlayerDisplay{}, storeErr(err)
	}

	info := model.PlayerInfo{
		FirstName: fields[fieldFirstName],
		Username:  fields[fieldUsername],
	}
	display := model.PlayerDisplay{
		DisplayName: info.DisplayName(playerID),
	}

	if raw, ok := fields[fieldLastUpdate]; ok {
		ts, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.logger.Warn("invalid last_update value in store",
				slog.Int64("player_id", int64(playerID)),
				slog.String("last_update", raw),
			)
		} else {
			display.LastUpdate = time.Unix(ts, 0)
		}
	}

	return display, nil
}

// Maintenance

func (s *Storage) HardReset(ctx context.Context, cat *catalog.Catalog) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	members, err := s.client.SMembers(ctx, playersKey()).Result()
	if err != nil {
		return storeErr(err)
	}

	pipe := s.client.Pipeline()
	for _, member := range members {
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			continue
		}
		playerID := model.PlayerID(id)
		pipe.Del(ctx, scoreKey(playerID))
		pipe.Del(ctx, playerInfoKey(playerID))
	}
	pipe.Del(ctx, playersKey())
	pipe.Del(ctx, aliasIndexKey())
	for id := range cat.Exercises() {
		pipe.Del(ctx, exerciseDetailsKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return storeErr(err)
	}

	s.logger.Info("hard reset performed", slog.Int("players_cleared", len(members)))
	return s.seed(ctx, cat)
}
