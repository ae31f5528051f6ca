package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/classhub/classhub-backend/internal/config"
	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/repository"
)

// TutorLogWorker consumes the tutor log queue and archives exchanges to
// PostgreSQL. Archival rides behind the chat endpoint so a slow store
// never delays an answer.
type TutorLogWorker struct {
	logs *repository.TutorLogRepository
	rdb  *redis.Client
	log  zerolog.Logger
}

// NewTutorLogWorker creates a new TutorLogWorker.
func NewTutorLogWorker(logs *repository.TutorLogRepository, rdb *redis.Client, log zerolog.Logger) *TutorLogWorker {
	return &TutorLogWorker{
		logs: logs,
		rdb:  rdb,
		log:  log.With().Str("component", "tutor_log_worker").Logger(),
	}
}

// Start begins the infinite worker loop. Call in a goroutine.
func (w *TutorLogWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			// Drain remaining items before exit.
			w.drain(context.Background())
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *TutorLogWorker) processNext(ctx context.Context) {
	// BLPop blocks until an item is available or timeout (1 second).
	result, err := w.rdb.BLPop(ctx, time.Second, config.WorkerKey.TutorLogQueue).Result()
	if err != nil {
		if err != redis.Nil && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
		}
		return
	}

	if len(result) < 2 {
		return
	}

	var entry model.TutorLog
	if err := json.Unmarshal([]byte(result[1]), &entry); err != nil {
		w.log.Error().Err(err).Msg("Unmarshal error")
		return
	}

	if err := w.logs.Insert(ctx, &entry); err != nil {
		w.log.Error().Err(err).
			Str("user_id", entry.UserID).
			Msg("Persist error, retrying in 5s")
		// Push back to queue for retry.
		w.rdb.RPush(ctx, config.WorkerKey.TutorLogQueue, result[1])
		time.Sleep(5 * time.Second)
	}
}

// drain processes all remaining items in the queue before shutdown.
func (w *TutorLogWorker) drain(ctx context.Context) {
	drained := 0
	for {
		result, err := w.rdb.LPop(ctx, config.WorkerKey.TutorLogQueue).Result()
		if err != nil {
			break
		}

		var entry model.TutorLog
		if err := json.Unmarshal([]byte(result), &entry); err != nil {
			w.log.Error().Err(err).Msg("Drain unmarshal error")
			continue
		}

		if err := w.logs.Insert(ctx, &entry); err != nil {
			w.log.Error().Err(err).Msg("Drain persist error")
			w.rdb.RPush(ctx, config.WorkerKey.TutorLogQueue, result)
			break
		}
		drained++
	}

	if drained > 0 {
		w.log.Info().Int("count", drained).Msg("Drained remaining items")
	}
}
