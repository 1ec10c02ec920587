package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/AdityaANS/dsa-progress-tracker/internal/model"
	"github.com/AdityaANS/dsa-progress-tracker/internal/repository"
	"github.com/AdityaANS/dsa-progress-tracker/pkg/logger"
	"github.com/AdityaANS/dsa-progress-tracker/pkg/monitoring"
	"go.uber.org/zap"
)

// KeyValueStore is the device-scoped persistence contract. Absent keys
// read as ("", false, nil); malformed values are the reader's problem
// and fall back to defaults.
type KeyValueStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// RemoteStore is the consumed contract of the per-user replica.
type RemoteStore interface {
	EnsureUserRecord(ctx context.Context, userID, displayName string) error
	UpsertTopic(ctx context.Context, userID string, topic model.Topic) error
	AppendProblem(ctx context.Context, userID, topicName string, record model.ProblemRecord) error
}

// AssetUploader is the consumed contract of the image store.
type AssetUploader interface {
	Upload(ctx context.Context, userID, filename string, reader io.Reader, size int64, contentType string) (string, error)
}

// SolveImage is an image attached to a solve, already read off the
// request so the upload can run after the response is sent.
type SolveImage struct {
	Name        string
	ContentType string
	Data        []byte
}

// ProgressSnapshot is what the presentation layer reads: the topic
// list plus aggregates that are always recomputed, never stored.
type ProgressSnapshot struct {
	Topics         []model.Topic         `json:"topics"`
	TotalTarget    int                   `json:"totalTarget"`
	TotalSolved    int                   `json:"totalSolved"`
	OverallPercent int                   `json:"overallPercent"`
	Streak         model.StreakState     `json:"streak"`
	Identity       model.SessionIdentity `json:"identity"`
}

// SyncService owns the authoritative in-memory progress model. Every
// mutation lands in the local store synchronously; remote propagation
// is best effort through a single FIFO worker, so writes touching the
// same topic are issued in the order the local mutations happened.
// Remote and uploader may be nil, in which case the tracker runs
// local-only.
type SyncService struct {
	mu       sync.Mutex
	topics   []model.Topic
	streak   model.StreakState
	identity model.SessionIdentity

	local    KeyValueStore
	remote   RemoteStore
	uploader AssetUploader

	ops     chan func(context.Context)
	pending sync.WaitGroup

	now func() time.Time
}

func NewSyncService(local KeyValueStore, remote RemoteStore, uploader AssetUploader) *SyncService {
	s := &SyncService{
		local:    local,
		remote:   remote,
		uploader: uploader,
		ops:      make(chan func(context.Context), 128),
		now:      time.Now,
	}
	go s.remoteWorker()
	return s
}

func (s *SyncService) remoteWorker() {
	ctx := context.Background()
	for op := range s.ops {
		op(ctx)
		s.pending.Done()
	}
}

// enqueueRemote hands an operation to the FIFO worker. A full queue
// means the write is dropped, which is within the best-effort
// contract; it is logged like any other remote failure.
func (s *SyncService) enqueueRemote(operation string, op func(context.Context)) {
	if s.remote == nil {
		return
	}
	s.pending.Add(1)
	select {
	case s.ops <- op:
	default:
		s.pending.Done()
		logger.Log.Warn("remote write dropped, queue full", zap.String("operation", operation))
		monitoring.RemoteWriteFailures.WithLabelValues(operation).Inc()
	}
}

// Flush waits for every queued remote write to finish. Called on
// shutdown and by tests; user-facing operations never wait on it.
func (s *SyncService) Flush() {
	s.pending.Wait()
}

// Initialize loads topics and streak from the local store. Missing or
// unparsable state is silently replaced by the default topic plan and
// a zero streak; it never fails outward.
func (s *SyncService) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topics = s.loadTopics()
	s.streak = s.loadStreak()
}

func (s *SyncService) loadTopics() []model.Topic {
	raw, ok, err := s.local.Get(repository.KeyTopics)
	if err != nil {
		logger.Log.Warn("local store read failed, using default topics", zap.Error(err))
		return model.DefaultTopics()
	}
	if !ok {
		return model.DefaultTopics()
	}

	var topics []model.Topic
	if err := json.Unmarshal([]byte(raw), &topics); err != nil {
		logger.Log.Warn("stored topics unparsable, using default topics", zap.Error(err))
		return model.DefaultTopics()
	}
	if len(topics) == 0 || !topicsValid(topics) {
		return model.DefaultTopics()
	}
	return topics
}

// topicsValid rejects stored state that violates the model invariants.
// A record like that is treated as corrupt, same as a parse failure.
func topicsValid(topics []model.Topic) bool {
	seen := make(map[string]bool, len(topics))
	for _, t := range topics {
		if t.Name == "" || t.Target < 1 || t.Solved < 0 || t.Solved > t.Target {
			return false
		}
		if seen[t.Name] {
			return false
		}
		seen[t.Name] = true
	}
	return true
}

func (s *SyncService) loadStreak() model.StreakState {
	state := model.StreakState{}

	if raw, ok, err := s.local.Get(repository.KeyLastSolvedDate); err == nil && ok {
		if _, perr := time.Parse(model.SolveDateLayout, raw); perr == nil {
			state.LastSolvedDate = raw
		}
	}
	if raw, ok, err := s.local.Get(repository.KeyStreak); err == nil && ok {
		if n, perr := strconv.Atoi(raw); perr == nil && n >= 0 {
			state.CurrentStreak = n
		}
	}

	// A count without a date is meaningless; start over.
	if state.LastSolvedDate == "" {
		state.CurrentStreak = 0
	}
	return state
}

func (s *SyncService) persistTopicsLocked() {
	raw, err := json.Marshal(s.topics)
	if err != nil {
		logger.Log.Error("failed to serialize topics", zap.Error(err))
		return
	}
	if err := s.local.Set(repository.KeyTopics, string(raw)); err != nil {
		// In-memory state stands; durability is best effort.
		logger.Log.Error("local store write failed", zap.String("key", repository.KeyTopics), zap.Error(err))
	}
}

func (s *SyncService) persistStreakLocked() {
	if err := s.local.Set(repository.KeyLastSolvedDate, s.streak.LastSolvedDate); err != nil {
		logger.Log.Error("local store write failed", zap.String("key", repository.KeyLastSolvedDate), zap.Error(err))
	}
	if err := s.local.Set(repository.KeyStreak, strconv.Itoa(s.streak.CurrentStreak)); err != nil {
		logger.Log.Error("local store write failed", zap.String("key", repository.KeyStreak), zap.Error(err))
	}
}

// WatchIdentity subscribes to the identity event stream for the
// session lifetime. Returns when the context ends or the stream closes.
func (s *SyncService) WatchIdentity(ctx context.Context, provider IdentityProvider) {
	events := provider.Events()
	for {
		select {
		case identity, ok := <-events:
			if !ok {
				return
			}
			s.SetIdentity(identity)
		case <-ctx.Done():
			return
		}
	}
}

// SetIdentity records the session identity. On a transition into an
// authenticated user it fires an idempotent remote ensure of the user
// marker; that write's failure is logged and never blocks local use.
func (s *SyncService) SetIdentity(identity model.SessionIdentity) {
	s.mu.Lock()
	previous := s.identity
	s.identity = identity
	s.mu.Unlock()

	if !identity.Authenticated() || identity.UserID == previous.UserID {
		return
	}

	s.enqueueRemote("ensure_user", func(ctx context.Context) {
		if err := s.remote.EnsureUserRecord(ctx, identity.UserID, identity.DisplayName); err != nil {
			logger.Log.Warn("remote user ensure failed",
				zap.String("userId", identity.UserID), zap.Error(err))
			monitoring.RemoteWriteFailures.WithLabelValues("ensure_user").Inc()
		}
	})
}

// Identity returns the current session identity.
func (s *SyncService) Identity() model.SessionIdentity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Snapshot returns a copy of the model with recomputed aggregates.
func (s *SyncService) Snapshot() ProgressSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *SyncService) snapshotLocked() ProgressSnapshot {
	topics := make([]model.Topic, len(s.topics))
	copy(topics, s.topics)
	return ProgressSnapshot{
		Topics:         topics,
		TotalTarget:    model.TotalTarget(topics),
		TotalSolved:    model.TotalSolved(topics),
		OverallPercent: model.OverallPercent(topics),
		Streak:         s.streak,
		Identity:       s.identity,
	}
}

// UpdateTarget sets the target of the topic at index, clamped to at
// least 1. The solved count is deliberately left alone even when the
// new target ends up below it. Out-of-range indexes are a no-op.
func (s *SyncService) UpdateTarget(index, newTarget int) {
	if newTarget < 1 {
		newTarget = 1
	}

	s.mu.Lock()
	if index < 0 || index >= len(s.topics) {
		s.mu.Unlock()
		return
	}
	s.topics[index].Target = newTarget
	s.persistTopicsLocked()
	topic := s.topics[index]
	identity := s.identity
	s.mu.Unlock()

	if !identity.Authenticated() {
		return
	}
	s.enqueueRemote("upsert_topic", func(ctx context.Context) {
		if err := s.remote.UpsertTopic(ctx, identity.UserID, topic); err != nil {
			logger.Log.Warn("remote topic upsert failed",
				zap.String("topic", topic.Name), zap.Error(err))
			monitoring.RemoteWriteFailures.WithLabelValues("upsert_topic").Inc()
		}
	})
}

// RecordSolve records one completed problem against the topic at
// index. A topic already at its target is a no-op with no writes at
// all. Otherwise the solved counter, the local store and the streak
// advance synchronously; when authenticated, the topic upsert and the
// problem append (in that order) follow in the background, with the
// image uploaded first if one was supplied. Upload failure only costs
// the image reference, never the solve.
func (s *SyncService) RecordSolve(index int, problemName, link string, image *SolveImage) {
	s.mu.Lock()
	if index < 0 || index >= len(s.topics) {
		s.mu.Unlock()
		return
	}
	if s.topics[index].Solved >= s.topics[index].Target {
		s.mu.Unlock()
		return
	}

	s.topics[index].Solved++
	s.streak = AdvanceStreak(s.streak, model.SolveDay(s.now()))
	s.persistTopicsLocked()
	s.persistStreakLocked()
	topic := s.topics[index]
	identity := s.identity
	s.mu.Unlock()

	monitoring.SolvesRecorded.Inc()

	if strings.TrimSpace(problemName) == "" {
		problemName = model.DefaultProblemName
	}

	if !identity.Authenticated() {
		return
	}

	s.enqueueRemote("record_solve", func(ctx context.Context) {
		var imageURL *string
		if image != nil && s.uploader != nil {
			url, err := s.uploader.Upload(ctx, identity.UserID, image.Name,
				bytes.NewReader(image.Data), int64(len(image.Data)), image.ContentType)
			if err != nil {
				logger.Log.Warn("solve image upload failed, recording without image",
					zap.String("topic", topic.Name), zap.Error(err))
				monitoring.UploadFailures.Inc()
			} else {
				imageURL = &url
			}
		}

		// Topic first: its incremented count should be visible
		// before the problem record that references it.
		if err := s.remote.UpsertTopic(ctx, identity.UserID, topic); err != nil {
			logger.Log.Warn("remote topic upsert failed",
				zap.String("topic", topic.Name), zap.Error(err))
			monitoring.RemoteWriteFailures.WithLabelValues("upsert_topic").Inc()
		}

		record := model.ProblemRecord{
			ProblemName: problemName,
			Link:        link,
			ImageURL:    imageURL,
		}
		if err := s.remote.AppendProblem(ctx, identity.UserID, topic.Name, record); err != nil {
			logger.Log.Warn("remote problem append failed",
				zap.String("topic", topic.Name), zap.Error(err))
			monitoring.RemoteWriteFailures.WithLabelValues("append_problem").Inc()
		}
	})
}

// AddTopic appends a new topic with a zero solved count. An empty
// name, a target below 1 or a name collision leaves the model
// untouched and writes nothing.
func (s *SyncService) AddTopic(name string, target int) {
	name = strings.TrimSpace(name)
	if name == "" || target < 1 {
		return
	}

	s.mu.Lock()
	for _, t := range s.topics {
		if t.Name == name {
			s.mu.Unlock()
			return
		}
	}
	topic := model.Topic{Name: name, Target: target}
	s.topics = append(s.topics, topic)
	s.persistTopicsLocked()
	identity := s.identity
	s.mu.Unlock()

	if !identity.Authenticated() {
		return
	}
	s.enqueueRemote("upsert_topic", func(ctx context.Context) {
		if err := s.remote.UpsertTopic(ctx, identity.UserID, topic); err != nil {
			logger.Log.Warn("remote topic upsert failed",
				zap.String("topic", topic.Name), zap.Error(err))
			monitoring.RemoteWriteFailures.WithLabelValues("upsert_topic").Inc()
		}
	})
}
