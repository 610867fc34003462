package testhelpers

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ecs-queue-autoscaler/autoscaler/metricstore"
	"github.com/ecs-queue-autoscaler/autoscaler/models"
	"github.com/ecs-queue-autoscaler/autoscaler/policystore"
	"github.com/ecs-queue-autoscaler/autoscaler/queue"

	"github.com/google/uuid"
)

var ErrUnknownReceiptHandle = errors.New("receipt handle is not in flight")

type memoryMessage struct {
	models.QueueMessage
	groupID string
}

// MemoryQueue is a FIFO queue kept in memory. A message group with a
// message in flight is not delivered until that message is deleted.
type MemoryQueue struct {
	name     string
	mu       sync.Mutex
	visible  []*memoryMessage
	inFlight map[string]*memoryMessage
	notify   chan struct{}
}

var _ queue.Queue = &MemoryQueue{}

func NewMemoryQueue(name string) *MemoryQueue {
	return &MemoryQueue{
		name:     name,
		inFlight: map[string]*memoryMessage{},
		notify:   make(chan struct{}, 1),
	}
}

func (q *MemoryQueue) Name() string {
	return q.name
}

func (q *MemoryQueue) Send(_ context.Context, msg *models.OutgoingMessage) (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	id := uuid.NewString()
	q.visible = append(q.visible, &memoryMessage{
		QueueMessage: models.QueueMessage{MessageID: id, Body: msg.Body},
		groupID:      msg.GroupID,
	})
	select {
	case q.notify <- struct{}{}:
	default:
	}
	return id, nil
}

func (q *MemoryQueue) Receive(ctx context.Context, maxMessages int64, waitTime time.Duration) ([]models.QueueMessage, error) {
	deadline := time.NewTimer(waitTime)
	defer deadline.Stop()
	for {
		if messages := q.take(maxMessages); len(messages) > 0 {
			return messages, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			return nil, nil
		case <-q.notify:
		}
	}
}

func (q *MemoryQueue) take(maxMessages int64) []models.QueueMessage {
	q.mu.Lock()
	defer q.mu.Unlock()

	busy := map[string]bool{}
	for _, m := range q.inFlight {
		busy[m.groupID] = true
	}

	var taken []models.QueueMessage
	remaining := q.visible[:0]
	for _, m := range q.visible {
		if int64(len(taken)) >= maxMessages || busy[m.groupID] {
			remaining = append(remaining, m)
			continue
		}
		m.ReceiveCount++
		m.ReceiptHandle = uuid.NewString()
		q.inFlight[m.ReceiptHandle] = m
		busy[m.groupID] = true
		taken = append(taken, m.QueueMessage)
	}
	q.visible = remaining
	return taken
}

func (q *MemoryQueue) Delete(_ context.Context, msg models.QueueMessage) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.inFlight[msg.ReceiptHandle]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownReceiptHandle, msg.ReceiptHandle)
	}
	delete(q.inFlight, msg.ReceiptHandle)
	select {
	case q.notify <- struct{}{}:
	default:
	}
	return nil
}

// ApproximateDepth counts visible messages only.
func (q *MemoryQueue) ApproximateDepth(context.Context) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.visible)), nil
}

func (q *MemoryQueue) InFlight() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.inFlight)
}

// MemoryMetricStore keeps published samples and answers queries with
// one value per period, averaging the samples that fall in it.
type MemoryMetricStore struct {
	mu      sync.Mutex
	samples []models.MetricSample
}

var (
	_ metricstore.Publisher = &MemoryMetricStore{}
	_ metricstore.Fetcher   = &MemoryMetricStore{}
)

func NewMemoryMetricStore() *MemoryMetricStore {
	return &MemoryMetricStore{}
}

func (s *MemoryMetricStore) PutSample(_ context.Context, sample models.MetricSample) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = append(s.samples, sample)
	return nil
}

func (s *MemoryMetricStore) FetchSamples(_ context.Context, query models.MetricQuery) ([]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type bucket struct {
		sum   float64
		count int
	}
	buckets := map[time.Time]*bucket{}
	for _, sample := range s.samples {
		if sample.Namespace != query.Namespace || sample.MetricName != query.MetricName ||
			!sameDimensions(sample.Dimensions, query.Dimensions) ||
			sample.Timestamp.Before(query.Start) || sample.Timestamp.After(query.End) {
			continue
		}
		key := sample.Timestamp.Truncate(query.Period)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.sum += sample.Value
		b.count++
	}

	keys := make([]time.Time, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	values := make([]float64, 0, len(keys))
	for _, k := range keys {
		values = append(values, buckets[k].sum/float64(buckets[k].count))
	}
	return values, nil
}

// Samples returns every published sample of metricName.
func (s *MemoryMetricStore) Samples(metricName string) []models.MetricSample {
	s.mu.Lock()
	defer s.mu.Unlock()
	var found []models.MetricSample
	for _, sample := range s.samples {
		if sample.MetricName == metricName {
			found = append(found, sample)
		}
	}
	return found
}

func sameDimensions(a, b []models.Dimension) bool {
	if len(a) != len(b) {
		return false
	}
	set := map[models.Dimension]int{}
	for _, d := range a {
		set[d]++
	}
	for _, d := range b {
		if set[d] == 0 {
			return false
		}
		set[d]--
	}
	return true
}

// MemoryPolicyStore holds scaling policies by service namespace and name.
type MemoryPolicyStore struct {
	mu       sync.Mutex
	policies map[string]*models.ScalingPolicy
}

var _ policystore.Store = &MemoryPolicyStore{}

func NewMemoryPolicyStore(policies ...*models.ScalingPolicy) *MemoryPolicyStore {
	s := &MemoryPolicyStore{policies: map[string]*models.ScalingPolicy{}}
	for _, p := range policies {
		s.policies[policyKey(p.PolicyName, p.ServiceNamespace)] = p.Clone()
	}
	return s
}

func policyKey(name, serviceNamespace string) string {
	return serviceNamespace + "/" + name
}

func (s *MemoryPolicyStore) GetPolicy(_ context.Context, name, serviceNamespace string) (*models.ScalingPolicy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.policies[policyKey(name, serviceNamespace)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", policystore.ErrPolicyNotFound, name)
	}
	return p.Clone(), nil
}

func (s *MemoryPolicyStore) PutPolicy(_ context.Context, policy *models.ScalingPolicy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policies[policyKey(policy.PolicyName, policy.ServiceNamespace)] = policy.Clone()
	return nil
}
