package producer

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/ecs-queue-autoscaler/autoscaler/models"
	"github.com/ecs-queue-autoscaler/autoscaler/queue"

	"code.cloudfoundry.org/lager/v3"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

var ErrInvalidBatch = errors.New("invalid batch")

// IDGenerator returns the id of the next work item. Ids need not be unique.
type IDGenerator func() int64

// RandomID draws a uniformly random 16 bit id.
func RandomID() int64 {
	var b [2]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return int64(binary.LittleEndian.Uint16(b[:]))
}

type Result struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

type Producer struct {
	logger  lager.Logger
	sender  queue.Sender
	nextID  IDGenerator
	limiter *rate.Limiter
	newSalt func() string
}

// NewProducer uses RandomID when idGenerator is nil. A nil limiter sends as fast as the queue accepts.
func NewProducer(logger lager.Logger, sender queue.Sender, idGenerator IDGenerator, limiter *rate.Limiter) *Producer {
	if idGenerator == nil {
		idGenerator = RandomID
	}
	return &Producer{
		logger:  logger.Session("producer"),
		sender:  sender,
		nextID:  idGenerator,
		limiter: limiter,
		newSalt: uuid.NewString,
	}
}

// Produce sends count work items each declaring duration seconds of work.
// A failed send is logged and counted and the batch carries on.
func (p *Producer) Produce(ctx context.Context, count int, duration float64) (Result, error) {
	result := Result{}
	if count < 0 {
		return result, fmt.Errorf("%w: message count %d is negative", ErrInvalidBatch, count)
	}
	if duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return result, fmt.Errorf("%w: duration %v is not a non-negative number", ErrInvalidBatch, duration)
	}

	logger := p.logger.Session("produce", lager.Data{"count": count, "duration": duration})
	logger.Info("start")

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			logger.Info("cancelled", lager.Data{"sent": result.Sent, "failed": result.Failed})
			return result, err
		}
		if p.limiter != nil {
			if err := p.limiter.Wait(ctx); err != nil {
				logger.Info("cancelled", lager.Data{"sent": result.Sent, "failed": result.Failed})
				return result, fmt.Errorf("waiting for send rate limit: %w", err)
			}
		}

		msg, id, err := p.newMessage(duration)
		if err != nil {
			logger.Error("failed-to-build-message", err)
			result.Failed++
			continue
		}

		messageID, err := p.sender.Send(ctx, msg)
		if err != nil {
			logger.Error("failed-to-send-message", err, lager.Data{"id": id})
			result.Failed++
			continue
		}
		logger.Debug("sent-message", lager.Data{"id": id, "message_id": messageID})
		result.Sent++
	}

	logger.Info("done", lager.Data{"sent": result.Sent, "failed": result.Failed})
	return result, nil
}

func (p *Producer) newMessage(duration float64) (*models.OutgoingMessage, int64, error) {
	id := p.nextID()
	body, err := models.WorkItem{ID: id, Duration: duration}.Marshal()
	if err != nil {
		return nil, id, err
	}
	groupID := strconv.FormatInt(id, 10)
	return &models.OutgoingMessage{
		Body:            body,
		GroupID:         groupID,
		DeduplicationID: groupID + ":" + p.newSalt(),
	}, id, nil
}
