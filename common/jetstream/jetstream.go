package jetstream

//go:generate mockgen -source=jetstream.go -destination=mocks/publisher.go -package=mocks

import (
	"agri-drone/common/constant"
	"context"
	"github.com/nats-io/nats.go/jetstream"
)

// Publisher is the part of jetstream.JetStream handlers publish through.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

func CreateEventStream(ctx context.Context, js jetstream.JetStream, maxBytes int64) (jetstream.Stream, error) {
	cfg := jetstream.StreamConfig{
		Name:      constant.EventStreamName,
		Retention: jetstream.LimitsPolicy,
		Subjects:  []string{constant.AllWildcard},
		MaxBytes:  maxBytes,
	}

	return js.CreateOrUpdateStream(ctx, cfg)
}
