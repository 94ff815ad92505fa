package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	DefaultSubjectPrefix = "notifications"
	DefaultStreamName    = "NOTIFICATIONS"
)

// Publisher is the part of jetstream.JetStream the channel needs.
type Publisher interface {
	Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

var _ Publisher = (jetstream.JetStream)(nil)

// NATSChannel publishes notifications to JetStream for the email, SMS and
// push workers to pick up. Subjects look like
// "<prefix>.<recipient type>.<event>", for example
// "notifications.cleaner.assignment_request".
//
// The message id doubles as the JetStream dedup id, so a publish retried by
// the client is stored once.
type NATSChannel struct {
	js     Publisher
	prefix string
	now    func() time.Time
}

var _ interfaces.INotifier = (*NATSChannel)(nil)

func NewNATSChannel(js Publisher, prefix string) *NATSChannel {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &NATSChannel{js: js, prefix: strings.TrimSuffix(prefix, "."), now: time.Now}
}

func (c *NATSChannel) Subject(n entities.Notification) string {
	return strings.Join([]string{c.prefix, string(n.RecipientType), n.Event()}, ".")
}

func (c *NATSChannel) Notify(ctx context.Context, n entities.Notification) error {
	env := newEnvelope(uuid.NewString(), n, c.now())
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	if _, err := c.js.Publish(ctx, c.Subject(n), data, jetstream.WithMsgID(env.ID)); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

// ConnectJetStream dials NATS and makes sure the notifications stream
// exists. The caller closes the returned connection.
func ConnectJetStream(ctx context.Context, url, prefix string) (*nats.Conn, jetstream.JetStream, error) {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	nc, err := nats.Connect(url, nats.Name("cleaning-assignments"), nats.Timeout(5*time.Second))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to get JetStream: %w", err)
	}
	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:       DefaultStreamName,
		Subjects:   []string{prefix + ".>"},
		Storage:    jetstream.FileStorage,
		MaxAge:     7 * 24 * time.Hour,
		Duplicates: 2 * time.Minute,
	})
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to create notifications stream: %w", err)
	}
	return nc, js, nil
}
