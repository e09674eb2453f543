package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/salesdesk/internal/config"
	"github.com/polkiloo/salesdesk/internal/domain/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type recordingPlayer struct {
	played  []model.NewOrderAlert
	playErr error
	closed  bool
	closeFn func() error
}

func (p *recordingPlayer) Play(_ context.Context, alert model.NewOrderAlert) error {
	p.played = append(p.played, alert)
	return p.playErr
}

func (p *recordingPlayer) Close() error {
	p.closed = true
	if p.closeFn != nil {
		return p.closeFn()
	}
	return nil
}

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestNewAlertAssignsUniqueIDs(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	a := NewAlert(3, 1, at)
	b := NewAlert(3, 1, at)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 3, a.Count)
	assert.Equal(t, 1, a.Previous)
	assert.True(t, a.RaisedAt.Equal(at))
}

func TestFanoutPlaysEveryPlayer(t *testing.T) {
	failing := &recordingPlayer{playErr: errors.New("speaker unplugged")}
	ok := &recordingPlayer{}
	fanout := NewFanout(failing, ok)

	err := fanout.Play(context.Background(), NewAlert(1, 0, time.Now()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "speaker unplugged")
	assert.Len(t, failing.played, 1)
	assert.Len(t, ok.played, 1)
}

func TestFanoutClosesEveryPlayer(t *testing.T) {
	first := &recordingPlayer{closeFn: func() error { return errors.New("close failed") }}
	second := &recordingPlayer{}

	err := NewFanout(first, second).Close()
	require.Error(t, err)
	assert.True(t, first.closed)
	assert.True(t, second.closed)
}

func TestLogPlayer(t *testing.T) {
	p := NewLogPlayer(discardLogger())
	require.NoError(t, p.Play(context.Background(), NewAlert(2, 1, time.Now())))
	require.NoError(t, p.Close())
}

func TestHubBroadcastsToSubscribers(t *testing.T) {
	hub := NewHub(discardLogger())
	first, unsubscribeFirst := hub.Subscribe()
	second, unsubscribeSecond := hub.Subscribe()
	defer unsubscribeSecond()
	require.Equal(t, 2, hub.Subscribers())

	alert := NewAlert(4, 2, time.Now())
	require.NoError(t, hub.Play(context.Background(), alert))

	assert.Equal(t, alert.ID, (<-first).ID)
	assert.Equal(t, alert.ID, (<-second).ID)

	unsubscribeFirst()
	unsubscribeFirst()
	_, open := <-first
	assert.False(t, open)
	assert.Equal(t, 1, hub.Subscribers())
}

func TestHubDropsAlertsForLaggingSubscriber(t *testing.T) {
	hub := NewHub(discardLogger())
	ch, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	for i := 0; i < subscriberBuffer+3; i++ {
		require.NoError(t, hub.Play(context.Background(), NewAlert(i+1, i, time.Now())))
	}
	assert.Len(t, ch, subscriberBuffer)
}

func TestHubClose(t *testing.T) {
	hub := NewHub(discardLogger())
	ch, unsubscribe := hub.Subscribe()

	require.NoError(t, hub.Close())
	require.NoError(t, hub.Close())
	_, open := <-ch
	assert.False(t, open)
	unsubscribe()

	late, _ := hub.Subscribe()
	_, open = <-late
	assert.False(t, open)
	assert.Equal(t, 0, hub.Subscribers())
}

func TestKafkaPlayerPublishesJSON(t *testing.T) {
	writer := &fakeWriter{}
	p := &KafkaPlayer{writer: writer}
	alert := NewAlert(5, 3, time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC))

	require.NoError(t, p.Play(context.Background(), alert))
	require.Len(t, writer.msgs, 1)
	assert.Equal(t, alert.ID, string(writer.msgs[0].Key))

	var decoded model.NewOrderAlert
	require.NoError(t, json.Unmarshal(writer.msgs[0].Value, &decoded))
	assert.Equal(t, 5, decoded.Count)
	assert.Equal(t, 3, decoded.Previous)

	require.NoError(t, p.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPlayerWrapsWriteError(t *testing.T) {
	p := &KafkaPlayer{writer: &fakeWriter{err: errors.New("broker down")}}
	err := p.Play(context.Background(), NewAlert(1, 0, time.Now()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish alert")
}

func TestNewKafkaPlayerConfiguresWriter(t *testing.T) {
	p := NewKafkaPlayer([]string{"kafka:9092"}, "alerts")
	w, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, "alerts", w.Topic)
	assert.Equal(t, "kafka:9092", w.Addr.String())
}

func TestNewPlayerComposition(t *testing.T) {
	hub := NewHub(discardLogger())

	player := newPlayer(playerParams{Config: &config.Config{}, Logger: discardLogger(), Hub: hub})
	fanout, ok := player.(*Fanout)
	require.True(t, ok)
	assert.Len(t, fanout.players, 2)

	cfg := &config.Config{KafkaBrokers: []string{"kafka:9092"}, KafkaAlertTopic: "alerts"}
	player = newPlayer(playerParams{Config: cfg, Logger: discardLogger(), Hub: hub})
	fanout = player.(*Fanout)
	require.Len(t, fanout.players, 3)
	_, isKafka := fanout.players[2].(*KafkaPlayer)
	assert.True(t, isKafka)
}

func TestRegisterLifecycleClosesPlayer(t *testing.T) {
	player := &recordingPlayer{}
	lc := fxtest.NewLifecycle(t)
	registerLifecycle(lc, player)

	lc.RequireStart()
	lc.RequireStop()
	assert.True(t, player.closed)
}
