// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package host

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	topicPlayerJoin = "host.player.join"
	topicPlayerQuit = "host.player.quit"

	busBufferSize = 16
)

// ErrSubscribe is returned when a listener cannot be subscribed to the bus.
var ErrSubscribe = errors.New("failed to subscribe listener")

// Bus is the host event bus, built on an in-process watermill Pub/Sub.
// Events are JSON-encoded on the wire so external transports can replace
// the gochannel implementation without changing subscribers.
type Bus struct {
	pubsub *gochannel.GoChannel
}

// NewBus creates an event bus logging through the given slog logger.
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: busBufferSize},
			watermill.NewSlogLogger(logger),
		),
	}
}

// PublishPlayerJoin publishes a player join event.
func (b *Bus) PublishPlayerJoin(ev PlayerJoinEvent) error {
	return b.publish(topicPlayerJoin, ev)
}

// PublishPlayerQuit publishes a player quit event.
func (b *Bus) PublishPlayerQuit(ev PlayerQuitEvent) error {
	return b.publish(topicPlayerQuit, ev)
}

func (b *Bus) publish(topic string, ev any) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	return b.pubsub.Publish(topic, message.NewMessage(watermill.NewUUID(), payload))
}

// Subscribe registers the listener for host events for the lifetime of ctx.
// Delivery happens on bus goroutines; listeners must be safe to call from
// them.
func (b *Bus) Subscribe(ctx context.Context, p *Plugin, l Listener) error {
	joins, err := b.pubsub.Subscribe(ctx, topicPlayerJoin)
	if err != nil {
		return errors.Join(ErrSubscribe, err)
	}

	quits, err := b.pubsub.Subscribe(ctx, topicPlayerQuit)
	if err != nil {
		return errors.Join(ErrSubscribe, err)
	}

	go forward(joins, p, l.OnPlayerJoin)
	go forward(quits, p, l.OnPlayerQuit)

	return nil
}

// forward decodes messages from ch and hands them to deliver. Messages that
// fail to decode are acked and dropped; the plugin's logger records them.
func forward[E any](ch <-chan *message.Message, p *Plugin, deliver func(E)) {
	for msg := range ch {
		var ev E
		if err := json.Unmarshal(msg.Payload, &ev); err != nil {
			p.Logger().Error("dropping undecodable host event: " + err.Error())
			msg.Ack()

			continue
		}

		deliver(ev)
		msg.Ack()
	}
}

// Close shuts the bus down, terminating all subscriptions.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}
