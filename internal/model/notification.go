package model

import (
	"fmt"
	"sort"

	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/validation"
)

// NotificationPreference maps an invoice event to the channels the
// customer is notified on
type NotificationPreference map[enum.NotificationType][]enum.NotificationChannel

// NewNotificationPreference validates and returns the preference
func NewNotificationPreference(p NotificationPreference) (NotificationPreference, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks events in a stable order so the first violation is
// deterministic
func (p NotificationPreference) Validate() error {
	for _, event := range p.events() {
		if err := validation.NotificationEvent(event); err != nil {
			return err
		}
		for _, channel := range p[event] {
			if err := validation.NotificationChannel(channel); err != nil {
				return err
			}
		}
	}
	return nil
}

// Channels returns the channels for one event
func (p NotificationPreference) Channels(event enum.NotificationType) []enum.NotificationChannel {
	return p[event]
}

// events lists unknown events first, then known ones in declaration order
func (p NotificationPreference) events() []enum.NotificationType {
	var unknown, known []enum.NotificationType
	for event := range p {
		if !event.IsValid() {
			unknown = append(unknown, event)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
	for _, event := range enum.NotificationTypeValues() {
		if _, ok := p[event]; ok {
			known = append(known, event)
		}
	}
	return append(unknown, known...)
}

func (p NotificationPreference) ToMap() map[string]any {
	w := wire{}
	for event, channels := range p {
		if channels == nil {
			continue
		}
		putEnums(w, string(event), channels)
	}
	return w
}

// NotificationPreferenceFromMap decodes and validates a wire preference
func NotificationPreferenceFromMap(m map[string]any) (NotificationPreference, error) {
	p := make(NotificationPreference, len(m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		event := enum.NotificationType(key)
		if err := validation.NotificationEvent(event); err != nil {
			return nil, err
		}
		raw := m[key]
		if raw == nil {
			continue
		}
		items, ok := raw.([]any)
		if strs, isStrings := raw.([]string); isStrings {
			ok = true
			items = make([]any, len(strs))
			for i, c := range strs {
				items[i] = c
			}
		}
		if !ok {
			return nil, validation.ChannelList(raw)
		}
		list := make([]enum.NotificationChannel, 0, len(items))
		for _, item := range items {
			c, isString := item.(string)
			if !isString {
				return nil, validation.NewError("customer_notification_preference", item, validation.RuleOneOf,
					fmt.Sprintf("Invalid channel: %v", item))
			}
			list = append(list, enum.NotificationChannel(c))
		}
		p[event] = list
	}
	return NewNotificationPreference(p)
}
