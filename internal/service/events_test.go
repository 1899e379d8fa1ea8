package service

import (
	"context"
	"testing"
	"time"

	"github.com/skuma49/my-node-app/internal/models"
	"github.com/skuma49/my-node-app/internal/repository"
)

func TestHub_PublishReachesSubscriber(t *testing.T) {
	hub := NewHub()
	events, cancel := hub.Subscribe()
	defer cancel()

	hub.Publish(models.EntityUser, models.ActionCreated, 3)

	select {
	case ev := <-events:
		if ev.Entity != models.EntityUser || ev.Action != models.ActionCreated || ev.RecordID != 3 {
			t.Fatalf("unexpected event: %+v", ev)
		}
		if ev.EventID == "" || ev.OccurredAt.IsZero() {
			t.Fatalf("event not stamped: %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatalf("no event received")
	}
}

func TestHub_CancelClosesChannel(t *testing.T) {
	hub := NewHub()
	events, cancel := hub.Subscribe()
	cancel()
	if _, ok := <-events; ok {
		t.Fatalf("expected closed channel after cancel")
	}
	// publishing after cancel must not panic
	hub.Publish(models.EntityProduct, models.ActionDeleted, 1)
	// double cancel must be safe
	cancel()
}

func TestHub_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	hub := NewHub()
	_, cancel := hub.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriberBuffer*2; i++ {
			hub.Publish(models.EntityUser, models.ActionUpdated, i)
		}
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("publish blocked on a full subscriber")
	}
}

func TestServiceMutationsPublishEvents(t *testing.T) {
	repos := repository.NewRepository()
	svc := NewService(repos, "test")

	events, cancel := svc.Changes.Subscribe()
	defer cancel()

	u := svc.Users.Create(context.Background(), UserInput{Name: "A", Email: "a@x.com"})

	select {
	case ev := <-events:
		if ev.Entity != models.EntityUser || ev.Action != models.ActionCreated || ev.RecordID != u.ID {
			t.Fatalf("unexpected event: %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatalf("create published no event")
	}
}
