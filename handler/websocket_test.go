package handler

import (
	"errors"
	"reflect"
	"testing"

	"github.com/redis/go-redis/v9"
)

func TestForwardFeedDeliversEachMessageOnce(t *testing.T) {
	channel := make(chan *redis.Message, 3)
	channel <- &redis.Message{Payload: `{"type":"order_submitted"}`}
	channel <- &redis.Message{Payload: `{"type":"order_updated"}`}
	channel <- &redis.Message{Payload: `{"type":"order_paid"}`}
	close(channel)

	var got []string
	forwardFeed(channel, func(payload []byte) error {
		got = append(got, string(payload))
		return nil
	})

	want := []string{
		`{"type":"order_submitted"}`,
		`{"type":"order_updated"}`,
		`{"type":"order_paid"}`,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mỗi message phải được ghi đúng một lần, theo thứ tự: %v, muốn %v", got, want)
	}
}

func TestForwardFeedStopsOnWriteError(t *testing.T) {
	channel := make(chan *redis.Message, 3)
	channel <- &redis.Message{Payload: "a"}
	channel <- &redis.Message{Payload: "b"}
	channel <- &redis.Message{Payload: "c"}
	close(channel)

	writes := 0
	forwardFeed(channel, func(payload []byte) error {
		writes++
		return errors.New("client went away")
	})

	if writes != 1 {
		t.Errorf("write lỗi phải dừng ngay, đã ghi %d lần", writes)
	}
}

func TestForwardFeedReturnsWhenChannelCloses(t *testing.T) {
	channel := make(chan *redis.Message)
	done := make(chan struct{})

	go func() {
		forwardFeed(channel, func(payload []byte) error { return nil })
		close(done)
	}()

	close(channel)
	<-done // kênh đóng (pubsub.Close) thì vòng forward phải thoát
}
