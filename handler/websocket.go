package handler

import (
	"context"
	"fmt"
	"strconv"

	"lunch_manager/helper"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

// forwardFeed đẩy từng message của kênh sự kiện xuống đúng một connection;
// dừng khi kênh đóng hoặc write lỗi. Mỗi connection có subscription riêng
// nên một message chỉ được ghi một lần cho mỗi client.
func forwardFeed(channel <-chan *redis.Message, write func([]byte) error) {
	for msg := range channel {
		if err := write([]byte(msg.Payload)); err != nil {
			return
		}
	}
}

// OrderFeedWebsocket xử lý WS connection theo dõi đơn hàng realtime của một sự kiện.
func OrderFeedWebsocket(c *websocket.Conn) {
	// Lấy eventId từ route
	eventIdStr := c.Params("eventId")
	id64, _ := strconv.ParseUint(eventIdStr, 10, 64)
	eventId := uint(id64)

	// Sub kênh Redis của sự kiện, mỗi connection một subscription
	pubsub := helper.RedisClient.Subscribe(
		context.Background(),
		fmt.Sprintf("event:%d:feed", eventId),
	)
	defer pubsub.Close()
	defer c.Close()

	// Đọc liên tục để bắt client ngắt kết nối: lỗi đọc thì đóng pubsub,
	// kênh bên dưới đóng theo và vòng forward thoát
	go func() {
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				pubsub.Close()
				return
			}
		}
	}()

	forwardFeed(pubsub.Channel(), func(payload []byte) error {
		return c.WriteMessage(websocket.TextMessage, payload)
	})
}
