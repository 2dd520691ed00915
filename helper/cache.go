package helper

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"lunch_manager/model"

	"github.com/redis/go-redis/v9"
)

var RedisClient = redis.NewClient(&redis.Options{Addr: redisAddr()})

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

func statsCacheKey(eventId uint, groupByPrice bool) string {
	return fmt.Sprintf("event:%d:stats:%t", eventId, groupByPrice)
}

// CacheEventStatistics lưu thống kê đã tính vào redis, TTL ngắn vì
// đơn hàng thay đổi liên tục trước giờ chốt.
func CacheEventStatistics(eventId uint, groupByPrice bool, stats model.EventStatistics) {
	payload, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := RedisClient.Set(context.Background(), statsCacheKey(eventId, groupByPrice), payload, 2*time.Minute).Err(); err != nil {
		log.Printf("Lỗi cache thống kê sự kiện %d: %v", eventId, err)
	}
}

func GetCachedEventStatistics(eventId uint, groupByPrice bool) (*model.EventStatistics, bool) {
	payload, err := RedisClient.Get(context.Background(), statsCacheKey(eventId, groupByPrice)).Bytes()
	if err != nil {
		return nil, false
	}
	var stats model.EventStatistics
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

// InvalidateEventStatistics xoá cache khi đơn hàng của sự kiện thay đổi.
func InvalidateEventStatistics(eventId uint) {
	ctx := context.Background()
	RedisClient.Del(ctx,
		statsCacheKey(eventId, false),
		statsCacheKey(eventId, true),
	)
}

// PublishOrderFeed đẩy thay đổi đơn hàng lên kênh redis của sự kiện,
// websocket handler sẽ fan-out cho client đang theo dõi.
func PublishOrderFeed(eventId uint, message any) {
	payload, err := json.Marshal(message)
	if err != nil {
		return
	}
	if err := RedisClient.Publish(context.Background(), fmt.Sprintf("event:%d:feed", eventId), payload).Err(); err != nil {
		log.Printf("Lỗi publish order feed cho sự kiện %d: %v", eventId, err)
	}
}
