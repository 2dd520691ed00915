package utils

import (
	"bytes"
	"image/png"
	"testing"
)

func TestEventJoinQRProducesPNG(t *testing.T) {
	data, err := EventJoinQR("trua-thu-sau", 128)
	if err != nil {
		t.Fatalf("EventJoinQR lỗi: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("kết quả phải là PNG hợp lệ: %v", err)
	}
	if img.Bounds().Dx() != 128 || img.Bounds().Dy() != 128 {
		t.Errorf("kích thước = %v, muốn 128x128", img.Bounds())
	}
}
