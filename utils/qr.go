package utils

import (
	"bytes"
	"fmt"
	"image/png"

	"lunch_manager/config"

	"github.com/skip2/go-qrcode"
)

// GenerateQRCode tạo QR code và trả về bytes PNG
func GenerateQRCode(content string, size int) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	err = png.Encode(buf, qr.Image(size))
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// EventJoinQR dựng QR cho link tham gia sự kiện theo slug,
// dùng chung cho trang chi tiết và endpoint tải QR.
func EventJoinQR(slug string, size int) ([]byte, error) {
	joinLink := fmt.Sprintf("%s/events/%s", config.Config("APP_BASE_URL"), slug)
	return GenerateQRCode(joinLink, size)
}
