package helper

import (
	"log"

	"lunch_manager/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

// InitCloudinary khởi tạo client upload ảnh món/logo quán từ biến môi trường.
func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Không khởi tạo được Cloudinary: %v", err)
	}
	return cld
}
