package imagestore_fx

import (
	"os"

	"go.uber.org/fx"

	"clero/pkg/imagestore"
)

var Module = fx.Provide(provideUploader)

func provideUploader() imagestore.Uploader {
	return imagestore.NewHTTPUploader(imagestore.Config{
		BaseURL: os.Getenv("IMAGE_STORE_URL"),
		APIKey:  os.Getenv("IMAGE_STORE_KEY"),
	})
}
