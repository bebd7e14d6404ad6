package main

import (
	"fmt"

	"github.com/solsticeweb/blog-api/cmd/lambda"
	"github.com/solsticeweb/blog-api/pkg/aws"
	"github.com/solsticeweb/blog-api/pkg/handler"
)

func main() {
	lambda.StartAPIGatewayHandler(func(cfg aws.Config) (lambda.APIGatewayHandler, error) {
		if cfg.MediaBucket == "" {
			return nil, fmt.Errorf("missing env var: MEDIA_BUCKET")
		}
		h := &handler.UploadFile{
			Media: aws.NewS3MediaStore(cfg.Config, cfg.MediaBucket, cfg.S3Options...),
		}
		return h.Handle, nil
	})
}
