package main

import (
	"github.com/solsticeweb/blog-api/cmd/lambda"
	"github.com/solsticeweb/blog-api/pkg/aws"
	"github.com/solsticeweb/blog-api/pkg/handler"
)

func main() {
	lambda.StartAPIGatewayHandler(func(cfg aws.Config) (lambda.APIGatewayHandler, error) {
		h := &handler.GetBlogByID{
			Blogs:  aws.NewDynamoBlogStore(cfg.Config, cfg.BlogsTableName, cfg.StatusPublishedAtIndex, cfg.StatusCategoryIndex, cfg.DynamoOptions...),
			Images: aws.NewS3MediaStore(cfg.Config, cfg.BlogImagesBucket, cfg.S3Options...),
		}
		return h.Handle, nil
	})
}
