package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.scnd.dev/open/prism/command/prism/procedure/shader"
)

const ContentType = "application/octet-stream"

var ErrStorageMissing = errors.New("storage is not configured")

type Config struct {
	Endpoint  *string `yaml:"endpoint" validate:"required,url"`
	AccessKey *string `yaml:"access_key" validate:"required"`
	SecretKey *string `yaml:"secret_key" validate:"required"`
	Bucket    *string `yaml:"bucket" validate:"required"`
	Prefix    *string `yaml:"prefix"`
}

type Uploader interface {
	FPutObject(ctx context.Context, bucketName string, objectName string, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type Publisher struct {
	Uploader Uploader
	Bucket   string
	Prefix   string
	Out      io.Writer
}

type Upload struct {
	Artifact *shader.Artifact
	Object   string
	ETag     string
}

func NewClient(config *Config) (*minio.Client, error) {
	if config == nil {
		return nil, ErrStorageMissing
	}

	// * initialize minio client
	parsed, err := url.Parse(*config.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse storage endpoint: %w", err)
	}

	client, err := minio.New(parsed.Host, &minio.Options{
		Creds:  credentials.NewStaticV4(*config.AccessKey, *config.SecretKey, ""),
		Secure: parsed.Scheme == "https",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage client: %w", err)
	}

	return client, nil
}

func New(config *Config, uploader Uploader, out io.Writer) (*Publisher, error) {
	if config == nil {
		return nil, ErrStorageMissing
	}

	publisher := &Publisher{
		Uploader: uploader,
		Bucket:   *config.Bucket,
		Prefix:   "",
		Out:      out,
	}
	if config.Prefix != nil {
		publisher.Prefix = *config.Prefix
	}

	return publisher, nil
}

func ObjectName(prefix string, name string) string {
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

func (r *Publisher) Publish(ctx context.Context, artifacts []*shader.Artifact) ([]*Upload, error) {
	uploads := make([]*Upload, 0, len(artifacts))
	for _, artifact := range artifacts {
		object := ObjectName(r.Prefix, artifact.Name)
		info, err := r.Uploader.FPutObject(ctx, r.Bucket, object, artifact.Path, minio.PutObjectOptions{
			ContentType: ContentType,
		})
		if err != nil {
			return uploads, fmt.Errorf("failed to upload %s: %w", artifact.Name, err)
		}

		fmt.Fprintf(r.Out, "published: %s -> %s/%s\n", artifact.Name, r.Bucket, object)
		uploads = append(uploads, &Upload{
			Artifact: artifact,
			Object:   object,
			ETag:     info.ETag,
		})
	}

	return uploads, nil
}
