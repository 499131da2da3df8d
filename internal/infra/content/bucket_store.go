// Package content resolves downloadable course artifacts from a blob bucket.
// The bucket URL decides the backend; local deployments use file:// buckets
// and nothing in this package changes when the URL points elsewhere.
package content

import (
	"context"
	"fmt"
	"io"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // register the file:// bucket scheme
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

type bucketStore struct {
	bucket *blob.Bucket
}

// NewBucketStore opens the configured bucket and manages its lifetime through
// the application lifecycle.
func NewBucketStore(params Params) (service.ContentStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Content.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open content bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &bucketStore{bucket: bucket}, nil
}

// Open returns a reader over the course's content archive and the filename to
// suggest for the download attachment.
func (s *bucketStore) Open(ctx context.Context, courseID string) (io.ReadCloser, string, error) {
	key := contentKey(courseID)

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrContentNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open content for course %s", courseID)
	}

	return reader, fmt.Sprintf("%s.zip", courseID), nil
}

func contentKey(courseID string) string {
	return fmt.Sprintf("courses/%s/content.zip", courseID)
}
