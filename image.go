package typgrab

import "context"

// ImageStore downloads remote images and persists them locally.
type ImageStore interface {
	// Materialize fetches the image at url and writes it to local storage,
	// returning a path suitable for referencing from generated markup.
	// The same URL always resolves to the same path. Any network or
	// filesystem failure is returned as an error; callers treat a failed
	// materialization as "omit this image" rather than aborting.
	Materialize(ctx context.Context, url string) (string, error)
}
