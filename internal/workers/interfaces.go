// Package workers runs the background jobs of the gift catalog server.
// It defines the Worker interface and a Workers aggregate that runs several
// workers until their context is cancelled.
package workers

import (
	"context"

	"github.com/MKhiriev/go-gift-catalog/models"
)

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// ProductLister is the part of the product service the cache warmer needs.
type ProductLister interface {
	List(ctx context.Context) ([]models.Product, error)
}
