package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/dojodoskages/storefront/internal/events"
	"github.com/dojodoskages/storefront/internal/models"
)

const indexTimeout = 5 * time.Second

// Indexer mirrors catalog mutations into the search index by listening
// on the event bus.
type Indexer struct {
	ES    *elasticsearch.Client
	Index string
}

func (ix *Indexer) Attach(bus *events.Bus, l *slog.Logger) {
	bus.Subscribe(func(e events.Event) {
		if e.Topic != events.TopicProducts {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
		defer cancel()

		var err error
		switch e.Payload["type"] {
		case "product_created", "product_updated":
			err = ix.indexProduct(ctx, e.Payload["product"])
		case "product_deleted":
			err = ix.deleteProduct(ctx, e.Key)
		}
		if err != nil {
			l.Error("search index error", "productID", e.Key, "error", err)
		}
	})
}

func (ix *Indexer) indexProduct(ctx context.Context, doc any) error {
	prod, ok := doc.(*models.Product)
	if !ok {
		return fmt.Errorf("event payload is not a product")
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(prod); err != nil {
		return err
	}

	res, err := ix.ES.Index(ix.Index, &buf,
		ix.ES.Index.WithDocumentID(prod.ID),
		ix.ES.Index.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index: %s", res.Status())
	}
	return nil
}

func (ix *Indexer) deleteProduct(ctx context.Context, id string) error {
	res, err := ix.ES.Delete(ix.Index, id, ix.ES.Delete.WithContext(ctx))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	// 404 just means the document never made it into the index
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete: %s", res.Status())
	}
	return nil
}
