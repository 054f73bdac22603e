// cmd/seed_catalog/main.go
//
// One-shot tool: mirrors the static service catalog into Firestore so
// ops dashboards and future dynamic menus can read it. The API itself
// serves the catalog from memory; this copy is informational.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"

	"houseit/internal/domain/catalog"
)

func main() {
	ctx := context.Background()

	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		projectID = os.Getenv("GOOGLE_CLOUD_PROJECT")
	}
	if projectID == "" {
		log.Fatal("FIRESTORE_PROJECT_ID (or GOOGLE_CLOUD_PROJECT) is required")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		log.Fatalf("firestore.NewClient: %v", err)
	}
	defer client.Close()

	col := client.Collection("catalogServices")
	now := time.Now().UTC()

	batch := client.Batch()

	for _, s := range catalog.Services() {
		docRef := col.Doc(s.ID)
		data := map[string]any{
			"name":      s.Name,
			"icon":      s.Icon,
			"updatedAt": now,
		}
		batch.Set(docRef, data, firestore.MergeAll)

		providers, err := catalog.ProvidersFor(s.ID)
		if err != nil {
			continue
		}
		for _, p := range providers {
			pRef := docRef.Collection("providers").Doc(p.ID)
			pData := map[string]any{
				"name":      p.Name,
				"rating":    p.Rating,
				"reviews":   p.Reviews,
				"eta":       p.ETA,
				"price":     p.HourlyRate,
				"updatedAt": now,
			}
			batch.Set(pRef, pData, firestore.MergeAll)

			menu, err := catalog.MenuFor(s.ID, p.ID)
			if err != nil {
				continue
			}
			for _, item := range menu.Items {
				iRef := pRef.Collection("menu").Doc(item.ID)
				batch.Set(iRef, map[string]any{
					"name":        item.Name,
					"price":       item.Price,
					"description": item.Description,
					"updatedAt":   now,
				}, firestore.MergeAll)
			}
		}
	}

	if _, err := batch.Commit(ctx); err != nil {
		log.Fatalf("batch.Commit: %v", err)
	}

	log.Println("service catalog seeded")
}
