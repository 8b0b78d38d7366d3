// Package main demonstrates how to use the moderation library.
//
// This example shows:
// 1. Running the deterministic classifier on its own
// 2. Wiring the full client with a store, providers, and hooks
// 3. Submitting uploads and reading the outcome
// 4. Gating publication on review decisions
package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	moderation "github.com/gospelwave/moderation"
	"github.com/gospelwave/moderation/client"
	"github.com/gospelwave/moderation/engine"
	"github.com/gospelwave/moderation/hooks"
	"github.com/gospelwave/moderation/language"
	"github.com/gospelwave/moderation/providers"
	"github.com/gospelwave/moderation/providers/rule"
	"github.com/gospelwave/moderation/providers/tencent"
	"github.com/gospelwave/moderation/publish"
	sqlstore "github.com/gospelwave/moderation/store/sql"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

func main() {
	ctx := context.Background()

	// ============================================================
	// Example 1: Standalone Classifier
	// ============================================================
	log.Println("=== Example 1: Standalone Classifier ===")

	eng := engine.New(language.Default())

	result := eng.Moderate(moderation.Request{
		Transcript:  "olúwa ọlọrun wa dúpẹ́ jésù gba wa",
		Title:       "Sunday Worship",
		ContentType: moderation.ContentMusic,
	})

	log.Printf("Approved=%v Confidence=%.2f", result.Approved, result.Confidence)
	if result.DetectedLanguage != nil {
		log.Printf("Language: %s (%.2f)", result.DetectedLanguage.Code, result.DetectedLanguage.Confidence)
	}
	for _, flag := range result.Flags {
		log.Printf("Flag: %s", flag)
	}

	// ============================================================
	// Example 2: Full Pipeline with Store and Hooks
	// ============================================================
	log.Println("\n=== Example 2: Full Pipeline ===")

	db, err := sql.Open("mysql", "user:password@tcp(localhost:3306)/moderation?parseTime=true")
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	store := sqlstore.NewWithDB(db, sqlstore.DialectMySQL)

	// Optional cloud safety screen for escalated content.
	tencentProvider, err := tencent.New(tencent.Config{
		ProviderConfig: providers.ProviderConfig{
			AccessKeyID:     "your-tencent-secret-id",
			AccessKeySecret: "your-tencent-secret-key",
			Region:          "ap-guangzhou",
			Endpoint:        "tms.tencentcloudapi.com",
		},
	})
	if err != nil {
		log.Fatalf("Failed to create tencent provider: %v", err)
	}

	myHooks := hooks.FuncHooks{
		OnContentModeratedFunc: func(ctx context.Context, e hooks.ContentModeratedEvent) error {
			log.Printf("[Hook] Upload %s moderated: %s (confidence %.2f)",
				e.Upload.UploadID, e.Outcome.Decision, e.Outcome.Confidence)
			return nil
		},
		OnContentRejectedFunc: func(ctx context.Context, e hooks.ContentRejectedEvent) error {
			log.Printf("[Hook] Upload %s rejected by %s", e.Upload.UploadID, e.Provider)
			return nil
		},
		OnManualReviewQueuedFunc: func(ctx context.Context, e hooks.ManualReviewQueuedEvent) error {
			log.Printf("[Hook] Upload %s queued for human review (entry %s)",
				e.Upload.UploadID, e.QueueEntryID)
			return nil
		},
	}

	moderationClient, err := client.New(client.Options{
		Store: store,
		Hooks: myHooks,
		Providers: []providers.Provider{
			rule.New(),
			providers.WrapWithResilience(tencentProvider),
		},
		Pipeline: client.PipelineConfig{
			Primary:   rule.Name,
			Secondary: "tencent",
			Trigger:   client.DefaultTriggerRule(),
			Merge:     client.MergeMostStrict,
		},
		EnableDedup: true,
	})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	submitResult, err := moderationClient.Submit(ctx, client.SubmitInput{
		Upload: moderation.UploadContext{
			UploadID:    "upload_123",
			SubmitterID: "user_456",
			TraceID:     "trace_001",
			CreatedAt:   time.Now(),
		},
		Request: moderation.Request{
			Transcript:  "chineke di mma ekele diri gi onyenwe anyi",
			Title:       "Morning Devotion",
			Description: "Igbo praise session",
			ContentType: moderation.ContentSermon,
		},
	})
	if err != nil {
		log.Printf("Failed to submit upload: %v", err)
	} else {
		log.Printf("Review %s: Decision=%s Deduplicated=%v",
			submitResult.ReviewID, submitResult.Outcome.Decision, submitResult.Deduplicated)
	}

	// ============================================================
	// Example 3: Query Review Status
	// ============================================================
	log.Println("\n=== Example 3: Query Review Status ===")

	if submitResult != nil {
		queryResult, err := moderationClient.Query(ctx, client.QueryInput{
			ReviewID: submitResult.ReviewID,
		})
		if err != nil {
			log.Printf("Failed to query: %v", err)
		} else {
			log.Printf("Review status: Decision=%s Complete=%v",
				queryResult.Review.Decision, queryResult.Complete)
		}
	}

	// ============================================================
	// Example 4: Publication Gating
	// ============================================================
	log.Println("\n=== Example 4: Publication Gating ===")

	gate := publish.NewGate()

	for _, viewer := range []publish.ViewerRole{publish.ViewerPublic, publish.ViewerCreator} {
		pub := gate.Evaluate(moderation.ContentMusic, moderation.DecisionReview, viewer)
		log.Printf("%s viewer: Listed=%v Held=%v Message=%q", viewer, pub.Listed, pub.Held, pub.Message)
	}

	// ============================================================
	// Example 5: Working the Human Review Queue
	// ============================================================
	log.Println("\n=== Example 5: Human Review Queue ===")

	entries, err := moderationClient.ReviewQueue(ctx, 10)
	if err != nil {
		log.Printf("Failed to list queue: %v", err)
	}
	for _, entry := range entries {
		log.Printf("Queue entry %s for review %s: %s", entry.ID, entry.ReviewID, entry.Decision)

		// A human reviewer resolves the entry.
		if err := moderationClient.Resolve(ctx, entry.ReviewID, moderation.DecisionPass); err != nil {
			log.Printf("Failed to resolve review: %v", err)
		}
	}

	log.Println("\n=== Demo Complete ===")
}
